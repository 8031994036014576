// Package racing holds the static game catalogs and the race-eligibility
// engine: effective-stat computation, per-race matching and ranking.
// Everything here is pure and operates on snapshots read from the database;
// nothing in this package writes.
package racing

import (
	"strconv"
	"strings"
)

// Horse categories. A horse carries one or more; misc acts as a wildcard
// when callers filter by category.
const (
	CategoryFlat         = "flat_racing"
	CategorySteeplechase = "steeplechase"
	CategoryCrossCountry = "cross_country"
	CategoryMisc         = "misc"
)

// Tier-parity restrictions carried by races.
const (
	RestrictionNone = ""
	RestrictionOdd  = "odd_grades"
	RestrictionEven = "even_grades"
)

// Genders accepted on a horse record.
const (
	GenderStallion = "stallion"
	GenderMare     = "mare"
	GenderGelding  = "gelding"
)

// Surfaces are the six track grades, firmest first.
var Surfaces = []string{"hard", "firm", "good", "soft", "very_soft", "heavy"}

// Distances are the fourteen race distances in metres.
var Distances = []int{
	800, 1000, 1200, 1400, 1600, 1800, 2000,
	2200, 2400, 2600, 2800, 3000, 3200, 3400,
}

// Positions are the running styles a horse can prefer.
var Positions = []string{"front", "middle", "back"}

// HorseCategories are the categories a horse may be tagged with.
var HorseCategories = []string{CategoryFlat, CategorySteeplechase, CategoryCrossCountry, CategoryMisc}

// RaceCategories are the categories a race can belong to. Races are never misc.
var RaceCategories = []string{CategoryFlat, CategorySteeplechase, CategoryCrossCountry}

var surfaceSet = toSet(Surfaces)
var positionSet = toSet(Positions)
var horseCategorySet = toSet(HorseCategories)

var distanceSet = func() map[int]bool {
	m := make(map[int]bool, len(Distances))
	for _, d := range Distances {
		m[d] = true
	}
	return m
}()

func toSet(ss []string) map[string]bool {
	m := make(map[string]bool, len(ss))
	for _, s := range ss {
		m[s] = true
	}
	return m
}

// ValidSurface reports whether s is one of the six surface grades.
func ValidSurface(s string) bool { return surfaceSet[s] }

// ValidPosition reports whether p is a known field position.
func ValidPosition(p string) bool { return positionSet[p] }

// ValidHorseCategory reports whether c is a category a horse may carry.
func ValidHorseCategory(c string) bool { return horseCategorySet[c] }

// ValidDistance reports whether the text value is one of the fourteen
// catalog distances. Distances arrive as text from forms and the DB.
func ValidDistance(s string) bool {
	d, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return distanceSet[d]
}

// ValidGender reports whether g is a known gender.
func ValidGender(g string) bool {
	return g == GenderStallion || g == GenderMare || g == GenderGelding
}

// ValidTier reports whether t is a playable tier.
func ValidTier(t int) bool { return t >= 1 && t <= 10 }

// InferCategory derives a race's category from its name. Legacy data only
// stores the name; cross country and steeplechase events are recognisable
// from it, everything else runs on the flat.
func InferCategory(raceName string) string {
	n := strings.ToLower(raceName)
	switch {
	case strings.Contains(n, "cross country"), strings.Contains(n, "cross-country"):
		return CategoryCrossCountry
	case strings.Contains(n, "steeplechase"), strings.Contains(n, "chase"):
		return CategorySteeplechase
	default:
		return CategoryFlat
	}
}
