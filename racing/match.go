package racing

import (
	"strconv"
	"strings"
)

// Tier-parity membership for restricted races. Tier 1 is deliberately
// outside the odd set: restricted races start at tier 2.
var (
	oddTiers  = map[int]bool{3: true, 5: true, 7: true, 9: true}
	evenTiers = map[int]bool{2: true, 4: true, 6: true, 8: true}
)

// Matches reports whether the horse is eligible for the race.
// Checks run cheapest-first and short-circuit: active flag, surface,
// distance (skipped for cross country and the "0" sentinel), tier parity.
// Missing optional horse data counts as an empty set, never as a wildcard.
func Matches(r *Race, h *Horse) bool {
	if !r.Active {
		return false
	}
	if !containsString(h.Surfaces, r.Surface) {
		return false
	}
	if !distanceSatisfied(r, h) {
		return false
	}
	return tierSatisfied(r, h)
}

// CategoryEligible reports whether the horse satisfies a required-category
// filter. An empty requirement always passes. A horse tagged misc passes
// any requirement; an untagged horse passes none. Only some call sites
// apply this check, so it stays separate from Matches.
func CategoryEligible(h *Horse, required []string) bool {
	if len(required) == 0 {
		return true
	}
	if containsString(h.Categories, CategoryMisc) {
		return true
	}
	for _, want := range required {
		if containsString(h.Categories, want) {
			return true
		}
	}
	return false
}

func distanceSatisfied(r *Race, h *Horse) bool {
	// Cross country is surface-only; "0" marks a distance-insensitive race.
	if r.Category == CategoryCrossCountry {
		return true
	}
	want, ok := parseDistance(r.Distance)
	if !ok || want == 0 {
		return true
	}
	for _, d := range h.Distances {
		if got, ok := parseDistance(d); ok && got == want {
			return true
		}
	}
	return false
}

func tierSatisfied(r *Race, h *Horse) bool {
	switch r.TierRestriction {
	case RestrictionOdd:
		return h.Tier != nil && oddTiers[*h.Tier]
	case RestrictionEven:
		return h.Tier != nil && evenTiers[*h.Tier]
	default:
		return true
	}
}

// parseDistance normalizes a text distance to metres. Both race and horse
// distances live as text in the store; comparison is numeric on both sides.
func parseDistance(s string) (int, bool) {
	d, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return d, true
}

func containsString(ss []string, want string) bool {
	for _, s := range ss {
		if s == want {
			return true
		}
	}
	return false
}
