package racing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func activeRace(mut func(*Race)) *Race {
	r := &Race{
		ID:       1,
		Name:     "Morning Mile",
		Surface:  "hard",
		Distance: "1600",
		Category: CategoryFlat,
		Active:   true,
	}
	if mut != nil {
		mut(r)
	}
	return r
}

func eligibleHorse(mut func(*Horse)) *Horse {
	h := &Horse{
		ID:        1,
		Name:      "Comet",
		Tier:      ip(4),
		Surfaces:  []string{"hard"},
		Distances: []string{"1600"},
	}
	if mut != nil {
		mut(h)
	}
	return h
}

func TestMatchesSurfaceAndDistance(t *testing.T) {
	tests := []struct {
		name string
		race func(*Race)
		h    func(*Horse)
		want bool
	}{
		{"exact match", nil, nil, true},
		{"wrong surface", nil, func(h *Horse) { h.Surfaces = []string{"soft"} }, false},
		{"wrong distance", nil, func(h *Horse) { h.Distances = []string{"1200"} }, false},
		{"no surfaces at all", nil, func(h *Horse) { h.Surfaces = nil }, false},
		{"no distances at all", nil, func(h *Horse) { h.Distances = nil }, false},
		{"distance with whitespace", nil, func(h *Horse) { h.Distances = []string{" 1600 "} }, true},
		{"unparseable horse distance", nil, func(h *Horse) { h.Distances = []string{"about a mile"} }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(activeRace(tt.race), eligibleHorse(tt.h)))
		})
	}
}

func TestMatchesTierParity(t *testing.T) {
	even := func(r *Race) { r.TierRestriction = RestrictionEven }
	odd := func(r *Race) { r.TierRestriction = RestrictionOdd }

	// spec scenario: even race, tier 4 passes, tier 5 fails, wrong surface fails
	assert.True(t, Matches(activeRace(even), eligibleHorse(nil)))
	assert.False(t, Matches(activeRace(even), eligibleHorse(func(h *Horse) { h.Tier = ip(5) })))
	assert.False(t, Matches(activeRace(even), eligibleHorse(func(h *Horse) { h.Surfaces = []string{"soft"} })))

	assert.True(t, Matches(activeRace(odd), eligibleHorse(func(h *Horse) { h.Tier = ip(7) })))
	assert.False(t, Matches(activeRace(odd), eligibleHorse(nil)), "tier 4 on odd race")

	// tier 1 sits outside the odd set
	assert.False(t, Matches(activeRace(odd), eligibleHorse(func(h *Horse) { h.Tier = ip(1) })))

	// missing tier is an explicit rejection on restricted races, not a pass
	assert.False(t, Matches(activeRace(odd), eligibleHorse(func(h *Horse) { h.Tier = nil })))
	assert.False(t, Matches(activeRace(even), eligibleHorse(func(h *Horse) { h.Tier = nil })))

	// unrestricted race never looks at tier
	assert.True(t, Matches(activeRace(nil), eligibleHorse(func(h *Horse) { h.Tier = nil })))
}

func TestMatchesCrossCountryIgnoresDistance(t *testing.T) {
	cc := func(r *Race) {
		r.Category = CategoryCrossCountry
		r.Distance = "0"
	}
	h := eligibleHorse(func(h *Horse) { h.Distances = []string{"800"} })
	assert.True(t, Matches(activeRace(cc), h))

	// even with a real distance on the race, cross country skips the check
	ccDist := func(r *Race) {
		r.Category = CategoryCrossCountry
		r.Distance = "2400"
	}
	assert.True(t, Matches(activeRace(ccDist), h))

	// the "0" sentinel alone also disables the distance check
	sentinel := func(r *Race) { r.Distance = "0" }
	assert.True(t, Matches(activeRace(sentinel), h))
}

func TestMatchesInactiveRace(t *testing.T) {
	off := func(r *Race) { r.Active = false }
	assert.False(t, Matches(activeRace(off), eligibleHorse(nil)))
}

func TestCategoryEligible(t *testing.T) {
	flat := &Horse{Categories: []string{CategoryFlat}}
	misc := &Horse{Categories: []string{CategoryMisc}}
	none := &Horse{}

	assert.True(t, CategoryEligible(flat, nil), "empty requirement passes")
	assert.True(t, CategoryEligible(none, nil))

	assert.True(t, CategoryEligible(flat, []string{CategoryFlat}))
	assert.False(t, CategoryEligible(flat, []string{CategorySteeplechase}))

	// misc satisfies any requirement; no categories satisfies none
	assert.True(t, CategoryEligible(misc, []string{CategorySteeplechase}))
	assert.True(t, CategoryEligible(misc, []string{CategoryCrossCountry, CategoryFlat}))
	assert.False(t, CategoryEligible(none, []string{CategoryFlat}))
}
