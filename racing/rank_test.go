package racing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runner(id, tier, speed int, mut func(*Horse)) *Horse {
	h := &Horse{
		ID:        id,
		Tier:      ip(tier),
		Speed:     ip(speed),
		Surfaces:  []string{"good"},
		Distances: []string{"2000"},
	}
	if mut != nil {
		mut(h)
	}
	return h
}

func openRace(id int) *Race {
	return &Race{ID: id, Surface: "good", Distance: "2000", Category: CategoryFlat, Active: true}
}

func ids(hs []*Horse) []int {
	out := make([]int, len(hs))
	for i, h := range hs {
		out[i] = h.ID
	}
	return out
}

func TestBuildRaceMatchesOrdering(t *testing.T) {
	horses := []*Horse{
		runner(1, 4, 250, nil),
		runner(2, 6, 100, nil),
		runner(3, 6, 180, nil),
		runner(4, 0, 300, func(h *Horse) { h.Tier = nil }), // no tier ranks last
	}

	out := BuildRaceMatches([]*Race{openRace(1)}, horses)
	require.Len(t, out, 1)
	// tier first, then speed within equal tiers
	assert.Equal(t, []int{3, 2, 1, 4}, ids(out[0].Horses))
}

func TestBuildRaceMatchesTieBreakChain(t *testing.T) {
	// identical tier, effective speed (base+diet) and sprint energy;
	// acceleration decides
	a := runner(1, 6, 180, func(h *Horse) {
		h.DietSpeed = ip(20)
		h.SprintEnergy = ip(150)
		h.Acceleration = ip(100)
	})
	b := runner(2, 6, 200, func(h *Horse) {
		h.SprintEnergy = ip(150)
		h.Acceleration = ip(90)
	})

	out := BuildRaceMatches([]*Race{openRace(1)}, []*Horse{b, a})
	require.Len(t, out, 1)
	assert.Equal(t, []int{1, 2}, ids(out[0].Horses))
}

func TestBuildRaceMatchesStable(t *testing.T) {
	// indistinguishable horses keep snapshot order
	a := runner(1, 5, 120, nil)
	b := runner(2, 5, 120, nil)
	c := runner(3, 5, 120, nil)

	out := BuildRaceMatches([]*Race{openRace(1)}, []*Horse{b, a, c})
	require.Len(t, out, 1)
	assert.Equal(t, []int{2, 1, 3}, ids(out[0].Horses))
}

func TestBuildRaceMatchesIdempotent(t *testing.T) {
	horses := []*Horse{
		runner(1, 3, 90, nil),
		runner(2, 8, 150, nil),
		runner(3, 8, 150, func(h *Horse) { h.Agility = ip(40) }),
	}
	races := []*Race{openRace(1), openRace(2)}

	first := BuildRaceMatches(races, horses)
	second := BuildRaceMatches(races, horses)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, ids(first[i].Horses), ids(second[i].Horses))
	}
}

func TestBuildRaceMatchesInactiveAndCounts(t *testing.T) {
	off := openRace(2)
	off.Active = false

	horses := []*Horse{runner(1, 4, 100, nil), runner(2, 2, 100, nil)}
	out := BuildRaceMatches([]*Race{openRace(1), off}, horses)

	require.Len(t, out, 2, "inactive races still listed")
	assert.Len(t, out[0].Horses, 2)
	assert.Empty(t, out[1].Horses)
	assert.Equal(t, 2, MatchCount(out))
}

func TestBuildRaceMatchesDoesNotMutateInputs(t *testing.T) {
	horses := []*Horse{runner(2, 2, 50, nil), runner(1, 9, 80, nil)}
	races := []*Race{openRace(1)}

	_ = BuildRaceMatches(races, horses)

	assert.Equal(t, []int{2, 1}, ids(horses), "input slice order untouched")
}
