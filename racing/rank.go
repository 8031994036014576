package racing

import "sort"

// RaceMatches pairs one race with its eligible horses in rank order.
type RaceMatches struct {
	Race   *Race
	Horses []*Horse
}

// BuildRaceMatches runs the matcher over every (race, horse) pair and ranks
// each race's field. Races keep their input order; inactive races appear
// with an empty field. Neither input slice is mutated, and reruns on the
// same snapshot produce identical output.
func BuildRaceMatches(races []*Race, horses []*Horse) []RaceMatches {
	out := make([]RaceMatches, 0, len(races))
	for _, r := range races {
		matched := make([]*Horse, 0)
		for _, h := range horses {
			if Matches(r, h) {
				matched = append(matched, h)
			}
		}
		sortField(matched)
		out = append(out, RaceMatches{Race: r, Horses: matched})
	}
	return out
}

// MatchCount sums field sizes across races.
func MatchCount(rm []RaceMatches) int {
	n := 0
	for _, m := range rm {
		n += len(m.Horses)
	}
	return n
}

// sortField orders a race's field best-first: tier, then the five effective
// stats, all descending. The sort is stable so indistinguishable horses keep
// their snapshot order and repeated runs stay deterministic.
func sortField(field []*Horse) {
	sort.SliceStable(field, func(i, j int) bool {
		return ranksBefore(field[i], field[j])
	})
}

func ranksBefore(a, b *Horse) bool {
	if at, bt := a.TierOrZero(), b.TierOrZero(); at != bt {
		return at > bt
	}
	for _, s := range RankedStats {
		if av, bv := a.Effective(s), b.Effective(s); av != bv {
			return av > bv
		}
	}
	return false
}
