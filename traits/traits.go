// Package traits carries the static trait tables: the classification of
// every known trait into a discipline category, and the stacking groups
// whose members give a synergy bonus when they co-occur on one horse.
// Both tables are fixed at compile time and consulted read-only; stacking
// is presentation information and never feeds eligibility or ranking.
package traits

// CategoryMisc is the bucket callers fall back to for unknown trait names.
const CategoryMisc = "misc"

// Classification describes one known trait.
type Classification struct {
	Category string `json:"category"`
	Pro      bool   `json:"pro"`
}

// classifications maps trait name to its discipline and pro flag.
var classifications = map[string]Classification{
	"Lightning Bolt":  {Category: "sprint", Pro: true},
	"Hard 'N' Fast":   {Category: "sprint"},
	"Flash Gallop":    {Category: "sprint"},
	"Rocket Launch":   {Category: "acceleration", Pro: true},
	"Quick Start":     {Category: "acceleration"},
	"Leaping Lancer":  {Category: "jumping", Pro: true},
	"Leaping Star":    {Category: "jumping"},
	"Perfect Step":    {Category: "jumping"},
	"Marathon Heart":  {Category: "stamina", Pro: true},
	"Endless Stride":  {Category: "stamina"},
	"Nimble Hooves":   {Category: "agility", Pro: true},
	"Sure Footed":     {Category: "agility"},
	"Cool Head":       {Category: "temperament"},
	"Steady Nerves":   {Category: "temperament"},
	"Second Wind":     {Category: "recovery", Pro: true},
	"Fast Recovery":   {Category: "recovery"},
	"Blue Blood":      {Category: "breeding", Pro: true},
	"Top Bloodline":   {Category: "breeding"},
}

// StackingGroup is a named set of traits that synergize.
type StackingGroup struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// stackingGroups lists the synergy sets. A horse holding two or more
// members of any one group gets the bonus flag.
var stackingGroups = []StackingGroup{
	{Name: "sprint_surge", Members: []string{"Lightning Bolt", "Hard 'N' Fast", "Flash Gallop"}},
	{Name: "clean_jump", Members: []string{"Perfect Step", "Leaping Lancer"}},
	{Name: "show_jumper", Members: []string{"Leaping Lancer", "Leaping Star"}},
	{Name: "iron_lungs", Members: []string{"Marathon Heart", "Endless Stride", "Second Wind"}},
	{Name: "launch_control", Members: []string{"Rocket Launch", "Quick Start"}},
}

// Classify looks up a trait name. The second return is false for unknown
// names; callers group those under CategoryMisc rather than erroring.
func Classify(name string) (Classification, bool) {
	c, ok := classifications[name]
	return c, ok
}

// CategoryOf returns the trait's discipline, CategoryMisc when unknown.
func CategoryOf(name string) string {
	if c, ok := classifications[name]; ok {
		return c.Category
	}
	return CategoryMisc
}

// All returns the full classification table, for the API surface.
func All() map[string]Classification {
	out := make(map[string]Classification, len(classifications))
	for k, v := range classifications {
		out[k] = v
	}
	return out
}

// Groups returns the configured stacking groups.
func Groups() []StackingGroup {
	out := make([]StackingGroup, len(stackingGroups))
	copy(out, stackingGroups)
	return out
}

// HasStackingBonus reports whether at least one stacking group has two or
// more of its members in the given trait set. The five-trait cap on a horse
// is enforced at data entry, not here.
func HasStackingBonus(traitNames []string) bool {
	have := make(map[string]bool, len(traitNames))
	for _, t := range traitNames {
		have[t] = true
	}
	for _, g := range stackingGroups {
		n := 0
		for _, m := range g.Members {
			if have[m] {
				n++
			}
			if n >= 2 {
				return true
			}
		}
	}
	return false
}
