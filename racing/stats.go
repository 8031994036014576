package racing

// Stat names a ranked attribute.
type Stat string

// The five racing stats, in ranking order after tier.
const (
	StatSpeed        Stat = "speed"
	StatSprintEnergy Stat = "sprint_energy"
	StatAcceleration Stat = "acceleration"
	StatAgility      Stat = "agility"
	StatJump         Stat = "jump"
)

// RankedStats lists the stats in comparator order.
var RankedStats = []Stat{StatSpeed, StatSprintEnergy, StatAcceleration, StatAgility, StatJump}

// Horse is the read-only snapshot of one horse used by the engine.
// Pointer fields are optional in the store and default to zero here.
type Horse struct {
	ID     int
	Name   string
	Tier   *int
	Gender string

	Speed        *int
	SprintEnergy *int
	Acceleration *int
	Agility      *int
	Jump         *int

	DietSpeed        *int
	DietSprintEnergy *int
	DietAcceleration *int
	DietAgility      *int
	DietJump         *int

	Categories []string
	Surfaces   []string
	Distances  []string // stored as text, compared numerically
	Positions  []string
	Traits     []string
}

// Race is the read-only snapshot of one catalog race.
type Race struct {
	ID              int
	Name            string
	Surface         string
	Distance        string // text; "0" means distance-insensitive
	Category        string
	TierRestriction string // RestrictionNone, RestrictionOdd or RestrictionEven
	Active          bool
	StartTime       string
	Track           string
	PrizeMoney      *int
}

// Effective returns the horse's comparable value for one stat:
// base plus diet bonus, each defaulting to zero when unset. Diet bonuses
// are permanent additions, never discounts; every comparison and display
// path must go through this.
func (h *Horse) Effective(s Stat) int {
	switch s {
	case StatSpeed:
		return orZero(h.Speed) + orZero(h.DietSpeed)
	case StatSprintEnergy:
		return orZero(h.SprintEnergy) + orZero(h.DietSprintEnergy)
	case StatAcceleration:
		return orZero(h.Acceleration) + orZero(h.DietAcceleration)
	case StatAgility:
		return orZero(h.Agility) + orZero(h.DietAgility)
	case StatJump:
		return orZero(h.Jump) + orZero(h.DietJump)
	}
	return 0
}

// TierOrZero returns the horse's tier, 0 when unset.
func (h *Horse) TierOrZero() int { return orZero(h.Tier) }

func orZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
