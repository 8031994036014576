package racing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ip(n int) *int { return &n }

func TestEffectiveAddsDietBonus(t *testing.T) {
	h := &Horse{
		Speed:        ip(180),
		DietSpeed:    ip(20),
		SprintEnergy: ip(150),
		Agility:      ip(90),
		DietAgility:  ip(10),
	}

	assert.Equal(t, 200, h.Effective(StatSpeed))
	assert.Equal(t, 150, h.Effective(StatSprintEnergy), "no diet bonus set")
	assert.Equal(t, 100, h.Effective(StatAgility))
}

func TestEffectiveDefaultsToZero(t *testing.T) {
	h := &Horse{}
	for _, s := range RankedStats {
		assert.Equal(t, 0, h.Effective(s))
	}
	assert.Equal(t, 0, h.TierOrZero())
}

func TestEffectiveDietOnly(t *testing.T) {
	h := &Horse{DietJump: ip(35)}
	assert.Equal(t, 35, h.Effective(StatJump))
}

func TestEffectiveUnknownStat(t *testing.T) {
	h := &Horse{Speed: ip(100)}
	assert.Equal(t, 0, h.Effective(Stat("stamina")))
}
