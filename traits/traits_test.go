package traits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	c, ok := Classify("Lightning Bolt")
	assert.True(t, ok)
	assert.Equal(t, "sprint", c.Category)
	assert.True(t, c.Pro)

	c, ok = Classify("Perfect Step")
	assert.True(t, ok)
	assert.Equal(t, "jumping", c.Category)
	assert.False(t, c.Pro)

	_, ok = Classify("Imaginary Trait")
	assert.False(t, ok)
}

func TestCategoryOfUnknownFallsBackToMisc(t *testing.T) {
	assert.Equal(t, "stamina", CategoryOf("Endless Stride"))
	assert.Equal(t, CategoryMisc, CategoryOf("Imaginary Trait"))
}

func TestHasStackingBonus(t *testing.T) {
	tests := []struct {
		name   string
		traits []string
		want   bool
	}{
		{"sprint pair", []string{"Lightning Bolt", "Hard 'N' Fast"}, true},
		{"single member", []string{"Lightning Bolt"}, false},
		{"two independent pairs", []string{"Perfect Step", "Leaping Lancer", "Leaping Star"}, true},
		{"members of different groups", []string{"Lightning Bolt", "Perfect Step"}, false},
		{"empty", nil, false},
		{"unknown names", []string{"Imaginary Trait", "Other Trait"}, false},
		{"three-member group needs only two", []string{"Marathon Heart", "Second Wind"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasStackingBonus(tt.traits))
		})
	}
}

func TestStackingGroupMembersAreClassified(t *testing.T) {
	for _, g := range Groups() {
		for _, m := range g.Members {
			_, ok := Classify(m)
			assert.True(t, ok, "group %s member %s missing from classification table", g.Name, m)
		}
	}
}
