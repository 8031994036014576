package racing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogSizes(t *testing.T) {
	assert.Len(t, Surfaces, 6)
	assert.Len(t, Distances, 14)
	assert.Len(t, Positions, 3)
	assert.Len(t, HorseCategories, 4)
	assert.Len(t, RaceCategories, 3)
}

func TestValidDistance(t *testing.T) {
	assert.True(t, ValidDistance("1600"))
	assert.True(t, ValidDistance(" 2400 "))
	assert.False(t, ValidDistance("0"), "sentinel is not a horse distance")
	assert.False(t, ValidDistance("1500"))
	assert.False(t, ValidDistance("mile"))
}

func TestValidTier(t *testing.T) {
	assert.True(t, ValidTier(1))
	assert.True(t, ValidTier(10))
	assert.False(t, ValidTier(0))
	assert.False(t, ValidTier(11))
}

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Moorland Cross Country", CategoryCrossCountry},
		{"Riverside cross-country trial", CategoryCrossCountry},
		{"Willow Steeplechase", CategorySteeplechase},
		{"Frostfield Chase", CategorySteeplechase},
		{"Morning Mile", CategoryFlat},
		{"Dawn Sprint", CategoryFlat},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InferCategory(tt.name), tt.name)
	}
}
