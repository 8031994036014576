package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padraicbc/stablebook/models"
)

func ip(n int) *int       { return &n }
func sp(s string) *string { return &s }

func validInput() *horseInput {
	return &horseInput{
		Name:       "Comet",
		Tier:       ip(4),
		Speed:      ip(180),
		DietSpeed:  ip(20),
		Categories: []string{"flat_racing"},
		Surfaces:   []string{"hard"},
		Distances:  []string{"1600"},
		Positions:  []string{"front"},
		Traits:     []string{"Lightning Bolt"},
		Breeding:   []breedingLine{{Breed: "Thoroughbred", Percentage: 100}},
	}
}

func fieldsOf(errs []fieldError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Field
	}
	return out
}

func TestValidateHorseInputOK(t *testing.T) {
	in := validInput()
	normalizeHorseInput(in)
	assert.Empty(t, validateHorseInput(in))
}

func TestValidateHorseInputFailures(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(*horseInput)
		field string
	}{
		{"empty name", func(in *horseInput) { in.Name = "  " }, "name"},
		{"tier too high", func(in *horseInput) { in.Tier = ip(11) }, "tier"},
		{"tier zero", func(in *horseInput) { in.Tier = ip(0) }, "tier"},
		{"bad gender", func(in *horseInput) { in.Gender = sp("colt") }, "gender"},
		{"stat above cap", func(in *horseInput) { in.Speed = ip(301) }, "speed"},
		{"negative stat", func(in *horseInput) { in.Jump = ip(-1) }, "jump"},
		{"diet above cap", func(in *horseInput) { in.DietSpeed = ip(51) }, "dietSpeed"},
		{"no categories", func(in *horseInput) { in.Categories = nil }, "categories"},
		{"unknown category", func(in *horseInput) { in.Categories = []string{"dressage"} }, "categories"},
		{"no surfaces", func(in *horseInput) { in.Surfaces = nil }, "surfaces"},
		{"unknown surface", func(in *horseInput) { in.Surfaces = []string{"mud"} }, "surfaces"},
		{"no distances", func(in *horseInput) { in.Distances = nil }, "distances"},
		{"off-catalog distance", func(in *horseInput) { in.Distances = []string{"1500"} }, "distances"},
		{"no positions", func(in *horseInput) { in.Positions = nil }, "positions"},
		{"unknown position", func(in *horseInput) { in.Positions = []string{"side"} }, "positions"},
		{
			"too many traits",
			func(in *horseInput) {
				in.Traits = []string{"a", "b", "c", "d", "e", "f"}
			},
			"traits",
		},
		{"breeding percentage", func(in *horseInput) { in.Breeding = []breedingLine{{Breed: "Arabian", Percentage: 101}} }, "breeding"},
		{"breeding empty name", func(in *horseInput) { in.Breeding = []breedingLine{{Breed: " ", Percentage: 50}} }, "breeding"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mut(in)
			normalizeHorseInput(in)
			errs := validateHorseInput(in)
			require.NotEmpty(t, errs)
			assert.Contains(t, fieldsOf(errs), tt.field)
		})
	}
}

func TestValidateHorseInputReportsAllFields(t *testing.T) {
	in := &horseInput{Name: "", Tier: ip(12)}
	errs := validateHorseInput(in)
	fields := fieldsOf(errs)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "tier")
	assert.Contains(t, fields, "categories")
	assert.Contains(t, fields, "surfaces")
	assert.Contains(t, fields, "distances")
	assert.Contains(t, fields, "positions")
}

func TestNormalizeHorseInputDedupes(t *testing.T) {
	in := validInput()
	in.Name = "  Comet "
	in.Surfaces = []string{"hard", "hard", " soft "}
	in.Traits = []string{"Lightning Bolt", "Lightning Bolt"}
	normalizeHorseInput(in)

	assert.Equal(t, "Comet", in.Name)
	assert.Equal(t, []string{"hard", "soft"}, in.Surfaces)
	assert.Equal(t, []string{"Lightning Bolt"}, in.Traits)
}

func TestHorseToJSONEffectiveStatsAndStacking(t *testing.T) {
	m := &models.Horse{
		HorseID:   7,
		Name:      "Comet",
		Tier:      ip(6),
		Speed:     ip(180),
		DietSpeed: ip(20),
		Jump:      ip(90),
		Surfaces:  []*models.HorseSurface{{Surface: "hard"}},
		Distances: []*models.HorseDistance{{Distance: "1600"}},
		Traits: []*models.HorseTrait{
			{Trait: "Perfect Step"},
			{Trait: "Leaping Lancer"},
		},
		Breeding: []*models.HorseBreed{
			{Percentage: 50, Breed: &models.Breed{Name: "Thoroughbred"}},
			{Percentage: 50, Breed: &models.Breed{Name: "Arabian"}},
		},
	}

	out := horseToJSON(m)
	assert.Equal(t, 200, out.EffectiveSpeed, "base plus diet")
	assert.Equal(t, 90, out.EffectiveJump, "no diet bonus")
	assert.Equal(t, 0, out.EffectiveAgility)
	assert.True(t, out.StackingBonus, "clean_jump pair present")
	assert.Equal(t, "jumping", out.TraitCategories["Perfect Step"])
	require.Len(t, out.Breeding, 2)
	assert.Equal(t, "Thoroughbred", out.Breeding[0].Breed)
}

func TestToRacingHorseFlattensChildren(t *testing.T) {
	m := &models.Horse{
		HorseID:    3,
		Name:       "Drift",
		Gender:     sp("mare"),
		Categories: []*models.HorseCategory{{Category: "misc"}},
		Surfaces:   []*models.HorseSurface{{Surface: "soft"}, {Surface: "heavy"}},
		Distances:  []*models.HorseDistance{{Distance: "2800"}},
		Positions:  []*models.HorsePosition{{Position: "back"}},
	}

	rh := toRacingHorse(m)
	assert.Equal(t, 3, rh.ID)
	assert.Equal(t, "mare", rh.Gender)
	assert.Equal(t, []string{"misc"}, rh.Categories)
	assert.Equal(t, []string{"soft", "heavy"}, rh.Surfaces)
	assert.Equal(t, []string{"2800"}, rh.Distances)
	assert.Equal(t, []string{"back"}, rh.Positions)
	assert.Empty(t, rh.Traits)
}
