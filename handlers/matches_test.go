package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/padraicbc/stablebook/models"
	"github.com/padraicbc/stablebook/racing"
)

func TestToRacingRace(t *testing.T) {
	m := &models.Race{
		RaceID:          11,
		RaceName:        "Harbour Dash",
		Surface:         "hard",
		Distance:        "1000",
		Category:        racing.CategoryFlat,
		TierRestriction: sp(racing.RestrictionEven),
		IsActive:        true,
		StartTime:       "11:00",
		TrackName:       sp("Bayview"),
		PrizeMoney:      ip(6000),
	}

	r := toRacingRace(m)
	assert.Equal(t, 11, r.ID)
	assert.Equal(t, racing.RestrictionEven, r.TierRestriction)
	assert.Equal(t, "Bayview", r.Track)
	assert.True(t, r.Active)
}

func TestToRacingRaceNoRestriction(t *testing.T) {
	m := &models.Race{RaceID: 2, RaceName: "Morning Mile", Surface: "good", Distance: "1600"}
	r := toRacingRace(m)
	assert.Equal(t, racing.RestrictionNone, r.TierRestriction)
	assert.Empty(t, r.Track)
	assert.False(t, r.Active)
}
