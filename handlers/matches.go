package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/stablebook/models"
	"github.com/padraicbc/stablebook/racing"
)

type matchHorseJSON struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Tier         *int     `json:"tier,omitempty"`
	Speed        int      `json:"speed"`
	SprintEnergy int      `json:"sprintEnergy"`
	Acceleration int      `json:"acceleration"`
	Agility      int      `json:"agility"`
	Jump         int      `json:"jump"`
	Traits       []string `json:"traits"`
}

type raceMatchesJSON struct {
	RaceID          int              `json:"raceID"`
	RaceName        string           `json:"raceName"`
	Surface         string           `json:"surface"`
	Distance        string           `json:"distance"`
	Category        string           `json:"category"`
	TierRestriction *string          `json:"tierRestriction,omitempty"`
	IsActive        bool             `json:"isActive"`
	StartTime       string           `json:"startTime"`
	TrackName       *string          `json:"trackName,omitempty"`
	PrizeMoney      *int             `json:"prizeMoney,omitempty"`
	MatchingHorses  []matchHorseJSON `json:"matchingHorses"`
}

type raceMatchesResponse struct {
	Races        []raceMatchesJSON `json:"races"`
	TotalHorses  int               `json:"totalHorses"`
	TotalMatches int               `json:"totalMatches"`
}

// RaceMatches reads a fresh snapshot of the catalog, runs the eligibility
// engine over every (race, horse) pair and returns the ranked field per
// race. Every race comes back, inactive ones with an empty field. An
// optional repeated ?category= param narrows the horse pool first, with
// misc horses passing any requirement.
func (h *Handler) RaceMatches(c echo.Context) error {
	ctx := c.Request().Context()

	var raceRows []models.Race
	if err := h.db.NewSelect().Model(&raceRows).
		OrderExpr("rc.start_time ASC, rc.race_id ASC").
		Scan(ctx); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var horseRows []models.Horse
	if err := h.db.NewSelect().Model(&horseRows).
		Relation("Categories").
		Relation("Surfaces").
		Relation("Distances").
		Relation("Traits").
		OrderExpr("h.horse_id ASC").
		Scan(ctx); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	required := c.QueryParams()["category"]

	races := make([]*racing.Race, 0, len(raceRows))
	for i := range raceRows {
		races = append(races, toRacingRace(&raceRows[i]))
	}
	horses := make([]*racing.Horse, 0, len(horseRows))
	for i := range horseRows {
		rh := toRacingHorse(&horseRows[i])
		if !racing.CategoryEligible(rh, required) {
			continue
		}
		horses = append(horses, rh)
	}

	matches := racing.BuildRaceMatches(races, horses)

	out := raceMatchesResponse{
		Races:        make([]raceMatchesJSON, 0, len(matches)),
		TotalHorses:  len(horseRows),
		TotalMatches: racing.MatchCount(matches),
	}
	for i, m := range matches {
		row := raceMatchesJSON{
			RaceID:          m.Race.ID,
			RaceName:        m.Race.Name,
			Surface:         m.Race.Surface,
			Distance:        m.Race.Distance,
			Category:        m.Race.Category,
			IsActive:        m.Race.Active,
			StartTime:       m.Race.StartTime,
			TrackName:       raceRows[i].TrackName,
			PrizeMoney:      m.Race.PrizeMoney,
			MatchingHorses:  make([]matchHorseJSON, 0, len(m.Horses)),
			TierRestriction: raceRows[i].TierRestriction,
		}
		for _, rh := range m.Horses {
			hj := matchHorseJSON{
				ID:           rh.ID,
				Name:         rh.Name,
				Tier:         rh.Tier,
				Speed:        rh.Effective(racing.StatSpeed),
				SprintEnergy: rh.Effective(racing.StatSprintEnergy),
				Acceleration: rh.Effective(racing.StatAcceleration),
				Agility:      rh.Effective(racing.StatAgility),
				Jump:         rh.Effective(racing.StatJump),
				Traits:       rh.Traits,
			}
			if hj.Traits == nil {
				hj.Traits = []string{}
			}
			row.MatchingHorses = append(row.MatchingHorses, hj)
		}
		out.Races = append(out.Races, row)
	}

	return c.JSON(http.StatusOK, out)
}

// toRacingRace builds the engine snapshot for one catalog row.
func toRacingRace(m *models.Race) *racing.Race {
	r := &racing.Race{
		ID:         m.RaceID,
		Name:       m.RaceName,
		Surface:    m.Surface,
		Distance:   m.Distance,
		Category:   m.Category,
		Active:     m.IsActive,
		StartTime:  m.StartTime,
		PrizeMoney: m.PrizeMoney,
	}
	if m.TierRestriction != nil {
		r.TierRestriction = *m.TierRestriction
	}
	if m.TrackName != nil {
		r.Track = *m.TrackName
	}
	return r
}
