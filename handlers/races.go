package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/stablebook/models"
	"github.com/padraicbc/stablebook/racing"
)

type createRaceRequest struct {
	RaceName        string  `json:"raceName"`
	Surface         string  `json:"surface"`
	Distance        string  `json:"distance"`
	TierRestriction *string `json:"tierRestriction"`
	StartTime       string  `json:"startTime"`
	TrackName       *string `json:"trackName"`
	PrizeMoney      *int    `json:"prizeMoney"`
	IsActive        *bool   `json:"isActive"`
}

// Races returns the full race catalog, inactive events included.
func (h *Handler) Races(c echo.Context) error {
	var races []models.Race
	err := h.db.NewSelect().Model(&races).
		OrderExpr("rc.start_time ASC, rc.race_id ASC").
		Scan(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, races)
}

// CreateRace appends a new event to the catalog. The category comes from
// the race name, same rule as the seeded catalog.
func (h *Handler) CreateRace(c echo.Context) error {
	var req createRaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	req.RaceName = strings.TrimSpace(req.RaceName)
	req.Distance = strings.TrimSpace(req.Distance)

	var errs []fieldError
	if req.RaceName == "" {
		errs = append(errs, fieldError{Field: "raceName", Message: "race name is required"})
	}
	if !racing.ValidSurface(req.Surface) {
		errs = append(errs, fieldError{Field: "surface", Message: "unknown surface"})
	}
	// "0" marks a distance-insensitive event.
	if req.Distance != "0" && !racing.ValidDistance(req.Distance) {
		errs = append(errs, fieldError{Field: "distance", Message: "unknown distance"})
	}
	if req.TierRestriction != nil {
		switch *req.TierRestriction {
		case racing.RestrictionOdd, racing.RestrictionEven:
		default:
			errs = append(errs, fieldError{Field: "tierRestriction", Message: "must be odd_grades or even_grades"})
		}
	}
	if strings.TrimSpace(req.StartTime) == "" {
		errs = append(errs, fieldError{Field: "startTime", Message: "start time is required"})
	}
	if len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, errs)
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	race := &models.Race{
		RaceName:        req.RaceName,
		Surface:         req.Surface,
		Distance:        req.Distance,
		Category:        racing.InferCategory(req.RaceName),
		TierRestriction: req.TierRestriction,
		IsActive:        active,
		StartTime:       strings.TrimSpace(req.StartTime),
		TrackName:       req.TrackName,
		PrizeMoney:      req.PrizeMoney,
	}

	if _, err := h.db.NewInsert().Model(race).Exec(c.Request().Context()); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
			return echo.NewHTTPError(http.StatusConflict, "race already exists")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, race)
}
