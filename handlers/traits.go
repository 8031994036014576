package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/stablebook/traits"
)

type traitTableJSON struct {
	Classifications map[string]traits.Classification `json:"classifications"`
	StackingGroups  []traits.StackingGroup           `json:"stackingGroups"`
}

// Traits returns the static trait classification table and the stacking
// groups so the client can group pickers and highlight synergies without
// hardcoding a second copy.
func (h *Handler) Traits(c echo.Context) error {
	return c.JSON(http.StatusOK, traitTableJSON{
		Classifications: traits.All(),
		StackingGroups:  traits.Groups(),
	})
}
