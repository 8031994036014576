package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Breeds returns all known breed names, optionally narrowed by a search
// fragment. Breeds come into existence through horse saves, so this is the
// autocomplete source for the breeding form.
func (h *Handler) Breeds(c echo.Context) error {
	var names []string
	q := h.db.NewSelect().
		TableExpr("breeds").
		ColumnExpr("name").
		OrderExpr("name ASC")

	if frag := c.QueryParam("q"); frag != "" {
		q = q.Where("name ILIKE ?", fmt.Sprintf("%%%s%%", frag))
	}

	if err := q.Scan(c.Request().Context(), &names); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if names == nil {
		names = []string{}
	}

	return c.JSON(http.StatusOK, names)
}
