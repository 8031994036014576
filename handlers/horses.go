package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"

	"github.com/padraicbc/stablebook/models"
	"github.com/padraicbc/stablebook/racing"
	"github.com/padraicbc/stablebook/traits"
)

const maxTraits = 5

type breedingLine struct {
	Breed      string `json:"breed"`
	Percentage int    `json:"percentage"`
}

// horseInput is the create/update form payload. The relational sets are
// replaced wholesale on every save.
type horseInput struct {
	Name   string  `json:"name"`
	Tier   *int    `json:"tier"`
	Gender *string `json:"gender"`
	Notes  *string `json:"notes"`

	Speed        *int `json:"speed"`
	SprintEnergy *int `json:"sprintEnergy"`
	Acceleration *int `json:"acceleration"`
	Agility      *int `json:"agility"`
	Jump         *int `json:"jump"`

	DietSpeed        *int `json:"dietSpeed"`
	DietSprintEnergy *int `json:"dietSprintEnergy"`
	DietAcceleration *int `json:"dietAcceleration"`
	DietAgility      *int `json:"dietAgility"`
	DietJump         *int `json:"dietJump"`

	SpeedMaxed        bool `json:"speedMaxed"`
	SprintEnergyMaxed bool `json:"sprintEnergyMaxed"`
	AccelerationMaxed bool `json:"accelerationMaxed"`
	AgilityMaxed      bool `json:"agilityMaxed"`
	JumpMaxed         bool `json:"jumpMaxed"`

	Categories []string       `json:"categories"`
	Surfaces   []string       `json:"surfaces"`
	Distances  []string       `json:"distances"`
	Positions  []string       `json:"positions"`
	Breeding   []breedingLine `json:"breeding"`
	Traits     []string       `json:"traits"`
}

type horseJSON struct {
	HorseID int     `json:"horseID"`
	Name    string  `json:"name"`
	Tier    *int    `json:"tier,omitempty"`
	Gender  *string `json:"gender,omitempty"`
	Notes   *string `json:"notes,omitempty"`

	Speed        *int `json:"speed,omitempty"`
	SprintEnergy *int `json:"sprintEnergy,omitempty"`
	Acceleration *int `json:"acceleration,omitempty"`
	Agility      *int `json:"agility,omitempty"`
	Jump         *int `json:"jump,omitempty"`

	DietSpeed        *int `json:"dietSpeed,omitempty"`
	DietSprintEnergy *int `json:"dietSprintEnergy,omitempty"`
	DietAcceleration *int `json:"dietAcceleration,omitempty"`
	DietAgility      *int `json:"dietAgility,omitempty"`
	DietJump         *int `json:"dietJump,omitempty"`

	SpeedMaxed        bool `json:"speedMaxed"`
	SprintEnergyMaxed bool `json:"sprintEnergyMaxed"`
	AccelerationMaxed bool `json:"accelerationMaxed"`
	AgilityMaxed      bool `json:"agilityMaxed"`
	JumpMaxed         bool `json:"jumpMaxed"`

	EffectiveSpeed        int `json:"effectiveSpeed"`
	EffectiveSprintEnergy int `json:"effectiveSprintEnergy"`
	EffectiveAcceleration int `json:"effectiveAcceleration"`
	EffectiveAgility      int `json:"effectiveAgility"`
	EffectiveJump         int `json:"effectiveJump"`

	Categories []string       `json:"categories"`
	Surfaces   []string       `json:"surfaces"`
	Distances  []string       `json:"distances"`
	Positions  []string       `json:"positions"`
	Breeding   []breedingLine `json:"breeding"`
	Traits     []string       `json:"traits"`

	TraitCategories map[string]string `json:"traitCategories"`
	StackingBonus   bool              `json:"stackingBonus"`
}

// GetHorses returns the full catalog with children, optionally filtered.
func (h *Handler) GetHorses(c echo.Context) error {
	q := c.QueryParams()

	var horses []models.Horse
	sb := h.db.NewSelect().Model(&horses).
		Relation("Categories").
		Relation("Surfaces").
		Relation("Distances").
		Relation("Positions").
		Relation("Breeding").
		Relation("Breeding.Breed").
		Relation("Traits").
		OrderExpr("h.name ASC")

	applyHorseFilters(sb, q)

	if err := sb.Scan(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	result := make([]horseJSON, len(horses))
	for i := range horses {
		result[i] = horseToJSON(&horses[i])
	}
	return c.JSON(http.StatusOK, result)
}

// GetHorse returns one horse with children.
func (h *Handler) GetHorse(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid horse id")
	}

	horse := &models.Horse{}
	err = h.db.NewSelect().Model(horse).
		Relation("Categories").
		Relation("Surfaces").
		Relation("Distances").
		Relation("Positions").
		Relation("Breeding").
		Relation("Breeding.Breed").
		Relation("Traits").
		Where("h.horse_id = ?", id).
		Scan(c.Request().Context())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "horse not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, horseToJSON(horse))
}

// CreateHorse validates the form and inserts the parent row plus all child
// sets inside one transaction, so a failed child insert never leaves a
// half-written horse behind.
func (h *Handler) CreateHorse(c echo.Context) error {
	var in horseInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	normalizeHorseInput(&in)

	if errs := validateHorseInput(&in); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, errs)
	}

	ctx := c.Request().Context()
	taken, err := h.nameTaken(ctx, in.Name, 0)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if taken {
		return c.JSON(http.StatusConflict, []fieldError{{Field: "name", Message: "name already in use"}})
	}

	horse := horseFromInput(&in)

	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.NewInsert().Model(horse).Exec(ctx); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
			return c.JSON(http.StatusConflict, []fieldError{{Field: "name", Message: "name already in use"}})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := insertHorseChildren(ctx, tx, horse.HorseID, &in); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := tx.Commit(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	committed = true

	return c.JSON(http.StatusCreated, map[string]int{"horseID": horse.HorseID})
}

// UpdateHorse replaces the parent row's fields and every child set
// (delete-all-then-insert) in one transaction.
func (h *Handler) UpdateHorse(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid horse id")
	}

	var in horseInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	normalizeHorseInput(&in)

	if errs := validateHorseInput(&in); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, errs)
	}

	ctx := c.Request().Context()
	exists, err := h.db.NewSelect().Model((*models.Horse)(nil)).
		Where("horse_id = ?", id).
		Exists(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !exists {
		return echo.NewHTTPError(http.StatusNotFound, "horse not found")
	}

	taken, err := h.nameTaken(ctx, in.Name, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if taken {
		return c.JSON(http.StatusConflict, []fieldError{{Field: "name", Message: "name already in use"}})
	}

	horse := horseFromInput(&in)
	horse.HorseID = id

	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.NewUpdate().Model(horse).WherePK().Exec(ctx); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := deleteHorseChildren(ctx, tx, id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := insertHorseChildren(ctx, tx, id, &in); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := tx.Commit(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	committed = true

	return c.NoContent(http.StatusOK)
}

// DeleteHorse removes the child rows before the parent row; there is no
// cascade in the schema, ordering is enforced here.
func (h *Handler) DeleteHorse(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid horse id")
	}

	ctx := c.Request().Context()
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := deleteHorseChildren(ctx, tx, id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	res, err := tx.NewDelete().Model((*models.Horse)(nil)).
		Where("horse_id = ?", id).
		Exec(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "horse not found")
	}
	if err := tx.Commit(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	committed = true

	return c.NoContent(http.StatusOK)
}

// --- helpers ---

func (h *Handler) nameTaken(ctx context.Context, name string, excludeID int) (bool, error) {
	q := h.db.NewSelect().Model((*models.Horse)(nil)).
		Where("LOWER(name) = LOWER(?)", name)
	if excludeID != 0 {
		q = q.Where("horse_id != ?", excludeID)
	}
	return q.Exists(ctx)
}

func normalizeHorseInput(in *horseInput) {
	in.Name = strings.TrimSpace(in.Name)
	in.Categories = dedupe(in.Categories)
	in.Surfaces = dedupe(in.Surfaces)
	in.Distances = dedupe(in.Distances)
	in.Positions = dedupe(in.Positions)
	in.Traits = dedupe(in.Traits)
}

func dedupe(ss []string) []string {
	seen := make(map[string]bool, len(ss))
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// validateHorseInput rejects a save before anything reaches the database.
// Every problem is reported against its field, not just the first.
func validateHorseInput(in *horseInput) []fieldError {
	var errs []fieldError
	add := func(field, msg string) { errs = append(errs, fieldError{Field: field, Message: msg}) }

	if in.Name == "" {
		add("name", "name is required")
	}
	if in.Tier != nil && !racing.ValidTier(*in.Tier) {
		add("tier", "tier must be between 1 and 10")
	}
	if in.Gender != nil && *in.Gender != "" && !racing.ValidGender(*in.Gender) {
		add("gender", "gender must be stallion, mare or gelding")
	}

	for _, s := range []struct {
		field string
		val   *int
	}{
		{"speed", in.Speed}, {"sprintEnergy", in.SprintEnergy},
		{"acceleration", in.Acceleration}, {"agility", in.Agility}, {"jump", in.Jump},
	} {
		if s.val != nil && (*s.val < 0 || *s.val > 300) {
			add(s.field, "stat must be between 0 and 300")
		}
	}
	for _, s := range []struct {
		field string
		val   *int
	}{
		{"dietSpeed", in.DietSpeed}, {"dietSprintEnergy", in.DietSprintEnergy},
		{"dietAcceleration", in.DietAcceleration}, {"dietAgility", in.DietAgility},
		{"dietJump", in.DietJump},
	} {
		if s.val != nil && (*s.val < 0 || *s.val > 50) {
			add(s.field, "diet bonus must be between 0 and 50")
		}
	}

	if len(in.Categories) == 0 {
		add("categories", "at least one category is required")
	}
	for _, v := range in.Categories {
		if !racing.ValidHorseCategory(v) {
			add("categories", fmt.Sprintf("unknown category %q", v))
		}
	}
	if len(in.Surfaces) == 0 {
		add("surfaces", "at least one surface is required")
	}
	for _, v := range in.Surfaces {
		if !racing.ValidSurface(v) {
			add("surfaces", fmt.Sprintf("unknown surface %q", v))
		}
	}
	if len(in.Distances) == 0 {
		add("distances", "at least one distance is required")
	}
	for _, v := range in.Distances {
		if !racing.ValidDistance(v) {
			add("distances", fmt.Sprintf("unknown distance %q", v))
		}
	}
	if len(in.Positions) == 0 {
		add("positions", "at least one field position is required")
	}
	for _, v := range in.Positions {
		if !racing.ValidPosition(v) {
			add("positions", fmt.Sprintf("unknown position %q", v))
		}
	}

	if len(in.Traits) > maxTraits {
		add("traits", fmt.Sprintf("at most %d traits allowed", maxTraits))
	}

	for _, bl := range in.Breeding {
		if strings.TrimSpace(bl.Breed) == "" {
			add("breeding", "breed name is required")
		}
		if bl.Percentage < 0 || bl.Percentage > 100 {
			add("breeding", "percentage must be between 0 and 100")
		}
	}

	return errs
}

func horseFromInput(in *horseInput) *models.Horse {
	return &models.Horse{
		Name:              in.Name,
		Tier:              in.Tier,
		Gender:            in.Gender,
		Notes:             in.Notes,
		Speed:             in.Speed,
		SprintEnergy:      in.SprintEnergy,
		Acceleration:      in.Acceleration,
		Agility:           in.Agility,
		Jump:              in.Jump,
		DietSpeed:         in.DietSpeed,
		DietSprintEnergy:  in.DietSprintEnergy,
		DietAcceleration:  in.DietAcceleration,
		DietAgility:       in.DietAgility,
		DietJump:          in.DietJump,
		SpeedMaxed:        in.SpeedMaxed,
		SprintEnergyMaxed: in.SprintEnergyMaxed,
		AccelerationMaxed: in.AccelerationMaxed,
		AgilityMaxed:      in.AgilityMaxed,
		JumpMaxed:         in.JumpMaxed,
	}
}

// insertHorseChildren writes all relational sets for one horse. Breeds are
// created on first use, matched by exact case-sensitive name.
func insertHorseChildren(ctx context.Context, tx bun.Tx, horseID int, in *horseInput) error {
	for _, v := range in.Categories {
		if _, err := tx.NewInsert().Model(&models.HorseCategory{HorseID: horseID, Category: v}).Exec(ctx); err != nil {
			return err
		}
	}
	for _, v := range in.Surfaces {
		if _, err := tx.NewInsert().Model(&models.HorseSurface{HorseID: horseID, Surface: v}).Exec(ctx); err != nil {
			return err
		}
	}
	for _, v := range in.Distances {
		if _, err := tx.NewInsert().Model(&models.HorseDistance{HorseID: horseID, Distance: v}).Exec(ctx); err != nil {
			return err
		}
	}
	for _, v := range in.Positions {
		if _, err := tx.NewInsert().Model(&models.HorsePosition{HorseID: horseID, Position: v}).Exec(ctx); err != nil {
			return err
		}
	}
	for _, v := range in.Traits {
		if _, err := tx.NewInsert().Model(&models.HorseTrait{HorseID: horseID, Trait: v}).Exec(ctx); err != nil {
			return err
		}
	}
	for _, bl := range in.Breeding {
		breedID, err := findOrCreateBreed(ctx, tx, strings.TrimSpace(bl.Breed))
		if err != nil {
			return err
		}
		hb := &models.HorseBreed{HorseID: horseID, BreedID: breedID, Percentage: bl.Percentage}
		if _, err := tx.NewInsert().Model(hb).Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

func findOrCreateBreed(ctx context.Context, tx bun.Tx, name string) (int, error) {
	breed := &models.Breed{}
	err := tx.NewSelect().Model(breed).Where("name = ?", name).Scan(ctx)
	if err == nil {
		return breed.BreedID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	breed = &models.Breed{Name: name}
	if _, err := tx.NewInsert().Model(breed).
		On("CONFLICT (name) DO UPDATE SET name = EXCLUDED.name").
		Returning("breed_id").
		Exec(ctx); err != nil {
		return 0, err
	}
	return breed.BreedID, nil
}

func deleteHorseChildren(ctx context.Context, tx bun.Tx, horseID int) error {
	children := []interface{}{
		(*models.HorseCategory)(nil),
		(*models.HorseSurface)(nil),
		(*models.HorseDistance)(nil),
		(*models.HorsePosition)(nil),
		(*models.HorseBreed)(nil),
		(*models.HorseTrait)(nil),
	}
	for _, m := range children {
		if _, err := tx.NewDelete().Model(m).Where("horse_id = ?", horseID).Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

// applyHorseFilters narrows the listing from query params. Category uses
// the engine's misc-wildcard rule via EXISTS.
func applyHorseFilters(sb *bun.SelectQuery, q map[string][]string) {
	get := func(k string) string {
		if v, ok := q[k]; ok && len(v) > 0 {
			return v[0]
		}
		return ""
	}

	if v := get("name"); v != "" {
		sb.Where("h.name ILIKE ?", "%"+v+"%")
	}
	if v := get("gender"); v != "" {
		sb.Where("h.gender = ?", v)
	}
	if v := get("minTier"); v != "" {
		sb.Where("h.tier >= ?", v)
	}
	if v := get("maxTier"); v != "" {
		sb.Where("h.tier <= ?", v)
	}
	if v := get("category"); v != "" {
		sb.Where(`EXISTS (SELECT 1 FROM horse_categories hc WHERE hc.horse_id = h.horse_id AND hc.category IN (?, 'misc'))`, v)
	}
	if v := get("surface"); v != "" {
		sb.Where(`EXISTS (SELECT 1 FROM horse_surfaces hs WHERE hs.horse_id = h.horse_id AND hs.surface = ?)`, v)
	}
	if v := get("distance"); v != "" {
		sb.Where(`EXISTS (SELECT 1 FROM horse_distances hd WHERE hd.horse_id = h.horse_id AND hd.distance = ?)`, v)
	}
	if v := get("position"); v != "" {
		sb.Where(`EXISTS (SELECT 1 FROM horse_positions hp WHERE hp.horse_id = h.horse_id AND hp.position = ?)`, v)
	}
	if v := get("breed"); v != "" {
		sb.Where(`EXISTS (SELECT 1 FROM horse_breeds hb JOIN breeds b ON b.breed_id = hb.breed_id WHERE hb.horse_id = h.horse_id AND b.name = ?)`, v)
	}
}

// horseToJSON flattens a loaded model into the API payload, computing
// effective stats and the presentation-only stacking flag.
func horseToJSON(m *models.Horse) horseJSON {
	rh := toRacingHorse(m)

	out := horseJSON{
		HorseID:           m.HorseID,
		Name:              m.Name,
		Tier:              m.Tier,
		Gender:            m.Gender,
		Notes:             m.Notes,
		Speed:             m.Speed,
		SprintEnergy:      m.SprintEnergy,
		Acceleration:      m.Acceleration,
		Agility:           m.Agility,
		Jump:              m.Jump,
		DietSpeed:         m.DietSpeed,
		DietSprintEnergy:  m.DietSprintEnergy,
		DietAcceleration:  m.DietAcceleration,
		DietAgility:       m.DietAgility,
		DietJump:          m.DietJump,
		SpeedMaxed:        m.SpeedMaxed,
		SprintEnergyMaxed: m.SprintEnergyMaxed,
		AccelerationMaxed: m.AccelerationMaxed,
		AgilityMaxed:      m.AgilityMaxed,
		JumpMaxed:         m.JumpMaxed,

		EffectiveSpeed:        rh.Effective(racing.StatSpeed),
		EffectiveSprintEnergy: rh.Effective(racing.StatSprintEnergy),
		EffectiveAcceleration: rh.Effective(racing.StatAcceleration),
		EffectiveAgility:      rh.Effective(racing.StatAgility),
		EffectiveJump:         rh.Effective(racing.StatJump),

		Categories: rh.Categories,
		Surfaces:   rh.Surfaces,
		Distances:  rh.Distances,
		Positions:  rh.Positions,
		Traits:     rh.Traits,

		TraitCategories: make(map[string]string, len(rh.Traits)),
		StackingBonus:   traits.HasStackingBonus(rh.Traits),
	}

	out.Breeding = make([]breedingLine, 0, len(m.Breeding))
	for _, hb := range m.Breeding {
		name := ""
		if hb.Breed != nil {
			name = hb.Breed.Name
		}
		out.Breeding = append(out.Breeding, breedingLine{Breed: name, Percentage: hb.Percentage})
	}

	for _, t := range rh.Traits {
		out.TraitCategories[t] = traits.CategoryOf(t)
	}

	return out
}

// toRacingHorse builds the engine snapshot for one loaded model.
func toRacingHorse(m *models.Horse) *racing.Horse {
	rh := &racing.Horse{
		ID:               m.HorseID,
		Name:             m.Name,
		Tier:             m.Tier,
		Speed:            m.Speed,
		SprintEnergy:     m.SprintEnergy,
		Acceleration:     m.Acceleration,
		Agility:          m.Agility,
		Jump:             m.Jump,
		DietSpeed:        m.DietSpeed,
		DietSprintEnergy: m.DietSprintEnergy,
		DietAcceleration: m.DietAcceleration,
		DietAgility:      m.DietAgility,
		DietJump:         m.DietJump,
	}
	if m.Gender != nil {
		rh.Gender = *m.Gender
	}
	for _, v := range m.Categories {
		rh.Categories = append(rh.Categories, v.Category)
	}
	for _, v := range m.Surfaces {
		rh.Surfaces = append(rh.Surfaces, v.Surface)
	}
	for _, v := range m.Distances {
		rh.Distances = append(rh.Distances, v.Distance)
	}
	for _, v := range m.Positions {
		rh.Positions = append(rh.Positions, v.Position)
	}
	for _, v := range m.Traits {
		rh.Traits = append(rh.Traits, v.Trait)
	}
	return rh
}
