package db

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/padraicbc/stablebook/models"
	"github.com/padraicbc/stablebook/racing"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// raceCatalog is the recurring live-race schedule. It is inserted once and
// left alone afterwards; operators append new events through the API.
// Cross country events carry the "0" distance sentinel since their
// eligibility ignores distance.
var raceCatalog = []models.Race{
	{RaceName: "Dawn Sprint", Surface: "firm", Distance: "1200", IsActive: true, StartTime: "06:00", TrackName: strPtr("Silverbrook"), PrizeMoney: intPtr(5000)},
	{RaceName: "Morning Mile", Surface: "good", Distance: "1600", IsActive: true, StartTime: "09:00", TrackName: strPtr("Silverbrook"), PrizeMoney: intPtr(7500)},
	{RaceName: "Harbour Dash", Surface: "hard", Distance: "1000", IsActive: true, StartTime: "11:00", TierRestriction: strPtr(racing.RestrictionEven), TrackName: strPtr("Bayview"), PrizeMoney: intPtr(6000)},
	{RaceName: "Midday Classic", Surface: "good", Distance: "2000", IsActive: true, StartTime: "12:00", TierRestriction: strPtr(racing.RestrictionOdd), TrackName: strPtr("Kingsfield"), PrizeMoney: intPtr(12000)},
	{RaceName: "Golden Gallop", Surface: "firm", Distance: "2400", IsActive: true, StartTime: "14:00", TrackName: strPtr("Kingsfield"), PrizeMoney: intPtr(15000)},
	{RaceName: "Willow Steeplechase", Surface: "soft", Distance: "2800", IsActive: true, StartTime: "15:00", TrackName: strPtr("Willowmere"), PrizeMoney: intPtr(10000)},
	{RaceName: "Highland Steeplechase", Surface: "heavy", Distance: "3200", IsActive: true, StartTime: "16:00", TierRestriction: strPtr(racing.RestrictionOdd), TrackName: strPtr("Glenmoor"), PrizeMoney: intPtr(18000)},
	{RaceName: "Moorland Cross Country", Surface: "very_soft", Distance: "0", IsActive: true, StartTime: "10:00", TrackName: strPtr("Glenmoor"), PrizeMoney: intPtr(9000)},
	{RaceName: "Riverside Cross Country", Surface: "soft", Distance: "0", IsActive: true, StartTime: "13:00", TierRestriction: strPtr(racing.RestrictionEven), TrackName: strPtr("Willowmere"), PrizeMoney: intPtr(11000)},
	{RaceName: "Twilight Stakes", Surface: "good", Distance: "1800", IsActive: true, StartTime: "18:00", TrackName: strPtr("Bayview"), PrizeMoney: intPtr(8000)},
	{RaceName: "Moonlight Marathon", Surface: "soft", Distance: "3400", IsActive: true, StartTime: "21:00", TierRestriction: strPtr(racing.RestrictionOdd), TrackName: strPtr("Kingsfield"), PrizeMoney: intPtr(20000)},
	{RaceName: "Frostfield Chase", Surface: "heavy", Distance: "3000", StartTime: "17:00", IsActive: false, TrackName: strPtr("Glenmoor"), PrizeMoney: intPtr(14000)},
	{RaceName: "Summer Festival Sprint", Surface: "hard", Distance: "800", StartTime: "19:00", IsActive: false, TrackName: strPtr("Bayview"), PrizeMoney: intPtr(4000)},
}

// SeedRaces loads the recurring race catalog. Safe to run on every start:
// rows conflict on race_name and are skipped. Categories are inferred from
// the race name, the same rule the legacy importer applies.
func SeedRaces(ctx context.Context, db *bun.DB) error {
	for i := range raceCatalog {
		r := raceCatalog[i]
		r.Category = racing.InferCategory(r.RaceName)
		if _, err := db.NewInsert().Model(&r).
			On("CONFLICT (race_name) DO NOTHING").
			Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
