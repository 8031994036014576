package models

import "github.com/uptrace/bun"

// Race is one recurring race in the catalog. The catalog is seeded at
// startup and mostly static; new races may be appended but never drive
// matches unless active.
type Race struct {
	bun.BaseModel `bun:"table:races,alias:rc"`

	RaceID          int     `bun:"race_id,pk,autoincrement" json:"raceID"`
	RaceName        string  `bun:"race_name,notnull,unique" json:"raceName"`
	Surface         string  `bun:"surface,notnull" json:"surface"`
	Distance        string  `bun:"distance,notnull,default:'0'" json:"distance"`
	Category        string  `bun:"category,notnull" json:"category"`
	TierRestriction *string `bun:"tier_restriction" json:"tierRestriction,omitempty"`
	IsActive        bool    `bun:"is_active,notnull,default:true" json:"isActive"`
	StartTime       string  `bun:"start_time,notnull" json:"startTime"`
	TrackName       *string `bun:"track_name" json:"trackName,omitempty"`
	PrizeMoney      *int    `bun:"prize_money" json:"prizeMoney,omitempty"`
}
