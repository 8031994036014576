package models

import "github.com/uptrace/bun"

// Horse is the parent record for one catalogued horse. Preference sets and
// breeding live in the child tables below and are replaced wholesale on edit.
type Horse struct {
	bun.BaseModel `bun:"table:horses,alias:h"`

	HorseID int     `bun:"horse_id,pk,autoincrement" json:"horseID"`
	Name    string  `bun:"name,notnull" json:"name"`
	Tier    *int    `bun:"tier" json:"tier,omitempty"`
	Gender  *string `bun:"gender" json:"gender,omitempty"`
	Notes   *string `bun:"notes" json:"notes,omitempty"`

	Speed        *int `bun:"speed" json:"speed,omitempty"`
	SprintEnergy *int `bun:"sprint_energy" json:"sprintEnergy,omitempty"`
	Acceleration *int `bun:"acceleration" json:"acceleration,omitempty"`
	Agility      *int `bun:"agility" json:"agility,omitempty"`
	Jump         *int `bun:"jump" json:"jump,omitempty"`

	DietSpeed        *int `bun:"diet_speed" json:"dietSpeed,omitempty"`
	DietSprintEnergy *int `bun:"diet_sprint_energy" json:"dietSprintEnergy,omitempty"`
	DietAcceleration *int `bun:"diet_acceleration" json:"dietAcceleration,omitempty"`
	DietAgility      *int `bun:"diet_agility" json:"dietAgility,omitempty"`
	DietJump         *int `bun:"diet_jump" json:"dietJump,omitempty"`

	SpeedMaxed        bool `bun:"speed_maxed,notnull,default:false" json:"speedMaxed"`
	SprintEnergyMaxed bool `bun:"sprint_energy_maxed,notnull,default:false" json:"sprintEnergyMaxed"`
	AccelerationMaxed bool `bun:"acceleration_maxed,notnull,default:false" json:"accelerationMaxed"`
	AgilityMaxed      bool `bun:"agility_maxed,notnull,default:false" json:"agilityMaxed"`
	JumpMaxed         bool `bun:"jump_maxed,notnull,default:false" json:"jumpMaxed"`

	Categories []*HorseCategory `bun:"rel:has-many,join:horse_id=horse_id" json:"-"`
	Surfaces   []*HorseSurface  `bun:"rel:has-many,join:horse_id=horse_id" json:"-"`
	Distances  []*HorseDistance `bun:"rel:has-many,join:horse_id=horse_id" json:"-"`
	Positions  []*HorsePosition `bun:"rel:has-many,join:horse_id=horse_id" json:"-"`
	Breeding   []*HorseBreed    `bun:"rel:has-many,join:horse_id=horse_id" json:"-"`
	Traits     []*HorseTrait    `bun:"rel:has-many,join:horse_id=horse_id" json:"-"`
}

// HorseCategory links a horse to one race category (flat_racing,
// steeplechase, cross_country, misc).
type HorseCategory struct {
	bun.BaseModel `bun:"table:horse_categories,alias:hc"`

	ID       int    `bun:"id,pk,autoincrement" json:"id"`
	HorseID  int    `bun:"horse_id,notnull" json:"horseID"`
	Category string `bun:"category,notnull" json:"category"`
}

// HorseSurface links a horse to one preferred surface grade.
type HorseSurface struct {
	bun.BaseModel `bun:"table:horse_surfaces,alias:hs"`

	ID      int    `bun:"id,pk,autoincrement" json:"id"`
	HorseID int    `bun:"horse_id,notnull" json:"horseID"`
	Surface string `bun:"surface,notnull" json:"surface"`
}

// HorseDistance links a horse to one preferred distance. Distances are
// stored as text for parity with the race catalog; comparison is numeric.
type HorseDistance struct {
	bun.BaseModel `bun:"table:horse_distances,alias:hd"`

	ID       int    `bun:"id,pk,autoincrement" json:"id"`
	HorseID  int    `bun:"horse_id,notnull" json:"horseID"`
	Distance string `bun:"distance,notnull" json:"distance"`
}

// HorsePosition links a horse to one preferred field position.
type HorsePosition struct {
	bun.BaseModel `bun:"table:horse_positions,alias:hp"`

	ID       int    `bun:"id,pk,autoincrement" json:"id"`
	HorseID  int    `bun:"horse_id,notnull" json:"horseID"`
	Position string `bun:"position,notnull" json:"position"`
}

// HorseBreed is one line of a horse's breeding composition.
type HorseBreed struct {
	bun.BaseModel `bun:"table:horse_breeds,alias:hb"`

	ID         int `bun:"id,pk,autoincrement" json:"id"`
	HorseID    int `bun:"horse_id,notnull" json:"horseID"`
	BreedID    int `bun:"breed_id,notnull" json:"breedID"`
	Percentage int `bun:"percentage,notnull" json:"percentage"`

	Breed *Breed `bun:"rel:belongs-to,join:breed_id=breed_id" json:"-"`
}

// HorseTrait links a horse to one named trait, at most five per horse.
type HorseTrait struct {
	bun.BaseModel `bun:"table:horse_traits,alias:ht"`

	ID      int    `bun:"id,pk,autoincrement" json:"id"`
	HorseID int    `bun:"horse_id,notnull" json:"horseID"`
	Trait   string `bun:"trait,notnull" json:"trait"`
}
