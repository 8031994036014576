package models

import "github.com/uptrace/bun"

// Breed is a shared breed entity, created on first use when a horse's
// breeding composition references a name not seen before. Names are
// deduplicated by exact, case-sensitive match.
type Breed struct {
	bun.BaseModel `bun:"table:breeds,alias:b"`

	BreedID int    `bun:"breed_id,pk,autoincrement" json:"breedID"`
	Name    string `bun:"name,notnull,unique" json:"name"`
}
