package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/padraicbc/stablebook/config"
	"github.com/padraicbc/stablebook/models"
)

// Setup opens a PostgreSQL connection using the provided config.
func Setup(cfg *config.Config) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.PostgresDSN())))
	db := bun.NewDB(sqldb, pgdialect.New())

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if err := db.PingContext(context.Background()); err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	return db
}

// CreateTables creates all tables in dependency order.
func CreateTables(ctx context.Context, db *bun.DB) error {
	tables := []interface{}{
		(*models.User)(nil),
		(*models.Breed)(nil),
		(*models.Horse)(nil),
		(*models.HorseCategory)(nil),
		(*models.HorseSurface)(nil),
		(*models.HorseDistance)(nil),
		(*models.HorsePosition)(nil),
		(*models.HorseBreed)(nil),
		(*models.HorseTrait)(nil),
		(*models.Race)(nil),
	}

	for _, model := range tables {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("creating table for %T: %w", model, err)
		}
	}

	constraints := []string{
		// Horse names are unique case-insensitively; the form lowercases for comparison only.
		`CREATE UNIQUE INDEX IF NOT EXISTS horses_name_ci ON horses (LOWER(name))`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'horse_categories_no_dupes') THEN ALTER TABLE horse_categories ADD CONSTRAINT horse_categories_no_dupes UNIQUE (horse_id, category); END IF; END $$`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'horse_surfaces_no_dupes') THEN ALTER TABLE horse_surfaces ADD CONSTRAINT horse_surfaces_no_dupes UNIQUE (horse_id, surface); END IF; END $$`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'horse_distances_no_dupes') THEN ALTER TABLE horse_distances ADD CONSTRAINT horse_distances_no_dupes UNIQUE (horse_id, distance); END IF; END $$`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'horse_positions_no_dupes') THEN ALTER TABLE horse_positions ADD CONSTRAINT horse_positions_no_dupes UNIQUE (horse_id, position); END IF; END $$`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'horse_traits_no_dupes') THEN ALTER TABLE horse_traits ADD CONSTRAINT horse_traits_no_dupes UNIQUE (horse_id, trait); END IF; END $$`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'horse_breeds_no_dupes') THEN ALTER TABLE horse_breeds ADD CONSTRAINT horse_breeds_no_dupes UNIQUE (horse_id, breed_id); END IF; END $$`,
	}
	for _, stmt := range constraints {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			log.Printf("constraint: %v", err)
		}
	}

	return nil
}
