// cmd/migrate/main.go
// Imports data from the legacy MySQL stable-book database into the local
// PostgreSQL database. The old schema kept the preference sets as
// comma-separated text columns on one wide horses table; this splits them
// into the child tables the API uses.
//
// Usage:
//
//	MYSQL_DSN="user:pass@tcp(host:3306)/stablebook?parseTime=true" \
//	DB_PASS="pgpass" \
//	go run ./cmd/migrate
package main

import (
	"context"
	"database/sql"
	"log"
	"strconv"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/uptrace/bun"

	"github.com/padraicbc/stablebook/config"
	bundb "github.com/padraicbc/stablebook/db"
	"github.com/padraicbc/stablebook/models"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()

	// --- MySQL ---
	if cfg.MySQLDSN == "" {
		log.Fatal("MYSQL_DSN required, e.g.: user:pass@tcp(host:3306)/stablebook?parseTime=true")
	}
	myDB, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("open mysql: %v", err)
	}
	defer myDB.Close()
	myDB.SetMaxOpenConns(4)
	if err := myDB.PingContext(ctx); err != nil {
		log.Fatalf("ping mysql: %v", err)
	}
	log.Println("connected to MySQL")

	// --- PostgreSQL ---
	pgDB := bundb.Setup(cfg)
	defer pgDB.Close()
	log.Println("connected to PostgreSQL")

	// Create tables and the recurring race catalog (idempotent)
	if err := bundb.CreateTables(ctx, pgDB); err != nil {
		log.Fatalf("create tables: %v", err)
	}
	if err := bundb.SeedRaces(ctx, pgDB); err != nil {
		log.Fatalf("seed races: %v", err)
	}

	steps := []struct {
		name string
		fn   func() (int, error)
	}{
		{"users", func() (int, error) { return migrateUsers(ctx, myDB, pgDB) }},
		{"horses", func() (int, error) { return migrateHorses(ctx, myDB, pgDB) }},
	}

	for _, s := range steps {
		n, err := s.fn()
		if err != nil {
			log.Fatalf("migrate %s: %v", s.name, err)
		}
		log.Printf("%-10s  %d rows migrated", s.name, n)
	}

	resetSequences(ctx, pgDB)
	log.Println("migration complete")
}

// --- helpers ---

func nullInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func nullStr(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	return &n.String
}

// splitCSV breaks one of the legacy comma-separated set columns into
// trimmed, deduplicated values.
func splitCSV(n sql.NullString) []string {
	if !n.Valid {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	for _, p := range strings.Split(n.String, ",") {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// --- per-table migrations ---

func migrateUsers(ctx context.Context, myDB *sql.DB, pgDB *bun.DB) (int, error) {
	rows, err := myDB.QueryContext(ctx, "SELECT id, username, password FROM users")
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	total := 0
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password); err != nil {
			return total, err
		}
		if _, err := pgDB.NewInsert().Model(&u).On("CONFLICT DO NOTHING").Exec(ctx); err != nil {
			return total, err
		}
		total++
	}
	return total, rows.Err()
}

// migrateHorses moves the wide legacy rows over one at a time, each in its
// own transaction: parent row first, then the set columns exploded into
// child tables, breeds created on first sight. Re-runs skip horses whose
// name already exists.
func migrateHorses(ctx context.Context, myDB *sql.DB, pgDB *bun.DB) (int, error) {
	rows, err := myDB.QueryContext(ctx,
		`SELECT name, tier, gender, notes,
		        speed, sprint_energy, acceleration, agility, jump,
		        diet_speed, diet_sprint_energy, diet_acceleration, diet_agility, diet_jump,
		        speed_maxed, sprint_energy_maxed, acceleration_maxed, agility_maxed, jump_maxed,
		        categories, surfaces, distances, positions, traits, breeding
		 FROM horses`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	total := 0
	for rows.Next() {
		var (
			name                                       string
			tier                                       sql.NullInt64
			gender, notes                              sql.NullString
			speed, sprintEnergy, accel, agility, jump  sql.NullInt64
			dSpeed, dSprintEnergy, dAccel, dAgility    sql.NullInt64
			dJump                                      sql.NullInt64
			speedMax, sprintMax, accelMax, agilityMax  bool
			jumpMax                                    bool
			categories, surfaces, distances, positions sql.NullString
			traitCSV, breedingCSV                      sql.NullString
		)
		if err := rows.Scan(&name, &tier, &gender, &notes,
			&speed, &sprintEnergy, &accel, &agility, &jump,
			&dSpeed, &dSprintEnergy, &dAccel, &dAgility, &dJump,
			&speedMax, &sprintMax, &accelMax, &agilityMax, &jumpMax,
			&categories, &surfaces, &distances, &positions, &traitCSV, &breedingCSV); err != nil {
			return total, err
		}

		horse := &models.Horse{
			Name:              strings.TrimSpace(name),
			Tier:              nullInt(tier),
			Gender:            nullStr(gender),
			Notes:             nullStr(notes),
			Speed:             nullInt(speed),
			SprintEnergy:      nullInt(sprintEnergy),
			Acceleration:      nullInt(accel),
			Agility:           nullInt(agility),
			Jump:              nullInt(jump),
			DietSpeed:         nullInt(dSpeed),
			DietSprintEnergy:  nullInt(dSprintEnergy),
			DietAcceleration:  nullInt(dAccel),
			DietAgility:       nullInt(dAgility),
			DietJump:          nullInt(dJump),
			SpeedMaxed:        speedMax,
			SprintEnergyMaxed: sprintMax,
			AccelerationMaxed: accelMax,
			AgilityMaxed:      agilityMax,
			JumpMaxed:         jumpMax,
		}

		inserted, err := insertHorseTree(ctx, pgDB, horse,
			splitCSV(categories), splitCSV(surfaces), splitCSV(distances),
			splitCSV(positions), splitCSV(traitCSV), breedingCSV)
		if err != nil {
			return total, err
		}
		if inserted {
			total++
		}
	}
	return total, rows.Err()
}

func insertHorseTree(ctx context.Context, pgDB *bun.DB, horse *models.Horse,
	categories, surfaces, distances, positions, traitNames []string, breedingCSV sql.NullString) (bool, error) {

	exists, err := pgDB.NewSelect().Model((*models.Horse)(nil)).
		Where("LOWER(name) = LOWER(?)", horse.Name).
		Exists(ctx)
	if err != nil || exists {
		return false, err
	}

	tx, err := pgDB.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.NewInsert().Model(horse).Exec(ctx); err != nil {
		return false, err
	}

	for _, v := range categories {
		if _, err := tx.NewInsert().Model(&models.HorseCategory{HorseID: horse.HorseID, Category: v}).Exec(ctx); err != nil {
			return false, err
		}
	}
	for _, v := range surfaces {
		if _, err := tx.NewInsert().Model(&models.HorseSurface{HorseID: horse.HorseID, Surface: v}).Exec(ctx); err != nil {
			return false, err
		}
	}
	for _, v := range distances {
		if _, err := tx.NewInsert().Model(&models.HorseDistance{HorseID: horse.HorseID, Distance: v}).Exec(ctx); err != nil {
			return false, err
		}
	}
	for _, v := range positions {
		if _, err := tx.NewInsert().Model(&models.HorsePosition{HorseID: horse.HorseID, Position: v}).Exec(ctx); err != nil {
			return false, err
		}
	}
	for _, v := range traitNames {
		if _, err := tx.NewInsert().Model(&models.HorseTrait{HorseID: horse.HorseID, Trait: v}).Exec(ctx); err != nil {
			return false, err
		}
	}

	// Breeding came over as "Thoroughbred:50, Arabian:50".
	if breedingCSV.Valid {
		for _, part := range strings.Split(breedingCSV.String, ",") {
			fields := strings.SplitN(strings.TrimSpace(part), ":", 2)
			if len(fields) != 2 {
				continue
			}
			pct, err := strconv.Atoi(strings.TrimSpace(fields[1]))
			if err != nil {
				continue
			}
			breed := &models.Breed{Name: strings.TrimSpace(fields[0])}
			if _, err := tx.NewInsert().Model(breed).
				On("CONFLICT (name) DO UPDATE SET name = EXCLUDED.name").
				Returning("breed_id").
				Exec(ctx); err != nil {
				return false, err
			}
			hb := &models.HorseBreed{HorseID: horse.HorseID, BreedID: breed.BreedID, Percentage: pct}
			if _, err := tx.NewInsert().Model(hb).Exec(ctx); err != nil {
				return false, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	committed = true
	return true, nil
}

// resetSequences realigns each serial sequence after explicit-ID inserts.
func resetSequences(ctx context.Context, pgDB *bun.DB) {
	stmts := []string{
		`SELECT setval(pg_get_serial_sequence('users', 'id'), COALESCE(MAX(id), 1)) FROM users`,
		`SELECT setval(pg_get_serial_sequence('horses', 'horse_id'), COALESCE(MAX(horse_id), 1)) FROM horses`,
		`SELECT setval(pg_get_serial_sequence('breeds', 'breed_id'), COALESCE(MAX(breed_id), 1)) FROM breeds`,
		`SELECT setval(pg_get_serial_sequence('races', 'race_id'), COALESCE(MAX(race_id), 1)) FROM races`,
	}
	for _, s := range stmts {
		if _, err := pgDB.ExecContext(ctx, s); err != nil {
			log.Printf("reset sequence: %v", err)
		}
	}
}
