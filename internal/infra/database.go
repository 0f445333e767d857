package infra

import (
	"fmt"

	"einsatzplan/internal/config"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and applies all
// pending schema migrations. The schema is managed exclusively via recorded
// SQL migrations, never AutoMigrate, so deployed databases evolve in a
// known order.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return db, nil
}

// migration is one recorded schema step. Versions are applied in order and
// written to schema_migrations, so each statement runs exactly once per
// database regardless of restarts.
type migration struct {
	version int
	descr   string
	sql     string
}

var migrations = []migration{
	{1, "create users", `
CREATE TABLE IF NOT EXISTS users (
    username      TEXT PRIMARY KEY,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL DEFAULT 'mitarbeiter',
    vorname       TEXT NOT NULL DEFAULT '',
    nachname      TEXT NOT NULL DEFAULT '',
    email         TEXT,
    s34a          TEXT NOT NULL DEFAULT 'nein',
    s34a_art      TEXT NOT NULL DEFAULT '',
    pschein       TEXT NOT NULL DEFAULT 'nein',
    bewach_id     TEXT NOT NULL DEFAULT '',
    steuernummer  TEXT NOT NULL DEFAULT '',
    bsw           TEXT NOT NULL DEFAULT 'nein',
    sanitaeter    TEXT NOT NULL DEFAULT 'nein',
    stundensatz   DOUBLE PRECISION,
    consent_given BOOLEAN NOT NULL DEFAULT FALSE,
    consent_name  TEXT NOT NULL DEFAULT '',
    consent_date  TEXT NOT NULL DEFAULT '',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`},
	{2, "create events", `
CREATE TABLE IF NOT EXISTS events (
    id               TEXT PRIMARY KEY,
    title            TEXT NOT NULL DEFAULT '',
    ort              TEXT NOT NULL DEFAULT '',
    dienstkleidung   TEXT NOT NULL DEFAULT '',
    auftraggeber     TEXT NOT NULL DEFAULT '',
    start            TEXT NOT NULL DEFAULT '',
    planned_end_time TEXT NOT NULL DEFAULT '',
    frist            TEXT NOT NULL DEFAULT '',
    status           TEXT NOT NULL DEFAULT 'geplant',
    category         TEXT NOT NULL DEFAULT 'CP',
    required_staff   INT  NOT NULL DEFAULT 0,
    use_event_rate   INT,
    stundensatz      DOUBLE PRECISION,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`},
	{3, "create responses", `
CREATE TABLE IF NOT EXISTS responses (
    id            BIGSERIAL PRIMARY KEY,
    event_id      TEXT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
    username      TEXT NOT NULL REFERENCES users(username) ON DELETE CASCADE,
    status        TEXT NOT NULL DEFAULT '',
    remark        TEXT NOT NULL DEFAULT '',
    start_time    TEXT NOT NULL DEFAULT '',
    end_time      TEXT NOT NULL DEFAULT '',
    rate_override DOUBLE PRECISION,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CONSTRAINT idx_responses_event_user UNIQUE (event_id, username)
)`},
	{4, "index responses by event", `
CREATE INDEX IF NOT EXISTS idx_responses_event ON responses (event_id)`},
	{5, "index responses by user", `
CREATE INDEX IF NOT EXISTS idx_responses_username ON responses (username)`},
}

// RunMigrations applies every migration not yet recorded in
// schema_migrations. Also used by integration tests against a fresh DB.
func RunMigrations(db *gorm.DB) error {
	if err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
    version    INT PRIMARY KEY,
    descr      TEXT NOT NULL,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`).Error; err != nil {
		return fmt.Errorf("schema_migrations: %w", err)
	}

	for _, m := range migrations {
		var applied int64
		if err := db.Raw(
			`SELECT COUNT(*) FROM schema_migrations WHERE version = ?`, m.version,
		).Scan(&applied).Error; err != nil {
			return err
		}
		if applied > 0 {
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(m.sql).Error; err != nil {
				return err
			}
			return tx.Exec(
				`INSERT INTO schema_migrations (version, descr) VALUES (?, ?)`,
				m.version, m.descr,
			).Error
		})
		if err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.version, m.descr, err)
		}
		log.Info().Int("version", m.version).Str("descr", m.descr).Msg("migration applied")
	}
	return nil
}

// SeedAdmin ensures the bootstrap admin account exists with the configured
// credentials. The account is excluded from all roster listings.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), 12)
	if err != nil {
		return err
	}
	return db.Exec(`
INSERT INTO users (username, password_hash, role, vorname, nachname)
VALUES (?, ?, 'vorgesetzter', 'Admin', 'Test')
ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash`,
		cfg.AdminUsername, string(hash)).Error
}
