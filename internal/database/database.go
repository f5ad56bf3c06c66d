package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"  // driver: postgres
	_ "modernc.org/sqlite" // driver: sqlite (embedded, used for local dev and tests)
)

// Connect opens the database selected by DB_DRIVER ("postgres" or "sqlite").
// The sqlite driver accepts the same $N placeholders as postgres, so the
// stores run one SQL dialect against both.
func Connect() (*sql.DB, error) {
	driver := getEnv("DB_DRIVER", "postgres")

	switch driver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_USER", "mathquest_user"),
			getEnv("DB_PASSWORD", "mathquest_password"),
			getEnv("DB_NAME", "mathquest"),
			getEnv("DB_SSLMODE", "disable"),
		)
		return Open("postgres", dsn)
	case "sqlite":
		dsn := getEnv("DB_PATH", "file:mathquest.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)")
		return Open("sqlite", dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", driver)
	}
}

// Open opens a database by driver name and DSN and verifies the connection.
func Open(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == "sqlite" {
		// modernc sqlite serializes writes; one connection avoids lock
		// churn and keeps an in-memory database on a single store.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Migrate creates the schema. Timestamps are unix seconds set by the
// application so the statement runs unchanged on both drivers.
func Migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS players (
		name               TEXT PRIMARY KEY,
		level              INT NOT NULL DEFAULT 1,
		score              INT NOT NULL DEFAULT 0,
		pending_answer     DOUBLE PRECISION,
		asked_questions    TEXT NOT NULL DEFAULT '[]',
		question_issued_at BIGINT,
		created_at         BIGINT NOT NULL,
		updated_at         BIGINT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_players_score ON players(score DESC, name ASC);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
