package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Connect establishes a connection to the database. The driver is selected
// with DB_TYPE ("sqlite" by default, "postgres" with DATABASE_URL set).
func Connect() error {
	dbType := os.Getenv("DB_TYPE")
	if dbType == "" {
		dbType = "sqlite"
	}

	if dbType == "postgres" {
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			return fmt.Errorf("DATABASE_URL environment variable is not set")
		}
		db, err := sqlx.Connect("postgres", dsn)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %v", err)
		}
		DB = db
		return initializeSchema()
	}

	// Create data directory if it doesn't exist
	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dataDir := "data"
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %v", err)
		}
		dbPath = filepath.Join(dataDir, "vocabsrs.db")
	}

	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %v", err)
	}

	// SQLite doesn't support multiple writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	DB = db

	return initializeSchema()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema() error {
	_, err := DB.Exec(`
		CREATE TABLE IF NOT EXISTS cards (
			id TEXT PRIMARY KEY,
			word TEXT NOT NULL,
			meaning TEXT NOT NULL,
			translation TEXT NOT NULL,
			ease_factor REAL NOT NULL DEFAULT 2.5,
			interval INTEGER NOT NULL DEFAULT 0,
			repetitions INTEGER NOT NULL DEFAULT 0,
			next_review_date TIMESTAMP NOT NULL,
			last_review_date TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create cards table: %v", err)
	}

	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS deck_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			completed_today INTEGER NOT NULL DEFAULT 0,
			streak INTEGER NOT NULL DEFAULT 0,
			last_reset_date TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create deck_state table: %v", err)
	}

	return nil
}
