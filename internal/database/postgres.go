package database

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"
)

var PostgresDB *sql.DB

// ConnectPostgres connects to PostgreSQL and creates the snippet tables.
func ConnectPostgres(postgresURI string) error {
	var err error

	PostgresDB, err = sql.Open("postgres", postgresURI)
	if err != nil {
		return err
	}

	PostgresDB.SetMaxOpenConns(25)
	PostgresDB.SetMaxIdleConns(5)
	PostgresDB.SetConnMaxLifetime(5 * time.Minute)

	if err = PostgresDB.Ping(); err != nil {
		return err
	}

	log.Println("✅ Connected to PostgreSQL")

	return InitPostgresTables(PostgresDB)
}

// schema is applied in order on every start; every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		username VARCHAR(20) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	)`,

	`CREATE TABLE IF NOT EXISTS snippets (
		id SERIAL PRIMARY KEY,
		created TIMESTAMP NOT NULL DEFAULT NOW(),
		title VARCHAR(100) NOT NULL DEFAULT '',
		code TEXT NOT NULL,
		linenos BOOLEAN NOT NULL DEFAULT FALSE,
		language VARCHAR(100) NOT NULL DEFAULT 'python',
		style VARCHAR(100) NOT NULL DEFAULT 'friendly',
		owner_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		highlighted TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_users_username_lower ON users(LOWER(username))`,
	`CREATE INDEX IF NOT EXISTS idx_snippets_created ON snippets(created)`,
	`CREATE INDEX IF NOT EXISTS idx_snippets_owner_id ON snippets(owner_id)`,
}

// InitPostgresTables creates all necessary tables if they don't exist
func InitPostgresTables(db *sql.DB) error {
	for _, query := range schema {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	log.Println("✅ PostgreSQL tables initialized")
	return nil
}

// DisconnectPostgres closes the PostgreSQL connection
func DisconnectPostgres() error {
	if PostgresDB != nil {
		return PostgresDB.Close()
	}
	return nil
}
