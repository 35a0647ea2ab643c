package config

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Postgres holds the connection parameters for the optional Postgres-backed
// term source (symspell.PostgresTermSource). Defaults come from the
// environment via GetEnv/GetEnvInt rather than being hardcoded, so the pool
// size tunes the same way the corrector's own parameters do.
type Postgres struct {
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	MaxOpenConns int
	MaxIdleConns int
}

// DefaultPostgres reads connection parameters from PGHOST/PGPORT/PGUSER/
// PGPASSWORD/PGDATABASE and PG_MAX_OPEN_CONNS/PG_MAX_IDLE_CONNS, falling
// back to this module's own defaults (a local vocabulary database, not the
// teacher's GIS one).
func DefaultPostgres() Postgres {
	return Postgres{
		Host:         GetEnv("PGHOST", "localhost"),
		Port:         GetEnv("PGPORT", "15432"),
		User:         GetEnv("PGUSER", "user"),
		Password:     GetEnv("PGPASSWORD", "password"),
		Database:     GetEnv("PGDATABASE", "symspell"),
		MaxOpenConns: GetEnvInt("PG_MAX_OPEN_CONNS", 20),
		MaxIdleConns: GetEnvInt("PG_MAX_IDLE_CONNS", 10),
	}
}

func (p Postgres) dsn() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Database)
}

// Open opens a pooled *sql.DB for p, pinging it before returning so a bad
// DSN fails at startup rather than on the first term-source query.
func (p Postgres) Open() (*sql.DB, error) {
	db, err := sql.Open("postgres", p.dsn())
	if err != nil {
		return nil, fmt.Errorf("config: opening postgres connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("config: pinging postgres: %w", err)
	}
	db.SetMaxOpenConns(p.MaxOpenConns)
	db.SetMaxIdleConns(p.MaxIdleConns)
	return db, nil
}
