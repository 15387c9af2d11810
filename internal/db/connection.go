package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/pmla-casebook/internal/config"
)

// Connection holds the database connection used by the Postgres export path.
type Connection struct {
	DB *sql.DB
}

// NewConnection opens a Postgres connection from the standard PG* environment
// variables (with .env fallback).
func NewConnection() (*Connection, error) {
	config.LoadEnv()

	host := config.GetEnv("PGHOST", "localhost")
	port := config.GetEnv("PGPORT", "5432")
	user := config.GetEnv("PGUSER", "casebook")
	password := config.GetEnv("PGPASSWORD", "casebook")
	dbname := config.GetEnv("PGDATABASE", "pmla_casebook")

	sslmode := "disable"
	if config.GetEnvBool("PGSSL", false) {
		sslmode = "require"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(config.GetEnvInt("PGMAXCONNS", 10))
	db.SetMaxIdleConns(config.GetEnvInt("PGMAXIDLECONNS", 5))

	return &Connection{DB: db}, nil
}

// Close closes the database connection.
func (c *Connection) Close() error {
	return c.DB.Close()
}
