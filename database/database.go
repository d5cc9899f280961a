package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	cfg "github.com/go-fnbridge/fnbridge/config"
)

type DB struct {
	SQL *sql.DB
}

// ConnectFromConfig opens a postgres connection from the provided config.
// Callers can pass cfg.ConfigVar.Database directly.
func ConnectFromConfig(c cfg.DatabaseConfig) (*DB, error) {
	if c.Type != "postgres" {
		return nil, fmt.Errorf("unsupported database type: %s", c.Type)
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return &DB{SQL: sqlDB}, nil
}

// Close closes the underlying connection pool.
func (db *DB) Close() error {
	if db == nil || db.SQL == nil {
		return nil
	}
	return db.SQL.Close()
}
