// Package data persists per-user dashboard preferences: a named default
// observer location and a moon tint. The database is optional; the service
// runs read-only without it.
package data

import (
	"fmt"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// User is a visitor with a saved observer location.
type User struct {
	gorm.Model
	Name           string
	Latitude       *float64
	Longitude      *float64
	MoonLightColor string
	LastSeen       time.Time
}

// PostgresFromEnv connects using the conventional PG* environment
// variables and migrates the schema. Returns an error when PGHOST is
// unset so callers can run without persistence.
func PostgresFromEnv() (*gorm.DB, error) {
	host := os.Getenv("PGHOST")
	if host == "" {
		return nil, fmt.Errorf("PGHOST not set")
	}
	pw := os.Getenv("PGPASSWORD")
	port := os.Getenv("PGPORT")
	dsn := fmt.Sprintf("host=%s user=postgres password=%s dbname=skydash port=%s sslmode=disable TimeZone=UTC",
		host,
		pw,
		port)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&User{}); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}
	return db, nil
}
