package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// registers the cgo-free "sqlite" driver with database/sql
	_ "modernc.org/sqlite"
)

// Connect opens the database behind dsn. postgres:// URLs get the pgx-backed
// postgres driver; any other value is treated as a sqlite file path for local
// development.
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)
	cfg := gormsqlite.Config{
		DriverName: "sqlite",
		DSN:        dsn,
	}
	return gorm.Open(gormsqlite.New(cfg), &gorm.Config{})
}
