package postgres

import (
	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/adapters/out/postgres/userrepo"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to PostgreSQL. TranslateError is required by the
// repositories to detect unique violations.
func Open(dsn string, log logger.Interface) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	if log != nil {
		cfg.Logger = log
	}
	return gorm.Open(postgres.Open(dsn), cfg)
}

// Migrate creates or updates the users, parcels and tracking_events tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&parcelrepo.ParcelDTO{},
		&parcelrepo.TrackingEventDTO{},
	)
}
