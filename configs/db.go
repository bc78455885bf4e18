package configs

import (
	"fmt"

	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the database and returns the handle. The handle is owned
// by main and injected everywhere; nothing reaches for a global.
func Connect(cfg *Config) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dial = postgres.Open(cfg.DBSource)
	case "sqlite":
		dial = sqlite.Open(cfg.DBSource)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// Migrate creates/updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Role{}, &entity.User{},
		&entity.Address{},
		&entity.Restaurant{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Courier{}, &entity.CourierAssignment{},
		&entity.Payment{},
		&entity.Rating{},
	)
}
