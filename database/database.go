package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/addness-teambase/kyonodekita-sub002/config"
	"github.com/addness-teambase/kyonodekita-sub002/models"
)

// Connect opens the Postgres connection and migrates the schema. The caller
// owns the returned handle; nothing in this package keeps global state.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Account{},
		&models.Staff{},
		&models.Child{},
		&models.Record{},
		&models.CalendarEvent{},
		&models.Announcement{},
		&models.Attendance{},
		&models.GrowthRecord{},
		&models.Conversation{},
		&models.ChatMessage{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return db, nil
}
