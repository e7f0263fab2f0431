package migration

import (
	"fmt"

	"barnmonitor-backend/entities"

	"gorm.io/gorm"
)

// Models lists every table in dependency order.
func Models() []any {
	return []any{
		&entities.Farmer{},
		&entities.AnimalType{},
		&entities.Animal{},
		&entities.Feed{},
		&entities.HealthRecord{},
		&entities.Production{},
		&entities.Sale{},
		&entities.Session{},
	}
}

func Migrate(db *gorm.DB) error {
	for _, model := range Models() {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrating %T: %w", model, err)
		}
	}
	return nil
}
