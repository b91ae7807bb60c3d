package migration

import (
	"fmt"

	"zetanom/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// Migrate creates the schema. It is idempotent and runs inside a single
// transaction, so a failure leaves the database untouched.
func Migrate(db *gorm.DB) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(&entities.Food{}); err != nil {
			return fmt.Errorf("error migrating foods: %w", err)
		}
		if err := tx.AutoMigrate(&entities.ServingSize{}); err != nil {
			return fmt.Errorf("error migrating serving sizes: %w", err)
		}
		if err := tx.AutoMigrate(&entities.Entry{}); err != nil {
			return fmt.Errorf("error migrating entries: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("Database migration complete")
	return nil
}
