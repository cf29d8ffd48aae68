package migration

import (
	"fmt"

	"gorm.io/gorm"

	"deskbot/internal/infrastructure/persistence/models"
	"deskbot/internal/shared/logger"
)

// AutoMigrateModels lists every persisted model in dependency order so
// foreign keys resolve on a fresh database.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.NoteModel{},
		&models.RatingModel{},
		&models.AdminModel{},
		&models.TopicModel{},
		&models.TicketModel{},
		&models.ReplyModel{},
		&models.AttachmentModel{},
		&models.StatusHistoryModel{},
		&models.FAQEntryModel{},
	}
}

// Run applies the schema with GORM AutoMigrate.
func Run(db *gorm.DB) error {
	targets := AutoMigrateModels()
	logger.Info("running database migration", "models", len(targets))

	if err := db.AutoMigrate(targets...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	logger.Info("database migration completed")
	return nil
}
