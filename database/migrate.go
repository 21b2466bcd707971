package database

import (
	"fmt"

	"gorm.io/gorm"

	"psychportal_backend/internal/models"
)

// Migrate runs schema migrations for all portal models.
func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 comes from the uuid-ossp extension.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid-ossp extension: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.GrowthResponse{},
		&models.SelfAssessment{},
	); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	// Backstop for the one-active-application rule. The service checks
	// before inserting, this index closes the concurrent-writer window.
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_applications_one_active_per_user
		ON applications (user_id)
		WHERE status IN ('pending_resume', 'submitted', 'approved')
	`).Error; err != nil {
		return fmt.Errorf("failed to create active application index: %w", err)
	}

	return nil
}
