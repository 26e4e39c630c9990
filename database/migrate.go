package database

import (
	"healthatlas_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the three tables. The unique indexes on
// users.email and the four provider-application fields are the
// authoritative uniqueness guards.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.ProviderApplication{},
		&models.DirectoryRecord{},
	)
}
