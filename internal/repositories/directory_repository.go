package repositories

import (
	"healthatlas_backend/internal/models"

	"gorm.io/gorm"
)

type DirectoryRepository interface {
	// SaveAll persists the parsed records in one bulk operation.
	SaveAll(db *gorm.DB, records []models.DirectoryRecord) error
	FindAll(db *gorm.DB) ([]models.DirectoryRecord, error)
}

type DirectoryRepositoryImpl struct{}

func NewDirectoryRepository() DirectoryRepository {
	return &DirectoryRepositoryImpl{}
}

func (r *DirectoryRepositoryImpl) SaveAll(db *gorm.DB, records []models.DirectoryRecord) error {
	if len(records) == 0 {
		return nil
	}
	return db.CreateInBatches(records, 500).Error
}

func (r *DirectoryRepositoryImpl) FindAll(db *gorm.DB) ([]models.DirectoryRecord, error) {
	var records []models.DirectoryRecord
	if err := db.Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
