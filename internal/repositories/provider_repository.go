package repositories

import (
	"errors"

	"healthatlas_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("provider application not found")
	ErrDuplicateApplication = errors.New("provider application violates a uniqueness constraint")
)

type ProviderRepository interface {
	Create(db *gorm.DB, app *models.ProviderApplication) error
	FindByID(db *gorm.DB, id int64) (*models.ProviderApplication, error)
	FindAll(db *gorm.DB) ([]models.ProviderApplication, error)
	ExistsByField(db *gorm.DB, column, value string) (bool, error)
}

type ProviderRepositoryImpl struct{}

func NewProviderRepository() ProviderRepository {
	return &ProviderRepositoryImpl{}
}

// Create inserts the application. Uniqueness of email, phone number,
// license number, and NPI is guaranteed by the database indexes; a
// duplicate-key error is reported as ErrDuplicateApplication so the
// service can translate it to the same conflict the pre-checks produce.
func (r *ProviderRepositoryImpl) Create(db *gorm.DB, app *models.ProviderApplication) error {
	if err := db.Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ProviderRepositoryImpl) FindByID(db *gorm.DB, id int64) (*models.ProviderApplication, error) {
	var app models.ProviderApplication
	err := db.First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ProviderRepositoryImpl) FindAll(db *gorm.DB) ([]models.ProviderApplication, error) {
	var apps []models.ProviderApplication
	if err := db.Order("id").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ProviderRepositoryImpl) ExistsByField(db *gorm.DB, column, value string) (bool, error) {
	var count int64
	err := db.Model(&models.ProviderApplication{}).Where(column+" = ?", value).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
