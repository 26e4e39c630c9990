package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"healthatlas_backend/internal/models"
	"healthatlas_backend/internal/repositories"
	"healthatlas_backend/internal/services/dto"
	"healthatlas_backend/internal/storage"
	"healthatlas_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProviderService interface {
	Submit(ctx context.Context, db *gorm.DB, req *dto.ApplyProviderRequest, file *multipart.FileHeader) (*models.ProviderApplication, error)
	Get(db *gorm.DB, id int64) (*models.ProviderApplication, error)
	List(db *gorm.DB) ([]models.ProviderApplication, error)
}

type ProviderServiceImpl struct {
	providerRepo repositories.ProviderRepository
	files        storage.Storage
}

func NewProviderService(providerRepo repositories.ProviderRepository, files storage.Storage) ProviderService {
	return &ProviderServiceImpl{
		providerRepo: providerRepo,
		files:        files,
	}
}

// uniqueFields pairs each unique column with the request field name
// reported on conflict. Checks short-circuit in this fixed order.
var uniqueFields = []struct {
	column string
	field  string
	value  func(*dto.ApplyProviderRequest) string
}{
	{"email", "email", func(r *dto.ApplyProviderRequest) string { return r.Email }},
	{"license_number", "licenseNumber", func(r *dto.ApplyProviderRequest) string { return r.LicenseNumber }},
	{"phone_number", "phoneNumber", func(r *dto.ApplyProviderRequest) string { return r.PhoneNumber }},
	{"npi_id", "npiId", func(r *dto.ApplyProviderRequest) string { return r.NpiID }},
}

// Submit validates uniqueness, stores the optional credential file, and
// persists the application.
func (s *ProviderServiceImpl) Submit(ctx context.Context, db *gorm.DB, req *dto.ApplyProviderRequest, file *multipart.FileHeader) (*models.ProviderApplication, error) {
	if field, err := s.findConflict(db, req); err != nil {
		return nil, apperrors.InternalError(err)
	} else if field != "" {
		return nil, apperrors.DuplicateField(field)
	}

	app := &models.ProviderApplication{
		FullName:        req.FullName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		Speciality:      req.Speciality,
		LicenseNumber:   req.LicenseNumber,
		NpiID:           req.NpiID,
		PracticeAddress: req.PracticeAddress,
		AiRawResult:     req.AiRawResult,
		AiParsedResult:  req.AiParsedResult,
	}

	if file != nil {
		path, err := s.storeCredentialFile(ctx, file)
		if err != nil {
			return nil, err
		}
		app.CredentialFilePath = path
	}

	if err := s.providerRepo.Create(db, app); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			// Lost a check-then-insert race; re-check to name the field.
			if field, ferr := s.findConflict(db, req); ferr == nil && field != "" {
				return nil, apperrors.DuplicateField(field)
			}
			return nil, apperrors.DuplicateField("email")
		}
		return nil, apperrors.InternalError(err)
	}

	return app, nil
}

func (s *ProviderServiceImpl) Get(db *gorm.DB, id int64) (*models.ProviderApplication, error) {
	app, err := s.providerRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.NotFound("Provider application")
		}
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}

func (s *ProviderServiceImpl) List(db *gorm.DB) ([]models.ProviderApplication, error) {
	apps, err := s.providerRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

// findConflict returns the request field name of the first colliding
// unique value, or "" when none collide.
func (s *ProviderServiceImpl) findConflict(db *gorm.DB, req *dto.ApplyProviderRequest) (string, error) {
	for _, uf := range uniqueFields {
		exists, err := s.providerRepo.ExistsByField(db, uf.column, uf.value(req))
		if err != nil {
			return "", err
		}
		if exists {
			return uf.field, nil
		}
	}
	return "", nil
}

// storeCredentialFile writes the upload under a collision-resistant name
// and returns the recorded path. File bytes never land in the database.
func (s *ProviderServiceImpl) storeCredentialFile(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", apperrors.IOFailure(err)
	}
	defer src.Close()

	name := fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(file.Filename))
	path := filepath.Join("providers", name)

	if err := s.files.Save(ctx, path, src); err != nil {
		return "", apperrors.IOFailure(err)
	}

	return path, nil
}
