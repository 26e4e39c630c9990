package services

import (
	"mime/multipart"

	"healthatlas_backend/internal/csvimport"
	"healthatlas_backend/internal/models"
	"healthatlas_backend/internal/repositories"
	"healthatlas_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type DirectoryService interface {
	Import(db *gorm.DB, file *multipart.FileHeader) (int, error)
	List(db *gorm.DB) ([]models.DirectoryRecord, error)
}

type DirectoryServiceImpl struct {
	directoryRepo repositories.DirectoryRepository
}

func NewDirectoryService(directoryRepo repositories.DirectoryRepository) DirectoryService {
	return &DirectoryServiceImpl{
		directoryRepo: directoryRepo,
	}
}

// Import parses the uploaded CSV and bulk-persists the records. The whole
// operation is all-or-nothing: a rejected file stores zero records.
func (s *DirectoryServiceImpl) Import(db *gorm.DB, file *multipart.FileHeader) (int, error) {
	if !csvimport.HasCSVFormat(file.Header.Get("Content-Type")) {
		return 0, apperrors.ErrInvalidFileType
	}

	src, err := file.Open()
	if err != nil {
		return 0, apperrors.IOFailure(err)
	}
	defer src.Close()

	records, err := csvimport.Parse(src)
	if err != nil {
		return 0, apperrors.ParseError(err)
	}

	if err := s.directoryRepo.SaveAll(db, records); err != nil {
		return 0, apperrors.InternalError(err)
	}

	return len(records), nil
}

func (s *DirectoryServiceImpl) List(db *gorm.DB) ([]models.DirectoryRecord, error) {
	records, err := s.directoryRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return records, nil
}
