package services

import (
	"context"
	"net/http"
	"testing"

	"healthatlas_backend/internal/models"
	"healthatlas_backend/internal/repositories"
	"healthatlas_backend/internal/services/dto"
	"healthatlas_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// lostRaceProviderRepo simulates a submit that loses the check-then-insert
// race: the pre-checks see nothing, the insert hits a unique index, and the
// re-check then observes the row that won on conflictColumn.
type lostRaceProviderRepo struct {
	conflictColumn string
	inserted       bool
}

func (r *lostRaceProviderRepo) Create(db *gorm.DB, app *models.ProviderApplication) error {
	r.inserted = true
	return repositories.ErrDuplicateApplication
}

func (r *lostRaceProviderRepo) FindByID(db *gorm.DB, id int64) (*models.ProviderApplication, error) {
	return nil, repositories.ErrApplicationNotFound
}

func (r *lostRaceProviderRepo) FindAll(db *gorm.DB) ([]models.ProviderApplication, error) {
	return nil, nil
}

func (r *lostRaceProviderRepo) ExistsByField(db *gorm.DB, column, value string) (bool, error) {
	return r.inserted && column == r.conflictColumn, nil
}

func applyRequest() *dto.ApplyProviderRequest {
	return &dto.ApplyProviderRequest{
		FullName:      "Dr. Racer",
		Email:         "racer@example.com",
		PhoneNumber:   "555-0700",
		LicenseNumber: "LIC-6006",
		NpiID:         "9999999999",
	}
}

func TestSubmit_LostRaceNamesTheConflictingField(t *testing.T) {
	repo := &lostRaceProviderRepo{conflictColumn: "license_number"}
	svc := NewProviderService(repo, nil)

	_, err := svc.Submit(context.Background(), nil, applyRequest(), nil)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
	assert.Equal(t, apperrors.CodeDuplicateField, appErr.Code)
	assert.Equal(t, map[string]string{"field": "licenseNumber"}, appErr.Details)
}

func TestSubmit_LostRaceWithVanishedWinnerStillConflicts(t *testing.T) {
	// The winning row is gone again by re-check time; the conflict is still
	// reported, attributed to email as the first-checked field.
	repo := &lostRaceProviderRepo{conflictColumn: "none"}
	svc := NewProviderService(repo, nil)

	_, err := svc.Submit(context.Background(), nil, applyRequest(), nil)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
	assert.Equal(t, map[string]string{"field": "email"}, appErr.Details)
}
