package helpers

import (
	"testing"

	"healthatlas_backend/internal/auth"
	"healthatlas_backend/internal/models"

	"gorm.io/gorm"
)

// CreateUser inserts a user directly, hashing the given raw password.
func CreateUser(t *testing.T, db *gorm.DB, name, email, password string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user %s: %v", email, err)
	}
	return user
}

// CreateProviderApplication inserts an application row directly.
func CreateProviderApplication(t *testing.T, db *gorm.DB, app *models.ProviderApplication) *models.ProviderApplication {
	t.Helper()

	if err := db.Create(app).Error; err != nil {
		t.Fatalf("failed to create test provider application %s: %v", app.Email, err)
	}
	return app
}
