package integration_test

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"healthatlas_backend/internal/models"
	"healthatlas_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func providerForm(overrides map[string]string) map[string]string {
	fields := map[string]string{
		"fullName":        "Dr. Eve Adams",
		"email":           "eve@example.com",
		"phoneNumber":     "555-0200",
		"speciality":      "Cardiology",
		"licenseNumber":   "LIC-1001",
		"npiId":           "1234567890",
		"practiceAddress": "42 Heart Ln, Boston, MA",
	}
	for k, v := range overrides {
		fields[k] = v
	}
	return fields
}

func TestProviderApply_WithCredentialFile(t *testing.T) {
	ts := helpers.NewTestServer(t)

	file := helpers.FilePart{
		FieldName:   "file",
		FileName:    "license.pdf",
		ContentType: "application/pdf",
		Content:     []byte("%PDF-1.4 fake credential"),
	}
	res, body := ts.SendMultipart(t, "POST", "/api/providers/apply", providerForm(nil), file)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var app models.ProviderApplication
	require.NoError(t, json.Unmarshal([]byte(body), &app))
	assert.NotZero(t, app.ID)
	assert.Equal(t, "eve@example.com", app.Email)
	assert.Contains(t, app.CredentialFilePath, "license.pdf")

	// The stored path is unique per upload and the bytes land on disk.
	onDisk := filepath.Join(ts.Config.Storage.BasePath, app.CredentialFilePath)
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake credential", string(data))
}

func TestProviderApply_WithoutFile(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendMultipart(t, "POST", "/api/providers/apply", providerForm(nil))
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var app models.ProviderApplication
	require.NoError(t, json.Unmarshal([]byte(body), &app))
	assert.NotZero(t, app.ID)
	assert.Empty(t, app.CredentialFilePath)
}

func TestProviderApply_DuplicateLicense(t *testing.T) {
	ts := helpers.NewTestServer(t)

	helpers.CreateProviderApplication(t, ts.DB, &models.ProviderApplication{
		FullName:      "Dr. First",
		Email:         "first@example.com",
		PhoneNumber:   "555-0300",
		LicenseNumber: "LIC-2002",
		NpiID:         "2222222222",
	})

	form := providerForm(map[string]string{
		"email":         "second@example.com",
		"phoneNumber":   "555-0301",
		"licenseNumber": "LIC-2002",
		"npiId":         "3333333333",
	})
	res, body := ts.SendMultipart(t, "POST", "/api/providers/apply", form)

	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "licenseNumber")
}

func TestProviderApply_EmailConflictReportedFirst(t *testing.T) {
	ts := helpers.NewTestServer(t)

	helpers.CreateProviderApplication(t, ts.DB, &models.ProviderApplication{
		FullName:      "Dr. First",
		Email:         "clash@example.com",
		PhoneNumber:   "555-0400",
		LicenseNumber: "LIC-3003",
		NpiID:         "4444444444",
	})

	// Both email and license collide; email is named.
	form := providerForm(map[string]string{
		"email":         "clash@example.com",
		"phoneNumber":   "555-0401",
		"licenseNumber": "LIC-3003",
		"npiId":         "5555555555",
	})
	res, body := ts.SendMultipart(t, "POST", "/api/providers/apply", form)

	assert.Equal(t, http.StatusConflict, res.StatusCode)
	var e errorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &e))
	assert.True(t, strings.Contains(e.Error.Message, "email"), "expected email to be named, got: %s", e.Error.Message)
}

func TestProviderApply_RejectsInvalidNpi(t *testing.T) {
	ts := helpers.NewTestServer(t)

	form := providerForm(map[string]string{"npiId": "12345"})
	res, body := ts.SendMultipart(t, "POST", "/api/providers/apply", form)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "npiId")
}

func TestProviderListAndGet(t *testing.T) {
	ts := helpers.NewTestServer(t)

	created := helpers.CreateProviderApplication(t, ts.DB, &models.ProviderApplication{
		FullName:      "Dr. Grace Hall",
		Email:         "grace@example.com",
		PhoneNumber:   "555-0500",
		LicenseNumber: "LIC-4004",
		NpiID:         "6666666666",
	})

	res, body := ts.SendRequest(t, "GET", "/api/providers", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var apps []models.ProviderApplication
	require.NoError(t, json.Unmarshal([]byte(body), &apps))
	require.Len(t, apps, 1)
	assert.Equal(t, "grace@example.com", apps[0].Email)

	res, body = ts.SendRequest(t, "GET", "/api/providers/"+strconv.FormatInt(created.ID, 10), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var app models.ProviderApplication
	require.NoError(t, json.Unmarshal([]byte(body), &app))
	assert.Equal(t, created.ID, app.ID)

	res, _ = ts.SendRequest(t, "GET", "/api/providers/999999", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
