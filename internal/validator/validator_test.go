package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string `json:"email" validate:"required,email"`
	Npi   string `form:"npiId" validate:"required,npi"`
}

func TestValidate_Passing(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email: "alice@example.com",
		Npi:   "1234567890",
	})
	assert.NoError(t, err)
}

func TestValidate_ReportsTagNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Email: "not-an-email", Npi: ""})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)

	// Errors are keyed by the wire names, not the Go field names.
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "npiId")
	assert.Equal(t, "This field is required", vErr.Errors["npiId"])
}

func TestValidate_NpiRule(t *testing.T) {
	v := New()

	cases := []struct {
		npi   string
		valid bool
	}{
		{"1234567890", true},
		{"0000000000", true},
		{"123456789", false},   // too short
		{"12345678901", false}, // too long
		{"12345abcde", false},  // non-digits
	}
	for _, tc := range cases {
		err := v.Validate(&sampleRequest{Email: "a@b.com", Npi: tc.npi})
		if tc.valid {
			assert.NoError(t, err, "npi %q should pass", tc.npi)
		} else {
			assert.Error(t, err, "npi %q should fail", tc.npi)
		}
	}
}
