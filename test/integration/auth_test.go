package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"healthatlas_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authResponse struct {
	Token   *string `json:"token"`
	Message string  `json:"message"`
	Name    string  `json:"name"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestSignupThenSignin(t *testing.T) {
	ts := helpers.NewTestServer(t)

	signupBody := map[string]interface{}{
		"name":     "Dana Osler",
		"email":    "dana@example.com",
		"password": "super_password123",
	}
	res, body := ts.SendRequest(t, "POST", "/api/auth/signup", "", signupBody)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var signup authResponse
	require.NoError(t, json.Unmarshal([]byte(body), &signup))
	assert.Nil(t, signup.Token, "signup must not issue a token")
	assert.Equal(t, "User created successfully", signup.Message)
	assert.Equal(t, "Dana Osler", signup.Name)

	signinBody := map[string]interface{}{
		"email":    "dana@example.com",
		"password": "super_password123",
	}
	res, body = ts.SendRequest(t, "POST", "/api/auth/signin", "", signinBody)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var signin authResponse
	require.NoError(t, json.Unmarshal([]byte(body), &signin))
	require.NotNil(t, signin.Token)
	assert.Equal(t, "Login successful", signin.Message)
	assert.Equal(t, "Dana Osler", signin.Name)

	// The token's verified subject is the signup email.
	subject, err := ts.Tokens.Parse(*signin.Token)
	require.NoError(t, err)
	assert.Equal(t, "dana@example.com", subject)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	ts := helpers.NewTestServer(t)

	helpers.CreateUser(t, ts.DB, "User One", "duplicate@example.com", "pass12345")

	duplicateBody := map[string]interface{}{
		"name":     "User Two",
		"email":    "duplicate@example.com",
		"password": "a_different_password",
	}
	res, body := ts.SendRequest(t, "POST", "/api/auth/signup", "", duplicateBody)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Email already in use")
}

func TestSignin_IdenticalErrorForBadPasswordAndUnknownEmail(t *testing.T) {
	ts := helpers.NewTestServer(t)

	helpers.CreateUser(t, ts.DB, "Known User", "known@example.com", "correct-password")

	wrongPassBody := map[string]interface{}{
		"email":    "known@example.com",
		"password": "WRONG-password",
	}
	res1, body1 := ts.SendRequest(t, "POST", "/api/auth/signin", "", wrongPassBody)

	unknownBody := map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "whatever-password",
	}
	res2, body2 := ts.SendRequest(t, "POST", "/api/auth/signin", "", unknownBody)

	assert.Equal(t, http.StatusUnauthorized, res1.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, res2.StatusCode)

	var e1, e2 errorResponse
	require.NoError(t, json.Unmarshal([]byte(body1), &e1))
	require.NoError(t, json.Unmarshal([]byte(body2), &e2))

	// Enumeration resistance: the two failures are indistinguishable.
	assert.Equal(t, e1.Error.Message, e2.Error.Message)
	assert.Equal(t, "Invalid credentials", e1.Error.Message)
}

func TestMe_RequiresValidToken(t *testing.T) {
	ts := helpers.NewTestServer(t)

	helpers.CreateUser(t, ts.DB, "Dana Osler", "dana@example.com", "super_password123")

	signinBody := map[string]interface{}{
		"email":    "dana@example.com",
		"password": "super_password123",
	}
	res, body := ts.SendRequest(t, "POST", "/api/auth/signin", "", signinBody)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var signin authResponse
	require.NoError(t, json.Unmarshal([]byte(body), &signin))
	require.NotNil(t, signin.Token)

	res, body = ts.SendRequest(t, "GET", "/api/auth/me", *signin.Token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "dana@example.com")

	// Rejections use the same error envelope as every other failure.
	res, body = ts.SendRequest(t, "GET", "/api/auth/me", "not-a-real-token", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	var badToken errorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &badToken))
	assert.Equal(t, "INVALID_TOKEN", badToken.Error.Code)

	res, body = ts.SendRequest(t, "GET", "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	var noToken errorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &noToken))
	assert.Equal(t, "UNAUTHORIZED", noToken.Error.Code)
}

func TestSignup_RejectsInvalidBody(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, "POST", "/api/auth/signup", "", map[string]interface{}{
		"name":     "No Email",
		"password": "long_enough_pass",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "email")
}
