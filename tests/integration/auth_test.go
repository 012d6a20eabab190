//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	env := SetupTestEnv(t)

	result := RegisterUser(t, env, "auth-flow@example.com", "password123")
	data := result["data"].(map[string]any)
	assert.NotEmpty(t, data["access_token"])
	assert.NotEmpty(t, data["refresh_token"])

	token := LoginUser(t, env, "auth-flow@example.com", "password123")
	assert.NotEmpty(t, token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := SetupTestEnv(t)

	RegisterUser(t, env, "dupe@example.com", "password123")

	body := map[string]string{"email": "dupe@example.com", "password": "password123"}
	resp := DoRequest(t, env, "POST", "/api/v1/auth/register", body, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestLoginWrongPassword(t *testing.T) {
	env := SetupTestEnv(t)

	RegisterUser(t, env, "wrong-pass@example.com", "password123")

	body := map[string]string{"email": "wrong-pass@example.com", "password": "not-the-password"}
	resp := DoRequest(t, env, "POST", "/api/v1/auth/login", body, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRefreshTokenRotation(t *testing.T) {
	env := SetupTestEnv(t)

	result := RegisterUser(t, env, "refresh@example.com", "password123")
	data := result["data"].(map[string]any)
	refreshToken := data["refresh_token"].(string)

	// First refresh succeeds and returns a new pair.
	resp := DoRequest(t, env, "POST", "/api/v1/auth/refresh",
		map[string]string{"refresh_token": refreshToken}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	refreshed := ParseResponse(t, resp)
	newData := refreshed["data"].(map[string]any)
	assert.NotEmpty(t, newData["access_token"])

	// Refresh tokens are single use.
	resp = DoRequest(t, env, "POST", "/api/v1/auth/refresh",
		map[string]string{"refresh_token": refreshToken}, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	env := SetupTestEnv(t)

	resp := DoRequest(t, env, "GET", "/api/v1/usage", nil, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
