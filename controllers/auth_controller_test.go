package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contact-api/models"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/auth/register", map[string]string{
		"firstname": "Jean", "lastname": "Dev",
		"email": "jean@example.com", "password": "secret",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	require.NoError(t, env.db.Where("email = ?", "jean@example.com").First(&user).Error)
	assert.NotEqual(t, "secret", user.Password)
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/auth/register", map[string]string{
		"firstname": "Jo", "email": "not-an-email", "password": "longer-than-ten-chars",
	}, "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	fields := fieldErrors(t, decodeEnvelope(t, w))
	assert.Contains(t, fields, "firstname")
	assert.Contains(t, fields, "lastname")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "jean@example.com", "secret")

	w := env.do(t, http.MethodPost, "/auth/register", map[string]string{
		"firstname": "Jean", "lastname": "Dev",
		"email": "jean@example.com", "password": "secret",
	}, "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	fields := fieldErrors(t, decodeEnvelope(t, w))
	assert.Contains(t, fields, "email")
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "jean@example.com", "secret")

	w := env.do(t, http.MethodPost, "/auth/login", map[string]string{
		"email": "jean@example.com", "password": "secret",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var token string
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &token))
	assert.NotEmpty(t, token)

	// The issued token works against a protected endpoint.
	w = env.do(t, http.MethodGet, "/auth/profile", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "jean@example.com", "secret")

	unknown := env.do(t, http.MethodPost, "/auth/login", map[string]string{
		"email": "nobody@example.com", "password": "secret",
	}, "")
	wrong := env.do(t, http.MethodPost, "/auth/login", map[string]string{
		"email": "jean@example.com", "password": "bad",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, decodeEnvelope(t, unknown).Message, decodeEnvelope(t, wrong).Message)
}

func TestProfile(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "jean@example.com", "secret")

	w := env.do(t, http.MethodGet, "/auth/profile", nil, env.tokenFor(t, user.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jean@example.com")
	assert.NotContains(t, w.Body.String(), user.Password)

	w = env.do(t, http.MethodGet, "/auth/profile", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutRevokesOutstandingTokens(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "jean@example.com", "secret")
	token := env.tokenFor(t, user.ID)

	// Backdate the revocation window so the token reads as pre-logout.
	w := env.do(t, http.MethodPost, "/auth/logout", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	env.revoker.mu.Lock()
	env.revoker.revoked[user.ID] = time.Now().Add(time.Second)
	env.revoker.mu.Unlock()

	w = env.do(t, http.MethodGet, "/auth/profile", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "jean@example.com", "secret")
	token := env.tokenFor(t, user.ID)

	w := env.do(t, http.MethodPost, "/auth/changePassword", map[string]string{
		"password": "wrong", "new_password": "next-pass",
	}, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/auth/changePassword", map[string]string{
		"password": "secret", "new_password": "secret",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/auth/changePassword", map[string]string{
		"password": "secret", "new_password": "next-pass",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/auth/login", map[string]string{
		"email": "jean@example.com", "password": "next-pass",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCheckPassword(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "jean@example.com", "secret")
	token := env.tokenFor(t, user.ID)

	w := env.do(t, http.MethodPost, "/auth/check-password", map[string]string{"password": "secret"}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/auth/check-password", map[string]string{"password": "nope"}, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEditProfile(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "jean@example.com", "secret")
	token := env.tokenFor(t, user.ID)

	// Identical values: success with an explanatory message, not an error.
	w := env.do(t, http.MethodPut, "/auth/editProfile", map[string]string{
		"firstname": "Test", "lastname": "User",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decodeEnvelope(t, w).Message, "No changes")

	w = env.do(t, http.MethodPut, "/auth/editProfile", map[string]string{
		"firstname": "Jeanne", "lastname": "User",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.User
	require.NoError(t, env.db.First(&reloaded, user.ID).Error)
	assert.Equal(t, "Jeanne", reloaded.Firstname)
}
