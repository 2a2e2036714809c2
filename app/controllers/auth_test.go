package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardstore/console/app/controllers"
	"github.com/cardstore/console/config"
	"github.com/cardstore/console/pkg/auth"
)

func postLogin(t *testing.T, password string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	controllers.NewAuthController().Login(rec, req)
	return rec
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("letmein-123")
	require.NoError(t, err)
	config.Set("ADMIN_PASSWORD_HASH", hash)

	rec := postLogin(t, "wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginRejectsWhenNoHashConfigured(t *testing.T) {
	config.Set("ADMIN_PASSWORD_HASH", "")

	rec := postLogin(t, "anything")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginRedirectsToConsole(t *testing.T) {
	hash, err := auth.HashPassword("letmein-123")
	require.NoError(t, err)
	config.Set("ADMIN_PASSWORD_HASH", hash)

	rec := postLogin(t, "letmein-123")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/console", rec.Header().Get("Location"))
}

func TestLogoutRedirectsToLogin(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	controllers.NewAuthController().Logout(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestShowLoginRendersForm(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rec := httptest.NewRecorder()
	controllers.NewAuthController().ShowLogin(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="login-form"`)
}
