package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/marcgerasmio/alaika2/internal/hash"
	"github.com/marcgerasmio/alaika2/internal/models"
)

func newAuthHandler(t *testing.T) *AuthHandler {
	return &AuthHandler{
		DB:            InitTestDB(t),
		JWTSecret:     testJWTSecret,
		RefreshSecret: testRefreshSecret,
	}
}

func TestRegister(t *testing.T) {
	h := newAuthHandler(t)
	e := echo.New()

	payload := map[string]string{
		"name":     "Ana Cruz",
		"email":    "ana@example.com",
		"password": "password",
	}
	rec, c := doJSONRequest(t, e, http.MethodPost, "/register", payload)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	require.Equal(t, "Ana Cruz", user.Name)
	require.Equal(t, "customer", user.Role)
	require.NotEmpty(t, user.ID)

	// same email again conflicts
	_, cDup := doJSONRequest(t, e, http.MethodPost, "/register", payload)
	err := h.Register(cDup)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusConflict, he.Code)
}

func TestRegisterMissingFields(t *testing.T) {
	h := newAuthHandler(t)
	e := echo.New()

	_, c := doJSONRequest(t, e, http.MethodPost, "/register", map[string]string{"email": "x@example.com"})
	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestLogin(t *testing.T) {
	h := newAuthHandler(t)
	e := echo.New()

	passwordHash, _ := hash.HashPassword("password")
	h.DB.Create(&models.User{
		Name:         "Ana Cruz",
		Email:        "ana@example.com",
		PasswordHash: passwordHash,
		Role:         "customer",
	})

	rec, c := doJSONRequest(t, e, http.MethodPost, "/login", map[string]string{
		"email":    "ana@example.com",
		"password": "password",
	})
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["access_token"])
	require.NotEmpty(t, resp["refresh_token"])
	require.Equal(t, false, resp["is_admin"])

	_, cBad := doJSONRequest(t, e, http.MethodPost, "/login", map[string]string{
		"email":    "ana@example.com",
		"password": "wrong",
	})
	err := h.Login(cBad)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestLoginAdminFlag(t *testing.T) {
	h := newAuthHandler(t)
	e := echo.New()

	passwordHash, _ := hash.HashPassword("secret")
	h.DB.Create(&models.User{
		Name:         "Store Admin",
		Email:        "admin@example.com",
		PasswordHash: passwordHash,
		Role:         "admin",
	})

	rec, c := doJSONRequest(t, e, http.MethodPost, "/login", map[string]string{
		"email":    "admin@example.com",
		"password": "secret",
	})
	require.NoError(t, h.Login(c))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, true, resp["is_admin"])
}

func TestLogOut(t *testing.T) {
	h := newAuthHandler(t)
	e := echo.New()

	passwordHash, _ := hash.HashPassword("password")
	h.DB.Create(&models.User{
		Name:         "Ana Cruz",
		Email:        "ana@example.com",
		PasswordHash: passwordHash,
		Role:         "customer",
	})

	recLogin, cLogin := doJSONRequest(t, e, http.MethodPost, "/login", map[string]string{
		"email":    "ana@example.com",
		"password": "password",
	})
	require.NoError(t, h.Login(cLogin))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(recLogin.Body.Bytes(), &resp))
	refreshToken := resp["refresh_token"].(string)

	rec, c := doJSONRequest(t, e, http.MethodPost, "/logout", nil, &http.Cookie{
		Name:  "refreshToken",
		Value: refreshToken,
	})
	require.NoError(t, h.LogOut(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var stored models.RefreshToken
	require.NoError(t, h.DB.Where("token = ?", refreshToken).First(&stored).Error)
	require.True(t, stored.Revoked)
}
