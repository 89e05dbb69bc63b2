package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/sprintboard/sprintboard/internal/constants"
	"github.com/sprintboard/sprintboard/internal/dto"
	"github.com/sprintboard/sprintboard/internal/middleware"
	"github.com/sprintboard/sprintboard/internal/users"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *AuthHandler) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	dir, err := users.DefaultDirectory()
	require.NoError(t, err)
	handler := NewAuthHandler(dir)

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionName, store))
	r.POST("/api/auth/login", handler.Login)
	r.POST("/api/auth/logout", handler.Logout)
	r.GET("/api/auth/me", middleware.RequireAuth(), handler.GetCurrentUser)
	r.GET("/api/users", middleware.RequireAuth(), handler.ListUsers)

	return r, handler
}

func postJSON(t *testing.T, r *gin.Engine, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Login(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := postJSON(t, r, "/api/auth/login", map[string]string{
		"email":    "admin@test.com",
		"password": "password",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "admin@test.com", response.Email)
	require.Equal(t, "AU", response.Initials)
	require.NotEmpty(t, w.Result().Cookies(), "login must set the session cookie")
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := postJSON(t, r, "/api/auth/login", map[string]string{
		"email":    "admin@test.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(t, r, "/api/auth/login", map[string]string{
		"email":    "nobody@test.com",
		"password": "password",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_MeRequiresSession(t *testing.T) {
	r, _ := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_MeAfterLogin(t *testing.T) {
	r, _ := newAuthRouter(t)

	login := postJSON(t, r, "/api/auth/login", map[string]string{
		"email":    "user@test.com",
		"password": "password",
	})
	require.Equal(t, http.StatusOK, login.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	for _, c := range login.Result().Cookies() {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "John Doe", response.Name)
}

func TestAuthHandler_ListUsers(t *testing.T) {
	r, _ := newAuthRouter(t)

	login := postJSON(t, r, "/api/auth/login", map[string]string{
		"email":    "user@test.com",
		"password": "password",
	})
	require.Equal(t, http.StatusOK, login.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	for _, c := range login.Result().Cookies() {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Users []dto.UserDTO `json:"users"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Users, 5)
}
