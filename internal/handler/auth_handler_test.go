package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"logistics_api/internal/model"
	"logistics_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// loginStub answers Login with a fixed user and token
type loginStub struct {
	fakeAuthService
	user  *model.User
	token string
}

func (s *loginStub) Login(_ context.Context, username, password string) (*model.User, string, error) {
	if s.user != nil && s.user.Username == username && password == "secret123" {
		return s.user, s.token, nil
	}
	return nil, "", service.ErrInvalidCredentials
}

func newAuthRouter(auth service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(auth)
	h.RegisterAuthRoutes(r.Group(""))
	return r
}

func TestAuthHandler_Login(t *testing.T) {
	auth := &loginStub{
		user:  &model.User{ID: 1, Username: "admin", Role: model.RoleOwner, Name: "Admin", Permissions: "all"},
		token: "signed-token",
	}
	r := newAuthRouter(auth)

	w := postJSON(r, "/auth/login", `{"username":"admin","password":"secret123"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"token": "signed-token",
		"role": "owner",
		"name": "Admin",
		"id": 1,
		"permissions": "all"
	}`, w.Body.String())
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	auth := &loginStub{user: &model.User{ID: 1, Username: "admin"}}
	r := newAuthRouter(auth)

	w := postJSON(r, "/auth/login", `{"username":"admin","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	r := newAuthRouter(&loginStub{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"admin"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
