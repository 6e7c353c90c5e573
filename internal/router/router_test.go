package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shiftmaster/internal/auth"
	"shiftmaster/internal/config"
	"shiftmaster/internal/handler"
	"shiftmaster/internal/model"
)

func newTestServer(t *testing.T) (*echo.Echo, *auth.JWTService) {
	t.Helper()
	jwtService := auth.NewJWTService("router-secret")
	e := echo.New()
	// Services are never reached: every request below is rejected by middleware.
	Register(e, &config.Config{LoginRateLimit: 0}, zap.NewNop(), auth.NewGate(jwtService), nil, Handlers{
		Auth:       handler.NewAuthHandler(nil),
		Employee:   handler.NewEmployeeHandler(nil),
		Config:     handler.NewConfigHandler(nil),
		Assignment: handler.NewAssignmentHandler(nil),
		Schedule:   handler.NewScheduleHandler(nil),
		AuditLog:   handler.NewAuditLogHandler(nil),
		User:       handler.NewUserHandler(nil),
	})
	return e, jwtService
}

func serve(e *echo.Echo, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegister_Healthz(t *testing.T) {
	e, _ := newTestServer(t)
	rec := serve(e, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestRegister_ProtectedRoutesRequireToken(t *testing.T) {
	e, _ := newTestServer(t)

	routes := []struct{ method, path string }{
		{http.MethodPost, "/api/auth/logout"},
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPost, "/api/employees"},
		{http.MethodDelete, "/api/employees/1"},
		{http.MethodPost, "/api/config/roles"},
		{http.MethodDelete, "/api/config/roles/1"},
		{http.MethodGet, "/api/config/times"},
		{http.MethodPost, "/api/config/times"},
		{http.MethodDelete, "/api/config/times/1"},
		{http.MethodPost, "/api/assignments"},
		{http.MethodDelete, "/api/assignments/1/2024-03-05"},
		{http.MethodGet, "/api/schedule/week/export"},
		{http.MethodGet, "/api/audit-logs"},
		{http.MethodDelete, "/api/audit-logs"},
		{http.MethodGet, "/api/users"},
		{http.MethodPost, "/api/users"},
		{http.MethodDelete, "/api/users/3"},
	}
	for _, r := range routes {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			rec := serve(e, r.method, r.path, "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRegister_AdminRoutesRejectEditors(t *testing.T) {
	e, jwtService := newTestServer(t)
	token, err := jwtService.GenerateToken(auth.Identity{ID: "5", Username: "alice", Role: model.UserRoleEditor})
	require.NoError(t, err)

	for _, r := range []struct{ method, path string }{
		{http.MethodGet, "/api/users"},
		{http.MethodPost, "/api/users"},
		{http.MethodDelete, "/api/users/3"},
		{http.MethodDelete, "/api/audit-logs"},
	} {
		rec := serve(e, r.method, r.path, token)
		assert.Equal(t, http.StatusForbidden, rec.Code, r.path)
	}
}
