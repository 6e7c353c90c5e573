package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shiftmaster/internal/auth"
	apperrors "shiftmaster/internal/errors"
	"shiftmaster/internal/middleware"
	"shiftmaster/internal/model"
	"shiftmaster/internal/service"
)

var (
	adminIdentity  = auth.Identity{ID: auth.BuiltinAdminID, Username: "admin", Role: model.UserRoleAdmin}
	editorIdentity = auth.Identity{ID: "5", Username: "alice", Role: model.UserRoleEditor}
)

type testEnv struct {
	e   *echo.Echo
	jwt *auth.JWTService
}

func newTestEnv() *testEnv {
	e := echo.New()
	e.Validator = NewValidator()
	return &testEnv{e: e, jwt: auth.NewJWTService("test-secret")}
}

func (env *testEnv) authed() echo.MiddlewareFunc {
	return middleware.Authenticate(auth.NewGate(env.jwt), nil)
}

func (env *testEnv) token(t *testing.T, identity auth.Identity) string {
	t.Helper()
	token, err := env.jwt.GenerateToken(identity)
	require.NoError(t, err)
	return token
}

func (env *testEnv) do(method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apperrors.ErrorResponse {
	t.Helper()
	var body apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// MockAssignmentService is a mock implementation of AssignmentService.
type MockAssignmentService struct {
	mock.Mock
}

func (m *MockAssignmentService) Upsert(ctx context.Context, actor auth.Identity, in service.UpsertAssignmentInput) (*service.AssignmentView, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AssignmentView), args.Error(1)
}

func (m *MockAssignmentService) Delete(ctx context.Context, actor auth.Identity, employeeID uint, date string) error {
	args := m.Called(ctx, actor, employeeID, date)
	return args.Error(0)
}

func (m *MockAssignmentService) List(ctx context.Context, from, to string) ([]service.AssignmentView, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.AssignmentView), args.Error(1)
}

// MockAuthService is a mock implementation of AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*service.LoginResult, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginResult), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}

// MockAuditService is a mock implementation of AuditService.
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, actor, action, details string) {
	m.Called(ctx, actor, action, details)
}

func (m *MockAuditService) List(ctx context.Context, limit int) ([]model.AuditLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AuditLog), args.Error(1)
}

func (m *MockAuditService) Clear(ctx context.Context, actor auth.Identity) error {
	args := m.Called(ctx, actor)
	return args.Error(0)
}

// MockUserService is a mock implementation of UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context) ([]service.UserView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.UserView), args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, actor auth.Identity, in service.CreateUserInput) (*service.UserView, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UserView), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, actor auth.Identity, id string) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

// MockEmployeeService is a mock implementation of EmployeeService.
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) List(ctx context.Context) ([]model.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Employee), args.Error(1)
}

func (m *MockEmployeeService) Create(ctx context.Context, actor auth.Identity, in service.CreateEmployeeInput) (*model.Employee, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockEmployeeService) Delete(ctx context.Context, actor auth.Identity, id uint) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

// MockConfigService is a mock implementation of ConfigService.
type MockConfigService struct {
	mock.Mock
}

func (m *MockConfigService) ListRoles(ctx context.Context) ([]model.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Role), args.Error(1)
}

func (m *MockConfigService) CreateRole(ctx context.Context, actor auth.Identity, in service.CreateRoleInput) (*model.Role, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *MockConfigService) DeleteRole(ctx context.Context, actor auth.Identity, id uint) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockConfigService) ListTimeSlots(ctx context.Context) ([]model.TimeSlot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TimeSlot), args.Error(1)
}

func (m *MockConfigService) CreateTimeSlot(ctx context.Context, actor auth.Identity, in service.CreateTimeSlotInput) (*model.TimeSlot, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TimeSlot), args.Error(1)
}

func (m *MockConfigService) DeleteTimeSlot(ctx context.Context, actor auth.Identity, id uint) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

// MockScheduleService is a mock implementation of ScheduleService.
type MockScheduleService struct {
	mock.Mock
}

func (m *MockScheduleService) Week(ctx context.Context, start string) (*service.WeekView, error) {
	args := m.Called(ctx, start)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.WeekView), args.Error(1)
}

func (m *MockScheduleService) ExportWeek(ctx context.Context, start string) ([]byte, error) {
	args := m.Called(ctx, start)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
