package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"shiftmaster/internal/auth"
	"shiftmaster/internal/config"
	"shiftmaster/internal/handler"
	"shiftmaster/internal/logger"
	appmw "shiftmaster/internal/middleware"
	"shiftmaster/internal/model"
)

// loginBurst is how many login attempts a client may make back to back.
const loginBurst = 5

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Auth       *handler.AuthHandler
	Employee   *handler.EmployeeHandler
	Config     *handler.ConfigHandler
	Assignment *handler.AssignmentHandler
	Schedule   *handler.ScheduleHandler
	AuditLog   *handler.AuditLogHandler
	User       *handler.UserHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *zap.Logger,
	gate *auth.Gate,
	tokenStore auth.TokenStoreInterface,
	h Handlers,
) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(logger.RequestLogger(log))

	e.Validator = handler.NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authed := appmw.Authenticate(gate, tokenStore)
	adminOnly := appmw.RequireRole(model.UserRoleAdmin)

	api := e.Group("/api")

	api.POST("/auth/login", h.Auth.Login, appmw.LoginRateLimiter(cfg.LoginRateLimit, loginBurst))
	api.POST("/auth/logout", h.Auth.Logout, authed)
	api.GET("/auth/me", h.Auth.Me, authed)

	api.GET("/employees", h.Employee.ListEmployees)
	api.POST("/employees", h.Employee.CreateEmployee, authed)
	api.DELETE("/employees/:id", h.Employee.DeleteEmployee, authed)

	api.GET("/config/roles", h.Config.ListRoles)
	api.POST("/config/roles", h.Config.CreateRole, authed)
	api.DELETE("/config/roles/:id", h.Config.DeleteRole, authed)
	api.GET("/config/times", h.Config.ListTimeSlots, authed)
	api.POST("/config/times", h.Config.CreateTimeSlot, authed)
	api.DELETE("/config/times/:id", h.Config.DeleteTimeSlot, authed)

	api.GET("/assignments", h.Assignment.ListAssignments)
	api.POST("/assignments", h.Assignment.UpsertAssignment, authed)
	api.DELETE("/assignments/:employeeId/:date", h.Assignment.DeleteAssignment, authed)

	api.GET("/schedule/week", h.Schedule.Week)
	api.GET("/schedule/week/export", h.Schedule.ExportWeek, authed)

	api.GET("/audit-logs", h.AuditLog.ListAuditLogs, authed)
	api.DELETE("/audit-logs", h.AuditLog.ClearAuditLogs, authed, adminOnly)

	// User management is admin only.
	users := api.Group("/users", authed, adminOnly)
	users.GET("", h.User.ListUsers)
	users.POST("", h.User.CreateUser)
	users.DELETE("/:id", h.User.DeleteUser)
}
