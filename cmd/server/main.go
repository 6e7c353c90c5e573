package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "shiftmaster/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"shiftmaster/internal/auth"
	"shiftmaster/internal/cache"
	"shiftmaster/internal/config"
	"shiftmaster/internal/db"
	"shiftmaster/internal/handler"
	"shiftmaster/internal/logger"
	"shiftmaster/internal/repository"
	"shiftmaster/internal/router"
	"shiftmaster/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title ShiftMaster API
// @version 1.0
// @description Weekly shift scheduling with JWT authentication, audit logging and XLSX export.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	gormDB, err := db.Open(cfg)
	if err != nil {
		log.Fatal("database init", zap.Error(err))
	}
	if cfg.AutoMigrate {
		if err := db.AutoMigrate(gormDB); err != nil {
			log.Fatal("auto-migrate", zap.Error(err))
		}
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer func() { _ = cacheClient.Close() }()
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		log.Warn("redis unreachable, running without cache and logout revocation", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	cancelPing()

	// Initialize repositories
	employeeRepo := repository.NewEmployeeRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)
	timeSlotRepo := repository.NewTimeSlotRepository(gormDB)
	assignmentRepo := repository.NewAssignmentRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	auditRepo := repository.NewAuditLogRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	gate := auth.NewGate(jwtService)
	tokenStore := auth.NewTokenStore(cacheClient)
	providers := []auth.IdentityProvider{
		auth.NewBuiltinAdminProvider(cfg.AdminUsername, cfg.AdminPassword),
		auth.NewDatabaseProvider(userRepo),
	}

	// Initialize services
	auditService := service.NewAuditService(auditRepo, log)
	authService := service.NewAuthService(providers, jwtService, tokenStore, auditService, log)
	employeeService := service.NewEmployeeService(employeeRepo, auditService)
	configService := service.NewConfigService(roleRepo, timeSlotRepo, auditService, cacheClient, cfg.ConfigCacheTTL)
	assignmentService := service.NewAssignmentService(assignmentRepo, auditService)
	scheduleService := service.NewScheduleService(employeeRepo, assignmentRepo)
	userService := service.NewUserService(userRepo, auditService, cfg.AdminUsername)

	e := echo.New()
	e.HideBanner = true

	router.Register(e, cfg, log, gate, tokenStore, router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Employee:   handler.NewEmployeeHandler(employeeService),
		Config:     handler.NewConfigHandler(configService),
		Assignment: handler.NewAssignmentHandler(assignmentService),
		Schedule:   handler.NewScheduleHandler(scheduleService),
		AuditLog:   handler.NewAuditLogHandler(auditService),
		User:       handler.NewUserHandler(userService),
	})

	log.Info("swagger documentation available", zap.String("url", swaggerURL(cfg)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info("server starting", zap.String("addr", addr), zap.String("db_driver", cfg.DBDriver))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
