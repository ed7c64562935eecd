package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/wifiattend/attendance-server/internal/config"
	"github.com/wifiattend/attendance-server/internal/domain/leave"
	appHTTP "github.com/wifiattend/attendance-server/internal/handler/http"
	"github.com/wifiattend/attendance-server/internal/pkg/cache"
	"github.com/wifiattend/attendance-server/internal/pkg/cron"
	"github.com/wifiattend/attendance-server/internal/pkg/database"
	"github.com/wifiattend/attendance-server/internal/pkg/jwt"
	"github.com/wifiattend/attendance-server/internal/repository/postgresql"
	attendanceService "github.com/wifiattend/attendance-server/internal/service/attendance"
	serviceAuth "github.com/wifiattend/attendance-server/internal/service/auth"
	dashboardService "github.com/wifiattend/attendance-server/internal/service/dashboard"
	employeeService "github.com/wifiattend/attendance-server/internal/service/employee"
	leaveService "github.com/wifiattend/attendance-server/internal/service/leave"
	officeService "github.com/wifiattend/attendance-server/internal/service/office"
	summaryService "github.com/wifiattend/attendance-server/internal/service/summary"
	userService "github.com/wifiattend/attendance-server/internal/service/user"
)

const version = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	level := parseLevel(cfg.App.LogLevel)
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).With(
		slog.String("app", "attendance-server"),
		slog.String("env", cfg.App.Env),
	))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{MaxConns: int32(cfg.Database.MaxConns)})
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatal("Error applying schema: ", err)
	}

	var officeCache cache.Cache = cache.Noop{}
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedisCache(ctx, cache.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			slog.Warn("redis unavailable, office config will not be cached", "error", err)
		} else {
			defer redisCache.Close()
			officeCache = redisCache
		}
	}

	loc := cfg.Location()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	officeRepo := postgresql.NewOfficeConfigRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	summaryRepo := postgresql.NewSummaryRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	leaveRequestRepo, err := postgresql.NewRequestRepository(db, leave.KindLeave)
	if err != nil {
		log.Fatal("Failed to initialize leave repository: ", err)
	}
	permissionRequestRepo, err := postgresql.NewRequestRepository(db, leave.KindPermission)
	if err != nil {
		log.Fatal("Failed to initialize permission repository: ", err)
	}
	txManager := postgresql.NewTxManager(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	officeSvc := officeService.NewOfficeService(officeRepo, officeCache, cfg.Redis.OfficeTTL)
	summarySvc := summaryService.NewSummaryService(
		attendanceRepo,
		leaveRequestRepo,
		permissionRequestRepo,
		summaryRepo,
		employeeRepo,
		loc,
		time.Now,
	)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		attendanceService.NewDeviceVerifier(employeeRepo, officeSvc),
		summarySvc,
		loc,
		time.Now,
	)
	authSvc := serviceAuth.NewAuthService(userRepo, employeeRepo, JWTService)
	adminSvc := userService.NewAdminService(userRepo)
	userSvc := userService.NewUserService(userRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, loc, time.Now)
	employeeSvc := employeeService.NewEmployeeService(txManager, employeeRepo, userRepo)
	leaveSvc := leaveService.NewRequestService(leaveRequestRepo, employeeRepo, time.Now)
	permissionSvc := leaveService.NewRequestService(permissionRequestRepo, employeeRepo, time.Now)

	if err := authSvc.EnsureSuperAdmin(ctx, cfg.Bootstrap.SuperAdminUsername, cfg.Bootstrap.SuperAdminPassword); err != nil {
		log.Fatal("Failed to bootstrap superadmin: ", err)
	}

	scheduler := cron.NewScheduler()
	if cfg.Finalizer.Enabled || cfg.Finalizer.RunOnce {
		cron.NewSummaryJobs(summarySvc, loc, time.Now).RegisterJobs(scheduler, cfg.Finalizer.Interval)
	}
	if cfg.Finalizer.RunOnce {
		slog.Info("running summary jobs once", "jobs", scheduler.Jobs())
		if err := scheduler.RunOnce(ctx); err != nil {
			log.Fatal("Summary finalization failed: ", err)
		}
		return
	}
	if cfg.Finalizer.Enabled {
		scheduler.Start(ctx)
	}
	defer scheduler.Stop()

	router := appHTTP.NewRouter(JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Admin:      appHTTP.NewAdminHandler(adminSvc),
		User:       appHTTP.NewUserHandler(userSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Office:     appHTTP.NewOfficeHandler(officeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Summary:    appHTTP.NewSummaryHandler(summarySvc),
		Leave:      appHTTP.NewRequestHandler(leaveSvc),
		Permission: appHTTP.NewRequestHandler(permissionSvc),
	}, appHTTP.RouterOptions{
		AllowedOrigins: cfg.App.AllowedOrigins,
		Env:            cfg.App.Env,
		Version:        version,
		LogLevel:       level,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server running", "addr", server.Addr, "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
