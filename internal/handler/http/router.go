package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/wifiattend/attendance-server/internal/domain/user"
	"github.com/wifiattend/attendance-server/internal/handler/http/middleware"
	"github.com/wifiattend/attendance-server/internal/handler/http/response"
	"github.com/wifiattend/attendance-server/internal/pkg/jwt"
)

// RouterOptions carries the process-level settings the router needs.
type RouterOptions struct {
	AllowedOrigins []string
	Env            string
	Version        string
	LogLevel       slog.Level
}

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Auth       AuthHandler
	Admin      AdminHandler
	User       UserHandler
	Dashboard  DashboardHandler
	Employee   EmployeeHandler
	Office     OfficeHandler
	Attendance AttendanceHandler
	Summary    SummaryHandler
	Leave      RequestHandler
	Permission RequestHandler
}

func NewRouter(JWTService jwt.Service, h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-server"),
		slog.String("version", opts.Version),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.BadRequest(w, "Method not allowed", nil)
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			// Superadmin: admins
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionAdminManage))
				r.Post("/create-admin", h.Admin.Create)
				r.Get("/list-admins", h.Admin.List)
				r.Put("/update-admin/{id}", h.Admin.Update)
				r.Patch("/delete-admin/{id}", h.Admin.Delete)
				r.Get("/deleted-admin", h.Admin.ListDeleted)
				r.Patch("/restore-admin/{id}", h.Admin.Restore)
			})

			r.Route("/user", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionUserManage))
				r.Get("/list", h.User.List)
				r.Delete("/delete/{id}", h.User.Delete)
				r.Put("/restore/{id}", h.User.Restore)
			})

			r.With(middleware.RequirePermission(user.PermissionDashboardView)).Get("/dashboard/stats", h.Dashboard.Stats)

			// Office network
			r.With(middleware.RequirePermission(user.PermissionOfficeView)).Get("/get/office-mac", h.Office.Get)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionOfficeManage))
				r.Post("/create/office-mac", h.Office.Create)
				r.Put("/update/office-mac", h.Office.Update)
			})

			r.Route("/employee", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
				r.Post("/create", h.Employee.CreateEmployee)
				r.Get("/list", h.Employee.ListEmployees)
				r.Get("/list/{id}", h.Employee.GetEmployee)
				r.Put("/update/{id}", h.Employee.UpdateEmployee)
				r.Delete("/delete/{id}", h.Employee.DeleteEmployee)
				r.Get("/deleted", h.Employee.ListDeletedEmployees)
				r.Put("/restore/{id}", h.Employee.RestoreEmployee)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireEmployee)
					r.With(middleware.RequirePermission(user.PermissionAttendanceCheckIn)).Post("/checkin", h.Attendance.CheckIn)
					r.With(middleware.RequirePermission(user.PermissionAttendanceCheckIn)).Post("/checkout", h.Attendance.CheckOut)
					r.With(middleware.RequirePermission(user.PermissionAttendanceViewOwn)).Get("/my-today", h.Attendance.MyToday)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceViewAll))
					r.Get("/all", h.Attendance.ListAll)
					r.Get("/single/{employeeId}", h.Attendance.ListByEmployee)
				})

				viewSummary := middleware.RequireAnyPermission(user.PermissionSummaryViewOwn, user.PermissionSummaryViewAll)
				r.With(viewSummary).Get("/monthly-summary/{employeeId}/{year}/{month}", h.Summary.Monthly)
				r.With(viewSummary).Get("/monthly/saved/{employeeId}", h.Summary.ListSaved)
				r.With(middleware.RequirePermission(user.PermissionSummarySave)).Post("/monthly/save", h.Summary.Save)
				r.With(middleware.RequirePermission(user.PermissionSummaryExport)).Get("/monthly/export/{employeeId}/{year}/{month}", h.Summary.Export)
			})

			mountRequests(r, "/leave", h.Leave, user.PermissionLeaveRequest, user.PermissionLeaveApprove)
			mountRequests(r, "/permission", h.Permission, user.PermissionPermissionRequest, user.PermissionPermissionApprove)
		})
	})
	return r
}

func mountRequests(r chi.Router, prefix string, h RequestHandler, request, approve user.Permission) {
	r.Route(prefix, func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireEmployee)
			r.Use(middleware.RequirePermission(request))
			r.Post("/request", h.Create)
			r.Get("/my-requests", h.ListMine)
			r.Get("/status-counts", h.StatusCounts)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequirePermission(approve))
			r.Get("/list", h.List)
			r.Put("/approve/{id}", h.Approve)
			r.Put("/reject/{id}", h.Reject)
		})
	})
}
