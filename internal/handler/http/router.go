package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hrms-lite-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type RouterConfig struct {
	AllowedOrigins []string
	LogLevel       slog.Level
}

func NewRouter(
	cfg RouterConfig,
	logger *slog.Logger,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	healthHandler HealthHandler,
) *chi.Mux {
	r := chi.NewRouter()

	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})

	r.Get("/", healthHandler.Root)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)

		r.Route("/employees", func(r chi.Router) {
			r.With(chiMiddleware.AllowContentType("application/json")).Post("/", employeeHandler.CreateEmployee)
			r.Get("/", employeeHandler.ListEmployees)
			r.Get("/{id}", employeeHandler.GetEmployee)
			r.Delete("/{id}", employeeHandler.DeleteEmployee)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.With(chiMiddleware.AllowContentType("application/json")).Post("/", attendanceHandler.MarkAttendance)
			r.Get("/{emp_id}", attendanceHandler.GetEmployeeAttendance)
		})
	})

	return r
}
