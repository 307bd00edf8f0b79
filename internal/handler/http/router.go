package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/officedesk/backoffice-go/internal/handler/http/middleware"
	"github.com/officedesk/backoffice-go/internal/pkg/jwt"
)

func NewRouter(
	env string,
	allowedOrigins []string,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	salaryHandler SalaryHandler,
	employeeHandler EmployeeHandler,
	stockHandler StockHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "backoffice"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.Roster)
				r.Post("/", attendanceHandler.Record)
				r.Put("/date/{date}", attendanceHandler.RecordForDate)
				r.Get("/summary/{year}/{month}", attendanceHandler.SummaryAll)
				r.Get("/{id}/summary/{year}/{month}", attendanceHandler.SummaryByEmployee)
				r.Delete("/retention", attendanceHandler.Prune)
			})

			r.Route("/salary", func(r chi.Router) {
				r.Get("/{id}/{year}/{month}", salaryHandler.Get)
				r.Get("/{id}/{year}/{month}/summary", salaryHandler.Summary)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Get("/{id}", employeeHandler.Get)
				r.Delete("/{id}", employeeHandler.Delete)
			})

			r.Route("/stock", func(r chi.Router) {
				r.Get("/", stockHandler.List)
				r.Post("/", stockHandler.Create)
				r.Patch("/{id}/quantity", stockHandler.UpdateQuantity)
				r.Delete("/{id}", stockHandler.Delete)
			})
		})
	})
	return r
}
