package http

import (
	"log/slog"
	"os"

	"github.com/RostrApp/rostr-backend-go/internal/handler/http/middleware"
	"github.com/RostrApp/rostr-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	scheduleHandler ScheduleHandler,
	shiftHandler ShiftHandler,
	reportHandler ReportHandler,
	userHandler UserHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "rostr-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/auth/register", authHandler.Register)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/", scheduleHandler.List)
				r.Get("/{scheduleID}", scheduleHandler.GetByID)
				r.Get("/{scheduleID}/shifts", shiftHandler.ListBySchedule)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", scheduleHandler.Create)
					r.Post("/{scheduleID}/assign", scheduleHandler.Assign)
					r.Post("/{scheduleID}/shifts", scheduleHandler.ScheduleShift)
					r.Delete("/{scheduleID}", scheduleHandler.Delete)
					r.Get("/{scheduleID}/summary", reportHandler.GetSummary)
					r.Post("/{scheduleID}/reports", reportHandler.Generate)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/{shiftID}", shiftHandler.GetByID)

				// Staff only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireStaff)
					r.Get("/my", shiftHandler.ListMine)
					r.Post("/{shiftID}/clock-in", shiftHandler.ClockIn)
					r.Post("/{shiftID}/clock-out", shiftHandler.ClockOut)
				})
			})

			// Admin only
			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", reportHandler.ListMine)
				r.Get("/{reportID}", reportHandler.GetByID)
			})

			// Admin only
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", userHandler.List)
				r.Get("/{userID}", userHandler.GetByID)
				r.Put("/{userID}", userHandler.Update)
			})
		})
	})
	return r
}
