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
	"github.com/nexus-ceredi/nexus-backend-go/internal/handler/http/middleware"
	"github.com/nexus-ceredi/nexus-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	attendanceHandler AttendanceHandler,
	reportHandler ReportHandler,
	catalogHandler CatalogHandler,
	sseHandler SSEHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "nexus-ceredi"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})
			r.Route("/login/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
			})
		})

		// SSE auth rides on the token query parameter
		r.Get("/events", sseHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/sse-token", authHandler.SSEToken)
			r.With(middleware.RequireAdmin).Post("/auth/impersonate", authHandler.Impersonate)

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", userHandler.Me)
				r.Post("/me/registration", userHandler.CompleteRegistration)
				r.Get("/staff", userHandler.ListStaff)
				r.Get("/interns", userHandler.ListInterns)
				r.Get("/{id}/accrual", userHandler.GetAccrual)
				r.With(middleware.RequireStaffOrAdmin).Get("/accruals", userHandler.ListAccruals)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/pending", userHandler.ListPendingAssignment)
					r.Put("/{id}/role", userHandler.AssignRole)
					r.Put("/{id}/schedule", userHandler.SetWeeklySchedule)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.RequireIntern).Post("/", attendanceHandler.CheckIn)
				r.With(middleware.RequireIntern).Get("/my", attendanceHandler.MyRecords)
				r.With(middleware.RequireStaff).Get("/pending", attendanceHandler.Pending)

				r.Route("/{year}/{month}", func(r chi.Router) {
					r.With(middleware.RequireStaffOrAdmin).Get("/", attendanceHandler.ListMonth)
					r.With(middleware.RequireStaffOrAdmin).Get("/export", attendanceHandler.ExportCSV)

					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", attendanceHandler.Get)
						r.With(middleware.RequireStaff).Post("/validate", attendanceHandler.ValidateEntry)
						r.With(middleware.RequireIntern).Post("/exit", attendanceHandler.RequestExit)
						r.With(middleware.RequireStaff).Post("/approve-exit", attendanceHandler.ApproveExit)
						r.With(middleware.RequireAdmin).Post("/force-close", attendanceHandler.ForceClose)
						r.With(middleware.RequireAdmin).Delete("/", attendanceHandler.Delete)
					})
				})
			})

			r.Route("/services", func(r chi.Router) {
				r.Get("/", catalogHandler.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", catalogHandler.Create)
					r.Put("/{id}", catalogHandler.Update)
					r.Delete("/{id}", catalogHandler.Delete)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.With(middleware.RequireServiceHead).Post("/", reportHandler.AddIncident)
				r.With(middleware.RequireStaffOrAdmin).Get("/recent", reportHandler.ListRecent)
				r.With(middleware.RequireStaffOrAdmin).Get("/intern/{id}", reportHandler.ListByIntern)

				r.Route("/audit", func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/run", reportHandler.RunAudit)
					r.Post("/absence/{id}", reportHandler.ReportAbsence)
				})
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	return r
}
