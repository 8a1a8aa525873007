package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/org-directory/internal/auth"
	"github.com/frahmantamala/org-directory/internal/orgchart"
	"github.com/frahmantamala/org-directory/internal/person"
	"github.com/frahmantamala/org-directory/internal/transport/middleware"
	"github.com/frahmantamala/org-directory/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	personHandler *person.Handler,
	chartHandler *orgchart.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		// Health check route
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		if authHandler != nil {
			r.Route("/auth", func(sr chi.Router) {
				sr.Post("/login", authHandler.Login)
				sr.Post("/refresh", authHandler.RefreshToken)
				sr.Post("/logout", authHandler.Logout)
			})
		}

		if authHandler != nil {
			// Protected routes that require authentication
			r.Group(func(pr chi.Router) {
				pr.Use(authHandler.AuthMiddleware)

				// Current user
				if personHandler != nil {
					pr.Get("/users/me", personHandler.GetCurrentUser)
				}

				// Every authenticated viewer gets their scoped chart
				if chartHandler != nil {
					pr.Get("/org-chart", chartHandler.GetOrgChart)
				}

				// Raw directory listing is for supervising roles only
				if personHandler != nil {
					pr.Group(func(mr chi.Router) {
						mr.Use(middleware.RequireRole(person.RoleManager))
						mr.Get("/people", personHandler.GetPeople)
						mr.Get("/people/{id}", personHandler.GetPerson)
					})
				}
			})
		}
	})
}
