package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-calc-api/internal/config"
	"go-calc-api/internal/handler"
	"go-calc-api/internal/middleware"
)

func New(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	calcHandler *handler.CalcHandler,
	healthHandler *handler.HealthHandler,
) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", healthHandler.Check)

	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))
		api.Use(authMiddleware.RequireAuth)

		api.Post("/calculate", calcHandler.Calculate)
		api.Post("/compute-only", calcHandler.ComputeOnly)
		api.Get("/scenarios", calcHandler.ListScenarios)
		api.Delete("/scenarios/{id}", calcHandler.DeleteScenario)
	})

	// Static assets at the site root.
	r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))

	return r
}
