package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"codefolio.dev/internal/config"
	"codefolio.dev/internal/livereload"
	"codefolio.dev/internal/middleware"
	"codefolio.dev/internal/render"
	"codefolio.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, logger *zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	// Initialize services
	projectService := services.NewProjectService(cfg.Projects)
	renderer := render.New(cfg.TemplateDir, cfg.Debug)

	// Initialize handlers
	pageHandler := NewPageHandler(renderer, projectService, cfg.Site)
	projectHandler := NewProjectHandler(projectService)
	sourceHandler := NewSourceHandler(cfg.SourceDir, projectService)

	// Pages
	r.Get("/", pageHandler.Index)
	r.Get("/project/{id}/preview", pageHandler.Preview)

	// Source file gateway
	r.Get("/source/*", sourceHandler.ServeFile)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	// Live reload in debug mode only
	if cfg.Debug {
		reloader := livereload.New()
		if err := reloader.Watch(logger, cfg.TemplateDir, cfg.StaticDir); err != nil {
			logger.Warn().Err(err).Msg("live reload disabled")
		} else {
			r.Get("/__reload", reloader.Handler)
		}
	}

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("encoding JSON response")
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
