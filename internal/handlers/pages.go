package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"codefolio.dev/internal/models"
	"codefolio.dev/internal/render"
	"codefolio.dev/internal/services"
)

// PageHandler renders the HTML pages
type PageHandler struct {
	renderer       *render.Renderer
	projectService *services.ProjectService
	site           *models.SiteInfo
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(renderer *render.Renderer, ps *services.ProjectService, site *models.SiteInfo) *PageHandler {
	return &PageHandler{
		renderer:       renderer,
		projectService: ps,
		site:           site,
	}
}

// indexData is the context passed to the index template
type indexData struct {
	Site     *models.SiteInfo
	Projects []models.Project
}

// previewData is the context passed to preview templates
type previewData struct {
	Project *models.Project
}

// Index handles GET / and renders the main portfolio page
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	data := indexData{
		Site:     h.site,
		Projects: h.projectService.GetAll(),
	}

	html, err := h.renderer.Render("index.html", data)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

// Preview handles GET /project/{id}/preview and renders the project's
// preview fragment for embedding in an iframe.
func (h *PageHandler) Preview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	logger := zerolog.Ctx(r.Context())

	project, err := h.projectService.GetByID(id)
	if err != nil || !project.HasPreview() {
		logger.Debug().Str("project", id).Msg("preview not available")
		http.Error(w, "Preview not available", http.StatusNotFound)
		return
	}

	html, err := h.renderer.Render(project.PreviewTemplate, previewData{Project: project})
	if err != nil {
		logger.Error().Err(err).Str("project", id).Msg("preview render failed")
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}
