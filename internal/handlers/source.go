package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"codefolio.dev/internal/services"
)

// SourceHandler serves raw source file bytes for the code viewer. It only
// serves paths declared in some project's code_files; everything else,
// including anything that escapes the base directory, is a 404.
type SourceHandler struct {
	baseDir        string
	projectService *services.ProjectService
}

// NewSourceHandler creates a new SourceHandler rooted at baseDir
func NewSourceHandler(baseDir string, ps *services.ProjectService) *SourceHandler {
	return &SourceHandler{
		baseDir:        baseDir,
		projectService: ps,
	}
}

// ServeFile handles GET /source/*
func (h *SourceHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	rel := chi.URLParam(r, "*")

	// Rooted clean collapses any ".." segments before the prefix strip.
	rel = strings.TrimPrefix(path.Clean("/"+rel), "/")
	if rel == "" || rel == "." {
		http.NotFound(w, r)
		return
	}

	if !h.projectService.HasSourceFile(rel) {
		http.NotFound(w, r)
		return
	}

	full := filepath.Join(h.baseDir, filepath.FromSlash(rel))

	info, err := os.Stat(full)
	if err != nil || !info.Mode().IsRegular() {
		http.NotFound(w, r)
		return
	}

	data, err := os.ReadFile(full)
	if err != nil {
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(data)
}
