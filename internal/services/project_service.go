package services

import (
	"fmt"
	"path"

	"codefolio.dev/internal/models"
)

// ProjectService owns the immutable project catalog
type ProjectService struct {
	projects *models.ProjectList
	declared map[string]bool
}

// NewProjectService creates a new ProjectService. It indexes the union of all
// declared code files so the source gateway can refuse anything else.
func NewProjectService(projects *models.ProjectList) *ProjectService {
	declared := make(map[string]bool)
	for _, p := range projects.Projects {
		for _, f := range p.CodeFiles {
			declared[path.Clean(f)] = true
		}
	}

	return &ProjectService{
		projects: projects,
		declared: declared,
	}
}

// GetAll returns all projects in catalog order
func (s *ProjectService) GetAll() []models.Project {
	return s.projects.Projects
}

// GetByID returns a specific project by ID. The scan is linear; the catalog
// holds at most a few dozen entries and the first match wins.
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	for i := range s.projects.Projects {
		if s.projects.Projects[i].ID == id {
			return &s.projects.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("project not found: %s", id)
}

// HasSourceFile reports whether rel is declared in some project's code_files
func (s *ProjectService) HasSourceFile(rel string) bool {
	return s.declared[path.Clean(rel)]
}
