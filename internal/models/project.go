package models

// Project represents a single portfolio entry
type Project struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Tags            []string `json:"tags"`
	Tabs            []string `json:"tabs"`
	CodeFiles       []string `json:"code_files"`
	PreviewTemplate string   `json:"preview_template,omitempty"`
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects"`
}

// HasPreview reports whether a preview template is configured
func (p Project) HasPreview() bool {
	return p.PreviewTemplate != ""
}
