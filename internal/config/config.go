package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"codefolio.dev/internal/models"
)

// Config holds all application configuration
type Config struct {
	Addr        string
	Debug       bool
	TemplateDir string
	SourceDir   string
	StaticDir   string
	Projects    *models.ProjectList
	Site        *models.SiteInfo
}

// Load builds the runtime configuration. The project catalog is a fixed
// literal compiled into the binary; site settings come from site.yml when
// present and fall back to defaults otherwise.
func Load(port int, debug bool) *Config {
	return &Config{
		Addr:        fmt.Sprintf(":%d", port),
		Debug:       debug,
		TemplateDir: "templates",
		SourceDir:   "projects/src",
		StaticDir:   "static",
		Projects:    DefaultProjects(),
		Site:        loadSite("site.yml"),
	}
}

// loadSite reads and parses the site settings file
func loadSite(path string) *models.SiteInfo {
	data, err := os.ReadFile(path)
	if err != nil {
		return defaultSite()
	}

	site := defaultSite()
	if err := yaml.Unmarshal(data, site); err != nil {
		return defaultSite()
	}

	return site
}

// defaultSite returns the built-in site settings
func defaultSite() *models.SiteInfo {
	return &models.SiteInfo{
		Owner: models.Owner{
			Name:        "Your Name",
			Title:       "Systems Programmer",
			Description: "Low-level software, from allocators to kernels. Passionate about clean code and knowing where every byte lives.",
			Email:       "you@example.com",
			GitHub:      "https://github.com/yourusername",
		},
		Skills: []models.SkillGroup{
			{Name: "Languages", Skills: []string{"C", "C++", "Go", "Python"}},
			{Name: "Systems", Skills: []string{"Memory Management", "RTOS", "Cryptography"}},
			{Name: "Tools", Skills: []string{"Git", "Docker", "GDB", "Valgrind"}},
		},
		Theme: models.Theme{
			PrimaryColor:    "#00ff88",
			SecondaryColor:  "#00d9ff",
			AccentColor:     "#ff00aa",
			BackgroundColor: "#0a0e1a",
			FontPrimary:     "Space Grotesk",
			FontMono:        "IBM Plex Mono",
		},
	}
}
