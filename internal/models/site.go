package models

// SiteInfo holds the owner, skills and theme settings rendered on the index page
type SiteInfo struct {
	Owner  Owner        `yaml:"owner" json:"owner"`
	Skills []SkillGroup `yaml:"skills" json:"skills"`
	Theme  Theme        `yaml:"theme" json:"theme"`
}

// Owner holds the personal information shown in the page header
type Owner struct {
	Name        string `yaml:"name" json:"name"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Email       string `yaml:"email" json:"email"`
	GitHub      string `yaml:"github" json:"github,omitempty"`
	LinkedIn    string `yaml:"linkedin" json:"linkedin,omitempty"`
}

// SkillGroup is a named, ordered group of skills
type SkillGroup struct {
	Name   string   `yaml:"name" json:"name"`
	Skills []string `yaml:"skills" json:"skills"`
}

// Theme holds color scheme and font settings
type Theme struct {
	PrimaryColor    string `yaml:"primary_color" json:"primary_color"`
	SecondaryColor  string `yaml:"secondary_color" json:"secondary_color"`
	AccentColor     string `yaml:"accent_color" json:"accent_color"`
	BackgroundColor string `yaml:"background_color" json:"background_color"`
	FontPrimary     string `yaml:"font_primary" json:"font_primary"`
	FontMono        string `yaml:"font_mono" json:"font_mono"`
}
