package interfaces

import "time"

// RenderOptions customises how a section is rendered to HTML. Option names
// stay readable for configuration unmarshalling.
type RenderOptions struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// SectionRenderer converts Markdown into HTML.
type SectionRenderer interface {
	Render(markdown []byte, opts RenderOptions) ([]byte, error)
}

// FrontMatter models the metadata block found at the top of a Markdown
// file. Unknown keys land in Custom; Raw carries every key.
type FrontMatter struct {
	Title   string         `yaml:"title" json:"title"`
	Slug    string         `yaml:"slug" json:"slug"`
	Summary string         `yaml:"summary" json:"summary"`
	Tags    []string       `yaml:"tags" json:"tags"`
	Author  string         `yaml:"author" json:"author"`
	Date    time.Time      `yaml:"date" json:"date"`
	Draft   bool           `yaml:"draft" json:"draft"`
	Custom  map[string]any `yaml:",inline" json:"custom"`
	Raw     map[string]any `yaml:"-" json:"raw"`
}
