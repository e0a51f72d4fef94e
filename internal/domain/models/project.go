// internal/domain/models/project.go
package models

// Insight is a titled paragraph used for challenges and solutions.
type Insight struct {
	Title   string `yaml:"title" validate:"required" label:"Insight title"`
	Content string `yaml:"content" validate:"required" label:"Insight content"`
}

// ProjectSummary is what a listing card needs.
type ProjectSummary struct {
	Slug             string
	Title            string
	ShortDescription string
	ImageURL         string
	Tags             []string
}

// ProjectDetail is the full, read-only project record. Slug is the join key
// between listings and the detail page.
type ProjectDetail struct {
	Slug             string      `yaml:"slug" validate:"required,slug" label:"Slug"`
	Title            string      `yaml:"title" validate:"required" label:"Title"`
	Category         string      `yaml:"category" validate:"required" label:"Category"`
	Date             string      `yaml:"date" validate:"required" label:"Date"`
	ShortDescription string      `yaml:"short_description,omitempty"`
	ImageURL         string      `yaml:"image_url,omitempty" validate:"omitempty,httpurl" label:"Image URL"`
	Tags             []string    `yaml:"tags,omitempty"`
	Featured         bool        `yaml:"featured,omitempty"`
	LongDescription  string      `yaml:"long_description" validate:"required" label:"Long description"`
	Images           []MediaItem `yaml:"images,omitempty" validate:"dive"`
	Technologies     []string    `yaml:"technologies,omitempty"`
	Challenges       []Insight   `yaml:"challenges,omitempty" validate:"dive"`
	Solutions        []Insight   `yaml:"solutions,omitempty" validate:"dive"`
	LiveLink         string      `yaml:"live_link,omitempty" validate:"omitempty,httpurl" label:"Live link"`
	SourceLink       string      `yaml:"source_link,omitempty" validate:"omitempty,httpurl" label:"Source link"`
}

// Summary derives the listing card for this project.
func (p ProjectDetail) Summary() ProjectSummary {
	return ProjectSummary{
		Slug:             p.Slug,
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		ImageURL:         p.ImageURL,
		Tags:             p.Tags,
	}
}

// HasInsights reports whether the challenges/solutions section has content.
func (p ProjectDetail) HasInsights() bool {
	return len(p.Challenges) > 0 || len(p.Solutions) > 0
}

// HasLinks reports whether the project links section has content.
func (p ProjectDetail) HasLinks() bool {
	return p.LiveLink != "" || p.SourceLink != ""
}
