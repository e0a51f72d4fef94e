// internal/domain/models/profile.go
package models

import "strings"

// Experience is one entry in the about page timeline.
type Experience struct {
	Title       string `yaml:"title"`
	Company     string `yaml:"company"`
	Period      string `yaml:"period"`
	Description string `yaml:"description"`
}

// Profile describes the site owner.
type Profile struct {
	Name         string       `yaml:"name" validate:"required" label:"Name"`
	Role         string       `yaml:"role"`
	Location     string       `yaml:"location,omitempty"`
	AvatarURL    string       `yaml:"avatar_url,omitempty" validate:"omitempty,httpurl" label:"Avatar URL"`
	Bio          string       `yaml:"bio"`
	Philosophy   string       `yaml:"philosophy,omitempty"`
	Skills       []string     `yaml:"skills,omitempty"`
	Experience   []Experience `yaml:"experience,omitempty"`
	ResumeURL    string       `yaml:"resume_url,omitempty"`
	Email        string       `yaml:"email,omitempty" validate:"omitempty,email" label:"Email"`
	GitHubURL    string       `yaml:"github_url,omitempty" validate:"omitempty,httpurl" label:"GitHub URL"`
	LinkedInURL  string       `yaml:"linkedin_url,omitempty" validate:"omitempty,httpurl" label:"LinkedIn URL"`
	Availability string       `yaml:"availability,omitempty"`
	OfficeHours  string       `yaml:"office_hours,omitempty"`
}

// FirstName returns the first word of Name.
func (p Profile) FirstName() string {
	fields := strings.Fields(p.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Initials returns the avatar fallback text ("Alex Johnson" -> "AJ").
func (p Profile) Initials() string {
	var b strings.Builder
	for _, f := range strings.Fields(p.Name) {
		r := []rune(f)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}
