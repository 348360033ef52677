package research

import (
	"context"
	"strings"
)

// Summary holds what could be learned about a target from public sources.
type Summary struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	About       string   `json:"about,omitempty"`
	TechHints   []string `json:"tech_hints,omitempty"`
}

// IsEmpty reports whether the research produced nothing usable
func (s Summary) IsEmpty() bool {
	return s.Title == "" && s.Description == "" && s.About == "" && len(s.TechHints) == 0
}

// Context renders the summary as plain text suitable for inclusion in a prompt
func (s Summary) Context() string {
	var b strings.Builder

	if s.Description != "" {
		b.WriteString("Company description: ")
		b.WriteString(s.Description)
		b.WriteString("\n")
	}
	if s.About != "" {
		b.WriteString("About: ")
		b.WriteString(s.About)
		b.WriteString("\n")
	}
	if len(s.TechHints) > 0 {
		b.WriteString("Tech stack: ")
		b.WriteString(strings.Join(s.TechHints, ", "))
		b.WriteString("\n")
	}
	if b.Len() == 0 && s.Title != "" {
		b.WriteString("Website title: ")
		b.WriteString(s.Title)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// Researcher fetches a short summary of recent activity about a target
type Researcher interface {
	Research(ctx context.Context, target, website string) (Summary, error)
}
