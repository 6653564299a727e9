// Package content defines the portfolio content records the knowledge
// index is built from, and providers that load them. The index only reads
// content; it never writes back.
package content

import "context"

// Project is a portfolio project entry.
type Project struct {
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
	URL          string   `json:"url,omitempty"`
	Repo         string   `json:"repo,omitempty"`
	Featured     bool     `json:"featured,omitempty"`
}

// Post is a blog post entry.
type Post struct {
	Slug      string   `json:"slug"`
	Title     string   `json:"title"`
	Summary   string   `json:"summary"`
	Tags      []string `json:"tags,omitempty"`
	Published string   `json:"published,omitempty"`
}

// SkillGroup is one category of the skills taxonomy.
type SkillGroup struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// Experience is one work history entry.
type Experience struct {
	Company    string   `json:"company"`
	Role       string   `json:"role"`
	Start      string   `json:"start,omitempty"`
	End        string   `json:"end,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

// Education is one education history entry.
type Education struct {
	School string `json:"school"`
	Degree string `json:"degree,omitempty"`
	Years  string `json:"years,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// Fact is a general portfolio fact (availability, contact, bio).
type Fact struct {
	Topic string `json:"topic"`
	Text  string `json:"text"`
}

// Catalog is the full set of portfolio content sources.
type Catalog struct {
	Projects   []Project    `json:"projects"`
	Posts      []Post       `json:"posts"`
	Skills     []SkillGroup `json:"skills"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Facts      []Fact       `json:"facts"`
}

// Provider supplies the portfolio catalog to the knowledge index.
type Provider interface {
	// Catalog returns the full portfolio content set.
	Catalog(ctx context.Context) (*Catalog, error)
}
