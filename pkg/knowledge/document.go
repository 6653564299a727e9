// Package knowledge provides the in-memory semantic index behind the
// portfolio assistant: embedded content documents, cosine similarity
// ranking, and a lazily-populated vector store.
package knowledge

// Type tags a document with the class of portfolio content it was built
// from. The set is closed; search results are labeled by Type when they
// are injected into the assistant prompt.
type Type string

const (
	TypeProject    Type = "project"
	TypeSkill      Type = "skill"
	TypeExperience Type = "experience"
	TypeEducation  Type = "education"
	TypeGeneral    Type = "general"
)

// Valid reports whether t is one of the known content types.
func (t Type) Valid() bool {
	switch t {
	case TypeProject, TypeSkill, TypeExperience, TypeEducation, TypeGeneral:
		return true
	}
	return false
}

// Meta is the provenance metadata attached to a document. The concrete
// shape depends on the document's Type, so each content class carries its
// own variant rather than an untyped map. Metadata is opaque to the store
// and passed through to search results unchanged.
type Meta interface {
	isMeta()
}

// ProjectMeta is the metadata variant for project documents.
type ProjectMeta struct {
	Slug         string   `json:"slug"`
	URL          string   `json:"url,omitempty"`
	Repo         string   `json:"repo,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Featured     bool     `json:"featured,omitempty"`
}

// PostMeta is the metadata variant for blog post documents.
type PostMeta struct {
	Slug      string   `json:"slug"`
	Tags      []string `json:"tags,omitempty"`
	Published string   `json:"published,omitempty"`
}

// SkillMeta is the metadata variant for skill group documents.
type SkillMeta struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills,omitempty"`
}

// ExperienceMeta is the metadata variant for work history documents.
type ExperienceMeta struct {
	Company string `json:"company"`
	Role    string `json:"role,omitempty"`
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`
}

// EducationMeta is the metadata variant for education documents.
type EducationMeta struct {
	School string `json:"school"`
	Degree string `json:"degree,omitempty"`
	Years  string `json:"years,omitempty"`
}

// GeneralMeta is the metadata variant for general portfolio facts.
type GeneralMeta struct {
	Topic string `json:"topic"`
}

func (ProjectMeta) isMeta()    {}
func (PostMeta) isMeta()       {}
func (SkillMeta) isMeta()      {}
func (ExperienceMeta) isMeta() {}
func (EducationMeta) isMeta()  {}
func (GeneralMeta) isMeta()    {}

// Document is one indexed unit of portfolio knowledge: the flattened text
// that was embedded, its vector, and provenance metadata.
//
// Every document in a store carries an embedding of the same length; the
// store rejects mixed dimensionalities on insert.
type Document struct {
	// ID uniquely identifies the document within a store
	// (e.g. "project-folio", "skills-backend", "experience-acme").
	ID string `json:"id"`

	// Type is the content class the document was built from.
	Type Type `json:"type"`

	// Content is the plain-text representation that was embedded.
	Content string `json:"content"`

	// Embedding is the vector representation of Content.
	Embedding []float32 `json:"embedding,omitempty"`

	// Meta carries type-specific provenance fields.
	Meta Meta `json:"meta,omitempty"`
}

// Result is the ranked projection of a matched document returned by
// Store.Search. The raw embedding is dropped; Content, Type and Meta are
// carried through from the matched document unchanged.
type Result struct {
	Content string  `json:"content"`
	Type    Type    `json:"type"`
	Meta    Meta    `json:"meta,omitempty"`
	Score   float32 `json:"score"`
}
