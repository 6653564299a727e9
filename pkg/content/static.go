package content

import "context"

// StaticProvider serves the fixed in-code catalog: the skills taxonomy,
// work history, education, general facts, and the default project and blog
// entries. It is the zero-configuration content source and the fallback
// for catalog sections a DirProvider does not override.
type StaticProvider struct{}

// NewStaticProvider returns a provider backed by the built-in catalog.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

// Catalog returns a fresh copy of the built-in catalog.
func (p *StaticProvider) Catalog(_ context.Context) (*Catalog, error) {
	c := defaultCatalog
	return &c, nil
}

var defaultCatalog = Catalog{
	Projects: []Project{
		{
			Slug:         "folio",
			Title:        "Folio",
			Description:  "Personal portfolio site with a retrieval-backed assistant that answers questions about my work.",
			Technologies: []string{"Go", "Fiber", "Ollama"},
			Highlights: []string{
				"In-memory vector index over all portfolio content",
				"Chat endpoint grounded in retrieved context",
			},
			Repo:     "https://github.com/let-the-dreamers-rise/resume-sub000",
			Featured: true,
		},
		{
			Slug:         "tapedeck",
			Title:        "Tapedeck",
			Description:  "Conversation capture proxy for LLM agents with semantic search over recorded sessions.",
			Technologies: []string{"Go", "SQLite", "Cobra"},
			Highlights: []string{
				"Transparent recording proxy in front of multiple LLM providers",
				"Semantic search across historical agent transcripts",
			},
			Repo: "https://github.com/let-the-dreamers-rise/tapedeck",
		},
		{
			Slug:         "driftwatch",
			Title:        "Driftwatch",
			Description:  "Config drift detector for small fleets, diffing live state against declared manifests.",
			Technologies: []string{"Go", "fsnotify"},
			URL:          "https://driftwatch.example.dev",
		},
	},
	Posts: []Post{
		{
			Slug:      "vector-search-from-scratch",
			Title:     "Vector search from scratch",
			Summary:   "Why a linear cosine scan is the right design for a corpus of fifty documents, and when it stops being one.",
			Tags:      []string{"search", "embeddings", "go"},
			Published: "2026-03-14",
		},
		{
			Slug:      "grounding-a-chatbot",
			Title:     "Grounding a chatbot in your own data",
			Summary:   "Injecting ranked retrieval results into a system prompt, and failing closed when retrieval has nothing to say.",
			Tags:      []string{"rag", "llm"},
			Published: "2026-05-02",
		},
	},
	Skills: []SkillGroup{
		{Category: "backend", Skills: []string{"Go", "PostgreSQL", "Redis", "gRPC"}},
		{Category: "frontend", Skills: []string{"TypeScript", "React", "Tailwind CSS"}},
		{Category: "infrastructure", Skills: []string{"Docker", "Kubernetes", "Terraform", "GitHub Actions"}},
		{Category: "machine-learning", Skills: []string{"embeddings", "retrieval-augmented generation", "prompt design"}},
	},
	Experience: []Experience{
		{
			Company: "Acme Robotics",
			Role:    "Senior Software Engineer",
			Start:   "2023",
			End:     "present",
			Summary: "Own the telemetry ingestion platform for the robot fleet.",
			Highlights: []string{
				"Cut ingestion latency from minutes to seconds by reworking the batching pipeline",
				"Introduced semantic search over incident postmortems",
			},
		},
		{
			Company: "Northwind Labs",
			Role:    "Software Engineer",
			Start:   "2020",
			End:     "2023",
			Summary: "Built internal developer tooling and the public REST API.",
			Highlights: []string{
				"Designed the v2 API used by all first-party clients",
			},
		},
	},
	Education: []Education{
		{
			School: "State University",
			Degree: "B.S. Computer Science",
			Years:  "2016-2020",
			Notes:  "Focus on distributed systems.",
		},
	},
	Facts: []Fact{
		{
			Topic: "availability",
			Text:  "Open to consulting engagements and interesting full-time roles, remote or hybrid.",
		},
		{
			Topic: "contact",
			Text:  "Best reached through the contact form on this site or by email listed on the home page.",
		},
		{
			Topic: "bio",
			Text:  "Backend engineer who enjoys search problems, developer tooling, and writing about both.",
		},
	},
}
