package testutils

import (
	"context"

	"github.com/let-the-dreamers-rise/resume-sub000/pkg/content"
)

// MockProvider is a test content provider serving a fixed catalog.
type MockProvider struct {
	Fixed *content.Catalog
	Err   error
}

// NewMockProvider returns a provider with a minimal two-section catalog.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Fixed: &content.Catalog{
			Projects: []content.Project{
				{Slug: "demo", Title: "Demo", Description: "A demo project."},
			},
			Facts: []content.Fact{
				{Topic: "contact", Text: "Use the form."},
			},
		},
	}
}

func (p *MockProvider) Catalog(_ context.Context) (*content.Catalog, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Fixed, nil
}
