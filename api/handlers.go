package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/let-the-dreamers-rise/resume-sub000/pkg/knowledge"
)

// KnowledgeEntry is the API projection of an indexed document. The raw
// embedding stays server-side.
type KnowledgeEntry struct {
	ID      string         `json:"id"`
	Type    knowledge.Type `json:"type"`
	Content string         `json:"content"`
	Meta    knowledge.Meta `json:"meta,omitempty"`
}

// KnowledgeResponse lists indexed documents.
type KnowledgeResponse struct {
	Entries []KnowledgeEntry `json:"entries"`
	Count   int              `json:"count"`
}

// handlePing returns a simple health check response.
func (s *Server) handlePing(c *fiber.Ctx) error {
	return c.JSON("pong")
}

// handleKnowledge handles GET /v1/knowledge requests.
// Query parameters:
//   - type (optional): filter to one content type
func (s *Server) handleKnowledge(c *fiber.Ctx) error {
	var docs []knowledge.Document
	if typeParam := c.Query("type"); typeParam != "" {
		t := knowledge.Type(typeParam)
		if !t.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "unknown content type: " + typeParam,
			})
		}
		docs = s.store.ByType(t)
	} else {
		docs = s.store.All()
	}

	entries := make([]KnowledgeEntry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, KnowledgeEntry{
			ID:      doc.ID,
			Type:    doc.Type,
			Content: doc.Content,
			Meta:    doc.Meta,
		})
	}

	return c.JSON(KnowledgeResponse{
		Entries: entries,
		Count:   len(entries),
	})
}
