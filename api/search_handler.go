package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/let-the-dreamers-rise/resume-sub000/pkg/knowledge"
)

const (
	defaultTopK     = 5
	defaultMinScore = 0.0
)

// SearchResponse is the payload returned by the search endpoint.
type SearchResponse struct {
	Query   string             `json:"query"`
	Results []knowledge.Result `json:"results"`
	Count   int                `json:"count"`
}

// handleSearch handles GET /v1/search requests.
// Query parameters:
//   - query (required): the search query text
//   - top_k (optional, default 5): number of results to return
//   - min_score (optional, default 0): similarity floor in [-1, 1]
func (s *Server) handleSearch(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "query parameter is required",
		})
	}

	topK := defaultTopK
	if topKStr := c.Query("top_k"); topKStr != "" {
		parsed, err := strconv.Atoi(topKStr)
		if err != nil || parsed <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "top_k must be a positive integer",
			})
		}
		topK = parsed
	}

	minScore := float32(defaultMinScore)
	if minScoreStr := c.Query("min_score"); minScoreStr != "" {
		parsed, err := strconv.ParseFloat(minScoreStr, 32)
		if err != nil || parsed < -1 || parsed > 1 {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "min_score must be a number in [-1, 1]",
			})
		}
		minScore = float32(parsed)
	}

	results, err := s.store.Search(c.Context(), query, topK, minScore)
	if err != nil {
		s.logger.Error("search failed", "query", query, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}

	return c.JSON(SearchResponse{
		Query:   query,
		Results: results,
		Count:   len(results),
	})
}
