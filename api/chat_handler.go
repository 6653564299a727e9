package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/let-the-dreamers-rise/resume-sub000/pkg/knowledge"
)

// ChatRequest is the body of a chat request.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the assistant's reply plus the retrieval context
// behind it.
type ChatResponse struct {
	ID      string             `json:"id"`
	Answer  string             `json:"answer"`
	Sources []knowledge.Result `json:"sources"`
}

// handleChat handles POST /v1/chat requests.
func (s *Server) handleChat(c *fiber.Ctx) error {
	if s.chat == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
			Error: "chat is not configured: a language model provider is required",
		})
	}

	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid request body",
		})
	}

	if strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "message is required",
		})
	}

	answer, err := s.chat.Ask(c.Context(), req.Message)
	if err != nil {
		s.logger.Error("chat request failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to answer, try again later",
		})
	}

	return c.JSON(ChatResponse{
		ID:      answer.ID,
		Answer:  answer.Text,
		Sources: answer.Sources,
	})
}
