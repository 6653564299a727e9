// Package chat answers visitor questions about the portfolio by searching
// the knowledge index and handing the ranked context to a language model.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/let-the-dreamers-rise/resume-sub000/pkg/knowledge"
)

const (
	// DefaultTopK is how many knowledge results back an answer.
	DefaultTopK = 4

	// DefaultMinScore is the similarity floor for retrieved context.
	DefaultMinScore = 0.6
)

// Answer is one assistant reply with the retrieval context behind it.
type Answer struct {
	ID       string             `json:"id"`
	Question string             `json:"question"`
	Text     string             `json:"text"`
	Sources  []knowledge.Result `json:"sources"`
}

// ServiceConfig holds the collaborators and tuning for a chat Service.
type ServiceConfig struct {
	Store    *knowledge.Store
	Call     CallFunc
	TopK     int     // zero selects DefaultTopK
	MinScore float32 // zero selects DefaultMinScore
	Logger   *slog.Logger
}

// Service is the chat layer over the knowledge store.
type Service struct {
	store    *knowledge.Store
	call     CallFunc
	topK     int
	minScore float32
	logger   *slog.Logger
}

// NewService creates a chat service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("chat service requires a knowledge store")
	}
	if cfg.Call == nil {
		return nil, fmt.Errorf("chat service requires an LLM caller")
	}

	topK := cfg.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}

	minScore := cfg.MinScore
	if minScore == 0 {
		minScore = DefaultMinScore
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Service{
		store:    cfg.Store,
		call:     cfg.Call,
		topK:     topK,
		minScore: minScore,
		logger:   logger,
	}, nil
}

// Ask retrieves context for question and asks the language model for an
// answer grounded in it. Empty retrieval is a valid low-confidence
// outcome, not an error; only corpus build and model call failures
// propagate.
func (s *Service) Ask(ctx context.Context, question string) (*Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("question is empty")
	}

	results, err := s.store.Search(ctx, question, s.topK, s.minScore)
	if err != nil {
		return nil, fmt.Errorf("searching knowledge: %w", err)
	}

	s.logger.Debug("retrieved chat context",
		"question", question,
		"results", len(results),
	)

	text, err := s.call(ctx, BuildSystemPrompt(results), question)
	if err != nil {
		return nil, fmt.Errorf("calling language model: %w", err)
	}

	return &Answer{
		ID:       uuid.NewString(),
		Question: question,
		Text:     text,
		Sources:  results,
	}, nil
}
