package knowledge

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/let-the-dreamers-rise/resume-sub000/pkg/content"
	"github.com/let-the-dreamers-rise/resume-sub000/pkg/embeddings"
)

// StoreConfig holds the collaborators a Store needs.
type StoreConfig struct {
	// Embedder embeds queries and, via the corpus builder, content.
	Embedder embeddings.Embedder

	// Provider supplies the portfolio catalog for lazy corpus builds.
	Provider content.Provider

	// BuildWorkers bounds concurrent embedding calls during a corpus
	// build. Zero selects the default.
	BuildWorkers int

	// Logger receives store events. Nil discards them.
	Logger *slog.Logger
}

// Store is the in-memory vector index over portfolio knowledge.
//
// A store starts uninitialized and populates itself on first use: the
// first Initialize or Search builds the full corpus. Initialization is
// serialized behind the store's lock, so concurrent first requests wait
// for a single build instead of racing to start their own. A failed build
// leaves the store uninitialized and the next call retries from scratch.
//
// Reads are safe to run concurrently once initialized; writes exclude
// each other and in-flight reads.
type Store struct {
	mu          sync.RWMutex
	docs        []Document
	initialized bool

	embedder embeddings.Embedder
	builder  *CorpusBuilder
	logger   *slog.Logger
}

// NewStore creates an uninitialized store.
func NewStore(cfg StoreConfig) *Store {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Store{
		embedder: cfg.Embedder,
		logger:   logger,
	}

	if cfg.Embedder != nil && cfg.Provider != nil {
		s.builder = NewCorpusBuilder(cfg.Embedder, cfg.Provider, cfg.BuildWorkers, logger)
	}

	return s
}

// Initialize populates the store. With no seed documents it builds the
// full corpus from the content provider; with seed documents it stores
// them directly, which supports pre-computed embeddings and testing.
//
// Once initialized, further calls are no-ops: the corpus is never
// re-embedded and the collection never doubles. On failure the store
// stays uninitialized with no partial state.
func (s *Store) Initialize(ctx context.Context, seed ...Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if len(seed) > 0 {
		if err := validateSeed(seed); err != nil {
			return err
		}
		s.docs = append([]Document(nil), seed...)
		s.initialized = true
		s.logger.Info("knowledge store seeded", "documents", len(seed))
		return nil
	}

	if s.builder == nil {
		return fmt.Errorf("%w: store has no embedder or content provider", ErrCorpusBuild)
	}

	docs, err := s.builder.Build(ctx)
	if err != nil {
		return err
	}

	s.docs = docs
	s.initialized = true
	return nil
}

// Search embeds query and returns up to topK documents scoring at least
// minScore by cosine similarity, ordered by descending score. Equal
// scores keep collection order.
//
// An uninitialized store initializes itself first; corpus build failures
// propagate. A failed query embedding does not: the search fails closed
// and returns no results, so one unembeddable query degrades the chat
// experience instead of breaking it. Dimension mismatches always
// propagate.
func (s *Store) Search(ctx context.Context, query string, topK int, minScore float32) ([]Result, error) {
	if topK < 1 {
		return nil, fmt.Errorf("topK must be at least 1, got %d", topK)
	}

	if err := s.Initialize(ctx); err != nil {
		return nil, err
	}

	if strings.TrimSpace(query) == "" {
		return []Result{}, nil
	}

	if s.embedder == nil {
		s.logger.Warn("search without an embedder, returning no results")
		return []Result{}, nil
	}

	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		s.logger.Warn("query embedding failed, returning no results", "error", err)
		return []Result{}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]Result, 0, len(s.docs))
	for _, doc := range s.docs {
		score, err := Cosine(queryVec, doc.Embedding)
		if err != nil {
			return nil, err
		}
		if score >= minScore {
			matches = append(matches, Result{
				Content: doc.Content,
				Type:    doc.Type,
				Meta:    doc.Meta,
				Score:   score,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}

	return matches, nil
}

// ByType returns the documents of the given type. An uninitialized store
// returns an empty slice; this is a pure filter with no side effects.
func (s *Store) ByType(t Type) []Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]Document, 0)
	for _, doc := range s.docs {
		if doc.Type == t {
			matches = append(matches, doc)
		}
	}
	return matches
}

// All returns a copy of the current collection.
func (s *Store) All() []Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Document(nil), s.docs...)
}

// Len returns the number of documents in the collection.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Initialized reports whether the store holds a corpus.
func (s *Store) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

// Add inserts a document without a full rebuild. A document with an
// existing ID replaces the resident one in place, so re-adding content
// never double-weights it in search results. The document must carry
// non-empty content and an embedding matching the store's dimensionality.
func (s *Store) Add(doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !doc.Type.Valid() {
		return fmt.Errorf("unknown content type %q", doc.Type)
	}
	if strings.TrimSpace(doc.Content) == "" {
		return fmt.Errorf("%w: document %q", ErrEmptyContent, doc.ID)
	}
	if len(doc.Embedding) == 0 {
		return fmt.Errorf("document %q has no embedding", doc.ID)
	}
	if len(s.docs) > 0 && len(doc.Embedding) != len(s.docs[0].Embedding) {
		return fmt.Errorf("%w: document %q has %d dimensions, store has %d",
			ErrDimensionMismatch, doc.ID, len(doc.Embedding), len(s.docs[0].Embedding))
	}

	for i := range s.docs {
		if s.docs[i].ID == doc.ID {
			s.docs[i] = doc
			return nil
		}
	}

	s.docs = append(s.docs, doc)
	return nil
}

// Clear empties the collection and returns the store to uninitialized,
// so the next use rebuilds the corpus.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = nil
	s.initialized = false
	s.logger.Debug("knowledge store cleared")
}

// validateSeed rejects seed collections the store could never have built
// itself: empty content or mixed embedding dimensionalities.
func validateSeed(seed []Document) error {
	dim := len(seed[0].Embedding)
	for _, doc := range seed {
		if strings.TrimSpace(doc.Content) == "" {
			return fmt.Errorf("%w: document %q", ErrEmptyContent, doc.ID)
		}
		if len(doc.Embedding) != dim {
			return fmt.Errorf("%w: document %q has %d dimensions, expected %d",
				ErrDimensionMismatch, doc.ID, len(doc.Embedding), dim)
		}
	}
	return nil
}
