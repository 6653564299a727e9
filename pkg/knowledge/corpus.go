package knowledge

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/let-the-dreamers-rise/resume-sub000/pkg/content"
	"github.com/let-the-dreamers-rise/resume-sub000/pkg/embeddings"
)

// defaultBuildWorkers bounds concurrent embedding calls during a corpus build.
const defaultBuildWorkers = 3

// CorpusBuilder turns the portfolio catalog into embedded documents.
// Each content record is flattened to a text block with a fixed per-type
// template, embedded via the configured Embedder, and wrapped with a
// deterministic ID and typed metadata.
//
// A build is all-or-nothing: embedding calls run on a bounded worker pool,
// the first failure cancels the remaining work, and nothing is returned
// unless every item embedded successfully. A partially-populated index
// would silently degrade recall with no visible signal.
type CorpusBuilder struct {
	embedder embeddings.Embedder
	provider content.Provider
	workers  int
	logger   *slog.Logger
}

// NewCorpusBuilder creates a builder. workers <= 0 selects the default
// pool size; a nil logger discards build logs.
func NewCorpusBuilder(embedder embeddings.Embedder, provider content.Provider, workers int, logger *slog.Logger) *CorpusBuilder {
	if workers <= 0 {
		workers = defaultBuildWorkers
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CorpusBuilder{
		embedder: embedder,
		provider: provider,
		workers:  workers,
		logger:   logger,
	}
}

// Build enumerates every content source and returns the fully embedded
// corpus, or an error wrapping ErrCorpusBuild if any item fails.
func (b *CorpusBuilder) Build(ctx context.Context) ([]Document, error) {
	catalog, err := b.provider.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: loading catalog: %w", ErrCorpusBuild, err)
	}

	docs, err := flattenCatalog(catalog)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorpusBuild, err)
	}

	if err := b.embedAll(ctx, docs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorpusBuild, err)
	}

	// All vectors must share the embedding model's dimensionality.
	dim := len(docs[0].Embedding)
	for _, doc := range docs {
		if len(doc.Embedding) != dim {
			return nil, fmt.Errorf("%w: %w: document %q has %d dimensions, expected %d",
				ErrCorpusBuild, ErrDimensionMismatch, doc.ID, len(doc.Embedding), dim)
		}
	}

	b.logger.Info("portfolio corpus built",
		"documents", len(docs),
		"dimensions", dim,
	)

	return docs, nil
}

// embedAll fills in the Embedding of every document using a bounded worker
// pool. The first error cancels outstanding work and is returned.
func (b *CorpusBuilder) embedAll(ctx context.Context, docs []Document) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		buildErr error
	)

	fail := func(err error) {
		errOnce.Do(func() {
			buildErr = err
			cancel()
		})
	}

	wg.Add(b.workers)
	for range b.workers {
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					continue
				}
				vec, err := b.embedder.Embed(ctx, docs[i].Content)
				if err != nil {
					fail(fmt.Errorf("embedding %q: %w", docs[i].ID, err))
					continue
				}
				docs[i].Embedding = vec
			}
		}()
	}

	for i := range docs {
		select {
		case jobs <- i:
		case <-ctx.Done():
		}
	}
	close(jobs)
	wg.Wait()

	if buildErr != nil {
		return buildErr
	}
	return ctx.Err()
}

// flattenCatalog renders every catalog record into an unembedded document
// using the fixed per-type templates. Records that flatten to empty text
// are rejected; an embedding is never generated for empty content.
func flattenCatalog(catalog *content.Catalog) ([]Document, error) {
	var docs []Document

	for _, p := range catalog.Projects {
		docs = append(docs, Document{
			ID:      "project-" + slugify(p.Slug),
			Type:    TypeProject,
			Content: flattenProject(p),
			Meta: ProjectMeta{
				Slug:         p.Slug,
				URL:          p.URL,
				Repo:         p.Repo,
				Technologies: p.Technologies,
				Featured:     p.Featured,
			},
		})
	}

	for _, post := range catalog.Posts {
		docs = append(docs, Document{
			ID:      "blog-" + slugify(post.Slug),
			Type:    TypeGeneral,
			Content: flattenPost(post),
			Meta: PostMeta{
				Slug:      post.Slug,
				Tags:      post.Tags,
				Published: post.Published,
			},
		})
	}

	for _, group := range catalog.Skills {
		docs = append(docs, Document{
			ID:      "skills-" + slugify(group.Category),
			Type:    TypeSkill,
			Content: flattenSkills(group),
			Meta: SkillMeta{
				Category: group.Category,
				Skills:   group.Skills,
			},
		})
	}

	for _, exp := range catalog.Experience {
		docs = append(docs, Document{
			ID:      "experience-" + slugify(exp.Company),
			Type:    TypeExperience,
			Content: flattenExperience(exp),
			Meta: ExperienceMeta{
				Company: exp.Company,
				Role:    exp.Role,
				Start:   exp.Start,
				End:     exp.End,
			},
		})
	}

	for _, edu := range catalog.Education {
		docs = append(docs, Document{
			ID:      "education-" + slugify(edu.School),
			Type:    TypeEducation,
			Content: flattenEducation(edu),
			Meta: EducationMeta{
				School: edu.School,
				Degree: edu.Degree,
				Years:  edu.Years,
			},
		})
	}

	for _, fact := range catalog.Facts {
		docs = append(docs, Document{
			ID:      "general-" + slugify(fact.Topic),
			Type:    TypeGeneral,
			Content: flattenFact(fact),
			Meta: GeneralMeta{
				Topic: fact.Topic,
			},
		})
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("catalog contains no content")
	}

	for _, doc := range docs {
		if strings.TrimSpace(doc.Content) == "" {
			return nil, fmt.Errorf("%w: document %q", ErrEmptyContent, doc.ID)
		}
	}

	return docs, nil
}

func flattenProject(p content.Project) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Project: %s\n%s", p.Title, p.Description)
	if len(p.Technologies) > 0 {
		fmt.Fprintf(&sb, "\nTechnologies: %s", strings.Join(p.Technologies, ", "))
	}
	for _, h := range p.Highlights {
		fmt.Fprintf(&sb, "\n- %s", h)
	}
	if p.URL != "" {
		fmt.Fprintf(&sb, "\nURL: %s", p.URL)
	}
	if p.Repo != "" {
		fmt.Fprintf(&sb, "\nRepository: %s", p.Repo)
	}
	return sb.String()
}

func flattenPost(p content.Post) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Blog post: %s\n%s", p.Title, p.Summary)
	if len(p.Tags) > 0 {
		fmt.Fprintf(&sb, "\nTags: %s", strings.Join(p.Tags, ", "))
	}
	if p.Published != "" {
		fmt.Fprintf(&sb, "\nPublished: %s", p.Published)
	}
	return sb.String()
}

func flattenSkills(g content.SkillGroup) string {
	return fmt.Sprintf("Skills (%s): %s", g.Category, strings.Join(g.Skills, ", "))
}

func flattenExperience(e content.Experience) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Experience: %s at %s", e.Role, e.Company)
	if e.Start != "" {
		fmt.Fprintf(&sb, " (%s - %s)", e.Start, e.End)
	}
	if e.Summary != "" {
		fmt.Fprintf(&sb, "\n%s", e.Summary)
	}
	for _, h := range e.Highlights {
		fmt.Fprintf(&sb, "\n- %s", h)
	}
	return sb.String()
}

func flattenEducation(e content.Education) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Education: %s, %s", e.Degree, e.School)
	if e.Years != "" {
		fmt.Fprintf(&sb, " (%s)", e.Years)
	}
	if e.Notes != "" {
		fmt.Fprintf(&sb, "\n%s", e.Notes)
	}
	return sb.String()
}

func flattenFact(f content.Fact) string {
	return fmt.Sprintf("%s: %s", f.Topic, f.Text)
}

// slugify lowercases s and replaces runs of non-alphanumeric characters
// with single hyphens, producing stable document IDs.
func slugify(s string) string {
	var sb strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				sb.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(sb.String(), "-")
}
