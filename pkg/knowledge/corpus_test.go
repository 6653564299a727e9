package knowledge_test

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/let-the-dreamers-rise/resume-sub000/pkg/content"
	"github.com/let-the-dreamers-rise/resume-sub000/pkg/knowledge"
	testutils "github.com/let-the-dreamers-rise/resume-sub000/pkg/utils/test"
)

var _ = Describe("CorpusBuilder", func() {
	var (
		ctx      context.Context
		embedder *testutils.MockEmbedder
		provider *testutils.MockProvider
	)

	BeforeEach(func() {
		ctx = context.Background()
		embedder = testutils.NewMockEmbedder()
		provider = testutils.NewMockProvider()
	})

	It("builds a document per catalog record with deterministic IDs", func() {
		provider.Fixed = &content.Catalog{
			Projects: []content.Project{
				{Slug: "demo", Title: "Demo", Description: "A demo project."},
			},
			Skills: []content.SkillGroup{
				{Category: "Backend", Skills: []string{"Go", "Postgres"}},
			},
			Experience: []content.Experience{
				{Company: "Acme Robotics", Role: "Engineer"},
			},
			Education: []content.Education{
				{School: "State University", Degree: "BSc"},
			},
			Facts: []content.Fact{
				{Topic: "contact", Text: "Use the form."},
			},
		}

		builder := knowledge.NewCorpusBuilder(embedder, provider, 0, nil)
		docs, err := builder.Build(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(docs).To(HaveLen(5))

		ids := make([]string, 0, len(docs))
		for _, doc := range docs {
			ids = append(ids, doc.ID)
			Expect(doc.Embedding).NotTo(BeEmpty())
		}
		Expect(ids).To(ConsistOf(
			"project-demo",
			"skills-backend",
			"experience-acme-robotics",
			"education-state-university",
			"general-contact",
		))
	})

	It("renders content with the per-type templates", func() {
		builder := knowledge.NewCorpusBuilder(embedder, provider, 0, nil)
		docs, err := builder.Build(ctx)
		Expect(err).NotTo(HaveOccurred())

		byID := make(map[string]knowledge.Document)
		for _, doc := range docs {
			byID[doc.ID] = doc
		}

		Expect(byID["project-demo"].Content).To(Equal("Project: Demo\nA demo project."))
		Expect(byID["project-demo"].Type).To(Equal(knowledge.TypeProject))
		Expect(byID["general-contact"].Content).To(Equal("contact: Use the form."))
		Expect(byID["general-contact"].Type).To(Equal(knowledge.TypeGeneral))
	})

	It("attaches typed metadata to each document", func() {
		builder := knowledge.NewCorpusBuilder(embedder, provider, 0, nil)
		docs, err := builder.Build(ctx)
		Expect(err).NotTo(HaveOccurred())

		var found bool
		for _, doc := range docs {
			if meta, ok := doc.Meta.(knowledge.ProjectMeta); ok {
				found = true
				Expect(meta.Slug).To(Equal("demo"))
			}
		}
		Expect(found).To(BeTrue())
	})

	It("returns nothing when a single embedding fails", func() {
		embedder.FailOn = "contact: Use the form."

		builder := knowledge.NewCorpusBuilder(embedder, provider, 0, nil)
		docs, err := builder.Build(ctx)
		Expect(err).To(MatchError(knowledge.ErrCorpusBuild))
		Expect(docs).To(BeNil())
	})

	It("propagates provider failures", func() {
		provider.Err = fmt.Errorf("catalog unavailable")

		builder := knowledge.NewCorpusBuilder(embedder, provider, 0, nil)
		_, err := builder.Build(ctx)
		Expect(err).To(MatchError(knowledge.ErrCorpusBuild))
	})

	It("rejects a catalog with no content", func() {
		provider.Fixed = &content.Catalog{}

		builder := knowledge.NewCorpusBuilder(embedder, provider, 0, nil)
		_, err := builder.Build(ctx)
		Expect(err).To(MatchError(knowledge.ErrCorpusBuild))
	})

	It("rejects mixed embedding dimensions across the corpus", func() {
		embedder.Embeddings["contact: Use the form."] = []float32{1, 2}

		builder := knowledge.NewCorpusBuilder(embedder, provider, 0, nil)
		_, err := builder.Build(ctx)
		Expect(err).To(MatchError(knowledge.ErrDimensionMismatch))
	})

	It("stops issuing work after cancellation", func() {
		ctx, cancel := context.WithCancel(ctx)
		cancel()

		builder := knowledge.NewCorpusBuilder(embedder, provider, 0, nil)
		_, err := builder.Build(ctx)
		Expect(err).To(HaveOccurred())
	})

	It("embeds many records with a bounded pool", func() {
		catalog := &content.Catalog{}
		for i := range 50 {
			catalog.Facts = append(catalog.Facts, content.Fact{
				Topic: fmt.Sprintf("topic-%d", i),
				Text:  fmt.Sprintf("fact number %d", i),
			})
		}
		provider.Fixed = catalog

		builder := knowledge.NewCorpusBuilder(embedder, provider, 4, nil)
		docs, err := builder.Build(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(docs).To(HaveLen(50))
		Expect(embedder.Calls()).To(Equal(50))
	})
})
