package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/let-the-dreamers-rise/resume-sub000/pkg/embeddings/openai"
	"github.com/let-the-dreamers-rise/resume-sub000/pkg/knowledge"
)

var _ = Describe("Embedder", func() {
	It("requires an API key", func() {
		_, err := openai.NewEmbedder(openai.Config{})
		Expect(err).To(HaveOccurred())
	})

	It("posts to /v1/embeddings with bearer auth", func() {
		var gotAuth string
		var gotBody map[string]any

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			Expect(r.URL.Path).To(Equal("/v1/embeddings"))
			Expect(json.NewDecoder(r.Body).Decode(&gotBody)).To(Succeed())
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"data":[{"embedding":[0.5,0.5],"index":0}]}`))
		}))
		defer srv.Close()

		embedder, err := openai.NewEmbedder(openai.Config{BaseURL: srv.URL, APIKey: "sk-test"})
		Expect(err).NotTo(HaveOccurred())

		vec, err := embedder.Embed(context.Background(), "hello")
		Expect(err).NotTo(HaveOccurred())
		Expect(vec).To(Equal([]float32{0.5, 0.5}))
		Expect(gotAuth).To(Equal("Bearer sk-test"))
		Expect(gotBody["input"]).To(Equal([]any{"hello"}))
	})

	It("refuses to embed empty text", func() {
		embedder, err := openai.NewEmbedder(openai.Config{APIKey: "sk-test"})
		Expect(err).NotTo(HaveOccurred())

		_, err = embedder.Embed(context.Background(), "")
		Expect(err).To(MatchError(knowledge.ErrEmptyContent))
	})

	It("surfaces in-body API errors", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"data":[],"error":{"message":"invalid model","type":"invalid_request_error"}}`))
		}))
		defer srv.Close()

		embedder, err := openai.NewEmbedder(openai.Config{BaseURL: srv.URL, APIKey: "sk-test"})
		Expect(err).NotTo(HaveOccurred())

		_, err = embedder.Embed(context.Background(), "hello")
		Expect(err).To(MatchError(knowledge.ErrEmbedding))
		Expect(err.Error()).To(ContainSubstring("invalid model"))
	})
})
