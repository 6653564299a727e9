package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/let-the-dreamers-rise/resume-sub000/pkg/chat"
	"github.com/let-the-dreamers-rise/resume-sub000/pkg/knowledge"
	foliologger "github.com/let-the-dreamers-rise/resume-sub000/pkg/logger"
	testutils "github.com/let-the-dreamers-rise/resume-sub000/pkg/utils/test"
)

func chatRequest(message string) *http.Request {
	body, err := json.Marshal(ChatRequest{Message: message})
	ExpectWithOffset(1, err).NotTo(HaveOccurred())

	req, err := http.NewRequest(http.MethodPost, "/v1/chat", bytes.NewReader(body))
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	req.Header.Set("Content-Type", "application/json")
	return req
}

var _ = Describe("handleChat", func() {
	var (
		server   *Server
		embedder *testutils.MockEmbedder
		call     chat.CallFunc
	)

	newChatServer := func(cfg Config) *Server {
		store := knowledge.NewStore(knowledge.StoreConfig{Embedder: embedder})
		Expect(store.Initialize(context.Background(),
			knowledge.Document{
				ID:        "project-react-portfolio",
				Type:      knowledge.TypeProject,
				Content:   "React portfolio site",
				Embedding: []float32{1, 0},
			},
		)).To(Succeed())

		svc, err := chat.NewService(chat.ServiceConfig{Store: store, Call: call})
		Expect(err).NotTo(HaveOccurred())

		return NewServer(cfg, store, svc, foliologger.Nop())
	}

	BeforeEach(func() {
		embedder = testutils.NewMockEmbedder()
		embedder.Default = []float32{1, 0}
		call = func(context.Context, string, string) (string, error) {
			return "I built a portfolio site with React.", nil
		}
	})

	Context("when chat is not configured", func() {
		It("returns 503", func() {
			store := knowledge.NewStore(knowledge.StoreConfig{Embedder: embedder})
			server = NewServer(Config{ListenAddr: ":0"}, store, nil, foliologger.Nop())

			resp, err := server.app.Test(chatRequest("hello"))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusServiceUnavailable))
		})
	})

	Context("with a valid message", func() {
		It("returns the answer and its sources", func() {
			server = newChatServer(Config{ListenAddr: ":0"})

			resp, err := server.app.Test(chatRequest("What did you build with React?"), -1)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			body, err := io.ReadAll(resp.Body)
			Expect(err).NotTo(HaveOccurred())

			var result map[string]any
			Expect(json.Unmarshal(body, &result)).To(Succeed())
			Expect(result["id"]).NotTo(BeEmpty())
			Expect(result["answer"]).To(Equal("I built a portfolio site with React."))

			sources := result["sources"].([]any)
			Expect(sources).To(HaveLen(1))
			Expect(sources[0].(map[string]any)["content"]).To(Equal("React portfolio site"))
		})
	})

	Context("with a bad request", func() {
		It("returns 400 for an unparsable body", func() {
			server = newChatServer(Config{ListenAddr: ":0"})

			req, err := http.NewRequest(http.MethodPost, "/v1/chat", bytes.NewReader([]byte(`{not json`)))
			Expect(err).NotTo(HaveOccurred())
			req.Header.Set("Content-Type", "application/json")

			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusBadRequest))
		})

		It("returns 400 for an empty message", func() {
			server = newChatServer(Config{ListenAddr: ":0"})

			resp, err := server.app.Test(chatRequest("   "))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusBadRequest))
		})
	})

	Context("when the model call fails", func() {
		It("returns 500 with a generic message", func() {
			call = func(context.Context, string, string) (string, error) {
				return "", context.DeadlineExceeded
			}
			server = newChatServer(Config{ListenAddr: ":0"})

			resp, err := server.app.Test(chatRequest("hello"))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusInternalServerError))

			body, err := io.ReadAll(resp.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(body)).To(ContainSubstring("failed to answer"))
		})
	})

	Context("with rate limiting enabled", func() {
		It("returns 429 once the window budget is spent", func() {
			server = newChatServer(Config{
				ListenAddr:      ":0",
				RateLimitMax:    2,
				RateLimitWindow: time.Minute,
			})

			for range 2 {
				resp, err := server.app.Test(chatRequest("hello"))
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(fiber.StatusOK))
			}

			resp, err := server.app.Test(chatRequest("hello"))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusTooManyRequests))

			body, err := io.ReadAll(resp.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(body)).To(ContainSubstring("too many requests"))
		})
	})
})
