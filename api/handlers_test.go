package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	testutils "github.com/let-the-dreamers-rise/resume-sub000/pkg/utils/test"
)

var _ = Describe("handlePing", func() {
	It("returns pong", func() {
		server := newSeededServer(testutils.NewMockEmbedder())

		req, err := http.NewRequest(http.MethodGet, "/ping", nil)
		Expect(err).NotTo(HaveOccurred())

		resp, err := server.app.Test(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

		body, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(body)).To(ContainSubstring("pong"))
	})
})

var _ = Describe("handleKnowledge", func() {
	var server *Server

	BeforeEach(func() {
		server = newSeededServer(testutils.NewMockEmbedder())
	})

	It("lists every indexed document without embeddings", func() {
		req, err := http.NewRequest(http.MethodGet, "/v1/knowledge", nil)
		Expect(err).NotTo(HaveOccurred())

		resp, err := server.app.Test(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

		body, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())

		var result map[string]any
		Expect(json.Unmarshal(body, &result)).To(Succeed())
		Expect(result["count"]).To(BeNumerically("==", 3))

		entries := result["entries"].([]any)
		for _, e := range entries {
			entry := e.(map[string]any)
			Expect(entry).NotTo(HaveKey("embedding"))
			Expect(entry["id"]).NotTo(BeEmpty())
		}
	})

	It("filters by type", func() {
		req, err := http.NewRequest(http.MethodGet, "/v1/knowledge?type=project", nil)
		Expect(err).NotTo(HaveOccurred())

		resp, err := server.app.Test(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

		body, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())

		var result map[string]any
		Expect(json.Unmarshal(body, &result)).To(Succeed())
		Expect(result["count"]).To(BeNumerically("==", 1))

		entry := result["entries"].([]any)[0].(map[string]any)
		Expect(entry["type"]).To(Equal("project"))
		Expect(entry["id"]).To(Equal("project-react-portfolio"))
	})

	It("rejects an unknown type", func() {
		req, err := http.NewRequest(http.MethodGet, "/v1/knowledge?type=poetry", nil)
		Expect(err).NotTo(HaveOccurred())

		resp, err := server.app.Test(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(fiber.StatusBadRequest))

		body, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(body)).To(ContainSubstring("unknown content type"))
	})
})
