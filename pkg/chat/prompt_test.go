package chat_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/let-the-dreamers-rise/resume-sub000/pkg/chat"
	"github.com/let-the-dreamers-rise/resume-sub000/pkg/knowledge"
)

var _ = Describe("BuildSystemPrompt", func() {
	It("labels each result with its content type", func() {
		prompt := chat.BuildSystemPrompt([]knowledge.Result{
			{Type: knowledge.TypeProject, Content: "Project: Folio\nA portfolio site.", Score: 0.9},
			{Type: knowledge.TypeSkill, Content: "Skills (backend): Go", Score: 0.8},
		})

		Expect(prompt).To(ContainSubstring("Context:"))
		Expect(prompt).To(ContainSubstring("[project]\nProject: Folio\nA portfolio site.\n"))
		Expect(prompt).To(ContainSubstring("[skill]\nSkills (backend): Go\n"))
	})

	It("preserves result order", func() {
		prompt := chat.BuildSystemPrompt([]knowledge.Result{
			{Type: knowledge.TypeGeneral, Content: "first"},
			{Type: knowledge.TypeGeneral, Content: "second"},
		})

		Expect(prompt).To(MatchRegexp(`(?s)first.*second`))
	})

	It("falls back when retrieval found nothing", func() {
		prompt := chat.BuildSystemPrompt(nil)
		Expect(prompt).To(ContainSubstring("No relevant portfolio content"))
		Expect(prompt).NotTo(ContainSubstring("Context:"))
	})
})
