package chat

import (
	"fmt"
	"strings"

	"github.com/let-the-dreamers-rise/resume-sub000/pkg/knowledge"
)

const promptPreamble = `You are the assistant on a personal portfolio website. Answer questions about the site owner's projects, skills, experience, and writing.

Ground every answer in the context below. If the context does not cover the question, say so and suggest contacting the site owner directly. Keep answers short and conversational.`

const promptNoContext = `You are the assistant on a personal portfolio website. No relevant portfolio content was found for this question. Answer generically if you can, or suggest contacting the site owner directly.`

// BuildSystemPrompt renders retrieved knowledge into the assistant's
// system prompt. Each result is labeled with its content type so the
// model can cite where an answer comes from. With no results the prompt
// instructs the model to fall back gracefully.
func BuildSystemPrompt(results []knowledge.Result) string {
	if len(results) == 0 {
		return promptNoContext
	}

	var sb strings.Builder
	sb.WriteString(promptPreamble)
	sb.WriteString("\n\nContext:\n")
	for _, r := range results {
		fmt.Fprintf(&sb, "\n[%s]\n%s\n", r.Type, r.Content)
	}
	return sb.String()
}
