package prompts

import (
	"fmt"
	"strings"
)

const coldMessageSystemPrompt = `
		You are ColdReach, an assistant that writes short, friendly cold outreach messages.
		Write in plain text without markdown headings. Keep it under 150 words.
		Do not invent facts about the sender beyond what the request states.
	`

const coldMessageUserPrompt = `
		The message is addressed to:
		---
		%s
		---

		What the sender wants from them:
		---
		%s
		---

		Write a single ready-to-send message with a greeting, one or two sentences of
		context, a clear ask, and a sign-off.
	`

// GetColdMessagePrompt returns the user and system prompts for one
// generation request.
func GetColdMessagePrompt(person, reason string) (string, string) {
	user := fmt.Sprintf(coldMessageUserPrompt, strings.TrimSpace(person), strings.TrimSpace(reason))
	return dedent(user), dedent(coldMessageSystemPrompt)
}

func dedent(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.Join(lines, "\n")
}
