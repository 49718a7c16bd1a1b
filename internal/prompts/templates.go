package prompts

import "coldreach/internal/types"

// templates is the ordered list shown on the landing page. Callers get a
// copy from Templates so the list stays read-only.
var templates = []types.PromptTemplate{
	{Person: "CEO", Prompt: "Write a cold email"},
	{Person: "Startup founder", Prompt: "Pitch our design services in a short DM"},
	{Person: "Recruiter", Prompt: "Ask about open backend engineering roles"},
	{Person: "Podcast host", Prompt: "Request a guest spot to talk about web3 onboarding"},
	{Person: "VC partner", Prompt: "Ask for a 15 minute intro call about our seed round"},
	{Person: "Developer advocate", Prompt: "Propose a joint workshop for our communities"},
	{Person: "NFT collector", Prompt: "Invite them to an early preview of our collection"},
	{Person: "DAO contributor", Prompt: "Suggest a governance proposal collaboration"},
}

// Templates returns the static prompt templates in display order.
func Templates() []types.PromptTemplate {
	out := make([]types.PromptTemplate, len(templates))
	copy(out, templates)
	return out
}
