package types

// PromptTemplate is a static (person, prompt) pair offered as a one-click
// form pre-fill.
type PromptTemplate struct {
	Person string `json:"person"`
	Prompt string `json:"prompt"`
}

// PromptRequest is the body of POST /prompt.
type PromptRequest struct {
	PersonInput string `json:"personInput" binding:"required"`
	ReasonInput string `json:"reasonInput" binding:"required"`
}

// PromptData carries the generated message.
type PromptData struct {
	Text string `json:"text,omitempty"`
}

// PromptResponse is the success body of POST /prompt.
type PromptResponse struct {
	Data *PromptData `json:"data,omitempty"`
}
