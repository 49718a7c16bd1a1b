package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"coldreach/internal/logger"
	"coldreach/internal/prompts"
	"coldreach/internal/utils"
)

// ChatCompleter is the subset of *openai.Client the generator needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Generator struct {
	client     ChatCompleter
	model      string
	retryDelay time.Duration
	log        *logger.Logger
}

func NewGenerator(apiKey, model string, log *logger.Logger) *Generator {
	return NewGeneratorWithClient(openai.NewClient(apiKey), model, log)
}

// NewGeneratorWithClient wires an existing chat client, e.g. one built
// with a custom openai.ClientConfig.
func NewGeneratorWithClient(client ChatCompleter, model string, log *logger.Logger) *Generator {
	if model == "" {
		model = openai.GPT4o
	}
	return &Generator{
		client:     client,
		model:      model,
		retryDelay: time.Second,
		log:        log,
	}
}

// GenerateColdMessage writes one outreach message for the given recipient
// description and intent.
func (g *Generator) GenerateColdMessage(ctx context.Context, person, reason string) (string, error) {
	userPrompt, systemPrompt := prompts.GetColdMessagePrompt(person, reason)
	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		MaxTokens:   400,
		Temperature: 0.7,
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil && utils.ShouldRetry(err) {
		g.log.Warn("OpenAI chat completion failed, retrying once", "error", err)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(g.retryDelay):
		}
		resp, err = g.client.CreateChatCompletion(ctx, req)
	}
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		g.log.Warn("OpenAI returned empty completion", "usage", resp.Usage)
		return "", errors.New("openai returned empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
