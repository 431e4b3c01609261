package infra

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const chatSystemPrompt = "You are a kitchen assistant for a restaurant back office. " +
	"Answer questions about recipes, ingredients, portioning and food cost concisely."

// ChatClient proxies free-form kitchen questions to an OpenAI-compatible model.
type ChatClient struct {
	llm llms.Model
}

func NewChatClient(apiKey, model string) (*ChatClient, error) {
	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("chat: initialize client: %w", err)
	}
	return &ChatClient{llm: llm}, nil
}

// Ask sends a single prompt (prefixed with the kitchen system prompt) and
// returns the completion text.
func (c *ChatClient) Ask(ctx context.Context, prompt string) (string, error) {
	reply, err := llms.GenerateFromSinglePrompt(ctx, c.llm,
		chatSystemPrompt+"\n\n"+prompt,
		llms.WithMaxTokens(512),
		llms.WithTemperature(0.4),
	)
	if err != nil {
		return "", fmt.Errorf("chat: completion: %w", err)
	}
	return reply, nil
}
