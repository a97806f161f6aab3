package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGenerationClient implements GenerationClient over the chat
// completions API.
type OpenAIGenerationClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIGenerationClient(apiKey, model string) *OpenAIGenerationClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIGenerationClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIGenerationClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.4,
		MaxTokens:   512,
	})
	if err != nil {
		return "", fmt.Errorf("openai API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content generated by OpenAI")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty response from OpenAI")
	}
	return content, nil
}

func (c *OpenAIGenerationClient) Close() error {
	return nil
}
