package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiGenerationClient implements GenerationClient using Google's
// Gemini models.
type GeminiGenerationClient struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerationClient(apiKey, model string) (*GeminiGenerationClient, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerationClient{
		client: client,
		model:  model,
	}, nil
}

// GenerateText makes a single attempt against the model. Latency is
// capped per call; there is no retry.
func (c *GeminiGenerationClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.4)
	m.SetTopP(0.8)
	m.SetMaxOutputTokens(512)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return content, nil
}

func (c *GeminiGenerationClient) Close() error {
	return c.client.Close()
}
