package utils

import (
	"context"
	"fmt"
	"strings"
)

// GenerationClient is the thin seam over the external text-generation
// service. Implementations make exactly one attempt per call; the caller
// owns fallback behavior.
type GenerationClient interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Close() error
}

// NewGenerationClient builds a client for the configured provider.
func NewGenerationClient(provider, apiKey, model string) (GenerationClient, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIGenerationClient(apiKey, model), nil
	case "gemini":
		client, err := NewGeminiGenerationClient(apiKey, model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
