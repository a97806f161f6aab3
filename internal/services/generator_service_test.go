package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type stubGenerationClient struct {
	fn func(prompt string) (string, error)
}

func (s *stubGenerationClient) GenerateText(_ context.Context, prompt string) (string, error) {
	return s.fn(prompt)
}

func (s *stubGenerationClient) Close() error { return nil }

func TestGenerator_NotConfiguredUsesFallbacks(t *testing.T) {
	gen := NewGeneratorService(nil, zerolog.Nop())
	ctx := context.Background()

	reply := gen.Reply(ctx, 5, "Great service!")
	assert.True(t, reply.Degraded)
	assert.Equal(t, "generation not configured", reply.Reason)
	assert.Equal(t, "Thank you for your 5-star review! We appreciate your feedback.", reply.Text)

	summary := gen.Summarize(ctx, 5, "Great service!")
	assert.True(t, summary.Degraded)
	assert.Equal(t, "5-star review: Great service!...", summary.Text)

	actions := gen.RecommendActions(ctx, 5, "Great service!")
	assert.True(t, actions.Degraded)
	assert.Equal(t, "1. Thank customer\n2. Share positive feedback with team", actions.Text)
}

func TestGenerator_FallbackReplyRatingBands(t *testing.T) {
	gen := NewGeneratorService(nil, zerolog.Nop())
	ctx := context.Background()

	low := gen.Reply(ctx, 1, "bad")
	assert.Contains(t, low.Text, "1-star")
	assert.Contains(t, low.Text, "concerns")

	medium := gen.Reply(ctx, 3, "okay I guess")
	assert.Contains(t, medium.Text, "3-star")
	assert.Contains(t, medium.Text, "how we can do better")

	high := gen.Reply(ctx, 4, "nice")
	assert.Contains(t, high.Text, "4-star")
	assert.Contains(t, high.Text, "Thank you")
}

func TestGenerator_FallbackActionsRatingBands(t *testing.T) {
	gen := NewGeneratorService(nil, zerolog.Nop())
	ctx := context.Background()

	assert.Equal(t,
		"1. Follow up with customer\n2. Investigate issues mentioned\n3. Implement improvements",
		gen.RecommendActions(ctx, 2, "terrible").Text)
	assert.Equal(t,
		"1. Acknowledge feedback\n2. Identify improvement opportunities",
		gen.RecommendActions(ctx, 3, "fine").Text)
}

func TestGenerator_SummaryFallbackTruncatesAt100(t *testing.T) {
	gen := NewGeneratorService(nil, zerolog.Nop())

	long := strings.Repeat("x", 250)
	summary := gen.Summarize(context.Background(), 2, long)

	assert.Equal(t, "2-star review: "+strings.Repeat("x", 100)+"...", summary.Text)
}

func TestGenerator_ClientErrorFallsBack(t *testing.T) {
	client := &stubGenerationClient{fn: func(string) (string, error) {
		return "", errors.New("quota exceeded")
	}}
	gen := NewGeneratorService(client, zerolog.Nop())

	reply := gen.Reply(context.Background(), 1, "bad")
	assert.True(t, reply.Degraded)
	assert.Equal(t, "quota exceeded", reply.Reason)
	assert.NotEmpty(t, reply.Text)
}

func TestGenerator_ArtifactsAreIsolated(t *testing.T) {
	// Only the summary prompt fails; reply and actions still come back
	// from the model.
	client := &stubGenerationClient{fn: func(prompt string) (string, error) {
		if strings.Contains(prompt, "Summarize") {
			return "", errors.New("boom")
		}
		return "model output", nil
	}}
	gen := NewGeneratorService(client, zerolog.Nop())
	ctx := context.Background()

	assert.False(t, gen.Reply(ctx, 4, "good").Degraded)
	assert.True(t, gen.Summarize(ctx, 4, "good").Degraded)
	assert.False(t, gen.RecommendActions(ctx, 4, "good").Degraded)
}

func TestGenerator_TrimsAndRejectsEmptyModelOutput(t *testing.T) {
	client := &stubGenerationClient{fn: func(string) (string, error) {
		return "  padded reply \n", nil
	}}
	gen := NewGeneratorService(client, zerolog.Nop())

	reply := gen.Reply(context.Background(), 5, "great")
	assert.False(t, reply.Degraded)
	assert.Equal(t, "padded reply", reply.Text)

	empty := &stubGenerationClient{fn: func(string) (string, error) {
		return "   ", nil
	}}
	gen = NewGeneratorService(empty, zerolog.Nop())

	reply = gen.Reply(context.Background(), 5, "great")
	assert.True(t, reply.Degraded)
	assert.NotEmpty(t, reply.Text)
}

func TestGenerator_PromptsEmbedRatingAndText(t *testing.T) {
	var seen []string
	client := &stubGenerationClient{fn: func(prompt string) (string, error) {
		seen = append(seen, prompt)
		return "ok", nil
	}}
	gen := NewGeneratorService(client, zerolog.Nop())
	ctx := context.Background()

	gen.Reply(ctx, 2, "slow delivery")
	gen.Summarize(ctx, 2, "slow delivery")
	gen.RecommendActions(ctx, 2, "slow delivery")

	for _, prompt := range seen {
		assert.Contains(t, prompt, "slow delivery")
		assert.Contains(t, prompt, "2")
	}
}
