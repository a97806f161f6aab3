package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"reviewecho/pkg/utils"
)

// GenerationResult models a single generation outcome. Degraded means the
// text came from a fallback template; Reason says why. A degraded result
// is still a success from the pipeline's point of view.
type GenerationResult struct {
	Text     string
	Degraded bool
	Reason   string
}

type GeneratorServiceInterface interface {
	Reply(ctx context.Context, rating int, reviewText string) GenerationResult
	Summarize(ctx context.Context, rating int, reviewText string) GenerationResult
	RecommendActions(ctx context.Context, rating int, reviewText string) GenerationResult
}

// GeneratorService turns (rating, review_text) into the three AI
// artifacts. The client is injected; nil means generation is not
// configured and every call short-circuits to its fallback.
type GeneratorService struct {
	client utils.GenerationClient
	log    zerolog.Logger
}

func NewGeneratorService(client utils.GenerationClient, log zerolog.Logger) GeneratorServiceInterface {
	return &GeneratorService{client: client, log: log}
}

func (s *GeneratorService) Reply(ctx context.Context, rating int, reviewText string) GenerationResult {
	prompt := buildReplyPrompt(rating, reviewText)
	return s.generate(ctx, "reply", prompt, fallbackReply(rating))
}

func (s *GeneratorService) Summarize(ctx context.Context, rating int, reviewText string) GenerationResult {
	prompt := buildSummaryPrompt(rating, reviewText)
	return s.generate(ctx, "summary", prompt, fallbackSummary(rating, reviewText))
}

func (s *GeneratorService) RecommendActions(ctx context.Context, rating int, reviewText string) GenerationResult {
	prompt := buildActionsPrompt(rating, reviewText)
	return s.generate(ctx, "actions", prompt, fallbackActions(rating))
}

// generate makes one attempt against the client. Each artifact is
// isolated: a failure here never propagates past the returned result.
func (s *GeneratorService) generate(ctx context.Context, artifact, prompt, fallback string) GenerationResult {
	if s.client == nil {
		return GenerationResult{Text: fallback, Degraded: true, Reason: "generation not configured"}
	}

	text, err := s.client.GenerateText(ctx, prompt)
	if err != nil {
		s.log.Warn().Err(err).Str("artifact", artifact).Msg("generation failed, using fallback")
		return GenerationResult{Text: fallback, Degraded: true, Reason: err.Error()}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return GenerationResult{Text: fallback, Degraded: true, Reason: "empty generation output"}
	}
	return GenerationResult{Text: text}
}

func buildReplyPrompt(rating int, reviewText string) string {
	return fmt.Sprintf(`You are a friendly customer service representative responding to a customer review.

Customer Rating: %d out of 5 stars
Customer Review: %s

Generate a brief, professional, and empathetic response (2-3 sentences) that:
- Acknowledges their feedback
- Shows appreciation for their input
- If rating is low (1-2), expresses concern and willingness to improve
- If rating is high (4-5), thanks them warmly
- If rating is medium (3), acknowledges their feedback and invites further engagement

Response:`, rating, reviewText)
}

func buildSummaryPrompt(rating int, reviewText string) string {
	return fmt.Sprintf(`Summarize the following customer review in one concise sentence (max 50 words):

Rating: %d/5
Review: %s

Summary:`, rating, reviewText)
}

func buildActionsPrompt(rating int, reviewText string) string {
	return fmt.Sprintf(`Based on this customer review, suggest 2-3 specific recommended actions for the business:

Rating: %d/5
Review: %s

Provide concise, actionable recommendations (one per line):
1.`, rating, reviewText)
}

func fallbackReply(rating int) string {
	switch {
	case rating <= 2:
		return fmt.Sprintf("We're sorry to hear about your %d-star experience. We take your concerns seriously and are committed to improving.", rating)
	case rating == 3:
		return fmt.Sprintf("Thank you for your %d-star review. We appreciate your feedback and would love to hear how we can do better.", rating)
	default:
		return fmt.Sprintf("Thank you for your %d-star review! We appreciate your feedback.", rating)
	}
}

func fallbackSummary(rating int, reviewText string) string {
	return fmt.Sprintf("%d-star review: %s...", rating, truncate(reviewText, 100))
}

func fallbackActions(rating int) string {
	switch {
	case rating <= 2:
		return "1. Follow up with customer\n2. Investigate issues mentioned\n3. Implement improvements"
	case rating == 3:
		return "1. Acknowledge feedback\n2. Identify improvement opportunities"
	default:
		return "1. Thank customer\n2. Share positive feedback with team"
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
