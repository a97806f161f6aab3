package generator_fx

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"reviewecho/internal/config"
	"reviewecho/internal/services"
	"reviewecho/pkg/utils"
)

var Module = fx.Provide(
	ProvideGenerationClient,
	ProvideGeneratorService,
)

// ProvideGenerationClient builds the external text-generation client. A
// missing API key is not an error: the service runs in degraded mode and
// every artifact comes from fallback templates.
func ProvideGenerationClient(lc fx.Lifecycle, cfg *config.Config, log zerolog.Logger) (utils.GenerationClient, error) {
	if !cfg.GenerationEnabled() {
		log.Warn().Str("provider", cfg.AIProvider).Msg("no API key configured, generation disabled; fallback text will be used")
		return nil, nil
	}

	model := cfg.GeminiModel
	if cfg.AIProvider == "openai" {
		model = cfg.OpenAIModel
	}

	client, err := utils.NewGenerationClient(cfg.AIProvider, cfg.APIKey(), model)
	if err != nil {
		return nil, err
	}
	log.Info().Str("provider", cfg.AIProvider).Str("model", model).Msg("generation client initialized")

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func ProvideGeneratorService(client utils.GenerationClient, log zerolog.Logger) services.GeneratorServiceInterface {
	return services.NewGeneratorService(client, log)
}
