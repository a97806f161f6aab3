package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"reviewecho/cmd/fx/config_fx"
	"reviewecho/cmd/fx/db_fx"
	"reviewecho/cmd/fx/generator_fx"
	"reviewecho/cmd/fx/review_fx"
	"reviewecho/internal/api/controllers"
	"reviewecho/internal/config"
	"reviewecho/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		generator_fx.Module,
		review_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, log zerolog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info().Str("port", cfg.Port).Msg("starting HTTP server")
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatal().Err(err).Msg("failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(cfg *config.Config, reviewController *controllers.ReviewController) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.Origins()))

	RegisterRoutes(r, reviewController)

	return r
}

func RegisterRoutes(r *gin.Engine, reviewController *controllers.ReviewController) {
	r.GET("/", reviewController.Root)

	api := r.Group("/api")
	api.POST("/submit-review", reviewController.SubmitReview)
	api.GET("/reviews", reviewController.ListReviews)
	api.GET("/reviews/stats", reviewController.GetStats)
}
