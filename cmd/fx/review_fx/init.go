package review_fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"reviewecho/internal/api/controllers"
	"reviewecho/internal/repositories"
	"reviewecho/internal/services"
)

var Module = fx.Provide(
	provideReviewRepo, provideReviewService, provideReviewController,
)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepositoryInterface {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(reviewRepo repositories.ReviewRepositoryInterface, generator services.GeneratorServiceInterface, log zerolog.Logger) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, generator, log)
}

func provideReviewController(reviewService services.ReviewServiceInterface) *controllers.ReviewController {
	return controllers.NewReviewController(reviewService)
}
