package quote_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"os"

	"murmur/internal/repositories"
	"murmur/internal/services"
	"murmur/pkg/cache"
)

var Module = fx.Provide(
	provideQuoteService, provideQuoteRepo)

func provideQuoteRepo(db *gorm.DB) repositories.QuoteRepository {
	return repositories.NewQuoteRepository(db)
}

func provideQuoteService(quoteRepo repositories.QuoteRepository, entitlements services.EntitlementServiceInterface, cacheStore cache.Store) services.QuoteServiceInterface {
	return services.NewQuoteService(quoteRepo, entitlements, cacheStore, os.Getenv("APP_BASE_URL"))
}
