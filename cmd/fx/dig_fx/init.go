package dig_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"os"

	"murmur/internal/repositories"
	"murmur/internal/services"
	"murmur/pkg/cache"
)

var Module = fx.Provide(
	provideDigService, provideDigRepo)

func provideDigRepo(db *gorm.DB) repositories.DigRepository {
	return repositories.NewDigRepository(db)
}

func provideDigService(digRepo repositories.DigRepository, entitlements services.EntitlementServiceInterface, cacheStore cache.Store) services.DigServiceInterface {
	devMode := os.Getenv("APP_ENV") != "production"
	return services.NewDigService(digRepo, entitlements, cacheStore, devMode)
}
