package murmuration_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"murmur/internal/repositories"
	"murmur/internal/services"
	"murmur/pkg/storage"
)

var Module = fx.Provide(
	provideMurmurationService, provideMurmurationRepo)

func provideMurmurationRepo(db *gorm.DB) repositories.MurmurationRepository {
	return repositories.NewMurmurationRepository(db)
}

func provideMurmurationService(murmurationRepo repositories.MurmurationRepository, userRepo repositories.UserRepository, store storage.ObjectStore) services.MurmurationServiceInterface {
	return services.NewMurmurationService(murmurationRepo, userRepo, store)
}
