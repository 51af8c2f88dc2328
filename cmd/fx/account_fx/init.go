package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"murmur/internal/repositories"
	"murmur/internal/services"
	mem "murmur/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountService, provideUserRepo)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(userRepo repositories.UserRepository, mailService services.IMailService, resetTokens mem.ResetTokenStore) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, mailService, resetTokens)
}
