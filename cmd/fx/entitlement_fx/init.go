package entitlement_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"murmur/internal/repositories"
	"murmur/internal/services"
)

var Module = fx.Provide(
	provideEntitlementService, provideSubscriptionRepo)

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideEntitlementService(subscriptionRepo repositories.SubscriptionRepository, userRepo repositories.UserRepository) services.EntitlementServiceInterface {
	return services.NewEntitlementService(subscriptionRepo, userRepo)
}
