package billing_fx

import (
	"go.uber.org/fx"
	"os"

	"murmur/internal/billing"
	"murmur/internal/repositories"
	"murmur/internal/services"
)

var Module = fx.Provide(
	provideBillingService, provideNotifier, provideProvider)

func provideProvider() billing.Provider {
	return billing.NewStripeProvider(
		os.Getenv("STRIPE_SECRET_KEY"),
		os.Getenv("STRIPE_WEBHOOK_SECRET"),
	)
}

func provideNotifier(mailService services.IMailService, userRepo repositories.UserRepository) services.Notifier {
	if os.Getenv("SMTP_HOST") == "" {
		return services.NewLogNotifier()
	}
	return services.NewMailNotifier(mailService, userRepo)
}

func provideBillingService(provider billing.Provider, subscriptionRepo repositories.SubscriptionRepository, userRepo repositories.UserRepository, notifier services.Notifier) services.BillingServiceInterface {
	return services.NewBillingService(provider, subscriptionRepo, userRepo, notifier)
}
