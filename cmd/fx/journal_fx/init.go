package journal_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"murmur/internal/repositories"
	"murmur/internal/services"
	"murmur/pkg/storage"
)

var Module = fx.Provide(
	provideJournalService, provideJournalRepo)

func provideJournalRepo(db *gorm.DB) repositories.JournalRepository {
	return repositories.NewJournalRepository(db)
}

func provideJournalService(journalRepo repositories.JournalRepository, entitlements services.EntitlementServiceInterface, store storage.ObjectStore) services.JournalServiceInterface {
	return services.NewJournalService(journalRepo, entitlements, store)
}
