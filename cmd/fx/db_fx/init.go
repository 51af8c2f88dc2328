package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"log"
	"murmur/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB() *gorm.DB {
	db := infra.InitPostgresql()
	if err := infra.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}
