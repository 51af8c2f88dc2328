package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"log"
	"os"

	"murmur/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	// TranslateError maps driver errors onto gorm sentinels; the like-toggle
	// and daily-dig paths depend on gorm.ErrDuplicatedKey.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.User{},
		&db_models.UserPreferences{},
		&db_models.SubscriptionAccess{},
		&db_models.UserSubscription{},
		&db_models.PaymentTransaction{},
		&db_models.Dig{},
		&db_models.Layer{},
		&db_models.DigResponse{},
		&db_models.UserWeeklyDig{},
		&db_models.UserDailyDig{},
		&db_models.Journal{},
		&db_models.JournalLike{},
		&db_models.Quote{},
		&db_models.QuoteReaction{},
		&db_models.Murmuration{},
		&db_models.Comment{},
		&db_models.MurmurationLike{},
		&db_models.CommentLike{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
