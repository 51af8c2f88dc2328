package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"murmur/internal/infra"
	"murmur/internal/models/db_models"
	"murmur/internal/repositories"
	"murmur/pkg/utils"
)

func int64Ptr(n int64) *int64 { return &n }

// Seeds the three access tiers and the admin account. Safe to run more than
// once; existing rows are left alone.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	db := infra.InitPostgresql()
	defer infra.ClosePostgresql(db)

	if err := infra.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	subscriptionRepo := repositories.NewSubscriptionRepository(db)
	userRepo := repositories.NewUserRepository(db)

	tiers := []db_models.SubscriptionAccess{
		{
			SubscriptionName: "free",
			JournalEntries:   int64Ptr(2),
			QuotesPerDay:     int64Ptr(1),
			DigsPerWeek:      int64Ptr(3),
			MurmurationLimit: true,
			AudioPostJournal: false,
			MeditationAccess: false,
			AdService:        true,
		},
		{
			SubscriptionName: "monthly",
			MurmurationLimit: true,
			AudioPostJournal: true,
			MeditationAccess: true,
			AdService:        false,
		},
		{
			SubscriptionName: "yearly",
			MurmurationLimit: true,
			AudioPostJournal: true,
			MeditationAccess: true,
			AdService:        false,
		},
	}

	for i := range tiers {
		if err := subscriptionRepo.CreateAccess(ctx, &tiers[i]); err != nil {
			log.Fatalf("Failed to seed access tier %s: %v", tiers[i].SubscriptionName, err)
		}
		log.Printf("Seeded access tier %s", tiers[i].SubscriptionName)
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@murmur.app"
	}
	existing, err := userRepo.FindByEmail(ctx, adminEmail)
	if err != nil {
		log.Fatalf("Failed to look up admin user: %v", err)
	}
	if existing != nil {
		log.Printf("Admin user %s already present", adminEmail)
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD must be set to seed the admin user")
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := &db_models.User{
		Username: "admin",
		Email:    adminEmail,
		Password: hash,
		Name:     "Murmur Admin",
		Type:     db_models.UserTypeAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	log.Printf("Seeded admin user %s", adminEmail)
}
