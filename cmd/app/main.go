package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"murmur/cmd/fx/account_fx"
	"murmur/cmd/fx/billing_fx"
	"murmur/cmd/fx/cache_fx"
	"murmur/cmd/fx/controllers_fx"
	"murmur/cmd/fx/db_fx"
	"murmur/cmd/fx/dig_fx"
	"murmur/cmd/fx/entitlement_fx"
	"murmur/cmd/fx/journal_fx"
	"murmur/cmd/fx/mail_fx"
	"murmur/cmd/fx/memcache_fx"
	"murmur/cmd/fx/murmuration_fx"
	"murmur/cmd/fx/quote_fx"
	"murmur/cmd/fx/storage_fx"
	"murmur/internal/api/controllers"
	"murmur/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		cache_fx.Module,
		storage_fx.Module,
		mail_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		entitlement_fx.Module,
		dig_fx.Module,
		quote_fx.Module,
		journal_fx.Module,
		murmuration_fx.Module,
		billing_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	digController *controllers.DigController,
	quoteController *controllers.QuoteController,
	journalController *controllers.JournalController,
	murmurationController *controllers.MurmurationController,
	billingController *controllers.BillingController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController,
		digController,
		quoteController,
		journalController,
		murmurationController,
		billingController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	digController *controllers.DigController,
	quoteController *controllers.QuoteController,
	journalController *controllers.JournalController,
	murmurationController *controllers.MurmurationController,
	billingController *controllers.BillingController) {

	auth := middleware.JWTAuthMiddleware()

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/reset-password", accountController.ResetPassword)
	accounts.GET("/profile", auth, accountController.Profile)
	accounts.PUT("/preferences", auth, accountController.UpdatePreferences)

	digs := r.Group("/digs", auth)
	digs.GET("", digController.GetAssignedDigs)
	digs.GET("/progress", digController.Progress)
	digs.POST("/:id/complete", digController.MarkComplete)
	digs.POST("/:id/answers", digController.SubmitAnswer)

	adminDigs := r.Group("/admin/digs", auth, middleware.AdminOnly())
	adminDigs.POST("", digController.CreateDig)
	adminDigs.GET("", digController.ListDigs)
	adminDigs.DELETE("/:id", digController.DeleteDig)

	quotes := r.Group("/quotes", auth)
	quotes.GET("/daily", quoteController.QuoteOfTheDay)
	quotes.POST("", quoteController.CreateQuote)
	quotes.GET("/mine", quoteController.MyQuotes)
	quotes.GET("/:id", quoteController.GetQuote)
	quotes.PUT("/:id", quoteController.UpdateQuote)
	quotes.DELETE("/:id", quoteController.DeleteQuote)
	quotes.POST("/:id/reaction", quoteController.ToggleReaction)

	journals := r.Group("/journals", auth)
	journals.POST("", journalController.CreateJournal)
	journals.GET("", journalController.ListAll)
	journals.GET("/mine", journalController.ListMine)
	journals.GET("/recommended", journalController.ListRecommended)
	journals.GET("/:id", journalController.GetJournal)
	journals.PUT("/:id", journalController.UpdateJournal)
	journals.DELETE("/:id", journalController.DeleteJournal)
	journals.POST("/:id/like", journalController.ToggleLike)

	murmurations := r.Group("/murmurations", auth)
	murmurations.POST("", murmurationController.CreateMurmuration)
	murmurations.GET("", murmurationController.ListMurmurations)
	murmurations.GET("/:id", murmurationController.GetMurmuration)
	murmurations.POST("/:id/comments", murmurationController.CreateComment)
	murmurations.POST("/:id/like", murmurationController.ToggleLike)

	comments := r.Group("/comments", auth)
	comments.POST("/:id/like", murmurationController.ToggleCommentLike)

	billing := r.Group("/billing")
	billing.POST("/webhook", billingController.Webhook)
	billing.GET("/plans", billingController.ListPlans)
	billing.POST("/setup-intent", auth, billingController.CreateSetupIntent)
}
