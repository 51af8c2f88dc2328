package mail_fx

import (
	"go.uber.org/fx"
	"log"
	"os"
	"strconv"

	"murmur/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587 // STARTTLS; use 465 with SMTP_SSL=true for SMTPS
	}

	cfg := services.SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
		FromName: "Murmur",
		UseSSL:   os.Getenv("SMTP_SSL") == "true",

		AppName:    "Murmur",
		AppBaseURL: os.Getenv("APP_BASE_URL"),
	}

	mailService, err := services.NewSMTPMailService(cfg)
	if err != nil {
		log.Printf("Failed to initialize SMTP mail service: %v", err)
	}
	return mailService
}
