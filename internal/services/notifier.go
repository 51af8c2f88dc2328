package services

import (
	"context"
	"log"

	"murmur/internal/repositories"
)

// Notifier fans a short operational message out to admin users.
type Notifier interface {
	NotifyAdmins(ctx context.Context, subject, body string) error
}

type mailNotifier struct {
	mail     IMailService
	userRepo repositories.UserRepository
}

func NewMailNotifier(mail IMailService, userRepo repositories.UserRepository) Notifier {
	return &mailNotifier{mail: mail, userRepo: userRepo}
}

func (n *mailNotifier) NotifyAdmins(ctx context.Context, subject, body string) error {
	admins, err := n.userRepo.ListAdmins(ctx)
	if err != nil {
		return err
	}
	for _, admin := range admins {
		if err := n.mail.SendMailToNotifyUser(admin.Email, subject, body, "", ""); err != nil {
			log.Printf("admin notification to %s failed: %v", admin.Email, err)
		}
	}
	return nil
}

// logNotifier stands in when SMTP is not configured.
type logNotifier struct{}

func NewLogNotifier() Notifier { return &logNotifier{} }

func (n *logNotifier) NotifyAdmins(_ context.Context, subject, body string) error {
	log.Printf("admin notification: %s: %s", subject, body)
	return nil
}
