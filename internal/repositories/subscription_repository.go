package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"murmur/internal/models/db_models"
)

type SubscriptionRepository interface {
	SubscriptionByUserID(ctx context.Context, userID uuid.UUID) (*db_models.UserSubscription, error)
	SubscriptionByStripeID(ctx context.Context, stripeID string) (*db_models.UserSubscription, error)
	AccessByName(ctx context.Context, name string) (*db_models.SubscriptionAccess, error)
	AccessByID(ctx context.Context, id uuid.UUID) (*db_models.SubscriptionAccess, error)
	ListAccess(ctx context.Context) ([]db_models.SubscriptionAccess, error)
	CreateAccess(ctx context.Context, access *db_models.SubscriptionAccess) error

	// UpsertSubscriptionWithTransaction replaces the user's single
	// subscription row, records the payment transaction and updates the
	// user's plan label in one transaction.
	UpsertSubscriptionWithTransaction(ctx context.Context, sub *db_models.UserSubscription, txn *db_models.PaymentTransaction, planLabel string) error
	UpdateStatus(ctx context.Context, stripeID, status string) error
	IncrementTimesRenewed(ctx context.Context, id uuid.UUID) error
	CreateTransaction(ctx context.Context, txn *db_models.PaymentTransaction) error
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) SubscriptionByUserID(ctx context.Context, userID uuid.UUID) (*db_models.UserSubscription, error) {
	var sub db_models.UserSubscription
	err := r.db.WithContext(ctx).
		Preload("Access").
		First(&sub, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) SubscriptionByStripeID(ctx context.Context, stripeID string) (*db_models.UserSubscription, error) {
	var sub db_models.UserSubscription
	err := r.db.WithContext(ctx).
		Preload("Access").
		First(&sub, "stripe_subscription_id = ?", stripeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) AccessByName(ctx context.Context, name string) (*db_models.SubscriptionAccess, error) {
	var access db_models.SubscriptionAccess
	err := r.db.WithContext(ctx).
		First(&access, "subscription_name = ?", strings.ToLower(name)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &access, nil
}

func (r *subscriptionRepository) AccessByID(ctx context.Context, id uuid.UUID) (*db_models.SubscriptionAccess, error) {
	var access db_models.SubscriptionAccess
	err := r.db.WithContext(ctx).First(&access, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &access, nil
}

func (r *subscriptionRepository) ListAccess(ctx context.Context) ([]db_models.SubscriptionAccess, error) {
	var rows []db_models.SubscriptionAccess
	err := r.db.WithContext(ctx).Order("subscription_name").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *subscriptionRepository) CreateAccess(ctx context.Context, access *db_models.SubscriptionAccess) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "subscription_name"}},
			DoNothing: true,
		}).
		Create(access).Error
}

func (r *subscriptionRepository) UpsertSubscriptionWithTransaction(ctx context.Context, sub *db_models.UserSubscription, txn *db_models.PaymentTransaction, planLabel string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing db_models.UserSubscription
		err := tx.First(&existing, "user_id = ?", sub.UserID).Error
		switch {
		case err == nil:
			sub.ID = existing.ID
			sub.CreatedAt = existing.CreatedAt
			sub.TimesRenewed = existing.TimesRenewed
			if err := tx.Save(sub).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(sub).Error; err != nil {
				return err
			}
		default:
			return err
		}

		txn.SubscriptionID = &sub.ID
		if err := tx.Create(txn).Error; err != nil {
			return err
		}

		return tx.Model(&db_models.User{}).
			Where("id = ?", sub.UserID).
			Update("subscription_plan", planLabel).Error
	})
}

func (r *subscriptionRepository) UpdateStatus(ctx context.Context, stripeID, status string) error {
	return r.db.WithContext(ctx).Model(&db_models.UserSubscription{}).
		Where("stripe_subscription_id = ?", stripeID).
		Update("status", status).Error
}

func (r *subscriptionRepository) IncrementTimesRenewed(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&db_models.UserSubscription{}).
		Where("id = ?", id).
		Update("times_renewed", gorm.Expr("times_renewed + 1")).Error
}

func (r *subscriptionRepository) CreateTransaction(ctx context.Context, txn *db_models.PaymentTransaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}
