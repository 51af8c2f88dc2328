package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"murmur/internal/models/db_models"
)

type UserRepository interface {
	Create(ctx context.Context, user *db_models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	FindByBillingID(ctx context.Context, billingID string) (*db_models.User, error)
	ListAdmins(ctx context.Context) ([]db_models.User, error)

	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	UpdateBillingID(ctx context.Context, id uuid.UUID, billingID string) error
	UpdatePlanLabel(ctx context.Context, id uuid.UUID, plan string) error
	UpdateSubscriptionValidUntil(ctx context.Context, id uuid.UUID, until int64) error

	Preferences(ctx context.Context, userID uuid.UUID) (*db_models.UserPreferences, error)
	UpsertPreferences(ctx context.Context, prefs *db_models.UserPreferences) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByBillingID(ctx context.Context, billingID string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "billing_id = ?", billingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListAdmins(ctx context.Context) ([]db_models.User, error) {
	var admins []db_models.User
	err := r.db.WithContext(ctx).
		Where("type = ?", db_models.UserTypeAdmin).
		Find(&admins).Error
	if err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return r.db.WithContext(ctx).Model(&db_models.User{}).
		Where("id = ?", id).
		Update("password", hash).Error
}

func (r *userRepository) UpdateBillingID(ctx context.Context, id uuid.UUID, billingID string) error {
	return r.db.WithContext(ctx).Model(&db_models.User{}).
		Where("id = ?", id).
		Update("billing_id", billingID).Error
}

func (r *userRepository) UpdatePlanLabel(ctx context.Context, id uuid.UUID, plan string) error {
	return r.db.WithContext(ctx).Model(&db_models.User{}).
		Where("id = ?", id).
		Update("subscription_plan", plan).Error
}

func (r *userRepository) UpdateSubscriptionValidUntil(ctx context.Context, id uuid.UUID, until int64) error {
	return r.db.WithContext(ctx).Model(&db_models.User{}).
		Where("id = ?", id).
		Update("subscription_valid_until", until).Error
}

func (r *userRepository) Preferences(ctx context.Context, userID uuid.UUID) (*db_models.UserPreferences, error) {
	var prefs db_models.UserPreferences
	err := r.db.WithContext(ctx).First(&prefs, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prefs, nil
}

func (r *userRepository) UpsertPreferences(ctx context.Context, prefs *db_models.UserPreferences) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"focus_area", "content_frequency", "updated_at"}),
		}).
		Create(prefs).Error
}
