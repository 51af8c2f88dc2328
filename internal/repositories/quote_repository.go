package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"murmur/internal/models/db_models"
)

type QuoteRepository interface {
	Create(ctx context.Context, quote *db_models.Quote) error
	ByID(ctx context.Context, id uuid.UUID) (*db_models.Quote, error)
	ByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*db_models.Quote, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Quote, error)
	Update(ctx context.Context, quote *db_models.Quote) error
	Delete(ctx context.Context, id uuid.UUID) error

	// CountAdminPool / AdminPoolByOffset drive the uniform random draw:
	// count the candidate pool, then fetch one row by numeric offset.
	// Focus-area filtering applies only when focusAreas is non-empty.
	CountAdminPool(ctx context.Context, focusAreas []string) (int64, error)
	AdminPoolByOffset(ctx context.Context, focusAreas []string, offset int) (*db_models.Quote, error)

	HasReaction(ctx context.Context, userID, quoteID uuid.UUID) (bool, error)
	ToggleReaction(ctx context.Context, userID, quoteID uuid.UUID) (bool, error)
}

type quoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) QuoteRepository {
	return &quoteRepository{db: db}
}

func (r *quoteRepository) Create(ctx context.Context, quote *db_models.Quote) error {
	return r.db.WithContext(ctx).Create(quote).Error
}

func (r *quoteRepository) ByID(ctx context.Context, id uuid.UUID) (*db_models.Quote, error) {
	var quote db_models.Quote
	err := r.db.WithContext(ctx).First(&quote, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quote, nil
}

func (r *quoteRepository) ByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*db_models.Quote, error) {
	var quote db_models.Quote
	err := r.db.WithContext(ctx).
		First(&quote, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quote, nil
}

func (r *quoteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Quote, error) {
	var quotes []db_models.Quote
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&quotes).Error
	if err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *quoteRepository) Update(ctx context.Context, quote *db_models.Quote) error {
	return r.db.WithContext(ctx).Save(quote).Error
}

func (r *quoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Quote{}, "id = ?", id).Error
}

func (r *quoteRepository) adminPool(ctx context.Context, focusAreas []string) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&db_models.Quote{}).
		Joins("JOIN users ON users.id = quotes.user_id").
		Where("users.type = ?", db_models.UserTypeAdmin)
	if len(focusAreas) > 0 {
		q = q.Where("quotes.tags && ?", pq.StringArray(focusAreas))
	}
	return q
}

func (r *quoteRepository) CountAdminPool(ctx context.Context, focusAreas []string) (int64, error) {
	var count int64
	err := r.adminPool(ctx, focusAreas).Count(&count).Error
	return count, err
}

func (r *quoteRepository) AdminPoolByOffset(ctx context.Context, focusAreas []string, offset int) (*db_models.Quote, error) {
	var quote db_models.Quote
	err := r.adminPool(ctx, focusAreas).
		Order("quotes.created_at").
		Offset(offset).
		First(&quote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quote, nil
}

func (r *quoteRepository) HasReaction(ctx context.Context, userID, quoteID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.QuoteReaction{}).
		Where("user_id = ? AND quote_id = ?", userID, quoteID).
		Count(&count).Error
	return count > 0, err
}

func (r *quoteRepository) ToggleReaction(ctx context.Context, userID, quoteID uuid.UUID) (bool, error) {
	reacted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := db_models.QuoteReaction{UserID: userID, QuoteID: quoteID}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return tx.Where("user_id = ? AND quote_id = ?", userID, quoteID).
				Delete(&db_models.QuoteReaction{}).Error
		}
		reacted = true
		return nil
	})
	return reacted, err
}
