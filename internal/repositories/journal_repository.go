package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"murmur/internal/models/db_models"
)

type JournalRepository interface {
	Create(ctx context.Context, journal *db_models.Journal) error
	ByID(ctx context.Context, id uuid.UUID) (*db_models.Journal, error)
	ListAll(ctx context.Context) ([]db_models.Journal, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Journal, error)
	ListRecommended(ctx context.Context, excludeUserID uuid.UUID, limit int) ([]db_models.Journal, error)
	Update(ctx context.Context, journal *db_models.Journal) error
	Delete(ctx context.Context, id uuid.UUID) error

	CountCreatedSince(ctx context.Context, userID uuid.UUID, since int64) (int64, error)
	ToggleLike(ctx context.Context, userID, journalID uuid.UUID) (bool, error)
	IsLiked(ctx context.Context, userID, journalID uuid.UUID) (bool, error)
	LikeCount(ctx context.Context, journalID uuid.UUID) (int64, error)
}

type journalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) Create(ctx context.Context, journal *db_models.Journal) error {
	return r.db.WithContext(ctx).Create(journal).Error
}

func (r *journalRepository) ByID(ctx context.Context, id uuid.UUID) (*db_models.Journal, error) {
	var journal db_models.Journal
	err := r.db.WithContext(ctx).First(&journal, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &journal, nil
}

func (r *journalRepository) ListAll(ctx context.Context) ([]db_models.Journal, error) {
	var journals []db_models.Journal
	err := r.db.WithContext(ctx).
		Preload("Likes").
		Order("created_at DESC").
		Find(&journals).Error
	if err != nil {
		return nil, err
	}
	return journals, nil
}

func (r *journalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Journal, error) {
	var journals []db_models.Journal
	err := r.db.WithContext(ctx).
		Preload("Likes").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&journals).Error
	if err != nil {
		return nil, err
	}
	return journals, nil
}

func (r *journalRepository) ListRecommended(ctx context.Context, excludeUserID uuid.UUID, limit int) ([]db_models.Journal, error) {
	var journals []db_models.Journal
	err := r.db.WithContext(ctx).
		Where("user_id <> ?", excludeUserID).
		Order("created_at DESC").
		Limit(limit).
		Find(&journals).Error
	if err != nil {
		return nil, err
	}
	return journals, nil
}

func (r *journalRepository) Update(ctx context.Context, journal *db_models.Journal) error {
	return r.db.WithContext(ctx).Save(journal).Error
}

func (r *journalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Journal{}, "id = ?", id).Error
}

func (r *journalRepository) CountCreatedSince(ctx context.Context, userID uuid.UUID, since int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Journal{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count).Error
	return count, err
}

// ToggleLike flips the liked state in one transaction. The conflict-ignoring
// insert plus conditional delete keeps the unique index as the concurrency
// guard: two toggles in a row yield liked=true then liked=false.
func (r *journalRepository) ToggleLike(ctx context.Context, userID, journalID uuid.UUID) (bool, error) {
	liked := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := db_models.JournalLike{UserID: userID, JournalID: journalID}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return tx.Where("user_id = ? AND journal_id = ?", userID, journalID).
				Delete(&db_models.JournalLike{}).Error
		}
		liked = true
		return nil
	})
	return liked, err
}

func (r *journalRepository) IsLiked(ctx context.Context, userID, journalID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.JournalLike{}).
		Where("user_id = ? AND journal_id = ?", userID, journalID).
		Count(&count).Error
	return count > 0, err
}

func (r *journalRepository) LikeCount(ctx context.Context, journalID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.JournalLike{}).
		Where("journal_id = ?", journalID).
		Count(&count).Error
	return count, err
}
