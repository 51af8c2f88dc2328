package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"murmur/internal/models/db_models"
)

type MurmurationRepository interface {
	Create(ctx context.Context, m *db_models.Murmuration) error
	ByID(ctx context.Context, id uuid.UUID) (*db_models.Murmuration, error)
	// ByIDWithThread eagerly loads top-level comments with one level of
	// replies, comment authors and like rows.
	ByIDWithThread(ctx context.Context, id uuid.UUID) (*db_models.Murmuration, error)
	ListAll(ctx context.Context) ([]db_models.Murmuration, error)

	CreateComment(ctx context.Context, c *db_models.Comment) error
	CommentByID(ctx context.Context, id uuid.UUID) (*db_models.Comment, error)
	CommentsFor(ctx context.Context, murmurationID uuid.UUID) ([]db_models.Comment, error)

	ToggleLike(ctx context.Context, userID, murmurationID uuid.UUID) (bool, error)
	ToggleCommentLike(ctx context.Context, userID, commentID uuid.UUID) (bool, error)
	LikeCount(ctx context.Context, murmurationID uuid.UUID) (int64, error)
	IsCommentLiked(ctx context.Context, userID, commentID uuid.UUID) (bool, error)
}

type murmurationRepository struct {
	db *gorm.DB
}

func NewMurmurationRepository(db *gorm.DB) MurmurationRepository {
	return &murmurationRepository{db: db}
}

func (r *murmurationRepository) Create(ctx context.Context, m *db_models.Murmuration) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *murmurationRepository) ByID(ctx context.Context, id uuid.UUID) (*db_models.Murmuration, error) {
	var m db_models.Murmuration
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *murmurationRepository) ByIDWithThread(ctx context.Context, id uuid.UUID) (*db_models.Murmuration, error) {
	var m db_models.Murmuration
	err := r.db.WithContext(ctx).
		Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Where("reply_to_comment_id IS NULL").Order("created_at ASC")
		}).
		Preload("Comments.User").
		Preload("Comments.Likes").
		Preload("Comments.Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Comments.Replies.User").
		Preload("Comments.Replies.Likes").
		First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *murmurationRepository) ListAll(ctx context.Context) ([]db_models.Murmuration, error) {
	var list []db_models.Murmuration
	err := r.db.WithContext(ctx).
		Preload("Likes").
		Preload("Comments").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *murmurationRepository) CreateComment(ctx context.Context, c *db_models.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *murmurationRepository) CommentByID(ctx context.Context, id uuid.UUID) (*db_models.Comment, error) {
	var c db_models.Comment
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *murmurationRepository) CommentsFor(ctx context.Context, murmurationID uuid.UUID) ([]db_models.Comment, error) {
	var comments []db_models.Comment
	err := r.db.WithContext(ctx).
		Preload("Likes").
		Preload("Replies").
		Where("murmuration_id = ?", murmurationID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *murmurationRepository) ToggleLike(ctx context.Context, userID, murmurationID uuid.UUID) (bool, error) {
	liked := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := db_models.MurmurationLike{UserID: userID, MurmurationID: murmurationID}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return tx.Where("user_id = ? AND murmuration_id = ?", userID, murmurationID).
				Delete(&db_models.MurmurationLike{}).Error
		}
		liked = true
		return nil
	})
	return liked, err
}

func (r *murmurationRepository) ToggleCommentLike(ctx context.Context, userID, commentID uuid.UUID) (bool, error) {
	liked := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := db_models.CommentLike{UserID: userID, CommentID: commentID}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return tx.Where("user_id = ? AND comment_id = ?", userID, commentID).
				Delete(&db_models.CommentLike{}).Error
		}
		liked = true
		return nil
	})
	return liked, err
}

func (r *murmurationRepository) LikeCount(ctx context.Context, murmurationID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.MurmurationLike{}).
		Where("murmuration_id = ?", murmurationID).
		Count(&count).Error
	return count, err
}

func (r *murmurationRepository) IsCommentLiked(ctx context.Context, userID, commentID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.CommentLike{}).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Count(&count).Error
	return count > 0, err
}
