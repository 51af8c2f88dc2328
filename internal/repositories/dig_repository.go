package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"murmur/internal/models/db_models"
)

// ErrDailyLimitConflict reports that a concurrent request won the daily slot.
var ErrDailyLimitConflict = errors.New("daily dig slot already taken")

// ErrDuplicateResponse reports that the user already answered the layer.
var ErrDuplicateResponse = errors.New("layer already answered")

type DigRepository interface {
	CreateDig(ctx context.Context, dig *db_models.Dig) error
	DigByID(ctx context.Context, id uuid.UUID) (*db_models.Dig, error)
	ListDigs(ctx context.Context, page, pageSize int) ([]db_models.Dig, error)
	DeleteDig(ctx context.Context, id uuid.UUID) error
	CountDigs(ctx context.Context) (int64, error)
	DigByOffset(ctx context.Context, offset int) (*db_models.Dig, error)

	// MatchingPool returns the latest digs whose tags overlap the focus
	// areas, newest first, capped at limit.
	MatchingPool(ctx context.Context, focusAreas []string, limit int) ([]db_models.Dig, error)
	// UnassignedPool additionally excludes digs ever daily-assigned to the
	// user (no-repeat policy for paid tier).
	UnassignedPool(ctx context.Context, userID uuid.UUID, focusAreas []string, limit int) ([]db_models.Dig, error)

	WeeklyAssignments(ctx context.Context, userID uuid.UUID, weekStart int64) ([]db_models.UserWeeklyDig, error)
	CreateWeeklyAssignments(ctx context.Context, rows []db_models.UserWeeklyDig) error
	WeeklyAssignment(ctx context.Context, userID, digID uuid.UUID, weekStart int64) (*db_models.UserWeeklyDig, error)
	MarkWeeklyComplete(ctx context.Context, id uuid.UUID) error

	IncompleteDailyDigs(ctx context.Context, userID uuid.UUID) ([]db_models.UserDailyDig, error)
	DailyDigsForDay(ctx context.Context, userID uuid.UUID, dayStart int64) ([]db_models.UserDailyDig, error)
	// AssignDailyDig re-checks the pending/limit gates and creates the row in
	// one serializable transaction; the (user, day, slot) unique index backs
	// it up at the store level.
	AssignDailyDig(ctx context.Context, row *db_models.UserDailyDig) error
	LatestDailyDig(ctx context.Context, userID, digID uuid.UUID) (*db_models.UserDailyDig, error)
	MarkDailyComplete(ctx context.Context, id uuid.UUID) error

	CreateResponse(ctx context.Context, resp *db_models.DigResponse) error
}

type digRepository struct {
	db *gorm.DB
}

func NewDigRepository(db *gorm.DB) DigRepository {
	return &digRepository{db: db}
}

func (r *digRepository) CreateDig(ctx context.Context, dig *db_models.Dig) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(dig).Error
	})
}

func (r *digRepository) DigByID(ctx context.Context, id uuid.UUID) (*db_models.Dig, error) {
	var dig db_models.Dig
	err := r.db.WithContext(ctx).Preload("Layers").First(&dig, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dig, nil
}

func (r *digRepository) ListDigs(ctx context.Context, page, pageSize int) ([]db_models.Dig, error) {
	var digs []db_models.Dig
	offset := (page - 1) * pageSize
	err := r.db.WithContext(ctx).
		Preload("Layers").
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&digs).Error
	if err != nil {
		return nil, err
	}
	return digs, nil
}

func (r *digRepository) DeleteDig(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Dig{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *digRepository) CountDigs(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Dig{}).Count(&count).Error
	return count, err
}

func (r *digRepository) DigByOffset(ctx context.Context, offset int) (*db_models.Dig, error) {
	var dig db_models.Dig
	err := r.db.WithContext(ctx).
		Preload("Layers").
		Order("created_at").
		Offset(offset).
		First(&dig).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dig, nil
}

func (r *digRepository) MatchingPool(ctx context.Context, focusAreas []string, limit int) ([]db_models.Dig, error) {
	var digs []db_models.Dig
	q := r.db.WithContext(ctx).Preload("Layers")
	if len(focusAreas) > 0 {
		q = q.Where("type && ?", pq.StringArray(focusAreas))
	}
	err := q.Order("created_at DESC").
		Limit(limit).
		Find(&digs).Error
	if err != nil {
		return nil, err
	}
	return digs, nil
}

func (r *digRepository) UnassignedPool(ctx context.Context, userID uuid.UUID, focusAreas []string, limit int) ([]db_models.Dig, error) {
	var digs []db_models.Dig
	assigned := r.db.Model(&db_models.UserDailyDig{}).
		Select("dig_id").
		Where("user_id = ?", userID)
	q := r.db.WithContext(ctx).Preload("Layers")
	if len(focusAreas) > 0 {
		q = q.Where("type && ?", pq.StringArray(focusAreas))
	}
	err := q.Where("id NOT IN (?)", assigned).
		Limit(limit).
		Find(&digs).Error
	if err != nil {
		return nil, err
	}
	return digs, nil
}

func (r *digRepository) WeeklyAssignments(ctx context.Context, userID uuid.UUID, weekStart int64) ([]db_models.UserWeeklyDig, error) {
	var rows []db_models.UserWeeklyDig
	err := r.db.WithContext(ctx).
		Preload("Dig.Layers").
		Where("user_id = ? AND week_start = ?", userID, weekStart).
		Order("position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *digRepository) CreateWeeklyAssignments(ctx context.Context, rows []db_models.UserWeeklyDig) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
}

func (r *digRepository) WeeklyAssignment(ctx context.Context, userID, digID uuid.UUID, weekStart int64) (*db_models.UserWeeklyDig, error) {
	var row db_models.UserWeeklyDig
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND dig_id = ? AND week_start = ?", userID, digID, weekStart).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *digRepository) MarkWeeklyComplete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&db_models.UserWeeklyDig{}).
		Where("id = ?", id).
		Update("completed", true).Error
}

func (r *digRepository) IncompleteDailyDigs(ctx context.Context, userID uuid.UUID) ([]db_models.UserDailyDig, error) {
	var rows []db_models.UserDailyDig
	err := r.db.WithContext(ctx).
		Preload("Dig.Layers").
		Where("user_id = ? AND completed = FALSE", userID).
		Order("assigned_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *digRepository) DailyDigsForDay(ctx context.Context, userID uuid.UUID, dayStart int64) ([]db_models.UserDailyDig, error) {
	var rows []db_models.UserDailyDig
	err := r.db.WithContext(ctx).
		Preload("Dig.Layers").
		Where("user_id = ? AND assigned_day = ?", userID, dayStart).
		Order("daily_dig_number ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *digRepository) AssignDailyDig(ctx context.Context, row *db_models.UserDailyDig) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pending int64
		if err := tx.Model(&db_models.UserDailyDig{}).
			Where("user_id = ? AND completed = FALSE", row.UserID).
			Count(&pending).Error; err != nil {
			return err
		}
		if pending > 0 {
			return ErrDailyLimitConflict
		}

		var today int64
		if err := tx.Model(&db_models.UserDailyDig{}).
			Where("user_id = ? AND assigned_day = ?", row.UserID, row.AssignedDay).
			Count(&today).Error; err != nil {
			return err
		}
		if int(today)+1 != row.DailyDigNumber || today >= 2 {
			return ErrDailyLimitConflict
		}

		return tx.Create(row).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDailyLimitConflict
	}
	return err
}

func (r *digRepository) LatestDailyDig(ctx context.Context, userID, digID uuid.UUID) (*db_models.UserDailyDig, error) {
	var row db_models.UserDailyDig
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND dig_id = ?", userID, digID).
		Order("assigned_at DESC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *digRepository) MarkDailyComplete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&db_models.UserDailyDig{}).
		Where("id = ?", id).
		Update("completed", true).Error
}

func (r *digRepository) CreateResponse(ctx context.Context, resp *db_models.DigResponse) error {
	err := r.db.WithContext(ctx).Create(resp).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateResponse
	}
	return err
}
