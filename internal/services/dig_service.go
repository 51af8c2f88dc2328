package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"murmur/internal/models/db_models"
	"murmur/internal/models/request_models"
	"murmur/internal/models/response_models"
	"murmur/internal/repositories"
	"murmur/pkg/cache"
	"murmur/pkg/utils"
)

const (
	weeklyDigCount = 3
	weeklyPoolSize = 50
	dailyDigCap    = 2
)

type DigServiceInterface interface {
	GetAssignedDigs(ctx context.Context, userID uuid.UUID) (*response_models.DigAssignmentResponse, error)
	MarkComplete(ctx context.Context, userID, digID uuid.UUID) (*response_models.DigCompletionResponse, error)
	Progress(ctx context.Context, userID uuid.UUID) (*response_models.DigProgressResponse, error)
	SubmitAnswer(ctx context.Context, userID, digID uuid.UUID, req request_models.AnswerLayerRequest) (*response_models.DigCompletionResponse, error)

	CreateDig(ctx context.Context, creatorID uuid.UUID, req request_models.CreateDigRequest) (*db_models.Dig, error)
	ListDigs(ctx context.Context, page, pageSize int) ([]db_models.Dig, error)
	DeleteDig(ctx context.Context, id uuid.UUID) error
}

type DigService struct {
	digRepo      repositories.DigRepository
	entitlements EntitlementServiceInterface
	cache        cache.Store
	devMode      bool
	now          func() time.Time
}

func NewDigService(
	digRepo repositories.DigRepository,
	entitlements EntitlementServiceInterface,
	cacheStore cache.Store,
	devMode bool,
) DigServiceInterface {
	return &DigService{
		digRepo:      digRepo,
		entitlements: entitlements,
		cache:        cacheStore,
		devMode:      devMode,
		now:          time.Now,
	}
}

func weeklyCacheKey(userID uuid.UUID, weekStart time.Time) string {
	return fmt.Sprintf("digs:weekly:%s:%d", userID, weekStart.UnixMilli())
}

func (d *DigService) GetAssignedDigs(ctx context.Context, userID uuid.UUID) (*response_models.DigAssignmentResponse, error) {
	if d.devMode {
		return d.randomDig(ctx)
	}

	ent, err := d.entitlements.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Rotation pools are keyed on focus areas; without saved preferences
	// there is nothing to match against, whatever the tier.
	focus := focusAreas(ent)
	if len(focus) == 0 {
		return &response_models.DigAssignmentResponse{
			Success: false,
			Message: "User has no saved preferences",
		}, nil
	}

	if ent == nil || ent.IsFree() {
		return d.weeklyDigs(ctx, userID, focus)
	}
	return d.dailyDigs(ctx, userID, focus)
}

// randomDig bypasses tier and rotation logic entirely.
func (d *DigService) randomDig(ctx context.Context) (*response_models.DigAssignmentResponse, error) {
	count, err := d.digRepo.CountDigs(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if count == 0 {
		return &response_models.DigAssignmentResponse{
			Success: false,
			Message: "No digs available",
		}, nil
	}
	dig, err := d.digRepo.DigByOffset(ctx, rand.Intn(int(count)))
	if err != nil || dig == nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.DigAssignmentResponse{
		Success: true,
		Message: "Random dig fetched (Development Mode)",
		Data: &response_models.DigAssignmentData{
			Digs: []response_models.AssignedDig{digToAssigned(dig)},
			Mode: "development",
		},
	}, nil
}

func (d *DigService) weeklyDigs(ctx context.Context, userID uuid.UUID, focus []string) (*response_models.DigAssignmentResponse, error) {
	now := d.now()
	weekStart, _ := utils.WeekBoundaries(now)
	key := weeklyCacheKey(userID, weekStart)

	if raw, ok, err := d.cache.Get(ctx, key); err == nil && ok {
		var data response_models.DigAssignmentData
		if err := json.Unmarshal([]byte(raw), &data); err == nil {
			return &response_models.DigAssignmentResponse{
				Success: true,
				Message: "Weekly digs retrieved",
				Data:    &data,
			}, nil
		}
	}

	rows, err := d.digRepo.WeeklyAssignments(ctx, userID, weekStart.UnixMilli())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if len(rows) == 0 {
		pool, err := d.digRepo.MatchingPool(ctx, focus, weeklyPoolSize)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if len(pool) < weeklyDigCount {
			return &response_models.DigAssignmentResponse{
				Success: false,
				Message: "Not enough digs available matching your preferences",
			}, nil
		}
		rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

		rows = make([]db_models.UserWeeklyDig, 0, weeklyDigCount)
		for i := 0; i < weeklyDigCount; i++ {
			rows = append(rows, db_models.UserWeeklyDig{
				UserID:    userID,
				DigID:     pool[i].ID,
				WeekStart: weekStart.UnixMilli(),
				Position:  i + 1,
				Dig:       pool[i],
			})
		}
		if err := d.digRepo.CreateWeeklyAssignments(ctx, rows); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	data := &response_models.DigAssignmentData{}
	for _, row := range rows {
		assigned := digToAssigned(&row.Dig)
		assigned.Position = row.Position
		assigned.Completed = row.Completed
		data.Digs = append(data.Digs, assigned)
		if row.Completed {
			data.CompletedCount++
		}
	}

	if data.CompletedCount == len(data.Digs) {
		next := weekStart.AddDate(0, 0, 7)
		data.AllCompleted = true
		data.NextWeekStart = &next
		return &response_models.DigAssignmentResponse{
			Success: true,
			Message: "All weekly digs completed. New digs will be available next week.",
			Data:    data,
		}, nil
	}

	if encoded, err := json.Marshal(data); err == nil {
		if err := d.cache.Set(ctx, key, string(encoded), utils.UntilEndOfWeek(now)); err != nil {
			log.Printf("weekly dig cache write failed for user %s: %v", userID, err)
		}
	}

	return &response_models.DigAssignmentResponse{
		Success: true,
		Message: "Weekly digs retrieved",
		Data:    data,
	}, nil
}

func (d *DigService) dailyDigs(ctx context.Context, userID uuid.UUID, focus []string) (*response_models.DigAssignmentResponse, error) {
	pending, err := d.digRepo.IncompleteDailyDigs(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(pending) > 0 {
		data := &response_models.DigAssignmentData{HasIncomplete: true}
		for _, row := range pending {
			data.Digs = append(data.Digs, dailyToAssigned(&row))
		}
		return &response_models.DigAssignmentResponse{
			Success: false,
			Message: "You have incomplete digs. Please complete them first.",
			Data:    data,
		}, nil
	}

	dayStart := utils.StartOfDayUTC(d.now()).Unix()
	today, err := d.digRepo.DailyDigsForDay(ctx, userID, dayStart)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(today) >= dailyDigCap {
		return &response_models.DigAssignmentResponse{
			Success: false,
			Message: "Daily dig limit reached. You can get more digs tomorrow.",
			Data:    &response_models.DigAssignmentData{TotalToday: len(today)},
		}, nil
	}

	pool, err := d.digRepo.UnassignedPool(ctx, userID, focus, weeklyPoolSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(pool) == 0 {
		return &response_models.DigAssignmentResponse{
			Success: false,
			Message: "No new digs available matching your preferences",
		}, nil
	}

	pick := pool[rand.Intn(len(pool))]
	row := &db_models.UserDailyDig{
		UserID:         userID,
		DigID:          pick.ID,
		AssignedAt:     d.now().Unix(),
		AssignedDay:    dayStart,
		DailyDigNumber: len(today) + 1,
	}
	if err := d.digRepo.AssignDailyDig(ctx, row); err != nil {
		if errors.Is(err, repositories.ErrDailyLimitConflict) {
			return &response_models.DigAssignmentResponse{
				Success: false,
				Message: "Daily dig limit reached. You can get more digs tomorrow.",
			}, nil
		}
		return nil, utils.ErrDatabaseError
	}

	today, err = d.digRepo.DailyDigsForDay(ctx, userID, dayStart)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	data := &response_models.DigAssignmentData{
		CurrentDigNumber: row.DailyDigNumber,
		TotalToday:       len(today),
	}
	for _, assigned := range today {
		data.Digs = append(data.Digs, dailyToAssigned(&assigned))
	}
	return &response_models.DigAssignmentResponse{
		Success: true,
		Message: "Daily dig assigned",
		Data:    data,
	}, nil
}

func (d *DigService) MarkComplete(ctx context.Context, userID, digID uuid.UUID) (*response_models.DigCompletionResponse, error) {
	ent, err := d.entitlements.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	if ent == nil || ent.IsFree() {
		now := d.now()
		weekStart, _ := utils.WeekBoundaries(now)
		row, err := d.digRepo.WeeklyAssignment(ctx, userID, digID, weekStart.UnixMilli())
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if row == nil {
			return &response_models.DigCompletionResponse{Success: false, Message: "Dig assignment not found"}, nil
		}
		if row.Completed {
			return &response_models.DigCompletionResponse{Success: false, Message: "Dig already completed"}, nil
		}
		if err := d.digRepo.MarkWeeklyComplete(ctx, row.ID); err != nil {
			return nil, utils.ErrDatabaseError
		}
		if err := d.cache.Del(ctx, weeklyCacheKey(userID, weekStart)); err != nil {
			log.Printf("weekly dig cache invalidation failed for user %s: %v", userID, err)
		}
		return &response_models.DigCompletionResponse{Success: true, Message: "Dig marked as completed"}, nil
	}

	row, err := d.digRepo.LatestDailyDig(ctx, userID, digID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if row == nil {
		return &response_models.DigCompletionResponse{Success: false, Message: "Dig assignment not found"}, nil
	}
	if row.Completed {
		return &response_models.DigCompletionResponse{Success: false, Message: "Dig already completed"}, nil
	}
	if err := d.digRepo.MarkDailyComplete(ctx, row.ID); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.DigCompletionResponse{Success: true, Message: "Dig marked as completed"}, nil
}

func (d *DigService) Progress(ctx context.Context, userID uuid.UUID) (*response_models.DigProgressResponse, error) {
	ent, err := d.entitlements.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	if ent == nil || ent.IsFree() {
		weekStart, _ := utils.WeekBoundaries(d.now())
		rows, err := d.digRepo.WeeklyAssignments(ctx, userID, weekStart.UnixMilli())
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		completed := 0
		for _, row := range rows {
			if row.Completed {
				completed++
			}
		}
		return &response_models.DigProgressResponse{
			Success: true,
			Data: &response_models.DigProgressData{
				Type:              "free",
				TotalThisWeek:     len(rows),
				CompletedThisWeek: completed,
				AllCompleted:      len(rows) > 0 && completed == len(rows),
			},
		}, nil
	}

	pending, err := d.digRepo.IncompleteDailyDigs(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	today, err := d.digRepo.DailyDigsForDay(ctx, userID, utils.StartOfDayUTC(d.now()).Unix())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	completedToday := 0
	for _, row := range today {
		if row.Completed {
			completedToday++
		}
	}
	return &response_models.DigProgressResponse{
		Success: true,
		Data: &response_models.DigProgressData{
			Type:            "paid",
			TotalToday:      len(today),
			CompletedToday:  completedToday,
			RemainingToday:  dailyDigCap - len(today),
			HasIncomplete:   len(pending) > 0,
			IncompleteCount: len(pending),
		},
	}, nil
}

func (d *DigService) SubmitAnswer(ctx context.Context, userID, digID uuid.UUID, req request_models.AnswerLayerRequest) (*response_models.DigCompletionResponse, error) {
	dig, err := d.digRepo.DigByID(ctx, digID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if dig == nil {
		return nil, utils.ErrDigNotFound
	}

	layerID, err := uuid.Parse(req.LayerID)
	if err != nil {
		return &response_models.DigCompletionResponse{Success: false, Message: "Invalid layer id"}, nil
	}
	found := false
	for _, layer := range dig.Layers {
		if layer.ID == layerID {
			found = true
			break
		}
	}
	if !found {
		return &response_models.DigCompletionResponse{Success: false, Message: "Layer does not belong to this dig"}, nil
	}

	err = d.digRepo.CreateResponse(ctx, &db_models.DigResponse{
		DigID:   digID,
		LayerID: layerID,
		UserID:  userID,
		Answer:  req.Answer,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateResponse) {
			return &response_models.DigCompletionResponse{Success: false, Message: "Layer already answered"}, nil
		}
		return nil, utils.ErrDatabaseError
	}
	return &response_models.DigCompletionResponse{Success: true, Message: "Answer recorded"}, nil
}

func (d *DigService) CreateDig(ctx context.Context, creatorID uuid.UUID, req request_models.CreateDigRequest) (*db_models.Dig, error) {
	dig := &db_models.Dig{
		Title:     req.Title,
		Type:      req.Type,
		CreatorID: creatorID,
	}
	for _, layer := range req.Layers {
		dig.Layers = append(dig.Layers, db_models.Layer{
			Name:       layer.Name,
			Type:       db_models.LayerType(layer.Type),
			Points:     layer.Points,
			Options:    layer.Options,
			IsFreeText: layer.IsFreeText,
		})
	}
	if err := d.digRepo.CreateDig(ctx, dig); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return dig, nil
}

func (d *DigService) ListDigs(ctx context.Context, page, pageSize int) ([]db_models.Dig, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	digs, err := d.digRepo.ListDigs(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return digs, nil
}

func (d *DigService) DeleteDig(ctx context.Context, id uuid.UUID) error {
	dig, err := d.digRepo.DigByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if dig == nil {
		return utils.ErrDigNotFound
	}
	if err := d.digRepo.DeleteDig(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func focusAreas(ent *response_models.Entitlement) []string {
	if ent == nil {
		return nil
	}
	return ent.FocusArea
}

func digToAssigned(dig *db_models.Dig) response_models.AssignedDig {
	assigned := response_models.AssignedDig{
		ID:    dig.ID.String(),
		Title: dig.Title,
		Type:  dig.Type,
	}
	for _, layer := range dig.Layers {
		assigned.Layers = append(assigned.Layers, response_models.LayerData{
			ID:         layer.ID.String(),
			Name:       layer.Name,
			Type:       string(layer.Type),
			Points:     layer.Points,
			Options:    layer.Options,
			IsFreeText: layer.IsFreeText,
		})
	}
	return assigned
}

func dailyToAssigned(row *db_models.UserDailyDig) response_models.AssignedDig {
	assigned := digToAssigned(&row.Dig)
	assigned.Completed = row.Completed
	assignedAt := time.Unix(row.AssignedAt, 0).UTC()
	assigned.AssignedAt = &assignedAt
	assigned.DailyDigNumber = row.DailyDigNumber
	return assigned
}
