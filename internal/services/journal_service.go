package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"murmur/internal/models/db_models"
	"murmur/internal/models/request_models"
	"murmur/internal/models/response_models"
	"murmur/internal/repositories"
	"murmur/pkg/storage"
	"murmur/pkg/utils"
)

const recommendedJournalCount = 10

type JournalServiceInterface interface {
	CreateJournal(ctx context.Context, userID uuid.UUID, req request_models.CreateJournalRequest, audio []byte, audioName string) (*response_models.JournalResponse, error)
	ListAll(ctx context.Context, requesterID uuid.UUID) (*response_models.JournalsResponse, error)
	ListMine(ctx context.Context, userID uuid.UUID) (*response_models.JournalsResponse, error)
	ListRecommended(ctx context.Context, userID uuid.UUID) (*response_models.JournalsResponse, error)
	GetJournal(ctx context.Context, requesterID, journalID uuid.UUID) (*response_models.JournalResponse, error)
	UpdateJournal(ctx context.Context, userID, journalID uuid.UUID, req request_models.UpdateJournalRequest, audio []byte, audioName string) (*response_models.JournalResponse, error)
	DeleteJournal(ctx context.Context, userID, journalID uuid.UUID) (*response_models.JournalResponse, error)
	ToggleLike(ctx context.Context, userID, journalID uuid.UUID) (*response_models.LikeResponse, error)
}

type JournalService struct {
	journalRepo  repositories.JournalRepository
	entitlements EntitlementServiceInterface
	store        storage.ObjectStore
	now          func() time.Time
}

func NewJournalService(
	journalRepo repositories.JournalRepository,
	entitlements EntitlementServiceInterface,
	store storage.ObjectStore,
) JournalServiceInterface {
	return &JournalService{
		journalRepo:  journalRepo,
		entitlements: entitlements,
		store:        store,
		now:          time.Now,
	}
}

func (j *JournalService) CreateJournal(ctx context.Context, userID uuid.UUID, req request_models.CreateJournalRequest, audio []byte, audioName string) (*response_models.JournalResponse, error) {
	ent, err := j.entitlements.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := response_models.BoundedLimit(0)
	audioAllowed := false
	if ent != nil {
		entries = ent.JournalEntries
		audioAllowed = ent.AudioPostJournal
	}

	used, err := j.journalRepo.CountCreatedSince(ctx, userID, utils.StartOfDayUTC(j.now()).Unix())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !entries.Allows(used) {
		return &response_models.JournalResponse{Success: false, Message: "Daily journal limit reached"}, nil
	}

	journal := &db_models.Journal{
		UserID: userID,
		Type:   db_models.JournalType(req.Type),
		Title:  req.Title,
		Body:   req.Body,
	}

	if journal.Type == db_models.JournalTypeAudio {
		if !audioAllowed {
			return &response_models.JournalResponse{Success: false, Message: "Audio journaling requires an active subscription"}, nil
		}
		if len(audio) == 0 {
			return &response_models.JournalResponse{Success: false, Message: "Audio file is required for audio journals"}, nil
		}
		name := utils.RandomString() + "_" + audioName
		if err := j.store.Put(name, audio); err != nil {
			return nil, utils.ErrDatabaseError
		}
		journal.Audio = name
	}

	if err := j.journalRepo.Create(ctx, journal); err != nil {
		return nil, utils.ErrDatabaseError
	}

	data := j.journalToData(journal, false)
	return &response_models.JournalResponse{
		Success: true,
		Message: "Journal created",
		Data:    &data,
	}, nil
}

func (j *JournalService) ListAll(ctx context.Context, requesterID uuid.UUID) (*response_models.JournalsResponse, error) {
	journals, err := j.journalRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return j.journalsToResponse(journals, requesterID), nil
}

func (j *JournalService) ListMine(ctx context.Context, userID uuid.UUID) (*response_models.JournalsResponse, error) {
	journals, err := j.journalRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return j.journalsToResponse(journals, userID), nil
}

func (j *JournalService) ListRecommended(ctx context.Context, userID uuid.UUID) (*response_models.JournalsResponse, error) {
	journals, err := j.journalRepo.ListRecommended(ctx, userID, recommendedJournalCount)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return j.journalsToResponse(journals, userID), nil
}

func (j *JournalService) GetJournal(ctx context.Context, requesterID, journalID uuid.UUID) (*response_models.JournalResponse, error) {
	journal, err := j.journalRepo.ByID(ctx, journalID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if journal == nil {
		return &response_models.JournalResponse{Success: false, Message: "Journal not found"}, nil
	}

	liked, err := j.journalRepo.IsLiked(ctx, requesterID, journal.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	likes, err := j.journalRepo.LikeCount(ctx, journal.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	data := j.journalToData(journal, liked)
	data.LikeCount = likes
	return &response_models.JournalResponse{
		Success: true,
		Message: "Journal retrieved",
		Data:    &data,
	}, nil
}

func (j *JournalService) UpdateJournal(ctx context.Context, userID, journalID uuid.UUID, req request_models.UpdateJournalRequest, audio []byte, audioName string) (*response_models.JournalResponse, error) {
	journal, err := j.journalRepo.ByID(ctx, journalID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if journal == nil || journal.UserID != userID {
		return &response_models.JournalResponse{Success: false, Message: "Journal not found"}, nil
	}

	if req.Type != "" && db_models.JournalType(req.Type) != journal.Type {
		// Switching away from audio orphans the stored file; remove it.
		if journal.Type == db_models.JournalTypeAudio && journal.Audio != "" {
			j.deleteAudio(journal.Audio)
			journal.Audio = ""
		}
		journal.Type = db_models.JournalType(req.Type)
	}
	if req.Title != "" {
		journal.Title = req.Title
	}
	if req.Body != "" {
		journal.Body = req.Body
	}

	if journal.Type == db_models.JournalTypeAudio && len(audio) > 0 {
		if journal.Audio != "" {
			j.deleteAudio(journal.Audio)
		}
		name := utils.RandomString() + "_" + audioName
		if err := j.store.Put(name, audio); err != nil {
			return nil, utils.ErrDatabaseError
		}
		journal.Audio = name
	}

	if err := j.journalRepo.Update(ctx, journal); err != nil {
		return nil, utils.ErrDatabaseError
	}

	data := j.journalToData(journal, false)
	return &response_models.JournalResponse{
		Success: true,
		Message: "Journal updated",
		Data:    &data,
	}, nil
}

func (j *JournalService) DeleteJournal(ctx context.Context, userID, journalID uuid.UUID) (*response_models.JournalResponse, error) {
	journal, err := j.journalRepo.ByID(ctx, journalID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if journal == nil || journal.UserID != userID {
		return &response_models.JournalResponse{Success: false, Message: "Journal not found"}, nil
	}
	if journal.Audio != "" {
		j.deleteAudio(journal.Audio)
	}
	if err := j.journalRepo.Delete(ctx, journalID); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.JournalResponse{Success: true, Message: "Journal deleted"}, nil
}

func (j *JournalService) ToggleLike(ctx context.Context, userID, journalID uuid.UUID) (*response_models.LikeResponse, error) {
	journal, err := j.journalRepo.ByID(ctx, journalID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if journal == nil {
		return &response_models.LikeResponse{Success: false, Message: "Journal not found"}, nil
	}
	liked, err := j.journalRepo.ToggleLike(ctx, userID, journalID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	message := "Journal unliked"
	if liked {
		message = "Journal liked"
	}
	return &response_models.LikeResponse{Success: true, Message: message, Liked: liked}, nil
}

func (j *JournalService) deleteAudio(name string) {
	if err := j.store.Delete(name); err != nil {
		log.Printf("audio cleanup failed for %s: %v", name, err)
	}
}

func (j *JournalService) journalToData(journal *db_models.Journal, liked bool) response_models.JournalData {
	data := response_models.JournalData{
		ID:        journal.ID.String(),
		UserID:    journal.UserID.String(),
		Type:      string(journal.Type),
		Title:     journal.Title,
		Body:      journal.Body,
		Audio:     journal.Audio,
		CreatedAt: time.Unix(journal.CreatedAt, 0).UTC(),
		IsLiked:   liked,
	}
	if journal.Audio != "" {
		data.AudioURL = j.store.URL(journal.Audio)
	}
	return data
}

func (j *JournalService) journalsToResponse(journals []db_models.Journal, requesterID uuid.UUID) *response_models.JournalsResponse {
	resp := &response_models.JournalsResponse{
		Success: true,
		Message: "Journals retrieved",
		Data:    make([]response_models.JournalData, 0, len(journals)),
	}
	for i := range journals {
		liked := false
		for _, like := range journals[i].Likes {
			if like.UserID == requesterID {
				liked = true
				break
			}
		}
		data := j.journalToData(&journals[i], liked)
		data.LikeCount = int64(len(journals[i].Likes))
		resp.Data = append(resp.Data, data)
	}
	return resp
}
