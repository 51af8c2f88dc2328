package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"murmur/internal/models/db_models"
	"murmur/internal/models/request_models"
	"murmur/internal/models/response_models"
	"murmur/internal/repositories"
	"murmur/pkg/cache"
	"murmur/pkg/utils"
)

type QuoteServiceInterface interface {
	QuoteOfTheDay(ctx context.Context, userID uuid.UUID) (*response_models.QuoteResponse, error)
	CreateQuote(ctx context.Context, userID uuid.UUID, req request_models.CreateQuoteRequest) (*response_models.QuoteResponse, error)
	MyQuotes(ctx context.Context, userID uuid.UUID) (*response_models.QuotesResponse, error)
	GetQuote(ctx context.Context, userID, quoteID uuid.UUID) (*response_models.QuoteResponse, error)
	UpdateQuote(ctx context.Context, userID, quoteID uuid.UUID, req request_models.UpdateQuoteRequest) (*response_models.QuoteResponse, error)
	DeleteQuote(ctx context.Context, userID, quoteID uuid.UUID) (*response_models.QuoteResponse, error)
	ToggleReaction(ctx context.Context, userID, quoteID uuid.UUID) (*response_models.ReactionResponse, error)
}

type QuoteService struct {
	quoteRepo    repositories.QuoteRepository
	entitlements EntitlementServiceInterface
	cache        cache.Store
	baseURL      string
	now          func() time.Time
}

func NewQuoteService(
	quoteRepo repositories.QuoteRepository,
	entitlements EntitlementServiceInterface,
	cacheStore cache.Store,
	baseURL string,
) QuoteServiceInterface {
	return &QuoteService{
		quoteRepo:    quoteRepo,
		entitlements: entitlements,
		cache:        cacheStore,
		baseURL:      strings.TrimRight(baseURL, "/"),
		now:          time.Now,
	}
}

func dailyQuoteKey(userID uuid.UUID) string {
	return fmt.Sprintf("quote:daily:%s", userID)
}

func (q *QuoteService) shareLink(quoteID uuid.UUID) string {
	return fmt.Sprintf("%s/quotes/share/%s", q.baseURL, quoteID)
}

func (q *QuoteService) QuoteOfTheDay(ctx context.Context, userID uuid.UUID) (*response_models.QuoteResponse, error) {
	ent, err := q.entitlements.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	free := ent == nil || ent.IsFree()

	if free {
		if raw, ok, err := q.cache.Get(ctx, dailyQuoteKey(userID)); err == nil && ok {
			var data response_models.QuoteData
			if err := json.Unmarshal([]byte(raw), &data); err == nil {
				return &response_models.QuoteResponse{
					Success: true,
					Message: "Quote of the day",
					Data:    &data,
				}, nil
			}
		}
	}

	focus := focusAreas(ent)
	count, err := q.quoteRepo.CountAdminPool(ctx, focus)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if count == 0 {
		return &response_models.QuoteResponse{Success: true, Message: "No quotes found"}, nil
	}

	quote, err := q.quoteRepo.AdminPoolByOffset(ctx, focus, rand.Intn(int(count)))
	if err != nil || quote == nil {
		return nil, utils.ErrDatabaseError
	}

	reacted, err := q.quoteRepo.HasReaction(ctx, userID, quote.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	data := quoteToData(quote)
	data.IsFavourite = reacted
	data.ShareLink = q.shareLink(quote.ID)

	if free {
		// isFavourite and the share link are frozen until the key expires;
		// a reaction toggled later shows up after midnight.
		if encoded, err := json.Marshal(data); err == nil {
			if err := q.cache.Set(ctx, dailyQuoteKey(userID), string(encoded), utils.UntilNextMidnightUTC(q.now())); err != nil {
				log.Printf("daily quote cache write failed for user %s: %v", userID, err)
			}
		}
	}

	return &response_models.QuoteResponse{
		Success: true,
		Message: "Quote of the day",
		Data:    &data,
	}, nil
}

func (q *QuoteService) CreateQuote(ctx context.Context, userID uuid.UUID, req request_models.CreateQuoteRequest) (*response_models.QuoteResponse, error) {
	quote := &db_models.Quote{
		UserID:      userID,
		QuoteText:   req.QuoteText,
		QuoteAuthor: req.QuoteAuthor,
		Reason:      req.Reason,
		Tags:        req.Tags,
	}
	if err := q.quoteRepo.Create(ctx, quote); err != nil {
		return nil, utils.ErrDatabaseError
	}
	data := quoteToData(quote)
	return &response_models.QuoteResponse{
		Success: true,
		Message: "Quote created",
		Data:    &data,
	}, nil
}

func (q *QuoteService) MyQuotes(ctx context.Context, userID uuid.UUID) (*response_models.QuotesResponse, error) {
	quotes, err := q.quoteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := &response_models.QuotesResponse{
		Success: true,
		Message: "Quotes retrieved",
		Data:    make([]response_models.QuoteData, 0, len(quotes)),
	}
	for i := range quotes {
		resp.Data = append(resp.Data, quoteToData(&quotes[i]))
	}
	return resp, nil
}

func (q *QuoteService) GetQuote(ctx context.Context, userID, quoteID uuid.UUID) (*response_models.QuoteResponse, error) {
	quote, err := q.quoteRepo.ByID(ctx, quoteID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if quote == nil {
		return &response_models.QuoteResponse{Success: false, Message: "Quote not found"}, nil
	}
	reacted, err := q.quoteRepo.HasReaction(ctx, userID, quote.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	data := quoteToData(quote)
	data.IsFavourite = reacted
	data.ShareLink = q.shareLink(quote.ID)
	return &response_models.QuoteResponse{
		Success: true,
		Message: "Quote retrieved",
		Data:    &data,
	}, nil
}

func (q *QuoteService) UpdateQuote(ctx context.Context, userID, quoteID uuid.UUID, req request_models.UpdateQuoteRequest) (*response_models.QuoteResponse, error) {
	quote, err := q.quoteRepo.ByIDAndUser(ctx, quoteID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if quote == nil {
		return &response_models.QuoteResponse{Success: false, Message: "Quote not found"}, nil
	}

	if req.QuoteText != "" {
		quote.QuoteText = req.QuoteText
	}
	if req.QuoteAuthor != "" {
		quote.QuoteAuthor = req.QuoteAuthor
	}
	if req.Reason != "" {
		quote.Reason = req.Reason
	}
	if req.Tags != nil {
		quote.Tags = req.Tags
	}
	if err := q.quoteRepo.Update(ctx, quote); err != nil {
		return nil, utils.ErrDatabaseError
	}

	data := quoteToData(quote)
	return &response_models.QuoteResponse{
		Success: true,
		Message: "Quote updated",
		Data:    &data,
	}, nil
}

func (q *QuoteService) DeleteQuote(ctx context.Context, userID, quoteID uuid.UUID) (*response_models.QuoteResponse, error) {
	quote, err := q.quoteRepo.ByIDAndUser(ctx, quoteID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if quote == nil {
		return &response_models.QuoteResponse{Success: false, Message: "Quote not found"}, nil
	}
	if err := q.quoteRepo.Delete(ctx, quoteID); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.QuoteResponse{Success: true, Message: "Quote deleted"}, nil
}

func (q *QuoteService) ToggleReaction(ctx context.Context, userID, quoteID uuid.UUID) (*response_models.ReactionResponse, error) {
	quote, err := q.quoteRepo.ByID(ctx, quoteID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if quote == nil {
		return nil, utils.ErrQuoteNotFound
	}
	reacted, err := q.quoteRepo.ToggleReaction(ctx, userID, quoteID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	message := "Reaction removed"
	if reacted {
		message = "Reaction added"
	}
	return &response_models.ReactionResponse{
		Success: true,
		Message: message,
		Reacted: reacted,
	}, nil
}

func quoteToData(quote *db_models.Quote) response_models.QuoteData {
	return response_models.QuoteData{
		ID:          quote.ID.String(),
		QuoteText:   quote.QuoteText,
		QuoteAuthor: quote.QuoteAuthor,
		Reason:      quote.Reason,
		Tags:        quote.Tags,
		CreatedAt:   time.Unix(quote.CreatedAt, 0).UTC(),
	}
}
