package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"murmur/internal/models/request_models"
	"murmur/internal/models/response_models"
	"murmur/pkg/cache"
	"murmur/pkg/utils"
)

func newQuoteService(repo *fakeQuoteRepo, ent *response_models.Entitlement) *QuoteService {
	return &QuoteService{
		quoteRepo:    repo,
		entitlements: &fakeEntitlements{ent: ent},
		cache:        cache.NewMemoryStore(),
		baseURL:      "https://app.murmur.test",
		now:          func() time.Time { return fixedNow },
	}
}

func TestQuoteOfTheDayFrozenForFreeTier(t *testing.T) {
	repo := newFakeQuoteRepo()
	quote := repo.addAdminQuote("Breathe.", "Stress")
	svc := newQuoteService(repo, freeEntitlement("Stress"))
	userID := uuid.New()
	ctx := context.Background()

	first, err := svc.QuoteOfTheDay(ctx, userID)
	require.NoError(t, err)
	require.True(t, first.Success)
	require.NotNil(t, first.Data)
	assert.False(t, first.Data.IsFavourite)

	_, err = svc.ToggleReaction(ctx, userID, quote.ID)
	require.NoError(t, err)

	// The cached payload keeps serving until midnight; the reaction does
	// not show up yet.
	second, err := svc.QuoteOfTheDay(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, first.Data.ID, second.Data.ID)
	assert.False(t, second.Data.IsFavourite)
}

func TestQuoteOfTheDayFreshForPaidTier(t *testing.T) {
	repo := newFakeQuoteRepo()
	quote := repo.addAdminQuote("Breathe.", "Stress")
	svc := newQuoteService(repo, paidEntitlement("Stress"))
	userID := uuid.New()
	ctx := context.Background()

	first, err := svc.QuoteOfTheDay(ctx, userID)
	require.NoError(t, err)
	assert.False(t, first.Data.IsFavourite)

	_, err = svc.ToggleReaction(ctx, userID, quote.ID)
	require.NoError(t, err)

	second, err := svc.QuoteOfTheDay(ctx, userID)
	require.NoError(t, err)
	assert.True(t, second.Data.IsFavourite)
}

func TestQuoteOfTheDayHonorsFocusAreas(t *testing.T) {
	repo := newFakeQuoteRepo()
	match := repo.addAdminQuote("Rest well.", "Sleep")
	repo.addAdminQuote("Push on.", "Motivation")
	svc := newQuoteService(repo, freeEntitlement("Sleep"))

	resp, err := svc.QuoteOfTheDay(context.Background(), uuid.New())
	require.NoError(t, err)
	require.NotNil(t, resp.Data)
	assert.Equal(t, match.ID.String(), resp.Data.ID)
}

func TestQuoteOfTheDayEmptyPool(t *testing.T) {
	repo := newFakeQuoteRepo()
	svc := newQuoteService(repo, freeEntitlement("Stress"))

	resp, err := svc.QuoteOfTheDay(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "No quotes found", resp.Message)
	assert.Nil(t, resp.Data)
}

func TestQuoteOfTheDayCarriesShareLink(t *testing.T) {
	repo := newFakeQuoteRepo()
	quote := repo.addAdminQuote("Breathe.", "Stress")
	svc := newQuoteService(repo, paidEntitlement("Stress"))

	resp, err := svc.QuoteOfTheDay(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "https://app.murmur.test/quotes/share/"+quote.ID.String(), resp.Data.ShareLink)
}

func TestToggleReactionAddsThenRemoves(t *testing.T) {
	repo := newFakeQuoteRepo()
	quote := repo.addAdminQuote("Breathe.", "Stress")
	svc := newQuoteService(repo, freeEntitlement())
	userID := uuid.New()
	ctx := context.Background()

	added, err := svc.ToggleReaction(ctx, userID, quote.ID)
	require.NoError(t, err)
	assert.True(t, added.Reacted)
	assert.Equal(t, "Reaction added", added.Message)

	removed, err := svc.ToggleReaction(ctx, userID, quote.ID)
	require.NoError(t, err)
	assert.False(t, removed.Reacted)
	assert.Equal(t, "Reaction removed", removed.Message)
	assert.Empty(t, repo.reactions)
}

func TestToggleReactionUnknownQuote(t *testing.T) {
	svc := newQuoteService(newFakeQuoteRepo(), freeEntitlement())

	_, err := svc.ToggleReaction(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrQuoteNotFound)
}

func TestUpdateQuoteOwnerOnly(t *testing.T) {
	repo := newFakeQuoteRepo()
	owner := uuid.New()
	svc := newQuoteService(repo, freeEntitlement())
	ctx := context.Background()

	created, err := svc.CreateQuote(ctx, owner, request_models.CreateQuoteRequest{QuoteText: "Mine."})
	require.NoError(t, err)
	quoteID := uuid.MustParse(created.Data.ID)

	resp, err := svc.UpdateQuote(ctx, uuid.New(), quoteID, request_models.UpdateQuoteRequest{QuoteText: "Stolen."})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Quote not found", resp.Message)

	mine, err := svc.GetQuote(ctx, owner, quoteID)
	require.NoError(t, err)
	assert.Equal(t, "Mine.", mine.Data.QuoteText)
}

func TestDeleteQuoteOwnerOnly(t *testing.T) {
	repo := newFakeQuoteRepo()
	owner := uuid.New()
	svc := newQuoteService(repo, freeEntitlement())
	ctx := context.Background()

	created, err := svc.CreateQuote(ctx, owner, request_models.CreateQuoteRequest{QuoteText: "Mine."})
	require.NoError(t, err)
	quoteID := uuid.MustParse(created.Data.ID)

	denied, err := svc.DeleteQuote(ctx, uuid.New(), quoteID)
	require.NoError(t, err)
	assert.False(t, denied.Success)

	deleted, err := svc.DeleteQuote(ctx, owner, quoteID)
	require.NoError(t, err)
	assert.True(t, deleted.Success)
	assert.Empty(t, repo.quotes)
}

func TestMyQuotesOnlyOwn(t *testing.T) {
	repo := newFakeQuoteRepo()
	owner := uuid.New()
	svc := newQuoteService(repo, freeEntitlement())
	ctx := context.Background()

	_, err := svc.CreateQuote(ctx, owner, request_models.CreateQuoteRequest{QuoteText: "One."})
	require.NoError(t, err)
	_, err = svc.CreateQuote(ctx, uuid.New(), request_models.CreateQuoteRequest{QuoteText: "Other."})
	require.NoError(t, err)

	resp, err := svc.MyQuotes(ctx, owner)
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "One.", resp.Data[0].QuoteText)
}
