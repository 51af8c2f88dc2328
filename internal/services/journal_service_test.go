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
)

func newJournalService(repo *fakeJournalRepo, store *fakeObjectStore, ent *response_models.Entitlement) *JournalService {
	return &JournalService{
		journalRepo:  repo,
		entitlements: &fakeEntitlements{ent: ent},
		store:        store,
		now:          func() time.Time { return fixedNow },
	}
}

func textJournal(title string) request_models.CreateJournalRequest {
	return request_models.CreateJournalRequest{Type: "Text", Title: title, Body: "body"}
}

func TestCreateJournalDailyCap(t *testing.T) {
	repo := newFakeJournalRepo()
	svc := newJournalService(repo, newFakeObjectStore(), freeEntitlement())
	userID := uuid.New()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		resp, err := svc.CreateJournal(ctx, userID, textJournal("entry"), nil, "")
		require.NoError(t, err)
		require.True(t, resp.Success)
	}

	resp, err := svc.CreateJournal(ctx, userID, textJournal("entry"), nil, "")
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Daily journal limit reached", resp.Message)
	assert.Len(t, repo.journals, 2)
}

func TestCreateJournalUnlimitedForPaidTier(t *testing.T) {
	repo := newFakeJournalRepo()
	svc := newJournalService(repo, newFakeObjectStore(), paidEntitlement())
	userID := uuid.New()

	for i := 0; i < 5; i++ {
		resp, err := svc.CreateJournal(context.Background(), userID, textJournal("entry"), nil, "")
		require.NoError(t, err)
		require.True(t, resp.Success)
	}
	assert.Len(t, repo.journals, 5)
}

func TestCreateJournalNoEntitlementDenied(t *testing.T) {
	svc := newJournalService(newFakeJournalRepo(), newFakeObjectStore(), nil)

	resp, err := svc.CreateJournal(context.Background(), uuid.New(), textJournal("entry"), nil, "")
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Daily journal limit reached", resp.Message)
}

func TestAudioJournalRequiresSubscription(t *testing.T) {
	svc := newJournalService(newFakeJournalRepo(), newFakeObjectStore(), freeEntitlement())

	req := request_models.CreateJournalRequest{Type: "Audio", Title: "voice note"}
	resp, err := svc.CreateJournal(context.Background(), uuid.New(), req, []byte("audio"), "note.mp3")
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Audio journaling requires an active subscription", resp.Message)
}

func TestAudioJournalStoresFile(t *testing.T) {
	repo := newFakeJournalRepo()
	store := newFakeObjectStore()
	svc := newJournalService(repo, store, paidEntitlement())

	req := request_models.CreateJournalRequest{Type: "Audio", Title: "voice note"}
	resp, err := svc.CreateJournal(context.Background(), uuid.New(), req, []byte("audio"), "note.mp3")
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.Len(t, store.objects, 1)
	assert.Contains(t, resp.Data.AudioURL, "/storage/")
}

func TestAudioJournalRequiresFile(t *testing.T) {
	svc := newJournalService(newFakeJournalRepo(), newFakeObjectStore(), paidEntitlement())

	req := request_models.CreateJournalRequest{Type: "Audio", Title: "voice note"}
	resp, err := svc.CreateJournal(context.Background(), uuid.New(), req, nil, "")
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Audio file is required for audio journals", resp.Message)
}

func TestDeleteJournalRemovesAudio(t *testing.T) {
	repo := newFakeJournalRepo()
	store := newFakeObjectStore()
	svc := newJournalService(repo, store, paidEntitlement())
	userID := uuid.New()
	ctx := context.Background()

	req := request_models.CreateJournalRequest{Type: "Audio", Title: "voice note"}
	created, err := svc.CreateJournal(ctx, userID, req, []byte("audio"), "note.mp3")
	require.NoError(t, err)

	deleted, err := svc.DeleteJournal(ctx, userID, uuid.MustParse(created.Data.ID))
	require.NoError(t, err)
	assert.True(t, deleted.Success)
	assert.Empty(t, store.objects)
	assert.Empty(t, repo.journals)
}

func TestUpdateJournalTypeSwitchDropsAudio(t *testing.T) {
	repo := newFakeJournalRepo()
	store := newFakeObjectStore()
	svc := newJournalService(repo, store, paidEntitlement())
	userID := uuid.New()
	ctx := context.Background()

	created, err := svc.CreateJournal(ctx, userID, request_models.CreateJournalRequest{Type: "Audio", Title: "voice note"}, []byte("audio"), "note.mp3")
	require.NoError(t, err)

	updated, err := svc.UpdateJournal(ctx, userID, uuid.MustParse(created.Data.ID), request_models.UpdateJournalRequest{Type: "Text", Body: "typed instead"}, nil, "")
	require.NoError(t, err)
	require.True(t, updated.Success)
	assert.Empty(t, updated.Data.Audio)
	assert.Empty(t, store.objects)
}

func TestUpdateJournalOwnerOnly(t *testing.T) {
	repo := newFakeJournalRepo()
	svc := newJournalService(repo, newFakeObjectStore(), freeEntitlement())
	ctx := context.Background()

	created, err := svc.CreateJournal(ctx, uuid.New(), textJournal("entry"), nil, "")
	require.NoError(t, err)

	resp, err := svc.UpdateJournal(ctx, uuid.New(), uuid.MustParse(created.Data.ID), request_models.UpdateJournalRequest{Title: "taken"}, nil, "")
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Journal not found", resp.Message)
}

func TestToggleLikeTwiceLeavesNoRow(t *testing.T) {
	repo := newFakeJournalRepo()
	svc := newJournalService(repo, newFakeObjectStore(), freeEntitlement())
	userID := uuid.New()
	ctx := context.Background()

	created, err := svc.CreateJournal(ctx, userID, textJournal("entry"), nil, "")
	require.NoError(t, err)
	journalID := uuid.MustParse(created.Data.ID)

	liked, err := svc.ToggleLike(ctx, userID, journalID)
	require.NoError(t, err)
	assert.True(t, liked.Liked)
	assert.Equal(t, "Journal liked", liked.Message)

	unliked, err := svc.ToggleLike(ctx, userID, journalID)
	require.NoError(t, err)
	assert.False(t, unliked.Liked)
	assert.Equal(t, "Journal unliked", unliked.Message)
	assert.Empty(t, repo.likes)
}

func TestGetJournalCountsLikes(t *testing.T) {
	repo := newFakeJournalRepo()
	svc := newJournalService(repo, newFakeObjectStore(), freeEntitlement())
	owner := uuid.New()
	ctx := context.Background()

	created, err := svc.CreateJournal(ctx, owner, textJournal("entry"), nil, "")
	require.NoError(t, err)
	journalID := uuid.MustParse(created.Data.ID)

	_, err = svc.ToggleLike(ctx, uuid.New(), journalID)
	require.NoError(t, err)
	_, err = svc.ToggleLike(ctx, owner, journalID)
	require.NoError(t, err)

	resp, err := svc.GetJournal(ctx, owner, journalID)
	require.NoError(t, err)
	assert.True(t, resp.Data.IsLiked)
	assert.Equal(t, int64(2), resp.Data.LikeCount)
}

func TestListRecommendedExcludesOwn(t *testing.T) {
	repo := newFakeJournalRepo()
	svc := newJournalService(repo, newFakeObjectStore(), freeEntitlement())
	userID := uuid.New()
	ctx := context.Background()

	_, err := svc.CreateJournal(ctx, userID, textJournal("mine"), nil, "")
	require.NoError(t, err)
	_, err = svc.CreateJournal(ctx, uuid.New(), textJournal("theirs"), nil, "")
	require.NoError(t, err)

	resp, err := svc.ListRecommended(ctx, userID)
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "theirs", resp.Data[0].Title)
}
