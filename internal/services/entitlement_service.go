package services

import (
	"context"

	"github.com/google/uuid"

	"murmur/internal/models/response_models"
	"murmur/internal/repositories"
	"murmur/pkg/utils"
)

type EntitlementServiceInterface interface {
	// Resolve returns nil (no error) when the user has no subscription row.
	Resolve(ctx context.Context, userID uuid.UUID) (*response_models.Entitlement, error)
}

type EntitlementService struct {
	subscriptionRepo repositories.SubscriptionRepository
	userRepo         repositories.UserRepository
}

func NewEntitlementService(
	subscriptionRepo repositories.SubscriptionRepository,
	userRepo repositories.UserRepository,
) EntitlementServiceInterface {
	return &EntitlementService{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
	}
}

func (e *EntitlementService) Resolve(ctx context.Context, userID uuid.UUID) (*response_models.Entitlement, error) {
	sub, err := e.subscriptionRepo.SubscriptionByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, nil
	}

	access := &sub.Access
	if access.SubscriptionName == "" {
		access, err = e.subscriptionRepo.AccessByID(ctx, sub.AccessID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if access == nil {
			return nil, nil
		}
	}

	prefs, err := e.userRepo.Preferences(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	ent := &response_models.Entitlement{
		SubscriptionName: access.SubscriptionName,
		JournalEntries:   response_models.LimitFromCap(access.JournalEntries),
		QuotesPerDay:     response_models.LimitFromCap(access.QuotesPerDay),
		DigsPerWeek:      response_models.LimitFromCap(access.DigsPerWeek),
		MurmurationLimit: access.MurmurationLimit,
		AudioPostJournal: access.AudioPostJournal,
		MeditationAccess: access.MeditationAccess,
		AdService:        access.AdService,
	}

	// Paid tiers never carry numeric caps, whatever the stored row says, and
	// audio posting follows the tier's murmuration flag.
	if !ent.IsFree() {
		ent.JournalEntries = response_models.UnlimitedLimit()
		ent.QuotesPerDay = response_models.UnlimitedLimit()
		ent.DigsPerWeek = response_models.UnlimitedLimit()
		ent.AudioPostJournal = access.MurmurationLimit
	}

	if prefs != nil {
		ent.FocusArea = prefs.FocusArea
		ent.ContentFrequency = prefs.ContentFrequency
	}

	return ent, nil
}
