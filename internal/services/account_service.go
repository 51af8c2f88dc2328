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
	"murmur/pkg/memcache"
	"murmur/pkg/utils"
)

const resetTokenTTL = 15 * time.Minute

type AccountServiceInterface interface {
	SignUp(ctx context.Context, req request_models.SignUpRequest) error
	Login(ctx context.Context, req request_models.LoginRequest) (string, error)
	Profile(ctx context.Context, userID uuid.UUID) (*response_models.ProfileResponse, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, req request_models.UpdatePreferencesRequest) error
	ForgotPassword(ctx context.Context, req request_models.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req request_models.ResetPasswordRequest) error
}

type AccountService struct {
	userRepo    repositories.UserRepository
	mail        IMailService
	resetTokens memcache.ResetTokenStore
}

func NewAccountService(
	userRepo repositories.UserRepository,
	mail IMailService,
	resetTokens memcache.ResetTokenStore,
) AccountServiceInterface {
	return &AccountService{
		userRepo:    userRepo,
		mail:        mail,
		resetTokens: resetTokens,
	}
}

func (a *AccountService) SignUp(ctx context.Context, req request_models.SignUpRequest) error {
	existing, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	user := &db_models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Name:      req.FirstName + " " + req.LastName,
		Type:      db_models.UserTypeUser,
	}
	if err := a.userRepo.Create(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (string, error) {
	user, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrUserNotFound
	}

	if err := utils.ComparePasswords(user.Password, req.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, string(user.Type))
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}

func (a *AccountService) Profile(ctx context.Context, userID uuid.UUID) (*response_models.ProfileResponse, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	data := &response_models.ProfileData{
		ID:               user.ID.String(),
		Username:         user.Username,
		Email:            user.Email,
		Name:             user.Name,
		Avatar:           user.Avatar,
		Type:             string(user.Type),
		SubscriptionPlan: user.SubscriptionPlan,
	}

	prefs, err := a.userRepo.Preferences(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if prefs != nil {
		data.FocusArea = prefs.FocusArea
		data.ContentFrequency = prefs.ContentFrequency
	}

	return &response_models.ProfileResponse{Success: true, Data: data}, nil
}

func (a *AccountService) UpdatePreferences(ctx context.Context, userID uuid.UUID, req request_models.UpdatePreferencesRequest) error {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	prefs := &db_models.UserPreferences{
		UserID:           userID,
		FocusArea:        req.FocusArea,
		ContentFrequency: req.ContentFrequency,
	}
	if err := a.userRepo.UpsertPreferences(ctx, prefs); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) ForgotPassword(ctx context.Context, req request_models.ForgotPasswordRequest) error {
	user, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		// No hint whether the address exists.
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}
	a.resetTokens.Set(token, user.Email, resetTokenTTL)

	if err := a.mail.SendMailToResetPassword(user.Email, token); err != nil {
		log.Printf("reset mail to %s failed: %v", user.Email, err)
	}
	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, req request_models.ResetPasswordRequest) error {
	email := a.resetTokens.Consume(req.Token)
	if email == "" {
		return utils.ErrInvalidResetToken
	}

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrInvalidResetToken
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if err := a.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
