package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"murmur/internal/models/db_models"
	"murmur/internal/models/request_models"
	"murmur/internal/models/response_models"
	"murmur/internal/repositories"
	"murmur/pkg/storage"
	"murmur/pkg/utils"
)

type MurmurationServiceInterface interface {
	CreateMurmuration(ctx context.Context, userID uuid.UUID, req request_models.CreateMurmurationRequest, media []byte, mediaName string) (*response_models.MurmurationResponse, error)
	ListMurmurations(ctx context.Context) (*response_models.MurmurationsResponse, error)
	GetMurmuration(ctx context.Context, requesterID, murmurationID uuid.UUID) (*response_models.MurmurationResponse, error)
	CreateComment(ctx context.Context, userID, murmurationID uuid.UUID, req request_models.CreateCommentRequest) (*response_models.CommentResponse, error)
	ToggleLike(ctx context.Context, userID, murmurationID uuid.UUID) (*response_models.LikeResponse, error)
	ToggleCommentLike(ctx context.Context, userID, commentID uuid.UUID) (*response_models.LikeResponse, error)
}

type MurmurationService struct {
	murmurationRepo repositories.MurmurationRepository
	userRepo        repositories.UserRepository
	store           storage.ObjectStore
}

func NewMurmurationService(
	murmurationRepo repositories.MurmurationRepository,
	userRepo repositories.UserRepository,
	store storage.ObjectStore,
) MurmurationServiceInterface {
	return &MurmurationService{
		murmurationRepo: murmurationRepo,
		userRepo:        userRepo,
		store:           store,
	}
}

// validateMurmuration enforces the per-type field rules before anything is
// stored.
func validateMurmuration(req request_models.CreateMurmurationRequest, mediaLen int) string {
	if strings.TrimSpace(req.Title) == "" {
		return "Title is required"
	}
	switch db_models.MurmurationType(req.Type) {
	case db_models.MurmurationTypeText:
		if strings.TrimSpace(req.Text) == "" {
			return "Text posts require text content"
		}
		if mediaLen > 0 {
			return "Text posts cannot carry a media file"
		}
	case db_models.MurmurationTypeAudio:
		if mediaLen == 0 {
			return "Audio posts require an audio file"
		}
	case db_models.MurmurationTypeImage:
		if mediaLen == 0 {
			return "Image posts require an image file"
		}
		if strings.TrimSpace(req.Text) != "" {
			return "Image posts cannot carry text content"
		}
	default:
		return "Unknown murmuration type"
	}
	return ""
}

func (m *MurmurationService) CreateMurmuration(ctx context.Context, userID uuid.UUID, req request_models.CreateMurmurationRequest, media []byte, mediaName string) (*response_models.MurmurationResponse, error) {
	if msg := validateMurmuration(req, len(media)); msg != "" {
		return &response_models.MurmurationResponse{Success: false, Message: msg}, nil
	}

	murmuration := &db_models.Murmuration{
		UserID: userID,
		Type:   db_models.MurmurationType(req.Type),
		Title:  req.Title,
		Text:   req.Text,
	}

	if len(media) > 0 {
		name := utils.RandomString() + "_" + mediaName
		if err := m.store.Put(name, media); err != nil {
			return nil, utils.ErrDatabaseError
		}
		switch murmuration.Type {
		case db_models.MurmurationTypeAudio:
			murmuration.Audio = name
		case db_models.MurmurationTypeImage:
			murmuration.Image = name
		}
	}

	if err := m.murmurationRepo.Create(ctx, murmuration); err != nil {
		return nil, utils.ErrDatabaseError
	}

	data := murmurationToData(murmuration)
	return &response_models.MurmurationResponse{
		Success: true,
		Message: "Murmuration created",
		Data:    &data,
	}, nil
}

func (m *MurmurationService) ListMurmurations(ctx context.Context) (*response_models.MurmurationsResponse, error) {
	list, err := m.murmurationRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := &response_models.MurmurationsResponse{
		Success: true,
		Message: "Murmurations retrieved",
		Data:    make([]response_models.MurmurationData, 0, len(list)),
	}
	for i := range list {
		resp.Data = append(resp.Data, murmurationToData(&list[i]))
	}
	return resp, nil
}

func (m *MurmurationService) GetMurmuration(ctx context.Context, requesterID, murmurationID uuid.UUID) (*response_models.MurmurationResponse, error) {
	murmuration, err := m.murmurationRepo.ByIDWithThread(ctx, murmurationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if murmuration == nil {
		return &response_models.MurmurationResponse{Success: false, Message: "Murmuration not found"}, nil
	}

	data := murmurationToData(murmuration)
	for i := range murmuration.Comments {
		data.Comments = append(data.Comments, commentToData(&murmuration.Comments[i], requesterID))
	}
	return &response_models.MurmurationResponse{
		Success: true,
		Message: "Murmuration retrieved",
		Data:    &data,
	}, nil
}

func (m *MurmurationService) CreateComment(ctx context.Context, userID, murmurationID uuid.UUID, req request_models.CreateCommentRequest) (*response_models.CommentResponse, error) {
	murmuration, err := m.murmurationRepo.ByID(ctx, murmurationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if murmuration == nil {
		return nil, utils.ErrMurmurationNotFound
	}

	comment := &db_models.Comment{
		MurmurationID: murmurationID,
		UserID:        userID,
		Body:          req.Body,
	}

	if req.ReplyToCommentID != nil {
		parentID, err := uuid.Parse(*req.ReplyToCommentID)
		if err != nil {
			return &response_models.CommentResponse{Success: false, Message: "Invalid parent comment id"}, nil
		}
		parent, err := m.murmurationRepo.CommentByID(ctx, parentID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if parent == nil || parent.MurmurationID != murmurationID {
			return nil, utils.ErrCommentNotFound
		}
		// Threads are one level deep: replying to a reply attaches to its
		// top-level parent.
		if parent.ReplyToCommentID != nil {
			parentID = *parent.ReplyToCommentID
		}
		comment.ReplyToCommentID = &parentID
	}

	if err := m.murmurationRepo.CreateComment(ctx, comment); err != nil {
		return nil, utils.ErrDatabaseError
	}

	user, err := m.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user != nil {
		comment.User = *user
	}

	data := commentToData(comment, userID)
	return &response_models.CommentResponse{
		Success: true,
		Message: "Comment created",
		Data:    &data,
	}, nil
}

func (m *MurmurationService) ToggleLike(ctx context.Context, userID, murmurationID uuid.UUID) (*response_models.LikeResponse, error) {
	murmuration, err := m.murmurationRepo.ByID(ctx, murmurationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if murmuration == nil {
		return &response_models.LikeResponse{Success: false, Message: "Murmuration not found"}, nil
	}
	liked, err := m.murmurationRepo.ToggleLike(ctx, userID, murmurationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	message := "Murmuration unliked"
	if liked {
		message = "Murmuration liked"
	}
	return &response_models.LikeResponse{Success: true, Message: message, Liked: liked}, nil
}

func (m *MurmurationService) ToggleCommentLike(ctx context.Context, userID, commentID uuid.UUID) (*response_models.LikeResponse, error) {
	comment, err := m.murmurationRepo.CommentByID(ctx, commentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if comment == nil {
		return &response_models.LikeResponse{Success: false, Message: "Comment not found"}, nil
	}
	liked, err := m.murmurationRepo.ToggleCommentLike(ctx, userID, commentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	message := "Comment unliked"
	if liked {
		message = "Comment liked"
	}
	return &response_models.LikeResponse{Success: true, Message: message, Liked: liked}, nil
}

func murmurationToData(m *db_models.Murmuration) response_models.MurmurationData {
	return response_models.MurmurationData{
		ID:        m.ID.String(),
		CreatedAt: time.Unix(m.CreatedAt, 0).UTC(),
		Type:      string(m.Type),
		Title:     m.Title,
		Text:      m.Text,
		Audio:     m.Audio,
		Image:     m.Image,
		PostCounts: response_models.PostCounts{
			Likes:    int64(len(m.Likes)),
			Comments: int64(len(m.Comments)),
		},
	}
}

func commentToData(c *db_models.Comment, requesterID uuid.UUID) response_models.CommentData {
	data := response_models.CommentData{
		ID:        c.ID.String(),
		Body:      c.Body,
		CreatedAt: time.Unix(c.CreatedAt, 0).UTC(),
		User: response_models.CommentAuthor{
			ID:       c.UserID.String(),
			Name:     c.User.Name,
			Username: c.User.Username,
			Avatar:   c.User.Avatar,
		},
		CommentCounts: response_models.CommentCounts{
			Likes:   int64(len(c.Likes)),
			Replies: int64(len(c.Replies)),
		},
	}
	for _, like := range c.Likes {
		if like.UserID == requesterID {
			data.IsLiked = true
			break
		}
	}
	for i := range c.Replies {
		data.Replies = append(data.Replies, commentToData(&c.Replies[i], requesterID))
	}
	return data
}
