package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"murmur/internal/models/request_models"
	"murmur/internal/services"
	"murmur/pkg/utils"
)

type MurmurationController struct {
	murmurationService services.MurmurationServiceInterface
}

func NewMurmurationController(murmurationService services.MurmurationServiceInterface) *MurmurationController {
	return &MurmurationController{
		murmurationService: murmurationService,
	}
}

// CreateMurmuration godoc
// @Summary Create a murmuration post
// @Description Text, audio or image post; media goes in the "media" form field
// @Tags Murmurations
// @Accept mpfd
// @Produce json
// @Success 200 {object} response_models.MurmurationResponse
// @Security BearerAuth
// @Router /murmurations [post]
func (m *MurmurationController) CreateMurmuration(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateMurmurationRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	media, mediaName, err := formFileBytes(c, "media")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid media file")
		return
	}

	resp, err := m.murmurationService.CreateMurmuration(c.Request.Context(), userID, req, media, mediaName)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (m *MurmurationController) ListMurmurations(c *gin.Context) {
	resp, err := m.murmurationService.ListMurmurations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetMurmuration returns one post with its comment thread.
func (m *MurmurationController) GetMurmuration(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	murmurationID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := m.murmurationService.GetMurmuration(c.Request.Context(), userID, murmurationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateComment godoc
// @Summary Comment on a murmuration, optionally as a reply
// @Tags Murmurations
// @Accept json
// @Produce json
// @Param id path string true "Murmuration id"
// @Param request body request_models.CreateCommentRequest true "Comment payload"
// @Success 200 {object} response_models.CommentResponse
// @Security BearerAuth
// @Router /murmurations/{id}/comments [post]
func (m *MurmurationController) CreateComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	murmurationID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := m.murmurationService.CreateComment(c.Request.Context(), userID, murmurationID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (m *MurmurationController) ToggleLike(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	murmurationID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := m.murmurationService.ToggleLike(c.Request.Context(), userID, murmurationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (m *MurmurationController) ToggleCommentLike(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	commentID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := m.murmurationService.ToggleCommentLike(c.Request.Context(), userID, commentID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
