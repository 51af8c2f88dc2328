package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"murmur/internal/models/request_models"
	"murmur/internal/services"
	"murmur/pkg/utils"
)

type JournalController struct {
	journalService services.JournalServiceInterface
}

func NewJournalController(journalService services.JournalServiceInterface) *JournalController {
	return &JournalController{
		journalService: journalService,
	}
}

// CreateJournal godoc
// @Summary Create a text or audio journal entry
// @Tags Journals
// @Accept mpfd
// @Produce json
// @Success 200 {object} response_models.JournalResponse
// @Security BearerAuth
// @Router /journals [post]
func (j *JournalController) CreateJournal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateJournalRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	audio, audioName, err := formFileBytes(c, "audio")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid audio file")
		return
	}

	resp, err := j.journalService.CreateJournal(c.Request.Context(), userID, req, audio, audioName)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (j *JournalController) ListAll(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := j.journalService.ListAll(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (j *JournalController) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := j.journalService.ListMine(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (j *JournalController) ListRecommended(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := j.journalService.ListRecommended(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (j *JournalController) GetJournal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	journalID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := j.journalService.GetJournal(c.Request.Context(), userID, journalID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (j *JournalController) UpdateJournal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	journalID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateJournalRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	audio, audioName, err := formFileBytes(c, "audio")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid audio file")
		return
	}

	resp, err := j.journalService.UpdateJournal(c.Request.Context(), userID, journalID, req, audio, audioName)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (j *JournalController) DeleteJournal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	journalID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := j.journalService.DeleteJournal(c.Request.Context(), userID, journalID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ToggleLike godoc
// @Summary Toggle the like on a journal entry
// @Tags Journals
// @Produce json
// @Param id path string true "Journal id"
// @Success 200 {object} response_models.LikeResponse
// @Security BearerAuth
// @Router /journals/{id}/like [post]
func (j *JournalController) ToggleLike(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	journalID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := j.journalService.ToggleLike(c.Request.Context(), userID, journalID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
