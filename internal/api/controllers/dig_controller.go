package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"murmur/internal/models/request_models"
	"murmur/internal/services"
	"murmur/pkg/utils"
)

type DigController struct {
	digService services.DigServiceInterface
}

func NewDigController(digService services.DigServiceInterface) *DigController {
	return &DigController{
		digService: digService,
	}
}

// GetAssignedDigs godoc
// @Summary Get the user's current dig assignments
// @Description Weekly set for free users, sequential daily digs for paid users
// @Tags Digs
// @Produce json
// @Success 200 {object} response_models.DigAssignmentResponse
// @Security BearerAuth
// @Router /digs [get]
func (d *DigController) GetAssignedDigs(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := d.digService.GetAssignedDigs(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MarkComplete godoc
// @Summary Mark an assigned dig as completed
// @Tags Digs
// @Produce json
// @Param id path string true "Dig id"
// @Success 200 {object} response_models.DigCompletionResponse
// @Security BearerAuth
// @Router /digs/{id}/complete [post]
func (d *DigController) MarkComplete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	digID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := d.digService.MarkComplete(c.Request.Context(), userID, digID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Progress godoc
// @Summary Get dig completion progress for the current period
// @Tags Digs
// @Produce json
// @Success 200 {object} response_models.DigProgressResponse
// @Security BearerAuth
// @Router /digs/progress [get]
func (d *DigController) Progress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := d.digService.Progress(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SubmitAnswer godoc
// @Summary Record an answer for one dig layer
// @Tags Digs
// @Accept json
// @Produce json
// @Param id path string true "Dig id"
// @Param request body request_models.AnswerLayerRequest true "Answer payload"
// @Success 200 {object} response_models.DigCompletionResponse
// @Security BearerAuth
// @Router /digs/{id}/answers [post]
func (d *DigController) SubmitAnswer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	digID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.AnswerLayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := d.digService.SubmitAnswer(c.Request.Context(), userID, digID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateDig creates a dig with its layers. Admin only.
func (d *DigController) CreateDig(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateDigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	dig, err := d.digService.CreateDig(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dig, "Dig created successfully")
}

// ListDigs lists digs with pagination. Admin only.
func (d *DigController) ListDigs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	digs, err := d.digService.ListDigs(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, digs, "Digs fetched successfully")
}

// DeleteDig removes a dig. Admin only.
func (d *DigController) DeleteDig(c *gin.Context) {
	digID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := d.digService.DeleteDig(c.Request.Context(), digID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Dig deleted successfully")
}
