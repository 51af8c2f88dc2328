package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"murmur/internal/models/request_models"
	"murmur/internal/services"
	"murmur/pkg/utils"
)

type QuoteController struct {
	quoteService services.QuoteServiceInterface
}

func NewQuoteController(quoteService services.QuoteServiceInterface) *QuoteController {
	return &QuoteController{
		quoteService: quoteService,
	}
}

// QuoteOfTheDay godoc
// @Summary Get the quote of the day
// @Description Cached per user until UTC midnight on the free tier
// @Tags Quotes
// @Produce json
// @Success 200 {object} response_models.QuoteResponse
// @Security BearerAuth
// @Router /quotes/daily [get]
func (q *QuoteController) QuoteOfTheDay(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := q.quoteService.QuoteOfTheDay(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (q *QuoteController) CreateQuote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := q.quoteService.CreateQuote(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (q *QuoteController) MyQuotes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := q.quoteService.MyQuotes(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (q *QuoteController) GetQuote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	quoteID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := q.quoteService.GetQuote(c.Request.Context(), userID, quoteID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (q *QuoteController) UpdateQuote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	quoteID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := q.quoteService.UpdateQuote(c.Request.Context(), userID, quoteID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (q *QuoteController) DeleteQuote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	quoteID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := q.quoteService.DeleteQuote(c.Request.Context(), userID, quoteID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ToggleReaction godoc
// @Summary Toggle the favourite reaction on a quote
// @Tags Quotes
// @Produce json
// @Param id path string true "Quote id"
// @Success 200 {object} response_models.ReactionResponse
// @Security BearerAuth
// @Router /quotes/{id}/reaction [post]
func (q *QuoteController) ToggleReaction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	quoteID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := q.quoteService.ToggleReaction(c.Request.Context(), userID, quoteID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
