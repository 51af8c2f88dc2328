package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"murmur/internal/services"
	"murmur/pkg/utils"
)

// Stripe caps webhook payloads well below this.
const maxWebhookBody = 65536

type BillingController struct {
	billingService services.BillingServiceInterface
}

func NewBillingController(billingService services.BillingServiceInterface) *BillingController {
	return &BillingController{
		billingService: billingService,
	}
}

// Webhook receives Stripe events. Unauthenticated; the signature header is
// the authentication.
func (b *BillingController) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Unreadable payload")
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if err := b.billingService.HandleWebhook(c.Request.Context(), payload, signature); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Webhook verification failed")
		return
	}

	utils.RespondSuccess(c, nil, "received")
}

// CreateSetupIntent godoc
// @Summary Create a payment setup intent for the current user
// @Tags Billing
// @Produce json
// @Success 200 {object} response_models.SetupIntentResponse
// @Security BearerAuth
// @Router /billing/setup-intent [post]
func (b *BillingController) CreateSetupIntent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := b.billingService.CreateSetupIntent(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListPlans godoc
// @Summary List active subscription plans
// @Tags Billing
// @Produce json
// @Success 200 {object} response_models.PlansResponse
// @Router /billing/plans [get]
func (b *BillingController) ListPlans(c *gin.Context) {
	resp, err := b.billingService.ListPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
