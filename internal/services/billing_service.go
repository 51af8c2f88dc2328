package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"murmur/internal/billing"
	"murmur/internal/models/db_models"
	"murmur/internal/models/response_models"
	"murmur/internal/repositories"
	"murmur/pkg/utils"
)

type BillingServiceInterface interface {
	// HandleWebhook verifies and applies one provider event. Domain-level
	// lookup misses are logged and swallowed so the provider gets an ack;
	// only signature failures surface as errors.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error

	EnsureCustomer(ctx context.Context, userID uuid.UUID) (string, error)
	CreateSetupIntent(ctx context.Context, userID uuid.UUID) (*response_models.SetupIntentResponse, error)
	ListPlans(ctx context.Context) (*response_models.PlansResponse, error)
}

type BillingService struct {
	provider         billing.Provider
	subscriptionRepo repositories.SubscriptionRepository
	userRepo         repositories.UserRepository
	notifier         Notifier
}

func NewBillingService(
	provider billing.Provider,
	subscriptionRepo repositories.SubscriptionRepository,
	userRepo repositories.UserRepository,
	notifier Notifier,
) BillingServiceInterface {
	return &BillingService{
		provider:         provider,
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		notifier:         notifier,
	}
}

func (b *BillingService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := b.provider.ParseEvent(payload, signature)
	if err != nil {
		return utils.ErrBillingError
	}

	switch {
	case event.Subscription != nil:
		b.applySubscriptionEvent(ctx, event.Subscription)
	case event.Invoice != nil:
		b.applyInvoiceEvent(ctx, event.Invoice)
	}
	return nil
}

func (b *BillingService) applySubscriptionEvent(ctx context.Context, ev *billing.SubscriptionEvent) {
	switch ev.Type {
	case billing.EventSubscriptionCreated:
		b.subscriptionCreated(ctx, ev)
	case billing.EventSubscriptionUpdated:
		b.subscriptionUpdated(ctx, ev)
	}
}

func (b *BillingService) subscriptionCreated(ctx context.Context, ev *billing.SubscriptionEvent) {
	user, err := b.userRepo.FindByBillingID(ctx, ev.CustomerID)
	if err != nil {
		log.Printf("subscription created: user lookup failed for customer %s: %v", ev.CustomerID, err)
		return
	}
	if user == nil {
		log.Printf("subscription created: no user for customer %s, dropping event", ev.CustomerID)
		return
	}

	access, err := b.subscriptionRepo.AccessByName(ctx, strings.ToLower(ev.PlanName))
	if err != nil {
		log.Printf("subscription created: access lookup failed for plan %q: %v", ev.PlanName, err)
		return
	}
	if access == nil {
		log.Printf("subscription created: no access tier named %q, dropping event", ev.PlanName)
		return
	}

	sub := &db_models.UserSubscription{
		UserID:               user.ID,
		PlanName:             ev.PlanName,
		PlanID:               ev.PlanID,
		StripeSubscriptionID: ev.SubscriptionID,
		Status:               ev.Status,
		Method:               ev.Method,
		CardLast4:            ev.CardLast4,
		AccessID:             access.ID,
	}
	txn := &db_models.PaymentTransaction{
		UserID:    user.ID,
		Type:      "subscription",
		Provider:  "stripe",
		Status:    db_models.TxnStatusSucceeded,
		RawStatus: ev.Status,
		Amount:    ev.Amount,
		Currency:  ev.Currency,
		OrderID:   ev.SubscriptionID,
	}
	if len(ev.Raw) > 0 {
		txn.Receipt = datatypes.JSON(ev.Raw)
	}
	if err := b.subscriptionRepo.UpsertSubscriptionWithTransaction(ctx, sub, txn, access.SubscriptionName); err != nil {
		log.Printf("subscription created: persist failed for user %s: %v", user.ID, err)
		return
	}

	if ev.CurrentPeriodEnd > 0 {
		if err := b.userRepo.UpdateSubscriptionValidUntil(ctx, user.ID, ev.CurrentPeriodEnd); err != nil {
			log.Printf("subscription created: valid-until update failed for user %s: %v", user.ID, err)
		}
	}

	if err := b.notifier.NotifyAdmins(ctx, "New subscription",
		fmt.Sprintf("User %s subscribed to the %s plan.", user.Email, access.SubscriptionName)); err != nil {
		log.Printf("subscription created: admin notification failed: %v", err)
	}
}

func (b *BillingService) subscriptionUpdated(ctx context.Context, ev *billing.SubscriptionEvent) {
	if err := b.subscriptionRepo.UpdateStatus(ctx, ev.SubscriptionID, ev.Status); err != nil {
		log.Printf("subscription updated: status update failed for %s: %v", ev.SubscriptionID, err)
		return
	}

	if ev.Status != "canceled" && ev.Status != "unpaid" {
		return
	}

	sub, err := b.subscriptionRepo.SubscriptionByStripeID(ctx, ev.SubscriptionID)
	if err != nil || sub == nil {
		log.Printf("subscription updated: no local subscription %s, dropping downgrade", ev.SubscriptionID)
		return
	}
	// Plan label only; entitlements are recalculated lazily on next resolve.
	if err := b.userRepo.UpdatePlanLabel(ctx, sub.UserID, "free"); err != nil {
		log.Printf("subscription updated: downgrade failed for user %s: %v", sub.UserID, err)
	}
}

func (b *BillingService) applyInvoiceEvent(ctx context.Context, ev *billing.InvoiceEvent) {
	user, err := b.userRepo.FindByBillingID(ctx, ev.CustomerID)
	if err != nil {
		log.Printf("invoice paid: user lookup failed for customer %s: %v", ev.CustomerID, err)
		return
	}
	if user == nil && ev.CustomerEmail != "" {
		user, err = b.userRepo.FindByEmail(ctx, ev.CustomerEmail)
		if err != nil {
			log.Printf("invoice paid: user lookup failed for %s: %v", ev.CustomerEmail, err)
			return
		}
	}
	if user == nil {
		log.Printf("invoice paid: no user for customer %s, dropping event", ev.CustomerID)
		return
	}

	if err := b.userRepo.UpdateSubscriptionValidUntil(ctx, user.ID, ev.PeriodEnd); err != nil {
		log.Printf("invoice paid: valid-until update failed for user %s: %v", user.ID, err)
		return
	}

	if !ev.Renewal {
		return
	}
	sub, err := b.subscriptionRepo.SubscriptionByStripeID(ctx, ev.SubscriptionID)
	if err != nil || sub == nil {
		log.Printf("invoice paid: no local subscription %s for renewal", ev.SubscriptionID)
		return
	}
	if err := b.subscriptionRepo.IncrementTimesRenewed(ctx, sub.ID); err != nil {
		log.Printf("invoice paid: renewal counter update failed for %s: %v", sub.ID, err)
	}
}

func (b *BillingService) EnsureCustomer(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := b.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrUserNotFound
	}
	if user.BillingID != "" {
		return user.BillingID, nil
	}

	customerID, err := b.provider.CreateCustomer(ctx, user.Email, user.Name, user.ID.String())
	if err != nil {
		return "", utils.ErrBillingError
	}
	if err := b.userRepo.UpdateBillingID(ctx, user.ID, customerID); err != nil {
		return "", utils.ErrDatabaseError
	}
	return customerID, nil
}

func (b *BillingService) CreateSetupIntent(ctx context.Context, userID uuid.UUID) (*response_models.SetupIntentResponse, error) {
	customerID, err := b.EnsureCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}
	secret, err := b.provider.CreateSetupIntent(ctx, customerID)
	if err != nil {
		return nil, utils.ErrBillingError
	}
	return &response_models.SetupIntentResponse{
		Success:      true,
		ClientSecret: secret,
	}, nil
}

func (b *BillingService) ListPlans(ctx context.Context) (*response_models.PlansResponse, error) {
	plans, err := b.provider.ListPlans(ctx)
	if err != nil {
		return nil, utils.ErrBillingError
	}
	resp := &response_models.PlansResponse{
		Success: true,
		Data:    make([]response_models.PlanInfo, 0, len(plans)),
	}
	for _, plan := range plans {
		resp.Data = append(resp.Data, response_models.PlanInfo{
			ID:       plan.ID,
			Name:     plan.Name,
			Amount:   plan.Amount,
			Currency: plan.Currency,
			Interval: plan.Interval,
			Status:   true,
		})
	}
	return resp, nil
}
