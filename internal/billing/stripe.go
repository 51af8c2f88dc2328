package billing

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"github.com/stripe/stripe-go/v81/webhook"
)

type stripeProvider struct {
	api           *client.API
	webhookSecret string
}

func NewStripeProvider(secretKey, webhookSecret string) Provider {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &stripeProvider{api: api, webhookSecret: webhookSecret}
}

func (p *stripeProvider) ParseEvent(payload []byte, signature string) (*Event, error) {
	event, err := webhook.ConstructEvent(payload, signature, p.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("verify webhook: %w", err)
	}

	switch event.Type {
	case "customer.subscription.created", "customer.subscription.updated":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return nil, fmt.Errorf("decode subscription event: %w", err)
		}
		ev := p.subscriptionEvent(EventType(event.Type), &sub)
		ev.Raw = event.Data.Raw
		return &Event{Subscription: ev}, nil
	case "invoice.paid":
		var inv stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &inv); err != nil {
			return nil, fmt.Errorf("decode invoice event: %w", err)
		}
		return &Event{Invoice: p.invoiceEvent(&inv)}, nil
	default:
		return &Event{}, nil
	}
}

func (p *stripeProvider) subscriptionEvent(kind EventType, sub *stripe.Subscription) *SubscriptionEvent {
	ev := &SubscriptionEvent{
		Type:             kind,
		SubscriptionID:   sub.ID,
		Status:           string(sub.Status),
		CurrentPeriodEnd: sub.CurrentPeriodEnd,
	}
	if sub.Customer != nil {
		ev.CustomerID = sub.Customer.ID
	}
	if sub.Items != nil && len(sub.Items.Data) > 0 {
		price := sub.Items.Data[0].Price
		if price != nil {
			ev.PlanID = price.ID
			ev.Currency = string(price.Currency)
			amount := float64(price.UnitAmount) / 100
			ev.Amount = &amount
			if price.Product != nil {
				ev.PlanName = p.productName(price.Product)
			}
		}
	}
	ev.Method, ev.CardLast4 = p.paymentMethodInfo(sub.DefaultPaymentMethod)
	return ev
}

func (p *stripeProvider) invoiceEvent(inv *stripe.Invoice) *InvoiceEvent {
	ev := &InvoiceEvent{
		CustomerEmail: inv.CustomerEmail,
		PeriodEnd:     inv.PeriodEnd,
		Renewal:       inv.BillingReason == stripe.InvoiceBillingReasonSubscriptionCycle,
		Currency:      string(inv.Currency),
	}
	if inv.Customer != nil {
		ev.CustomerID = inv.Customer.ID
	}
	if inv.Subscription != nil {
		ev.SubscriptionID = inv.Subscription.ID
	}
	paid := float64(inv.AmountPaid) / 100
	ev.AmountPaid = &paid
	return ev
}

// productName resolves the display name, fetching the product when the
// webhook payload carries only the id.
func (p *stripeProvider) productName(product *stripe.Product) string {
	if product.Name != "" {
		return product.Name
	}
	full, err := p.api.Products.Get(product.ID, nil)
	if err != nil {
		return ""
	}
	return full.Name
}

func (p *stripeProvider) paymentMethodInfo(pm *stripe.PaymentMethod) (method, last4 string) {
	if pm == nil {
		return "", ""
	}
	if pm.Card == nil && pm.ID != "" {
		full, err := p.api.PaymentMethods.Get(pm.ID, nil)
		if err != nil {
			return string(pm.Type), ""
		}
		pm = full
	}
	method = string(pm.Type)
	if pm.Card != nil {
		last4 = pm.Card.Last4
	}
	return method, last4
}

func (p *stripeProvider) CreateCustomer(ctx context.Context, email, name, userID string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	params.Context = ctx
	params.AddMetadata("user_id", userID)
	customer, err := p.api.Customers.New(params)
	if err != nil {
		return "", fmt.Errorf("create customer: %w", err)
	}
	return customer.ID, nil
}

func (p *stripeProvider) CreateSetupIntent(ctx context.Context, customerID string) (string, error) {
	params := &stripe.SetupIntentParams{
		Customer: stripe.String(customerID),
	}
	params.Context = ctx
	intent, err := p.api.SetupIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create setup intent: %w", err)
	}
	return intent.ClientSecret, nil
}

func (p *stripeProvider) ListPlans(ctx context.Context) ([]Plan, error) {
	params := &stripe.PriceListParams{
		Active: stripe.Bool(true),
	}
	params.Context = ctx
	params.AddExpand("data.product")

	var plans []Plan
	iter := p.api.Prices.List(params)
	for iter.Next() {
		price := iter.Price()
		if price.Recurring == nil {
			continue
		}
		plan := Plan{
			ID:       price.ID,
			Interval: string(price.Recurring.Interval),
			Amount:   float64(price.UnitAmount) / 100,
			Currency: string(price.Currency),
		}
		if price.Product != nil {
			plan.Name = price.Product.Name
		}
		plans = append(plans, plan)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}
