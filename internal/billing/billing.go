package billing

import "context"

type EventType string

const (
	EventSubscriptionCreated EventType = "customer.subscription.created"
	EventSubscriptionUpdated EventType = "customer.subscription.updated"
	EventInvoicePaid         EventType = "invoice.paid"
)

// SubscriptionEvent is a provider-neutral view of a subscription webhook.
// Amount is in major units. Raw is the provider's original object payload,
// kept verbatim as the transaction receipt.
type SubscriptionEvent struct {
	Type             EventType
	SubscriptionID   string
	CustomerID       string
	Status           string
	PlanID           string
	PlanName         string
	Amount           *float64
	Currency         string
	Method           string
	CardLast4        string
	CurrentPeriodEnd int64
	Raw              []byte
}

// InvoiceEvent carries a paid invoice. Renewal is true only for recurring
// cycle invoices, not the first charge of a new subscription.
type InvoiceEvent struct {
	CustomerID     string
	CustomerEmail  string
	SubscriptionID string
	PeriodEnd      int64
	Renewal        bool
	AmountPaid     *float64
	Currency       string
}

// Event is the parsed webhook payload. Exactly one of the fields is set;
// both nil means the event type is not one this service consumes.
type Event struct {
	Subscription *SubscriptionEvent
	Invoice      *InvoiceEvent
}

type Plan struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Interval string  `json:"interval"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type Provider interface {
	// ParseEvent verifies the webhook signature and maps the payload to a
	// domain event.
	ParseEvent(payload []byte, signature string) (*Event, error)
	CreateCustomer(ctx context.Context, email, name, userID string) (string, error)
	CreateSetupIntent(ctx context.Context, customerID string) (string, error)
	ListPlans(ctx context.Context) ([]Plan, error)
}
