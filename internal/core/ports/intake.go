package ports

import (
	"context"

	"github.com/blkboxlogictc/AtlanteRealty/internal/core/domain"
)

// CreateLeadInput is a validated lead payload. Validation happens at the
// transport boundary; by the time a service sees this, required fields are
// present and consent is true.
type CreateLeadInput struct {
	Name             string
	Email            string
	Phone            string
	Message          string
	PropertyInterest string
	Source           string
	Consent          bool
	AgentID          string
}

// CreateSubscriptionInput is a validated newsletter signup payload.
type CreateSubscriptionInput struct {
	Email string
}

// LeadStore owns the mutable intake records. Records live only for the
// process lifetime; callers must not assume durability across restarts.
type LeadStore interface {
	CreateLead(ctx context.Context, lead *domain.Lead) error
	Leads(ctx context.Context) ([]domain.Lead, error)

	// CreateSubscription rejects with domain.ErrAlreadySubscribed when an
	// active subscription already exists for the exact email. The check and
	// the insert happen under one lock.
	CreateSubscription(ctx context.Context, sub *domain.EmailSubscription) error
	Subscriptions(ctx context.Context) ([]domain.EmailSubscription, error)
	DeactivateSubscription(ctx context.Context, email string) error
}

// IntakeService accepts validated write requests, assigns server-side
// identity and timestamps, and triggers best-effort webhook forwarding.
type IntakeService interface {
	CreateLead(ctx context.Context, input CreateLeadInput) (*domain.Lead, error)
	CreateSubscription(ctx context.Context, input CreateSubscriptionInput) (*domain.EmailSubscription, error)
	Leads(ctx context.Context) ([]domain.Lead, error)
	Subscriptions(ctx context.Context) ([]domain.EmailSubscription, error)
	DeactivateSubscription(ctx context.Context, email string) error
}

// WebhookForwarder delivers payloads to an external URL at most once,
// detached from the caller. An empty url makes Enqueue a no-op; a full
// queue or failed delivery is logged and swallowed.
type WebhookForwarder interface {
	Enqueue(target, url string, payload any)
}
