package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/blkboxlogictc/AtlanteRealty/internal/api/metrics"
	"github.com/blkboxlogictc/AtlanteRealty/internal/core/domain"
	"github.com/blkboxlogictc/AtlanteRealty/internal/core/ports"
)

// IntakeService accepts validated lead and subscription payloads, assigns
// server-side identity, stores the records, and forwards them to the
// configured CRM / email-service webhooks without awaiting the outcome.
type IntakeService struct {
	store           ports.LeadStore
	forwarder       ports.WebhookForwarder
	crmWebhookURL   string
	emailWebhookURL string
	logger          zerolog.Logger
}

func NewIntakeService(store ports.LeadStore, forwarder ports.WebhookForwarder, crmWebhookURL, emailWebhookURL string, logger zerolog.Logger) *IntakeService {
	return &IntakeService{
		store:           store,
		forwarder:       forwarder,
		crmWebhookURL:   crmWebhookURL,
		emailWebhookURL: emailWebhookURL,
		logger:          logger,
	}
}

// CreateLead stores a new lead and returns it with generated fields. The
// webhook enqueue can never fail the create.
func (s *IntakeService) CreateLead(ctx context.Context, input ports.CreateLeadInput) (*domain.Lead, error) {
	lead := &domain.Lead{
		ID:               uuid.NewString(),
		Name:             input.Name,
		Email:            input.Email,
		Phone:            input.Phone,
		Message:          input.Message,
		PropertyInterest: input.PropertyInterest,
		Source:           input.Source,
		Consent:          input.Consent,
		AgentID:          input.AgentID,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.store.CreateLead(ctx, lead); err != nil {
		s.logger.Error().Err(err).Msg("failed to store lead")
		return nil, err
	}

	metrics.LeadsCreatedTotal.Inc()
	s.logger.Info().Str("lead_id", lead.ID).Str("source", lead.Source).Msg("lead created")
	s.forwarder.Enqueue("crm", s.crmWebhookURL, lead)

	return lead, nil
}

// CreateSubscription stores a new active subscription. A still-active
// subscription for the same email yields domain.ErrAlreadySubscribed.
func (s *IntakeService) CreateSubscription(ctx context.Context, input ports.CreateSubscriptionInput) (*domain.EmailSubscription, error) {
	sub := &domain.EmailSubscription{
		ID:        uuid.NewString(),
		Email:     input.Email,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.CreateSubscription(ctx, sub); err != nil {
		return nil, err
	}

	metrics.SubscriptionsCreatedTotal.Inc()
	s.logger.Info().Str("subscription_id", sub.ID).Msg("email subscription created")
	s.forwarder.Enqueue("email", s.emailWebhookURL, sub)

	return sub, nil
}

func (s *IntakeService) Leads(ctx context.Context) ([]domain.Lead, error) {
	return s.store.Leads(ctx)
}

func (s *IntakeService) Subscriptions(ctx context.Context) ([]domain.EmailSubscription, error) {
	return s.store.Subscriptions(ctx)
}

// DeactivateSubscription frees an email to subscribe again.
func (s *IntakeService) DeactivateSubscription(ctx context.Context, email string) error {
	if err := s.store.DeactivateSubscription(ctx, email); err != nil {
		return err
	}
	s.logger.Info().Msg("email subscription deactivated")
	return nil
}
