package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/blkboxlogictc/AtlanteRealty/internal/core/domain"
	"github.com/blkboxlogictc/AtlanteRealty/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub store + recording forwarder
// ---------------------------------------------------------------------------

type stubLeadStore struct {
	leads     []domain.Lead
	subs      []domain.EmailSubscription
	createErr error // if set, create calls return this error
}

func (s *stubLeadStore) CreateLead(_ context.Context, lead *domain.Lead) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.leads = append(s.leads, *lead)
	return nil
}

func (s *stubLeadStore) Leads(_ context.Context) ([]domain.Lead, error) {
	return append([]domain.Lead(nil), s.leads...), nil
}

func (s *stubLeadStore) CreateSubscription(_ context.Context, sub *domain.EmailSubscription) error {
	if s.createErr != nil {
		return s.createErr
	}
	for _, existing := range s.subs {
		if existing.Email == sub.Email && existing.IsActive {
			return domain.ErrAlreadySubscribed
		}
	}
	s.subs = append(s.subs, *sub)
	return nil
}

func (s *stubLeadStore) Subscriptions(_ context.Context) ([]domain.EmailSubscription, error) {
	return append([]domain.EmailSubscription(nil), s.subs...), nil
}

func (s *stubLeadStore) DeactivateSubscription(_ context.Context, email string) error {
	for i, sub := range s.subs {
		if sub.Email == email && sub.IsActive {
			s.subs[i].IsActive = false
			return nil
		}
	}
	return domain.ErrSubscriptionNotFound
}

type recordedDelivery struct {
	target  string
	url     string
	payload any
}

type recordingForwarder struct {
	deliveries []recordedDelivery
}

func (f *recordingForwarder) Enqueue(target, url string, payload any) {
	if url == "" {
		return
	}
	f.deliveries = append(f.deliveries, recordedDelivery{target: target, url: url, payload: payload})
}

var discardLogger = zerolog.Nop()

func leadInput() ports.CreateLeadInput {
	return ports.CreateLeadInput{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Interested in condo",
		Consent: true,
	}
}

// ---------------------------------------------------------------------------
// CreateLead
// ---------------------------------------------------------------------------

func TestIntakeService_CreateLead_AssignsIdentity(t *testing.T) {
	store := &stubLeadStore{}
	fw := &recordingForwarder{}
	svc := NewIntakeService(store, fw, "https://crm.example.com/hook", "", discardLogger)
	start := time.Now().UTC()

	lead, err := svc.CreateLead(context.Background(), leadInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if lead.ID == "" {
		t.Error("lead id must be server-assigned")
	}
	if lead.CreatedAt.Before(start) {
		t.Errorf("createdAt %v earlier than process start %v", lead.CreatedAt, start)
	}
	if lead.Name != "Jane Doe" || lead.Email != "jane@example.com" {
		t.Errorf("input fields not carried over: %+v", lead)
	}
}

func TestIntakeService_CreateLead_UniqueIDs(t *testing.T) {
	svc := NewIntakeService(&stubLeadStore{}, &recordingForwarder{}, "", "", discardLogger)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		lead, err := svc.CreateLead(context.Background(), leadInput())
		if err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
		if seen[lead.ID] {
			t.Fatalf("duplicate id issued: %s", lead.ID)
		}
		seen[lead.ID] = true
	}
}

func TestIntakeService_CreateLead_RoundTrip(t *testing.T) {
	store := &stubLeadStore{}
	svc := NewIntakeService(store, &recordingForwarder{}, "", "", discardLogger)

	created, err := svc.CreateLead(context.Background(), leadInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	leads, err := svc.Leads(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(leads) != 1 {
		t.Fatalf("expected 1 stored lead, got %d", len(leads))
	}
	if leads[0] != *created {
		t.Errorf("stored lead differs from created record:\n stored %+v\ncreated %+v", leads[0], *created)
	}
}

func TestIntakeService_CreateLead_ForwardsStoredRecord(t *testing.T) {
	fw := &recordingForwarder{}
	svc := NewIntakeService(&stubLeadStore{}, fw, "https://crm.example.com/hook", "", discardLogger)

	lead, _ := svc.CreateLead(context.Background(), leadInput())

	if len(fw.deliveries) != 1 {
		t.Fatalf("expected 1 webhook enqueue, got %d", len(fw.deliveries))
	}
	d := fw.deliveries[0]
	if d.target != "crm" || d.url != "https://crm.example.com/hook" {
		t.Errorf("wrong delivery destination: %+v", d)
	}
	forwarded, ok := d.payload.(*domain.Lead)
	if !ok || forwarded.ID != lead.ID {
		t.Errorf("webhook must carry the full stored record, got %+v", d.payload)
	}
}

func TestIntakeService_CreateLead_StoreError(t *testing.T) {
	store := &stubLeadStore{createErr: errors.New("store unavailable")}
	fw := &recordingForwarder{}
	svc := NewIntakeService(store, fw, "https://crm.example.com/hook", "", discardLogger)

	if _, err := svc.CreateLead(context.Background(), leadInput()); err == nil {
		t.Fatal("expected error when store fails, got nil")
	}
	if len(fw.deliveries) != 0 {
		t.Error("failed create must not trigger a webhook")
	}
}

// ---------------------------------------------------------------------------
// CreateSubscription
// ---------------------------------------------------------------------------

func TestIntakeService_CreateSubscription_Success(t *testing.T) {
	fw := &recordingForwarder{}
	svc := NewIntakeService(&stubLeadStore{}, fw, "", "https://mail.example.com/hook", discardLogger)

	sub, err := svc.CreateSubscription(context.Background(), ports.CreateSubscriptionInput{Email: "a@b.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sub.ID == "" || !sub.IsActive || sub.CreatedAt.IsZero() {
		t.Errorf("server-assigned fields missing: %+v", sub)
	}
	if len(fw.deliveries) != 1 || fw.deliveries[0].target != "email" {
		t.Errorf("expected one delivery to the email target, got %+v", fw.deliveries)
	}
}

func TestIntakeService_CreateSubscription_DuplicateActive(t *testing.T) {
	fw := &recordingForwarder{}
	svc := NewIntakeService(&stubLeadStore{}, fw, "", "https://mail.example.com/hook", discardLogger)

	if _, err := svc.CreateSubscription(context.Background(), ports.CreateSubscriptionInput{Email: "a@b.com"}); err != nil {
		t.Fatalf("first subscribe failed: %v", err)
	}

	_, err := svc.CreateSubscription(context.Background(), ports.CreateSubscriptionInput{Email: "a@b.com"})
	if !errors.Is(err, domain.ErrAlreadySubscribed) {
		t.Fatalf("expected ErrAlreadySubscribed, got %v", err)
	}
	if len(fw.deliveries) != 1 {
		t.Error("rejected duplicate must not trigger a webhook")
	}
}

func TestIntakeService_Resubscribe_AfterDeactivation(t *testing.T) {
	svc := NewIntakeService(&stubLeadStore{}, &recordingForwarder{}, "", "", discardLogger)
	ctx := context.Background()

	if _, err := svc.CreateSubscription(ctx, ports.CreateSubscriptionInput{Email: "a@b.com"}); err != nil {
		t.Fatalf("first subscribe failed: %v", err)
	}
	if err := svc.DeactivateSubscription(ctx, "a@b.com"); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if _, err := svc.CreateSubscription(ctx, ports.CreateSubscriptionInput{Email: "a@b.com"}); err != nil {
		t.Fatalf("resubscribe after deactivation must succeed, got %v", err)
	}
}

func TestIntakeService_DeactivateSubscription_NotFound(t *testing.T) {
	svc := NewIntakeService(&stubLeadStore{}, &recordingForwarder{}, "", "", discardLogger)

	err := svc.DeactivateSubscription(context.Background(), "nosuch@b.com")
	if !errors.Is(err, domain.ErrSubscriptionNotFound) {
		t.Fatalf("expected ErrSubscriptionNotFound, got %v", err)
	}
}
