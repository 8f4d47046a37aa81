// Package memstore holds the mutable intake records (leads, email
// subscriptions, internal users) in process-private maps. Everything is
// lost on restart; durability is explicitly not part of the contract.
package memstore

import (
	"context"
	"sync"

	"github.com/blkboxlogictc/AtlanteRealty/internal/core/domain"
)

// Store implements ports.LeadStore and ports.UserStore. One mutex guards
// all collections, so the duplicate-subscription check and its insert are
// atomic within the process. Listings come back in insertion order.
type Store struct {
	mu sync.RWMutex

	leads     map[string]domain.Lead
	leadOrder []string

	subs     map[string]domain.EmailSubscription
	subOrder []string

	users map[string]domain.User
}

func New() *Store {
	return &Store{
		leads: make(map[string]domain.Lead),
		subs:  make(map[string]domain.EmailSubscription),
		users: make(map[string]domain.User),
	}
}

func (s *Store) CreateLead(_ context.Context, lead *domain.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.leads[lead.ID] = *lead
	s.leadOrder = append(s.leadOrder, lead.ID)
	return nil
}

func (s *Store) Leads(_ context.Context) ([]domain.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Lead, 0, len(s.leadOrder))
	for _, id := range s.leadOrder {
		out = append(out, s.leads[id])
	}
	return out, nil
}

// CreateSubscription inserts sub unless an active subscription already
// exists for the exact email.
func (s *Store) CreateSubscription(_ context.Context, sub *domain.EmailSubscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.subs {
		if existing.Email == sub.Email && existing.IsActive {
			return domain.ErrAlreadySubscribed
		}
	}

	s.subs[sub.ID] = *sub
	s.subOrder = append(s.subOrder, sub.ID)
	return nil
}

func (s *Store) Subscriptions(_ context.Context) ([]domain.EmailSubscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.EmailSubscription, 0, len(s.subOrder))
	for _, id := range s.subOrder {
		out = append(out, s.subs[id])
	}
	return out, nil
}

// DeactivateSubscription clears the active flag on the subscription for
// email, freeing the address to subscribe again.
func (s *Store) DeactivateSubscription(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sub := range s.subs {
		if sub.Email == email && sub.IsActive {
			sub.IsActive = false
			s.subs[id] = sub
			return nil
		}
	}
	return domain.ErrSubscriptionNotFound
}

func (s *Store) CreateUser(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return domain.ErrUserExists
		}
	}

	s.users[user.ID] = *user
	return nil
}

func (s *Store) FindUserByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
