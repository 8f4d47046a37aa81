package domain

import (
	"errors"
	"time"
)

var ErrAlreadySubscribed = errors.New("email already subscribed")
var ErrSubscriptionNotFound = errors.New("subscription not found")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// Lead is a captured contact-form submission. ID and CreatedAt are
// server-assigned, never client-supplied.
type Lead struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	Message          string    `json:"message,omitempty"`
	PropertyInterest string    `json:"propertyInterest,omitempty"`
	Source           string    `json:"source,omitempty"`
	Consent          bool      `json:"consent"`
	AgentID          string    `json:"agentId,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// EmailSubscription is a newsletter signup. At most one active
// subscription may exist per email.
type EmailSubscription struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// User is an internal account for the authenticated surface. It never
// appears in public responses.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
