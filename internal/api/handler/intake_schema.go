package handler

import "github.com/blkboxlogictc/AtlanteRealty/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. Details is populated only for validation failures, one entry
// per failing field.
type errorResponse struct {
	Error   string                  `json:"error"`
	Details []domain.FieldViolation `json:"details,omitempty"`
}

// --- Request / Response types ---

type createLeadRequest struct {
	Name             string `json:"name"             validate:"required"`
	Email            string `json:"email"            validate:"required,email"`
	Phone            string `json:"phone"`
	Message          string `json:"message"`
	PropertyInterest string `json:"propertyInterest"`
	Source           string `json:"source"`
	Consent          bool   `json:"consent"          validate:"eq=true"`
	AgentID          string `json:"agentId"`
}

type createLeadResponse struct {
	Success bool   `json:"success"`
	LeadID  string `json:"leadId"`
}

type subscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type subscribeResponse struct {
	Success        bool   `json:"success"`
	SubscriptionID string `json:"subscriptionId"`
}
