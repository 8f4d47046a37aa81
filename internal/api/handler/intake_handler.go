package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blkboxlogictc/AtlanteRealty/internal/core/domain"
	"github.com/blkboxlogictc/AtlanteRealty/internal/core/ports"
)

// IntakeHandler handles the lead-capture and newsletter write endpoints.
type IntakeHandler struct {
	service ports.IntakeService
}

func NewIntakeHandler(service ports.IntakeService) *IntakeHandler {
	return &IntakeHandler{service: service}
}

// CreateLead handles POST /api/lead.
//
// @Summary      Capture a lead
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        body  body      createLeadRequest  true  "Lead details (consent must be true)"
// @Success      200   {object}  createLeadResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/lead [post]
func (h *IntakeHandler) CreateLead(c echo.Context) error {
	var req createLeadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(req); err != nil {
		return validationFailure(c, err)
	}

	lead, err := h.service.CreateLead(c.Request().Context(), ports.CreateLeadInput{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Message:          req.Message,
		PropertyInterest: req.PropertyInterest,
		Source:           req.Source,
		Consent:          req.Consent,
		AgentID:          req.AgentID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to create lead"})
	}

	return c.JSON(http.StatusOK, createLeadResponse{Success: true, LeadID: lead.ID})
}

// Subscribe handles POST /api/subscribe.
//
// @Summary      Subscribe an email to the newsletter
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        body  body      subscribeRequest  true  "Subscription details"
// @Success      200   {object}  subscribeResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/subscribe [post]
func (h *IntakeHandler) Subscribe(c echo.Context) error {
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(req); err != nil {
		return validationFailure(c, err)
	}

	sub, err := h.service.CreateSubscription(c.Request().Context(), ports.CreateSubscriptionInput{Email: req.Email})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadySubscribed) {
			return c.JSON(http.StatusConflict, errorResponse{Error: "email already subscribed"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to subscribe email"})
	}

	return c.JSON(http.StatusOK, subscribeResponse{Success: true, SubscriptionID: sub.ID})
}

// validationFailure renders a 400 carrying every failing field.
func validationFailure(c echo.Context, err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Details: ve.Violations})
	}
	return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
}
