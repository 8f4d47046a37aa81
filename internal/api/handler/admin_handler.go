package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blkboxlogictc/AtlanteRealty/internal/core/domain"
	"github.com/blkboxlogictc/AtlanteRealty/internal/core/ports"
)

// AdminHandler serves the authenticated internal surface: captured leads
// and subscriptions are never exposed publicly.
type AdminHandler struct {
	service ports.IntakeService
}

func NewAdminHandler(service ports.IntakeService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListLeads handles GET /internal/leads.
func (h *AdminHandler) ListLeads(c echo.Context) error {
	leads, err := h.service.Leads(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, leads)
}

// ListSubscriptions handles GET /internal/subscriptions.
func (h *AdminHandler) ListSubscriptions(c echo.Context) error {
	subs, err := h.service.Subscriptions(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, subs)
}

// DeactivateSubscription handles DELETE /internal/subscriptions/:email.
// Deactivation frees the address to subscribe again.
func (h *AdminHandler) DeactivateSubscription(c echo.Context) error {
	err := h.service.DeactivateSubscription(c.Request().Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, domain.ErrSubscriptionNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "subscription not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
