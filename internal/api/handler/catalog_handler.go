package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blkboxlogictc/AtlanteRealty/internal/core/domain"
	"github.com/blkboxlogictc/AtlanteRealty/internal/core/ports"
)

// CatalogHandler serves the read-only reference data endpoints.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListAgents handles GET /api/agents.
//
// @Summary      List active agents
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Agent
// @Router       /api/agents [get]
func (h *CatalogHandler) ListAgents(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.ListAgents(c.Request().Context()))
}

// GetAgent handles GET /api/agents/:id.
//
// @Summary      Get an agent by id
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Agent id"
// @Success      200  {object}  domain.Agent
// @Failure      404  {object}  errorResponse
// @Router       /api/agents/{id} [get]
func (h *CatalogHandler) GetAgent(c echo.Context) error {
	agent, err := h.service.GetAgent(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrAgentNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "agent not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, agent)
}

// ListProperties handles GET /api/properties.
func (h *CatalogHandler) ListProperties(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.ListProperties(c.Request().Context()))
}

// ListFeaturedProperties handles GET /api/properties/featured.
func (h *CatalogHandler) ListFeaturedProperties(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.ListFeaturedProperties(c.Request().Context()))
}

// GetProperty handles GET /api/properties/:id.
func (h *CatalogHandler) GetProperty(c echo.Context) error {
	property, err := h.service.GetProperty(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "property not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, property)
}

// ListProjects handles GET /api/projects.
func (h *CatalogHandler) ListProjects(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.ListProjects(c.Request().Context()))
}

// GetProject handles GET /api/projects/:id.
func (h *CatalogHandler) GetProject(c echo.Context) error {
	project, err := h.service.GetProject(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "project not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// ListTestimonials handles GET /api/testimonials.
func (h *CatalogHandler) ListTestimonials(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.ListTestimonials(c.Request().Context()))
}

// ListBlogPosts handles GET /api/blog. Only published posts are returned.
func (h *CatalogHandler) ListBlogPosts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.ListBlogPosts(c.Request().Context()))
}

// GetBlogPost handles GET /api/blog/:slug. An unpublished slug is a 404,
// identical to a slug that does not exist.
func (h *CatalogHandler) GetBlogPost(c echo.Context) error {
	post, err := h.service.GetBlogPost(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrBlogPostNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "blog post not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, post)
}
