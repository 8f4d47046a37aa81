package service

import (
	"context"

	"github.com/blkboxlogictc/AtlanteRealty/internal/core/domain"
	"github.com/blkboxlogictc/AtlanteRealty/internal/core/ports"
)

// CatalogService is the query layer over the fixture-backed catalog. All
// business filtering lives here: listings honor the entity's visibility
// flag (isActive, isPublished), lookups are case-sensitive exact matches.
type CatalogService struct {
	source ports.CatalogSource
}

func NewCatalogService(source ports.CatalogSource) *CatalogService {
	return &CatalogService{source: source}
}

// ListAgents returns active agents in load order.
func (s *CatalogService) ListAgents(ctx context.Context) []domain.Agent {
	agents := s.source.Agents(ctx)
	out := make([]domain.Agent, 0, len(agents))
	for _, a := range agents {
		if a.IsActive {
			out = append(out, a)
		}
	}
	return out
}

// GetAgent looks an agent up by id over the full collection, inactive
// agents included.
func (s *CatalogService) GetAgent(ctx context.Context, id string) (*domain.Agent, error) {
	for _, a := range s.source.Agents(ctx) {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, domain.ErrAgentNotFound
}

func (s *CatalogService) ListProperties(ctx context.Context) []domain.Property {
	return s.source.Properties(ctx)
}

// ListFeaturedProperties returns the isFeatured subset of ListProperties,
// preserving relative order.
func (s *CatalogService) ListFeaturedProperties(ctx context.Context) []domain.Property {
	properties := s.source.Properties(ctx)
	out := make([]domain.Property, 0, len(properties))
	for _, p := range properties {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out
}

func (s *CatalogService) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	for _, p := range s.source.Properties(ctx) {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrPropertyNotFound
}

func (s *CatalogService) ListProjects(ctx context.Context) []domain.Project {
	return s.source.Projects(ctx)
}

func (s *CatalogService) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	for _, p := range s.source.Projects(ctx) {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

// ListTestimonials returns active testimonials in load order.
func (s *CatalogService) ListTestimonials(ctx context.Context) []domain.Testimonial {
	testimonials := s.source.Testimonials(ctx)
	out := make([]domain.Testimonial, 0, len(testimonials))
	for _, t := range testimonials {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out
}

// ListBlogPosts returns published posts in load order.
func (s *CatalogService) ListBlogPosts(ctx context.Context) []domain.BlogPost {
	posts := s.source.BlogPosts(ctx)
	out := make([]domain.BlogPost, 0, len(posts))
	for _, p := range posts {
		if p.IsPublished {
			out = append(out, p)
		}
	}
	return out
}

// GetBlogPost resolves a slug to its published post. An unpublished post is
// indistinguishable from an absent one.
func (s *CatalogService) GetBlogPost(ctx context.Context, slug string) (*domain.BlogPost, error) {
	for _, p := range s.source.BlogPosts(ctx) {
		if p.Slug == slug && p.IsPublished {
			return &p, nil
		}
	}
	return nil, domain.ErrBlogPostNotFound
}
