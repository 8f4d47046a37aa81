package ports

import (
	"context"

	"github.com/blkboxlogictc/AtlanteRealty/internal/core/domain"
)

// CatalogSource loads the static reference collections. Implementations are
// fail-open: a collection that cannot be read yields an empty slice, never
// an error, so the public site keeps rendering with empty sections.
type CatalogSource interface {
	Agents(ctx context.Context) []domain.Agent
	Properties(ctx context.Context) []domain.Property
	Projects(ctx context.Context) []domain.Project
	Testimonials(ctx context.Context) []domain.Testimonial
	BlogPosts(ctx context.Context) []domain.BlogPost
}

// CatalogService is the query layer over the catalog source. It is the only
// component that encodes business filtering rules (featured, active,
// published). List results are never nil and preserve load order.
type CatalogService interface {
	ListAgents(ctx context.Context) []domain.Agent
	GetAgent(ctx context.Context, id string) (*domain.Agent, error)
	ListProperties(ctx context.Context) []domain.Property
	ListFeaturedProperties(ctx context.Context) []domain.Property
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
	ListProjects(ctx context.Context) []domain.Project
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	ListTestimonials(ctx context.Context) []domain.Testimonial
	ListBlogPosts(ctx context.Context) []domain.BlogPost
	GetBlogPost(ctx context.Context, slug string) (*domain.BlogPost, error)
}
