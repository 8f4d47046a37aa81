package domain

import (
	"errors"
	"time"
)

var ErrAgentNotFound = errors.New("agent not found")
var ErrPropertyNotFound = errors.New("property not found")
var ErrProjectNotFound = errors.New("project not found")
var ErrBlogPostNotFound = errors.New("blog post not found")

// Agent is a licensed broker or sales agent published on the site.
type Agent struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Title           string   `json:"title"`
	Bio             string   `json:"bio,omitempty"`
	Specialties     []string `json:"specialties,omitempty"`
	License         string   `json:"license,omitempty"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone,omitempty"`
	Image           string   `json:"image,omitempty"`
	ServiceArea     string   `json:"serviceArea,omitempty"`
	YearsExperience int      `json:"yearsExperience,omitempty"`
	TotalSales      string   `json:"totalSales,omitempty"`
	CalendlyLink    string   `json:"calendlyLink,omitempty"`
	IsActive        bool     `json:"isActive"`
}

// Property is a brokerage listing. Status is free-form ("For Sale",
// "Pending", ...) and consumers compare it case-insensitively.
type Property struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Price        int       `json:"price"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zipCode"`
	Bedrooms     int       `json:"bedrooms,omitempty"`
	Bathrooms    int       `json:"bathrooms,omitempty"`
	Sqft         int       `json:"sqft,omitempty"`
	LotSize      string    `json:"lotSize,omitempty"`
	PropertyType string    `json:"propertyType"`
	Status       string    `json:"status"`
	Images       []string  `json:"images,omitempty"`
	Features     []string  `json:"features,omitempty"`
	MLSNumber    string    `json:"mlsNumber,omitempty"`
	AgentID      string    `json:"agentId,omitempty"`
	IsFeatured   bool      `json:"isFeatured"`
	CreatedAt    time.Time `json:"createdAt,omitzero"`
}

// Project is a development consulting engagement showcased on the site.
// Metrics is an opaque blob rendered as-is by the client.
type Project struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description,omitempty"`
	Location        string         `json:"location"`
	ProjectType     string         `json:"projectType"`
	Status          string         `json:"status"`
	Images          []string       `json:"images,omitempty"`
	Metrics         map[string]any `json:"metrics,omitempty"`
	CommunityImpact string         `json:"communityImpact,omitempty"`
	Testimonial     string         `json:"testimonial,omitempty"`
	CompletionDate  time.Time      `json:"completionDate,omitzero"`
	CreatedAt       time.Time      `json:"createdAt,omitzero"`
}

// Testimonial is a client quote. Rating is 1–5.
type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	Quote     string    `json:"quote"`
	Rating    int       `json:"rating"`
	Image     string    `json:"image,omitempty"`
	Service   string    `json:"service"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// BlogPost is an article. Slug is the external lookup key; unpublished
// posts never leave the service.
type BlogPost struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Image       string    `json:"image,omitempty"`
	Author      string    `json:"author"`
	IsPublished bool      `json:"isPublished"`
	PublishedAt time.Time `json:"publishedAt,omitzero"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}
