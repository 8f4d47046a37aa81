// Package fixtures implements ports.CatalogSource over a directory of
// static JSON collections. Loads are fail-open: any read or parse failure
// logs a warning and yields an empty collection, never an error, so the
// site degrades to empty sections instead of failing outright.
package fixtures

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/blkboxlogictc/AtlanteRealty/internal/api/metrics"
	"github.com/blkboxlogictc/AtlanteRealty/internal/core/domain"
)

const (
	agentsFile       = "agents.json"
	propertiesFile   = "properties.json"
	projectsFile     = "projects.json"
	testimonialsFile = "testimonials.json"
	blogPostsFile    = "blog-posts.json"
)

// Loader reads one JSON file per collection from dir on every call. No
// caching: a redeployed instance reflects fixture updates on the next read.
type Loader struct {
	dir string
	log zerolog.Logger
}

func NewLoader(dir string, log zerolog.Logger) *Loader {
	return &Loader{dir: dir, log: log}
}

func (l *Loader) Agents(_ context.Context) []domain.Agent {
	return load[domain.Agent](l, agentsFile)
}

func (l *Loader) Properties(_ context.Context) []domain.Property {
	return load[domain.Property](l, propertiesFile)
}

func (l *Loader) Projects(_ context.Context) []domain.Project {
	return load[domain.Project](l, projectsFile)
}

func (l *Loader) Testimonials(_ context.Context) []domain.Testimonial {
	return load[domain.Testimonial](l, testimonialsFile)
}

func (l *Loader) BlogPosts(_ context.Context) []domain.BlogPost {
	return load[domain.BlogPost](l, blogPostsFile)
}

func load[T any](l *Loader, file string) []T {
	raw, err := os.ReadFile(filepath.Join(l.dir, file))
	if err != nil {
		l.log.Warn().Err(err).Str("collection", file).Msg("could not read fixture collection")
		metrics.FixtureLoadFailuresTotal.WithLabelValues(file).Inc()
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		l.log.Warn().Err(err).Str("collection", file).Msg("could not parse fixture collection")
		metrics.FixtureLoadFailuresTotal.WithLabelValues(file).Inc()
		return []T{}
	}
	if records == nil {
		records = []T{}
	}
	return records
}
