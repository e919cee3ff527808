// Package service loads event boards from the paginated source
package service

import (
	"context"
	"time"

	"eventboard/internal/adapters/ingest/firestore"
	"eventboard/internal/core/catalog"
	"eventboard/internal/platform/logger"
	"eventboard/internal/platform/metrics"
	"eventboard/internal/services/events/domain"

	"github.com/google/uuid"
)

// Config holds service settings
type Config struct {
	Policy domain.FailurePolicy
	Fields Fields
}

// Service turns one fetch into one Board
type Service struct {
	fetcher *Fetcher
	cat     *catalog.Catalog
	cfg     Config
	metrics *metrics.Metrics

	now   func() time.Time
	newID func() string
}

// New constructs the service. m may be nil
func New(l firestore.Lister, cat *catalog.Catalog, m *metrics.Metrics, cfg Config) *Service {
	f := NewFetcher(l, cat, m)
	if cfg.Fields != (Fields{}) {
		f.Fields = cfg.Fields
	}
	if cfg.Policy == "" {
		cfg.Policy = domain.PolicySoft
	}
	return &Service{
		fetcher: f,
		cat:     cat,
		cfg:     cfg,
		metrics: m,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Catalog returns the catalog the service classifies with
func (s *Service) Catalog() *catalog.Catalog { return s.cat }

// Load fetches the whole collection and builds the board. It always returns a
// board; failures are shaped by the configured policy
func (s *Service) Load(ctx context.Context) *Board {
	id := s.newID()
	ctx = logger.WithRequest(ctx, "", id)
	start := s.now()

	res := s.fetcher.FetchAll(ctx)

	b := NewBoard(res, s.cat, s.cfg.Policy, domain.LoadMeta{
		LoadID:   id,
		LoadedAt: start,
		Duration: s.now().Sub(start),
	})

	byCat := make(map[string]int, len(b.counts.ByCategory))
	for k, v := range b.counts.ByCategory {
		byCat[string(k)] = v
	}
	s.metrics.BoardLoaded(start, byCat, b.counts.Total)

	logger.C(ctx).Info().
		Str("policy", string(s.cfg.Policy)).
		Bool("failed", b.meta.Failed).
		Int("records", b.Len()).
		Dur("duration", b.meta.Duration).
		Msg("board loaded")
	return b
}
