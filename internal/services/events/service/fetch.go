package service

import (
	"context"
	"errors"
	"time"

	"eventboard/internal/adapters/ingest/firestore"
	"eventboard/internal/core/board"
	"eventboard/internal/core/catalog"
	perr "eventboard/internal/platform/errors"
	"eventboard/internal/platform/logger"
	"eventboard/internal/platform/metrics"
	"eventboard/internal/services/events/domain"
)

// Fetcher drains the paginated source into normalized records
type Fetcher struct {
	Lister  firestore.Lister
	Catalog *catalog.Catalog
	Fields  Fields
	Metrics *metrics.Metrics

	now func() time.Time
}

// NewFetcher builds a Fetcher reading DefaultFields
func NewFetcher(l firestore.Lister, cat *catalog.Catalog, m *metrics.Metrics) *Fetcher {
	if l == nil {
		panic("events.Fetcher requires a non nil Lister")
	}
	if cat == nil {
		panic("events.Fetcher requires a non nil Catalog")
	}
	return &Fetcher{Lister: l, Catalog: cat, Fields: DefaultFields, Metrics: m, now: time.Now}
}

// FetchAll walks every page and normalizes every document. Any transport,
// decode or normalization failure aborts the walk; the result then carries the
// error and no records, never a partial list
func (f *Fetcher) FetchAll(ctx context.Context) domain.FetchResult {
	log := logger.C(ctx).With().Str("component", "fetch").Logger()
	start := f.now()

	var (
		res     domain.FetchResult
		records []board.Record
	)
	for page, err := range firestore.Pages(ctx, f.Lister) {
		if err != nil {
			res.Err = asFetchError(err)
			break
		}
		res.Pages++
		res.Documents += len(page.Documents)
		f.Metrics.PageFetched(len(page.Documents))
		log.Debug().
			Int("page", res.Pages).
			Int("documents", len(page.Documents)).
			Bool("more", page.NextPageToken != "").
			Msg("page received")

		for _, doc := range page.Documents {
			rec, err := Normalize(doc, f.Catalog, f.Fields)
			if err != nil {
				res.Err = err
				break
			}
			records = append(records, rec)
		}
		if res.Err != nil {
			break
		}
	}

	elapsed := f.now().Sub(start)
	if res.Err != nil {
		code := perr.CodeOf(res.Err)
		f.Metrics.FetchDone(elapsed, code.String())
		log.Error().
			Err(res.Err).
			Str("code", code.String()).
			Bool("retryable", perr.Retryable(res.Err)).
			Int("pages", res.Pages).
			Dur("elapsed", elapsed).
			Msg("fetch aborted")
		return res
	}

	res.Records = records
	f.Metrics.FetchDone(elapsed, "")
	log.Info().
		Int("pages", res.Pages).
		Int("records", len(records)).
		Dur("elapsed", elapsed).
		Msg("fetch complete")
	return res
}

// asFetchError gives foreign errors, context cancellation included, a code
func asFetchError(err error) error {
	if _, ok := perr.As(err); ok {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "fetch interrupted")
	}
	return perr.Wrap(err, perr.ErrorCodeUnknown, "fetch failed")
}
