package service

import (
	"eventboard/internal/core/board"
	"eventboard/internal/core/catalog"
	"eventboard/internal/services/events/domain"
)

// Board is one loaded session: records sorted once, counts taken once, never
// mutated afterwards. Safe for concurrent readers
type Board struct {
	records []board.Record
	counts  board.Counts
	cat     *catalog.Catalog
	meta    domain.LoadMeta
	err     error
}

var _ domain.BoardReader = (*Board)(nil)

// NewBoard applies policy to a fetch result. A failed fetch yields an empty
// board; under PolicySurface the error is kept for the presentation
func NewBoard(res domain.FetchResult, cat *catalog.Catalog, policy domain.FailurePolicy, meta domain.LoadMeta) *Board {
	b := &Board{cat: cat, meta: meta}
	b.meta.Policy = policy
	b.meta.Pages = res.Pages
	b.meta.Documents = res.Documents

	if res.Err != nil {
		b.meta.Failed = true
		if policy == domain.PolicySurface {
			b.err = res.Err
		}
	} else {
		b.records = board.Sort(res.Records)
	}
	b.counts = board.Count(b.records, cat)
	return b
}

// View derives the selection view. The board itself is untouched
func (b *Board) View(sel board.Selector) domain.View {
	return domain.View{
		Selector: sel,
		Records:  board.Filter(b.records, sel),
		Counts:   b.counts,
		Meta:     b.meta,
		Err:      b.err,
	}
}

// Records returns a copy of every record, newest first
func (b *Board) Records() []board.Record { return board.Filter(b.records, board.All) }

// Counts returns the per category counts
func (b *Board) Counts() board.Counts { return b.counts }

// Catalog returns the catalog records were classified with
func (b *Board) Catalog() *catalog.Catalog { return b.cat }

// Meta returns the load metadata
func (b *Board) Meta() domain.LoadMeta { return b.meta }

// Err returns the surfaced fetch error, nil under PolicySoft
func (b *Board) Err() error { return b.err }

// Len returns the number of records
func (b *Board) Len() int { return len(b.records) }
