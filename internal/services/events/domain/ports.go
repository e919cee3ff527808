package domain

import (
	"eventboard/internal/core/board"
	"eventboard/internal/core/catalog"
)

// BoardReader is the read side of a loaded board. Implementations are
// immutable after construction and safe for concurrent readers
type BoardReader interface {
	View(sel board.Selector) View
	Counts() board.Counts
	Catalog() *catalog.Catalog
	Meta() LoadMeta
	Err() error
}
