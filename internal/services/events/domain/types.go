// Package domain defines the types and ports of the events service
package domain

import (
	"strings"
	"time"

	"eventboard/internal/core/board"
)

// FailurePolicy decides what a failed fetch looks like to the presentation
type FailurePolicy string

const (
	// PolicySoft shows an empty board and keeps the error in the logs only
	PolicySoft FailurePolicy = "soft"
	// PolicySurface shows an empty board plus an error state
	PolicySurface FailurePolicy = "surface"
)

// ParsePolicy reads a policy name; anything but "surface" is soft
func ParsePolicy(s string) FailurePolicy {
	if strings.EqualFold(strings.TrimSpace(s), string(PolicySurface)) {
		return PolicySurface
	}
	return PolicySoft
}

// FetchResult is the all or nothing outcome of draining the source. When Err
// is set Records is nil; Pages and Documents count what arrived before the abort
type FetchResult struct {
	Records   []board.Record
	Pages     int
	Documents int
	Err       error
}

// LoadMeta describes one board load
type LoadMeta struct {
	LoadID    string        `json:"load_id"`
	LoadedAt  time.Time     `json:"loaded_at"`
	Pages     int           `json:"pages"`
	Documents int           `json:"documents"`
	Duration  time.Duration `json:"duration_ns"`
	Policy    FailurePolicy `json:"policy"`
	Failed    bool          `json:"failed"`
}

// View is the derived, per selection snapshot handed to renderers. Err is set
// only under PolicySurface after a failed load
type View struct {
	Selector board.Selector
	Records  []board.Record
	Counts   board.Counts
	Meta     LoadMeta
	Err      error
}

// Empty reports whether the view has nothing to list
func (v View) Empty() bool { return len(v.Records) == 0 }

// Event is a display ready record
type Event struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	CategoryName string `json:"category_name"`
	CreatedAt    int64  `json:"created_at"`
	Day          string `json:"day"`
	Link         string `json:"link"`
}
