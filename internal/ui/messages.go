// Package ui provides the Bubble Tea terminal client for the event board
package ui

import "eventboard/internal/services/events/service"

// BoardLoaded is sent once the session's only fetch has finished. Err is a
// setup failure (catalog, client); fetch failures live on the board
type BoardLoaded struct {
	Board *service.Board
	Err   error
}
