// Package module defines the minimal contract for a modkit module and the
// bootstrap registry used to cross wire ports
package module

import (
	phttp "eventboard/internal/platform/net/http"
)

// Module mirrors modkit.Module without importing it, so a module can export
// its own ports type without an import cycle
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
