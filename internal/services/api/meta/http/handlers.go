// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"eventboard/internal/core/version"
	"eventboard/internal/modkit/httpkit"
	perr "eventboard/internal/platform/errors"
	"eventboard/internal/services/events/domain"
)

// Deps are the handler dependencies. Board may be nil before a load
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Board       domain.BoardReader

	now func() time.Time
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.now == nil {
		d.now = time.Now
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/board", h.board)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"eventboard-web"`
	Started string `json:"started"  example:"2026-10-01T13:00:00Z"`
	Now     string `json:"now"      example:"2026-10-01T13:05:00Z"`
}

// ReadyResponse summarizes whether the board loaded
type ReadyResponse struct {
	Status  string `json:"status"   example:"ok"` // ok degraded fail
	Records int    `json:"records"  example:"42"`
	Error   string `json:"error,omitempty" example:"unavailable"`
	Now     string `json:"now"      example:"2026-10-01T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"eventboard-web"`
	Started string `json:"started" example:"2026-10-01T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// BoardResponse is the load metadata of the served board
type BoardResponse struct {
	Meta   domain.LoadMeta `json:"meta"`
	Total  int             `json:"total"   example:"42"`
	Failed bool            `json:"failed"  example:"false"`
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.deps.now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Readiness of the loaded board
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	out := ReadyResponse{Status: "fail", Now: h.deps.now().UTC().Format(time.RFC3339)}
	b := h.deps.Board
	if b == nil {
		out.Error = "no board"
		return out, nil
	}
	out.Records = b.Counts().Total
	switch {
	case b.Meta().Failed:
		// soft failures keep Err nil; the flag still says the fetch broke
		out.Status = "degraded"
		if err := b.Err(); err != nil {
			out.Error = perr.CodeOf(err).String()
		}
	default:
		out.Status = "ok"
	}
	return out, nil
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := h.deps.now().Sub(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// @Summary Load metadata of the served board
// @Tags Meta
// @Produce json
// @Success 200 {object} BoardResponse "ok"
// @Router /meta/board [get]
func (h *handlers) board(_ *http.Request) (any, error) {
	b := h.deps.Board
	if b == nil {
		return nil, perr.NotFoundf("no board loaded")
	}
	m := b.Meta()
	return BoardResponse{Meta: m, Total: b.Counts().Total, Failed: m.Failed}, nil
}
