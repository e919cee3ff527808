// Package http provides the http transport for the event board
package http

import (
	"io"
	stdhttp "net/http"

	"eventboard/internal/core/board"
	"eventboard/internal/modkit/httpkit"
	perr "eventboard/internal/platform/errors"
	"eventboard/internal/platform/metrics"
	"eventboard/internal/services/events/domain"
	"eventboard/internal/services/events/render"
)

// Deps are what the handlers read from
type Deps struct {
	Board    domain.BoardReader
	Renderer *render.Renderer
	Metrics  *metrics.Metrics
}

type handlers struct{ Deps }

// Register mounts the JSON endpoints on an API router
func Register(r httpkit.Router, d Deps) {
	h := &handlers{d}
	httpkit.GetQuery[domain.ViewInput](r, "/events", h.events)
	httpkit.Get(r, "/events/counts", h.counts)
	httpkit.Get(r, "/categories", h.categories)
}

// RegisterPage mounts the HTML board at the router root
func RegisterPage(r httpkit.Router, d Deps) {
	h := &handlers{d}
	r.Get("/", h.page)
	r.Head("/", h.page)
}

// @Summary Events for a selector, newest first
// @Tags Events
// @Produce json
// @Param category query string false "category id or all"
// @Success 200 {object} domain.ViewResp "ok"
// @Router /events [get]
func (h *handlers) events(_ *stdhttp.Request, in domain.ViewInput) (any, error) {
	sel, ok := board.ParseSelector(in.Category, h.Board.Catalog())
	if !ok {
		return nil, perr.WithField(perr.Validationf("unknown category %q", in.Category), "category")
	}
	h.Metrics.Rendered("json", string(sel))
	return h.Renderer.Resp(h.Board.View(sel)), nil
}

// @Summary Per category counts and the total
// @Tags Events
// @Produce json
// @Success 200 {object} board.Counts "ok"
// @Router /events/counts [get]
func (h *handlers) counts(*stdhttp.Request) (any, error) {
	return h.Board.Counts(), nil
}

// @Summary The category catalog in order, with counts
// @Tags Events
// @Produce json
// @Success 200 {array} domain.Category "ok"
// @Router /categories [get]
func (h *handlers) categories(*stdhttp.Request) (any, error) {
	return h.Renderer.Categories(h.Board.Counts()), nil
}

// page renders the board. An unknown selector is not an error here; it
// filters to nothing and shows the empty state
func (h *handlers) page(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	sel, _ := board.ParseSelector(r.URL.Query().Get("category"), h.Board.Catalog())
	v := h.Board.View(sel)
	h.Metrics.Rendered("html", string(sel))
	httpkit.HTML(w, r, stdhttp.StatusOK, func(out io.Writer) error {
		return h.Renderer.Page(out, v)
	})
}
