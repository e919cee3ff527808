// Package module wires the event board into the API and the page root
package module

import (
	"net/http"

	"eventboard/internal/modkit"
	"eventboard/internal/modkit/httpkit"
	str "eventboard/internal/platform/strings"
	"eventboard/internal/services/events/domain"
	eventshttp "eventboard/internal/services/events/http"
	"eventboard/internal/services/events/render"
	"eventboard/internal/services/events/service"
)

// Ports exposed by the events module
type Ports struct {
	Board domain.BoardReader
}

// Module implements modkit.Module for a loaded board
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	handlers eventshttp.Deps
	register func(httpkit.Router)
	ports    Ports
}

// New builds the module around a board that is already loaded. Render
// settings come from deps.Cfg
func New(deps modkit.Deps, b *service.Board, opts ...modkit.Option) *Module {
	if b == nil {
		panic("events module requires a non nil Board")
	}
	built := modkit.Build(append([]modkit.Option{
		modkit.WithName("events"),
	}, opts...)...)

	o := FromConfig(deps.Cfg)
	m := &Module{
		deps:   deps,
		name:   built.Name,
		prefix: built.Prefix,
		mws:    built.Mw,
		handlers: eventshttp.Deps{
			Board:    b,
			Renderer: render.New(b.Catalog(), o.Render),
			Metrics:  deps.Metrics,
		},
		ports: Ports{Board: b},
	}
	external := built.Register
	m.register = func(r httpkit.Router) {
		eventshttp.Register(r, m.handlers)
		external(r)
	}
	return m
}

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	modkit.Mount(r, m.prefix, m.mws, m.register)
}

// MountPage mounts the HTML board at the root of r
func (m *Module) MountPage(r httpkit.Router) {
	eventshttp.RegisterPage(r, m.handlers)
}

// Renderer returns the renderer the handlers use
func (m *Module) Renderer() *render.Renderer { return m.handlers.Renderer }

// Name satisfies modkit.Module
func (m *Module) Name() string { return str.MustString(m.name, "events") }

// Prefix returns the mount prefix; empty mounts in place
func (m *Module) Prefix() string {
	if m.prefix == "" {
		return ""
	}
	return str.MustPrefix(m.prefix)
}

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }
