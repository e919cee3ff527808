package modkit

import (
	"net/http"

	phttp "eventboard/internal/platform/net/http"
)

// Built is the resolved option set modules read from
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Ports    any
	Register func(phttp.Router)
}

// Build applies opts in order. Later options win
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(phttp.Router) {}
	}
	return Built{
		Name:     c.name,
		Prefix:   c.prefix,
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:    c.ports,
		Register: c.register,
	}
}

// Mount routes a module under prefix, applies its middleware, then runs each
// register func in order. An empty prefix mounts in place
func Mount(r phttp.Router, prefix string, mw []func(http.Handler) http.Handler, register ...func(phttp.Router)) {
	run := func(rr phttp.Router) {
		if len(mw) > 0 {
			rr.Use(mw...)
		}
		for _, fn := range register {
			if fn != nil {
				fn(rr)
			}
		}
	}
	if prefix == "" {
		r.Group(run)
		return
	}
	r.Route(prefix, run)
}
