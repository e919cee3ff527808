// Package api mounts the event board surfaces: the HTML page, the JSON API,
// metrics, docs and the profiler
package api

import (
	"time"

	"eventboard/internal/platform/config"
	"eventboard/internal/platform/logger"
	"eventboard/internal/platform/metrics"
	phttp "eventboard/internal/platform/net/http"

	"eventboard/internal/modkit"
	"eventboard/internal/modkit/httpkit"
	"eventboard/internal/modkit/module"
	"eventboard/internal/modkit/swaggerkit"

	metamod "eventboard/internal/services/api/meta/module"
	eventsmod "eventboard/internal/services/events/module"
	"eventboard/internal/services/events/service"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Metrics        *metrics.Metrics
	Board          *service.Board
	ServiceName    string
	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
	CORSOrigins    []string
	SlowRequest    time.Duration
}

// Mount mounts every surface onto r
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Log:     opt.Logger,
		Cfg:     opt.Config,
		Metrics: opt.Metrics,
	}

	events := eventsmod.New(deps, opt.Board)
	board := module.MustPortsOf[eventsmod.Ports](events).Board

	mods := []module.Module{
		metamod.New(deps, opt.ServiceName, modkit.WithPorts(metamod.Ports{Board: board})),
		events,
	}

	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: opt.CORSOrigins,
		LoadID:      func() string { return board.Meta().LoadID },
		Observer:    opt.Metrics,
		Slow:        opt.SlowRequest,
	})

	// the page shares the API stack so both carry request and load ids
	r.Group(func(g phttp.Router) {
		g.Use(stack...)
		events.MountPage(g)
	})

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.EnableMetrics && opt.Metrics != nil {
		r.Handle("/metrics", opt.Metrics.Handler())
	}
}
