// @title         Eventboard API
// @version       0.1.0
// @description   Read only endpoints over the loaded event board

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventboard/internal/modkit"
	"eventboard/internal/platform/config"
	"eventboard/internal/platform/logger"
	"eventboard/internal/platform/metrics"
	phttp "eventboard/internal/platform/net/http"

	"eventboard/internal/services/api"
	eventsmod "eventboard/internal/services/events/module"
)

func main() {
	root := config.New()
	webCfg := root.Prefix("CORE_WEB_") // CORE_WEB_API_PORT, CORE_WEB_SWAGGER, ...

	logger.Init(logger.FromEnv())
	l := logger.Named("web")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New(true)
	deps := modkit.Deps{Cfg: root, Log: l, Metrics: m}

	// one fetch per process; a restart is a reload
	loadCtx, cancel := context.WithTimeout(ctx, webCfg.MayDuration("LOAD_TIMEOUT", 2*time.Minute))
	b, err := eventsmod.LoadBoard(loadCtx, deps, eventsmod.FromConfig(root))
	cancel()
	if err != nil {
		l.Fatal().Err(err).Msg("board setup failed")
	}

	srv := phttp.NewServer(webCfg)
	api.Mount(srv.Router(), api.Options{
		Config:         root,
		Logger:         l,
		Metrics:        m,
		Board:          b,
		ServiceName:    "eventboard-web",
		EnableSwagger:  webCfg.MayBool("SWAGGER", true),
		EnableProfiler: webCfg.MayBool("PROFILER", false),
		EnableMetrics:  webCfg.MayBool("METRICS", true),
		CORSOrigins:    webCfg.MayCSV("CORS_ORIGINS", nil),
		SlowRequest:    webCfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
	})

	l.Info().Str("addr", srv.Addr()).Int("records", b.Len()).Msg("serving board")
	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
}
