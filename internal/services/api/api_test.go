package api

import (
	"net/http/httptest"
	"strings"
	"testing"

	"eventboard/internal/core/board"
	"eventboard/internal/core/catalog"
	"eventboard/internal/modkit/module"
	"eventboard/internal/platform/config"
	"eventboard/internal/platform/metrics"
	phttp "eventboard/internal/platform/net/http"
	kit "eventboard/internal/platform/testkit"
	"eventboard/internal/services/events/domain"
	"eventboard/internal/services/events/service"

	"github.com/go-chi/chi/v5"
)

func mounted(t *testing.T) (*chi.Mux, *metrics.Metrics) {
	t.Helper()
	module.Reset()
	t.Cleanup(module.Reset)

	b := service.NewBoard(domain.FetchResult{Records: []board.Record{
		{ID: "abc", Name: "Live", Category: "equal-love", CreatedAt: 1704067200000},
	}}, catalog.Default(), domain.PolicySoft, domain.LoadMeta{LoadID: "load-1"})

	m := metrics.New(false)
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), Options{
		Config:        config.New(),
		Metrics:       m,
		Board:         b,
		ServiceName:   "eventboard-web",
		EnableSwagger: true,
		EnableMetrics: true,
	})
	return mux, m
}

func do(mux *chi.Mux, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest("GET", path, nil))
	return rr
}

func TestMountServesEverySurface(t *testing.T) {
	mux, _ := mounted(t)

	page := do(mux, "/")
	if page.Code != 200 || !strings.HasPrefix(page.Header().Get("Content-Type"), "text/html") {
		t.Fatalf("page %d %q", page.Code, page.Header().Get("Content-Type"))
	}
	kit.MustContain(t, page.Body.String(), `data-id="abc"`)
	if page.Header().Get("X-Request-ID") == "" {
		t.Fatal("page should carry a request id")
	}

	ev := do(mux, "/api/v1/events?category=equal-love")
	if ev.Code != 200 {
		t.Fatalf("events %d %s", ev.Code, ev.Body.String())
	}
	kit.MustContain(t, ev.Body.String(), `"load_id":"load-1"`)
	kit.MustContain(t, ev.Body.String(), `"link":"/equal-love/abc"`)

	if rr := do(mux, "/api/v1/meta/health"); rr.Code != 200 {
		t.Fatalf("health %d", rr.Code)
	}
	if rr := do(mux, "/api/docs/doc.json"); rr.Code != 200 {
		t.Fatalf("doc.json %d", rr.Code)
	}
	if rr := do(mux, "/debug/pprof/"); rr.Code != 404 {
		t.Fatalf("profiler should be off, got %d", rr.Code)
	}

	names := module.Names()
	if len(names) != 2 {
		t.Fatalf("registered = %v", names)
	}
}

func TestMountRecordsMetrics(t *testing.T) {
	mux, _ := mounted(t)
	do(mux, "/")
	do(mux, "/api/v1/events")

	body := do(mux, "/metrics").Body.String()
	kit.MustContain(t, body, `eventboard_renders_total{category="all",surface="html"} 1`)
	kit.MustContain(t, body, `eventboard_renders_total{category="all",surface="json"} 1`)
	kit.MustContain(t, body, `eventboard_http_requests_total{method="GET"`)
}
