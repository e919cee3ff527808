package http

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventboard/internal/platform/config"

	"github.com/go-chi/chi/v5"
)

type catQuery struct {
	Category string `query:"category" validate:"omitempty,max=4"`
}

func TestRouterRoutesAndSugar(t *testing.T) {
	srv := NewServer(config.New().Prefix("TEST_ROUTER_"))
	srv.Router().Route("/api/v1", func(r Router) {
		GetJSON(r, "/ping", func(*http.Request) (any, error) { return "pong", nil })
		GetQuery(r, "/echo", func(_ *http.Request, in catQuery) (any, error) { return in.Category, nil })
	})

	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/api/v1/ping", nil))
	if rr.Code != 200 {
		t.Fatalf("ping status = %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/api/v1/echo?category=toolong", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("echo status = %d body=%s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest("POST", "/api/v1/ping", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST status = %d", rr.Code)
	}
}

func TestServerDefaultsAndRun(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()

	t.Setenv("TEST_RUN_API_PORT", addr)
	srv := NewServer(config.New().Prefix("TEST_RUN_"), func(m *chi.Mux) {
		m.Get("/", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(204) })
	})
	if srv.Addr() != addr {
		t.Fatalf("addr = %q", srv.Addr())
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestMountProfiler(t *testing.T) {
	m := chi.NewRouter()
	MountProfiler(AdaptChi(m), "/debug", false)
	rr := httptest.NewRecorder()
	m.ServeHTTP(rr, httptest.NewRequest("GET", "/debug/pprof/", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("disabled profiler status = %d", rr.Code)
	}

	MountProfiler(AdaptChi(m), "/debug", true)
	rr = httptest.NewRecorder()
	m.ServeHTTP(rr, httptest.NewRequest("GET", "/debug/pprof/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("profiler status = %d", rr.Code)
	}
}
