package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "eventboard/internal/platform/net/http"
	kit "eventboard/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func mounted(enabled bool) *chi.Mux {
	m := chi.NewRouter()
	Mount(phttp.AdaptChi(m), enabled)
	return m
}

func TestDocJSONAddsErrorResponse(t *testing.T) {
	kit.Serial(t)
	Register(func(spec map[string]any) { spec["x-test"] = true })
	t.Cleanup(func() { mutators = nil })

	rr := httptest.NewRecorder()
	mounted(true).ServeHTTP(rr, httptest.NewRequest("GET", "/api/docs/doc.json", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}

	var spec map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &spec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if spec["x-test"] != true {
		t.Fatal("mutator not applied")
	}
	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	if _, ok := schemas["ErrorResponse"]; !ok {
		t.Fatal("ErrorResponse schema missing")
	}
	op := spec["paths"].(map[string]any)["/events"].(map[string]any)["get"].(map[string]any)
	if _, ok := op["responses"].(map[string]any)["500"]; !ok {
		t.Fatal("default 500 missing")
	}
}

func TestDocJSONBrokenDocument(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &docReader, func() []byte { return []byte("{") })
	rr := httptest.NewRecorder()
	mounted(true).ServeHTTP(rr, httptest.NewRequest("GET", "/api/docs/doc.json", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestMountDisabledAndRedirect(t *testing.T) {
	rr := httptest.NewRecorder()
	mounted(false).ServeHTTP(rr, httptest.NewRequest("GET", "/api/docs/doc.json", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("disabled status = %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	mounted(true).ServeHTTP(rr, httptest.NewRequest("GET", "/api/docs", nil))
	if rr.Code != http.StatusPermanentRedirect {
		t.Fatalf("redirect status = %d", rr.Code)
	}
}
