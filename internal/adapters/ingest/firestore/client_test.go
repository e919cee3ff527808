package firestore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	perr "eventboard/internal/platform/errors"
	kit "eventboard/internal/platform/testkit"
)

const pageOne = `{
  "documents": [
    {"name": "projects/p/databases/(default)/documents/events/abc",
     "createTime": "2024-01-01T00:00:00.123456Z",
     "updateTime": "2024-01-02T00:00:00Z",
     "fields": {"name": {"stringValue": "Live"}, "url": {"stringValue": "https://equal-love.jp/"}, "n": {"integerValue": "3"}}}
  ],
  "nextPageToken": "tok-2"
}`

func newTestClient(t *testing.T, h http.HandlerFunc, mut ...func(*Options)) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	o := Options{BaseURL: srv.URL + "/", Project: "proj", Collection: "events", PageSize: 2, APIKey: "k"}
	for _, m := range mut {
		m(&o)
	}
	c, err := NewClient(o)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestListDocumentsRequestShape(t *testing.T) {
	var gotPath, gotQuery, gotUA string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotQuery = r.URL.RawQuery
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(pageOne))
	})

	page, err := c.ListDocuments(context.Background(), "")
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	if gotPath != "/projects/proj/databases/%28default%29/documents/events" && gotPath != "/projects/proj/databases/(default)/documents/events" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotQuery != "key=k&pageSize=2" {
		t.Fatalf("query = %q", gotQuery)
	}
	if gotUA != "eventboard" {
		t.Fatalf("user agent = %q", gotUA)
	}

	if len(page.Documents) != 1 || page.NextPageToken != "tok-2" {
		t.Fatalf("page = %+v", page)
	}
	d := page.Documents[0]
	if d.ID() != "abc" || d.String("name") != "Live" || d.String("url") != "https://equal-love.jp/" {
		t.Fatalf("doc = %+v", d)
	}
	if d.String("n") != "" || d.String("missing") != "" {
		t.Fatal("non string and absent fields read as empty")
	}
	ts, err := d.Created()
	if err != nil || ts.UnixMilli() != 1704067200123 {
		t.Fatalf("created = %v %v", ts, err)
	}
}

func TestListDocumentsSendsToken(t *testing.T) {
	var got string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query().Get("pageToken")
		_, _ = w.Write([]byte(`{}`))
	})
	page, err := c.ListDocuments(context.Background(), "tok-2")
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	if got != "tok-2" || len(page.Documents) != 0 || page.NextPageToken != "" {
		t.Fatalf("token=%q page=%+v", got, page)
	}
}

func TestListDocumentsErrorCodes(t *testing.T) {
	cases := []struct {
		status int
		body   string
		want   perr.ErrorCode
	}{
		{http.StatusTooManyRequests, "slow", perr.ErrorCodeTooManyRequests},
		{http.StatusServiceUnavailable, "down", perr.ErrorCodeUnavailable},
		{http.StatusForbidden, `{"error":{"status":"PERMISSION_DENIED"}}`, perr.ErrorCodeUpstream},
		{http.StatusOK, `{"documents": [`, perr.ErrorCodeJSON},
	}
	for _, tc := range cases {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(tc.body))
		})
		_, err := c.ListDocuments(context.Background(), "")
		if !perr.IsCode(err, tc.want) {
			t.Fatalf("status %d: err = %v, want code %v", tc.status, err, tc.want)
		}
	}
}

func TestListDocumentsTransportFailure(t *testing.T) {
	c, err := NewClient(Options{BaseURL: "http://127.0.0.1:1", Project: "p", Timeout: time.Second})
	if err != nil {
		t.Fatal(err)
	}
	_, err = c.ListDocuments(context.Background(), "")
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) || !perr.Retryable(err) {
		t.Fatalf("err = %v", err)
	}
}

func TestNewClientDefaults(t *testing.T) {
	if _, err := NewClient(Options{}); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("missing project err = %v", err)
	}
	c, err := NewClient(Options{Project: "p"})
	if err != nil {
		t.Fatal(err)
	}
	u := c.listURL("")
	kit.MustContain(t, u, "https://firestore.googleapis.com/v1/projects/p/databases/")
	kit.MustContain(t, u, "pageSize=100")
	kit.MustNotContain(t, u, "key=")
	if c.Collection() != "events" {
		t.Fatalf("collection = %q", c.Collection())
	}
}

func TestRateLimiterPacesRequests(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{}`))
	}, func(o *Options) { o.RatePerSecond = 20 })

	start := time.Now()
	for range 3 {
		if _, err := c.ListDocuments(context.Background(), ""); err != nil {
			t.Fatal(err)
		}
	}
	if elapsed := time.Since(start); elapsed < 80*time.Millisecond {
		t.Fatalf("three paced calls took %v", elapsed)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.ListDocuments(ctx, ""); err == nil || !strings.Contains(err.Error(), "rate wait") {
		t.Fatalf("cancelled wait err = %v", err)
	}
	if calls != 3 {
		t.Fatalf("calls = %d", calls)
	}
}
