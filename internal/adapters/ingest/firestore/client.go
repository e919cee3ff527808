// Package firestore is a read only client for the Firestore REST "list
// documents" endpoint
package firestore

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	perr "eventboard/internal/platform/errors"
	"eventboard/internal/platform/logger"

	"golang.org/x/time/rate"
)

const (
	baseURLDefault    = "https://firestore.googleapis.com/v1"
	databaseDefault   = "(default)"
	defaultTimeout    = 10 * time.Second
	defaultPageSize   = 100
	defaultUA         = "eventboard"
	maxBody           = 8 << 20
	errorBodyPreview  = 2048
	defaultCollection = "events"
)

// Options configures the Client
type Options struct {
	BaseURL    string
	Project    string
	Database   string
	Collection string
	APIKey     string
	PageSize   int
	Timeout    time.Duration
	UserAgent  string

	// RatePerSecond paces page requests; 0 means unlimited
	RatePerSecond float64
	Burst         int
}

// Client lists one collection page by page. It never retries
type Client struct {
	http    *http.Client
	opts    Options
	limiter *rate.Limiter
	log     logger.Logger
	now     func() time.Time
}

// NewClient fills defaults and builds a Client. Project is required
func NewClient(o Options) (*Client, error) {
	if strings.TrimSpace(o.Project) == "" {
		return nil, perr.InvalidArgf("firestore: project is required")
	}
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.Database == "" {
		o.Database = databaseDefault
	}
	if o.Collection == "" {
		o.Collection = defaultCollection
	}
	if o.PageSize <= 0 {
		o.PageSize = defaultPageSize
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Burst <= 0 {
		o.Burst = 1
	}

	lim := rate.NewLimiter(rate.Inf, o.Burst)
	if o.RatePerSecond > 0 {
		lim = rate.NewLimiter(rate.Limit(o.RatePerSecond), o.Burst)
	}

	return &Client{
		http:    &http.Client{Timeout: o.Timeout},
		opts:    o,
		limiter: lim,
		log:     *logger.Named("firestore"),
		now:     time.Now,
	}, nil
}

// Collection returns the collection being listed
func (c *Client) Collection() string { return c.opts.Collection }

func (c *Client) listURL(token string) string {
	path := "/projects/" + url.PathEscape(c.opts.Project) +
		"/databases/" + url.PathEscape(c.opts.Database) +
		"/documents/" + c.opts.Collection

	q := url.Values{}
	q.Set("pageSize", strconv.Itoa(c.opts.PageSize))
	if token != "" {
		q.Set("pageToken", token)
	}
	if c.opts.APIKey != "" {
		q.Set("key", c.opts.APIKey)
	}
	return c.opts.BaseURL + path + "?" + q.Encode()
}

// ListDocuments fetches the page that token points at. An empty token is the
// first page
func (c *Client) ListDocuments(ctx context.Context, token string) (ListResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return ListResponse{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "firestore rate wait")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.listURL(token), nil)
	if err != nil {
		return ListResponse{}, perr.Wrap(err, perr.ErrorCodeUnknown, "firestore new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")

	start := c.now()
	resp, err := c.http.Do(req)
	if err != nil {
		return ListResponse{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "firestore list failed")
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Msg("firestore close body failed")
		}
	}()

	c.log.Debug().
		Str("collection", c.opts.Collection).
		Bool("first_page", token == "").
		Int("status", resp.StatusCode).
		Dur("latency", c.now().Sub(start)).
		Msg("firestore http response")

	if err := statusError(resp); err != nil {
		return ListResponse{}, err
	}

	var out ListResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&out); err != nil {
		return ListResponse{}, perr.Wrap(err, perr.ErrorCodeJSON, "firestore decode page")
	}
	return out, nil
}

func statusError(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyPreview))
	msg := strings.TrimSpace(string(body))
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return perr.Newf(perr.ErrorCodeTooManyRequests, "firestore rate limited: %s", msg)
	case resp.StatusCode >= 500:
		return perr.Newf(perr.ErrorCodeUnavailable, "firestore status %d: %s", resp.StatusCode, msg)
	default:
		return perr.Newf(perr.ErrorCodeUpstream, "firestore status %d: %s", resp.StatusCode, msg)
	}
}
