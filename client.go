// Package apibay is a client for the apibay.org torrent-index API. It
// issues one HTTP GET per logical call and normalizes the API's loosely
// shaped JSON into the typed records in apibay/schema.
//
// All methods are context-aware and safe for concurrent use; blocking
// happens only at the network call. Errors come in two kinds: a
// *requester.RequestError for transport failures and a
// *normalize.ContentError for payloads that could not be normalized.
package apibay

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"apibay/categories"
	"apibay/monitoring"
	"apibay/normalize"
	"apibay/requester"
	"apibay/schema"
)

// DefaultBaseURL is the canonical API address. Override with WithBaseURL
// or the APIBAY_BASE_URL environment variable when using a mirror.
const DefaultBaseURL = "https://apibay.org"

// Top100Category selects a precompiled top-100 listing: a numeric
// category, "all", or "recent".
type Top100Category string

const (
	Top100All    Top100Category = "all"
	Top100Recent Top100Category = "recent"
)

// Top100CategoryID converts a category ID into a Top100Category.
func Top100CategoryID(id categories.ID) Top100Category {
	return Top100Category(strconv.Itoa(int(id)))
}

type options struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	metrics    *monitoring.Metrics
}

// Option configures a Client.
type Option func(*options)

// WithBaseURL points the client at a mirror instead of DefaultBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

// WithHTTPClient supplies the *http.Client to issue requests with. The
// client remains owned by the caller and is never closed by this library.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.httpClient = client }
}

// WithTimeout sets the request timeout of the internally created HTTP
// client. Ignored when WithHTTPClient is used.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) { o.timeout = timeout }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(o *options) { o.userAgent = userAgent }
}

// WithMetrics enables prometheus instrumentation of client calls. The
// caller registers the metrics.
func WithMetrics(m *monitoring.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// Client talks to one API base address. The zero value is not usable;
// construct with New.
type Client struct {
	requester *requester.Requester
	metrics   *monitoring.Metrics
}

// New creates a Client. With no options it targets DefaultBaseURL (or
// APIBAY_BASE_URL when set) over an internally managed HTTP client.
func New(opts ...Option) *Client {
	o := options{baseURL: DefaultBaseURL}
	if env := os.Getenv("APIBAY_BASE_URL"); env != "" {
		o.baseURL = env
	}
	for _, opt := range opts {
		opt(&o)
	}

	r := requester.New(o.baseURL, o.httpClient)
	if o.userAgent != "" {
		r.SetUserAgent(o.userAgent)
	}
	if o.timeout > 0 {
		r.SetTimeout(o.timeout)
	}
	return &Client{requester: r, metrics: o.metrics}
}

// Close releases the connection pool if the Client created it. A client
// supplied via WithHTTPClient is left open.
func (c *Client) Close() {
	c.requester.Close()
}

func (c *Client) observe(endpoint string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}
	c.metrics.Requests.WithLabelValues(endpoint).Inc()
	c.metrics.RequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.RequestErrors.WithLabelValues(endpoint).Inc()
	}
}

// Search queries /q.php. Pass categories.None to search all categories;
// a zero-match query returns an empty slice, not an error.
func (c *Client) Search(ctx context.Context, query string, category categories.ID) (torrents []schema.Torrent, err error) {
	start := time.Now()
	defer func() { c.observe("search", start, err) }()

	params := url.Values{}
	params.Set("q", query)
	if category != categories.None {
		params.Set("cat", strconv.Itoa(int(category)))
	}
	raw, err := c.requester.GetJSON(ctx, "/q.php", params)
	if err != nil {
		return nil, err
	}
	return normalize.TorrentList(raw)
}

// ByUser lists torrents uploaded by username. Pages are 0-indexed; period
// is an optional upstream time filter such as "today".
func (c *Client) ByUser(ctx context.Context, username string, page int, period string) (torrents []schema.Torrent, err error) {
	start := time.Now()
	defer func() { c.observe("by_user", start, err) }()

	parts := []string{"user:" + username}
	if page > 0 || period != "" {
		parts = append(parts, strconv.Itoa(page))
	}
	if period != "" {
		parts = append(parts, period)
	}

	params := url.Values{}
	params.Set("q", strings.Join(parts, ":"))
	raw, err := c.requester.GetJSON(ctx, "/q.php", params)
	if err != nil {
		return nil, err
	}
	return normalize.TorrentList(raw)
}

// UserPageCount returns how many by-user pages exist for username. The
// endpoint is advisory: malformed payloads normalize to zero, so only
// transport failures produce an error.
func (c *Client) UserPageCount(ctx context.Context, username string) (count int, err error) {
	start := time.Now()
	defer func() { c.observe("page_count", start, err) }()

	params := url.Values{}
	params.Set("q", "pcnt:"+username)
	raw, err := c.requester.GetJSON(ctx, "/q.php", params)
	if err != nil {
		return 0, err
	}
	return normalize.PageCount(raw), nil
}

// Details looks up one torrent by ID on /t.php. A (nil, nil) return means
// the torrent does not exist.
func (c *Client) Details(ctx context.Context, id int) (details *schema.TorrentDetails, err error) {
	start := time.Now()
	defer func() { c.observe("details", start, err) }()

	params := url.Values{}
	params.Set("id", strconv.Itoa(id))
	raw, err := c.requester.GetJSON(ctx, "/t.php", params)
	if err != nil {
		return nil, err
	}
	return normalize.TorrentDetails(raw)
}

// FileList returns the files inside a torrent from /f.php. The listing is
// best-effort: unrecognized entries are dropped, and a torrent without a
// listing yields an empty slice.
func (c *Client) FileList(ctx context.Context, id int) (files []schema.FileEntry, err error) {
	start := time.Now()
	defer func() { c.observe("file_list", start, err) }()

	params := url.Values{}
	params.Set("id", strconv.Itoa(id))
	raw, err := c.requester.GetJSON(ctx, "/f.php", params)
	if err != nil {
		return nil, err
	}
	return normalize.FileList(raw)
}

// Top100 fetches a precompiled top-100 listing for a category, Top100All,
// or Top100Recent.
func (c *Client) Top100(ctx context.Context, category Top100Category) (torrents []schema.Torrent, err error) {
	start := time.Now()
	defer func() { c.observe("top100", start, err) }()

	path := fmt.Sprintf("/precompiled/data_top100_%s.json", category)
	raw, err := c.requester.GetJSON(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return normalize.TorrentList(raw)
}

// Recent fetches the latest additions. Page 0 is the newest listing;
// higher pages map to the upstream's data_top100_recent_<page>.json files.
func (c *Client) Recent(ctx context.Context, page int) (torrents []schema.Torrent, err error) {
	start := time.Now()
	defer func() { c.observe("recent", start, err) }()

	path := "/precompiled/data_top100_recent.json"
	if page > 0 {
		path = fmt.Sprintf("/precompiled/data_top100_recent_%d.json", page)
	}
	raw, err := c.requester.GetJSON(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return normalize.TorrentList(raw)
}
