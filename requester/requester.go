// Package requester is the transport boundary of the client: one HTTP GET
// per logical call, with the response body decoded into loose JSON for the
// normalizer. It also translates the upstream's two non-JSON degenerate
// bodies — the literal text "false" (any endpoint) and non-JSON file-list
// bodies — into the empty shapes the normalizer expects.
package requester

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fereidani/httpdecompressor"

	"apibay/logging"
	"apibay/normalize"
)

// defaultUserAgent is sent on every request; the upstream blocks the Go
// default agent.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// RequestError classifies transport-level failures: a non-2xx status or a
// network error. It is never retried internally.
type RequestError struct {
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request failed for %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("HTTP error %d for %s: %s", e.StatusCode, e.URL, e.Body)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Requester issues the API's GET calls over a shared *http.Client.
type Requester struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	ownsClient bool
}

// New creates a Requester for baseURL. When client is nil an internal one
// is created with a tuned transport and owned by the Requester; a
// caller-supplied client is used as-is and never closed by this package.
func New(baseURL string, client *http.Client) *Requester {
	owns := client == nil
	if client == nil {
		client = &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
				ForceAttemptHTTP2:   true,
			},
		}
	}
	return &Requester{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  defaultUserAgent,
		httpClient: client,
		ownsClient: owns,
	}
}

// SetUserAgent overrides the User-Agent header sent on every request.
func (r *Requester) SetUserAgent(ua string) {
	if ua != "" {
		r.userAgent = ua
	}
}

// SetTimeout adjusts the request timeout of an internally owned client.
// It is a no-op for caller-supplied clients.
func (r *Requester) SetTimeout(timeout time.Duration) {
	if r.ownsClient {
		r.httpClient.Timeout = timeout
	}
}

// BaseURL returns the configured base address without a trailing slash.
func (r *Requester) BaseURL() string { return r.baseURL }

// Close releases the underlying connection pool if this Requester created
// it. Caller-supplied clients are left untouched.
func (r *Requester) Close() {
	if r.ownsClient {
		r.httpClient.CloseIdleConnections()
	}
}

// GetJSON performs one GET against path and returns the decoded body.
// Numbers are decoded as json.Number so string-encoded and numeric fields
// survive intact for the normalizer.
func (r *Requester) GetJSON(ctx context.Context, path string, params url.Values) (any, error) {
	requestURL, err := r.buildURL(path, params)
	if err != nil {
		return nil, &RequestError{URL: r.baseURL + path, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &RequestError{URL: requestURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", httpdecompressor.ACCEPT_ENCODING)
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{URL: requestURL, Err: err}
	}
	defer resp.Body.Close()

	decompressed, err := httpdecompressor.Reader(resp)
	if err != nil {
		return nil, &RequestError{URL: requestURL, Err: fmt.Errorf("failed to decompress response: %w", err)}
	}
	defer decompressed.Close()

	var buf bytes.Buffer
	if resp.ContentLength > 0 {
		buf.Grow(int(resp.ContentLength))
	}
	if _, err := buf.ReadFrom(decompressed); err != nil {
		return nil, &RequestError{URL: requestURL, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	body := buf.Bytes()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{URL: requestURL, StatusCode: resp.StatusCode, Body: snippet(body)}
	}

	logging.Debug().Str("url", requestURL).Int("status", resp.StatusCode).Msg("API response received")

	// The API answers some lookups with the bare text "false"; hand the
	// normalizer an empty object so it can map it to an empty result.
	if string(body) == "false" {
		return map[string]any{}, nil
	}

	// File listings for unknown torrents come back as plain text or an
	// empty body; those normalize to an empty listing.
	if strings.HasPrefix(path, "/f.php") {
		trimmed := strings.TrimSpace(string(body))
		if !strings.HasPrefix(trimmed, "[") && !strings.HasPrefix(trimmed, "{") {
			return []any{}, nil
		}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, &normalize.ContentError{
			Msg:     fmt.Sprintf("failed to decode JSON response for %s: %v", path, err),
			Payload: snippet(body),
		}
	}
	return raw, nil
}

func (r *Requester) buildURL(path string, params url.Values) (string, error) {
	u, err := url.Parse(r.baseURL + path)
	if err != nil {
		return "", err
	}
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}
	return u.String(), nil
}

// snippet truncates a body for error messages.
func snippet(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
