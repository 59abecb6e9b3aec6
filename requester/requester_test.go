package requester_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"

	"apibay/normalize"
	"apibay/requester"
)

func TestGetJSONTranslatesFalseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("false"))
	}))
	defer server.Close()

	r := requester.New(server.URL, nil)
	defer r.Close()

	raw, err := r.GetJSON(context.Background(), "/t.php", nil)
	if err != nil {
		t.Fatalf("GetJSON() error = %v", err)
	}
	m, ok := raw.(map[string]any)
	if !ok || len(m) != 0 {
		t.Errorf("GetJSON() = %v, want empty map", raw)
	}
}

func TestGetJSONFileListingNonJSONBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "plain text body", body: "no files"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			r := requester.New(server.URL, nil)
			defer r.Close()

			raw, err := r.GetJSON(context.Background(), "/f.php", nil)
			if err != nil {
				t.Fatalf("GetJSON() error = %v", err)
			}
			list, ok := raw.([]any)
			if !ok || len(list) != 0 {
				t.Errorf("GetJSON() = %v, want empty list", raw)
			}
		})
	}
}

func TestGetJSONRequestError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone fishing", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	r := requester.New(server.URL, nil)
	defer r.Close()

	_, err := r.GetJSON(context.Background(), "/q.php", nil)
	var rerr *requester.RequestError
	if !errors.As(err, &rerr) {
		t.Fatalf("GetJSON() error = %v, want *RequestError", err)
	}
	if rerr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("RequestError.StatusCode = %d, want %d", rerr.StatusCode, http.StatusServiceUnavailable)
	}
}

func TestGetJSONContentErrorOnBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>blocked</html>"))
	}))
	defer server.Close()

	r := requester.New(server.URL, nil)
	defer r.Close()

	_, err := r.GetJSON(context.Background(), "/q.php", nil)
	var cerr *normalize.ContentError
	if !errors.As(err, &cerr) {
		t.Fatalf("GetJSON() error = %v, want *ContentError", err)
	}
}

func TestGetJSONDecodesWithNumbers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"size": 123456789}]`))
	}))
	defer server.Close()

	r := requester.New(server.URL, nil)
	defer r.Close()

	raw, err := r.GetJSON(context.Background(), "/q.php", nil)
	if err != nil {
		t.Fatalf("GetJSON() error = %v", err)
	}
	want := []any{map[string]any{"size": json.Number("123456789")}}
	if !reflect.DeepEqual(raw, want) {
		t.Errorf("GetJSON() = %#v, want %#v", raw, want)
	}
}

func TestGetJSONSendsQueryParams(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	r := requester.New(server.URL, nil)
	defer r.Close()

	params := url.Values{}
	params.Set("q", "user:someone:1")
	if _, err := r.GetJSON(context.Background(), "/q.php", params); err != nil {
		t.Fatalf("GetJSON() error = %v", err)
	}
	if got := gotQuery.Get("q"); got != "user:someone:1" {
		t.Errorf("query q = %q, want %q", got, "user:someone:1")
	}
}

func TestNetworkFailureIsRequestError(t *testing.T) {
	r := requester.New("http://127.0.0.1:0", nil)
	defer r.Close()

	_, err := r.GetJSON(context.Background(), "/q.php", nil)
	var rerr *requester.RequestError
	if !errors.As(err, &rerr) {
		t.Fatalf("GetJSON() error = %v, want *RequestError", err)
	}
}
