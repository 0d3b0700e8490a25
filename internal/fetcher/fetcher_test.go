package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/works/OL31390631M.json" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("User-Agent") != UserAgent {
			t.Errorf("Expected User-Agent %s, got %s", UserAgent, r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestWorkURL(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		id       string
		expected string
	}{
		{"Default endpoint", DefaultEndpoint, "OL31390631M", "https://openlibrary.org/works/OL31390631M.json"},
		{"Trailing slash", "https://openlibrary.org/", "OL1W", "https://openlibrary.org/works/OL1W.json"},
		{"Escaped id", "http://localhost:8080", "a/b", "http://localhost:8080/works/a%2Fb.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(tt.endpoint, 0, 0, zerolog.Nop())
			if got := f.WorkURL(tt.id); got != tt.expected {
				t.Errorf("WorkURL(%q) = %s, expected %s", tt.id, got, tt.expected)
			}
		})
	}
}

func TestFetchDescription_ObjectDescription(t *testing.T) {
	srv := newTestServer(t, http.StatusOK,
		`{"title": "Brewing", "description": {"type": "/type/text", "value": "A story about brewing."}}`)

	f := New(srv.URL, time.Second, 0, zerolog.Nop())
	text, err := f.FetchDescription(context.Background(), "OL31390631M")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if text != "A story about brewing." {
		t.Errorf("Expected description value, got %q", text)
	}
}

func TestFetchDescription_StringDescription(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"description": "Plain description."}`)

	f := New(srv.URL, time.Second, 0, zerolog.Nop())
	text, err := f.FetchDescription(context.Background(), "OL31390631M")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if text != "Plain description." {
		t.Errorf("Expected description, got %q", text)
	}
}

func TestFetchDescription_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		id     string
		code   int
	}{
		{"Not found", http.StatusNotFound, "", "OL404W", http.StatusNotFound},
		{"Server error", http.StatusInternalServerError, `{"error": "oops"}`, "OL31390631M", http.StatusInternalServerError},
		{"Malformed body", http.StatusOK, `{"description": `, "OL31390631M", http.StatusOK},
		{"Wrong description type", http.StatusOK, `{"description": 42}`, "OL31390631M", http.StatusOK},
		{"Missing description", http.StatusOK, `{"title": "No blurb"}`, "OL31390631M", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.status, tt.body)
			f := New(srv.URL, time.Second, 0, zerolog.Nop())

			_, err := f.FetchDescription(context.Background(), tt.id)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}

			var fetchErr *FetchError
			if !errors.As(err, &fetchErr) {
				t.Fatalf("Expected *FetchError, got %T", err)
			}
			if fetchErr.StatusCode != tt.code {
				t.Errorf("Expected status %d, got %d", tt.code, fetchErr.StatusCode)
			}
			if fetchErr.ID != tt.id {
				t.Errorf("Expected id %s, got %s", tt.id, fetchErr.ID)
			}
		})
	}
}

func TestFetchDescription_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	f := New(url, time.Second, 0, zerolog.Nop())
	_, err := f.FetchDescription(context.Background(), "OL1W")

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected *FetchError, got %v", err)
	}
	if fetchErr.StatusCode != 0 {
		t.Errorf("Expected no status code, got %d", fetchErr.StatusCode)
	}
}

func TestFetchDescription_CanceledContext(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"description": "unused"}`)
	f := New(srv.URL, time.Second, 1, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.FetchDescription(ctx, "OL31390631M")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestRateLimiter_Basic(t *testing.T) {
	f := New(DefaultEndpoint, 0, 10.0, zerolog.Nop())

	ctx := context.Background()

	if err := f.rateLimiter.Wait(ctx); err != nil {
		t.Fatalf("Rate limiter wait failed: %v", err)
	}

	if err := f.rateLimiter.Wait(ctx); err != nil {
		t.Fatalf("Second rate limiter wait failed: %v", err)
	}
}

func TestNew_DefaultTimeout(t *testing.T) {
	f := New(DefaultEndpoint, 0, 0, zerolog.Nop())
	if f.client.Timeout != DefaultTimeout {
		t.Errorf("Expected timeout %v, got %v", DefaultTimeout, f.client.Timeout)
	}
}
