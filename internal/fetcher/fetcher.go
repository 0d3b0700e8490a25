package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	// UserAgent identifies our client to servers
	UserAgent = "Hangman/1.0"

	// DefaultEndpoint is the OpenLibrary API root
	DefaultEndpoint = "https://openlibrary.org"

	// DefaultTimeout for HTTP requests
	DefaultTimeout = 2 * time.Minute

	// maxBodySize caps the response body we are willing to decode
	maxBodySize = 4 << 20
)

// FetchError reports a failed description fetch
type FetchError struct {
	ID         string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching book %s: HTTP %d: %v", e.ID, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetching book %s: %v", e.ID, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// work is the subset of an OpenLibrary works document we use
type work struct {
	Description description `json:"description"`
}

// description is either a bare string or a {"type", "value"} object
type description struct {
	Value string
}

func (d *description) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		d.Value = s
		return nil
	}

	var obj struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("decoding description: %w", err)
	}
	d.Value = obj.Value
	return nil
}

// Fetcher retrieves book descriptions with rate limiting
type Fetcher struct {
	client      *http.Client
	rateLimiter *rate.Limiter
	endpoint    string
	logger      zerolog.Logger
}

// New creates a new Fetcher. A requestsPerSecond of 0 disables rate limiting.
func New(endpoint string, timeout time.Duration, requestsPerSecond float64, logger zerolog.Logger) *Fetcher {
	var limiter *rate.Limiter
	if requestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	} else {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		rateLimiter: limiter,
		endpoint:    strings.TrimRight(endpoint, "/"),
		logger:      logger,
	}
}

// WorkURL returns the works document URL for a book id
func (f *Fetcher) WorkURL(id string) string {
	return f.endpoint + "/works/" + url.PathEscape(id) + ".json"
}

// FetchDescription fetches the description text of the book with the given id.
// Any transport failure, non-200 status or malformed body yields a *FetchError.
func (f *Fetcher) FetchDescription(ctx context.Context, id string) (string, error) {
	if err := f.rateLimiter.Wait(ctx); err != nil {
		return "", &FetchError{ID: id, Err: fmt.Errorf("rate limiter: %w", err)}
	}

	workURL := f.WorkURL(id)
	f.logger.Debug().Str("url", workURL).Msg("fetching book description")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, workURL, nil)
	if err != nil {
		return "", &FetchError{ID: id, Err: fmt.Errorf("creating request: %w", err)}
	}

	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &FetchError{ID: id, Err: fmt.Errorf("HTTP request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{ID: id, StatusCode: resp.StatusCode, Err: errors.New(resp.Status)}
	}

	var doc work
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&doc); err != nil {
		return "", &FetchError{ID: id, StatusCode: resp.StatusCode, Err: fmt.Errorf("decoding body: %w", err)}
	}

	if doc.Description.Value == "" {
		return "", &FetchError{ID: id, StatusCode: resp.StatusCode, Err: errors.New("book has no description")}
	}

	f.logger.Debug().Str("book", id).Int("chars", len(doc.Description.Value)).Msg("fetched book description")

	return doc.Description.Value, nil
}
