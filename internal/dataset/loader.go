package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

// FetchError reports that at least one of the two resources did not come
// back with a success status. Both statuses are always recorded; a status of
// 0 means the request never got a response.
type FetchError struct {
	LocationsStatus  int
	CommentaryStatus int
	Err              error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("HTTP error! status: %d %d", e.LocationsStatus, e.CommentaryStatus)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a resource whose body is not the expected JSON.
type ParseError struct {
	Resource string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Resource, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Loader fetches the locations and commentary resources. A source is an
// http(s) URL or a local file path.
type Loader struct {
	LocationsSource  string
	CommentarySource string
	client           *http.Client
}

// NewLoader creates a Loader for the two sources. A zero timeout means no
// per-request timeout.
func NewLoader(locationsSource, commentarySource string, timeout time.Duration) *Loader {
	return &Loader{
		LocationsSource:  locationsSource,
		CommentarySource: commentarySource,
		client:           &http.Client{Timeout: timeout},
	}
}

// response is the settled outcome of one request.
type response struct {
	status int
	body   []byte
	err    error
}

func (r response) ok() bool {
	return r.err == nil && r.status >= 200 && r.status < 300
}

// Fetch requests both resources concurrently and waits for both to settle.
// Nothing is parsed unless both succeeded; the result is all or nothing.
func (l *Loader) Fetch(ctx context.Context) (*Dataset, error) {
	var locResp, comResp response

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		locResp = l.get(ctx, l.LocationsSource)
	}()
	go func() {
		defer wg.Done()
		comResp = l.get(ctx, l.CommentarySource)
	}()
	wg.Wait()

	if !locResp.ok() || !comResp.ok() {
		return nil, &FetchError{
			LocationsStatus:  locResp.status,
			CommentaryStatus: comResp.status,
			Err:              errors.Join(locResp.err, comResp.err),
		}
	}

	var locations []Location
	if err := json.Unmarshal(locResp.body, &locations); err != nil {
		return nil, &ParseError{Resource: "locations", Err: err}
	}
	var commentary []Commentary
	if err := json.Unmarshal(comResp.body, &commentary); err != nil {
		return nil, &ParseError{Resource: "commentary", Err: err}
	}

	return &Dataset{
		Locations:  locations,
		Commentary: commentary,
		Lookup:     BuildLookup(commentary),
		Companies:  Companies(locations),
	}, nil
}

func (l *Loader) get(ctx context.Context, source string) response {
	if isURL(source) {
		return l.getHTTP(ctx, source)
	}
	return readFile(source)
}

func (l *Loader) getHTTP(ctx context.Context, url string) response {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return response{err: fmt.Errorf("creating request for %s: %w", url, err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return response{err: fmt.Errorf("fetching %s: %w", url, err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return response{status: resp.StatusCode, err: fmt.Errorf("reading %s: %w", url, err)}
	}
	return response{status: resp.StatusCode, body: body}
}

// readFile gives local files HTTP-like statuses so both source kinds fail
// the same way.
func readFile(path string) response {
	body, err := os.ReadFile(path)
	switch {
	case err == nil:
		return response{status: http.StatusOK, body: body}
	case errors.Is(err, os.ErrNotExist):
		return response{status: http.StatusNotFound}
	case errors.Is(err, os.ErrPermission):
		return response{status: http.StatusForbidden}
	default:
		return response{err: fmt.Errorf("reading %s: %w", path, err)}
	}
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
