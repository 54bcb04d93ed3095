package workload

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/utkarsh5026/parabench/runner"
)

// DefaultURL is the fixed endpoint the I/O comparator fetches. A single
// well-known URL keeps every mode's work identical; there is no retry and
// no exposed timeout configuration.
const DefaultURL = "https://www.google.com/"

// Fetcher is the I/O-bound unit of work: one HTTP GET whose result is the
// response status code. The wait on the network is wrapped in
// runner.AllowBlocking, so under a global lock the time spent waiting is
// handed to other workers, which is why I/O-bound work still overlaps even
// when computation is serialized.
type Fetcher struct {
	URL    string
	Client *http.Client
}

// NewFetcher creates a fetcher for the given URL using http.DefaultClient.
// Tests substitute their own client and URL (httptest).
func NewFetcher(url string) *Fetcher {
	return &Fetcher{URL: url, Client: http.DefaultClient}
}

// Fetch performs the GET and returns the status code. The body is drained
// and closed so connections are reused across work items.
func (f *Fetcher) Fetch(ctx context.Context, index int) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return 0, fmt.Errorf("building request: %w", err)
	}

	var resp *http.Response
	var doErr error
	runner.AllowBlocking(ctx, func() {
		resp, doErr = f.Client.Do(req)
	})
	if doErr != nil {
		return 0, fmt.Errorf("fetching %s: %w", f.URL, doErr)
	}
	defer func() { _ = resp.Body.Close() }()

	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return 0, fmt.Errorf("draining response body: %w", err)
	}
	return resp.StatusCode, nil
}
