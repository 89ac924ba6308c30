package fetch

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/minjae-dev/logsift/internal/parser"
	"github.com/minjae-dev/logsift/internal/record"
)

// defaultTimeout bounds a single fetch request.
const defaultTimeout = 10 * time.Second

// Query holds the fetch request parameters carried as query string values.
type Query struct {
	Limit int
	Start string
	End   string
	Level string
}

// Client fetches records from a real log endpoint over HTTP. Timeout
// handling lives here at the boundary; the analysis core stays free of
// cancellation concerns.
type Client struct {
	http *http.Client
}

// NewClient creates a fetch client with the given request timeout.
// A non-positive timeout selects the default.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: timeout},
	}
}

// Fetch issues a GET to the endpoint with limit/start/end/level query
// parameters and parses the response body as a JSON record sequence, with
// the same leniency as file input.
func (c *Client) Fetch(ctx context.Context, endpoint string, q Query) ([]record.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build fetch request: %w", err)
	}

	params := req.URL.Query()
	params.Set("limit", strconv.Itoa(q.Limit))
	if q.Start != "" {
		params.Set("start", q.Start)
	}
	if q.End != "" {
		params.Set("end", q.End)
	}
	if q.Level != "" {
		params.Set("level", q.Level)
	}
	req.URL.RawQuery = params.Encode()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", endpoint, resp.Status)
	}
	return parser.NewJSONParser().Parse(resp.Body)
}
