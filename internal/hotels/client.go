package hotels

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const httpTimeout = 10 * time.Second

// Client issues credentialed search requests against the upstream
// hotel-search API. The outbound call is parameterized solely by the
// location identifier; checkin/checkout and party size are validated
// locally but the upstream endpoint is keyed by location only.
type Client struct {
	baseURL string
	creds   Credentials
	client  *http.Client
}

// NewClient constructs a Client for the given upstream base URL. The
// credentials are attached to every request as HTTP basic auth.
func NewClient(baseURL string, creds Credentials) *Client {
	return &Client{
		baseURL: baseURL,
		creds:   creds,
		client:  &http.Client{Timeout: httpTimeout},
	}
}

// Search fetches hotels for one location. It makes exactly one attempt; any
// failure is reported as an *UpstreamError, with the upstream HTTP status
// when one was received. Cancelling ctx cancels the outbound call.
func (c *Client) Search(ctx context.Context, locationID int) (*SearchResult, error) {
	endpoint := fmt.Sprintf("%s/api/hotel/search?location_id=%d", c.baseURL, locationID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for location %d: %w", locationID, err)
	}
	req.SetBasicAuth(c.creds.Username, c.creds.Password)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &UpstreamError{Err: fmt.Errorf("GET %s: %w", endpoint, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Status: resp.StatusCode}
	}

	var result SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &UpstreamError{Err: fmt.Errorf("decoding search response: %w", err)}
	}

	// A response without a data array violates the upstream contract; fail
	// closed rather than return a malformed result.
	if result.Data == nil {
		return nil, &UpstreamError{Err: fmt.Errorf("search response for location %d missing data array", locationID)}
	}

	return &result, nil
}
