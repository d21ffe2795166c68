// Package source fetches samples from the feed bridge over HTTP.
package source

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/McClunatic/modbus-d3/internal/sample"
)

// DefaultTimeout bounds a single request when the caller's context carries no
// deadline of its own.
const DefaultTimeout = 5 * time.Second

// Client issues the two feed requests: GET / for a sample and GET /reset to
// rotate the feed-side sample log.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a Client for the given base URL. A bare host:port is
// accepted and assumed to be http.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "parse feed URL %q", baseURL)
	}
	if u.Host == "" {
		return nil, errors.Errorf("feed URL %q has no host", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(u.String(), "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// wirePoint is the bridge response body: x = seconds since the epoch,
// y = scalar value. Pointer fields so absent keys are distinguishable from
// zero.
type wirePoint struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// Fetch retrieves one sample. Malformed or non-finite payloads are rejected
// here rather than handed to the chart as NaN.
func (c *Client) Fetch(ctx context.Context) (sample.Sample, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return sample.Sample{}, errors.Wrap(err, "build sample request")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return sample.Sample{}, errors.Wrap(err, "fetch sample")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return sample.Sample{}, errors.Errorf("feed returned %s", resp.Status)
	}
	var p wirePoint
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return sample.Sample{}, errors.Wrap(err, "decode sample body")
	}
	if p.X == nil || p.Y == nil {
		return sample.Sample{}, errors.New("sample body missing x or y")
	}
	if !isFinite(*p.X) || !isFinite(*p.Y) {
		return sample.Sample{}, errors.New("sample body has non-finite x or y")
	}
	return sample.FromWire(*p.X, *p.Y), nil
}

// Reset asks the feed to start a fresh sample log. The response body is
// ignored; the caller decides whether the error matters.
func (c *Client) Reset(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reset", nil)
	if err != nil {
		return errors.Wrap(err, "build reset request")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "reset feed")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("feed reset returned %s", resp.Status)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
