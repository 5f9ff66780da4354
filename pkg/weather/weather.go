package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client implements IWeather against the OpenWeatherMap REST API.
type Client struct {
	apiKey        string
	baseURL       string
	geoURL        string
	retryAttempts int
	retryDelay    time.Duration
	maxRetryDelay time.Duration
	httpClient    *http.Client
}

var _ IWeather = (*Client)(nil)

// New creates a new OpenWeatherMap client
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.GeoURL == "" {
		cfg.GeoURL = DefaultGeoURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = defaultRetryAttempts
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaultRetryDelay
	}
	if cfg.MaxRetryDelay <= 0 {
		cfg.MaxRetryDelay = defaultMaxRetryDelay
	}

	return &Client{
		apiKey:        cfg.APIKey,
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		geoURL:        strings.TrimRight(cfg.GeoURL, "/"),
		retryAttempts: cfg.RetryAttempts,
		retryDelay:    cfg.RetryDelay,
		maxRetryDelay: cfg.MaxRetryDelay,
		httpClient:    &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// SetAPIURL points both the data and geocoding endpoints at one host, for tests.
func (c *Client) SetAPIURL(host string) {
	host = strings.TrimRight(host, "/")
	c.baseURL = host + "/data/2.5"
	c.geoURL = host + "/geo/1.0"
}

// SetRetryDelay overrides the backoff base and cap.
func (c *Client) SetRetryDelay(base, max time.Duration) {
	c.retryDelay = base
	c.maxRetryDelay = max
}

// Geocode resolves a free-text place name. At most one match is requested.
func (c *Client) Geocode(ctx context.Context, query string) ([]GeoLocation, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", "1")

	var out []GeoLocation
	if err := c.get(ctx, c.geoURL+"/direct", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Current returns present conditions at the coordinates.
func (c *Client) Current(ctx context.Context, lat, lon float64) (*CurrentResponse, error) {
	var out CurrentResponse
	if err := c.get(ctx, c.baseURL+"/weather", coords(lat, lon), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Forecast returns the 5-day / 3-hour forecast at the coordinates.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (*ForecastResponse, error) {
	var out ForecastResponse
	if err := c.get(ctx, c.baseURL+"/forecast", coords(lat, lon), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func coords(lat, lon float64) url.Values {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("units", units)
	return q
}

// get performs a GET with exponential backoff on timeouts, network errors, 429 and 5xx.
func (c *Client) get(ctx context.Context, endpoint string, q url.Values, out any) error {
	q.Set("appid", c.apiKey)
	target := endpoint + "?" + q.Encode()

	var lastErr error
	for attempt := 1; attempt <= c.retryAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return lastErr
			case <-time.After(c.backoff(attempt - 1)):
			}
		}

		lastErr = c.do(ctx, target, out)
		if lastErr == nil || !retryable(lastErr) {
			return lastErr
		}
	}
	return lastErr
}

func (c *Client) do(ctx context.Context, target string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.retryDelay << (attempt - 1)
	if d > c.maxRetryDelay || d <= 0 {
		d = c.maxRetryDelay
	}
	return d
}

func retryable(err error) bool {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrMalformed) || errors.Is(err, context.Canceled) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.transient()
	}
	return true
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
