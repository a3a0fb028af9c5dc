package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the SerpAPI search endpoint
	DefaultBaseURL = "https://serpapi.com/search"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 10 * time.Second

	// DefaultResultCount is the number of results requested per query
	DefaultResultCount = 10
)

// Config configures the SerpAPI client.
type Config struct {
	APIKey         string
	BaseURL        string
	Engine         string
	Language       string // hl parameter
	Country        string // gl parameter
	RequestsPerMin int
	HTTPClient     *http.Client
}

// Client is a rate-limited SerpAPI search client.
type Client struct {
	apiKey     string
	baseURL    string
	engine     string
	language   string
	country    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// New creates a new SerpAPI client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("serpapi: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Engine == "" {
		cfg.Engine = "google"
	}
	if cfg.RequestsPerMin <= 0 {
		cfg.RequestsPerMin = 60
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		engine:     cfg.Engine,
		language:   cfg.Language,
		country:    cfg.Country,
		httpClient: cfg.HTTPClient,
		limiter:    rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMin)/60.0), cfg.RequestsPerMin),
	}, nil
}

// Search runs a query against SerpAPI and returns the parsed results.
// Non-200 statuses surface as *StatusError.
func (c *Client) Search(ctx context.Context, query string) (*Results, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("serpapi: rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("engine", c.engine)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(DefaultResultCount))
	if c.language != "" {
		params.Set("hl", c.language)
	}
	if c.country != "" {
		params.Set("gl", c.country)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("serpapi: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("serpapi: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	var result Results
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("serpapi: failed to decode response: %w", err)
	}

	return &result, nil
}
