package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bNTGeez/value-g/internal/domain/quote"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	// DefaultBaseURL is the Finnhub REST API root
	DefaultBaseURL = "https://finnhub.io/api/v1"

	tokenHeader = "X-Finnhub-Token"
)

// Config holds Finnhub API configuration
type Config struct {
	APIKey  string
	BaseURL string
}

// Client Finnhub REST 클라이언트
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Client.
// The http.Client has no timeout: callers bound requests through the context.
func NewClient(cfg Config) *Client {
	return NewClientWithHTTP(cfg, &http.Client{})
}

// NewClientWithHTTP creates a new Client using the given http.Client
func NewClientWithHTTP(cfg Config, httpClient *http.Client) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:     strings.TrimSpace(cfg.APIKey),
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// QuoteResponse represents Finnhub /quote response
type QuoteResponse struct {
	CurrentPrice  *decimal.Decimal `json:"c"`  // Current price
	Change        *decimal.Decimal `json:"d"`  // Change
	ChangePercent *decimal.Decimal `json:"dp"` // Percent change
	High          *decimal.Decimal `json:"h"`  // High price of the day
	Low           *decimal.Decimal `json:"l"`  // Low price of the day
	Open          *decimal.Decimal `json:"o"`  // Open price of the day
	PreviousClose *decimal.Decimal `json:"pc"` // Previous close price
	Timestamp     *int64           `json:"t"`  // Unix seconds
}

// CheckCredential reports a configuration error when no API key is set
func (c *Client) CheckCredential() error {
	if c.apiKey == "" {
		return quote.ErrAPIKeyNotConfigured
	}
	return nil
}

// GetQuote fetches the current quote for a symbol
func (c *Client) GetQuote(ctx context.Context, symbol quote.Symbol) (quote.Quote, error) {
	if err := c.CheckCredential(); err != nil {
		return quote.Quote{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/quote", nil)
	if err != nil {
		return quote.Quote{}, fmt.Errorf("create request: %w", err)
	}

	q := req.URL.Query()
	q.Add("symbol", symbol.String())
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/json")
	req.Header.Set(tokenHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return quote.Quote{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return quote.Quote{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return quote.Quote{}, fmt.Errorf("%w: symbol=%s status=%d body=%s",
			quote.ErrUnexpectedStatus, symbol, resp.StatusCode, truncate(string(respBody), 200))
	}

	var quoteResp QuoteResponse
	if err := json.Unmarshal(respBody, &quoteResp); err != nil {
		return quote.Quote{}, fmt.Errorf("%w: unmarshal response: %v", quote.ErrInvalidResponse, err)
	}

	log.Debug().
		Str("symbol", symbol.String()).
		Int("status", resp.StatusCode).
		Msg("Fetched quote from Finnhub")

	return quoteResp.toQuote(), nil
}

// toQuote converts Finnhub response to quote.Quote
func (r QuoteResponse) toQuote() quote.Quote {
	q := quote.Quote{
		CurrentPrice:  r.CurrentPrice,
		Change:        r.Change,
		ChangePercent: r.ChangePercent,
		High:          r.High,
		Low:           r.Low,
		Open:          r.Open,
		PreviousClose: r.PreviousClose,
	}
	if r.Timestamp != nil && *r.Timestamp > 0 {
		ts := time.Unix(*r.Timestamp, 0).UTC()
		q.Timestamp = &ts
	}
	return q
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
