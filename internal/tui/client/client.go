// Package client is the typed HTTP client the terminal uses to talk to the
// data service. Every call returns per-request copies of the response; the
// client holds no state beyond the base URL and the underlying http.Client.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	platformhttp "market_terminal/internal/platform/http"
)

// DefaultBaseURL is used when API_BASE is not set, matching the data
// service's default listen address.
const DefaultBaseURL = "http://localhost:8000"

const requestTimeout = 10 * time.Second

// ErrNotFound is returned when the service answers 404 for a lookup.
var ErrNotFound = errors.New("not found")

// Stock is a row of the stocks table as served by the API.
type Stock struct {
	Ticker      string  `json:"ticker"`
	Name        string  `json:"name"`
	Sector      string  `json:"sector"`
	Price       float64 `json:"price"`
	ChangePct   float64 `json:"change_pct"`
	Watchlisted bool    `json:"watchlisted"`
	Trend       string  `json:"trend"`
}

// PricePoint is one day of close-price history.
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// StockDetail is a stock with its price history.
type StockDetail struct {
	Stock
	Series []PricePoint `json:"series"`
}

// Startup is a row of the startups table as served by the API.
type Startup struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Sector      string  `json:"sector"`
	Stage       string  `json:"stage"`
	SignalScore float64 `json:"signal_score"`
}

// MomentumPoint is one month of hiring/buzz signal history.
type MomentumPoint struct {
	Month  string   `json:"month"`
	Hiring int      `json:"hiring"`
	Buzz   int      `json:"buzz"`
	Events []string `json:"events"`
}

// StartupDetail is a startup with its description and momentum history.
type StartupDetail struct {
	Startup
	Country  string          `json:"country"`
	Overview string          `json:"overview"`
	Momentum []MomentumPoint `json:"momentum"`
}

// IndexSnapshot is one benchmark index level.
type IndexSnapshot struct {
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	ChangePct float64 `json:"change_pct"`
}

// AdvanceDecline is the advancing/declining stock count pair.
type AdvanceDecline struct {
	Advances int `json:"advances"`
	Declines int `json:"declines"`
}

// SectorPerformance is one sector's average daily change.
type SectorPerformance struct {
	Sector       string  `json:"sector"`
	AvgChangePct float64 `json:"avg_change_pct"`
}

// Overview is the aggregate market summary.
type Overview struct {
	AsOf           string              `json:"as_of"`
	Indices        []IndexSnapshot     `json:"indices"`
	Count          int                 `json:"count"`
	AvgChangePct   float64             `json:"avg_change_pct"`
	AdvanceDecline AdvanceDecline      `json:"advance_decline"`
	Sectors        []SectorPerformance `json:"sectors"`
}

// Client issues GET requests against the data service.
type Client struct {
	base string
	hc   *http.Client
}

// New creates a Client for the given base URL. An empty base falls back to
// DefaultBaseURL.
func New(base string) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{base: base, hc: platformhttp.NewHTTPClient(requestTimeout)}
}

// get fetches path and decodes the JSON body into out.
// A 404 maps to ErrNotFound; any other non-200 status is a plain error.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, resp.Body)
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Overview fetches the aggregate market summary.
func (c *Client) Overview(ctx context.Context) (Overview, error) {
	var ov Overview
	err := c.get(ctx, "/api/stocks/overview", &ov)
	return ov, err
}

// ListStocks fetches all stocks in catalog order.
func (c *Client) ListStocks(ctx context.Context) ([]Stock, error) {
	var out []Stock
	err := c.get(ctx, "/api/stocks", &out)
	return out, err
}

// GetStock fetches one stock with its price history.
func (c *Client) GetStock(ctx context.Context, ticker string) (StockDetail, error) {
	var out StockDetail
	err := c.get(ctx, "/api/stocks/"+ticker, &out)
	return out, err
}

// Watchlist fetches only the watchlisted stocks.
func (c *Client) Watchlist(ctx context.Context) ([]Stock, error) {
	var out []Stock
	err := c.get(ctx, "/api/stocks/watchlist", &out)
	return out, err
}

// ListStartups fetches all startups in catalog order.
func (c *Client) ListStartups(ctx context.Context) ([]Startup, error) {
	var out []Startup
	err := c.get(ctx, "/api/startups", &out)
	return out, err
}

// GetStartup fetches one startup with its momentum history.
func (c *Client) GetStartup(ctx context.Context, id string) (StartupDetail, error) {
	var out StartupDetail
	err := c.get(ctx, "/api/startups/"+id, &out)
	return out, err
}
