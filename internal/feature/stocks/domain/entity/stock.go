// Package entity defines the domain models for the stocks feature.
package entity

// Trend classifies the direction of a stock's daily move.
type Trend string

const (
	TrendUp   Trend = "Up"
	TrendFlat Trend = "Flat"
	TrendDown Trend = "Down"
)

// trendThreshold is the daily change (in percentage points) below which
// a move is considered noise and reported as Flat.
const trendThreshold = 0.25

// Stock represents one tracked public stock in the catalog.
// Records are loaded once at service start and never mutated afterwards.
type Stock struct {
	Ticker      string       // Unique ticker symbol (e.g., "RELIANCE", "TCS")
	Name        string       // Company display name
	Sector      string       // Sector display name (e.g., "Energy", "IT Services")
	Price       float64      // Latest snapshot price
	ChangePct   float64      // Daily change in percent
	Watchlisted bool         // Whether the stock is on the watchlist
	Series      []PricePoint // Recent daily closes, oldest first
}

// PricePoint is one day of close-price history.
type PricePoint struct {
	Date  string  // ISO date (YYYY-MM-DD)
	Price float64 // Closing price on that date
}

// Trend derives the direction label from the daily change.
// Moves within ±trendThreshold percentage points count as Flat.
func (s Stock) Trend() Trend {
	switch {
	case s.ChangePct >= trendThreshold:
		return TrendUp
	case s.ChangePct <= -trendThreshold:
		return TrendDown
	default:
		return TrendFlat
	}
}

// IndexSnapshot is one benchmark index level from the catalog snapshot.
type IndexSnapshot struct {
	Name      string  // Index display name (e.g., "NIFTY 50")
	Value     float64 // Latest index level
	ChangePct float64 // Daily change in percent
}

// SectorPerformance is the average daily change of one sector,
// aggregated over every stock in that sector.
type SectorPerformance struct {
	Sector       string
	AvgChangePct float64
}

// Overview is the aggregate market summary computed over the whole catalog.
type Overview struct {
	AsOf         string          // Snapshot date the catalog was loaded (YYYY-MM-DD)
	Indices      []IndexSnapshot // Benchmark indices in catalog order
	Count        int             // Number of stocks in the catalog
	AvgChangePct float64
	Advances     int // Stocks with ChangePct >= 0
	Declines     int // Stocks with ChangePct < 0
	Sectors      []SectorPerformance
}
