// Package catalog loads the static data snapshot served by the API.
// The snapshot ships embedded in the binary and is parsed exactly once;
// after Load returns, nothing in the process mutates it.
package catalog

import (
	_ "embed"
	"fmt"
	"time"

	startupentity "market_terminal/internal/feature/startups/domain/entity"
	stockentity "market_terminal/internal/feature/stocks/domain/entity"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Snapshot is the immutable catalog loaded at process start.
type Snapshot struct {
	AsOf     string // Load date, YYYY-MM-DD
	Indices  []stockentity.IndexSnapshot
	Stocks   []stockentity.Stock
	Startups []startupentity.Startup
}

// 埋め込みYAMLのデコード用の中間構造体。エンティティにはyamlタグを
// 持たせたくないため、ここで一段変換します。
type document struct {
	Indices []struct {
		Name      string  `yaml:"name"`
		Value     float64 `yaml:"value"`
		ChangePct float64 `yaml:"change_pct"`
	} `yaml:"indices"`
	Stocks []struct {
		Ticker      string  `yaml:"ticker"`
		Name        string  `yaml:"name"`
		Sector      string  `yaml:"sector"`
		Price       float64 `yaml:"price"`
		ChangePct   float64 `yaml:"change_pct"`
		Watchlisted bool    `yaml:"watchlisted"`
		Series      []struct {
			Date  string  `yaml:"date"`
			Price float64 `yaml:"price"`
		} `yaml:"series"`
	} `yaml:"stocks"`
	Startups []struct {
		ID       string `yaml:"id"`
		Name     string `yaml:"name"`
		Sector   string `yaml:"sector"`
		Stage    string `yaml:"stage"`
		Country  string `yaml:"country"`
		Overview string `yaml:"overview"`
		Momentum []struct {
			Month  string   `yaml:"month"`
			Hiring int      `yaml:"hiring"`
			Buzz   int      `yaml:"buzz"`
			Events []string `yaml:"events"`
		} `yaml:"momentum"`
	} `yaml:"startups"`
}

// Load parses the embedded catalog into entity slices, preserving document
// order. It stamps the snapshot with the current date, which the overview
// endpoint reports as as_of.
func Load() (*Snapshot, error) {
	return parse(catalogYAML, time.Now())
}

// parse is split from Load so tests can feed their own document and clock.
func parse(raw []byte, now time.Time) (*Snapshot, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	snap := &Snapshot{
		AsOf:     now.Format("2006-01-02"),
		Indices:  make([]stockentity.IndexSnapshot, 0, len(doc.Indices)),
		Stocks:   make([]stockentity.Stock, 0, len(doc.Stocks)),
		Startups: make([]startupentity.Startup, 0, len(doc.Startups)),
	}

	for _, i := range doc.Indices {
		snap.Indices = append(snap.Indices, stockentity.IndexSnapshot{
			Name:      i.Name,
			Value:     i.Value,
			ChangePct: i.ChangePct,
		})
	}

	for _, s := range doc.Stocks {
		series := make([]stockentity.PricePoint, 0, len(s.Series))
		for _, p := range s.Series {
			series = append(series, stockentity.PricePoint{Date: p.Date, Price: p.Price})
		}
		snap.Stocks = append(snap.Stocks, stockentity.Stock{
			Ticker:      s.Ticker,
			Name:        s.Name,
			Sector:      s.Sector,
			Price:       s.Price,
			ChangePct:   s.ChangePct,
			Watchlisted: s.Watchlisted,
			Series:      series,
		})
	}

	for _, s := range doc.Startups {
		momentum := make([]startupentity.MomentumPoint, 0, len(s.Momentum))
		for _, m := range s.Momentum {
			momentum = append(momentum, startupentity.MomentumPoint{
				Month:  m.Month,
				Hiring: m.Hiring,
				Buzz:   m.Buzz,
				Events: m.Events,
			})
		}
		snap.Startups = append(snap.Startups, startupentity.Startup{
			ID:       s.ID,
			Name:     s.Name,
			Sector:   s.Sector,
			Stage:    s.Stage,
			Country:  s.Country,
			Overview: s.Overview,
			Momentum: momentum,
		})
	}

	return snap, nil
}
