// Package dto defines data transfer objects for the stocks HTTP API.
package dto

// StockItem はAPIレスポンス内の1銘柄のサマリー表現です。
// クライアントが必要とする公開フィールドのみを含みます。
type StockItem struct {
	Ticker      string  `json:"ticker"`
	Name        string  `json:"name"`
	Sector      string  `json:"sector"`
	Price       float64 `json:"price"`
	ChangePct   float64 `json:"change_pct"`
	Watchlisted bool    `json:"watchlisted"`
	Trend       string  `json:"trend"`
}

// PricePoint は価格履歴の1日分です。
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// StockDetail は1銘柄の詳細表現で、サマリーに価格履歴を加えたものです。
type StockDetail struct {
	StockItem
	Series []PricePoint `json:"series"`
}

// IndexSnapshot はベンチマーク指数の最新値です。
type IndexSnapshot struct {
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	ChangePct float64 `json:"change_pct"`
}

// SectorPerformance はセクター別の平均騰落率です。
type SectorPerformance struct {
	Sector       string  `json:"sector"`
	AvgChangePct float64 `json:"avg_change_pct"`
}

// AdvanceDecline は値上がり・値下がり銘柄数の集計です。
type AdvanceDecline struct {
	Advances int `json:"advances"`
	Declines int `json:"declines"`
}

// OverviewResponse は /api/stocks/overview のレスポンスです。
type OverviewResponse struct {
	AsOf           string              `json:"as_of"`
	Indices        []IndexSnapshot     `json:"indices"`
	Count          int                 `json:"count"`
	AvgChangePct   float64             `json:"avg_change_pct"`
	AdvanceDecline AdvanceDecline      `json:"advance_decline"`
	Sectors        []SectorPerformance `json:"sectors"`
}

// ErrorResponse はエラー時の共通JSONボディです。
type ErrorResponse struct {
	Error string `json:"error"`
}
