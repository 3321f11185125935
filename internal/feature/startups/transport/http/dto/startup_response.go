// Package dto defines data transfer objects for the startups HTTP API.
package dto

// StartupItem はAPIレスポンス内の1社のサマリー表現です。
type StartupItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Sector      string  `json:"sector"`
	Stage       string  `json:"stage"`
	SignalScore float64 `json:"signal_score"`
}

// MomentumPoint は月次シグナル履歴の1点です。
type MomentumPoint struct {
	Month  string   `json:"month"`
	Hiring int      `json:"hiring"`
	Buzz   int      `json:"buzz"`
	Events []string `json:"events,omitempty"`
}

// StartupDetail は1社の詳細表現で、サマリーに履歴と説明を加えたものです。
type StartupDetail struct {
	StartupItem
	Country  string          `json:"country"`
	Overview string          `json:"overview"`
	Momentum []MomentumPoint `json:"momentum"`
}

// ErrorResponse はエラー時の共通JSONボディです。
type ErrorResponse struct {
	Error string `json:"error"`
}
