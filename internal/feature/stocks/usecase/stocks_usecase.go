// Package usecase は株式カタログ照会のビジネスロジックを実装します。
package usecase

import (
	"context"

	"market_terminal/internal/feature/stocks/domain/entity"
)

// StockRepository はカタログの読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type StockRepository interface {
	// List はカタログ登録順にすべての銘柄を返します。
	List(ctx context.Context) ([]entity.Stock, error)
	// FindByTicker はティッカーで1銘柄を検索します。
	// 該当がない場合は domain.ErrStockNotFound を返します。
	FindByTicker(ctx context.Context, ticker string) (entity.Stock, error)
	// ListWatchlisted はウォッチリスト登録済みの銘柄のみを返します。
	ListWatchlisted(ctx context.Context) ([]entity.Stock, error)
}

// StocksUsecase provides read-only query logic over the stock catalog.
type StocksUsecase struct {
	repo    StockRepository
	asOf    string
	indices []entity.IndexSnapshot
}

// NewStocksUsecase creates a new StocksUsecase. asOf is the snapshot date
// reported by Overview and indices are the benchmark index levels, both
// fixed at catalog load time.
func NewStocksUsecase(repo StockRepository, asOf string, indices []entity.IndexSnapshot) *StocksUsecase {
	return &StocksUsecase{repo: repo, asOf: asOf, indices: indices}
}

// ListStocks returns every stock in catalog insertion order.
func (u *StocksUsecase) ListStocks(ctx context.Context) ([]entity.Stock, error) {
	return u.repo.List(ctx)
}

// GetStock returns the stock identified by ticker, or domain.ErrStockNotFound.
func (u *StocksUsecase) GetStock(ctx context.Context, ticker string) (entity.Stock, error) {
	return u.repo.FindByTicker(ctx, ticker)
}

// ListWatchlist returns the watchlisted subset of the catalog in insertion order.
func (u *StocksUsecase) ListWatchlist(ctx context.Context) ([]entity.Stock, error) {
	return u.repo.ListWatchlisted(ctx)
}

// Overview computes the aggregate market summary over the whole catalog.
// The catalog is static, so the computation always succeeds once List does.
func (u *StocksUsecase) Overview(ctx context.Context) (entity.Overview, error) {
	stocks, err := u.repo.List(ctx)
	if err != nil {
		return entity.Overview{}, err
	}
	return buildOverview(u.asOf, u.indices, stocks), nil
}

// buildOverview is the pure aggregation from the stock list to its summary.
// Advances count moves of exactly 0% as advancing, mirroring how the sign is
// rendered elsewhere. Sector order follows first appearance in the catalog.
func buildOverview(asOf string, indices []entity.IndexSnapshot, stocks []entity.Stock) entity.Overview {
	ov := entity.Overview{AsOf: asOf, Indices: indices, Count: len(stocks)}

	var sum float64
	sectorOrder := make([]string, 0)
	sectorSum := make(map[string]float64)
	sectorCount := make(map[string]int)

	for _, s := range stocks {
		sum += s.ChangePct
		if s.ChangePct >= 0 {
			ov.Advances++
		} else {
			ov.Declines++
		}
		if _, seen := sectorCount[s.Sector]; !seen {
			sectorOrder = append(sectorOrder, s.Sector)
		}
		sectorSum[s.Sector] += s.ChangePct
		sectorCount[s.Sector]++
	}

	if ov.Count > 0 {
		ov.AvgChangePct = sum / float64(ov.Count)
	}

	ov.Sectors = make([]entity.SectorPerformance, 0, len(sectorOrder))
	for _, sector := range sectorOrder {
		ov.Sectors = append(ov.Sectors, entity.SectorPerformance{
			Sector:       sector,
			AvgChangePct: sectorSum[sector] / float64(sectorCount[sector]),
		})
	}
	return ov
}
