// Package adapters はstocksフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"fmt"

	"market_terminal/internal/feature/stocks/domain"
	"market_terminal/internal/feature/stocks/domain/entity"
	"market_terminal/internal/feature/stocks/usecase"
)

// stockMemory はStockRepositoryインターフェースのインメモリ実装です。
// カタログはプロセス起動時に一度だけ構築され、以後変更されないため
// ロックなしで安全に読み取れます。
type stockMemory struct {
	stocks   []entity.Stock
	byTicker map[string]int
}

var _ usecase.StockRepository = (*stockMemory)(nil)

// NewStockMemory は与えられたスナップショットからリポジトリを生成します。
// ティッカーはカタログ内で一意でなければならず、重複があればエラーを返します。
func NewStockMemory(stocks []entity.Stock) (*stockMemory, error) {
	r := &stockMemory{
		stocks:   make([]entity.Stock, len(stocks)),
		byTicker: make(map[string]int, len(stocks)),
	}
	for i, s := range stocks {
		if _, dup := r.byTicker[s.Ticker]; dup {
			return nil, fmt.Errorf("duplicate ticker in catalog: %s", s.Ticker)
		}
		r.stocks[i] = cloneStock(s)
		r.byTicker[s.Ticker] = i
	}
	return r, nil
}

// cloneStock はSeriesを含めた深いコピーを返します。浅いコピーでは
// スライスヘッダがスナップショットの配列を共有してしまい、呼び出し側の
// 書き換えがカタログへ波及します。
func cloneStock(s entity.Stock) entity.Stock {
	out := s
	if s.Series != nil {
		out.Series = make([]entity.PricePoint, len(s.Series))
		copy(out.Series, s.Series)
	}
	return out
}

// List はカタログ登録順にすべての銘柄のコピーを返します。
func (r *stockMemory) List(ctx context.Context) ([]entity.Stock, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]entity.Stock, len(r.stocks))
	for i, s := range r.stocks {
		out[i] = cloneStock(s)
	}
	return out, nil
}

// FindByTicker はティッカーで1銘柄を検索します。
func (r *stockMemory) FindByTicker(ctx context.Context, ticker string) (entity.Stock, error) {
	if err := ctx.Err(); err != nil {
		return entity.Stock{}, err
	}
	i, ok := r.byTicker[ticker]
	if !ok {
		return entity.Stock{}, domain.ErrStockNotFound
	}
	return cloneStock(r.stocks[i]), nil
}

// ListWatchlisted はウォッチリスト登録済みの銘柄のみを登録順に返します。
func (r *stockMemory) ListWatchlisted(ctx context.Context) ([]entity.Stock, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]entity.Stock, 0, len(r.stocks))
	for _, s := range r.stocks {
		if s.Watchlisted {
			out = append(out, cloneStock(s))
		}
	}
	return out, nil
}
