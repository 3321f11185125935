package adapters

import (
	"context"
	"testing"

	"market_terminal/internal/feature/stocks/domain"
	"market_terminal/internal/feature/stocks/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedStocks はテスト用のカタログスナップショットを返します。
func seedStocks() []entity.Stock {
	return []entity.Stock{
		{Ticker: "RELIANCE", Name: "Reliance Industries", Sector: "Energy", Watchlisted: true,
			Series: []entity.PricePoint{
				{Date: "2026-08-29", Price: 2851.80},
				{Date: "2026-08-30", Price: 2874.50},
			}},
		{Ticker: "TCS", Name: "Tata Consultancy Services", Sector: "IT Services", Watchlisted: true},
		{Ticker: "INFY", Name: "Infosys", Sector: "IT Services", Watchlisted: false},
		{Ticker: "HDFCBANK", Name: "HDFC Bank", Sector: "Banking", Watchlisted: true},
	}
}

// TestNewStockMemory はコンストラクタの生成と重複検出を検証します。
func TestNewStockMemory(t *testing.T) {
	t.Parallel()

	t.Run("success: builds repository from snapshot", func(t *testing.T) {
		t.Parallel()

		repo, err := NewStockMemory(seedStocks())
		require.NoError(t, err)
		assert.NotNil(t, repo)
	})

	t.Run("failure: duplicate ticker is rejected", func(t *testing.T) {
		t.Parallel()

		stocks := append(seedStocks(), entity.Stock{Ticker: "TCS", Name: "Duplicate"})
		repo, err := NewStockMemory(stocks)
		assert.Nil(t, repo)
		assert.ErrorContains(t, err, "duplicate ticker")
	})

	t.Run("success: empty snapshot is valid", func(t *testing.T) {
		t.Parallel()

		repo, err := NewStockMemory(nil)
		require.NoError(t, err)

		stocks, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, stocks)
	})
}

// TestStockMemory_List はカタログ登録順の維持とスナップショットの独立性を検証します。
func TestStockMemory_List(t *testing.T) {
	t.Parallel()

	repo, err := NewStockMemory(seedStocks())
	require.NoError(t, err)

	stocks, err := repo.List(context.Background())
	require.NoError(t, err)

	tickers := make([]string, 0, len(stocks))
	for _, s := range stocks {
		tickers = append(tickers, s.Ticker)
	}
	assert.Equal(t, []string{"RELIANCE", "TCS", "INFY", "HDFCBANK"}, tickers)

	// 返却スライスを書き換えてもリポジトリ側のスナップショットは変わらない
	stocks[0].Ticker = "MUTATED"
	again, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "RELIANCE", again[0].Ticker)
}

// TestStockMemory_SnapshotIsolation は返却値のネストしたスライスを書き換えても
// スナップショットへ波及しないことを検証します。トップレベルのフィールドだけで
// なく、Seriesのスライスヘッダも共有されてはいけません。
func TestStockMemory_SnapshotIsolation(t *testing.T) {
	t.Parallel()

	seed := seedStocks()
	repo, err := NewStockMemory(seed)
	require.NoError(t, err)

	// List経由で得たSeriesの要素を書き換える
	stocks, err := repo.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, stocks[0].Series)
	stocks[0].Series[0].Price = 999

	// FindByTicker経由の再取得はカタログの元の値を返す
	s, err := repo.FindByTicker(context.Background(), "RELIANCE")
	require.NoError(t, err)
	assert.Equal(t, 2851.80, s.Series[0].Price)

	// FindByTicker経由の書き換えも波及しない
	s.Series[1].Price = -1
	again, err := repo.FindByTicker(context.Background(), "RELIANCE")
	require.NoError(t, err)
	assert.Equal(t, 2874.50, again.Series[1].Price)

	// コンストラクタへ渡した元スライスの書き換えも波及しない
	seed[0].Series[0].Price = 0
	once, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2851.80, once[0].Series[0].Price)
}

// TestStockMemory_FindByTicker はFindByTickerメソッドの各種シナリオをテーブル駆動テストで検証します。
func TestStockMemory_FindByTicker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ticker  string
		wantErr error
	}{
		{name: "success: first entry", ticker: "RELIANCE"},
		{name: "success: last entry", ticker: "HDFCBANK"},
		{name: "failure: unknown ticker", ticker: "UNKNOWN", wantErr: domain.ErrStockNotFound},
		{name: "failure: lookup is case sensitive", ticker: "tcs", wantErr: domain.ErrStockNotFound},
		{name: "failure: empty ticker", ticker: "", wantErr: domain.ErrStockNotFound},
	}

	repo, err := NewStockMemory(seedStocks())
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := repo.FindByTicker(context.Background(), tt.ticker)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			// 返された銘柄のティッカーは要求したものと一致する
			assert.Equal(t, tt.ticker, s.Ticker)
		})
	}
}

// TestStockMemory_ListWatchlisted はウォッチリストが全銘柄の真部分集合であることを検証します。
func TestStockMemory_ListWatchlisted(t *testing.T) {
	t.Parallel()

	repo, err := NewStockMemory(seedStocks())
	require.NoError(t, err)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	watchlisted, err := repo.ListWatchlisted(context.Background())
	require.NoError(t, err)

	inCatalog := make(map[string]bool, len(all))
	for _, s := range all {
		inCatalog[s.Ticker] = true
	}

	require.Len(t, watchlisted, 3)
	for _, s := range watchlisted {
		assert.True(t, s.Watchlisted, "watchlist must only contain watchlisted stocks")
		assert.True(t, inCatalog[s.Ticker], "watchlist entries must come from the catalog")
	}
	// watchlisted=false の銘柄は含まれない
	for _, s := range watchlisted {
		assert.NotEqual(t, "INFY", s.Ticker)
	}
}

// TestStockMemory_ContextCancellation はキャンセル済みコンテキストでの読み取りがエラーになることを検証します。
func TestStockMemory_ContextCancellation(t *testing.T) {
	t.Parallel()

	repo, err := NewStockMemory(seedStocks())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = repo.FindByTicker(ctx, "TCS")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = repo.ListWatchlisted(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
