// Package handler はstocksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"market_terminal/internal/feature/stocks/domain"
	"market_terminal/internal/feature/stocks/domain/entity"
	"market_terminal/internal/feature/stocks/transport/http/dto"

	"github.com/gin-gonic/gin"
)

// StocksUsecase は株式カタログ照会のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type StocksUsecase interface {
	Overview(ctx context.Context) (entity.Overview, error)
	ListStocks(ctx context.Context) ([]entity.Stock, error)
	GetStock(ctx context.Context, ticker string) (entity.Stock, error)
	ListWatchlist(ctx context.Context) ([]entity.Stock, error)
}

// StocksHandler は株式カタログのHTTPリクエストを処理します。
type StocksHandler struct {
	uc StocksUsecase
}

// NewStocksHandler は指定されたusecaseでStocksHandlerの新しいインスタンスを生成します。
func NewStocksHandler(uc StocksUsecase) *StocksHandler {
	return &StocksHandler{uc: uc}
}

// toItem はエンティティからサマリーDTOへの純粋な変換です。
func toItem(s entity.Stock) dto.StockItem {
	return dto.StockItem{
		Ticker:      s.Ticker,
		Name:        s.Name,
		Sector:      s.Sector,
		Price:       s.Price,
		ChangePct:   s.ChangePct,
		Watchlisted: s.Watchlisted,
		Trend:       string(s.Trend()),
	}
}

// toDetail はエンティティから詳細DTOへの純粋な変換です。
func toDetail(s entity.Stock) dto.StockDetail {
	series := make([]dto.PricePoint, 0, len(s.Series))
	for _, p := range s.Series {
		series = append(series, dto.PricePoint{Date: p.Date, Price: p.Price})
	}
	return dto.StockDetail{StockItem: toItem(s), Series: series}
}

// Overview は全銘柄の集計サマリーを返すAPIです。
//
// エンドポイント: GET /api/stocks/overview
func (h *StocksHandler) Overview(c *gin.Context) {
	ov, err := h.uc.Overview(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	indices := make([]dto.IndexSnapshot, 0, len(ov.Indices))
	for _, ix := range ov.Indices {
		indices = append(indices, dto.IndexSnapshot{Name: ix.Name, Value: ix.Value, ChangePct: ix.ChangePct})
	}
	sectors := make([]dto.SectorPerformance, 0, len(ov.Sectors))
	for _, sp := range ov.Sectors {
		sectors = append(sectors, dto.SectorPerformance{Sector: sp.Sector, AvgChangePct: sp.AvgChangePct})
	}
	c.JSON(http.StatusOK, dto.OverviewResponse{
		AsOf:           ov.AsOf,
		Indices:        indices,
		Count:          ov.Count,
		AvgChangePct:   ov.AvgChangePct,
		AdvanceDecline: dto.AdvanceDecline{Advances: ov.Advances, Declines: ov.Declines},
		Sectors:        sectors,
	})
}

// List はカタログ登録順に全銘柄のサマリーを返すAPIです。
//
// エンドポイント: GET /api/stocks
func (h *StocksHandler) List(c *gin.Context) {
	stocks, err := h.uc.ListStocks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	out := make([]dto.StockItem, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, toItem(s))
	}
	c.JSON(http.StatusOK, out)
}

// Get はティッカーで1銘柄の詳細を返すAPIです。
// 未知のティッカーに対しては404を返します。
//
// エンドポイント: GET /api/stocks/:ticker
func (h *StocksHandler) Get(c *gin.Context) {
	ticker := c.Param("ticker")

	s, err := h.uc.GetStock(c.Request.Context(), ticker)
	if err != nil {
		if errors.Is(err, domain.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: domain.ErrStockNotFound.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toDetail(s))
}

// Watchlist はウォッチリスト登録済み銘柄のサマリーを返すAPIです。
//
// エンドポイント: GET /api/stocks/watchlist
func (h *StocksHandler) Watchlist(c *gin.Context) {
	stocks, err := h.uc.ListWatchlist(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	out := make([]dto.StockItem, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, toItem(s))
	}
	c.JSON(http.StatusOK, out)
}
