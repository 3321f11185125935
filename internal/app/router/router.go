package router

import (
	startupshandler "market_terminal/internal/feature/startups/transport/handler"
	stockshandler "market_terminal/internal/feature/stocks/transport/handler"
	"market_terminal/internal/platform/http/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(stocks *stockshandler.StocksHandler, startups *startupshandler.StartupsHandler) *gin.Engine {
	r := gin.Default()
	// 端末クライアント以外（ブラウザからの動作確認など）も想定してCORSはデフォルト許可
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/healthz", handler.Health)

	api := r.Group("/api")
	{
		// overview / watchlist の静的パスは :ticker より優先して解決される
		api.GET("/stocks/overview", stocks.Overview)
		api.GET("/stocks/watchlist", stocks.Watchlist)
		api.GET("/stocks", stocks.List)
		api.GET("/stocks/:ticker", stocks.Get)
		api.GET("/startups", startups.List)
		api.GET("/startups/:id", startups.Get)
	}

	return r
}
