package main

import (
	"log"
	"log/slog"
	"os"

	"market_terminal/internal/app/router"
	startupsadapters "market_terminal/internal/feature/startups/adapters"
	startupshandler "market_terminal/internal/feature/startups/transport/handler"
	startupsusecase "market_terminal/internal/feature/startups/usecase"
	stocksadapters "market_terminal/internal/feature/stocks/adapters"
	stockshandler "market_terminal/internal/feature/stocks/transport/handler"
	stocksusecase "market_terminal/internal/feature/stocks/usecase"
	"market_terminal/internal/platform/catalog"
)

func main() {
	// カタログは起動時に一度だけ読み込み、以後不変
	snap, err := catalog.Load()
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}
	slog.Info("catalog loaded", "stocks", len(snap.Stocks), "startups", len(snap.Startups), "as_of", snap.AsOf)

	// Repository
	stockRepo, err := stocksadapters.NewStockMemory(snap.Stocks)
	if err != nil {
		log.Fatalf("invalid stock catalog: %v", err)
	}
	startupRepo, err := startupsadapters.NewStartupMemory(snap.Startups)
	if err != nil {
		log.Fatalf("invalid startup catalog: %v", err)
	}

	// Usecase
	stocksUC := stocksusecase.NewStocksUsecase(stockRepo, snap.AsOf, snap.Indices)
	startupsUC := startupsusecase.NewStartupsUsecase(startupRepo)

	// Handler
	stocksH := stockshandler.NewStocksHandler(stocksUC)
	startupsH := startupshandler.NewStartupsHandler(startupsUC)

	// ルータ生成
	r := router.NewRouter(stocksH, startupsH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
