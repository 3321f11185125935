// Package handler はstartupsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"market_terminal/internal/feature/startups/domain"
	"market_terminal/internal/feature/startups/domain/entity"
	"market_terminal/internal/feature/startups/transport/http/dto"

	"github.com/gin-gonic/gin"
)

// StartupsUsecase はスタートアップカタログ照会のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type StartupsUsecase interface {
	ListStartups(ctx context.Context) ([]entity.Startup, error)
	GetStartup(ctx context.Context, id string) (entity.Startup, error)
}

// StartupsHandler はスタートアップカタログのHTTPリクエストを処理します。
type StartupsHandler struct {
	uc StartupsUsecase
}

// NewStartupsHandler は指定されたusecaseでStartupsHandlerの新しいインスタンスを生成します。
func NewStartupsHandler(uc StartupsUsecase) *StartupsHandler {
	return &StartupsHandler{uc: uc}
}

// toItem はエンティティからサマリーDTOへの純粋な変換です。
// シグナルスコアはここで導出されます。
func toItem(s entity.Startup) dto.StartupItem {
	return dto.StartupItem{
		ID:          s.ID,
		Name:        s.Name,
		Sector:      s.Sector,
		Stage:       s.Stage,
		SignalScore: s.SignalScore(),
	}
}

// toDetail はエンティティから詳細DTOへの純粋な変換です。
func toDetail(s entity.Startup) dto.StartupDetail {
	momentum := make([]dto.MomentumPoint, 0, len(s.Momentum))
	for _, m := range s.Momentum {
		momentum = append(momentum, dto.MomentumPoint{
			Month:  m.Month,
			Hiring: m.Hiring,
			Buzz:   m.Buzz,
			Events: m.Events,
		})
	}
	return dto.StartupDetail{
		StartupItem: toItem(s),
		Country:     s.Country,
		Overview:    s.Overview,
		Momentum:    momentum,
	}
}

// List はカタログ登録順に全社のサマリーを返すAPIです。
//
// エンドポイント: GET /api/startups
func (h *StartupsHandler) List(c *gin.Context) {
	startups, err := h.uc.ListStartups(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	out := make([]dto.StartupItem, 0, len(startups))
	for _, s := range startups {
		out = append(out, toItem(s))
	}
	c.JSON(http.StatusOK, out)
}

// Get はIDで1社の詳細を返すAPIです。
// 未知のIDに対しては404を返します。
//
// エンドポイント: GET /api/startups/:id
func (h *StartupsHandler) Get(c *gin.Context) {
	id := c.Param("id")

	s, err := h.uc.GetStartup(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrStartupNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: domain.ErrStartupNotFound.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toDetail(s))
}
