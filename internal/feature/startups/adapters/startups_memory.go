// Package adapters はstartupsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"fmt"

	"market_terminal/internal/feature/startups/domain"
	"market_terminal/internal/feature/startups/domain/entity"
	"market_terminal/internal/feature/startups/usecase"
)

// startupMemory はStartupRepositoryインターフェースのインメモリ実装です。
// カタログは起動時に一度だけ構築され、以後不変です。
type startupMemory struct {
	startups []entity.Startup
	byID     map[string]int
}

var _ usecase.StartupRepository = (*startupMemory)(nil)

// NewStartupMemory は与えられたスナップショットからリポジトリを生成します。
// IDはカタログ内で一意でなければならず、重複があればエラーを返します。
func NewStartupMemory(startups []entity.Startup) (*startupMemory, error) {
	r := &startupMemory{
		startups: make([]entity.Startup, len(startups)),
		byID:     make(map[string]int, len(startups)),
	}
	for i, s := range startups {
		if _, dup := r.byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate startup id in catalog: %s", s.ID)
		}
		r.startups[i] = cloneStartup(s)
		r.byID[s.ID] = i
	}
	return r, nil
}

// cloneStartup はMomentumと各月のEventsを含めた深いコピーを返します。
// 浅いコピーではスライスヘッダがスナップショットの配列を共有してしまい、
// 呼び出し側の書き換えがカタログへ波及します。
func cloneStartup(s entity.Startup) entity.Startup {
	out := s
	if s.Momentum != nil {
		out.Momentum = make([]entity.MomentumPoint, len(s.Momentum))
		for i, m := range s.Momentum {
			out.Momentum[i] = m
			if m.Events != nil {
				out.Momentum[i].Events = make([]string, len(m.Events))
				copy(out.Momentum[i].Events, m.Events)
			}
		}
	}
	return out
}

// List はカタログ登録順にすべてのスタートアップのコピーを返します。
func (r *startupMemory) List(ctx context.Context) ([]entity.Startup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]entity.Startup, len(r.startups))
	for i, s := range r.startups {
		out[i] = cloneStartup(s)
	}
	return out, nil
}

// FindByID はIDで1社を検索します。
func (r *startupMemory) FindByID(ctx context.Context, id string) (entity.Startup, error) {
	if err := ctx.Err(); err != nil {
		return entity.Startup{}, err
	}
	i, ok := r.byID[id]
	if !ok {
		return entity.Startup{}, domain.ErrStartupNotFound
	}
	return cloneStartup(r.startups[i]), nil
}
