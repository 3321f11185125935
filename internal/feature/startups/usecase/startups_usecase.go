// Package usecase はスタートアップカタログ照会のビジネスロジックを実装します。
package usecase

import (
	"context"

	"market_terminal/internal/feature/startups/domain/entity"
)

// StartupRepository はカタログの読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type StartupRepository interface {
	// List はカタログ登録順にすべてのスタートアップを返します。
	List(ctx context.Context) ([]entity.Startup, error)
	// FindByID はIDで1社を検索します。
	// 該当がない場合は domain.ErrStartupNotFound を返します。
	FindByID(ctx context.Context, id string) (entity.Startup, error)
}

// StartupsUsecase provides read-only query logic over the startup catalog.
type StartupsUsecase struct {
	repo StartupRepository
}

// NewStartupsUsecase creates a new StartupsUsecase with the given repository.
func NewStartupsUsecase(repo StartupRepository) *StartupsUsecase {
	return &StartupsUsecase{repo: repo}
}

// ListStartups returns every startup in catalog insertion order.
func (u *StartupsUsecase) ListStartups(ctx context.Context) ([]entity.Startup, error) {
	return u.repo.List(ctx)
}

// GetStartup returns the startup identified by id, or domain.ErrStartupNotFound.
func (u *StartupsUsecase) GetStartup(ctx context.Context, id string) (entity.Startup, error) {
	return u.repo.FindByID(ctx, id)
}
