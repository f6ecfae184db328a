package port

import (
	"LuxAI/internal/game/entity"
	"context"
)

// MatchRepository 不存在的对局返回按配置新建的空地图，而不是错误。
type MatchRepository interface {
	LoadMatch(ctx context.Context, id entity.MatchID) (*entity.Match, error)
	Save(ctx context.Context, s *entity.MatchPersistSnapshot) error
}
