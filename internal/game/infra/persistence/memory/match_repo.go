package memory

import (
	"LuxAI/internal/game/entity"
	"LuxAI/internal/shared/gameconfig/match"
	"context"
	"sync"
)

// MatchRepository 进程内存储，开发与测试用。只保留每个对局最高版本的快照。
type MatchRepository struct {
	configs *match.Config

	mu    sync.RWMutex
	snaps map[entity.MatchID]*entity.MatchPersistSnapshot
}

func NewMatchRepository(configs *match.Config) *MatchRepository {
	return &MatchRepository{
		configs: configs,
		snaps:   make(map[entity.MatchID]*entity.MatchPersistSnapshot),
	}
}

func (r *MatchRepository) LoadMatch(ctx context.Context, id entity.MatchID) (*entity.Match, error) {
	_ = ctx
	r.mu.RLock()
	s, ok := r.snaps[id]
	r.mu.RUnlock()
	if !ok {
		return entity.NewMatch(id, r.configs), nil
	}
	return entity.HydrateMatch(r.configs, s), nil
}

func (r *MatchRepository) Save(ctx context.Context, s *entity.MatchPersistSnapshot) error {
	_ = ctx
	if s == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.snaps[s.MatchID]; ok && prev.Version > s.Version {
		return nil
	}
	r.snaps[s.MatchID] = s
	return nil
}

// Snapshot 测试用。
func (r *MatchRepository) Snapshot(id entity.MatchID) (*entity.MatchPersistSnapshot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.snaps[id]
	return s, ok
}
