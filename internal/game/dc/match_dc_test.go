package dc

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"LuxAI/internal/game/domain"
	"LuxAI/internal/game/entity"
	"LuxAI/internal/game/infra/persistence/memory"
	"LuxAI/internal/shared/gameconfig/match"
)

type fakeRepo struct {
	mu       sync.Mutex
	saved    []*entity.MatchPersistSnapshot
	failures int
}

func (r *fakeRepo) LoadMatch(ctx context.Context, id entity.MatchID) (*entity.Match, error) {
	return entity.NewMatch(id, match.Default()), nil
}

func (r *fakeRepo) Save(ctx context.Context, s *entity.MatchPersistSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failures > 0 {
		r.failures--
		return errors.New("store down")
	}
	r.saved = append(r.saved, s)
	return nil
}

func (r *fakeRepo) savedVersions() []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uint64, 0, len(r.saved))
	for _, s := range r.saved {
		out = append(out, s.Version)
	}
	return out
}

func TestMatchDC_Close时写入最新快照(t *testing.T) {
	repo := &fakeRepo{}
	d := NewMatchDC(repo, time.Hour, nil)
	m, err := d.Load(context.Background(), 1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	_, _ = m.SetResource(0, 0, domain.Wood, 10)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := d.Close(ctx); err != nil {
		t.Fatalf("Close: %v", err)
	}
	got := repo.savedVersions()
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("期望写入 1 个版本 1 的快照, got=%v", got)
	}
	if m.Dirty() {
		t.Fatalf("期望 Flush 后清脏")
	}
}

func TestMatchDC_不脏不写(t *testing.T) {
	repo := &fakeRepo{}
	d := NewMatchDC(repo, time.Hour, nil)
	_, _ = d.Load(context.Background(), 1)
	d.Flush()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = d.Close(ctx)
	if got := repo.savedVersions(); len(got) != 0 {
		t.Fatalf("期望没有写入, got=%v", got)
	}
}

func TestMatchDC_失败后重试(t *testing.T) {
	repo := &fakeRepo{failures: 1}
	d := NewMatchDC(repo, time.Hour, nil)
	m, _ := d.Load(context.Background(), 1)
	_, _ = m.SetCityTile(1, 1, domain.TeamA, "c_1")
	d.Flush()

	deadline := time.Now().Add(2 * time.Second)
	for len(repo.savedVersions()) == 0 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	if got := repo.savedVersions(); len(got) != 1 {
		t.Fatalf("期望重试后写入成功, got=%v", got)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = d.Close(ctx)
}

func TestMatchDC_nil仓库(t *testing.T) {
	d := NewMatchDC(nil, 0, nil)
	if _, err := d.Load(context.Background(), 1); err == nil {
		t.Fatalf("期望 nil 仓库报错")
	}
	if d.FlushEvery() != defaultFlushEvery {
		t.Fatalf("期望默认刷新间隔")
	}
	_ = d.Close(context.Background())
}

func closeDC(t *testing.T, d *MatchDC) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := d.Close(ctx); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestMatchDC_重新加载后版本接续(t *testing.T) {
	repo := memory.NewMatchRepository(match.Default())

	first := NewMatchDC(repo, time.Hour, nil)
	m, err := first.Load(context.Background(), 5)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, amount := range []int{10, 20, 30} {
		_, _ = m.SetResource(0, 0, domain.Wood, amount)
		first.Flush()
	}
	closeDC(t, first)
	if s, ok := repo.Snapshot(5); !ok || s.Version != 3 {
		t.Fatalf("期望库里是版本 3, got=%+v", s)
	}

	second := NewMatchDC(repo, time.Hour, nil)
	m, err = second.Load(context.Background(), 5)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if m.Version() != 3 {
		t.Fatalf("期望加载出版本 3, got=%d", m.Version())
	}
	_, _ = m.SetResource(0, 0, domain.Coal, 99)
	closeDC(t, second)

	s, ok := repo.Snapshot(5)
	if !ok || s.Version != 4 {
		t.Fatalf("期望写入版本 4, got=%+v", s)
	}
	reloaded, _ := repo.LoadMatch(context.Background(), 5)
	c, _ := reloaded.Cell(0, 0)
	if c.Resource == nil || c.Resource.Type != domain.Coal || c.Resource.Amount != 99 {
		t.Fatalf("重新加载后的写入丢失, got=%+v", c.Resource)
	}
}
