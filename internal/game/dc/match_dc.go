package dc

import (
	"LuxAI/internal/game/app/port"
	"LuxAI/internal/game/entity"
	"LuxAI/modules/kit/errx"
	"LuxAI/modules/kit/logx"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	defaultFlushEvery = 3 * time.Second
	retryBackoff      = 200 * time.Millisecond
)

var errNilRepo = errx.ErrInternal.WithData("reason", "match repository is nil")

// MatchDC 写回缓存：Actor 线程里生成快照，后台 goroutine 串行落库。
// 只保留最新版本的待写快照，旧的直接被覆盖。
type MatchDC struct {
	repo       port.MatchRepository
	entity     *entity.Match
	flushEvery time.Duration
	log        logx.Logger

	mu      sync.Mutex
	pending *entity.MatchPersistSnapshot
	version uint64
	closed  bool

	wake chan struct{}
	stop chan struct{}
	done chan struct{}
}

func NewMatchDC(repo port.MatchRepository, flushEvery time.Duration, log logx.Logger) *MatchDC {
	if flushEvery <= 0 {
		flushEvery = defaultFlushEvery
	}
	if log == nil {
		log = logx.Nop()
	}
	d := &MatchDC{
		repo:       repo,
		flushEvery: flushEvery,
		log:        log,
		wake:       make(chan struct{}, 1),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
	go d.writerLoop()
	return d
}

func (d *MatchDC) Load(ctx context.Context, id entity.MatchID) (*entity.Match, error) {
	if d.repo == nil {
		return nil, errNilRepo
	}
	m, err := d.repo.LoadMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	d.entity = m
	// 版本号接着库里的走，否则重新加载后的快照会被仓库当成旧版本丢掉
	d.mu.Lock()
	if v := m.Version(); v > d.version {
		d.version = v
	}
	d.mu.Unlock()
	return m, nil
}

// Flush 只负责入队，不等待写库完成。
func (d *MatchDC) Flush() {
	if d.entity == nil || !d.entity.Dirty() {
		return
	}
	d.mu.Lock()
	d.version++
	version := d.version
	d.mu.Unlock()

	s, ok := d.entity.BuildPersistSnapshot(version)
	if !ok {
		return
	}
	d.entity.ClearDirty()
	d.enqueue(s)
}

func (d *MatchDC) Entity() *entity.Match {
	return d.entity
}

func (d *MatchDC) FlushEvery() time.Duration {
	return d.flushEvery
}

// Close 先 Flush，再等后台把队列写完或 ctx 到期。
func (d *MatchDC) Close(ctx context.Context) error {
	d.Flush()

	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.stop)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *MatchDC) enqueue(s *entity.MatchPersistSnapshot) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	if d.pending == nil || d.pending.Version < s.Version {
		d.pending = s
	}
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

func (d *MatchDC) popPending() *entity.MatchPersistSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	s := d.pending
	d.pending = nil
	return s
}

func (d *MatchDC) requeue(s *entity.MatchPersistSnapshot) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending == nil || d.pending.Version < s.Version {
		d.pending = s
	}
}

func (d *MatchDC) writerLoop() {
	defer close(d.done)
	for {
		select {
		case <-d.wake:
			d.consumePending(false)
		case <-d.stop:
			d.consumePending(true)
			return
		}
	}
}

// consumePending 写库失败时重排当前快照；若已有更新快照，会被更高 version 覆盖。
// 关闭阶段只重试有限次，避免存储挂掉时进程退不出去。
func (d *MatchDC) consumePending(closing bool) {
	attempts := 0
	for {
		s := d.popPending()
		if s == nil {
			return
		}
		err := d.repo.Save(context.Background(), s)
		if err == nil {
			attempts = 0
			continue
		}
		attempts++
		logx.ReportSysError(context.Background(), d.log, "match_dc.save", err,
			zap.Int64("match_id", int64(s.MatchID)),
			zap.Uint64("version", s.Version),
			zap.Int("attempt", attempts),
		)
		if closing && attempts >= 3 {
			return
		}
		d.requeue(s)
		select {
		case <-time.After(retryBackoff):
		case <-d.stop:
			closing = true
		}
	}
}
