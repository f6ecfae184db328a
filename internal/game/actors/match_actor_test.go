package actors

import (
	"context"
	"testing"
	"time"

	"LuxAI/internal/game/domain"
	"LuxAI/internal/game/infra/persistence/memory"
	"LuxAI/internal/shared/gameconfig/match"
	"LuxAI/modules/kit/logx"

	"github.com/asynkron/protoactor-go/actor"
)

// msgContext 只实现 Message，生命周期消息的处理不会用到其它方法。
type msgContext struct {
	actor.Context
	msg any
}

func (c msgContext) Message() any { return c.msg }

func TestMatchActor_重启时写回并关闭DC(t *testing.T) {
	repo := memory.NewMatchRepository(match.Default())
	a := NewMatchActor(4, repo, Options{FlushEvery: time.Hour}, logx.Nop())
	m, err := a.dc.Load(context.Background(), 4)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	_, _ = m.SetResource(2, 2, domain.Coal, 12)

	a.Receive(msgContext{msg: &actor.Restarting{}})

	if a.state != Init {
		t.Fatalf("期望重启后回到 Init, got=%v", a.state)
	}
	s, ok := repo.Snapshot(4)
	if !ok || len(s.Cells) != 1 || s.Cells[0].Resource.Amount != 12 {
		t.Fatalf("期望重启前写回脏数据, got=%+v", s)
	}
	// DC 已关闭，再次 Close 立即返回
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := a.dc.Close(ctx); err != nil {
		t.Fatalf("期望旧 DC 已关闭, got=%v", err)
	}
}

func TestNewMatchActor_默认空闲超时(t *testing.T) {
	a := NewMatchActor(1, memory.NewMatchRepository(match.Default()), Options{}, logx.Nop())
	defer func() { _ = a.dc.Close(context.Background()) }()
	if a.idleTimeout != defaultIdleTimeout {
		t.Fatalf("unexpected idle timeout: %v", a.idleTimeout)
	}
}
