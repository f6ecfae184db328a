package actors

import (
	"LuxAI/internal/game/app/port"
	"LuxAI/internal/game/entity"
	"LuxAI/internal/shared/actor/messages"
	"LuxAI/modules/kit/logx"
	"time"

	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"
)

type MatchID = entity.MatchID

// Options 子 Actor 的运行参数。
type Options struct {
	FlushEvery  time.Duration
	IdleTimeout time.Duration
}

// ManagerActor 按 MatchID 懒加载子 Actor 并转发请求，转发保留原 sender。
type ManagerActor struct {
	repo        port.MatchRepository
	opts        Options
	log         logx.Logger
	matchActors map[MatchID]*actor.PID
}

func NewManagerActor(repo port.MatchRepository, opts Options, log logx.Logger) *ManagerActor {
	if log == nil {
		log = logx.Nop()
	}
	return &ManagerActor{
		repo:        repo,
		opts:        opts,
		log:         log,
		matchActors: make(map[MatchID]*actor.PID),
	}
}

func (m *ManagerActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Terminated:
		for id, pid := range m.matchActors {
			if pid.Equal(msg.Who) {
				delete(m.matchActors, id)
				m.log.Info("match actor terminated", zap.Int64("match_id", int64(id)))
			}
		}
	case messages.MatchMessage:
		ctx.Forward(m.getOrSpawn(ctx, MatchID(msg.MatchID())))
	}
}

func (m *ManagerActor) getOrSpawn(ctx actor.Context, id MatchID) *actor.PID {
	if pid, ok := m.matchActors[id]; ok && pid != nil {
		return pid
	}
	props := actor.PropsFromProducer(func() actor.Actor {
		return NewMatchActor(id, m.repo, m.opts, m.log)
	})
	pid := ctx.Spawn(props)
	m.matchActors[id] = pid
	return pid
}
