package actors

import (
	"LuxAI/internal/game/app/port"
	"LuxAI/internal/game/dc"
	"LuxAI/internal/game/entity"
	"LuxAI/internal/shared/actor/messages"
	"LuxAI/modules/kit/errx"
	"LuxAI/modules/kit/logx"
	"LuxAI/modules/kit/tracex"
	"context"
	"strconv"
	"time"

	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"
)

type State int

const (
	None State = iota
	Init
	Online
	Stopping
	Offline
)

const (
	loadTimeout        = 5 * time.Second
	closeTimeout       = 3 * time.Second
	defaultIdleTimeout = 10 * time.Minute
)

const CodeMatchNotOnline errx.Code = "MATCH_NOT_ONLINE"

var ErrMatchNotOnline = errx.NewBiz(CodeMatchNotOnline, "match not online")

// MatchActor 对局地图的唯一写者：所有对 Cell 的修改都在 Receive 里串行执行。
type MatchActor struct {
	state       State
	matchID     MatchID
	dc          *dc.MatchDC
	dispatcher  *Dispatcher
	log         logx.Logger
	flushStop   chan struct{}
	// idleTimeout 没有请求超过这个时间就停掉 Actor，flushTick 不算请求
	idleTimeout time.Duration
}

type flushTick struct{}

func (flushTick) NotInfluenceReceiveTimeout() {}

func NewMatchActor(id MatchID, repo port.MatchRepository, opts Options, log logx.Logger) *MatchActor {
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = defaultIdleTimeout
	}
	return &MatchActor{
		state:       None,
		matchID:     id,
		dc:          dc.NewMatchDC(repo, opts.FlushEvery, log),
		dispatcher:  NewDispatcher(),
		log:         log,
		idleTimeout: opts.IdleTimeout,
	}
}

func (a *MatchActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		a.state = Init
		a.init(ctx)
	case *actor.Stopping:
		a.state = Stopping
		a.shutdown()
	case *actor.Stopped:
		a.state = Offline
	case *actor.Restarting:
		// 重启会用 producer 新建实例，旧实例的 DC 在这里写完并关掉
		a.state = Init
		a.shutdown()
	case *actor.ReceiveTimeout:
		a.log.Info("match actor idle, stopping", zap.Int64("match_id", int64(a.matchID)))
		ctx.Stop(ctx.Self())
	case flushTick:
		if a.state == Online {
			a.dc.Flush()
		}
	case messages.MatchMessage:
		if a.state != Online {
			ctx.Respond(fail(ErrMatchNotOnline.WithData("match_id", int64(a.matchID))))
			return
		}
		a.dispatcher.Dispatch(ctx, a, msg)
	}
}

func (a *MatchActor) init(ctx actor.Context) {
	loadCtx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()
	if _, err := a.dc.Load(loadCtx, a.matchID); err != nil {
		logx.ReportSysError(a.logCtx(), a.log, "match_actor.load", err)
		a.state = Stopping
		ctx.Stop(ctx.Self())
		return
	}
	a.state = Online
	a.startFlushLoop(ctx)
	ctx.SetReceiveTimeout(a.idleTimeout)
}

func (a *MatchActor) shutdown() {
	a.stopFlushLoop()
	closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	if err := a.dc.Close(closeCtx); err != nil {
		logx.ReportSysError(a.logCtx(), a.log, "match_actor.close", errx.ErrTimeout.WithCause(err))
	}
}

func (a *MatchActor) Match() *entity.Match {
	return a.dc.Entity()
}

func (a *MatchActor) logCtx() context.Context {
	return tracex.WithMatchID(context.Background(), strconv.FormatInt(int64(a.matchID), 10))
}

func (a *MatchActor) startFlushLoop(ctx actor.Context) {
	if a.flushStop != nil {
		return
	}
	a.flushStop = make(chan struct{})
	self := ctx.Self()
	root := ctx.ActorSystem().Root

	go func(stop <-chan struct{}, every time.Duration) {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				root.Send(self, flushTick{})
			case <-stop:
				return
			}
		}
	}(a.flushStop, a.dc.FlushEvery())
}

func (a *MatchActor) stopFlushLoop() {
	if a.flushStop == nil {
		return
	}
	close(a.flushStop)
	a.flushStop = nil
}
