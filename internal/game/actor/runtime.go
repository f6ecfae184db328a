package actor

import (
	"LuxAI/internal/game/actors"
	"LuxAI/internal/game/app/port"
	"LuxAI/internal/shared/actor/messages"
	"LuxAI/modules/kit/errx"
	"LuxAI/modules/kit/logx"
	"context"
	"time"

	protoactor "github.com/asynkron/protoactor-go/actor"
)

const defaultAskTimeout = 3 * time.Second

var (
	errRuntimeClosed = errx.ErrUnavailable.WithData("reason", "actor runtime not initialized")
	errBadReply      = errx.ErrInternal.WithData("reason", "unexpected actor reply")
)

type Options struct {
	AskTimeout  time.Duration
	FlushEvery  time.Duration
	// IdleTimeout 对局无请求多久后卸载，卸载前写回
	IdleTimeout time.Duration
	Logger      logx.Logger
}

// Runtime 对外提供同步的 ask 接口，内部把请求投递给对局 Actor 串行执行。
type Runtime struct {
	system  *protoactor.ActorSystem
	root    *protoactor.RootContext
	manager *protoactor.PID
	timeout time.Duration
}

func NewRuntime(repo port.MatchRepository, opts Options) *Runtime {
	if opts.AskTimeout <= 0 {
		opts.AskTimeout = defaultAskTimeout
	}
	system := protoactor.NewActorSystem()
	root := system.Root
	managerProps := protoactor.PropsFromProducer(func() protoactor.Actor {
		return actors.NewManagerActor(repo, actors.Options{
			FlushEvery:  opts.FlushEvery,
			IdleTimeout: opts.IdleTimeout,
		}, opts.Logger)
	})

	return &Runtime{
		system:  system,
		root:    root,
		manager: root.Spawn(managerProps),
		timeout: opts.AskTimeout,
	}
}

// Shutdown 停 manager 时子 Actor 一并停止，停止前各自 flush。
func (r *Runtime) Shutdown() {
	if r == nil {
		return
	}
	if r.root != nil && r.manager != nil {
		_ = r.root.StopFuture(r.manager).Wait()
	}
	if r.system != nil {
		r.system.Shutdown()
	}
}

func (r *Runtime) GetCell(ctx context.Context, matchID int64, x, y int) (messages.CellView, error) {
	return askCell(ctx, r, messages.GetCell{MatchBaseMessage: base(matchID), CellRef: messages.CellRef{X: x, Y: y}})
}

func (r *Runtime) SetResource(ctx context.Context, matchID int64, x, y int, resourceType string, amount int) (messages.CellView, error) {
	return askCell(ctx, r, messages.SetResource{
		MatchBaseMessage: base(matchID),
		CellRef:          messages.CellRef{X: x, Y: y},
		ResourceType:     resourceType,
		Amount:           amount,
	})
}

func (r *Runtime) ClearResource(ctx context.Context, matchID int64, x, y int) (messages.CellView, error) {
	return askCell(ctx, r, messages.ClearResource{MatchBaseMessage: base(matchID), CellRef: messages.CellRef{X: x, Y: y}})
}

func (r *Runtime) SetCityTile(ctx context.Context, matchID int64, x, y, team int, cityID string) (messages.CellView, error) {
	return askCell(ctx, r, messages.SetCityTile{
		MatchBaseMessage: base(matchID),
		CellRef:          messages.CellRef{X: x, Y: y},
		Team:             team,
		CityID:           cityID,
	})
}

func (r *Runtime) ClearCityTile(ctx context.Context, matchID int64, x, y int) (messages.CellView, error) {
	return askCell(ctx, r, messages.ClearCityTile{MatchBaseMessage: base(matchID), CellRef: messages.CellRef{X: x, Y: y}})
}

func (r *Runtime) PlaceUnit(ctx context.Context, matchID int64, x, y int, unitID string, team, unitType int) (messages.CellView, error) {
	return askCell(ctx, r, messages.PlaceUnit{
		MatchBaseMessage: base(matchID),
		CellRef:          messages.CellRef{X: x, Y: y},
		UnitID:           unitID,
		Team:             team,
		UnitType:         unitType,
	})
}

func (r *Runtime) RemoveUnit(ctx context.Context, matchID int64, x, y int, unitID string) (messages.CellView, error) {
	return askCell(ctx, r, messages.RemoveUnit{
		MatchBaseMessage: base(matchID),
		CellRef:          messages.CellRef{X: x, Y: y},
		UnitID:           unitID,
	})
}

func (r *Runtime) Validate(ctx context.Context, matchID int64) (messages.ValidateView, error) {
	return ask[messages.ValidateView](ctx, r, messages.Validate{MatchBaseMessage: base(matchID)})
}

func askCell(ctx context.Context, r *Runtime, msg messages.MatchMessage) (messages.CellView, error) {
	return ask[messages.CellView](ctx, r, msg)
}

func ask[T any](ctx context.Context, r *Runtime, msg messages.MatchMessage) (T, error) {
	var zero T
	if r == nil || r.root == nil || r.manager == nil {
		return zero, errRuntimeClosed
	}
	res, err := r.root.RequestFuture(r.manager, msg, r.timeoutFromContext(ctx)).Result()
	if err != nil {
		return zero, errx.ErrTimeout.WithData("match_id", msg.MatchID()).WithCause(err)
	}
	reply, ok := res.(*messages.Reply)
	if !ok || reply == nil {
		return zero, errBadReply
	}
	if reply.Err != nil {
		return zero, reply.Err
	}
	payload, ok := reply.Payload.(T)
	if !ok {
		return zero, errBadReply
	}
	return payload, nil
}

func (r *Runtime) timeoutFromContext(ctx context.Context) time.Duration {
	if ctx == nil {
		return r.timeout
	}
	deadline, ok := ctx.Deadline()
	if !ok {
		return r.timeout
	}
	remain := time.Until(deadline)
	if remain <= 0 {
		return time.Millisecond
	}
	return min(remain, r.timeout)
}

func base(matchID int64) messages.MatchBaseMessage {
	return messages.MatchBaseMessage{Match: matchID}
}
