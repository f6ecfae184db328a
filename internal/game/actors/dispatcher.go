package actors

import (
	"LuxAI/internal/shared/actor/messages"
	"LuxAI/modules/kit/errx"
	"reflect"

	"github.com/asynkron/protoactor-go/actor"
)

var errNoHandler = errx.ErrInternal.WithData("reason", "no handler for request")

type Dispatcher struct {
	handlers map[reflect.Type]func(ctx actor.Context, a *MatchActor, req any)
}

func NewDispatcher() *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[reflect.Type]func(ctx actor.Context, a *MatchActor, req any)),
	}
	d.registerAll()
	return d
}

func (d *Dispatcher) registerAll() {
	register(d, MH.HandleGetCell)
	register(d, MH.HandleSetResource)
	register(d, MH.HandleClearResource)
	register(d, MH.HandleSetCityTile)
	register(d, MH.HandleClearCityTile)
	register(d, MH.HandlePlaceUnit)
	register(d, MH.HandleRemoveUnit)
	register(d, MH.HandleValidate)
}

func register[Req messages.MatchMessage](d *Dispatcher, fn func(ctx actor.Context, a *MatchActor, req Req)) {
	reqType := reflect.TypeOf((*Req)(nil)).Elem()
	if _, dup := d.handlers[reqType]; dup {
		panic("dispatcher: duplicate handler for " + reqType.String())
	}
	d.handlers[reqType] = func(ctx actor.Context, a *MatchActor, req any) {
		fn(ctx, a, req.(Req))
	}
}

func (d *Dispatcher) Dispatch(ctx actor.Context, a *MatchActor, req messages.MatchMessage) {
	h, ok := d.handlers[reflect.TypeOf(req)]
	if !ok {
		ctx.Respond(fail(errNoHandler.WithData("type", reflect.TypeOf(req).String())))
		return
	}
	h(ctx, a, req)
}
