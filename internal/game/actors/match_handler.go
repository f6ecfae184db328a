package actors

import (
	"LuxAI/internal/game/domain"
	"LuxAI/internal/shared/actor/messages"

	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"
)

type MatchHandler struct{}

var MH = &MatchHandler{}

func (h *MatchHandler) HandleGetCell(ctx actor.Context, a *MatchActor, req messages.GetCell) {
	c, err := a.Match().Cell(req.X, req.Y)
	if err != nil {
		ctx.Respond(fail(err))
		return
	}
	ctx.Respond(ok(cellView(c)))
}

func (h *MatchHandler) HandleSetResource(ctx actor.Context, a *MatchActor, req messages.SetResource) {
	t, err := domain.ParseResourceType(req.ResourceType)
	if err != nil {
		ctx.Respond(fail(err))
		return
	}
	if _, err := a.Match().SetResource(req.X, req.Y, t, req.Amount); err != nil {
		ctx.Respond(fail(err))
		return
	}
	a.log.Debug("cell resource set",
		zap.Int64("match_id", req.MatchID()),
		zap.Int("x", req.X), zap.Int("y", req.Y),
		zap.String("type", string(t)), zap.Int("amount", req.Amount),
	)
	h.respondCell(ctx, a, req.CellRef)
}

func (h *MatchHandler) HandleClearResource(ctx actor.Context, a *MatchActor, req messages.ClearResource) {
	if err := a.Match().ClearResource(req.X, req.Y); err != nil {
		ctx.Respond(fail(err))
		return
	}
	h.respondCell(ctx, a, req.CellRef)
}

func (h *MatchHandler) HandleSetCityTile(ctx actor.Context, a *MatchActor, req messages.SetCityTile) {
	if _, err := a.Match().SetCityTile(req.X, req.Y, domain.Team(req.Team), req.CityID); err != nil {
		ctx.Respond(fail(err))
		return
	}
	a.log.Debug("cell citytile set",
		zap.Int64("match_id", req.MatchID()),
		zap.Int("x", req.X), zap.Int("y", req.Y),
		zap.Int("team", req.Team), zap.String("city_id", req.CityID),
	)
	h.respondCell(ctx, a, req.CellRef)
}

func (h *MatchHandler) HandleClearCityTile(ctx actor.Context, a *MatchActor, req messages.ClearCityTile) {
	if err := a.Match().ClearCityTile(req.X, req.Y); err != nil {
		ctx.Respond(fail(err))
		return
	}
	h.respondCell(ctx, a, req.CellRef)
}

func (h *MatchHandler) HandlePlaceUnit(ctx actor.Context, a *MatchActor, req messages.PlaceUnit) {
	u := &domain.Unit{
		ID:   req.UnitID,
		Team: domain.Team(req.Team),
		Type: domain.UnitType(req.UnitType),
	}
	if err := a.Match().PlaceUnit(req.X, req.Y, u); err != nil {
		ctx.Respond(fail(err))
		return
	}
	h.respondCell(ctx, a, req.CellRef)
}

func (h *MatchHandler) HandleRemoveUnit(ctx actor.Context, a *MatchActor, req messages.RemoveUnit) {
	if _, err := a.Match().RemoveUnit(req.X, req.Y, req.UnitID); err != nil {
		ctx.Respond(fail(err))
		return
	}
	h.respondCell(ctx, a, req.CellRef)
}

func (h *MatchHandler) HandleValidate(ctx actor.Context, a *MatchActor, req messages.Validate) {
	err := a.Match().Map().Validate()
	if err == nil {
		ctx.Respond(ok(messages.ValidateView{OK: true}))
		return
	}
	ctx.Respond(ok(messages.ValidateView{
		OK:         false,
		Violations: violations(err),
	}))
}

func (h *MatchHandler) respondCell(ctx actor.Context, a *MatchActor, ref messages.CellRef) {
	c, err := a.Match().Cell(ref.X, ref.Y)
	if err != nil {
		ctx.Respond(fail(err))
		return
	}
	ctx.Respond(ok(cellView(c)))
}

func ok(payload any) *messages.Reply {
	return &messages.Reply{Payload: payload}
}

func fail(err error) *messages.Reply {
	return &messages.Reply{Err: err}
}
