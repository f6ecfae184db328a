package http

import (
	"LuxAI/internal/game/interfaces/http/dto"
	"LuxAI/internal/shared/actor/messages"
	"LuxAI/internal/shared/transport"
	"LuxAI/modules/kit/logx"
	"context"
	nethttp "net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// MatchService 由 actor.Runtime 实现。
type MatchService interface {
	GetCell(ctx context.Context, matchID int64, x, y int) (messages.CellView, error)
	SetResource(ctx context.Context, matchID int64, x, y int, resourceType string, amount int) (messages.CellView, error)
	ClearResource(ctx context.Context, matchID int64, x, y int) (messages.CellView, error)
	SetCityTile(ctx context.Context, matchID int64, x, y, team int, cityID string) (messages.CellView, error)
	ClearCityTile(ctx context.Context, matchID int64, x, y int) (messages.CellView, error)
	PlaceUnit(ctx context.Context, matchID int64, x, y int, unitID string, team, unitType int) (messages.CellView, error)
	RemoveUnit(ctx context.Context, matchID int64, x, y int, unitID string) (messages.CellView, error)
	Validate(ctx context.Context, matchID int64) (messages.ValidateView, error)
}

// IDGenerator 分配新对局 id，由 utils.Snowflake 实现。
type IDGenerator interface {
	NextID() int64
}

type MatchHandler struct {
	svc MatchService
	ids IDGenerator
	log logx.Logger
}

func NewMatchHandler(svc MatchService, ids IDGenerator, log logx.Logger) *MatchHandler {
	if log == nil {
		log = logx.Nop()
	}
	return &MatchHandler{svc: svc, ids: ids, log: log}
}

func (h *MatchHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/matches", h.CreateMatch)

	g := group.Group("/matches/:matchId")
	g.GET("/validate", h.Validate)

	cell := g.Group("/cells/:x/:y")
	cell.GET("", h.GetCell)
	cell.PUT("/resource", h.SetResource)
	cell.DELETE("/resource", h.ClearResource)
	cell.PUT("/citytile", h.SetCityTile)
	cell.DELETE("/citytile", h.ClearCityTile)
	cell.POST("/units", h.PlaceUnit)
	cell.DELETE("/units/:unitId", h.RemoveUnit)
}

type cellParams struct {
	matchID int64
	x, y    int
}

// CreateMatch 只分配 id，对局在第一次访问时由 Actor 加载或新建。
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	id := h.ids.NextID()
	h.ok(c, gin.H{"match_id": strconv.FormatInt(id, 10)})
}

func (h *MatchHandler) GetCell(c *gin.Context) {
	p, ok := h.cellParams(c)
	if !ok {
		return
	}
	h.reply(c, "get_cell")(h.svc.GetCell(c.Request.Context(), p.matchID, p.x, p.y))
}

func (h *MatchHandler) SetResource(c *gin.Context) {
	p, ok := h.cellParams(c)
	if !ok {
		return
	}
	var req dto.SetResourceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, transport.InvalidParam, "invalid request body")
		return
	}
	h.reply(c, "set_resource")(h.svc.SetResource(c.Request.Context(), p.matchID, p.x, p.y, req.Type, *req.Amount))
}

func (h *MatchHandler) ClearResource(c *gin.Context) {
	p, ok := h.cellParams(c)
	if !ok {
		return
	}
	h.reply(c, "clear_resource")(h.svc.ClearResource(c.Request.Context(), p.matchID, p.x, p.y))
}

func (h *MatchHandler) SetCityTile(c *gin.Context) {
	p, ok := h.cellParams(c)
	if !ok {
		return
	}
	var req dto.SetCityTileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, transport.InvalidParam, "invalid request body")
		return
	}
	h.reply(c, "set_citytile")(h.svc.SetCityTile(c.Request.Context(), p.matchID, p.x, p.y, *req.Team, req.CityID))
}

func (h *MatchHandler) ClearCityTile(c *gin.Context) {
	p, ok := h.cellParams(c)
	if !ok {
		return
	}
	h.reply(c, "clear_citytile")(h.svc.ClearCityTile(c.Request.Context(), p.matchID, p.x, p.y))
}

func (h *MatchHandler) PlaceUnit(c *gin.Context) {
	p, ok := h.cellParams(c)
	if !ok {
		return
	}
	var req dto.PlaceUnitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, transport.InvalidParam, "invalid request body")
		return
	}
	h.reply(c, "place_unit")(h.svc.PlaceUnit(c.Request.Context(), p.matchID, p.x, p.y, req.ID, *req.Team, *req.Type))
}

func (h *MatchHandler) RemoveUnit(c *gin.Context) {
	p, ok := h.cellParams(c)
	if !ok {
		return
	}
	h.reply(c, "remove_unit")(h.svc.RemoveUnit(c.Request.Context(), p.matchID, p.x, p.y, c.Param("unitId")))
}

func (h *MatchHandler) Validate(c *gin.Context) {
	matchID, err := strconv.ParseInt(c.Param("matchId"), 10, 64)
	if err != nil {
		h.fail(c, transport.InvalidParam, "invalid match id")
		return
	}
	report, err := h.svc.Validate(c.Request.Context(), matchID)
	if err != nil {
		h.error(c, "validate", err)
		return
	}
	h.ok(c, report)
}

func (h *MatchHandler) cellParams(c *gin.Context) (cellParams, bool) {
	var p cellParams
	var err error
	if p.matchID, err = strconv.ParseInt(c.Param("matchId"), 10, 64); err != nil {
		h.fail(c, transport.InvalidParam, "invalid match id")
		return p, false
	}
	if p.x, err = strconv.Atoi(c.Param("x")); err != nil {
		h.fail(c, transport.InvalidParam, "invalid x")
		return p, false
	}
	if p.y, err = strconv.Atoi(c.Param("y")); err != nil {
		h.fail(c, transport.InvalidParam, "invalid y")
		return p, false
	}
	return p, true
}

func (h *MatchHandler) reply(c *gin.Context, action string) func(messages.CellView, error) {
	return func(v messages.CellView, err error) {
		if err != nil {
			h.error(c, action, err)
			return
		}
		h.ok(c, v)
	}
}

func (h *MatchHandler) ok(c *gin.Context, data any) {
	c.JSON(nethttp.StatusOK, dto.Success(data))
}

func (h *MatchHandler) fail(c *gin.Context, code int, msg string) {
	transport.SetErrorReason(c.Request.Context(), msg)
	c.JSON(nethttp.StatusOK, dto.Error(code, msg))
}

func (h *MatchHandler) error(c *gin.Context, action string, err error) {
	ctx := c.Request.Context()
	code, msg, sys := mapError(err)
	if sys {
		logx.ReportSysError(ctx, h.log, action, err)
	} else {
		logx.ReportBiz(ctx, h.log, action, err)
	}
	h.fail(c, code, msg)
}
