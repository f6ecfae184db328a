package domain

import (
	"errors"

	"LuxAI/internal/shared/gameconfig/match"
	"LuxAI/modules/kit/errx"
)

// Cell 是地图上的一格，字段全部公开，由外层引擎直接读写。
//
// 以下约定不由 setter 强制：
//   - Resource 与 CityTile 同时至多存在一个；SetResource 不清 CityTile，反之亦然。
//   - 只有城市格可以站多个单位；往 Units 里放单位不检查 CityTile。
//
// 需要时调用 CheckInvariants 主动检查。Cell 没有锁，只能由单一写者修改。
type Cell struct {
	Pos      Position
	Resource *Resource
	CityTile *CityTile
	// Units 单位 id -> 单位，由引擎直接增删
	Units map[string]*Unit

	// Configs 对局配置，只读，与整张地图共享
	Configs *match.Config
}

func NewCell(x, y int, configs *match.Config) *Cell {
	return &Cell{
		Pos:     NewPosition(x, y),
		Units:   make(map[string]*Unit),
		Configs: configs,
	}
}

// SetResource 覆盖而不是累加，返回新存入的资源。
func (c *Cell) SetResource(t ResourceType, amount int) *Resource {
	c.Resource = NewResource(t, amount)
	return c.Resource
}

// HasResource 数量为 0 的资源视为没有，尽管 Resource 字段非空。
func (c *Cell) HasResource() bool {
	return c.Resource != nil && c.Resource.Amount > 0
}

func (c *Cell) SetCityTile(team Team, cityID string) {
	tile := NewCityTile(team, c.Configs)
	tile.CityID = cityID
	c.CityTile = tile
}

func (c *Cell) IsCityTile() bool {
	return c.CityTile != nil
}

func (c *Cell) HasUnits() bool {
	return len(c.Units) != 0
}

// CheckInvariants 只读检查，返回所有违反项（errors.Join），不修改状态。
func (c *Cell) CheckInvariants() error {
	var errs []error
	if c.Resource != nil && c.CityTile != nil {
		errs = append(errs, c.violation("resource_and_citytile"))
	}
	if c.Resource != nil && c.Resource.Amount < 0 {
		errs = append(errs, c.violation("negative_resource_amount").WithData("amount", c.Resource.Amount))
	}
	if len(c.Units) > 1 && c.CityTile == nil {
		errs = append(errs, c.violation("units_stacked_off_city").WithData("units", len(c.Units)))
	}
	for id, u := range c.Units {
		if u == nil || u.ID != id {
			errs = append(errs, c.violation("unit_key_mismatch").WithData("unit_id", id))
		}
	}
	return errors.Join(errs...)
}

func (c *Cell) violation(rule string) *errx.Error {
	return ErrInvariantViolation.WithDataMap(map[string]any{
		"rule": rule,
		"x":    c.Pos.X,
		"y":    c.Pos.Y,
	})
}
