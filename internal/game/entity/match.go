package entity

import (
	"LuxAI/internal/game/domain"
	"LuxAI/internal/shared/gameconfig/match"
)

type MatchID int64

// Match 一局对局的地图状态，只在所属 MatchActor 里被修改。
// 所有写操作成功后标脏，由 MatchDC 异步落库。
type Match struct {
	id      MatchID
	gameMap *domain.GameMap
	dirty   bool
	// version 最近一次落库（或加载）的快照版本，新快照版本必须比它大
	version uint64
}

func NewMatch(id MatchID, configs *match.Config) *Match {
	return &Match{
		id:      id,
		gameMap: domain.NewGameMap(configs),
	}
}

func (m *Match) ID() MatchID {
	return m.id
}

func (m *Match) Map() *domain.GameMap {
	return m.gameMap
}

func (m *Match) Cell(x, y int) (*domain.Cell, error) {
	return m.gameMap.MustCell(x, y)
}

func (m *Match) SetResource(x, y int, t domain.ResourceType, amount int) (*domain.Resource, error) {
	c, err := m.gameMap.MustCell(x, y)
	if err != nil {
		return nil, err
	}
	r := c.SetResource(t, amount)
	m.dirty = true
	return r, nil
}

// ClearResource 资源耗尽或被移除时由引擎调用。
func (m *Match) ClearResource(x, y int) error {
	c, err := m.gameMap.MustCell(x, y)
	if err != nil {
		return err
	}
	if c.Resource != nil {
		c.Resource = nil
		m.dirty = true
	}
	return nil
}

func (m *Match) SetCityTile(x, y int, team domain.Team, cityID string) (*domain.CityTile, error) {
	c, err := m.gameMap.MustCell(x, y)
	if err != nil {
		return nil, err
	}
	c.SetCityTile(team, cityID)
	m.dirty = true
	return c.CityTile, nil
}

// ClearCityTile 城市被摧毁时由引擎调用。
func (m *Match) ClearCityTile(x, y int) error {
	c, err := m.gameMap.MustCell(x, y)
	if err != nil {
		return err
	}
	if c.CityTile != nil {
		c.CityTile = nil
		m.dirty = true
	}
	return nil
}

// PlaceUnit 同一格上同一个 id 不能对应两个不同的单位（队伍或类型不同）；
// 同一个单位重复放置会替换为新值。
// 单位只能叠放在城市格的约定不在这里检查。
func (m *Match) PlaceUnit(x, y int, u *domain.Unit) error {
	c, err := m.gameMap.MustCell(x, y)
	if err != nil {
		return err
	}
	if u == nil || u.ID == "" {
		return errInvalidUnit
	}
	if prev, ok := c.Units[u.ID]; ok && prev != u && (prev.Team != u.Team || prev.Type != u.Type) {
		return domain.ErrUnitIDConflict.WithDataMap(map[string]any{"unit_id": u.ID, "x": x, "y": y})
	}
	u.Pos = c.Pos
	c.Units[u.ID] = u
	m.dirty = true
	return nil
}

// RemoveUnit 返回被移除的单位，不存在时返回 nil。
func (m *Match) RemoveUnit(x, y int, unitID string) (*domain.Unit, error) {
	c, err := m.gameMap.MustCell(x, y)
	if err != nil {
		return nil, err
	}
	u, ok := c.Units[unitID]
	if !ok {
		return nil, nil
	}
	delete(c.Units, unitID)
	m.dirty = true
	return u, nil
}

func (m *Match) Version() uint64 {
	return m.version
}

func (m *Match) Dirty() bool {
	return m.dirty
}

func (m *Match) ClearDirty() {
	m.dirty = false
}
