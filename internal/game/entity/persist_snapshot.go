package entity

import (
	"LuxAI/internal/game/domain"
	"LuxAI/internal/shared/gameconfig/match"
	"sort"
)

// MatchPersistSnapshot 落库用的深拷贝，只包含非空格子。
type MatchPersistSnapshot struct {
	Version uint64
	MatchID MatchID
	Width   int
	Height  int
	Cells   []CellState
}

type CellState struct {
	X        int
	Y        int
	Resource *domain.Resource
	CityTile *CityTileState
	Units    []domain.Unit
}

type CityTileState struct {
	Team     domain.Team
	CityID   string
	Cooldown float64
}

func (s CellState) Empty() bool {
	return s.Resource == nil && s.CityTile == nil && len(s.Units) == 0
}

func CellStateOf(c *domain.Cell) CellState {
	s := CellState{X: c.Pos.X, Y: c.Pos.Y}
	if c.Resource != nil {
		r := *c.Resource
		s.Resource = &r
	}
	if c.CityTile != nil {
		s.CityTile = &CityTileState{
			Team:     c.CityTile.Team,
			CityID:   c.CityTile.CityID,
			Cooldown: c.CityTile.Cooldown,
		}
	}
	if len(c.Units) != 0 {
		s.Units = make([]domain.Unit, 0, len(c.Units))
		for _, u := range c.Units {
			if u != nil {
				s.Units = append(s.Units, *u)
			}
		}
		sort.Slice(s.Units, func(i, j int) bool { return s.Units[i].ID < s.Units[j].ID })
	}
	return s
}

// BuildPersistSnapshot 不脏时返回 false。
func (m *Match) BuildPersistSnapshot(version uint64) (*MatchPersistSnapshot, bool) {
	if m == nil || !m.dirty {
		return nil, false
	}
	m.version = version
	s := &MatchPersistSnapshot{
		Version: version,
		MatchID: m.id,
		Width:   m.gameMap.Width(),
		Height:  m.gameMap.Height(),
	}
	for _, c := range m.gameMap.Cells() {
		if st := CellStateOf(c); !st.Empty() {
			s.Cells = append(s.Cells, st)
		}
	}
	return s, true
}

// HydrateMatch 用快照恢复对局。地图尺寸以 configs 为准，越界的格子被丢弃。
func HydrateMatch(configs *match.Config, s *MatchPersistSnapshot) *Match {
	m := NewMatch(s.MatchID, configs)
	m.version = s.Version
	for _, st := range s.Cells {
		c := m.gameMap.GetCell(st.X, st.Y)
		if c == nil {
			continue
		}
		if st.Resource != nil {
			c.SetResource(st.Resource.Type, st.Resource.Amount)
		}
		if st.CityTile != nil {
			c.SetCityTile(st.CityTile.Team, st.CityTile.CityID)
			c.CityTile.Cooldown = st.CityTile.Cooldown
		}
		for i := range st.Units {
			u := st.Units[i]
			u.Pos = c.Pos
			c.Units[u.ID] = &u
		}
	}
	return m
}
