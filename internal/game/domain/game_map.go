package domain

import (
	"errors"

	"LuxAI/internal/shared/gameconfig/match"
)

// GameMap 按坐标持有全部格子，每个坐标恰好一个 Cell。越界检查在这里做。
type GameMap struct {
	width   int
	height  int
	rows    [][]*Cell
	configs *match.Config
}

func NewGameMap(configs *match.Config) *GameMap {
	if configs == nil {
		configs = match.Default()
	}
	m := &GameMap{
		width:   configs.MapWidth,
		height:  configs.MapHeight,
		rows:    make([][]*Cell, configs.MapHeight),
		configs: configs,
	}
	for y := 0; y < m.height; y++ {
		row := make([]*Cell, m.width)
		for x := 0; x < m.width; x++ {
			row[x] = NewCell(x, y, configs)
		}
		m.rows[y] = row
	}
	return m
}

func (m *GameMap) Width() int {
	return m.width
}

func (m *GameMap) Height() int {
	return m.height
}

func (m *GameMap) Configs() *match.Config {
	return m.configs
}

func (m *GameMap) InMap(pos Position) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < m.width && pos.Y < m.height
}

// GetCell 越界返回 nil。
func (m *GameMap) GetCell(x, y int) *Cell {
	return m.GetCellByPos(NewPosition(x, y))
}

func (m *GameMap) GetCellByPos(pos Position) *Cell {
	if !m.InMap(pos) {
		return nil
	}
	return m.rows[pos.Y][pos.X]
}

// MustCell 越界返回 ErrCellOutOfBounds。
func (m *GameMap) MustCell(x, y int) (*Cell, error) {
	c := m.GetCell(x, y)
	if c == nil {
		return nil, ErrCellOutOfBounds.WithDataMap(map[string]any{
			"x":      x,
			"y":      y,
			"width":  m.width,
			"height": m.height,
		})
	}
	return c, nil
}

// Cells 按行优先顺序返回所有格子。
func (m *GameMap) Cells() []*Cell {
	out := make([]*Cell, 0, m.width*m.height)
	for _, row := range m.rows {
		out = append(out, row...)
	}
	return out
}

func (m *GameMap) AdjacentCells(c *Cell) []*Cell {
	out := make([]*Cell, 0, 4)
	for _, dir := range []Direction{North, East, South, West} {
		if n := m.GetCellByPos(c.Pos.Translate(dir, 1)); n != nil {
			out = append(out, n)
		}
	}
	return out
}

func (m *GameMap) ResourceCells() []*Cell {
	var out []*Cell
	for _, c := range m.Cells() {
		if c.HasResource() {
			out = append(out, c)
		}
	}
	return out
}

// Validate 汇总所有格子的 CheckInvariants 结果。
func (m *GameMap) Validate() error {
	var errs []error
	for _, c := range m.Cells() {
		if err := c.CheckInvariants(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
