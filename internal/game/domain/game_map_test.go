package domain

import (
	"errors"
	"testing"

	"LuxAI/internal/shared/gameconfig/match"
)

func newTestMap(w, h int) *GameMap {
	cfg := match.Default()
	cfg.MapWidth, cfg.MapHeight = w, h
	return NewGameMap(cfg)
}

func TestNewGameMap_每个坐标一个格子(t *testing.T) {
	m := newTestMap(4, 3)
	cells := m.Cells()
	if len(cells) != 12 {
		t.Fatalf("期望 12 个格子, got=%d", len(cells))
	}
	seen := map[Position]bool{}
	for _, c := range cells {
		if seen[c.Pos] {
			t.Fatalf("重复坐标 %v", c.Pos)
		}
		seen[c.Pos] = true
		if m.GetCellByPos(c.Pos) != c {
			t.Fatalf("GetCellByPos(%v) 返回了别的格子", c.Pos)
		}
		if c.Configs != m.Configs() {
			t.Fatalf("期望所有格子共享地图 configs")
		}
	}
	if cells[1].Pos != NewPosition(1, 0) {
		t.Fatalf("期望行优先顺序, got=%v", cells[1].Pos)
	}
}

func TestGameMap_越界(t *testing.T) {
	m := newTestMap(4, 3)
	for _, p := range []Position{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		if m.GetCell(p.X, p.Y) != nil {
			t.Fatalf("期望 %v 越界返回 nil", p)
		}
	}
	_, err := m.MustCell(9, 9)
	if !errors.Is(err, ErrCellOutOfBounds) {
		t.Fatalf("期望 ErrCellOutOfBounds, got=%v", err)
	}
}

func TestGameMap_AdjacentCells(t *testing.T) {
	m := newTestMap(3, 3)
	if got := len(m.AdjacentCells(m.GetCell(0, 0))); got != 2 {
		t.Fatalf("角落期望 2 个邻居, got=%d", got)
	}
	if got := len(m.AdjacentCells(m.GetCell(1, 1))); got != 4 {
		t.Fatalf("中心期望 4 个邻居, got=%d", got)
	}
}

func TestGameMap_ResourceCells跳过空资源(t *testing.T) {
	m := newTestMap(3, 3)
	m.GetCell(0, 0).SetResource(Wood, 10)
	m.GetCell(1, 0).SetResource(Coal, 0)
	got := m.ResourceCells()
	if len(got) != 1 || got[0].Pos != NewPosition(0, 0) {
		t.Fatalf("unexpected resource cells: %v", got)
	}
}

func TestGameMap_Validate(t *testing.T) {
	m := newTestMap(3, 3)
	if err := m.Validate(); err != nil {
		t.Fatalf("期望空地图合法, err=%v", err)
	}
	c := m.GetCell(2, 2)
	c.SetResource(Wood, 1)
	c.SetCityTile(TeamA, "c_1")
	if err := m.Validate(); !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("期望报告违反项, err=%v", err)
	}
}

func TestNewGameMap_nil配置使用默认(t *testing.T) {
	m := NewGameMap(nil)
	if m.Width() != 12 || m.Height() != 12 {
		t.Fatalf("unexpected default size %dx%d", m.Width(), m.Height())
	}
}
