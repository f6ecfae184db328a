package entity

import (
	"errors"
	"testing"

	"LuxAI/internal/game/domain"
	"LuxAI/internal/shared/gameconfig/match"
)

func newTestMatch() *Match {
	cfg := match.Default()
	cfg.MapWidth, cfg.MapHeight = 5, 5
	return NewMatch(7, cfg)
}

func TestMatch_写操作标脏(t *testing.T) {
	m := newTestMatch()
	if m.Dirty() {
		t.Fatalf("期望新对局不脏")
	}
	if _, err := m.SetResource(1, 1, domain.Wood, 30); err != nil {
		t.Fatalf("SetResource: %v", err)
	}
	if !m.Dirty() {
		t.Fatalf("期望写后变脏")
	}
	m.ClearDirty()

	if err := m.ClearCityTile(1, 1); err != nil || m.Dirty() {
		t.Fatalf("期望清除不存在的城市不标脏, err=%v dirty=%v", err, m.Dirty())
	}
	if _, err := m.RemoveUnit(1, 1, "u_404"); err != nil || m.Dirty() {
		t.Fatalf("期望移除不存在的单位不标脏, err=%v dirty=%v", err, m.Dirty())
	}
}

func TestMatch_越界(t *testing.T) {
	m := newTestMatch()
	if _, err := m.SetResource(5, 0, domain.Wood, 1); !errors.Is(err, domain.ErrCellOutOfBounds) {
		t.Fatalf("期望越界错误, got=%v", err)
	}
	if _, err := m.SetCityTile(0, -1, domain.TeamA, "c_1"); !errors.Is(err, domain.ErrCellOutOfBounds) {
		t.Fatalf("期望越界错误, got=%v", err)
	}
	if m.Dirty() {
		t.Fatalf("期望失败的写不标脏")
	}
}

func TestMatch_PlaceUnit(t *testing.T) {
	m := newTestMatch()
	u := &domain.Unit{ID: "u_1", Team: domain.TeamA, Type: domain.Worker}
	if err := m.PlaceUnit(2, 3, u); err != nil {
		t.Fatalf("PlaceUnit: %v", err)
	}
	if u.Pos != domain.NewPosition(2, 3) {
		t.Fatalf("期望单位坐标更新为格子坐标, got=%v", u.Pos)
	}

	same := &domain.Unit{ID: "u_1", Team: domain.TeamA, Type: domain.Worker, Cooldown: 2}
	if err := m.PlaceUnit(2, 3, same); err != nil {
		t.Fatalf("期望同一单位的新值可以替换, err=%v", err)
	}

	other := &domain.Unit{ID: "u_1", Team: domain.TeamB, Type: domain.Worker}
	if err := m.PlaceUnit(2, 3, other); !errors.Is(err, domain.ErrUnitIDConflict) {
		t.Fatalf("期望 id 冲突, got=%v", err)
	}

	if err := m.PlaceUnit(0, 0, &domain.Unit{}); err == nil {
		t.Fatalf("期望空 id 报错")
	}

	got, err := m.RemoveUnit(2, 3, "u_1")
	if err != nil || got != same {
		t.Fatalf("RemoveUnit got=%v err=%v", got, err)
	}
	c, _ := m.Cell(2, 3)
	if c.HasUnits() {
		t.Fatalf("期望移除后没有单位")
	}
}

func TestMatch_PlaceUnit_不检查城市约定(t *testing.T) {
	m := newTestMatch()
	_ = m.PlaceUnit(0, 0, &domain.Unit{ID: "u_1"})
	if err := m.PlaceUnit(0, 0, &domain.Unit{ID: "u_2"}); err != nil {
		t.Fatalf("期望非城市格叠放单位也被接受, err=%v", err)
	}
}

func TestSnapshot_往返(t *testing.T) {
	m := newTestMatch()
	_, _ = m.SetResource(0, 0, domain.Coal, 0)
	tile, _ := m.SetCityTile(4, 4, domain.TeamB, "c_9")
	tile.Cooldown = 3
	_ = m.PlaceUnit(4, 4, &domain.Unit{ID: "u_2", Team: domain.TeamB, Type: domain.Cart})
	_ = m.PlaceUnit(4, 4, &domain.Unit{ID: "u_1", Team: domain.TeamB})

	s, ok := m.BuildPersistSnapshot(3)
	if !ok {
		t.Fatalf("期望脏对局生成快照")
	}
	if s.Version != 3 || s.MatchID != 7 || len(s.Cells) != 2 {
		t.Fatalf("unexpected snapshot: %+v", s)
	}
	if s.Cells[1].Units[0].ID != "u_1" {
		t.Fatalf("期望单位按 id 排序, got=%v", s.Cells[1].Units)
	}

	restored := HydrateMatch(m.Map().Configs(), s)
	c00, _ := restored.Cell(0, 0)
	if c00.Resource == nil || c00.Resource.Amount != 0 || c00.HasResource() {
		t.Fatalf("期望 0 数量资源原样恢复, got=%+v", c00.Resource)
	}
	c44, _ := restored.Cell(4, 4)
	if !c44.IsCityTile() || c44.CityTile.CityID != "c_9" || c44.CityTile.Cooldown != 3 {
		t.Fatalf("unexpected citytile: %+v", c44.CityTile)
	}
	if len(c44.Units) != 2 || c44.Units["u_2"].Type != domain.Cart {
		t.Fatalf("unexpected units: %v", c44.Units)
	}
	if restored.Version() != 3 || m.Version() != 3 {
		t.Fatalf("期望恢复后保留快照版本, got restored=%d origin=%d", restored.Version(), m.Version())
	}
	if restored.Dirty() {
		t.Fatalf("期望恢复出来的对局不脏")
	}
}

func TestSnapshot_不脏不生成(t *testing.T) {
	if _, ok := newTestMatch().BuildPersistSnapshot(1); ok {
		t.Fatalf("期望不脏时不生成快照")
	}
}

func TestSnapshot_快照与实体隔离(t *testing.T) {
	m := newTestMatch()
	r, _ := m.SetResource(1, 1, domain.Wood, 10)
	s, _ := m.BuildPersistSnapshot(1)
	r.Amount = 99
	if s.Cells[0].Resource.Amount != 10 {
		t.Fatalf("期望快照是深拷贝, got=%d", s.Cells[0].Resource.Amount)
	}
}
