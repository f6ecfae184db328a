package model

import (
	"testing"
	"time"

	"LuxAI/internal/game/domain"
	"LuxAI/internal/game/entity"
)

func sampleSnapshot() *entity.MatchPersistSnapshot {
	return &entity.MatchPersistSnapshot{
		Version: 9,
		MatchID: 3,
		Width:   4,
		Height:  4,
		Cells: []entity.CellState{
			{X: 0, Y: 1, Resource: domain.NewResource(domain.Uranium, 0)},
			{
				X: 2, Y: 2,
				CityTile: &entity.CityTileState{Team: domain.TeamB, CityID: "c_1", Cooldown: 1.5},
				Units:    []domain.Unit{{ID: "u_1", Team: domain.TeamB, Type: domain.Cart}},
			},
		},
	}
}

func TestMatchDoc_保留零数量资源和城市(t *testing.T) {
	doc := MatchSnapshotToDoc(sampleSnapshot(), time.Unix(0, 0))
	back := MatchDocToSnapshot(doc)

	if back.Version != 9 || back.MatchID != 3 || len(back.Cells) != 2 {
		t.Fatalf("unexpected snapshot: %+v", back)
	}
	if r := back.Cells[0].Resource; r == nil || r.Type != domain.Uranium || r.Amount != 0 {
		t.Fatalf("unexpected resource: %+v", r)
	}
	c := back.Cells[1]
	if c.CityTile == nil || c.CityTile.CityID != "c_1" || c.CityTile.Cooldown != 1.5 {
		t.Fatalf("unexpected citytile: %+v", c.CityTile)
	}
	if len(c.Units) != 1 || c.Units[0].Pos != domain.NewPosition(2, 2) {
		t.Fatalf("期望单位坐标由格子补齐, got=%+v", c.Units)
	}
}

func TestMatchCell_行映射(t *testing.T) {
	s := sampleSnapshot()
	for _, st := range s.Cells {
		row, err := CellStateToRow(s.MatchID, s.Version, st, time.Unix(0, 0))
		if err != nil {
			t.Fatalf("CellStateToRow: %v", err)
		}
		back, err := RowToCellState(row)
		if err != nil {
			t.Fatalf("RowToCellState: %v", err)
		}
		if (back.Resource == nil) != (st.Resource == nil) || (back.CityTile == nil) != (st.CityTile == nil) {
			t.Fatalf("presence mismatch: got=%+v want=%+v", back, st)
		}
		if len(back.Units) != len(st.Units) {
			t.Fatalf("units mismatch: got=%v want=%v", back.Units, st.Units)
		}
	}
}

func TestRowToCellState_坏JSON(t *testing.T) {
	if _, err := RowToCellState(MatchCell{Units: "{"}); err == nil {
		t.Fatalf("期望坏的 units JSON 报错")
	}
}
