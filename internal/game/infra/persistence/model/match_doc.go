package model

import (
	"LuxAI/internal/game/domain"
	"LuxAI/internal/game/entity"
	"time"
)

// MatchDoc mongodb 里一局一条文档。
type MatchDoc struct {
	MatchID   int64     `bson:"_id"`
	Version   uint64    `bson:"version"`
	Width     int       `bson:"width"`
	Height    int       `bson:"height"`
	Cells     []CellDoc `bson:"cells"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type CellDoc struct {
	X        int          `bson:"x"`
	Y        int          `bson:"y"`
	Resource *ResourceDoc `bson:"resource,omitempty"`
	CityTile *CityTileDoc `bson:"citytile,omitempty"`
	Units    []UnitDoc    `bson:"units,omitempty"`
}

type ResourceDoc struct {
	Type   string `bson:"type"`
	Amount int    `bson:"amount"`
}

type CityTileDoc struct {
	Team     int     `bson:"team"`
	CityID   string  `bson:"city_id"`
	Cooldown float64 `bson:"cooldown"`
}

type UnitDoc struct {
	ID       string  `bson:"id"`
	Team     int     `bson:"team"`
	Type     int     `bson:"type"`
	Cooldown float64 `bson:"cooldown"`
}

func MatchSnapshotToDoc(s *entity.MatchPersistSnapshot, now time.Time) MatchDoc {
	doc := MatchDoc{
		MatchID:   int64(s.MatchID),
		Version:   s.Version,
		Width:     s.Width,
		Height:    s.Height,
		Cells:     make([]CellDoc, 0, len(s.Cells)),
		UpdatedAt: now,
	}
	for _, c := range s.Cells {
		cd := CellDoc{X: c.X, Y: c.Y}
		if c.Resource != nil {
			cd.Resource = &ResourceDoc{Type: string(c.Resource.Type), Amount: c.Resource.Amount}
		}
		if c.CityTile != nil {
			cd.CityTile = &CityTileDoc{Team: int(c.CityTile.Team), CityID: c.CityTile.CityID, Cooldown: c.CityTile.Cooldown}
		}
		for _, u := range c.Units {
			cd.Units = append(cd.Units, UnitDoc{ID: u.ID, Team: int(u.Team), Type: int(u.Type), Cooldown: u.Cooldown})
		}
		doc.Cells = append(doc.Cells, cd)
	}
	return doc
}

func MatchDocToSnapshot(doc MatchDoc) *entity.MatchPersistSnapshot {
	s := &entity.MatchPersistSnapshot{
		Version: doc.Version,
		MatchID: entity.MatchID(doc.MatchID),
		Width:   doc.Width,
		Height:  doc.Height,
		Cells:   make([]entity.CellState, 0, len(doc.Cells)),
	}
	for _, cd := range doc.Cells {
		st := entity.CellState{X: cd.X, Y: cd.Y}
		if cd.Resource != nil {
			st.Resource = domain.NewResource(domain.ResourceType(cd.Resource.Type), cd.Resource.Amount)
		}
		if cd.CityTile != nil {
			st.CityTile = &entity.CityTileState{
				Team:     domain.Team(cd.CityTile.Team),
				CityID:   cd.CityTile.CityID,
				Cooldown: cd.CityTile.Cooldown,
			}
		}
		for _, u := range cd.Units {
			st.Units = append(st.Units, unitFromParts(u.ID, u.Team, u.Type, u.Cooldown, cd.X, cd.Y))
		}
		s.Cells = append(s.Cells, st)
	}
	return s
}

func unitFromParts(id string, team, typ int, cooldown float64, x, y int) domain.Unit {
	return domain.Unit{
		ID:       id,
		Team:     domain.Team(team),
		Type:     domain.UnitType(typ),
		Pos:      domain.NewPosition(x, y),
		Cooldown: cooldown,
	}
}
