package model

import (
	"LuxAI/internal/game/domain"
	"LuxAI/internal/game/entity"
	"encoding/json"
	"time"
)

// MatchCell mysql 里每个非空格子一行，单位列表以 JSON 存在 units 列。
type MatchCell struct {
	MatchID        int64     `gorm:"column:match_id;type:bigint;primaryKey;not null;comment:对局id" json:"match_id"`
	X              int       `gorm:"column:x;type:int;primaryKey;not null;comment:x坐标" json:"x"`
	Y              int       `gorm:"column:y;type:int;primaryKey;not null;comment:y坐标" json:"y"`
	Version        uint64    `gorm:"column:version;type:bigint UNSIGNED;not null;default:0" json:"version"`
	ResourceType   *string   `gorm:"column:resource_type;type:varchar(16);comment:资源类型" json:"resource_type"`
	ResourceAmount int       `gorm:"column:resource_amount;type:int;not null;default:0" json:"resource_amount"`
	CityTeam       *int      `gorm:"column:city_team;type:tinyint;comment:城市所属队伍" json:"city_team"`
	CityID         string    `gorm:"column:city_id;type:varchar(64);not null;default:''" json:"city_id"`
	CityCooldown   float64   `gorm:"column:city_cooldown;type:double;not null;default:0" json:"city_cooldown"`
	Units          string    `gorm:"column:units;type:text" json:"units"`
	UpdatedAt      time.Time `gorm:"column:updated_at;type:timestamp;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (m *MatchCell) TableName() string {
	return "match_cell"
}

// MatchMeta 记录对局的地图尺寸与最后写入版本，空地图也有一行。
type MatchMeta struct {
	MatchID   int64     `gorm:"column:match_id;type:bigint;primaryKey;not null" json:"match_id"`
	Version   uint64    `gorm:"column:version;type:bigint UNSIGNED;not null;default:0" json:"version"`
	Width     int       `gorm:"column:width;type:int;not null" json:"width"`
	Height    int       `gorm:"column:height;type:int;not null" json:"height"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (m *MatchMeta) TableName() string {
	return "match_meta"
}

type unitRow struct {
	ID       string  `json:"id"`
	Team     int     `json:"team"`
	Type     int     `json:"type"`
	Cooldown float64 `json:"cooldown"`
}

func CellStateToRow(matchID entity.MatchID, version uint64, s entity.CellState, now time.Time) (MatchCell, error) {
	row := MatchCell{
		MatchID:   int64(matchID),
		X:         s.X,
		Y:         s.Y,
		Version:   version,
		UpdatedAt: now,
	}
	if s.Resource != nil {
		t := string(s.Resource.Type)
		row.ResourceType = &t
		row.ResourceAmount = s.Resource.Amount
	}
	if s.CityTile != nil {
		team := int(s.CityTile.Team)
		row.CityTeam = &team
		row.CityID = s.CityTile.CityID
		row.CityCooldown = s.CityTile.Cooldown
	}
	if len(s.Units) != 0 {
		units := make([]unitRow, 0, len(s.Units))
		for _, u := range s.Units {
			units = append(units, unitRow{ID: u.ID, Team: int(u.Team), Type: int(u.Type), Cooldown: u.Cooldown})
		}
		raw, err := json.Marshal(units)
		if err != nil {
			return MatchCell{}, err
		}
		row.Units = string(raw)
	}
	return row, nil
}

func RowToCellState(row MatchCell) (entity.CellState, error) {
	s := entity.CellState{X: row.X, Y: row.Y}
	if row.ResourceType != nil {
		s.Resource = domain.NewResource(domain.ResourceType(*row.ResourceType), row.ResourceAmount)
	}
	if row.CityTeam != nil {
		s.CityTile = &entity.CityTileState{
			Team:     domain.Team(*row.CityTeam),
			CityID:   row.CityID,
			Cooldown: row.CityCooldown,
		}
	}
	if row.Units != "" {
		var units []unitRow
		if err := json.Unmarshal([]byte(row.Units), &units); err != nil {
			return entity.CellState{}, err
		}
		for _, u := range units {
			s.Units = append(s.Units, unitFromParts(u.ID, u.Team, u.Type, u.Cooldown, row.X, row.Y))
		}
	}
	return s, nil
}
