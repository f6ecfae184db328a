package domain

import (
	"LuxAI/internal/shared/gameconfig/match"
)

// CityTile 玩家建筑占据的一格。configs 只读，与所在地图共享。
type CityTile struct {
	Team     Team    `json:"team"`
	CityID   string  `json:"city_id"`
	Cooldown float64 `json:"cooldown"`

	configs *match.Config
}

func NewCityTile(team Team, configs *match.Config) *CityTile {
	return &CityTile{Team: team, configs: configs}
}

func (t *CityTile) CanAct() bool {
	return t.Cooldown < 1
}

// ResetCooldown 行动后按配置重置冷却。
func (t *CityTile) ResetCooldown() {
	if t.configs == nil {
		return
	}
	t.Cooldown = t.configs.Parameters.CityActionCooldown
}
