// Package match 是对局规则配置（地图尺寸、冷却、燃料换算等）。
// 加载后只读，由 GameMap 与其下所有 Cell/CityTile 共享同一个指针。
package match

import (
	"LuxAI/internal/shared/config"
	"LuxAI/modules/kit/errx"
)

type UnitCooldown struct {
	Worker float64 `json:"worker" mapstructure:"worker"`
	Cart   float64 `json:"cart" mapstructure:"cart"`
}

type Parameters struct {
	DayLength            int            `json:"day_length" mapstructure:"day_length"`
	NightLength          int            `json:"night_length" mapstructure:"night_length"`
	MaxDays              int            `json:"max_days" mapstructure:"max_days"`
	CityActionCooldown   float64        `json:"city_action_cooldown" mapstructure:"city_action_cooldown"`
	UnitActionCooldown   UnitCooldown   `json:"unit_action_cooldown" mapstructure:"unit_action_cooldown"`
	ResourceToFuelRate   map[string]int `json:"resource_to_fuel_rate" mapstructure:"resource_to_fuel_rate"`
	ResearchRequirements map[string]int `json:"research_requirements" mapstructure:"research_requirements"`
}

type Config struct {
	MapWidth   int        `json:"map_width" mapstructure:"map_width"`
	MapHeight  int        `json:"map_height" mapstructure:"map_height"`
	Seed       int64      `json:"seed" mapstructure:"seed"`
	Parameters Parameters `json:"parameters" mapstructure:"parameters"`
}

var ErrInvalidConfig = errx.NewBiz("INVALID_MATCH_CONFIG", "invalid match config")

func Default() *Config {
	return &Config{
		MapWidth:  12,
		MapHeight: 12,
		Parameters: Parameters{
			DayLength:          30,
			NightLength:        10,
			MaxDays:            360,
			CityActionCooldown: 10,
			UnitActionCooldown: UnitCooldown{Worker: 2, Cart: 3},
			ResourceToFuelRate: map[string]int{"wood": 1, "coal": 10, "uranium": 40},
			ResearchRequirements: map[string]int{
				"coal":    50,
				"uranium": 200,
			},
		},
	}
}

// Load 以 Default 为底读取 path，文件里没写的 key 保留默认值。
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := config.Read(path, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MapWidth <= 0 || c.MapHeight <= 0 {
		return ErrInvalidConfig.WithDataMap(map[string]any{
			"map_width":  c.MapWidth,
			"map_height": c.MapHeight,
		})
	}
	if c.Parameters.CityActionCooldown < 0 {
		return ErrInvalidConfig.WithData("city_action_cooldown", c.Parameters.CityActionCooldown)
	}
	return nil
}
