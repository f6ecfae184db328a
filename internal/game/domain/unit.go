package domain

type Team int

const (
	TeamA Team = 0
	TeamB Team = 1
)

type UnitType int

const (
	Worker UnitType = 0
	Cart   UnitType = 1
)

// Unit 对 Cell 来说是不透明的，Cell 只按 ID 存放。
type Unit struct {
	ID       string   `json:"id"`
	Team     Team     `json:"team"`
	Type     UnitType `json:"type"`
	Pos      Position `json:"pos"`
	Cooldown float64  `json:"cooldown"`
}
