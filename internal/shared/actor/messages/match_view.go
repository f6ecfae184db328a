package messages

// CellView 对外暴露的格子只读视图，和 Actor 内部状态不共享内存。
type CellView struct {
	X           int           `json:"x"`
	Y           int           `json:"y"`
	Resource    *ResourceView `json:"resource,omitempty"`
	HasResource bool          `json:"has_resource"`
	CityTile    *CityTileView `json:"citytile,omitempty"`
	IsCityTile  bool          `json:"is_citytile"`
	Units       []UnitView    `json:"units"`
	HasUnits    bool          `json:"has_units"`
}

type ResourceView struct {
	Type   string `json:"type"`
	Amount int    `json:"amount"`
}

type CityTileView struct {
	Team     int     `json:"team"`
	CityID   string  `json:"city_id"`
	Cooldown float64 `json:"cooldown"`
}

type UnitView struct {
	ID       string  `json:"id"`
	Team     int     `json:"team"`
	Type     int     `json:"type"`
	Cooldown float64 `json:"cooldown"`
}

type ValidateView struct {
	OK         bool     `json:"ok"`
	Violations []string `json:"violations,omitempty"`
}
