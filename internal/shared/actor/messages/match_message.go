package messages

// MatchMessage 发给某个对局 Actor 的请求，ManagerActor 按 MatchID 路由。
type MatchMessage interface {
	MatchID() int64
}

type MatchBaseMessage struct {
	Match int64
}

func (m MatchBaseMessage) MatchID() int64 {
	return m.Match
}

type CellRef struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type GetCell struct {
	MatchBaseMessage
	CellRef
}

type SetResource struct {
	MatchBaseMessage
	CellRef
	ResourceType string
	Amount       int
}

type ClearResource struct {
	MatchBaseMessage
	CellRef
}

type SetCityTile struct {
	MatchBaseMessage
	CellRef
	Team   int
	CityID string
}

type ClearCityTile struct {
	MatchBaseMessage
	CellRef
}

type PlaceUnit struct {
	MatchBaseMessage
	CellRef
	UnitID   string
	Team     int
	UnitType int
}

type RemoveUnit struct {
	MatchBaseMessage
	CellRef
	UnitID string
}

type Validate struct {
	MatchBaseMessage
}

// Reply 所有请求的统一应答；Err 非空时 Payload 无意义。
type Reply struct {
	Payload any
	Err     error
}
