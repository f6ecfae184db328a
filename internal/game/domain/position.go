package domain

type Direction string

const (
	North  Direction = "n"
	East   Direction = "e"
	South  Direction = "s"
	West   Direction = "w"
	Center Direction = "c"
)

// Position 是不可变的二维整数坐标，值语义。
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

func (p Position) Equals(o Position) bool {
	return p == o
}

// IsAdjacent 四邻接，自己不算。
func (p Position) IsAdjacent(o Position) bool {
	return p.DistanceTo(o) == 1
}

// DistanceTo 曼哈顿距离。
func (p Position) DistanceTo(o Position) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

func (p Position) Translate(dir Direction, units int) Position {
	switch dir {
	case North:
		return Position{X: p.X, Y: p.Y - units}
	case East:
		return Position{X: p.X + units, Y: p.Y}
	case South:
		return Position{X: p.X, Y: p.Y + units}
	case West:
		return Position{X: p.X - units, Y: p.Y}
	default:
		return p
	}
}

// DirectionTo 返回一步之内离 target 最近的方向，已经重合时返回 Center。
func (p Position) DirectionTo(target Position) Direction {
	best := Center
	bestDist := p.DistanceTo(target)
	for _, dir := range []Direction{North, East, South, West} {
		if d := p.Translate(dir, 1).DistanceTo(target); d < bestDist {
			best, bestDist = dir, d
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
