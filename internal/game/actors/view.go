package actors

import (
	"LuxAI/internal/game/domain"
	"LuxAI/internal/shared/actor/messages"
	"LuxAI/modules/kit/errx"
	"errors"
	"fmt"
	"sort"
)

// cellView 在 Actor 线程里拷贝出只读视图，避免把 *domain.Cell 泄露到别的 goroutine。
func cellView(c *domain.Cell) messages.CellView {
	v := messages.CellView{
		X:           c.Pos.X,
		Y:           c.Pos.Y,
		HasResource: c.HasResource(),
		IsCityTile:  c.IsCityTile(),
		HasUnits:    c.HasUnits(),
		Units:       make([]messages.UnitView, 0, len(c.Units)),
	}
	if c.Resource != nil {
		v.Resource = &messages.ResourceView{Type: string(c.Resource.Type), Amount: c.Resource.Amount}
	}
	if c.CityTile != nil {
		v.CityTile = &messages.CityTileView{
			Team:     int(c.CityTile.Team),
			CityID:   c.CityTile.CityID,
			Cooldown: c.CityTile.Cooldown,
		}
	}
	for _, u := range c.Units {
		v.Units = append(v.Units, messages.UnitView{ID: u.ID, Team: int(u.Team), Type: int(u.Type), Cooldown: u.Cooldown})
	}
	sort.Slice(v.Units, func(i, j int) bool { return v.Units[i].ID < v.Units[j].ID })
	return v
}

// violations 把 errors.Join 的树展开成 "rule@(x,y)" 列表。
func violations(err error) []string {
	var out []string
	var walk func(error)
	walk = func(err error) {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				walk(e)
			}
			return
		}
		var e *errx.Error
		if !errors.As(err, &e) {
			out = append(out, err.Error())
			return
		}
		d := e.Data()
		out = append(out, fmt.Sprintf("%v@(%v,%v)", d["rule"], d["x"], d["y"]))
	}
	walk(err)
	return out
}
