package entities

import (
	"math"

	"github.com/zooyer/dxfmap/core"
)

// Line 直线。端点本身就是世界坐标（WCS），不做 OCS 变换。
type Line struct {
	BaseEntity
	Start, End core.Point
	Thickness  float64
	Extrusion  core.Point
}

func init() {
	Register("LINE", func() Entity {
		return &Line{BaseEntity: BaseEntity{TypeName: "LINE"}, Extrusion: core.Point{Z: 1}}
	})
}

func (l *Line) Parse(s *core.Scanner) error {
	for {
		t := s.LastTag
		var err error
		switch t.Code {
		case 10:
			l.Start.X, err = t.Float()
		case 20:
			l.Start.Y, err = t.Float()
		case 30:
			l.Start.Z, err = t.Float()
		case 11:
			l.End.X, err = t.Float()
		case 21:
			l.End.Y, err = t.Float()
		case 31:
			l.End.Z, err = t.Float()
		case 39:
			l.Thickness, err = t.Float()
		case 210:
			l.Extrusion.X, err = t.Float()
		case 220:
			l.Extrusion.Y, err = t.Float()
		case 230:
			l.Extrusion.Z, err = t.Float()
		default:
			err = l.parseCommon(t)
		}
		if err != nil {
			return err
		}
		if more, err := next(s); !more {
			return err
		}
	}
}

func (l *Line) BBox() core.BBox {
	return core.BBox{
		Min: core.Point{X: math.Min(l.Start.X, l.End.X), Y: math.Min(l.Start.Y, l.End.Y), Z: math.Min(l.Start.Z, l.End.Z)},
		Max: core.Point{X: math.Max(l.Start.X, l.End.X), Y: math.Max(l.Start.Y, l.End.Y), Z: math.Max(l.Start.Z, l.End.Z)},
	}
}
