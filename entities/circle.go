package entities

import "github.com/zooyer/dxfmap/core"

type Circle struct {
	BaseEntity
	OCS
	Center   core.Point // OCS 下的圆心
	Radius   float64
	Rotation float64 // 圆没有组码 50，保留默认 0 以便统一走任意轴算法
}

func init() {
	Register("CIRCLE", func() Entity {
		return &Circle{BaseEntity: BaseEntity{TypeName: "CIRCLE"}, OCS: defaultOCS()}
	})
}

func (c *Circle) Parse(s *core.Scanner) error {
	for {
		t := s.LastTag
		var err error
		switch t.Code {
		case 10:
			c.Center.X, err = t.Float()
		case 20:
			c.Center.Y, err = t.Float()
		case 30:
			c.Center.Z, err = t.Float()
		case 40:
			c.Radius, err = t.Float()
		case 50:
			c.Rotation, err = t.Float()
		case 39, 210, 220, 230:
			err = c.parseOCS(t)
		default:
			err = c.parseCommon(t)
		}
		if err != nil {
			return err
		}
		if more, err := next(s); !more {
			return err
		}
	}
}

func (c *Circle) Resolve() {
	c.resolve(c.Center, c.Rotation)
}

func (c *Circle) BBox() core.BBox {
	return core.BBox{
		Min: core.Point{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius, Z: c.Center.Z},
		Max: core.Point{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Radius, Z: c.Center.Z},
	}
}
