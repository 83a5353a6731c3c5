package entities

import (
	"math"

	"github.com/zooyer/dxfmap/core"
)

// 组码 70 标志位
const (
	FlagClosed = 1
)

type LWPolyline struct {
	BaseEntity
	OCS
	Vertices  []core.Point // OCS 下的顶点
	Flags     int          // 组码 70
	Count     int          // 组码 90，文件声明的顶点数
	Elevation float64      // 组码 38
}

func init() {
	Register("LWPOLYLINE", func() Entity { return newLWPolyline("LWPOLYLINE") })
}

func newLWPolyline(typeName string) *LWPolyline {
	return &LWPolyline{BaseEntity: BaseEntity{TypeName: typeName}, OCS: defaultOCS()}
}

// Closed 是否闭合
func (l *LWPolyline) Closed() bool {
	return l.Flags&FlagClosed != 0
}

func (l *LWPolyline) Parse(s *core.Scanner) error {
	var x float64
	for {
		t := s.LastTag
		var err error
		switch t.Code {
		case 10:
			x, err = t.Float()
		case 20:
			var y float64
			if y, err = t.Float(); err == nil {
				l.Vertices = append(l.Vertices, core.Point{X: x, Y: y})
			}
		case 38:
			l.Elevation, err = t.Float()
		case 70:
			l.Flags, err = t.Int()
		case 90:
			l.Count, err = t.Int()
		case 39, 210, 220, 230:
			err = l.parseOCS(t)
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

// Resolve 以第一个顶点和标高作为插入点，多段线没有平面内旋转
func (l *LWPolyline) Resolve() {
	var origin core.Point
	if len(l.Vertices) > 0 {
		origin = l.Vertices[0]
	}
	origin.Z = l.Elevation
	l.resolve(origin, 0)
}

func (l *LWPolyline) BBox() core.BBox {
	if len(l.Vertices) == 0 {
		return core.BBox{}
	}
	miX, miY, maX, maY := l.Vertices[0].X, l.Vertices[0].Y, l.Vertices[0].X, l.Vertices[0].Y
	for _, v := range l.Vertices {
		miX = math.Min(miX, v.X)
		miY = math.Min(miY, v.Y)
		maX = math.Max(maX, v.X)
		maY = math.Max(maY, v.Y)
	}
	return core.BBox{Min: core.Point{X: miX, Y: miY}, Max: core.Point{X: maX, Y: maY}}
}
