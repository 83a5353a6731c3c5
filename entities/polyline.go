package entities

import "github.com/zooyer/dxfmap/core"

// VERTEX 组码 70 中的样条框架控制点，不属于多段线本身
const vertexSplineFrame = 16

// Polyline 旧式多段线（POLYLINE + VERTEX... + SEQEND），解析后与 LWPolyline 一致
type Polyline struct {
	LWPolyline
}

func init() {
	Register("POLYLINE", func() Entity {
		return &Polyline{LWPolyline: *newLWPolyline("POLYLINE")}
	})
}

func (p *Polyline) Parse(s *core.Scanner) error {
	// 头部，组码 10/20 是无意义的占位点，30 是标高
	for {
		t := s.LastTag
		var err error
		switch t.Code {
		case 30:
			p.Elevation, err = t.Float()
		case 70:
			p.Flags, err = t.Int()
		case 39, 210, 220, 230:
			err = p.parseOCS(t)
		default:
			err = p.parseCommon(t)
		}
		if err != nil {
			return err
		}
		more, err := next(s)
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	// 顶点直到 SEQEND
	for s.LastTag.Is("VERTEX") {
		v, flags, err := parseVertex(s)
		if err != nil {
			return err
		}
		if flags&vertexSplineFrame == 0 {
			p.Vertices = append(p.Vertices, v)
		}
	}
	p.Count = len(p.Vertices)

	return nil
}

func parseVertex(s *core.Scanner) (v core.Point, flags int, err error) {
	for {
		t := s.LastTag
		switch t.Code {
		case 10:
			v.X, err = t.Float()
		case 20:
			v.Y, err = t.Float()
		case 30:
			v.Z, err = t.Float()
		case 70:
			flags, err = t.Int()
		}
		if err != nil {
			return
		}
		var more bool
		if more, err = next(s); !more {
			return
		}
	}
}
