package geo

import (
	"math"

	dxf "github.com/zooyer/dxfmap"
	"github.com/zooyer/dxfmap/core"
	"github.com/zooyer/dxfmap/entities"
	"github.com/zooyer/dxfmap/ocs"
)

// Transform 把直线、多段线、圆转换为地图对象，其他实体忽略。
// 不修改传入的实体，同样的输入总是得到同样的输出。
func Transform(ents []entities.Entity, layers dxf.Layers, origin Origin) []MapObject {
	objects := make([]MapObject, 0, len(ents))
	for _, ent := range ents {
		obj := MapObject{
			Popup: ent.Layer(),
			Color: ent.Color(),
		}
		if obj.Color == "" {
			obj.Color = layers.Color(ent.Layer())
		}

		var ok bool
		switch e := ent.(type) {
		case *entities.LWPolyline:
			ok = origin.polyline(e, &obj)
		case *entities.Polyline:
			ok = origin.polyline(&e.LWPolyline, &obj)
		case *entities.Line:
			ok = origin.line(e, &obj)
		case *entities.Circle:
			ok = origin.circle(e, &obj)
		}
		if ok {
			objects = append(objects, obj)
		}
	}

	return objects
}

func (o Origin) polyline(p *entities.LWPolyline, obj *MapObject) bool {
	if len(p.Vertices) == 0 {
		return false
	}

	closed := p.Closed()
	obj.Type = TypePolyline
	if closed {
		obj.Type = TypePolygon
	}

	pl := p.Placement
	if pl.Flat() {
		// 水平多段线直接投影
		for _, v := range p.Vertices {
			obj.Coords = append(obj.Coords, o.Project(v.X, -v.Y))
		}
		if closed {
			obj.Coords = append(obj.Coords, obj.Coords[0])
		}

		// 抬高或有厚度
		if pl.Position.Z != 0 || p.Thickness != 0 {
			coords := make([][]float64, 0, len(p.Vertices)+1)
			for _, v := range p.Vertices {
				coords = append(coords, []float64{v.X, v.Y})
			}
			if closed {
				coords = append(coords, []float64{p.Vertices[0].X, p.Vertices[0].Y})
			}
			obj.Coordz = &Scene{
				Type:     obj.Type,
				Coords:   coords,
				Position: []float64{0, 0, pl.Position.Z},
				Rotation: []float64{0, 0, 0},
				Depth:    p.Thickness,
			}
		}
		return true
	}

	// 倾斜或旋转：场景坐标相对第一个顶点
	first := p.Vertices[0]
	coords := make([][]float64, 0, len(p.Vertices)+1)
	for _, v := range p.Vertices {
		coords = append(coords, []float64{v.X - first.X, v.Y - first.Y})
	}
	if closed {
		coords = append(coords, []float64{0, 0})
	}
	rotation := pl.Rotation()
	obj.Coordz = &Scene{
		Type:     obj.Type,
		Coords:   coords,
		Position: []float64{pl.Position.X, pl.Position.Y, pl.Position.Z},
		Rotation: rotation[:],
		Depth:    p.Thickness,
	}

	for _, v := range rotate(p.Vertices, pl) {
		obj.Coords = append(obj.Coords, o.Project(v[0], v[1]))
	}
	if closed {
		obj.Coords = append(obj.Coords, obj.Coords[0])
	}

	return true
}

// rotate 以第一个顶点为原点按 yaw(Z)、pitch(X)、roll(Y) 旋转顶点，返回地图坐标系下的平面坐标
func rotate(vertices []core.Point, pl ocs.Placement) [][2]float64 {
	var (
		sx, cx = math.Sin(radians(-pl.Pitch)), math.Cos(radians(-pl.Pitch))
		sy, cy = math.Sin(radians(-pl.Roll)), math.Cos(radians(-pl.Roll))
		sz, cz = math.Sin(radians(-pl.Yaw)), math.Cos(radians(-pl.Yaw))
		first  = vertices[0]
		out    = make([][2]float64, len(vertices))
	)

	out[0] = [2]float64{pl.Position.X, pl.Position.Y}
	for i := 1; i < len(vertices); i++ {
		dx := vertices[i].X - first.X
		dy := -(vertices[i].Y - first.Y)
		out[i] = [2]float64{
			pl.Position.X + (cy*cz-sx*sy*sz)*dx + (-cx*sz)*dy,
			pl.Position.Y + (cz*sx*sy+cy*sz)*dx + (cx*cz)*dy,
		}
	}

	return out
}

func (o Origin) line(l *entities.Line, obj *MapObject) bool {
	obj.Type = TypeLine
	obj.Coords = []Coord{
		o.Project(l.Start.X, -l.Start.Y),
		o.Project(l.End.X, -l.End.Y),
	}
	obj.Coordz = &Scene{
		Type: TypeLine,
		Coords: [][]float64{
			{l.Start.X, -l.Start.Y, l.Start.Z},
			{l.End.X, -l.End.Y, l.End.Z},
		},
	}

	return true
}

func (o Origin) circle(c *entities.Circle, obj *MapObject) bool {
	obj.Type = TypePolygon
	center := c.Placement.Position
	obj.Coords = make([]Coord, 0, CircleSegments+1)
	for i := 0; i < CircleSegments; i++ {
		a := 2 * math.Pi * float64(i) / CircleSegments
		obj.Coords = append(obj.Coords, o.Project(center.X+c.Radius*math.Cos(a), center.Y+c.Radius*math.Sin(a)))
	}
	// 闭合
	obj.Coords = append(obj.Coords, obj.Coords[0])

	return true
}
