package entities

import (
	"html"

	"github.com/zooyer/dxfmap/core"
)

type Insert struct {
	BaseEntity
	OCS
	BlockName      string
	InsertionPoint core.Point
	Scale          core.Point
	Rotation       float64
	HasAttributes  bool // 组码 66
	Attributes     []*Attrib
}

func init() {
	Register("INSERT", func() Entity {
		return &Insert{
			BaseEntity: BaseEntity{TypeName: "INSERT"},
			OCS:        defaultOCS(),
			Scale:      core.Point{X: 1, Y: 1, Z: 1}, // 默认缩放为 1
			Attributes: []*Attrib{},
		}
	})
}

func (i *Insert) Parse(scanner *core.Scanner) error {
	for {
		tag := scanner.LastTag
		var err error
		switch tag.Code {
		case 2:
			i.BlockName = html.EscapeString(tag.AsString())
		case 10:
			i.InsertionPoint.X, err = tag.Float()
		case 20:
			i.InsertionPoint.Y, err = tag.Float()
		case 30:
			i.InsertionPoint.Z, err = tag.Float()
		case 41:
			i.Scale.X, err = tag.Float()
		case 42:
			i.Scale.Y, err = tag.Float()
		case 43:
			i.Scale.Z, err = tag.Float()
		case 50:
			i.Rotation, err = tag.Float()
		case 66:
			var flag int
			flag, err = tag.Int()
			i.HasAttributes = flag == 1
		case 39, 210, 220, 230:
			err = i.parseOCS(tag)
		default:
			err = i.parseCommon(tag)
		}
		if err != nil {
			return err
		}
		more, err := next(scanner)
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	// 紧跟其后的 ATTRIB 都属于当前块，SEQEND 留给文档循环跳过
	for scanner.LastTag.Is("ATTRIB") {
		attr := NewAttrib()
		if err := attr.Parse(scanner); err != nil {
			return err
		}
		i.Attributes = append(i.Attributes, attr)
	}

	return nil
}

func (i *Insert) Resolve() {
	i.resolve(i.InsertionPoint, i.Rotation)
}

func (i *Insert) BBox() core.BBox {
	// 没有解析 BLOCKS 段，只返回插入点
	return core.BBox{Min: i.InsertionPoint, Max: i.InsertionPoint}
}
