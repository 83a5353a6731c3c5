package entities

import (
	"html"

	"github.com/zooyer/dxfmap/core"
)

// Attrib 块属性，只出现在 INSERT 之后
type Attrib struct {
	BaseEntity
	Location core.Point
	Tag      string // 属性标签，如 "Width"
	Text     string // 属性值
	Height   float64
}

func NewAttrib() *Attrib {
	return &Attrib{BaseEntity: BaseEntity{TypeName: "ATTRIB"}}
}

func (a *Attrib) Parse(scanner *core.Scanner) error {
	for {
		tag := scanner.LastTag
		var err error
		switch tag.Code {
		case 10:
			a.Location.X, err = tag.Float()
		case 20:
			a.Location.Y, err = tag.Float()
		case 30:
			a.Location.Z, err = tag.Float()
		case 40:
			a.Height, err = tag.Float()
		case 1:
			a.Text = html.EscapeString(tag.AsString())
		case 2:
			a.Tag = html.EscapeString(tag.AsString())
		default:
			err = a.parseCommon(tag)
		}
		if err != nil {
			return err
		}
		if more, err := next(scanner); !more {
			return err
		}
	}
}

func (a *Attrib) BBox() core.BBox {
	// 简化处理：属性文字暂时以位置点作为包围盒
	return core.BBox{Min: a.Location, Max: a.Location}
}
