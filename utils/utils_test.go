package utils

import (
	"testing"

	"github.com/zooyer/dxfmap/core"
	"github.com/zooyer/dxfmap/entities"
)

func TestGetAttrs(t *testing.T) {
	ins := &entities.Insert{Attributes: []*entities.Attrib{
		{Tag: "Width", Text: "80"},
		{Tag: "", Text: "无标签"},
		{Tag: "Width", Text: "90"},
		{Tag: "Height", Text: "210"},
	}}

	attrs := GetAttrs(ins)
	if len(attrs) != 2 {
		t.Fatalf("属性数量不符: %v", attrs)
	}
	if GetAttr(ins, "Width") != "90" {
		t.Errorf("重复标签应取最后一个: %v", attrs)
	}
	if GetAttr(ins, "Depth") != "" {
		t.Errorf("不存在的标签应返回空")
	}
}

func TestExtents(t *testing.T) {
	if _, ok := Extents(nil); ok {
		t.Errorf("没有实体时不应有范围")
	}

	ents := []entities.Entity{
		&entities.Line{Start: core.Point{X: -2, Y: 1}, End: core.Point{X: 3, Y: 4}},
		&entities.Circle{Center: core.Point{X: 10, Y: 10}, Radius: 1},
	}
	box, ok := Extents(ents)
	want := core.BBox{Min: core.Point{X: -2, Y: 1}, Max: core.Point{X: 11, Y: 11}}
	if !ok || box != want {
		t.Errorf("范围不符: 期望 %+v, 得到 %+v", want, box)
	}
}
