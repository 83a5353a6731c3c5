package utils

import (
	"math"

	"github.com/zooyer/dxfmap/core"
	"github.com/zooyer/dxfmap/entities"
)

// Union 合并两个包围盒
func Union(a, b core.BBox) core.BBox {
	return core.BBox{
		Min: core.Point{X: math.Min(a.Min.X, b.Min.X), Y: math.Min(a.Min.Y, b.Min.Y), Z: math.Min(a.Min.Z, b.Min.Z)},
		Max: core.Point{X: math.Max(a.Max.X, b.Max.X), Y: math.Max(a.Max.Y, b.Max.Y), Z: math.Max(a.Max.Z, b.Max.Z)},
	}
}

// Extents 图纸范围（所有实体包围盒的并集），没有实体时 ok 为 false
func Extents(ents []entities.Entity) (box core.BBox, ok bool) {
	for _, ent := range ents {
		if !ok {
			box, ok = ent.BBox(), true
			continue
		}
		box = Union(box, ent.BBox())
	}

	return
}
