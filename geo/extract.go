package geo

import (
	"github.com/zooyer/dxfmap/entities"
	"github.com/zooyer/dxfmap/utils"
)

// Extract 把块参照转换为构件：块名作为族，属性作为参数表
func Extract(ents []entities.Entity, origin Origin) []MapElement {
	elements := make([]MapElement, 0)
	for _, ent := range ents {
		ins, ok := ent.(*entities.Insert)
		if !ok {
			continue
		}

		pos := ins.Placement.Position
		coord := origin.Project(pos.X, pos.Y)
		elements = append(elements, MapElement{
			Coords: [2]float64{coord.Lat(), coord.Lon()},
			Family: ins.BlockName,
			Sheet:  utils.GetAttrs(ins),
			Layer:  ins.Layer(),
		})
	}

	return elements
}
