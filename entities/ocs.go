package entities

import (
	"github.com/zooyer/dxfmap/core"
	"github.com/zooyer/dxfmap/ocs"
)

// OCS 对象坐标系相关的组码
type OCS struct {
	Extrusion core.Point    // 组码 210/220/230，默认 (0,0,1)
	Thickness float64       // 组码 39
	Placement ocs.Placement // Resolve 之后的世界位置与姿态
}

func defaultOCS() OCS {
	return OCS{Extrusion: ocs.WorldZ}
}

// Tilted 拉伸方向是否偏离世界 Z 轴
func (o *OCS) Tilted() bool {
	return o.Extrusion != ocs.WorldZ
}

func (o *OCS) parseOCS(t core.Tag) (err error) {
	switch t.Code {
	case 39:
		o.Thickness, err = t.Float()
	case 210:
		o.Extrusion.X, err = t.Float()
	case 220:
		o.Extrusion.Y, err = t.Float()
	case 230:
		o.Extrusion.Z, err = t.Float()
	}
	return
}

func (o *OCS) resolve(local core.Point, rotation float64) {
	o.Placement = ocs.Resolve(o.Extrusion, local, rotation)
}
