// Package ocs 实现 DXF 的任意轴算法（Arbitrary Axis Algorithm）。
//
// 实体的对象坐标系（OCS）只由拉伸方向（组码 210/220/230）确定，
// Resolve 由此重建 OCS 基向量，把局部插入点换算到世界坐标，
// 并求出三维场景放置所需的 yaw(Z)、pitch(X)、roll(Y)。
package ocs

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zooyer/dxfmap/core"
)

// threshold 拉伸方向接近世界 Z 轴的判定阈值
const threshold = 1.0 / 64

// WorldZ 默认拉伸方向
var WorldZ = core.Point{X: 0, Y: 0, Z: 1}

// Placement 实体在地图坐标系下的位置与姿态。
// Position 的 Y 已取反（CAD 与地图方向相反），角度单位为度，Roll 已取反。
type Placement struct {
	Position core.Point
	Pitch    float64 // 绕 X
	Roll     float64 // 绕 Y
	Yaw      float64 // 绕 Z
}

// Flat 是否没有任何旋转
func (p Placement) Flat() bool {
	return p.Pitch == 0 && p.Roll == 0 && p.Yaw == 0
}

// Rotation 按 (X, Y, Z) 顺序返回旋转角
func (p Placement) Rotation() [3]float64 {
	return [3]float64{p.Pitch, p.Roll, p.Yaw}
}

// Resolve 执行任意轴算法。
// extrusion 为 OCS 的 Z 轴，local 为 OCS 下的插入点，rotation 为平面内旋转角（度）。
func Resolve(extrusion, local core.Point, rotation float64) Placement {
	az := r3.Vec(extrusion)
	if az == (r3.Vec{}) {
		az = r3.Vec(WorldZ)
	}
	p := r3.Vec(local)

	// 1. 拉伸方向接近世界 Z 时以世界 Y 为参考轴
	w := r3.Vec{Z: 1}
	if math.Abs(az.X) < threshold && math.Abs(az.Y) < threshold {
		w = r3.Vec{Y: 1}
	}

	// 2、3. OCS 的 X、Y 轴
	ax := r3.Unit(r3.Cross(w, az))
	ay := r3.Unit(r3.Cross(az, ax))

	// 4. 插入点转换到世界坐标
	world := toWorld(p, ax, ay, az)

	// 5. 用平面内旋转后的 X 方向探针求真实 X 轴，再求 Y 轴
	rad := rotation * (math.Pi / 180)
	probe := r3.Vec{X: p.X + math.Cos(rad), Y: p.Y + math.Sin(rad), Z: p.Z}
	rx := r3.Sub(toWorld(probe, ax, ay, az), world)
	ry := r3.Unit(r3.Cross(az, rx))

	// 6. A-Frame 旋转顺序 Yaw(Z)、Pitch(X)、Roll(Y)，Y 轴 Z 分量为 ±1 时万向锁
	var pitch, yaw, roll float64
	switch {
	case ry.Z >= 1:
		pitch = math.Pi / 2
		yaw = math.Atan2(az.X, rx.X)
	case ry.Z <= -1:
		pitch = -math.Pi / 2
		yaw = -math.Atan2(az.X, rx.X)
	default:
		pitch = math.Asin(ry.Z)
		yaw = math.Atan2(-ry.X, ry.Y)
		roll = math.Atan2(-rx.Z, az.Z)
	}

	// 7. Y 取反，弧度转角度，roll 取反
	return Placement{
		Position: core.Point{X: world.X, Y: -world.Y, Z: world.Z},
		Pitch:    degrees(pitch),
		Roll:     -degrees(roll),
		Yaw:      degrees(yaw),
	}
}

// toWorld 通过基向量 (ax, ay, az) 把 OCS 点变换到世界坐标
func toWorld(p, ax, ay, az r3.Vec) r3.Vec {
	return r3.Add(r3.Add(r3.Scale(p.X, ax), r3.Scale(p.Y, ay)), r3.Scale(p.Z, az))
}

func degrees(rad float64) float64 {
	return rad * (180 / math.Pi)
}
