// Package geo 把解析后的 DXF 实体换算成地图对象与构件。
//
// 图纸相对地球非常小，平面米到经纬度采用局部切平面近似：
//
//	Δlon = degrees(x / (R·|cos(lat)|))
//	Δlat = -degrees(y / R)
//
// 其中 y 位于地图坐标系（CAD 的 Y 取反，向南为正）。
package geo

import "math"

const (
	// EarthRadius 地球半径（米）
	EarthRadius = 6371 * 1000.0
	// MaxExtent 超过该尺寸（米）时近似误差不可忽略
	MaxExtent = 10 * 1000.0
	// CircleSegments 圆离散化的段数
	CircleSegments = 36
)

// Origin 图纸原点对应的地理位置（十进制度）
type Origin struct {
	Lat float64 `json:"lat" yaml:"lat" mapstructure:"lat"`
	Lon float64 `json:"lon" yaml:"lon" mapstructure:"lon"`
}

// Coord 经纬度对，顺序为 [lon, lat]
type Coord [2]float64

func (c Coord) Lon() float64 { return c[0] }

func (c Coord) Lat() float64 { return c[1] }

// Project 把地图坐标系下的平面坐标（米）投影为经纬度
func (o Origin) Project(x, y float64) Coord {
	gy := 1 / EarthRadius
	gx := 1 / (EarthRadius * math.Abs(math.Cos(radians(o.Lat))))

	return Coord{o.Lon + degrees(x*gx), o.Lat - degrees(y*gy)}
}

func radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

func degrees(rad float64) float64 {
	return rad * (180 / math.Pi)
}
