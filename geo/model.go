package geo

// MapObject 类型
const (
	TypePolygon  = "polygon"
	TypePolyline = "polyline"
	TypeLine     = "line"
)

// MapObject 一个可在地图上显示的几何对象
type MapObject struct {
	Type   string  `json:"type" yaml:"type"`
	Popup  string  `json:"popup" yaml:"popup"` // 图层名
	Color  string  `json:"color" yaml:"color"`
	Coords []Coord `json:"coords" yaml:"coords"`
	Coordz *Scene  `json:"coordz,omitempty" yaml:"coordz,omitempty"`
}

// Scene 三维场景中的放置数据，只在实体抬高、有厚度或倾斜时给出
type Scene struct {
	Type     string      `json:"type" yaml:"type"`
	Coords   [][]float64 `json:"coords" yaml:"coords"` // 局部坐标，未投影
	Position []float64   `json:"position,omitempty" yaml:"position,omitempty"`
	Rotation []float64   `json:"rotation,omitempty" yaml:"rotation,omitempty"` // (X, Y, Z) 度
	Depth    float64     `json:"depth,omitempty" yaml:"depth,omitempty"`
}

// MapElement 一个块参照（构件）
type MapElement struct {
	Coords [2]float64        `json:"coords" yaml:"coords"` // [lat, lon]
	Family string            `json:"family" yaml:"family"`
	Sheet  map[string]string `json:"sheet" yaml:"sheet"`
	Layer  string            `json:"layer,omitempty" yaml:"layer,omitempty"`
}
