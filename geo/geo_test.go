package geo

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zooyer/golib/xmath"

	dxf "github.com/zooyer/dxfmap"
)

var rome = Origin{Lat: 41.9, Lon: 12.5}

func load(t *testing.T, pairs ...string) *dxf.Document {
	t.Helper()

	data := []string{
		"0", "SECTION", "2", "TABLES",
		"0", "TABLE", "2", "LAYER",
		"0", "LAYER", "2", "0", "62", "7",
		"0", "LAYER", "2", "Walls", "62", "1",
		"0", "LAYER", "2", "Doors", "62", "-3",
		"0", "ENDTAB", "0", "ENDSEC",
		"0", "SECTION", "2", "ENTITIES",
	}
	data = append(data, pairs...)
	data = append(data, "0", "ENDSEC", "0", "EOF")

	doc, err := dxf.Load(strings.NewReader(strings.Join(data, "\n") + "\n"))
	require.NoError(t, err)
	require.False(t, doc.Truncated)

	return doc
}

func TestProject(t *testing.T) {
	assert.Equal(t, Coord{12.5, 41.9}, rome.Project(0, 0))

	// 东 1 km、北 1 km
	c := rome.Project(1000, -1000)
	dLat := 1000 / EarthRadius * 180 / math.Pi
	dLon := dLat / math.Cos(41.9*math.Pi/180)
	assert.True(t, xmath.Equal(c.Lat(), 41.9+dLat, 1e-12), "lat %v", c.Lat())
	assert.True(t, xmath.Equal(c.Lon(), 12.5+dLon, 1e-12), "lon %v", c.Lon())
}

func TestTransform_Polygon(t *testing.T) {
	doc := load(t,
		"0", "LWPOLYLINE", "8", "Walls", "90", "4", "70", "1",
		"10", "0", "20", "0",
		"10", "10", "20", "0",
		"10", "10", "20", "10",
		"10", "0", "20", "10",
	)

	objects := Transform(doc.Entities, doc.Layers, rome)
	require.Len(t, objects, 1)

	obj := objects[0]
	assert.Equal(t, TypePolygon, obj.Type)
	assert.Equal(t, "Walls", obj.Popup)
	assert.Equal(t, "#ff0000", obj.Color)
	assert.Nil(t, obj.Coordz)

	require.Len(t, obj.Coords, 5)
	assert.Equal(t, rome.Project(0, 0), obj.Coords[0])
	assert.Equal(t, obj.Coords[0], obj.Coords[4])

	// CAD 的 +Y 指向北
	assert.Greater(t, obj.Coords[1].Lon(), rome.Lon)
	assert.Equal(t, rome.Lat, obj.Coords[1].Lat())
	assert.Greater(t, obj.Coords[3].Lat(), rome.Lat)
}

func TestTransform_OpenPolyline(t *testing.T) {
	doc := load(t,
		"0", "POLYLINE", "8", "0", "66", "1", "70", "0",
		"0", "VERTEX", "8", "0", "10", "0", "20", "0",
		"0", "VERTEX", "8", "0", "10", "5", "20", "5",
		"0", "SEQEND",
	)

	objects := Transform(doc.Entities, doc.Layers, rome)
	require.Len(t, objects, 1)
	assert.Equal(t, TypePolyline, objects[0].Type)
	assert.Equal(t, "#ffffff", objects[0].Color)
	assert.Len(t, objects[0].Coords, 2)
}

func TestTransform_Elevated(t *testing.T) {
	doc := load(t,
		"0", "LWPOLYLINE", "8", "Walls", "70", "1", "38", "3", "39", "2.5",
		"10", "1", "20", "1",
		"10", "4", "20", "1",
		"10", "4", "20", "5",
	)

	objects := Transform(doc.Entities, doc.Layers, rome)
	require.Len(t, objects, 1)

	scene := objects[0].Coordz
	require.NotNil(t, scene)
	assert.Equal(t, TypePolygon, scene.Type)
	assert.Equal(t, [][]float64{{1, 1}, {4, 1}, {4, 5}, {1, 1}}, scene.Coords)
	assert.Equal(t, []float64{0, 0, 3}, scene.Position)
	assert.Equal(t, []float64{0, 0, 0}, scene.Rotation)
	assert.Equal(t, 2.5, scene.Depth)
	assert.Len(t, objects[0].Coords, 4)
}

func TestTransform_Tilted(t *testing.T) {
	// 拉伸方向 (0,0,-1)：OCS 的 X 轴与世界 X 轴相反
	doc := load(t,
		"0", "LWPOLYLINE", "8", "0", "70", "0",
		"210", "0", "220", "0", "230", "-1",
		"10", "0", "20", "0",
		"10", "10", "20", "0",
	)

	objects := Transform(doc.Entities, doc.Layers, rome)
	require.Len(t, objects, 1)

	obj := objects[0]
	require.NotNil(t, obj.Coordz)
	assert.Equal(t, [][]float64{{0, 0}, {10, 0}}, obj.Coordz.Coords)
	assert.Equal(t, []float64{0, 0, 0}, obj.Coordz.Position)
	require.Len(t, obj.Coordz.Rotation, 3)
	assert.InDelta(t, 0, obj.Coordz.Rotation[0], 1e-9)
	assert.InDelta(t, 180, obj.Coordz.Rotation[1], 1e-9)
	assert.InDelta(t, 0, obj.Coordz.Rotation[2], 1e-9)

	require.Len(t, obj.Coords, 2)
	assert.Equal(t, rome.Project(0, 0), obj.Coords[0])
	assert.InDelta(t, rome.Project(-10, 0).Lon(), obj.Coords[1].Lon(), 1e-12)
	assert.InDelta(t, rome.Lat, obj.Coords[1].Lat(), 1e-12)
}

func TestTransform_Line(t *testing.T) {
	doc := load(t,
		"0", "LINE", "8", "0", "62", "5",
		"10", "1", "20", "2", "30", "0",
		"11", "4", "21", "6", "31", "1",
	)

	objects := Transform(doc.Entities, doc.Layers, rome)
	require.Len(t, objects, 1)

	obj := objects[0]
	assert.Equal(t, TypeLine, obj.Type)
	assert.Equal(t, "#0000ff", obj.Color)
	assert.Equal(t, []Coord{rome.Project(1, -2), rome.Project(4, -6)}, obj.Coords)
	require.NotNil(t, obj.Coordz)
	assert.Equal(t, [][]float64{{1, -2, 0}, {4, -6, 1}}, obj.Coordz.Coords)
}

func TestTransform_Circle(t *testing.T) {
	doc := load(t,
		"0", "CIRCLE", "8", "Walls",
		"10", "2", "20", "3", "30", "0",
		"40", "1.5",
	)

	objects := Transform(doc.Entities, doc.Layers, rome)
	require.Len(t, objects, 1)

	obj := objects[0]
	assert.Equal(t, TypePolygon, obj.Type)
	require.Len(t, obj.Coords, CircleSegments+1)
	assert.Equal(t, obj.Coords[0], obj.Coords[CircleSegments])
	assert.Equal(t, rome.Project(3.5, -3), obj.Coords[0])

	// 90° 处在圆心南侧（地图坐标 y 增大）
	quarter := obj.Coords[CircleSegments/4]
	assert.InDelta(t, rome.Project(2, -1.5).Lat(), quarter.Lat(), 1e-12)
}

func TestTransform_Idempotent(t *testing.T) {
	doc := load(t,
		"0", "LWPOLYLINE", "8", "Walls", "70", "1",
		"10", "0", "20", "0", "10", "3", "20", "0", "10", "3", "20", "3",
		"0", "CIRCLE", "8", "0", "10", "1", "20", "1", "40", "1",
		"0", "TEXT", "8", "0", "1", "ignored",
	)

	first := Transform(doc.Entities, doc.Layers, rome)
	second := Transform(doc.Entities, doc.Layers, rome)

	assert.Len(t, first, 2)
	assert.Equal(t, first, second)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestExtract(t *testing.T) {
	doc := load(t,
		"0", "INSERT", "8", "Doors", "66", "1", "2", "Door",
		"10", "12", "20", "7", "30", "0",
		"0", "ATTRIB", "8", "Doors", "1", "90", "2", "Width",
		"0", "SEQEND",
		"0", "LINE", "8", "0", "10", "0", "20", "0", "11", "1", "21", "1",
	)

	elements := Extract(doc.Entities, rome)
	require.Len(t, elements, 1)

	e := elements[0]
	assert.Equal(t, "Door", e.Family)
	assert.Equal(t, "Doors", e.Layer)
	assert.Equal(t, map[string]string{"Width": "90"}, e.Sheet)

	c := rome.Project(12, -7)
	assert.Equal(t, [2]float64{c.Lat(), c.Lon()}, e.Coords)
	assert.Greater(t, e.Coords[0], rome.Lat)
}

func TestExtract_Empty(t *testing.T) {
	elements := Extract(nil, rome)
	assert.NotNil(t, elements)
	assert.Empty(t, elements)
}
