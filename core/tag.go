package core

import (
	"strconv"
	"strings"
)

// Tag 代表 DXF 中的一组标签对
type Tag struct {
	Code  int
	Value string
	Line  int // Value 所在行
}

// Float 将值转换为 float64
func (t Tag) Float() (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	if err != nil {
		return 0, t.wrap(err)
	}
	return f, nil
}

// Int 将值转换为 int
func (t Tag) Int() (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(t.Value))
	if err != nil {
		return 0, t.wrap(err)
	}
	return i, nil
}

// AsString 清洗字符串（去除多余空格）
func (t Tag) AsString() string {
	return strings.TrimSpace(t.Value)
}

// Is 判断是否为指定的组码 0 标记，如 SECTION、ENDSEC
func (t Tag) Is(marker string) bool {
	return t.Code == 0 && strings.EqualFold(t.AsString(), marker)
}

func (t Tag) wrap(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		err = ne.Err
	}
	return &ParseError{Line: t.Line, Code: t.Code, Value: t.Value, Err: err}
}

// Point 代表三维空间中的一个点
type Point struct {
	X, Y, Z float64
}

// BBox 代表包围盒
type BBox struct {
	Min, Max Point
}

// Width X 方向尺寸
func (b BBox) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height Y 方向尺寸
func (b BBox) Height() float64 {
	return b.Max.Y - b.Min.Y
}
