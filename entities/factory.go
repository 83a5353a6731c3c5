package entities

import (
	"html"

	"github.com/zooyer/dxfmap/core"
)

// Entity 是一切几何实体的接口
type Entity interface {
	Parse(scanner *core.Scanner) error
	Type() string
	Layer() string
	Color() string
	Seq() int
	SetSeq(seq int)
	BBox() core.BBox
}

// Oriented 带 OCS 的实体。Parse 完成、所有组码收齐后由文档统一调用一次 Resolve。
type Oriented interface {
	Entity
	Resolve()
}

// BaseEntity 存放所有实体通用的属性（如 Layer, Color, Handle）
type BaseEntity struct {
	TypeName  string
	LayerName string
	Handle    string
	ColorHex  string // 实体自身颜色，空表示随层
	Num       int    // 在 ENTITIES 段中的顺序号，从 1 开始

	trueColor bool
}

func (b *BaseEntity) Type() string { return b.TypeName }

func (b *BaseEntity) Layer() string { return b.LayerName }

func (b *BaseEntity) Color() string { return b.ColorHex }

func (b *BaseEntity) Seq() int { return b.Num }

func (b *BaseEntity) SetSeq(seq int) { b.Num = seq }

// parseCommon 处理各实体共有的组码
func (b *BaseEntity) parseCommon(t core.Tag) error {
	switch t.Code {
	case 5:
		b.Handle = t.AsString()
	case 8:
		b.LayerName = html.EscapeString(t.AsString())
	case 62:
		index, err := core.ParseColor(t)
		if err != nil {
			return err
		}
		// 随层不覆盖图层颜色，真彩色优先
		if index != core.ColorByLayer && !b.trueColor {
			b.ColorHex = core.ColorHex(index)
		}
	case 420:
		rgb, err := t.Int()
		if err != nil {
			return err
		}
		b.ColorHex = core.TrueColorHex(rgb)
		b.trueColor = true
	}
	return nil
}

// next 前进到下一组标签，遇到组码 0 时返回 false（当前实体结束）。
// 实体未结束文件就结束时返回 core.ErrTruncated。
func next(s *core.Scanner) (bool, error) {
	if !s.Next() {
		if err := s.Err(); err != nil {
			return false, err
		}
		return false, core.ErrTruncated
	}
	return s.LastTag.Code != 0, nil
}

// EntityFactory 定义了如何从标签流中创建一个实体
type EntityFactory func() Entity

var registry = map[string]EntityFactory{}

// Register 允许以后动态扩展新的实体类型
func Register(typeName string, factory EntityFactory) {
	registry[typeName] = factory
}

// CreateEntity 根据实体名称生产对应的结构体
func CreateEntity(typeName string) Entity {
	if factory, ok := registry[typeName]; ok {
		return factory()
	}
	return nil
}
