// Package workflow 串起整个导入流程：两遍扫描 DXF，再分别生成地图对象与构件。
package workflow

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	dxf "github.com/zooyer/dxfmap"
	"github.com/zooyer/dxfmap/core"
	"github.com/zooyer/dxfmap/geo"
	"github.com/zooyer/dxfmap/utils"
)

// Result 一次导入的结果，由调用方负责持久化
type Result struct {
	ID        string           `json:"id" yaml:"id"`
	Name      string           `json:"name,omitempty" yaml:"name,omitempty"`
	Source    string           `json:"source,omitempty" yaml:"source,omitempty"`
	Origin    geo.Origin       `json:"origin" yaml:"origin"`
	Layers    dxf.Layers       `json:"layers" yaml:"layers"`
	Objects   []geo.MapObject  `json:"map_objects" yaml:"map_objects"`
	Elements  []geo.MapElement `json:"map_elements" yaml:"map_elements"`
	Extents   *core.BBox       `json:"extents,omitempty" yaml:"extents,omitempty"` // 图纸坐标（米）
	Truncated bool             `json:"truncated,omitempty" yaml:"truncated,omitempty"`
}

// Oversized 图纸范围超过 geo.MaxExtent，切平面近似的误差可能偏大
func (r *Result) Oversized() bool {
	if r.Extents == nil {
		return false
	}
	return r.Extents.Width() > geo.MaxExtent || r.Extents.Height() > geo.MaxExtent
}

// Run 图层扫描 -> 回到开头 -> 实体扫描 -> 几何转换与构件提取
func Run(reader io.ReadSeeker, origin geo.Origin) (*Result, error) {
	doc, err := dxf.Load(reader)
	if err != nil {
		return nil, err
	}

	result := &Result{
		ID:        uuid.New().String(),
		Origin:    origin,
		Layers:    doc.Layers,
		Objects:   geo.Transform(doc.Entities, doc.Layers, origin),
		Elements:  geo.Extract(doc.Entities, origin),
		Truncated: doc.Truncated,
	}
	if box, ok := utils.Extents(doc.Entities); ok {
		result.Extents = &box
	}

	return result, nil
}

// RunFile 打开文件执行 Run，无论成功与否都会关闭文件
func RunFile(filename string, origin geo.Origin) (result *Result, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	if result, err = Run(file, origin); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(filename), err)
	}
	result.Source = filename

	return result, nil
}
