package dxf

import (
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"

	"github.com/zooyer/dxfmap/core"
	"github.com/zooyer/dxfmap/entities"
)

// Defpoints 是 AutoCAD 保留的标注定义点图层，不参与显示
const Defpoints = "Defpoints"

// Layers 图层名 -> 颜色 (#rrggbb)
type Layers map[string]string

// Color 查询图层颜色，图层不存在时返回白色
func (l Layers) Color(name string) string {
	if color, ok := l[name]; ok {
		return color
	}
	return core.ColorHex(7)
}

// Header HEADER 段中关心的变量
type Header struct {
	Version  string // $ACADVER
	CodePage string // $DWGCODEPAGE
	Units    int    // $INSUNITS
}

// Encoding 实体段使用的文本编码，nil 表示 UTF-8
func (h *Header) Encoding() encoding.Encoding {
	if h == nil {
		return nil
	}
	return core.CodePage(h.Version, h.CodePage)
}

type Document struct {
	Header    Header
	Layers    Layers
	Entities  []entities.Entity
	Truncated bool // 文件不完整，Entities 只包含已完整解析的实体
}

// scanLayers 第一遍扫描：HEADER 与图层表，遇到 ENTITIES 段结束
func (d *Document) scanLayers(scanner *core.Scanner) {
	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Is("EOF") {
			return
		}
		if !tag.Is("SECTION") {
			continue
		}
		if !scanner.Next() {
			return
		}
		switch strings.ToUpper(scanner.LastTag.AsString()) {
		case "HEADER":
			d.parseHeader(scanner)
		case "TABLES":
			d.parseTables(scanner)
		case "ENTITIES":
			return
		}
	}
}

func (d *Document) parseHeader(scanner *core.Scanner) {
	var variable string
	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Is("ENDSEC") || tag.Is("EOF") {
			return
		}
		if tag.Code == 9 {
			variable = strings.ToUpper(tag.AsString())
			continue
		}
		switch variable {
		case "$ACADVER":
			d.Header.Version = strings.ToUpper(tag.AsString())
		case "$DWGCODEPAGE":
			d.Header.CodePage = tag.AsString()
		case "$INSUNITS":
			if units, err := tag.Int(); err == nil {
				d.Header.Units = units
			}
		}
	}
}

func (d *Document) parseTables(scanner *core.Scanner) {
	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Is("ENDSEC") || tag.Is("EOF") {
			return
		}
		if tag.Is("TABLE") {
			if !scanner.Next() {
				return
			}
			tableName := strings.ToUpper(scanner.LastTag.AsString())
			if tableName == "LAYER" {
				d.parseLayers(scanner)
			}
		}
	}
}

func (d *Document) parseLayers(scanner *core.Scanner) {
	enc := d.Header.Encoding()
	for {
		tag := scanner.LastTag
		if tag.Is("ENDTAB") || tag.Is("EOF") {
			return
		}

		if tag.Is("LAYER") {
			var (
				name  string
				color = core.ColorHex(7)
			)

			for scanner.Next() {
				t := scanner.LastTag
				if t.Code == 0 {
					break
				}
				switch t.Code {
				case 2: // 图层名称
					name = html.EscapeString(core.DecodeString(enc, t.AsString()))
				case 62: // 颜色，负数表示图层关闭
					if index, err := core.ParseColor(t); err == nil {
						color = core.ColorHex(index)
					}
				case 420: // 真彩色
					if rgb, err := t.Int(); err == nil {
						color = core.TrueColorHex(rgb)
					}
				}
			}

			if name != "" && name != Defpoints {
				d.Layers[name] = color
			}

			if scanner.LastTag.Code == 0 {
				continue
			}
		}

		if !scanner.Next() {
			return
		}
	}
}

// scanEntities 第二遍扫描：只解析 ENTITIES 段
func (d *Document) scanEntities(scanner *core.Scanner) error {
	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Is("EOF") {
			break
		}
		if tag.Is("SECTION") {
			if !scanner.Next() {
				break
			}
			if strings.EqualFold(scanner.LastTag.AsString(), "ENTITIES") {
				return d.parseEntities(scanner)
			}
		}
	}

	// 没有 ENTITIES 段
	d.Truncated = true
	return scanner.Err()
}

func (d *Document) parseEntities(scanner *core.Scanner) error {
	if !scanner.Next() {
		d.Truncated = true
		return scanner.Err()
	}

	for {
		tag := scanner.LastTag
		if tag.Is("ENDSEC") || tag.Is("EOF") {
			return nil
		}
		if tag.Code == 0 {
			if ent := entities.CreateEntity(strings.ToUpper(tag.AsString())); ent != nil {
				if err := ent.Parse(scanner); err != nil {
					if errors.Is(err, core.ErrTruncated) {
						d.Truncated = true
						return nil
					}
					return fmt.Errorf("parse %s: %w", ent.Type(), err)
				}
				d.add(ent)
				continue
			}
		}
		if !scanner.Next() {
			// 未遇到 ENDSEC 文件就结束了
			d.Truncated = true
			return scanner.Err()
		}
	}
}

// add 实体完成：编号，再统一执行任意轴算法
func (d *Document) add(ent entities.Entity) {
	ent.SetSeq(len(d.Entities) + 1)
	if o, ok := ent.(entities.Oriented); ok {
		o.Resolve()
	}
	d.Entities = append(d.Entities, ent)
}

func newDocument() *Document {
	return &Document{
		Layers:   make(Layers),
		Entities: make([]entities.Entity, 0, 1024),
	}
}

// ScanLayers 第一遍：读取 HEADER 与图层颜色表。文件不完整时返回已收集的部分。
func ScanLayers(reader io.Reader) (*Header, Layers, error) {
	var (
		scanner  = core.NewScanner(reader)
		document = newDocument()
	)

	document.scanLayers(scanner)

	return &document.Header, document.Layers, scanner.Err()
}

// ScanEntities 第二遍：读取 ENTITIES 段。header 用于确定文本编码，可以为 nil。
// truncated 表示文件在 ENDSEC 之前结束，返回的是已完整解析的实体。
func ScanEntities(reader io.Reader, header *Header) (ents []entities.Entity, truncated bool, err error) {
	var (
		scanner  = core.NewDecodingScanner(reader, header.Encoding())
		document = newDocument()
	)

	err = document.scanEntities(scanner)

	return document.Entities, document.Truncated, err
}

func Open(filename string) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return Load(file)
}

// Load 两遍扫描：先取图层颜色，回到文件开头，再解析实体
func Load(reader io.ReadSeeker) (doc *Document, err error) {
	header, layers, err := ScanLayers(reader)
	if err != nil {
		return nil, fmt.Errorf("scan layers: %w", err)
	}

	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind: %w", err)
	}

	ents, truncated, err := ScanEntities(reader, header)
	if err != nil {
		return nil, fmt.Errorf("scan entities: %w", err)
	}

	return &Document{
		Header:    *header,
		Layers:    layers,
		Entities:  ents,
		Truncated: truncated,
	}, nil
}
