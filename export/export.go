// Package export 把导入结果编码为 json、yaml 或 msgpack，并可导出构件参数表（CSV）。
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	JSON    Format = "json"
	YAML    Format = "yaml"
	MsgPack Format = "msgpack"
)

var ErrFormat = errors.New("export: unknown format")

// ParseFormat 解析格式名，也接受文件扩展名（如 .yml、.mp）
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "", "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "msgpack", "mp", "mpk":
		return MsgPack, nil
	}
	return "", fmt.Errorf("%w: %q", ErrFormat, name)
}

// Encode 按格式编码 v。msgpack 沿用 json 标签，三种格式字段名一致。
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case MsgPack:
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		return enc.Encode(v)
	}
	return fmt.Errorf("%w: %q", ErrFormat, format)
}

// Decode 与 Encode 对应
func Decode(r io.Reader, format Format, v any) error {
	switch format {
	case JSON:
		return json.NewDecoder(r).Decode(v)
	case YAML:
		return yaml.NewDecoder(r).Decode(v)
	case MsgPack:
		dec := msgpack.NewDecoder(r)
		dec.SetCustomStructTag("json")
		return dec.Decode(v)
	}
	return fmt.Errorf("%w: %q", ErrFormat, format)
}
