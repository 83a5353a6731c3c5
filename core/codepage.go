package core

import (
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// AC1021（AutoCAD 2007）起 DXF 固定为 UTF-8
const utf8Version = "AC1021"

var codePages = map[string]encoding.Encoding{
	"ANSI_874":  charmap.Windows874,
	"ANSI_1250": charmap.Windows1250,
	"ANSI_1251": charmap.Windows1251,
	"ANSI_1252": charmap.Windows1252,
	"ANSI_1253": charmap.Windows1253,
	"ANSI_1254": charmap.Windows1254,
	"ANSI_1255": charmap.Windows1255,
	"ANSI_1256": charmap.Windows1256,
	"ANSI_1257": charmap.Windows1257,
	"ANSI_1258": charmap.Windows1258,
}

// CodePage 根据 $ACADVER 与 $DWGCODEPAGE 选择解码器，UTF-8 或未知代码页返回 nil
func CodePage(version, codePage string) encoding.Encoding {
	if version >= utf8Version {
		return nil
	}
	return codePages[strings.ToUpper(strings.TrimSpace(codePage))]
}

// NewDecodingScanner 按代码页解码后再扫描
func NewDecodingScanner(r io.Reader, enc encoding.Encoding) *Scanner {
	if enc != nil {
		r = enc.NewDecoder().Reader(r)
	}
	return NewScanner(r)
}

// DecodeString 按代码页解码单个字符串，失败时原样返回
func DecodeString(enc encoding.Encoding, s string) string {
	if enc == nil {
		return s
	}
	out, err := enc.NewDecoder().String(s)
	if err != nil {
		return s
	}
	return out
}
