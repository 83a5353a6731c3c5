package core

import (
	"errors"
	"strings"
	"testing"
)

func TestScanner_Basic(t *testing.T) {
	// 模拟一个简单的 DXF 片段
	dxfData := "0\nSECTION\n2\nHEADER\n0\nENDSEC\n"
	r := strings.NewReader(dxfData)
	scanner := NewScanner(r)

	expected := []Tag{
		{Code: 0, Value: "SECTION", Line: 2},
		{Code: 2, Value: "HEADER", Line: 4},
		{Code: 0, Value: "ENDSEC", Line: 6},
	}

	for i, exp := range expected {
		if !scanner.Next() {
			t.Fatalf("第 %d 步读取失败: %v", i, scanner.Err())
		}
		if scanner.LastTag != exp {
			t.Errorf("第 %d 步数据不符: 期望 %+v, 得到 %+v", i, exp, scanner.LastTag)
		}
	}

	if scanner.Next() {
		t.Errorf("文件结束后不应再读到数据: %+v", scanner.LastTag)
	}
	if scanner.Err() != nil {
		t.Errorf("文件正常结束不应报错: %v", scanner.Err())
	}
}

func TestScanner_CRLF(t *testing.T) {
	scanner := NewScanner(strings.NewReader("  0\r\nLINE\r\n  8\r\n Walls \r\n"))

	if !scanner.Next() || !scanner.LastTag.Is("line") {
		t.Fatalf("CRLF 组码读取失败: %+v", scanner.LastTag)
	}
	if !scanner.Next() {
		t.Fatalf("第二组读取失败: %v", scanner.Err())
	}
	if scanner.LastTag.Value != " Walls " {
		t.Errorf("Value 前后空格应保留: %q", scanner.LastTag.Value)
	}
	if scanner.LastTag.AsString() != "Walls" {
		t.Errorf("AsString 应去掉空格: %q", scanner.LastTag.AsString())
	}
}

func TestScanner_NoTrailingNewline(t *testing.T) {
	scanner := NewScanner(strings.NewReader("0\nEOF"))

	if !scanner.Next() {
		t.Fatalf("最后一行没有换行符时应正常读取: %v", scanner.Err())
	}
	if !scanner.LastTag.Is("EOF") {
		t.Errorf("数据不符: %+v", scanner.LastTag)
	}
}

func TestScanner_Truncated(t *testing.T) {
	cases := map[string]string{
		"空行":    "0\nLINE\n\n",
		"缺少 Value": "0\nLINE\n10\n",
		"空文件":   "",
	}

	for name, data := range cases {
		scanner := NewScanner(strings.NewReader(data))
		for scanner.Next() {
		}
		if scanner.Err() != nil {
			t.Errorf("%s: 截断不应报错: %v", name, scanner.Err())
		}
	}
}

func TestScanner_BadCode(t *testing.T) {
	scanner := NewScanner(strings.NewReader("0\nLINE\nabc\n1.0\n"))

	if !scanner.Next() {
		t.Fatalf("第一组读取失败: %v", scanner.Err())
	}
	if scanner.Next() {
		t.Fatalf("非法组码应停止读取")
	}

	var pe *ParseError
	if !errors.As(scanner.Err(), &pe) {
		t.Fatalf("期望 ParseError, 得到 %v", scanner.Err())
	}
	if pe.Line != 3 || pe.Value != "abc" {
		t.Errorf("错误位置不符: %+v", pe)
	}
}

func TestScanner_Binary(t *testing.T) {
	scanner := NewScanner(strings.NewReader("AutoCAD Binary DXF\r\n\x1a\x00"))

	if scanner.Next() {
		t.Fatalf("二进制文件不应读到数据")
	}
	if !errors.Is(scanner.Err(), ErrBinary) {
		t.Errorf("期望 ErrBinary, 得到 %v", scanner.Err())
	}
}

func TestTag_Numbers(t *testing.T) {
	f, err := Tag{Code: 10, Value: " 12.5"}.Float()
	if err != nil || f != 12.5 {
		t.Errorf("Float 解析失败: %v %v", f, err)
	}

	i, err := Tag{Code: 70, Value: "    1"}.Int()
	if err != nil || i != 1 {
		t.Errorf("Int 解析失败: %v %v", i, err)
	}

	_, err = Tag{Code: 20, Value: "1,5", Line: 42}.Float()
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("期望 ParseError, 得到 %v", err)
	}
	if pe.Line != 42 || pe.Code != 20 {
		t.Errorf("错误信息不符: %+v", pe)
	}
}

func TestBBox_Size(t *testing.T) {
	b := BBox{Min: Point{X: -1, Y: 2}, Max: Point{X: 4, Y: 10}}
	if b.Width() != 5 || b.Height() != 8 {
		t.Errorf("尺寸不符: %v x %v", b.Width(), b.Height())
	}
}
