package core

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrBinary 二进制 DXF 不支持
	ErrBinary = errors.New("dxf: binary DXF is not supported")
	// ErrTruncated 实体尚未结束时文件已结束
	ErrTruncated = errors.New("dxf: unexpected end of stream")
)

// binarySentinel 二进制 DXF 文件头
var binarySentinel = []byte("AutoCAD Binary DXF")

// ParseError 组码或数值无法解析
type ParseError struct {
	Line  int
	Code  int
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dxf: line %d: code %d: invalid value %q: %v", e.Line, e.Code, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

type Scanner struct {
	reader  *bufio.Reader
	LastTag Tag
	line    int
	err     error
	checked bool
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
	}
}

// Next 读取下一组 Code/Value。
// 文件结束、Code 行为空（文件损坏或被截断）时返回 false 且不设置错误。
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}

	if !s.checked {
		s.checked = true
		if head, _ := s.reader.Peek(len(binarySentinel)); bytes.Equal(head, binarySentinel) {
			s.err = ErrBinary
			return false
		}
	}

	// 1. 读取 Code 行
	codeLine, ok := s.readLine()
	if !ok {
		return false
	}

	codeStr := strings.TrimSpace(codeLine)
	if codeStr == "" {
		return false
	}

	code, err := strconv.Atoi(codeStr)
	if err != nil {
		s.err = &ParseError{Line: s.line, Code: -1, Value: codeStr, Err: err}
		return false
	}

	// 2. 读取 Value 行
	valueLine, ok := s.readLine()
	if !ok {
		return false
	}

	// 去掉行尾的换行符，但保留 Value 开头的空格（DXF 规范要求）
	value := strings.TrimRight(valueLine, "\r\n")

	s.LastTag = Tag{Code: code, Value: value, Line: s.line}
	return true
}

// readLine 最后一行没有换行符时同样返回该行
func (s *Scanner) readLine() (string, bool) {
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			s.err = err
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	s.line++

	return line, true
}

func (s *Scanner) Err() error {
	return s.err
}

// Line 最近读取的行号（从 1 开始）
func (s *Scanner) Line() int {
	return s.line
}
