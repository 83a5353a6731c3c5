package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"slices"
	"strconv"

	"github.com/zooyer/golib/xos"

	"github.com/zooyer/dxfmap/geo"
)

var elementColumns = []string{"family", "layer", "lat", "lon"}

// SheetKeys 所有构件参数名（去重、排序）
func SheetKeys(elements []geo.MapElement) []string {
	var keys []string
	for _, e := range elements {
		for k := range e.Sheet {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	return slices.Compact(keys)
}

// WriteElementsCSV 写出构件参数表：先写表头，再逐行追加
func WriteElementsCSV(filename string, elements []geo.MapElement) error {
	keys := SheetKeys(elements)

	header, err := csvLine(append(slices.Clone(elementColumns), keys...))
	if err != nil {
		return err
	}
	if err = os.WriteFile(filename, header, 0644); err != nil {
		return err
	}

	for _, e := range elements {
		record := []string{
			e.Family,
			e.Layer,
			strconv.FormatFloat(e.Coords[0], 'f', -1, 64),
			strconv.FormatFloat(e.Coords[1], 'f', -1, 64),
		}
		for _, k := range keys {
			record = append(record, e.Sheet[k])
		}

		line, err := csvLine(record)
		if err != nil {
			return err
		}
		if err = xos.AppendFile(filename, line, 0644); err != nil {
			return err
		}
	}

	return nil
}

func csvLine(record []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(record); err != nil {
		return nil, err
	}
	w.Flush()

	return buf.Bytes(), w.Error()
}
