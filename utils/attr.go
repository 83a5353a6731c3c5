package utils

import (
	"github.com/zooyer/dxfmap/entities"
)

// GetAttrs 块属性表，标签重复时后出现的覆盖前面的
func GetAttrs(ins *entities.Insert) map[string]string {
	var attrs = make(map[string]string, len(ins.Attributes))
	for _, a := range ins.Attributes {
		if a.Tag == "" {
			continue
		}
		attrs[a.Tag] = a.Text
	}

	return attrs
}

func GetAttr(ins *entities.Insert, key string) string {
	return GetAttrs(ins)[key]
}
