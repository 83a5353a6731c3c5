package core

import "fmt"

// ColorByBlock、ColorByLayer 组码 62 的特殊取值
const (
	ColorByBlock = 0
	ColorByLayer = 256
)

// aciPalette AutoCAD 颜色索引（ACI）调色板，只读
var aciPalette = [256][3]uint8{
	{0, 0, 0}, {255, 0, 0}, {255, 255, 0}, {0, 255, 0}, {0, 255, 255},             // 0
	{0, 0, 255}, {255, 0, 255}, {255, 255, 255}, {128, 128, 128}, {192, 192, 192}, // 5
	{255, 0, 0}, {255, 127, 127}, {165, 0, 0}, {165, 82, 82}, {127, 0, 0},         // 10
	{127, 63, 63}, {76, 0, 0}, {76, 38, 38}, {38, 0, 0}, {38, 19, 19},             // 15
	{255, 63, 0}, {255, 159, 127}, {165, 41, 0}, {165, 103, 82}, {127, 31, 0},     // 20
	{127, 79, 63}, {76, 19, 0}, {76, 47, 38}, {38, 9, 0}, {38, 23, 19},            // 25
	{255, 127, 0}, {255, 191, 127}, {165, 82, 0}, {165, 124, 82}, {127, 63, 0},    // 30
	{127, 95, 63}, {76, 38, 0}, {76, 57, 38}, {38, 19, 0}, {38, 28, 19},           // 35
	{255, 191, 0}, {255, 223, 127}, {165, 124, 0}, {165, 145, 82}, {127, 95, 0},   // 40
	{127, 111, 63}, {76, 57, 0}, {76, 66, 38}, {38, 28, 0}, {38, 33, 19},          // 45
	{255, 255, 0}, {255, 255, 127}, {165, 165, 0}, {165, 165, 82}, {127, 127, 0},  // 50
	{127, 127, 63}, {76, 76, 0}, {76, 76, 38}, {38, 38, 0}, {38, 38, 19},          // 55
	{191, 255, 0}, {223, 255, 127}, {124, 165, 0}, {145, 165, 82}, {95, 127, 0},   // 60
	{111, 127, 63}, {57, 76, 0}, {66, 76, 38}, {28, 38, 0}, {33, 38, 19},          // 65
	{127, 255, 0}, {191, 255, 127}, {82, 165, 0}, {124, 165, 82}, {63, 127, 0},    // 70
	{95, 127, 63}, {38, 76, 0}, {57, 76, 38}, {19, 38, 0}, {28, 38, 19},           // 75
	{63, 255, 0}, {159, 255, 127}, {41, 165, 0}, {103, 165, 82}, {31, 127, 0},     // 80
	{79, 127, 63}, {19, 76, 0}, {47, 76, 38}, {9, 38, 0}, {23, 38, 19},            // 85
	{0, 255, 0}, {127, 255, 127}, {0, 165, 0}, {82, 165, 82}, {0, 127, 0},         // 90
	{63, 127, 63}, {0, 76, 0}, {38, 76, 38}, {0, 38, 0}, {19, 38, 19},             // 95
	{0, 255, 63}, {127, 255, 159}, {0, 165, 41}, {82, 165, 103}, {0, 127, 31},     // 100
	{63, 127, 79}, {0, 76, 19}, {38, 76, 47}, {0, 38, 9}, {19, 38, 23},            // 105
	{0, 255, 127}, {127, 255, 191}, {0, 165, 82}, {82, 165, 124}, {0, 127, 63},    // 110
	{63, 127, 95}, {0, 76, 38}, {38, 76, 57}, {0, 38, 19}, {19, 38, 28},           // 115
	{0, 255, 191}, {127, 255, 223}, {0, 165, 124}, {82, 165, 145}, {0, 127, 95},   // 120
	{63, 127, 111}, {0, 76, 57}, {38, 76, 66}, {0, 38, 28}, {19, 38, 33},          // 125
	{0, 255, 255}, {127, 255, 255}, {0, 165, 165}, {82, 165, 165}, {0, 127, 127},  // 130
	{63, 127, 127}, {0, 76, 76}, {38, 76, 76}, {0, 38, 38}, {19, 38, 38},          // 135
	{0, 191, 255}, {127, 223, 255}, {0, 124, 165}, {82, 145, 165}, {0, 95, 127},   // 140
	{63, 111, 127}, {0, 57, 76}, {38, 66, 76}, {0, 28, 38}, {19, 33, 38},          // 145
	{0, 127, 255}, {127, 191, 255}, {0, 82, 165}, {82, 124, 165}, {0, 63, 127},    // 150
	{63, 95, 127}, {0, 38, 76}, {38, 57, 76}, {0, 19, 38}, {19, 28, 38},           // 155
	{0, 63, 255}, {127, 159, 255}, {0, 41, 165}, {82, 103, 165}, {0, 31, 127},     // 160
	{63, 79, 127}, {0, 19, 76}, {38, 47, 76}, {0, 9, 38}, {19, 23, 38},            // 165
	{0, 0, 255}, {127, 127, 255}, {0, 0, 165}, {82, 82, 165}, {0, 0, 127},         // 170
	{63, 63, 127}, {0, 0, 76}, {38, 38, 76}, {0, 0, 38}, {19, 19, 38},             // 175
	{63, 0, 255}, {159, 127, 255}, {41, 0, 165}, {103, 82, 165}, {31, 0, 127},     // 180
	{79, 63, 127}, {19, 0, 76}, {47, 38, 76}, {9, 0, 38}, {23, 19, 38},            // 185
	{127, 0, 255}, {191, 127, 255}, {82, 0, 165}, {124, 82, 165}, {63, 0, 127},    // 190
	{95, 63, 127}, {38, 0, 76}, {57, 38, 76}, {19, 0, 38}, {28, 19, 38},           // 195
	{191, 0, 255}, {223, 127, 255}, {124, 0, 165}, {145, 82, 165}, {95, 0, 127},   // 200
	{111, 63, 127}, {57, 0, 76}, {66, 38, 76}, {28, 0, 38}, {33, 19, 38},          // 205
	{255, 0, 255}, {255, 127, 255}, {165, 0, 165}, {165, 82, 165}, {127, 0, 127},  // 210
	{127, 63, 127}, {76, 0, 76}, {76, 38, 76}, {38, 0, 38}, {38, 19, 38},          // 215
	{255, 0, 191}, {255, 127, 223}, {165, 0, 124}, {165, 82, 145}, {127, 0, 95},   // 220
	{127, 63, 111}, {76, 0, 57}, {76, 38, 66}, {38, 0, 28}, {38, 19, 33},          // 225
	{255, 0, 127}, {255, 127, 191}, {165, 0, 82}, {165, 82, 124}, {127, 0, 63},    // 230
	{127, 63, 95}, {76, 0, 38}, {76, 38, 57}, {38, 0, 19}, {38, 19, 28},           // 235
	{255, 0, 63}, {255, 127, 159}, {165, 0, 41}, {165, 82, 103}, {127, 0, 31},     // 240
	{127, 63, 79}, {76, 0, 19}, {76, 38, 47}, {38, 0, 9}, {38, 19, 23},            // 245
	{0, 0, 0}, {51, 51, 51}, {102, 102, 102}, {153, 153, 153}, {204, 204, 204},    // 250
	{255, 255, 255},                                                               // 255
}

// ColorHex 将 ACI 颜色索引转换为 #rrggbb，超出 [0,255] 时返回白色
func ColorHex(index int) string {
	if index < 0 || index >= len(aciPalette) {
		return "#ffffff"
	}
	c := aciPalette[index]
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

// TrueColorHex 将组码 420 的 24 位真彩色转换为 #rrggbb
func TrueColorHex(value int) string {
	return fmt.Sprintf("#%06x", value&0xffffff)
}

// ParseColor 解析组码 62 的文本值，负数（图层关闭）取绝对值
func ParseColor(t Tag) (int, error) {
	i, err := t.Int()
	if err != nil {
		return 0, err
	}
	if i < 0 {
		i = -i
	}
	return i, nil
}
