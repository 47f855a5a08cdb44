package bikecharts

import (
	"image/color"
	"strconv"
	"strings"
)

type Palette []string

var Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

func (p Palette) At(i int) string {
	if len(p) == 0 {
		return black
	}
	return p[i%len(p)]
}

var kindFills = [kindCount]string{
	KindBikes:         "#4e79a7",
	KindDocks:         "#a0cbe8",
	KindBikesDisabled: "#e15759",
	KindDocksDisabled: "#ff9d9a",
}

func (k Kind) Fill() string {
	if k < 0 || k >= kindCount {
		return black
	}
	return kindFills[k]
}

// parseColor understands the colors produced by this package: #rgb, #rrggbb
// and #rrggbbaa. Anything else is treated as transparent.
func parseColor(str string, opacity float64) color.RGBA {
	str = strings.TrimPrefix(str, "#")
	if len(str) == 3 {
		str = string([]byte{str[0], str[0], str[1], str[1], str[2], str[2]})
	}
	if len(str) == 6 {
		str += "ff"
	}
	if len(str) != 8 {
		return color.RGBA{}
	}
	v, err := strconv.ParseUint(str, 16, 32)
	if err != nil {
		return color.RGBA{}
	}
	var (
		a = float64(v&0xff) * opacity
		f = a / 0xff
	)
	// color.RGBA holds premultiplied components
	return color.RGBA{
		R: uint8(float64((v>>24)&0xff) * f),
		G: uint8(float64((v>>16)&0xff) * f),
		B: uint8(float64((v>>8)&0xff) * f),
		A: uint8(a),
	}
}
