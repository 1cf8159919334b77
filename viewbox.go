package sprite

import (
	"strconv"
	"strings"
)

// ViewBox is the rectangular coordinate frame an SVG document is
// authored against.
type ViewBox struct {
	MinX   float64
	MinY   float64
	Width  float64
	Height float64
}

// DefaultViewBox is the canonical 24x24 icon frame. Icons without a
// usable viewBox attribute are assumed to be authored against it.
var DefaultViewBox = ViewBox{0, 0, 24, 24}

// ParseViewBox parses a viewBox attribute value. Anything that is not
// four numbers yields DefaultViewBox.
func ParseViewBox(s string) ViewBox {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields) != 4 {
		return DefaultViewBox
	}
	var values [4]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return DefaultViewBox
		}
		values[i] = v
	}
	return ViewBox{values[0], values[1], values[2], values[3]}
}

// IsDefault reports whether the viewBox is exactly the canonical
// 24x24 frame.
func (v ViewBox) IsDefault() bool {
	return v == DefaultViewBox
}

func (v ViewBox) String() string {
	return formatNumber(v.MinX) + " " + formatNumber(v.MinY) + " " +
		formatNumber(v.Width) + " " + formatNumber(v.Height)
}

// formatNumber renders a coordinate the way it appears in SVG
// attributes, without a trailing fractional part for whole values.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
