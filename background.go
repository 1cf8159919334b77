package sprite

import (
	"fmt"
	"strconv"
	"strings"
)

// IsBackground reports whether an element is a background fill that
// should be dropped from the sprite. The check is a literal-pattern
// heuristic, not a geometric containment test: path data is compared
// against known full-cover rectangle spellings, so an equivalent path
// written differently will slip through. That is intentional — the
// patterns cover what icon sets actually emit.
func IsBackground(el *Element, vb ViewBox) (bool, error) {
	if el.Attribute("fill") == "none" {
		return true, nil
	}

	switch el.Tag {
	case "path":
		return isBackgroundPath(el.Attribute("d"), vb), nil
	case "rect":
		return isBackgroundRect(el, vb)
	}
	return false, nil
}

// coverPatterns lists the literal path-data spellings of a rectangle
// covering the whole viewBox, in float and integer formatting, plus the
// fixed 24x24 variants common icon exporters produce.
func coverPatterns(vb ViewBox) []string {
	x := formatNumber(vb.MinX)
	y := formatNumber(vb.MinY)
	w := formatNumber(vb.Width)
	h := formatNumber(vb.Height)
	// Only differ from w/h for fractional dimensions; integral
	// viewBoxes repeat the same spelling.
	wi := strconv.Itoa(int(vb.Width))
	hi := strconv.Itoa(int(vb.Height))

	return []string{
		"M" + x + " " + y + "h" + w + "v" + h + "H" + x + "z",
		"M" + x + " " + y + "h" + w + "v" + h + "H" + x + "V" + y + "z",
		"M" + x + "," + y + "h" + w + "v" + h + "H" + x + "V" + y + "z",
		"M" + x + " " + y + "h" + wi + "v" + hi + "H" + x + "z",
		"M" + x + " " + y + "h" + wi + "v" + hi + "H" + x + "V" + y + "z",
		"M0 0h24v24H0z",
		"M0 0h24v24H0V0z",
		"M0,0h24v24H0V0z",
		"M.01 0h24v24h-24V0z",
	}
}

func isBackgroundPath(d string, vb ViewBox) bool {
	d = strings.TrimSpace(d)
	for _, pattern := range coverPatterns(vb) {
		if d == pattern {
			return true
		}
	}
	return false
}

func isBackgroundRect(el *Element, vb ViewBox) (bool, error) {
	x, err := rectAttr(el, "x")
	if err != nil {
		return false, err
	}
	y, err := rectAttr(el, "y")
	if err != nil {
		return false, err
	}
	width, err := rectAttr(el, "width")
	if err != nil {
		return false, err
	}
	height, err := rectAttr(el, "height")
	if err != nil {
		return false, err
	}

	return x == vb.MinX && y == vb.MinY && width >= vb.Width && height >= vb.Height, nil
}

func rectAttr(el *Element, name string) (float64, error) {
	value := el.Attribute(name)
	if value == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("rect %s attribute %q: %w", name, value, err)
	}
	return f, nil
}
