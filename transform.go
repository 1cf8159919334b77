package sprite

import (
	"fmt"

	mt "github.com/rustyoz/Mtransform"
)

// Normalization maps one source viewBox into the canonical 24x24 frame.
// The same mapping is carried twice: as an affine matrix, and as the
// transform attribute text written into the sprite.
type Normalization struct {
	Matrix    mt.Transform
	Attribute string
}

// NewNormalization computes the translate/scale composition taking
// points in the source viewBox to the 0-24 frame. A degenerate viewBox
// is an error, reported instead of dividing by zero.
func NewNormalization(vb ViewBox) (Normalization, error) {
	if vb.Width == 0 || vb.Height == 0 {
		return Normalization{}, fmt.Errorf("viewBox %q has a zero dimension", vb.String())
	}

	scaleX := 24 / vb.Width
	scaleY := 24 / vb.Height
	translateX := -vb.MinX * scaleX
	translateY := -vb.MinY * scaleY

	scale := mt.Identity()
	scale.Scale(scaleX, scaleY)
	translate := mt.Identity()
	translate.Translate(translateX, translateY)

	var attr string
	if translateX != 0 || translateY != 0 {
		attr = "translate(" + formatNumber(translateX) + "," + formatNumber(translateY) + ")"
	}
	if scaleX != 1 || scaleY != 1 {
		if attr != "" {
			attr += " "
		}
		attr += "scale(" + formatNumber(scaleX) + "," + formatNumber(scaleY) + ")"
	}

	return Normalization{
		Matrix:    mt.MultiplyTransforms(translate, scale),
		Attribute: attr,
	}, nil
}
