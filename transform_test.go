package sprite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNormalizationScaleOnly(t *testing.T) {
	norm, err := NewNormalization(ViewBox{0, 0, 48, 48})
	require.NoError(t, err)
	require.Equal(t, "scale(0.5,0.5)", norm.Attribute)

	x, y := norm.Matrix.Apply(0, 0)
	require.InDelta(t, 0, x, 1e-9)
	require.InDelta(t, 0, y, 1e-9)

	x, y = norm.Matrix.Apply(48, 48)
	require.InDelta(t, 24, x, 1e-9)
	require.InDelta(t, 24, y, 1e-9)
}

func TestNewNormalizationTranslateAndScale(t *testing.T) {
	norm, err := NewNormalization(ViewBox{10, 10, 20, 20})
	require.NoError(t, err)
	require.Equal(t, "translate(-12,-12) scale(1.2,1.2)", norm.Attribute)

	// viewBox corners map onto the canonical frame corners.
	x, y := norm.Matrix.Apply(10, 10)
	require.InDelta(t, 0, x, 1e-9)
	require.InDelta(t, 0, y, 1e-9)

	x, y = norm.Matrix.Apply(30, 30)
	require.InDelta(t, 24, x, 1e-9)
	require.InDelta(t, 24, y, 1e-9)

	x, y = norm.Matrix.Apply(20, 20)
	require.InDelta(t, 12, x, 1e-9)
	require.InDelta(t, 12, y, 1e-9)
}

func TestNewNormalizationNonUniform(t *testing.T) {
	norm, err := NewNormalization(ViewBox{0, 0, 24, 48})
	require.NoError(t, err)
	require.Equal(t, "scale(1,0.5)", norm.Attribute)

	x, y := norm.Matrix.Apply(24, 48)
	require.InDelta(t, 24, x, 1e-9)
	require.InDelta(t, 24, y, 1e-9)
}

func TestNewNormalizationIdentity(t *testing.T) {
	norm, err := NewNormalization(DefaultViewBox)
	require.NoError(t, err)
	require.Equal(t, "", norm.Attribute)
}

func TestNewNormalizationZeroDimension(t *testing.T) {
	_, err := NewNormalization(ViewBox{0, 0, 0, 24})
	require.Error(t, err)

	_, err = NewNormalization(ViewBox{0, 0, 24, 0})
	require.Error(t, err)
}

func TestNormalizeElementDefaultFrame(t *testing.T) {
	el := element("path", "d", "M3 6h18v2H3z")
	require.NoError(t, NormalizeElement(el, DefaultViewBox))

	require.Equal(t, "currentColor", el.Attribute("fill"))
	require.Equal(t, "", el.Attribute("transform"))
}

func TestNormalizeElementScaledFrame(t *testing.T) {
	el := element("path", "d", "M10 10h28v28z")
	require.NoError(t, NormalizeElement(el, ViewBox{0, 0, 48, 48}))

	require.Equal(t, "currentColor", el.Attribute("fill"))
	require.Equal(t, "scale(0.5,0.5)", el.Attribute("transform"))
}

func TestNormalizeElementKeepsExistingTransform(t *testing.T) {
	el := element("path", "d", "M10 10h28v28z", "transform", "rotate(45)")
	require.NoError(t, NormalizeElement(el, ViewBox{0, 0, 48, 48}))

	require.Equal(t, "rotate(45) scale(0.5,0.5)", el.Attribute("transform"))
}

func TestNormalizeElementOverridesFill(t *testing.T) {
	el := element("path", "d", "M10 10h28v28z", "fill", "#009FE3")
	require.NoError(t, NormalizeElement(el, DefaultViewBox))

	require.Equal(t, "currentColor", el.Attribute("fill"))
}

func TestNormalizeElementZeroFrame(t *testing.T) {
	el := element("path", "d", "M10 10h28v28z")
	require.Error(t, NormalizeElement(el, ViewBox{0, 0, 0, 0}))
}
