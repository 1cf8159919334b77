package sprite

// inheritedFill makes a shape take the foreground color of whatever
// references the sprite symbol.
const inheritedFill = "currentColor"

// NormalizeElement rewrites a retained element so it renders correctly
// inside the canonical 24x24 frame. An icon already authored against
// the default frame only gets the inherited fill; anything else also
// gets the normalization transform, appended after any transform the
// element already carried.
func NormalizeElement(el *Element, vb ViewBox) error {
	if vb.IsDefault() {
		el.SetAttribute("fill", inheritedFill)
		return nil
	}

	norm, err := NewNormalization(vb)
	if err != nil {
		return err
	}

	if norm.Attribute != "" {
		if existing := el.Attribute("transform"); existing != "" {
			el.SetAttribute("transform", existing+" "+norm.Attribute)
		} else {
			el.SetAttribute("transform", norm.Attribute)
		}
	}

	el.SetAttribute("fill", inheritedFill)
	return nil
}
