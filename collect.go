package sprite

// drawableTags are the shape elements a sprite symbol can contain.
var drawableTags = map[string]struct{}{
	"path":     {},
	"rect":     {},
	"circle":   {},
	"ellipse":  {},
	"line":     {},
	"polyline": {},
	"polygon":  {},
}

// CollectIconElements walks the icon's element tree in document order
// and returns the drawable elements that survive background filtering,
// normalized into the canonical frame. Containers are never emitted
// themselves but are always recursed into.
func CollectIconElements(root *Element, vb ViewBox) ([]*Element, error) {
	var collected []*Element

	var walk func(el *Element) error
	walk = func(el *Element) error {
		for _, child := range el.Children {
			if _, drawable := drawableTags[child.Tag]; !drawable {
				if err := walk(child); err != nil {
					return err
				}
				continue
			}

			background, err := IsBackground(child, vb)
			if err != nil {
				return err
			}
			if background {
				continue
			}
			if err := NormalizeElement(child, vb); err != nil {
				return err
			}
			collected = append(collected, child)
		}
		return nil
	}

	if err := walk(root); err != nil {
		return nil, err
	}
	return collected, nil
}
