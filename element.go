package sprite

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// Element is one node of a parsed SVG document. Attributes keep their
// document order so that serializing an unchanged tree is deterministic.
type Element struct {
	Tag      string // local name, namespace prefix stripped
	Attr     []xml.Attr
	Children []*Element
}

// ParseIcon reads a single SVG document and returns its root element
// together with the viewBox declared on it. A missing or malformed
// viewBox falls back to the 0 0 24 24 default.
func ParseIcon(r io.Reader) (*Element, ViewBox, error) {
	decoder := xml.NewDecoder(r)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil, ViewBox{}, errors.New("document contains no root element")
		}
		if err != nil {
			return nil, ViewBox{}, err
		}
		if start, ok := token.(xml.StartElement); ok {
			root, err := decodeElement(decoder, start)
			if err != nil {
				return nil, ViewBox{}, err
			}
			return root, ParseViewBox(root.Attribute("viewBox")), nil
		}
	}
}

func decodeElement(decoder *xml.Decoder, start xml.StartElement) (*Element, error) {
	el := &Element{Tag: start.Name.Local, Attr: start.Attr}

	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			child, err := decodeElement(decoder, tok)
			if err != nil {
				return nil, err
			}
			el.Children = append(el.Children, child)

		case xml.EndElement:
			return el, nil
		}
	}
}

// Attribute returns the value of the named attribute, or "" if absent.
// Namespace prefixes are ignored; lookup is by local name.
func (e *Element) Attribute(name string) string {
	for _, attr := range e.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}

// SetAttribute replaces the named attribute in place, or appends it if
// the element does not carry it yet.
func (e *Element) SetAttribute(name, value string) {
	for i, attr := range e.Attr {
		if attr.Name.Local == name {
			e.Attr[i].Value = value
			return
		}
	}
	e.Attr = append(e.Attr, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

// Markup serializes the element back to SVG markup. Namespace
// declarations are dropped and attribute names are emitted by local
// name, which is all the sprite document needs.
func (e *Element) Markup() string {
	var sb strings.Builder
	e.writeMarkup(&sb)
	return sb.String()
}

func (e *Element) writeMarkup(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(e.Tag)
	for _, attr := range e.Attr {
		if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
			continue
		}
		sb.WriteByte(' ')
		sb.WriteString(attr.Name.Local)
		sb.WriteString(`="`)
		xml.EscapeText(sb, []byte(attr.Value))
		sb.WriteByte('"')
	}
	if len(e.Children) == 0 {
		sb.WriteString("/>")
		return
	}
	sb.WriteByte('>')
	for _, child := range e.Children {
		child.writeMarkup(sb)
	}
	sb.WriteString("</")
	sb.WriteString(e.Tag)
	sb.WriteByte('>')
}
