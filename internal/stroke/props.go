package stroke

import "LocalPaint/internal/geom"

// Field selects one mutable property of a stroke.
type Field uint16

const (
	FieldCoordinates Field = 1 << iota
	FieldColor
	FieldWidth
	FieldLineStyle
	FieldFill
	FieldFont
	FieldFontSize
	FieldBold
	FieldItalic
	FieldText

	// FieldShapeStyle is what the shape properties dialog edits.
	FieldShapeStyle = FieldColor | FieldWidth | FieldFill | FieldLineStyle
	// FieldTextStyle is what the text properties dialog edits.
	FieldTextStyle = FieldColor | FieldFont | FieldFontSize | FieldBold | FieldItalic
	// FieldAll selects every property.
	FieldAll = FieldCoordinates | FieldShapeStyle | FieldTextStyle | FieldText
)

const commonFields = FieldCoordinates | FieldColor | FieldWidth | FieldLineStyle

// Props is a snapshot of selected properties of one stroke. Only fields
// named in Mask are meaningful.
type Props struct {
	Mask        Field
	Coordinates []geom.Point
	Color       string
	Width       int
	LineStyle   LineStyle
	Fill        string
	Font        string
	FontSize    int
	Bold        bool
	Italic      bool
	Text        string
}

// Has reports whether f is recorded in the snapshot.
func (p Props) Has(f Field) bool { return p.Mask&f == f }

// Fields lists the properties the variant of s carries.
func Fields(s Stroke) Field {
	switch s.(type) {
	case *Freehand:
		return commonFields
	case *Shape, *Triangle, *Polygon, *UnfinishedPolygon:
		return commonFields | FieldFill
	case *Text:
		return commonFields | FieldFont | FieldFontSize | FieldBold | FieldItalic | FieldText
	}
	return 0
}

// Snapshot records the properties in mask that s has.
func Snapshot(s Stroke, mask Field) Props {
	b := s.base()
	p := Props{Mask: mask & Fields(s)}
	if p.Has(FieldCoordinates) {
		p.Coordinates = geom.Clone(b.coords)
	}
	if p.Has(FieldColor) {
		p.Color = b.color
	}
	if p.Has(FieldWidth) {
		p.Width = b.width
	}
	if p.Has(FieldLineStyle) {
		p.LineStyle = b.lineStyle
	}
	switch v := s.(type) {
	case *Shape:
		p.Fill = v.fill
	case *Triangle:
		p.Fill = v.fill
	case *Polygon:
		p.Fill = v.fill
	case *UnfinishedPolygon:
		p.Fill = v.fill
	case *Text:
		p.Font = v.font.Name
		p.FontSize = v.font.Size
		p.Bold = v.font.Bold
		p.Italic = v.font.Italic
		p.Text = v.text
	case *Freehand:
	}
	return p
}

// Apply writes the recorded properties onto s without repainting. Fields
// the variant lacks are skipped.
func Apply(s Stroke, p Props) {
	b := s.base()
	mask := p.Mask & Fields(s)
	if mask&FieldCoordinates != 0 && len(p.Coordinates) > 0 {
		b.coords = geom.Clone(p.Coordinates)
	}
	if mask&FieldColor != 0 {
		b.color = p.Color
	}
	if mask&FieldWidth != 0 {
		b.width = max(p.Width, 1)
	}
	if mask&FieldLineStyle != 0 && p.LineStyle != "" {
		b.lineStyle = p.LineStyle
	}
	switch v := s.(type) {
	case *Shape:
		if mask&FieldFill != 0 {
			v.fill = p.Fill
		}
	case *Triangle:
		if mask&FieldFill != 0 {
			v.fill = p.Fill
		}
	case *Polygon:
		if mask&FieldFill != 0 {
			v.fill = p.Fill
		}
	case *UnfinishedPolygon:
		if mask&FieldFill != 0 {
			v.fill = p.Fill
		}
	case *Text:
		if mask&FieldFont != 0 {
			v.font.Name = p.Font
		}
		if mask&FieldFontSize != 0 && p.FontSize > 0 {
			v.font.Size = p.FontSize
		}
		if mask&FieldBold != 0 {
			v.font.Bold = p.Bold
		}
		if mask&FieldItalic != 0 {
			v.font.Italic = p.Italic
		}
		if mask&FieldText != 0 {
			v.text = p.Text
		}
	case *Freehand:
	}
}
