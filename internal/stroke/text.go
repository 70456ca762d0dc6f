package stroke

import (
	"LocalPaint/internal/fonts"
	"LocalPaint/internal/geom"
	"LocalPaint/internal/render"
)

// Font describes how a text stroke is set.
type Font struct {
	Name   string
	Size   int
	Bold   bool
	Italic bool
}

// Text is a single line of text anchored at its top-left corner.
type Text struct {
	Base
	font Font
	text string
}

var _ Stroke = (*Text)(nil)

// NewText places a text stroke at the given point and paints it.
func NewText(s render.Surface, at geom.Point, style Style, font Font, text string) *Text {
	if font.Name == "" {
		font.Name = fonts.Fallback
	}
	if font.Size <= 0 {
		font.Size = fonts.DefaultSize
	}
	t := &Text{Base: newBase(s, []geom.Point{at}, style), font: font, text: text}
	t.Paint()
	return t
}

func (t *Text) Kind() Kind { return KindText }

// Text returns the current string.
func (t *Text) Text() string { return t.text }

// Font returns the font settings.
func (t *Text) Font() Font { return t.font }

// Anchor is the top-left corner of the text.
func (t *Text) Anchor() geom.Point {
	if len(t.coords) == 0 {
		return geom.Point{}
	}
	return t.coords[0]
}

// Len is the number of runes in the text.
func (t *Text) Len() int { return len([]rune(t.text)) }

func (t *Text) Paint() {
	t.Delete()
	if t.surface == nil || len(t.coords) == 0 {
		return
	}
	t.draw(t.surface.Text(t.coords[0], render.TextStyle{
		Text:   t.text,
		Color:  t.color,
		Font:   t.font.Name,
		Size:   t.font.Size,
		Bold:   t.font.Bold,
		Italic: t.font.Italic,
	}))
}

func (t *Text) Move(dx, dy int) {
	t.translate(dx, dy)
	t.Paint()
}

// Continue moves the anchor to (x, y).
func (t *Text) Continue(x, y int) {
	t.coords = []geom.Point{geom.Pt(x, y)}
	t.Paint()
}

// AddChar inserts ch before the rune at index. An index past the end
// appends.
func (t *Text) AddChar(ch string, index int) {
	runes := []rune(t.text)
	index = min(max(index, 0), len(runes))
	t.text = string(runes[:index]) + ch + string(runes[index:])
	t.Paint()
}

// RemoveChar deletes the rune at index. Out-of-range indexes are ignored.
func (t *Text) RemoveChar(index int) {
	runes := []rune(t.text)
	if index < 0 || index >= len(runes) {
		return
	}
	t.text = string(runes[:index]) + string(runes[index+1:])
	t.Paint()
}

// SetText replaces the string. The caller repaints.
func (t *Text) SetText(s string) { t.text = s }

// SetFont applies font settings, replacing a family the provider does not
// know with the fallback font. The caller repaints.
func (t *Text) SetFont(f Font, p fonts.Provider) {
	f.Name = fonts.Resolve(p, f.Name)
	if f.Size <= 0 {
		f.Size = t.font.Size
	}
	t.font = f
}

func (t *Text) Clone() Stroke {
	return &Text{Base: t.clone(), font: t.font, text: t.text}
}
