package render

import (
	"slices"

	"LocalPaint/internal/geom"
)

// Item is one primitive held by a DisplayList.
type Item struct {
	ID     ItemID
	Kind   ItemKind
	Points []geom.Point
	Style  Style
	Text   TextStyle
}

// Measurer reports the pixel size of a text primitive.
type Measurer interface {
	Measure(style TextStyle) (w, h int)
}

// DisplayList is an in-memory Surface: an ordered stack of items, bottom
// first. It is not safe for concurrent use.
type DisplayList struct {
	items    []Item
	nextID   ItemID
	measurer Measurer

	// OnChange, when set, is called after every mutation.
	OnChange func()
}

var _ Surface = (*DisplayList)(nil)

// NewDisplayList creates an empty list. A nil measurer uses the Go fonts.
func NewDisplayList(m Measurer) *DisplayList {
	if m == nil {
		m = GoFonts()
	}
	return &DisplayList{measurer: m, nextID: 1}
}

func (d *DisplayList) changed() {
	if d.OnChange != nil {
		d.OnChange()
	}
}

func (d *DisplayList) add(it Item) ItemID {
	it.ID = d.nextID
	d.nextID++
	d.items = append(d.items, it)
	d.changed()
	return it.ID
}

func (d *DisplayList) Line(points []geom.Point, style Style) ItemID {
	return d.add(Item{Kind: KindLine, Points: geom.Clone(points), Style: style})
}

func (d *DisplayList) Rectangle(a, b geom.Point, style Style) ItemID {
	return d.add(Item{Kind: KindRectangle, Points: []geom.Point{a, b}, Style: style})
}

func (d *DisplayList) Oval(a, b geom.Point, style Style) ItemID {
	return d.add(Item{Kind: KindOval, Points: []geom.Point{a, b}, Style: style})
}

func (d *DisplayList) Polygon(points []geom.Point, style Style) ItemID {
	return d.add(Item{Kind: KindPolygon, Points: geom.Clone(points), Style: style})
}

func (d *DisplayList) Text(at geom.Point, style TextStyle) ItemID {
	return d.add(Item{Kind: KindText, Points: []geom.Point{at}, Text: style})
}

func (d *DisplayList) index(id ItemID) int {
	return slices.IndexFunc(d.items, func(it Item) bool { return it.ID == id })
}

func (d *DisplayList) Delete(ids ...ItemID) {
	if len(ids) == 0 {
		return
	}
	n := len(d.items)
	d.items = slices.DeleteFunc(d.items, func(it Item) bool {
		return slices.Contains(ids, it.ID)
	})
	if len(d.items) != n {
		d.changed()
	}
}

func (d *DisplayList) Raise(ids ...ItemID) {
	moved := false
	for _, id := range ids {
		i := d.index(id)
		if i < 0 {
			continue
		}
		it := d.items[i]
		d.items = append(d.items[:i], d.items[i+1:]...)
		d.items = append(d.items, it)
		moved = true
	}
	if moved {
		d.changed()
	}
}

func (d *DisplayList) BBox(ids ...ItemID) (geom.Rect, bool) {
	var (
		out   geom.Rect
		found bool
	)
	for _, id := range ids {
		i := d.index(id)
		if i < 0 {
			continue
		}
		r, ok := d.extent(d.items[i])
		if !ok {
			continue
		}
		if !found {
			out, found = r, true
			continue
		}
		out = out.Union(r)
	}
	return out, found
}

func (d *DisplayList) extent(it Item) (geom.Rect, bool) {
	if it.Kind == KindText {
		if len(it.Points) == 0 {
			return geom.Rect{}, false
		}
		w, h := d.measurer.Measure(it.Text)
		at := it.Points[0]
		return geom.Rect{MinX: at.X, MinY: at.Y, MaxX: at.X + w, MaxY: at.Y + h}, true
	}
	r, ok := geom.Bounds(it.Points)
	if !ok {
		return r, false
	}
	// outlines spill half their width past the geometry
	return r.Inset((it.Style.Width + 1) / 2), true
}

func (d *DisplayList) Clear() {
	if len(d.items) == 0 {
		return
	}
	d.items = nil
	d.changed()
}

// Items returns a copy of the stack, bottom first.
func (d *DisplayList) Items() []Item {
	out := make([]Item, len(d.items))
	for i, it := range d.items {
		it.Points = geom.Clone(it.Points)
		out[i] = it
	}
	return out
}

// Item returns the item with the given id.
func (d *DisplayList) Item(id ItemID) (Item, bool) {
	i := d.index(id)
	if i < 0 {
		return Item{}, false
	}
	return d.items[i], true
}

// Len is the number of items on the list.
func (d *DisplayList) Len() int { return len(d.items) }

// Measurer returns the text measurer in use.
func (d *DisplayList) Measurer() Measurer { return d.measurer }
