package render

import "LocalPaint/internal/geom"

// ItemID identifies one primitive drawn on a Surface.
type ItemID int

// ItemKind is the primitive type of an Item.
type ItemKind int

const (
	KindLine ItemKind = iota
	KindRectangle
	KindOval
	KindPolygon
	KindText
)

// Dash is the outline pattern of a primitive.
type Dash string

const (
	DashSolid  Dash = "SOLID"
	DashDashed Dash = "DASHED"
	DashDots   Dash = "DOTS"
)

// Style describes how a geometric primitive is painted. Empty colour
// strings mean "none".
type Style struct {
	Outline string
	Fill    string
	Width   int
	Dash    Dash
}

// TextStyle describes a text primitive.
type TextStyle struct {
	Text   string
	Color  string
	Font   string
	Size   int
	Bold   bool
	Italic bool
}

// Surface is an immediate-mode drawing target. Every call creates a new
// item stacked above all existing items.
type Surface interface {
	Line(points []geom.Point, style Style) ItemID
	Rectangle(a, b geom.Point, style Style) ItemID
	Oval(a, b geom.Point, style Style) ItemID
	Polygon(points []geom.Point, style Style) ItemID
	Text(at geom.Point, style TextStyle) ItemID

	// Delete removes items. Unknown ids are ignored.
	Delete(ids ...ItemID)
	// Raise moves items to the top of the stack, in argument order.
	Raise(ids ...ItemID)
	// BBox returns the union of the items' painted extents.
	BBox(ids ...ItemID) (geom.Rect, bool)
	// Clear removes every item.
	Clear()
}
