package ui

import (
	"image"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/canvas"
	"LocalPaint/internal/geom"
	"LocalPaint/internal/render"
)

// BoardWidget shows a display list and feeds pointer and key events to a
// canvas controller. With a nil controller it is a read-only view.
type BoardWidget struct {
	widget.BaseWidget
	ctrl   *canvas.Controller
	list   *render.DisplayList
	raster *fynecanvas.Raster

	width, height int
	background    string

	pressed bool
	last    geom.Point

	// Canvas is the window canvas hosting the widget, used for focus and
	// pop-up menus.
	Canvas fyne.Canvas
	// OnMenu builds the context menu shown on a secondary tap.
	OnMenu func(at geom.Point) *fyne.Menu
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Focusable = (*BoardWidget)(nil)
var _ fyne.SecondaryTappable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

// NewBoardWidget creates a widget painting list at w×h over background.
func NewBoardWidget(ctrl *canvas.Controller, list *render.DisplayList, w, h int, background string) *BoardWidget {
	b := &BoardWidget{ctrl: ctrl, list: list, width: w, height: h, background: background}
	b.raster = fynecanvas.NewRaster(b.paint)
	b.raster.ScaleMode = fynecanvas.ImageScaleFastest
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) paint(_, _ int) image.Image {
	return render.Rasterize(b.list.Items(), b.width, b.height, b.background)
}

// Last is the most recent pointer position on the canvas.
func (b *BoardWidget) Last() geom.Point { return b.last }

// point maps a widget position to canvas pixels.
func (b *BoardWidget) point(pos fyne.Position) geom.Point {
	size := b.Size()
	x, y := pos.X, pos.Y
	if size.Width > 0 && size.Height > 0 {
		x = x * float32(b.width) / size.Width
		y = y * float32(b.height) / size.Height
	}
	return geom.Pt(int(x), int(y))
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardWidgetRenderer{board: b}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if b.ctrl == nil || e.Button != desktop.MouseButtonPrimary {
		return
	}
	if b.Canvas != nil {
		b.Canvas.Focus(b)
	}
	b.pressed = true
	b.last = b.point(e.Position)
	b.ctrl.PointerDown(b.last)
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if b.ctrl == nil || !b.pressed {
		return
	}
	b.last = b.point(e.Position)
	b.ctrl.Drag(b.last)
}

func (b *BoardWidget) DragEnd() {}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if b.ctrl == nil || !b.pressed || e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.pressed = false
	b.last = b.point(e.Position)
	b.ctrl.Release(b.last)
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}
func (b *BoardWidget) MouseOut() {}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.last = b.point(e.Position)
	if b.ctrl != nil && !b.pressed {
		b.ctrl.Move(b.last)
	}
}

func (b *BoardWidget) TappedSecondary(e *fyne.PointEvent) {
	if b.OnMenu == nil || b.Canvas == nil {
		return
	}
	b.last = b.point(e.Position)
	menu := b.OnMenu(b.last)
	if menu == nil {
		return
	}
	widget.ShowPopUpMenuAtPosition(menu, b.Canvas, e.AbsolutePosition)
}

func (b *BoardWidget) FocusGained() {}
func (b *BoardWidget) FocusLost() {}

func (b *BoardWidget) TypedRune(r rune) {
	if b.ctrl != nil {
		b.ctrl.Key(canvas.RuneKey(r))
	}
}

func (b *BoardWidget) TypedKey(e *fyne.KeyEvent) {
	if b.ctrl == nil {
		return
	}
	if k, ok := keyFor(e.Name); ok {
		b.ctrl.Key(k)
	}
}

// keyFor maps the fyne keys the controller understands.
func keyFor(name fyne.KeyName) (canvas.Key, bool) {
	switch name {
	case fyne.KeyEnter:
		return canvas.NamedKey(canvas.KeyReturn), true
	case fyne.KeyBackspace, fyne.KeyDelete, fyne.KeyLeft, fyne.KeyRight,
		fyne.KeyHome, fyne.KeyEnd, fyne.KeyEscape, fyne.KeyReturn:
		return canvas.NamedKey(canvas.KeyName(name)), true
	}
	return canvas.Key{}, false
}

type boardWidgetRenderer struct {
	board *BoardWidget
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.board.raster}
}

func (r *boardWidgetRenderer) Refresh() {
	r.board.raster.Refresh()
}

func (r *boardWidgetRenderer) Destroy() {}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.board.raster.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(float32(r.board.width), float32(r.board.height))
}
