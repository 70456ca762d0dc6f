// Package ui is the fyne front end of the drawing surface.
package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/canvas"
	"LocalPaint/internal/fonts"
	"LocalPaint/internal/geom"
	"LocalPaint/internal/render"
)

// Options configures the editor window.
type Options struct {
	Title   string
	SaveDir string
	Fonts   fonts.Provider
	// Footer is shown next to the status, e.g. the mirror address.
	Footer string
}

type paintApp struct {
	win     fyne.Window
	ctrl    *canvas.Controller
	board   *BoardWidget
	status  *widget.Label
	saveDir string
	fonts   fonts.Provider
}

// RunApp opens the editor on ctrl, painting list, and blocks until the
// window closes.
func RunApp(ctrl *canvas.Controller, list *render.DisplayList, opts Options) {
	if opts.Title == "" {
		opts.Title = "LocalPaint"
	}
	if opts.SaveDir == "" {
		opts.SaveDir = "."
	}
	if opts.Fonts == nil {
		opts.Fonts = fonts.Embedded()
	}

	myApp := app.New()
	myWindow := myApp.NewWindow(opts.Title)

	w, h := ctrl.Size()
	a := &paintApp{
		win:     myWindow,
		ctrl:    ctrl,
		board:   NewBoardWidget(ctrl, list, w, h, ctrl.Background()),
		status:  widget.NewLabel("Ready"),
		saveDir: opts.SaveDir,
		fonts:   opts.Fonts,
	}
	a.board.Canvas = myWindow.Canvas()
	a.board.OnMenu = a.menu
	list.OnChange = a.board.Refresh

	prev := ctrl.OnChange
	ctrl.OnChange = func() {
		if prev != nil {
			prev()
		}
		a.updateStatus()
	}

	toolbar := NewToolbar(a)
	footer := container.NewHBox(a.status)
	if opts.Footer != "" {
		footer.Add(widget.NewLabel(opts.Footer))
	}
	content := container.NewBorder(toolbar, footer, nil, nil, container.NewCenter(a.board))

	a.addShortcuts()
	myWindow.SetContent(content)
	myWindow.Resize(fyne.NewSize(float32(w)+40, float32(h)+140))
	myWindow.Canvas().Focus(a.board)
	myWindow.ShowAndRun()
}

func (a *paintApp) updateStatus() {
	undo, redo := a.ctrl.History().Len()
	a.status.SetText(fmt.Sprintf("%d strokes, %d undo, %d redo", len(a.ctrl.Strokes()), undo, redo))
}

func (a *paintApp) setStatus(format string, args ...any) {
	a.status.SetText(fmt.Sprintf(format, args...))
}

func (a *paintApp) addShortcuts() {
	mod := fyne.KeyModifierShortcutDefault
	bind := func(key fyne.KeyName, m fyne.KeyModifier, fn func()) {
		a.win.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: key, Modifier: m}, func(fyne.Shortcut) { fn() })
	}
	bind(fyne.KeyZ, mod, a.undo)
	bind(fyne.KeyY, mod, a.redo)
	bind(fyne.KeyZ, mod|fyne.KeyModifierShift, a.redo)
	bind(fyne.KeyS, mod, a.save)
	bind(fyne.KeyO, mod, a.showLoad)
	bind(fyne.KeyE, mod, a.showExport)
	bind(fyne.KeyC, mod, func() { a.copy(a.board.Last()) })
	bind(fyne.KeyV, mod, func() { a.paste(a.board.Last()) })
	bind(fyne.KeyG, mod, a.group)
	bind(fyne.KeyG, mod|fyne.KeyModifierShift, a.ungroup)
}

// menu is the context menu for a secondary tap at p.
func (a *paintApp) menu(p geom.Point) *fyne.Menu {
	hasSelection := a.ctrl.Selection().Len() > 0
	item := func(label string, enabled bool, fn func()) *fyne.MenuItem {
		it := fyne.NewMenuItem(label, fn)
		it.Disabled = !enabled
		return it
	}
	return fyne.NewMenu("",
		item("Copy", hasSelection, func() { a.copy(p) }),
		item("Paste", a.ctrl.CanPaste(), func() { a.paste(p) }),
		item("Delete", hasSelection, func() { a.ctrl.DeleteSelected() }),
		fyne.NewMenuItemSeparator(),
		item("Move forward", hasSelection, func() { a.ctrl.MoveForward() }),
		item("Move backward", hasSelection, func() { a.ctrl.MoveBackward() }),
		item("Group", a.ctrl.Selection().Len() > 1, a.group),
		item("Ungroup", hasSelection, a.ungroup),
		fyne.NewMenuItemSeparator(),
		item("Text properties...", hasSelection, a.showTextProps),
		item("Shape properties...", hasSelection, a.showShapeProps),
	)
}

func (a *paintApp) undo() {
	if !a.ctrl.Undo() {
		a.setStatus("Nothing to undo")
	}
}

func (a *paintApp) redo() {
	if !a.ctrl.Redo() {
		a.setStatus("Nothing to redo")
	}
}

func (a *paintApp) save() {
	path, err := a.ctrl.Save(a.saveDir)
	if err != nil {
		a.showError(err)
		return
	}
	a.setStatus("Saved %s", path)
}

func (a *paintApp) clear() {
	if a.ctrl.ClearCanvas() {
		log.Printf("[UI] Canvas cleared")
	}
}

func (a *paintApp) copy(at geom.Point) {
	if n := a.ctrl.Copy(at); n > 0 {
		a.setStatus("Copied %d strokes", n)
	}
}

func (a *paintApp) paste(at geom.Point) {
	a.ctrl.Paste(at)
}

func (a *paintApp) group() {
	if !a.ctrl.Group() {
		a.setStatus("Select at least two strokes to group")
	}
}

func (a *paintApp) ungroup() {
	if n := a.ctrl.Ungroup(); n > 0 {
		a.setStatus("Ungrouped %d groups", n)
	}
}
