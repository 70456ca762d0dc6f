package ui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/canvas"
	"LocalPaint/internal/export"
	"LocalPaint/internal/stroke"
)

func (a *paintApp) showError(err error) {
	fyne.LogError("LocalPaint", err)
	dialog.ShowError(err, a.win)
}

func (a *paintApp) showLoad() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			a.showError(err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		if err := a.ctrl.Load(path); err != nil {
			a.showError(err)
			return
		}
		a.setStatus("Loaded %s", path)
	}, a.win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	if abs, err := filepath.Abs(a.saveDir); err == nil {
		if dir, err := storage.ListerForURI(storage.NewFileURI(abs)); err == nil {
			d.SetLocation(dir)
		}
	}
	d.Show()
}

func (a *paintApp) showExport() {
	formats := a.ctrl.Formats()
	if len(formats) == 0 {
		a.showError(errors.New("no export formats available"))
		return
	}
	format := widget.NewSelect(formats, nil)
	format.SetSelected(formats[0])
	items := []*widget.FormItem{widget.NewFormItem("Format", format)}
	dialog.ShowForm("Export", "Export", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		f := format.Selected
		path, err := export.NextFreeName(a.saveDir, "image", "."+f)
		if err != nil {
			a.showError(err)
			return
		}
		if err := a.ctrl.Export(f, path); err != nil {
			a.showError(err)
			return
		}
		a.setStatus("Exported %s", path)
	}, a.win)
}

func intValidator(least int) fyne.StringValidator {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%q is not a number", s)
		}
		if n < least {
			return fmt.Errorf("must be at least %d", least)
		}
		return nil
	}
}

func (a *paintApp) firstSelected(text bool) stroke.Stroke {
	for _, s := range a.ctrl.Selection().Selected() {
		if stroke.IsText(s) == text {
			return s
		}
	}
	return nil
}

func (a *paintApp) showTextProps() {
	s := a.firstSelected(true)
	if s == nil {
		a.setStatus("No text selected")
		return
	}
	t := s.(*stroke.Text)
	f := t.Font()

	color := widget.NewEntry()
	color.SetText(t.Color())
	font := widget.NewSelect(a.fonts.Fonts(), nil)
	font.SetSelected(f.Name)
	size := widget.NewEntry()
	size.SetText(strconv.Itoa(f.Size))
	size.Validator = intValidator(1)
	bold := widget.NewCheck("", nil)
	bold.SetChecked(f.Bold)
	italic := widget.NewCheck("", nil)
	italic.SetChecked(f.Italic)

	items := []*widget.FormItem{
		widget.NewFormItem("Color", color),
		widget.NewFormItem("Font", font),
		widget.NewFormItem("Size", size),
		widget.NewFormItem("Bold", bold),
		widget.NewFormItem("Italic", italic),
	}
	dialog.ShowForm("Text properties", "Apply", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		n, _ := strconv.Atoi(size.Text)
		a.ctrl.SetTextProperties(canvas.TextProps{
			Color:  color.Text,
			Font:   font.Selected,
			Size:   n,
			Bold:   bold.Checked,
			Italic: italic.Checked,
		})
	}, a.win)
}

func (a *paintApp) showShapeProps() {
	s := a.firstSelected(false)
	if s == nil {
		a.setStatus("No shape selected")
		return
	}

	color := widget.NewEntry()
	color.SetText(s.Color())
	fill, seed := fillEntry(a.ctrl.Selection().Selected())
	width := widget.NewEntry()
	width.SetText(strconv.Itoa(s.Width()))
	width.Validator = intValidator(1)
	style := widget.NewSelect(lineStyles, nil)
	style.SetSelected(string(s.LineStyle()))

	items := []*widget.FormItem{
		widget.NewFormItem("Color", color),
		widget.NewFormItem("Fill", fill),
		widget.NewFormItem("Width", width),
		widget.NewFormItem("Line style", style),
	}
	dialog.ShowForm("Shape properties", "Apply", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		n, _ := strconv.Atoi(width.Text)
		ls, _ := stroke.ParseLineStyle(style.Selected)
		f, keep := fillEdit(fill, seed)
		a.ctrl.SetShapeProperties(canvas.ShapeProps{
			Color:     color.Text,
			Fill:      f,
			Width:     n,
			LineStyle: ls,
			KeepFill:  keep,
		})
	}, a.win)
}

// fillEntry is the fill field seeded from the first selected stroke that
// has a fill. It is disabled when none has one.
func fillEntry(selected []stroke.Stroke) (*widget.Entry, string) {
	entry := widget.NewEntry()
	for _, s := range selected {
		if f, ok := stroke.Fill(s); ok {
			entry.SetText(f)
			return entry, f
		}
	}
	entry.Disable()
	return entry, ""
}

// fillEdit returns the fill to apply. keep is true when the field was
// disabled or left at its seed.
func fillEdit(entry *widget.Entry, seed string) (fill string, keep bool) {
	if entry.Disabled() || entry.Text == seed {
		return "", true
	}
	return entry.Text, false
}
