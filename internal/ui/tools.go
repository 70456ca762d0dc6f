package ui

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/lucasb-eyer/go-colorful"

	"LocalPaint/internal/canvas"
	"LocalPaint/internal/render"
	"LocalPaint/internal/stroke"
)

const noFill = "none"

var (
	lineStyles = []string{string(stroke.LineSolid), string(stroke.LineDashed), string(stroke.LineDots)}
	fontSizes  = []string{"8", "10", "12", "14", "18", "24", "32", "48", "72"}
)

// palette is black, grey, white and six evenly spaced hues.
func palette() []string {
	out := []string{"#000000", "#808080", "#ffffff"}
	for h := 0.0; h < 360; h += 60 {
		out = append(out, colorful.Hsv(h, 1, 1).Hex())
	}
	return out
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    string
	OnTapped func(string)
}

func newColorSwatch(c string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := fynecanvas.NewRectangle(render.ColorOr(s.Color, color.RGBA{}))
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := fynecanvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// NewToolbar builds the action bar and the tool settings row. Every
// control writes straight into the controller's Tools.
func NewToolbar(a *paintApp) fyne.CanvasObject {
	t := a.ctrl.Tools()

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), a.undo),
		widget.NewToolbarAction(theme.ContentRedoIcon(), a.redo),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), a.save),
		widget.NewToolbarAction(theme.FolderOpenIcon(), a.showLoad),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), a.showExport),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), a.clear),
	)

	toolNames := make([]string, len(canvas.AllTools))
	for i, tool := range canvas.AllTools {
		toolNames[i] = string(tool)
	}
	mode := widget.NewSelect(toolNames, func(s string) {
		a.ctrl.SetTool(canvas.Tool(s))
	})
	mode.SetSelected(string(t.Mode))

	// --- Color Palette ---
	current := fynecanvas.NewRectangle(render.ColorOr(t.Color, color.RGBA{}))
	current.SetMinSize(fyne.NewSize(24, 24))
	setColor := func(c string) {
		t.Color = c
		current.FillColor = render.ColorOr(c, color.RGBA{})
		current.Refresh()
	}
	colorBox := container.NewHBox()
	for _, c := range palette() {
		colorBox.Add(newColorSwatch(c, setColor))
	}
	custom := widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), func() {
		picker := dialog.NewColorPicker("Pen colour", "", func(c color.Color) {
			setColor(render.Hex(c))
		}, a.win)
		picker.Advanced = true
		picker.Show()
	})

	fills := append([]string{noFill}, palette()...)
	fill := widget.NewSelect(fills, func(s string) {
		if s == noFill {
			s = ""
		}
		t.Fill = s
	})
	if t.Fill == "" {
		fill.SetSelected(noFill)
	} else {
		fill.SetSelected(t.Fill)
	}

	// --- Stroke Width Slider ---
	width := widget.NewSlider(1, 50)
	width.Step = 1
	width.SetValue(float64(t.Width))
	width.OnChanged = func(v float64) { t.Width = int(v) }
	widthBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), width)

	style := widget.NewSelect(lineStyles, func(s string) {
		if ls, ok := stroke.ParseLineStyle(s); ok {
			t.LineStyle = ls
		}
	})
	style.SetSelected(string(t.LineStyle))

	font := widget.NewSelect(a.fonts.Fonts(), func(s string) { t.Font = s })
	font.SetSelected(t.Font)
	size := widget.NewSelect(fontSizes, func(s string) {
		if n, err := strconv.Atoi(s); err == nil {
			t.FontSize = n
		}
	})
	size.SetSelected(strconv.Itoa(t.FontSize))
	bold := widget.NewCheck("Bold", func(on bool) { t.Bold = on })
	bold.SetChecked(t.Bold)
	italic := widget.NewCheck("Italic", func(on bool) { t.Italic = on })
	italic.SetChecked(t.Italic)

	settings := container.NewHBox(
		widget.NewLabel("Tool:"), mode,
		widget.NewSeparator(),
		widget.NewLabel("Color:"), current, colorBox, custom,
		widget.NewLabel("Fill:"), fill,
		widget.NewSeparator(),
		widget.NewLabel("Size:"), widthBox, style,
		widget.NewSeparator(),
		font, size, bold, italic,
		layout.NewSpacer(),
	)
	return container.NewVBox(actions, settings)
}
