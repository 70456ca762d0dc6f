package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// Rasterize paints items bottom-first onto a w x h image filled with
// background.
func Rasterize(items []Item, w, h int, background string) image.Image {
	dc := paint(items, w, h, background)
	defer dc.Close()
	return dc.Image()
}

// SavePNG rasterizes items and writes them to path as a PNG file.
func SavePNG(path string, items []Item, w, h int, background string) error {
	dc := paint(items, w, h, background)
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}

func paint(items []Item, w, h int, background string) *gg.Context {
	dc := gg.NewContext(max(w, 1), max(h, 1))
	dc.ClearWithColor(gg.FromColor(ColorOr(background, color.RGBA{A: 0xff})))
	dc.SetLineCap(gg.LineCapRound)
	for _, it := range items {
		paintItem(dc, it)
	}
	return dc
}

func setDash(dc *gg.Context, style Style) {
	width := float64(max(style.Width, 1))
	switch style.Dash {
	case DashDashed:
		dc.SetDash(4*width, 2*width)
	case DashDots:
		dc.SetDash(width, 2*width)
	default:
		dc.SetDash()
	}
}

func tracePath(dc *gg.Context, it Item, closed bool) {
	for i, p := range it.Points {
		if i == 0 {
			dc.MoveTo(float64(p.X), float64(p.Y))
			continue
		}
		dc.LineTo(float64(p.X), float64(p.Y))
	}
	if closed {
		dc.ClosePath()
	}
}

func traceShape(dc *gg.Context, it Item) bool {
	switch it.Kind {
	case KindLine:
		if len(it.Points) < 2 {
			return false
		}
		tracePath(dc, it, false)
	case KindPolygon:
		if len(it.Points) < 2 {
			return false
		}
		tracePath(dc, it, true)
	case KindRectangle, KindOval:
		if len(it.Points) < 2 {
			return false
		}
		a, b := it.Points[0], it.Points[1]
		x0, y0 := float64(min(a.X, b.X)), float64(min(a.Y, b.Y))
		x1, y1 := float64(max(a.X, b.X)), float64(max(a.Y, b.Y))
		if it.Kind == KindRectangle {
			dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
		} else {
			dc.DrawEllipse((x0+x1)/2, (y0+y1)/2, (x1-x0)/2, (y1-y0)/2)
		}
	default:
		return false
	}
	return true
}

func paintItem(dc *gg.Context, it Item) {
	if it.Kind == KindText {
		paintText(dc, it)
		return
	}
	if it.Kind != KindLine {
		if fill, ok := ParseColor(it.Style.Fill); ok && traceShape(dc, it) {
			dc.SetColor(fill)
			_ = dc.Fill()
		}
	}
	outline, ok := ParseColor(it.Style.Outline)
	if !ok || !traceShape(dc, it) {
		return
	}
	dc.SetColor(outline)
	dc.SetLineWidth(float64(max(it.Style.Width, 1)))
	setDash(dc, it.Style)
	_ = dc.Stroke()
}

func paintText(dc *gg.Context, it Item) {
	if len(it.Points) == 0 || it.Text.Text == "" {
		return
	}
	face := GoFonts().Face(it.Text)
	if face == nil {
		return
	}
	dc.SetFont(face)
	dc.SetColor(ColorOr(it.Text.Color, color.RGBA{A: 0xff}))
	at := it.Points[0]
	dc.DrawString(it.Text.Text, float64(at.X), float64(at.Y)+face.Metrics().Ascent)
}
