package export

import (
	"image/color"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"LocalPaint/internal/render"
)

// PDF writes a single page the size of the canvas, one point per pixel.
type PDF struct{}

func (PDF) Export(path string, items []render.Item, w, h int, background string) error {
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(w), Ht: float64(h)},
	})
	p.SetAutoPageBreak(false, 0)
	p.SetMargins(0, 0, 0)
	p.AddPage()
	tr := p.UnicodeTranslatorFromDescriptor("")

	if bg, ok := render.ParseColor(background); ok {
		p.SetFillColor(rgb(bg))
		p.Rect(0, 0, float64(w), float64(h), "F")
	}
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")

	for _, it := range items {
		if it.Kind == render.KindText {
			pdfText(p, it, tr)
			continue
		}
		pdfShape(p, it)
	}
	return p.OutputFileAndClose(path)
}

func rgb(c color.RGBA) (int, int, int) { return int(c.R), int(c.G), int(c.B) }

func pdfShape(p *gofpdf.Fpdf, it render.Item) {
	if len(it.Points) < 2 {
		return
	}
	style := ""
	if it.Kind != render.KindLine {
		if fill, ok := render.ParseColor(it.Style.Fill); ok {
			p.SetFillColor(rgb(fill))
			style = "F"
		}
	}
	if outline, ok := render.ParseColor(it.Style.Outline); ok {
		width := float64(max(it.Style.Width, 1))
		p.SetDrawColor(rgb(outline))
		p.SetLineWidth(width)
		p.SetDashPattern(dashArray(it.Style), 0)
		style += "D"
	}
	if style == "" {
		return
	}

	switch it.Kind {
	case render.KindLine:
		for i := 1; i < len(it.Points); i++ {
			a, b := it.Points[i-1], it.Points[i]
			p.Line(float64(a.X), float64(a.Y), float64(b.X), float64(b.Y))
		}
	case render.KindRectangle:
		x0, y0, x1, y1 := box(it)
		p.Rect(x0, y0, x1-x0, y1-y0, style)
	case render.KindOval:
		x0, y0, x1, y1 := box(it)
		p.Ellipse((x0+x1)/2, (y0+y1)/2, (x1-x0)/2, (y1-y0)/2, 0, style)
	case render.KindPolygon:
		pts := make([]gofpdf.PointType, len(it.Points))
		for i, pt := range it.Points {
			pts[i] = gofpdf.PointType{X: float64(pt.X), Y: float64(pt.Y)}
		}
		p.Polygon(pts, style)
	}
}

func pdfText(p *gofpdf.Fpdf, it render.Item, tr func(string) string) {
	if len(it.Points) == 0 || it.Text.Text == "" {
		return
	}
	c := render.ColorOr(it.Text.Color, color.RGBA{A: 0xff})
	p.SetTextColor(rgb(c))
	size := float64(max(it.Text.Size, 1))
	p.SetFont(coreFont(it.Text.Font), fontStyle(it.Text), size)
	at := it.Points[0]
	// anchor is the top-left corner, Text wants the baseline
	p.Text(float64(at.X), float64(at.Y)+size*0.8, tr(it.Text.Text))
}

// coreFont maps a family name to one of the PDF base fonts.
func coreFont(family string) string {
	f := strings.ToLower(family)
	switch {
	case strings.Contains(f, "courier"), strings.Contains(f, "mono"):
		return "Courier"
	case strings.Contains(f, "times"), strings.Contains(f, "serif") && !strings.Contains(f, "sans"):
		return "Times"
	}
	return "Helvetica"
}

func fontStyle(t render.TextStyle) string {
	s := ""
	if t.Bold {
		s += "B"
	}
	if t.Italic {
		s += "I"
	}
	return s
}
