package export

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"LocalPaint/internal/render"
)

// EPS writes an Encapsulated PostScript file. PostScript has its origin at
// the bottom-left, so every y is flipped against the canvas height.
type EPS struct{}

func (EPS) Export(path string, items []render.Item, w, h int, background string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create eps: %w", err)
	}
	bw := bufio.NewWriter(f)
	WriteEPS(bw, items, w, h, background)
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write eps: %w", err)
	}
	return f.Close()
}

type psWriter struct {
	out io.Writer
	h   int
}

func (p psWriter) printf(format string, args ...any) { fmt.Fprintf(p.out, format, args...) }

func (p psWriter) y(v int) int { return p.h - v }

func (p psWriter) color(c color.RGBA) {
	p.printf("%.3f %.3f %.3f setrgbcolor\n", float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}

// WriteEPS renders items as PostScript to out.
func WriteEPS(out io.Writer, items []render.Item, w, h int, background string) {
	p := psWriter{out: out, h: h}
	p.printf("%%!PS-Adobe-3.0 EPSF-3.0\n")
	p.printf("%%%%BoundingBox: 0 0 %d %d\n", w, h)
	p.printf("%%%%Creator: LocalPaint\n")
	p.printf("%%%%EndComments\n")
	p.printf("1 setlinecap 1 setlinejoin\n")
	if bg, ok := render.ParseColor(background); ok {
		p.color(bg)
		p.printf("0 0 %d %d rectfill\n", w, h)
	}
	for _, it := range items {
		if it.Kind == render.KindText {
			p.text(it)
			continue
		}
		p.shape(it)
	}
	p.printf("showpage\n%%%%EOF\n")
}

func (p psWriter) path(it render.Item) bool {
	if len(it.Points) < 2 {
		return false
	}
	p.printf("newpath\n")
	switch it.Kind {
	case render.KindLine, render.KindPolygon:
		for i, pt := range it.Points {
			op := "lineto"
			if i == 0 {
				op = "moveto"
			}
			p.printf("%d %d %s\n", pt.X, p.y(pt.Y), op)
		}
		if it.Kind == render.KindPolygon {
			p.printf("closepath\n")
		}
	case render.KindRectangle:
		x0, y0, x1, y1 := box(it)
		p.printf("%g %g moveto %g %g lineto %g %g lineto %g %g lineto closepath\n",
			x0, float64(p.h)-y0, x1, float64(p.h)-y0, x1, float64(p.h)-y1, x0, float64(p.h)-y1)
	case render.KindOval:
		x0, y0, x1, y1 := box(it)
		rx, ry := max((x1-x0)/2, 0.5), max((y1-y0)/2, 0.5)
		p.printf("matrix currentmatrix %g %g translate %g %g scale 0 0 1 0 360 arc closepath setmatrix\n",
			(x0+x1)/2, float64(p.h)-(y0+y1)/2, rx, ry)
	default:
		return false
	}
	return true
}

func (p psWriter) shape(it render.Item) {
	if it.Kind != render.KindLine {
		if fill, ok := render.ParseColor(it.Style.Fill); ok && p.path(it) {
			p.color(fill)
			p.printf("fill\n")
		}
	}
	outline, ok := render.ParseColor(it.Style.Outline)
	if !ok || !p.path(it) {
		return
	}
	p.color(outline)
	p.printf("%d setlinewidth\n", max(it.Style.Width, 1))
	if dash := dashArray(it.Style); len(dash) > 0 {
		p.printf("[%g %g] 0 setdash\n", dash[0], dash[1])
	} else {
		p.printf("[] 0 setdash\n")
	}
	p.printf("stroke\n")
}

var psEscaper = strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)

func (p psWriter) text(it render.Item) {
	if len(it.Points) == 0 || it.Text.Text == "" {
		return
	}
	p.color(render.ColorOr(it.Text.Color, color.RGBA{A: 0xff}))
	size := max(it.Text.Size, 1)
	p.printf("/%s findfont %d scalefont setfont\n", psFont(it.Text), size)
	at := it.Points[0]
	p.printf("%d %g moveto (%s) show\n", at.X, float64(p.y(at.Y))-float64(size)*0.8, psEscaper.Replace(it.Text.Text))
}

func psFont(t render.TextStyle) string {
	base := coreFont(t.Font)
	switch base {
	case "Times":
		switch {
		case t.Bold && t.Italic:
			return "Times-BoldItalic"
		case t.Bold:
			return "Times-Bold"
		case t.Italic:
			return "Times-Italic"
		}
		return "Times-Roman"
	}
	switch {
	case t.Bold && t.Italic:
		return base + "-BoldOblique"
	case t.Bold:
		return base + "-Bold"
	case t.Italic:
		return base + "-Oblique"
	}
	return base
}
