package export

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	svg "github.com/ajstarks/svgo"

	"LocalPaint/internal/geom"
	"LocalPaint/internal/render"
)

// SVG writes a standalone SVG document.
type SVG struct{}

func (SVG) Export(path string, items []render.Item, w, h int, background string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create svg: %w", err)
	}
	bw := bufio.NewWriter(f)
	WriteSVG(bw, items, w, h, background)
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write svg: %w", err)
	}
	return f.Close()
}

// WriteSVG renders items as SVG markup to out. Write errors surface when
// out is flushed.
func WriteSVG(out io.Writer, items []render.Item, w, h int, background string) {
	canvas := svg.New(out)
	canvas.Start(w, h, fmt.Sprintf(`viewBox="0 0 %d %d"`, w, h))
	if bg, ok := svgColor(background); ok {
		canvas.Rect(0, 0, w, h, "fill:"+bg)
	}
	for _, it := range items {
		svgItem(canvas, it)
	}
	canvas.End()
}

func svgColor(s string) (string, bool) {
	c, ok := render.ParseColor(s)
	if !ok {
		return "none", false
	}
	return render.Hex(c), true
}

func svgCoords(points []geom.Point) (xs, ys []int) {
	xs, ys = make([]int, len(points)), make([]int, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

// svgStyle is the CSS paint of a shape item.
func svgStyle(it render.Item) string {
	fill := "none"
	if it.Kind != render.KindLine {
		fill, _ = svgColor(it.Style.Fill)
	}
	stroke, _ := svgColor(it.Style.Outline)
	style := fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%d;stroke-linecap:round;stroke-linejoin:round",
		fill, stroke, max(it.Style.Width, 1))
	if dash := dashArray(it.Style); len(dash) > 0 {
		style += fmt.Sprintf(";stroke-dasharray:%g,%g", dash[0], dash[1])
	}
	return style
}

func svgItem(canvas *svg.SVG, it render.Item) {
	if it.Kind == render.KindText {
		svgText(canvas, it)
		return
	}
	if len(it.Points) < 2 {
		return
	}
	switch it.Kind {
	case render.KindLine:
		xs, ys := svgCoords(it.Points)
		canvas.Polyline(xs, ys, svgStyle(it))
	case render.KindPolygon:
		xs, ys := svgCoords(it.Points)
		canvas.Polygon(xs, ys, svgStyle(it))
	case render.KindRectangle:
		x0, y0, x1, y1 := box(it)
		canvas.Rect(int(x0), int(y0), int(x1-x0), int(y1-y0), svgStyle(it))
	case render.KindOval:
		x0, y0, x1, y1 := box(it)
		canvas.Ellipse(int(x0+x1)/2, int(y0+y1)/2, int(x1-x0)/2, int(y1-y0)/2, svgStyle(it))
	}
}

func svgText(canvas *svg.SVG, it render.Item) {
	if len(it.Points) == 0 || it.Text.Text == "" {
		return
	}
	at := it.Points[0]
	fill, ok := svgColor(it.Text.Color)
	if !ok {
		fill = "#000000"
	}
	weight, slant := "normal", "normal"
	if it.Text.Bold {
		weight = "bold"
	}
	if it.Text.Italic {
		slant = "italic"
	}
	var family strings.Builder
	xml.EscapeText(&family, []byte(it.Text.Font))
	canvas.Text(at.X, at.Y, it.Text.Text, fmt.Sprintf(
		"dominant-baseline:hanging;font-family:'%s';font-size:%dpx;font-weight:%s;font-style:%s;fill:%s",
		family.String(), max(it.Text.Size, 1), weight, slant, fill))
}
