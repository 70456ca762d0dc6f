// Package codec converts strokes to and from the JSON document format used
// for saved canvases.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"LocalPaint/internal/geom"
	"LocalPaint/internal/render"
	"LocalPaint/internal/stroke"
)

var (
	// ErrUnknownType is returned for a record whose type or shape tag is not
	// a known stroke variant.
	ErrUnknownType = errors.New("unknown stroke type")
	// ErrMalformed is returned for input that is not a valid document.
	ErrMalformed = errors.New("malformed document")
)

// Record is one stroke as stored in a document. Fields a variant does not
// carry are written as their zero value.
type Record struct {
	Type        string  `json:"type"`
	Coordinates [][]int `json:"coordinates"`
	LineStyle   string  `json:"lineStyle"`
	Color       string  `json:"color"`
	Fill        string  `json:"fill"`
	Width       int     `json:"width"`
	Font        string  `json:"font"`
	FontSize    int     `json:"fontSize"`
	Bold        bool    `json:"bold"`
	Italic      bool    `json:"italic"`
	Shape       string  `json:"shape"`
	Text        string  `json:"text"`
}

// UnmarshalJSON also accepts the snake_case keys of older documents, where
// non-text strokes carry an empty string as font size.
func (r *Record) UnmarshalJSON(data []byte) error {
	type plain Record
	var wire struct {
		plain
		FontSize       json.RawMessage `json:"fontSize"`
		LegacyStyle    string          `json:"line_style"`
		LegacyFontSize json.RawMessage `json:"font_size"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*r = Record(wire.plain)
	if r.LineStyle == "" {
		r.LineStyle = wire.LegacyStyle
	}
	size := wire.FontSize
	if len(size) == 0 {
		size = wire.LegacyFontSize
	}
	n, err := looseInt(size)
	if err != nil {
		return fmt.Errorf("font size: %w", err)
	}
	r.FontSize = n
	return nil
}

func looseInt(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" || string(raw) == `""` {
		return 0, nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}

// FromStroke builds the record for s.
func FromStroke(s stroke.Stroke) (Record, error) {
	r := Record{
		Type:      string(s.Kind()),
		LineStyle: string(s.LineStyle()),
		Color:     s.Color(),
		Width:     s.Width(),
	}
	for _, p := range s.Points() {
		r.Coordinates = append(r.Coordinates, []int{p.X, p.Y})
	}
	switch v := s.(type) {
	case *stroke.Freehand:
	case *stroke.Shape:
		r.Fill = v.Fill()
		r.Shape = string(v.Shape())
	case *stroke.Triangle:
		r.Fill = v.Fill()
		r.Shape = string(stroke.ShapeTriangle)
	case *stroke.Polygon:
		r.Fill = v.Fill()
	case *stroke.Text:
		f := v.Font()
		r.Font, r.FontSize, r.Bold, r.Italic = f.Name, f.Size, f.Bold, f.Italic
		r.Text = v.Text()
	default:
		return Record{}, fmt.Errorf("%w: %s", ErrUnknownType, s.Kind())
	}
	return r, nil
}

// Encode writes strokes as an indented JSON array, in order.
func Encode(strokes []stroke.Stroke) ([]byte, error) {
	records := make([]Record, 0, len(strokes))
	for _, s := range strokes {
		r, err := FromStroke(s)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return json.MarshalIndent(records, "", "    ")
}

// Decode parses a document into strokes bound to surface but not painted.
// Any bad record fails the whole document.
func Decode(data []byte, surface render.Surface) ([]stroke.Stroke, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	out := make([]stroke.Stroke, 0, len(records))
	for i, r := range records {
		s, err := r.Stroke()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		s.Attach(surface)
		out = append(out, s)
	}
	return out, nil
}

func minPoints(kind stroke.Kind) int {
	switch kind {
	case stroke.KindShape, stroke.KindTriangle:
		return 2
	case stroke.KindPolygon:
		return stroke.MinPolygonPoints
	}
	return 1
}

// Stroke builds a detached, unpainted stroke from the record.
func (r Record) Stroke() (stroke.Stroke, error) {
	kind := stroke.Kind(r.Type)
	if len(r.Coordinates) < minPoints(kind) {
		return nil, fmt.Errorf("%w: %s needs %d points, got %d", ErrMalformed, r.Type, minPoints(kind), len(r.Coordinates))
	}
	if r.Width < 1 {
		return nil, fmt.Errorf("%w: width %d", ErrMalformed, r.Width)
	}
	ls, ok := stroke.ParseLineStyle(r.LineStyle)
	if !ok {
		return nil, fmt.Errorf("%w: line style %q", ErrMalformed, r.LineStyle)
	}
	points := make([]geom.Point, len(r.Coordinates))
	for i, c := range r.Coordinates {
		if len(c) != 2 {
			return nil, fmt.Errorf("%w: coordinate %d has %d values", ErrMalformed, i, len(c))
		}
		points[i] = geom.Pt(c[0], c[1])
	}
	style := stroke.Style{Color: r.Color, Fill: r.Fill, Width: r.Width, LineStyle: ls}

	switch kind {
	case stroke.KindFreehand:
		s := stroke.NewFreehand(nil, points[0], style)
		s.SetPoints(points)
		return s, nil
	case stroke.KindShape:
		shape := stroke.ShapeKind(r.Shape)
		if shape != stroke.ShapeRect && shape != stroke.ShapeOval {
			return nil, fmt.Errorf("%w: shape %q", ErrUnknownType, r.Shape)
		}
		s := stroke.NewShape(nil, points[0], style, shape)
		s.SetPoints(points)
		return s, nil
	case stroke.KindTriangle:
		s := stroke.NewTriangle(nil, points[0], style)
		s.SetPoints(points)
		return s, nil
	case stroke.KindPolygon:
		return stroke.NewPolygon(nil, points, style), nil
	case stroke.KindText:
		font := stroke.Font{Name: r.Font, Size: r.FontSize, Bold: r.Bold, Italic: r.Italic}
		return stroke.NewText(nil, points[0], style, font, r.Text), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, r.Type)
}

// FileName is the name a document saved at t gets.
func FileName(t time.Time) string {
	return "canvas-data-" + t.Format("020106-150405") + ".json"
}

// SaveFile writes strokes to a new document in dir and returns its path.
func SaveFile(dir string, strokes []stroke.Stroke, now time.Time) (string, error) {
	data, err := Encode(strokes)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	path := filepath.Join(dir, FileName(now))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}
	log.Printf("[CODEC] Saved %d strokes to %s", len(strokes), path)
	return path, nil
}

// LoadFile reads and decodes the document at path.
func LoadFile(path string, surface render.Surface) ([]stroke.Stroke, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	strokes, err := Decode(data, surface)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	log.Printf("[CODEC] Loaded %d strokes from %s", len(strokes), path)
	return strokes, nil
}
