package render

import (
	"log"
	"math"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// FaceSet renders every requested font family with the Go fonts, picking
// the weight and slant from the text style.
type FaceSet struct {
	once    sync.Once
	sources [4]*text.FontSource
}

var goFonts FaceSet

// GoFonts returns the shared Go font face set.
func GoFonts() *FaceSet { return &goFonts }

func (f *FaceSet) load() {
	f.once.Do(func() {
		for i, data := range [][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF} {
			src, err := text.NewFontSource(data)
			if err != nil {
				log.Printf("[RENDER] Failed to load built-in font %d: %v", i, err)
				continue
			}
			f.sources[i] = src
		}
	})
}

// Face returns the face matching the style, or nil if the fonts could not
// be parsed.
func (f *FaceSet) Face(style TextStyle) text.Face {
	f.load()
	i := 0
	if style.Bold {
		i |= 1
	}
	if style.Italic {
		i |= 2
	}
	src := f.sources[i]
	if src == nil {
		src = f.sources[0]
	}
	if src == nil {
		return nil
	}
	size := style.Size
	if size <= 0 {
		size = 14
	}
	return src.Face(float64(size))
}

// Measure implements Measurer.
func (f *FaceSet) Measure(style TextStyle) (w, h int) {
	face := f.Face(style)
	if face == nil {
		// rough fallback so hit-testing still has a box
		size := max(style.Size, 1)
		return len([]rune(style.Text)) * size * 3 / 5, size * 6 / 5
	}
	fw, fh := text.Measure(style.Text, face)
	return int(math.Ceil(fw)), int(math.Ceil(fh))
}

// FixedMeasurer sizes text as a monospace grid: every rune is Advance
// pixels wide and a line is Height pixels tall. Useful where font metrics
// must be predictable.
type FixedMeasurer struct {
	Advance, Height int
}

// Measure implements Measurer.
func (m FixedMeasurer) Measure(style TextStyle) (w, h int) {
	return len([]rune(style.Text)) * m.Advance, m.Height
}
