// Package mapview draws section markers and product highlights on top of a
// store map image. Every function returns a new image and leaves its input
// untouched.
package mapview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fekuna/omnipos-storefinder-service/internal/model"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	markerRadius    = 15
	highlightRadius = 30
	outlineWidth    = 3
	highlightAlpha  = 128

	markerTextSize    = 30
	highlightTextSize = 40
	listTextSize      = 30

	maxLabelLen  = 25
	truncatedLen = 22
)

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	black = color.RGBA{A: 0xff}

	// Palette cycled through when several sections are highlighted at once.
	Palette = []color.RGBA{
		{G: 0xff, A: 0xff},          // green
		{B: 0xff, A: 0xff},          // blue
		{R: 0xff, G: 0xff, A: 0xff}, // yellow
		{R: 0xff, B: 0xff, A: 0xff}, // magenta
		{G: 0xff, B: 0xff, A: 0xff}, // cyan
	}
)

var regular *truetype.Font

func init() {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
	regular = f
}

func face(size float64) font.Face {
	return truetype.NewFace(regular, &truetype.Options{Size: size})
}

// Annotation pairs a section with the products to list next to it.
type Annotation struct {
	Section  model.Section   `json:"section"`
	Products []model.Product `json:"products"`
}

// MarkSection draws the operator marker for one section: a small red dot with
// the section name beside it.
func MarkSection(base image.Image, s model.Section) image.Image {
	return MarkSections(base, []model.Section{s})
}

func MarkSections(base image.Image, sections []model.Section) image.Image {
	dc := gg.NewContextForImage(base)
	dc.SetFontFace(face(markerTextSize))

	for _, s := range sections {
		dc.SetColor(red)
		dc.DrawCircle(s.X, s.Y, markerRadius)
		dc.Fill()
		outline(dc, s, markerRadius)

		dc.SetColor(black)
		dc.DrawString(s.Name, s.X+20, s.Y)
	}
	return dc.Image()
}

// HighlightProduct circles the section holding p and labels it
// "<section> - <product>".
func HighlightProduct(base image.Image, s model.Section, p model.Product) image.Image {
	dc := gg.NewContextForImage(base)

	highlight(dc, s, Palette[0])

	dc.SetFontFace(face(highlightTextSize))
	dc.SetColor(black)
	dc.DrawString(s.Name+" - "+p.Name, s.X+40, s.Y)

	return dc.Image()
}

// HighlightSections circles every annotated section, each in the next palette
// colour, and lists its products beside it.
func HighlightSections(base image.Image, annotations []Annotation) image.Image {
	dc := gg.NewContextForImage(base)
	dc.SetFontFace(face(listTextSize))

	for i, a := range annotations {
		highlight(dc, a.Section, Palette[i%len(Palette)])

		dc.SetColor(black)
		dc.DrawString(SectionLabel(a), a.Section.X+40, a.Section.Y)
	}
	return dc.Image()
}

// SectionLabel renders "<section>: p1, p2" and shortens it to 22 characters
// plus "..." once it is longer than 25.
func SectionLabel(a Annotation) string {
	names := make([]string, 0, len(a.Products))
	for _, p := range a.Products {
		names = append(names, p.Name)
	}

	label := a.Section.Name + ": " + strings.Join(names, ", ")
	if utf8.RuneCountInString(label) > maxLabelLen {
		label = string([]rune(label)[:truncatedLen]) + "..."
	}
	return label
}

func highlight(dc *gg.Context, s model.Section, c color.RGBA) {
	c.A = highlightAlpha
	dc.SetColor(premultiply(c))
	dc.DrawCircle(s.X, s.Y, highlightRadius)
	dc.Fill()
	outline(dc, s, highlightRadius)
}

func outline(dc *gg.Context, s model.Section, radius float64) {
	dc.SetColor(black)
	dc.SetLineWidth(outlineWidth)
	dc.DrawCircle(s.X, s.Y, radius)
	dc.Stroke()
}

// color.RGBA is alpha-premultiplied; palette entries are stored straight.
func premultiply(c color.RGBA) color.RGBA {
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 0xff),
		G: uint8(uint32(c.G) * a / 0xff),
		B: uint8(uint32(c.B) * a / 0xff),
		A: c.A,
	}
}

// EncodePNG writes img to w in PNG format.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
