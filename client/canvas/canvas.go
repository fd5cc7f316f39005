// File: /client/canvas/canvas.go

// Package canvas is the freehand annotation surface: a source image painted
// as the base layer, strokes stamped on top in pixel space, and a JPEG
// re-encode when the result is committed.
package canvas

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	_ "image/png"
	"math"
)

// Stroke colors offered by the palette.
var (
	Red    = color.RGBA{R: 0xff, A: 0xff}
	Blue   = color.RGBA{R: 0x00, G: 0x66, B: 0xff, A: 0xff}
	Green  = color.RGBA{R: 0x16, G: 0xa0, B: 0x85, A: 0xff}
	Yellow = color.RGBA{R: 0xf1, G: 0xc4, B: 0x0f, A: 0xff}
	White  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Black  = color.RGBA{A: 0xff}
)

// Palette is the discrete set of selectable stroke colors.
var Palette = []color.RGBA{Red, Blue, Green, Yellow, White, Black}

// jpegQuality matches the original capture pipeline's 0.8 encoder setting.
const jpegQuality = 80

type point struct {
	x, y float64
}

// Engine draws strokes over a base image. Pointer input arrives in display
// coordinates and is remapped to the backing pixel grid, so strokes stay
// accurate however the surface is scaled on screen.
//
// The stroke state machine is idle -> strokeActive -> idle: StrokeStart
// enters, StrokeMove extends while active, StrokeEnd (pointer up or leaving
// the surface) exits.
type Engine struct {
	base  *image.RGBA
	layer *image.RGBA

	dispW, dispH float64

	color     color.RGBA
	lineWidth float64

	drawing bool
	last    point
	strokes int
}

// New builds an engine sized to the source image's native pixel dimensions
// with the image pre-painted as the base layer. Line width and cap style
// are fixed for the session; color defaults to the first palette entry.
func New(src image.Image) *Engine {
	b := src.Bounds()
	base := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(base, base.Bounds(), src, b.Min, draw.Src)

	layer := image.NewRGBA(base.Bounds())
	copy(layer.Pix, base.Pix)

	return &Engine{
		base:      base,
		layer:     layer,
		dispW:     float64(b.Dx()),
		dispH:     float64(b.Dy()),
		color:     Red,
		lineWidth: math.Max(float64(b.Dx())/50, 5),
	}
}

// Decode parses an encoded JPEG or PNG image, for loading stored photos
// into the edit flow.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// Size returns the backing resolution in pixels.
func (e *Engine) Size() (int, int) {
	b := e.layer.Bounds()
	return b.Dx(), b.Dy()
}

// SetDisplaySize records the surface's displayed (CSS) size, the basis for
// pointer remapping. Non-positive sizes are ignored.
func (e *Engine) SetDisplaySize(w, h float64) {
	if w > 0 && h > 0 {
		e.dispW, e.dispH = w, h
	}
}

// SetColor selects the stroke color for subsequent strokes.
func (e *Engine) SetColor(c color.RGBA) {
	e.color = c
}

// Drawing reports whether a stroke is active.
func (e *Engine) Drawing() bool {
	return e.drawing
}

// Strokes returns how many strokes have been drawn since the last reset.
func (e *Engine) Strokes() int {
	return e.strokes
}

// MapToCanvas remaps a pointer position in display space to backing pixel
// space via the ratio of backing resolution to displayed size, clamped to
// the pixel grid.
func (e *Engine) MapToCanvas(x, y float64) (float64, float64) {
	w, h := e.Size()
	px := x * float64(w) / e.dispW
	py := y * float64(h) / e.dispH
	return clamp(px, float64(w-1)), clamp(py, float64(h-1))
}

func clamp(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// StrokeStart begins a stroke at a display-space position.
func (e *Engine) StrokeStart(x, y float64) {
	px, py := e.MapToCanvas(x, y)
	e.drawing = true
	e.last = point{px, py}
	e.strokes++
	e.stamp(px, py)
}

// StrokeMove extends the active stroke; it is a no-op while idle.
func (e *Engine) StrokeMove(x, y float64) {
	if !e.drawing {
		return
	}
	px, py := e.MapToCanvas(x, y)
	e.segment(e.last, point{px, py})
	e.last = point{px, py}
}

// StrokeEnd finishes the active stroke. Pointer-up and leaving the surface
// both land here.
func (e *Engine) StrokeEnd() {
	e.drawing = false
}

// Reset restores the base image, discarding every stroke.
func (e *Engine) Reset() {
	copy(e.layer.Pix, e.base.Pix)
	e.drawing = false
	e.strokes = 0
}

// Image exposes the current canvas pixels.
func (e *Engine) Image() *image.RGBA {
	return e.layer
}

// Encode re-encodes the current canvas as a compressed JPEG. The canvas is
// left untouched, so a failed upload can simply retry.
func (e *Engine) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, e.layer, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// segment stamps round dabs along the line from a to b, giving round caps
// and joins without a vector rasterizer.
func (e *Engine) segment(a, b point) {
	dx, dy := b.x-a.x, b.y-a.y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		e.stamp(b.x, b.y)
		return
	}

	steps := int(dist) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		e.stamp(a.x+dx*t, a.y+dy*t)
	}
}

// stamp fills a disc of the session line width at a pixel-space center.
func (e *Engine) stamp(cx, cy float64) {
	r := e.lineWidth / 2
	b := e.layer.Bounds()

	minX := int(math.Floor(cx - r))
	maxX := int(math.Ceil(cx + r))
	minY := int(math.Floor(cy - r))
	maxY := int(math.Ceil(cy + r))

	for y := minY; y <= maxY; y++ {
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		for x := minX; x <= maxX; x++ {
			if x < b.Min.X || x >= b.Max.X {
				continue
			}
			fx, fy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if fx*fx+fy*fy <= r*r {
				e.layer.SetRGBA(x, y, e.color)
			}
		}
	}
}
