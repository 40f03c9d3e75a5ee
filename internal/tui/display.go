package tui

import (
	"image/color"
	"math"
	"strings"

	"slopefield/internal/loop"
)

// Display is a loop.Display that rasterizes onto a braille buffer. Drawing
// coordinates are in the logical viewport (e.g. 1000x1000) and are scaled to
// the dot grid of the current terminal area.
type Display struct {
	logicalW float64
	logicalH float64

	buf   *brailleBuf
	frame string

	closeRequested bool
	closed         bool
}

var _ loop.Display = (*Display)(nil)

func NewDisplay(logicalW, logicalH int) *Display {
	return &Display{
		logicalW: float64(logicalW),
		logicalH: float64(logicalH),
		buf:      newBrailleBuf(0, 0),
	}
}

// SetCells sizes the dot grid to a w x h cell area. It takes effect from the
// next frame.
func (d *Display) SetCells(w, h int) {
	if w == d.buf.w && h == d.buf.h {
		return
	}
	d.buf = newBrailleBuf(w, h)
}

// RequestClose queues a close event for the next Poll.
func (d *Display) RequestClose() { d.closeRequested = true }

// Frame is the last presented frame.
func (d *Display) Frame() string { return d.frame }

func (d *Display) Clear(color.RGBA) { d.buf.clear() }

func (d *Display) AALine(x0, y0, x1, y1 float64, c color.RGBA) {
	d.Line(x0, y0, x1, y1, 1, c)
}

func (d *Display) Line(x0, y0, x1, y1, width float64, c color.RGBA) {
	if !finite(x0, y0, x1, y1) {
		return
	}
	mx0, my0 := d.toMicro(x0, y0)
	mx1, my1 := d.toMicro(x1, y1)
	thick := int(math.Round(width * d.scale()))
	d.buf.drawThickLineMicro(mx0, my0, mx1, my1, max(thick, 1), c)
}

func (d *Display) Circle(x, y, r float64, c color.RGBA) {
	if !finite(x, y, r) {
		return
	}
	mx, my := d.toMicro(x, y)
	d.buf.fillCircleMicro(mx, my, int(r*d.scale()), c)
}

func (d *Display) Poll() []loop.Event {
	if !d.closeRequested {
		return nil
	}
	d.closeRequested = false
	return []loop.Event{{Kind: loop.CloseRequested}}
}

func (d *Display) Present() error {
	d.frame = strings.Join(d.buf.toLines(), "\n")
	return nil
}

func (d *Display) Close() error {
	d.closed = true
	d.buf = newBrailleBuf(0, 0)
	d.frame = ""
	return nil
}

// toMicro maps a logical point to dot coordinates. Points on the far edge
// land on the last dot; points far outside are pulled in to one buffer width
// beyond the edge so Bresenham stays bounded.
func (d *Display) toMicro(x, y float64) (int, int) {
	mw, mh := d.buf.microSize()
	if mw == 0 || mh == 0 {
		return -1, -1
	}
	return toDot(x, d.logicalW, mw), toDot(y, d.logicalH, mh)
}

func toDot(v, logical float64, dots int) int {
	if v == logical {
		return dots - 1
	}
	n := float64(dots)
	f := math.Floor(v / logical * n)
	return int(math.Max(-n, math.Min(2*n, f)))
}

// scale is dots per logical pixel along the denser axis.
func (d *Display) scale() float64 {
	mw, mh := d.buf.microSize()
	return math.Max(float64(mw)/d.logicalW, float64(mh)/d.logicalH)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
