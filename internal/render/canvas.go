package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Canvas is a software Surface backed by a gg context. Lines and circles are
// anti-aliased by gg's analytic coverage rasterizer.
type Canvas struct {
	dc   *gg.Context
	font tinyfont.Fonter
	err  error
}

// NewCanvas returns a width x height canvas with the caption font loaded.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		dc:   gg.NewContext(width, height),
		font: &proggy.TinySZ8pt7b,
	}
}

func (c *Canvas) Size() (int, int) { return c.dc.Width(), c.dc.Height() }

func (c *Canvas) Clear(col color.RGBA) {
	c.dc.ClearWithColor(gg.FromColor(col))
}

func (c *Canvas) AALine(x0, y0, x1, y1 float64, col color.RGBA) {
	c.Line(x0, y0, x1, y1, 1, col)
}

func (c *Canvas) Line(x0, y0, x1, y1, width float64, col color.RGBA) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x0, y0, x1, y1)
	c.keep(c.dc.Stroke())
}

func (c *Canvas) Circle(x, y, r float64, col color.RGBA) {
	c.dc.SetColor(col)
	c.dc.DrawCircle(x, y, r)
	c.keep(c.dc.Fill())
}

// Label writes s with its baseline at (x, y).
func (c *Canvas) Label(x, y int, s string, col color.RGBA) {
	tinyfont.WriteLine(displayer{c.dc}, c.font, int16(x), int16(y), s, col)
}

// Pixels is the live RGBA buffer, row-major, 4 bytes per pixel.
func (c *Canvas) Pixels() []byte { return c.dc.ResizeTarget().Data() }

// Image returns a copy of the current frame.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// Err returns and clears the first rasterizer error since the last call.
func (c *Canvas) Err() error {
	err := c.err
	c.err = nil
	return err
}

func (c *Canvas) Close() error { return c.dc.Close() }

func (c *Canvas) keep(err error) {
	if err == nil {
		return
	}
	if c.err == nil {
		c.err = err
	}
	logger().Debug("rasterize", "err", err)
}

var _ drivers.Displayer = displayer{}

// displayer lets tinyfont draw on the gg pixmap.
type displayer struct {
	dc *gg.Context
}

func (d displayer) Size() (x, y int16) {
	return int16(d.dc.Width()), int16(d.dc.Height())
}

func (d displayer) SetPixel(x, y int16, c color.RGBA) {
	d.dc.SetPixel(int(x), int(y), gg.FromColor(c))
}

func (d displayer) Display() error { return nil }
