package render

import "image/color"

// Surface is the set of drawing primitives a display provides. Coordinates
// are in pixels of the viewport, origin top-left.
type Surface interface {
	Clear(c color.RGBA)
	// AALine draws a 1px anti-aliased line.
	AALine(x0, y0, x1, y1 float64, c color.RGBA)
	// Circle draws a filled circle of radius r.
	Circle(x, y, r float64, c color.RGBA)
	// Line draws a straight line of the given pixel width.
	Line(x0, y0, x1, y1, width float64, c color.RGBA)
}

// Labeler is implemented by surfaces that can draw text into the frame.
type Labeler interface {
	Label(x, y int, s string, c color.RGBA)
}

// Palette holds the colors of one frame.
type Palette struct {
	Background color.RGBA
	Grid       color.RGBA
	Origin     color.RGBA
	Point      color.RGBA
	Caption    color.RGBA
}

var DefaultPalette = Palette{
	Background: color.RGBA{A: 0xff},
	Grid:       color.RGBA{R: 100, G: 100, B: 100, A: 0xff},
	Origin:     color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	Point:      color.RGBA{G: 0xff, A: 0xff},
	Caption:    color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
}
