package field

import (
	"fmt"
	"image/color"
	"math"
)

// steepSlope is 1/epsilon of float64. Past it the x extent of a segment is
// below the resolution of the coordinate it offsets.
const steepSlope = 1 << 52

// LatticePoint is one sample of the slope field. It is built once and never
// mutated.
type LatticePoint struct {
	X, Y  float64
	Slope float64

	ScreenX, ScreenY float64

	Color color.RGBA
}

// NewLatticePoint evaluates eq at (x, y) and maps the point through m.
func NewLatticePoint(x, y float64, c color.RGBA, eq Equation, m Mapper) LatticePoint {
	sx, sy := m.ToScreen(x, y)
	return LatticePoint{
		X:       x,
		Y:       y,
		Slope:   eq(x, y),
		ScreenX: sx,
		ScreenY: sy,
		Color:   c,
	}
}

func (p LatticePoint) String() string {
	return fmt.Sprintf("(%g, %g) m=%g", p.X, p.Y, p.Slope)
}

// Segment returns the endpoints, in cartesian units, of the tangent segment of
// length l centred on the point. The x extent is scaled by 1/sqrt(1+m^2) so the
// segment keeps length l whatever the slope.
//
// A slope steep enough that the x extent is below float resolution, or an
// infinite one, gives a vertical segment. ok is false for a NaN slope.
func (p LatticePoint) Segment(l float64) (x0, y0, x1, y1 float64, ok bool) {
	m := p.Slope
	switch {
	case math.IsNaN(m):
		return 0, 0, 0, 0, false
	case math.IsInf(m, 0):
		return p.X, p.Y - l/2, p.X, p.Y + l/2, true
	}
	if math.Abs(m) > steepSlope {
		return p.X, p.Y - l/2, p.X, p.Y + l/2, true
	}
	length := math.Hypot(1, m)
	xOffset := (l / length) / 2
	yOffset := m * xOffset

	return p.X - xOffset, p.Y - yOffset, p.X + xOffset, p.Y + yOffset, true
}

// ScreenSegment is Segment mapped into pixel space.
func (p LatticePoint) ScreenSegment(l float64, mp Mapper) (x0, y0, x1, y1 float64, ok bool) {
	cx0, cy0, cx1, cy1, ok := p.Segment(l)
	if !ok {
		return 0, 0, 0, 0, false
	}
	x0, y0 = mp.ToScreen(cx0, cy0)
	x1, y1 = mp.ToScreen(cx1, cy1)
	return x0, y0, x1, y1, true
}
