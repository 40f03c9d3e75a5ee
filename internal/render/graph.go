package render

import (
	"slopefield/internal/field"
)

const (
	originArm   = 6
	originWidth = 3
	dotRadius   = 1
	gridWidth   = 1

	labelX = 8
	labelY = 16
)

// GraphRenderer draws one frame of the slope field: background grid, origin
// marker, then every lattice point with its slope segment.
type GraphRenderer struct {
	cfg     field.ViewportConfig
	mapper  field.Mapper
	palette Palette
	label   string
}

func NewGraphRenderer(cfg field.ViewportConfig, p Palette, label string) *GraphRenderer {
	return &GraphRenderer{
		cfg:     cfg,
		mapper:  field.NewMapper(cfg),
		palette: p,
		label:   label,
	}
}

// DrawFrame clears s and draws the whole field on it.
func (r *GraphRenderer) DrawFrame(s Surface, g field.Grid) {
	s.Clear(r.palette.Background)
	r.DrawGrid(s)
	r.DrawOrigin(s)
	r.DrawPoints(s, g)
	if l, ok := s.(Labeler); ok && r.label != "" {
		l.Label(labelX, labelY, r.label, r.palette.Caption)
	}
}

// DrawGrid draws XTotal-1 vertical and YTotal-1 horizontal lines evenly
// spaced across the window, skipping the one on the window edge.
func (r *GraphRenderer) DrawGrid(s Surface) {
	w, h := r.mapper.Size()
	for _, x := range gridStops(w, r.cfg.XTotal()) {
		s.Line(x, 0, x, h, gridWidth, r.palette.Grid)
	}
	for _, y := range gridStops(h, r.cfg.YTotal()) {
		s.Line(0, y, w, y, gridWidth, r.palette.Grid)
	}
}

// DrawOrigin draws a plus sign on (0, 0) when it is strictly inside the
// window and reports whether it did.
func (r *GraphRenderer) DrawOrigin(s Surface) bool {
	x, y, ok := r.mapper.Origin()
	if !ok {
		return false
	}
	s.Line(x-originArm, y, x+originArm, y, originWidth, r.palette.Origin)
	s.Line(x, y-originArm, x, y+originArm, originWidth, r.palette.Origin)
	return true
}

func (r *GraphRenderer) DrawPoints(s Surface, g field.Grid) {
	for _, p := range g {
		s.Circle(p.ScreenX, p.ScreenY, dotRadius, p.Color)
		x0, y0, x1, y1, ok := p.ScreenSegment(r.cfg.SegmentLength, r.mapper)
		if !ok {
			continue
		}
		s.AALine(x0, y0, x1, y1, p.Color)
	}
}

// gridStops returns n evenly spaced positions over [0, size) without the
// leading 0.
func gridStops(size float64, n int) []float64 {
	if n <= 1 {
		return nil
	}
	stops := make([]float64, 0, n-1)
	for i := 1; i < n; i++ {
		stops = append(stops, float64(i)*size/float64(n))
	}
	return stops
}
