package field

import (
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

var green = color.RGBA{G: 0xff, A: 0xff}

func TestLatticePointDoubleX(t *testing.T) {
	m := NewMapper(DefaultViewport())
	p := NewLatticePoint(1, 0, green, DoubleX.Fn, m)
	diff(t, 2.0, p.Slope)
	diff(t, [2]float64{600, 500}, [2]float64{p.ScreenX, p.ScreenY})
	diff(t, "(1, 0) m=2", p.String())

	x0, y0, x1, y1, ok := p.Segment(0.2)
	if !ok {
		t.Fatal("Segment() not ok for finite slope")
	}
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, 0.2, math.Hypot(x1-x0, y1-y0), approx)
	// direction is proportional to (1, 2)
	diff(t, 2.0, (y1-y0)/(x1-x0), approx)
	diff(t, [2]float64{1, 0}, [2]float64{(x0 + x1) / 2, (y0 + y1) / 2}, approx)
}

func TestSegmentLengthIndependentOfSlope(t *testing.T) {
	const l = 0.2
	approx := cmpopts.EquateApprox(0, 1e-9)
	for _, m := range []float64{0, 1, -1, 0.001, 2, -7.5, 100, -1e4, 1e6} {
		p := LatticePoint{X: 0.75, Y: -1.25, Slope: m}
		x0, y0, x1, y1, ok := p.Segment(l)
		if !ok {
			t.Fatalf("slope %g: Segment() not ok", m)
		}
		diff(t, l, math.Hypot(x1-x0, y1-y0), approx)
		if x0 > x1 {
			t.Errorf("slope %g: left end %g right of right end %g", m, x0, x1)
		}
	}
}

func TestSegmentSteepSlopes(t *testing.T) {
	const l = 0.2
	approx := cmpopts.EquateApprox(0, 1e-9)
	for _, m := range []float64{1e12, -1e15, 1e16, math.Tan(math.Pi / 2), -1e200, math.MaxFloat64} {
		p := LatticePoint{X: 3, Y: -2, Slope: m}
		x0, y0, x1, y1, ok := p.Segment(l)
		if !ok {
			t.Fatalf("slope %g: Segment() not ok", m)
		}
		diff(t, l, math.Hypot(x1-x0, y1-y0), approx)
		diff(t, [2]float64{3, -2}, [2]float64{(x0 + x1) / 2, (y0 + y1) / 2}, approx)
		if x0 > x1 {
			t.Errorf("slope %g: left end %g right of right end %g", m, x0, x1)
		}
	}
}

func TestSegmentNonFinite(t *testing.T) {
	p := LatticePoint{X: 2, Y: 3, Slope: math.Inf(1)}
	x0, y0, x1, y1, ok := p.Segment(0.2)
	if !ok {
		t.Fatal("infinite slope: Segment() not ok")
	}
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, [4]float64{2, 2.9, 2, 3.1}, [4]float64{x0, y0, x1, y1}, approx)

	p.Slope = math.Inf(-1)
	if _, _, _, _, ok := p.Segment(0.2); !ok {
		t.Fatal("negative infinite slope: Segment() not ok")
	}

	p.Slope = math.NaN()
	if _, _, _, _, ok := p.Segment(0.2); ok {
		t.Fatal("NaN slope: Segment() ok")
	}
}

func TestScreenSegment(t *testing.T) {
	m := NewMapper(DefaultViewport())
	p := NewLatticePoint(0, 0, green, func(x, y float64) float64 { return 0 }, m)
	x0, y0, x1, y1, ok := p.ScreenSegment(0.2, m)
	if !ok {
		t.Fatal("ScreenSegment() not ok")
	}
	approx := cmpopts.EquateApprox(0, 1e-9)
	diff(t, [4]float64{490, 500, 510, 500}, [4]float64{x0, y0, x1, y1}, approx)

	// positive slope rises to the right, so screen y decreases
	p = NewLatticePoint(0, 0, green, func(x, y float64) float64 { return 1 }, m)
	_, y0, _, y1, _ = p.ScreenSegment(0.2, m)
	if !(y1 < y0) {
		t.Errorf("slope 1: screen y %g -> %g, want decreasing", y0, y1)
	}
}
