package field

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidSize    = errors.New("invalid window size")
	ErrInvalidRange   = errors.New("invalid axis range")
	ErrInvalidStep    = errors.New("invalid sampling step")
	ErrInvalidSegment = errors.New("invalid segment length")
)

// stepEpsilon absorbs float error when a span is an exact multiple of its step
// (10/0.25 must count 40 steps, not 39.999...).
const stepEpsilon = 1e-9

// AxisRange is the visible [Min, Max] interval of one cartesian axis.
type AxisRange struct {
	Min float64
	Max float64
}

func (r AxisRange) Span() float64 { return r.Max - r.Min }

// Contains0 reports whether 0 lies strictly inside the range.
func (r AxisRange) Contains0() bool { return r.Min < 0 && 0 < r.Max }

func (r AxisRange) valid() bool {
	return !math.IsNaN(r.Min) && !math.IsNaN(r.Max) && !math.IsInf(r.Min, 0) && !math.IsInf(r.Max, 0) && r.Min < r.Max
}

// ViewportConfig is the fixed description of the drawing window and the
// sampled cartesian lattice. It is built once at startup and never mutated.
type ViewportConfig struct {
	Width  int
	Height int

	X AxisRange
	Y AxisRange

	XStep float64
	YStep float64

	// SegmentLength is the length of every slope segment in cartesian units.
	SegmentLength float64
}

// DefaultViewport is the 1000x1000 window over [-5,5]x[-5,5] sampled every 0.25.
func DefaultViewport() ViewportConfig {
	return ViewportConfig{
		Width:         1000,
		Height:        1000,
		X:             AxisRange{Min: -5, Max: 5},
		Y:             AxisRange{Min: -5, Max: 5},
		XStep:         0.25,
		YStep:         0.25,
		SegmentLength: 0.2,
	}
}

// Validate reports the first invalid field as a wrapped Err* sentinel.
func (c ViewportConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if !c.X.valid() {
		return fmt.Errorf("%w: x [%g, %g]", ErrInvalidRange, c.X.Min, c.X.Max)
	}
	if !c.Y.valid() {
		return fmt.Errorf("%w: y [%g, %g]", ErrInvalidRange, c.Y.Min, c.Y.Max)
	}
	if !positiveFinite(c.XStep) {
		return fmt.Errorf("%w: x step %g", ErrInvalidStep, c.XStep)
	}
	if !positiveFinite(c.YStep) {
		return fmt.Errorf("%w: y step %g", ErrInvalidStep, c.YStep)
	}
	if !positiveFinite(c.SegmentLength) {
		return fmt.Errorf("%w: %g", ErrInvalidSegment, c.SegmentLength)
	}
	return nil
}

// Columns is the number of lattice samples along x, both bounds included.
func (c ViewportConfig) Columns() int { return samples(c.X, c.XStep) }

// Rows is the number of lattice samples along y, both bounds included.
func (c ViewportConfig) Rows() int { return samples(c.Y, c.YStep) }

// XTotal is the number of background grid divisions along x: |Min| + |Max|,
// truncated to a whole count. Grid density follows the axis span, not the pixel size.
func (c ViewportConfig) XTotal() int { return int(math.Abs(c.X.Min) + math.Abs(c.X.Max)) }

// YTotal is the y counterpart of XTotal.
func (c ViewportConfig) YTotal() int { return int(math.Abs(c.Y.Min) + math.Abs(c.Y.Max)) }

func samples(r AxisRange, step float64) int {
	if !r.valid() || !positiveFinite(step) {
		return 0
	}
	return int(math.Floor(r.Span()/step+stepEpsilon)) + 1
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
