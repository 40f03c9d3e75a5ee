package render

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type op struct {
	kind           string
	x0, y0, x1, y1 float64
	width          float64
	c              color.RGBA
}

// recorder is a Surface that keeps every primitive it receives.
type recorder struct {
	ops []op
}

func (r *recorder) Clear(c color.RGBA) {
	r.ops = append(r.ops, op{kind: "clear", c: c})
}

func (r *recorder) AALine(x0, y0, x1, y1 float64, c color.RGBA) {
	r.ops = append(r.ops, op{kind: "aaline", x0: x0, y0: y0, x1: x1, y1: y1, width: 1, c: c})
}

func (r *recorder) Circle(x, y, rad float64, c color.RGBA) {
	r.ops = append(r.ops, op{kind: "circle", x0: x, y0: y, width: rad, c: c})
}

func (r *recorder) Line(x0, y0, x1, y1, width float64, c color.RGBA) {
	r.ops = append(r.ops, op{kind: "line", x0: x0, y0: y0, x1: x1, y1: y1, width: width, c: c})
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) filter(kind string, c color.RGBA) []op {
	var out []op
	for _, o := range r.ops {
		if o.kind == kind && o.c == c {
			out = append(out, o)
		}
	}
	return out
}

type labelRecorder struct {
	recorder
	labels []string
}

func (r *labelRecorder) Label(x, y int, s string, c color.RGBA) {
	r.labels = append(r.labels, s)
}

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}
