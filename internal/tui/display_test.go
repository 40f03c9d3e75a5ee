package tui

import (
	"math"
	"testing"

	"slopefield/internal/loop"
)

func TestToDot(t *testing.T) {
	tests := []struct {
		v, logical float64
		dots       int
		want       int
	}{
		{0, 1000, 100, 0},
		{500, 1000, 100, 50},
		{999.9, 1000, 100, 99},
		{1000, 1000, 100, 99},
		{-5, 1000, 100, -1},
		{1e12, 1000, 100, 200},
		{-1e12, 1000, 100, -100},
	}
	for _, tt := range tests {
		if got := toDot(tt.v, tt.logical, tt.dots); got != tt.want {
			t.Errorf("toDot(%g, %g, %d) = %d, want %d", tt.v, tt.logical, tt.dots, got, tt.want)
		}
	}
}

func TestDisplayScalesToCells(t *testing.T) {
	d := NewDisplay(1000, 1000)
	d.SetCells(50, 25) // 100x100 dots

	d.Clear(green)
	d.Line(0, 500, 1000, 500, 1, green)
	if err := d.Present(); err != nil {
		t.Fatal(err)
	}
	// y=500 -> dot row 50 -> cell row 12, sub-row 2
	for x := 0; x < 50; x++ {
		diff(t, uint8(0x04|0x20), d.buf.m[12][x])
	}
	if d.Frame() == "" {
		t.Fatal("Frame() empty after Present")
	}

	d.Clear(green)
	d.Circle(0, 0, 1, green)
	diff(t, uint8(0x01), d.buf.m[0][0])
}

func TestDisplayIgnoresNonFinite(t *testing.T) {
	d := NewDisplay(1000, 1000)
	d.SetCells(10, 5)
	d.Line(math.NaN(), 0, 10, 10, 1, green)
	d.AALine(0, 0, math.Inf(1), 10, green)
	d.Circle(math.NaN(), 0, 1, green)
	for _, row := range d.buf.m {
		for _, m := range row {
			if m != 0 {
				t.Fatal("non-finite primitive drew dots")
			}
		}
	}
}

func TestDisplayWithoutCells(t *testing.T) {
	d := NewDisplay(1000, 1000)
	d.Line(0, 0, 1000, 1000, 3, green)
	d.Circle(500, 500, 1, green)
	if err := d.Present(); err != nil {
		t.Fatal(err)
	}
	diff(t, "", d.Frame())
}

func TestDisplayPoll(t *testing.T) {
	d := NewDisplay(1000, 1000)
	diff(t, 0, len(d.Poll()))
	d.RequestClose()
	diff(t, []loop.Event{{Kind: loop.CloseRequested}}, d.Poll())
	diff(t, 0, len(d.Poll()))

	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	diff(t, true, d.closed)
}
