package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// brailleBuf is a cell grid where each cell holds 2x4 dots and the color of
// the last dot set in it.
type brailleBuf struct {
	w, h int // in cells
	m    [][]uint8
	c    [][]color.RGBA
}

func newBrailleBuf(w, h int) *brailleBuf {
	w, h = max(w, 0), max(h, 0)
	m := make([][]uint8, h)
	c := make([][]color.RGBA, h)
	for i := range m {
		m[i] = make([]uint8, w)
		c[i] = make([]color.RGBA, w)
	}
	return &brailleBuf{w: w, h: h, m: m, c: c}
}

// microSize is the dot resolution of the buffer.
func (b *brailleBuf) microSize() (int, int) { return b.w * 2, b.h * 4 }

func (b *brailleBuf) clear() {
	for y := range b.m {
		clear(b.m[y])
		clear(b.c[y])
	}
}

var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, c color.RGBA) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= dotBits[rx][ry]
	b.c[cy][cx] = c
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawThickLineMicro repeats the line across its minor axis, thick dots wide.
func (b *brailleBuf) drawThickLineMicro(x0, y0, x1, y1, thick int, c color.RGBA) {
	if thick <= 1 {
		b.drawLineMicro(x0, y0, x1, y1, c)
		return
	}
	horizontal := abs(x1-x0) >= abs(y1-y0)
	for k := -(thick - 1) / 2; k <= thick/2; k++ {
		if horizontal {
			b.drawLineMicro(x0, y0+k, x1, y1+k, c)
		} else {
			b.drawLineMicro(x0+k, y0, x1+k, y1, c)
		}
	}
}

func (b *brailleBuf) fillCircleMicro(cx, cy, r int, c color.RGBA) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				b.setPixel(cx+x, cy+y, c)
			}
		}
	}
}

// toLines renders every row, wrapping runs of same-colored cells in one style.
func (b *brailleBuf) toLines() []string {
	styles := map[color.RGBA]lipgloss.Style{}
	style := func(c color.RGBA) lipgloss.Style {
		s, ok := styles[c]
		if !ok {
			s = lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(c)))
			styles[c] = s
		}
		return s
	}

	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		var run []rune
		var runColor color.RGBA
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runColor == (color.RGBA{}) {
				sb.WriteString(string(run))
			} else {
				sb.WriteString(style(runColor).Render(string(run)))
			}
			run = run[:0]
		}
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			r, c := ' ', color.RGBA{}
			if mask != 0 {
				r, c = rune(0x2800+int(mask)), b.c[y][x]
			}
			if c != runColor {
				flush()
				runColor = c
			}
			run = append(run, r)
		}
		flush()
		out[y] = sb.String()
	}
	return out
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
