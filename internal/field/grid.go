package field

import "image/color"

// Grid is the lattice in row-major order: y outer, x inner.
type Grid []LatticePoint

// Generate samples every (x, y) of the viewport lattice, both bounds included.
// Coordinates are min + i*step rather than a running sum so the upper bound is
// reached exactly.
func Generate(cfg ViewportConfig, eq Equation, c color.RGBA) Grid {
	m := NewMapper(cfg)
	cols, rows := cfg.Columns(), cfg.Rows()
	g := make(Grid, 0, cols*rows)
	for j := 0; j < rows; j++ {
		y := cfg.Y.Min + float64(j)*cfg.YStep
		for i := 0; i < cols; i++ {
			x := cfg.X.Min + float64(i)*cfg.XStep
			g = append(g, NewLatticePoint(x, y, c, eq, m))
		}
	}
	return g
}
