package field

// Mapper converts cartesian coordinates to screen pixels for one viewport.
// Screen y grows downward, so the y axis is flipped.
type Mapper struct {
	width  float64
	height float64

	x AxisRange
	y AxisRange

	XScale float64
	YScale float64

	// XCenter and YCenter are the screen coordinates of cartesian 0 on each axis.
	XCenter float64
	YCenter float64
}

// NewMapper precomputes the scales and centres for cfg.
func NewMapper(cfg ViewportConfig) Mapper {
	w := float64(cfg.Width)
	h := float64(cfg.Height)
	return Mapper{
		width:   w,
		height:  h,
		x:       cfg.X,
		y:       cfg.Y,
		XScale:  w / cfg.X.Span(),
		YScale:  h / cfg.Y.Span(),
		XCenter: interp(0, cfg.X, w),
		YCenter: h - interp(0, cfg.Y, h),
	}
}

// ToScreen maps (x, y) into pixel space.
func (m Mapper) ToScreen(x, y float64) (float64, float64) {
	return m.XCenter + x*m.XScale, m.YCenter - y*m.YScale
}

// Origin returns the screen position of (0, 0) and whether the origin is
// strictly inside both axis ranges.
func (m Mapper) Origin() (float64, float64, bool) {
	sx, sy := m.ToScreen(0, 0)
	return sx, sy, m.x.Contains0() && m.y.Contains0()
}

func (m Mapper) Size() (float64, float64) { return m.width, m.height }

// interp places v from r onto [0, size] linearly.
func interp(v float64, r AxisRange, size float64) float64 {
	return (v - r.Min) / r.Span() * size
}
