// Package loop drives the per-frame redraw of a slope field on a display
// until the display asks to close.
package loop

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"slopefield/internal/field"
	"slopefield/internal/render"
)

type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type EventKind int

const (
	// CloseRequested is raised when the user closes the window or quits.
	CloseRequested EventKind = iota + 1
)

type Event struct {
	Kind EventKind
}

// Display is the rendering collaborator: a drawable surface plus an event
// queue and a present hook.
type Display interface {
	render.Surface
	// Poll drains pending input events.
	Poll() []Event
	// Present shows the frame drawn since the last Clear.
	Present() error
	Close() error
}

// Loop owns the display and the grid for the lifetime of the viewer.
type Loop struct {
	display  Display
	renderer *render.GraphRenderer
	grid     field.Grid
	state    State
	frames   uint64
	disposed bool
	log      *slog.Logger
}

type options struct {
	log        *slog.Logger
	palette    render.Palette
	pointColor *color.RGBA
}

type Option func(*options)

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

func WithPalette(p render.Palette) Option {
	return func(o *options) { o.palette = p }
}

// WithPointColor overrides the palette color of the lattice points.
func WithPointColor(c color.RGBA) Option {
	return func(o *options) { o.pointColor = &c }
}

// New validates cfg, samples the grid once and returns a running loop.
func New(d Display, cfg field.ViewportConfig, eq field.NamedEquation, opts ...Option) (*Loop, error) {
	if d == nil {
		return nil, errors.New("loop: nil display")
	}
	if eq.Fn == nil {
		return nil, errors.New("loop: nil equation")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("loop: %w", err)
	}
	o := options{
		log:     slog.New(slog.DiscardHandler),
		palette: render.DefaultPalette,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = slog.New(slog.DiscardHandler)
	}
	pc := o.palette.Point
	if o.pointColor != nil {
		pc = *o.pointColor
	}

	g := field.Generate(cfg, eq.Fn, pc)
	o.log.Info("grid ready",
		"equation", eq.Name,
		"points", len(g),
		"columns", cfg.Columns(),
		"rows", cfg.Rows(),
		"window", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height))

	return &Loop{
		display:  d,
		renderer: render.NewGraphRenderer(cfg, o.palette, eq.Name),
		grid:     g,
		state:    Running,
		log:      o.log,
	}, nil
}

func (l *Loop) State() State     { return l.state }
func (l *Loop) Stopped() bool    { return l.state == Stopped }
func (l *Loop) Frames() uint64   { return l.frames }
func (l *Loop) Grid() field.Grid { return l.grid }

// Step runs one iteration: draw the frame, poll events, present. A close
// event stops the loop before the frame is presented. Step is a no-op once
// stopped.
func (l *Loop) Step() error {
	if l.state != Running {
		return nil
	}
	l.renderer.DrawFrame(l.display, l.grid)
	for _, ev := range l.display.Poll() {
		if ev.Kind == CloseRequested {
			l.state = Stopped
			l.log.Info("close requested", "frames", l.frames)
			return nil
		}
	}
	if err := l.display.Present(); err != nil {
		return fmt.Errorf("present frame %d: %w", l.frames, err)
	}
	l.frames++
	return nil
}

// Run steps until the loop stops, a step fails or ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for l.state == Running {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := l.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Dispose releases the display. It is safe to call more than once.
func (l *Loop) Dispose() error {
	if l.disposed {
		return nil
	}
	l.disposed = true
	l.state = Stopped
	if err := l.display.Close(); err != nil {
		l.log.Warn("close display", "err", err)
		return fmt.Errorf("close display: %w", err)
	}
	return nil
}
