// Package window shows the slope field in a desktop window. Frames are
// rasterized in software by render.Canvas and uploaded to ebiten once per
// presented frame.
package window

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"slopefield/internal/loop"
	"slopefield/internal/render"
)

const (
	Caption = "Slope Field!    :P"
	TPS     = 60
)

// Window is a loop.Display backed by an ebiten window. Poll and Present must
// be called from the ebiten update goroutine, which Run arranges.
type Window struct {
	*render.Canvas

	width  int
	height int
	img    *ebiten.Image
}

var _ loop.Display = (*Window)(nil)

func New(width, height int, title string) *Window {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(TPS)
	return &Window{
		Canvas: render.NewCanvas(width, height),
		width:  width,
		height: height,
	}
}

// Title is the window caption for an equation label.
func Title(label string) string {
	if label == "" {
		return Caption
	}
	return Caption + "    " + label
}

func (w *Window) Poll() []loop.Event {
	var evs []loop.Event
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		evs = append(evs, loop.Event{Kind: loop.CloseRequested})
	}
	return evs
}

// Present uploads the canvas to the texture drawn on the next ebiten Draw.
func (w *Window) Present() error {
	if err := w.Canvas.Err(); err != nil {
		return err
	}
	if w.img == nil {
		w.img = ebiten.NewImage(w.width, w.height)
	}
	w.img.WritePixels(w.Canvas.Pixels())
	return nil
}

func (w *Window) Close() error {
	if w.img != nil {
		w.img.Deallocate()
		w.img = nil
	}
	return w.Canvas.Close()
}

// Run opens the window and steps l once per tick until it stops. It blocks
// and must be called from the main goroutine.
func Run(w *Window, l *loop.Loop) error {
	err := ebiten.RunGame(&game{w: w, l: l})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type game struct {
	w *Window
	l *loop.Loop
}

func (g *game) Update() error {
	if err := g.l.Step(); err != nil {
		return err
	}
	if g.l.Stopped() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.w.img == nil {
		return
	}
	screen.DrawImage(g.w.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w.width, g.w.height
}
