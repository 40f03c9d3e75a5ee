package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"slopefield/internal/field"
	"slopefield/internal/loop"
)

const frameInterval = time.Second / 30

type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

type keyMap struct {
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Quit} }
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var defaultKeys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type Model struct {
	width  int
	height int

	status string
	err    error

	// Field
	cfg  field.ViewportConfig
	eq   field.NamedEquation
	loop *loop.Loop
	disp *Display

	// last canvas size in cells
	canvasW int
	canvasH int

	keys keyMap
	help help.Model
}

// New builds the grid for cfg and eq and returns a model ready to run.
func New(cfg field.ViewportConfig, eq field.NamedEquation, opts ...loop.Option) (Model, error) {
	d := NewDisplay(cfg.Width, cfg.Height)
	l, err := loop.New(d, cfg, eq, opts...)
	if err != nil {
		return Model{}, err
	}
	return Model{
		status: "slopefield ready",
		cfg:    cfg,
		eq:     eq,
		loop:   l,
		disp:   d,
		keys:   defaultKeys,
		help:   help.New(),
	}, nil
}

func (m Model) Init() tea.Cmd { return frameTick() }

// Err is the error that ended the program, if any.
func (m Model) Err() error { return m.err }

// Stopped reports whether the user closed the viewer.
func (m Model) Stopped() bool { return m.loop.Stopped() }

// Close releases the display. Call it once the program has returned.
func (m Model) Close() error { return m.loop.Dispose() }
