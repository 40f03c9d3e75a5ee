package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	headerHeight = 1
	footerHeight = 2
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.canvasW, m.canvasH = canvasCells(m.width, m.height-headerHeight-footerHeight)
		m.disp.SetCells(m.canvasW, m.canvasH)
		m.status = fmt.Sprintf("canvas %dx%d cells", m.canvasW, m.canvasH)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.disp.RequestClose()
			return m.step(false)
		}
	case frameMsg:
		return m.step(true)
	}
	return m, nil
}

// step advances the render loop by one frame and decides whether the program
// keeps ticking.
func (m Model) step(tick bool) (tea.Model, tea.Cmd) {
	if err := m.loop.Step(); err != nil {
		m.err = err
		m.status = "render error: " + err.Error()
		return m, tea.Quit
	}
	if m.loop.Stopped() {
		return m, tea.Quit
	}
	if tick {
		return m, frameTick()
	}
	return m, nil
}

// canvasCells picks the largest cell area with square braille dots: a cell
// is 2x4 dots, so a square canvas is twice as wide as it is tall.
func canvasCells(w, h int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	cw := min(w, 2*h)
	ch := min(h, cw/2)
	return cw, ch
}
