package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	contentWidth := max(10, m.width)
	contentHeight := max(4, m.height-headerHeight-footerHeight)

	// Header
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render(" slopefield ─ "+m.eq.Name+" "),
		dimStyle.Render(fmt.Sprintf("  %d points  %dx%d  x[%g, %g] y[%g, %g]",
			len(m.loop.Grid()), m.cfg.Columns(), m.cfg.Rows(),
			m.cfg.X.Min, m.cfg.X.Max, m.cfg.Y.Min, m.cfg.Y.Max)),
	)
	header = lipgloss.NewStyle().Width(contentWidth).MaxHeight(headerHeight).Render(header)

	// Canvas, centered in the content area
	body := lipgloss.Place(contentWidth, contentHeight, lipgloss.Center, lipgloss.Center, m.disp.Frame())

	// Footer / help
	status := dimStyle.Render(" " + m.status + " ")
	if m.err != nil {
		status = errStyle.Render(" " + m.status + " ")
	}
	footer := lipgloss.JoinVertical(lipgloss.Left,
		status,
		" "+m.help.View(m.keys),
	)
	footer = lipgloss.NewStyle().Width(contentWidth).Render(footer)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}
