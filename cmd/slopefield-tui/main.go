package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"slopefield/internal/field"
	"slopefield/internal/tui"
)

func main() {
	m, err := tui.New(field.DefaultViewport(), field.DoubleX)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if cerr := m.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err == nil {
		if fm, ok := final.(tui.Model); ok {
			err = fm.Err()
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
