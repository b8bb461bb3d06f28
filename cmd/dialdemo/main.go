package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"arcdial"
)

type model struct {
	dial arcdial.Model
}

func (m model) Init() tea.Cmd {
	return m.dial.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.dial, cmd = m.dial.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.dial.View() + "\n scroll or ←/→ to pick · q quits"
}

func main() {
	bpm := arcdial.NewValue(70)

	picker := arcdial.New(5, 150, bpm).
		Label(func(v int) string { return fmt.Sprintf("%d bpm", v) })

	p := tea.NewProgram(
		model{dial: arcdial.NewModel(picker)},
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("picked %d bpm\n", bpm.Get())
}
