// Package tui provides the Bubble Tea frontend for the runner.
// It handles the terminal UI loop, input mapping, and run orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. Gen tags the run that
// scheduled it; ticks from an earlier run are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick message for
// generation gen after one frame interval.
func tickCmd(tickRate, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
