// Package tui provides the Bubble Tea front-ends: the terminal game, the
// recorded runs browser and the SSH server that serves both.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-birds/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(core.TickDuration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
