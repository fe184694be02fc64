// Package tui provides the Bubble Tea front-end of the game.
// It samples key presses into held input, drives the simulation with
// wall-clock deltas and renders snapshots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameMs caps the delta handed to the simulation after a stall, such as
// a suspended terminal.
const maxFrameMs = 250.0

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// frameDelta returns the milliseconds between two ticks. The first tick
// (zero prev) and clock jumps backwards use the nominal interval.
func frameDelta(prev, now time.Time, tickRate int) float64 {
	nominal := float64(tickInterval(tickRate)) / float64(time.Millisecond)
	if prev.IsZero() || now.Before(prev) {
		return nominal
	}
	dt := float64(now.Sub(prev)) / float64(time.Millisecond)
	return min(dt, maxFrameMs)
}
