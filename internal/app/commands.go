// internal/app/commands.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/islandprofile/internal/haptics"
	"github.com/llehouerou/islandprofile/internal/motion"
)

// FrameCmd schedules the next animation frame.
func FrameCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(max(fps, 1)), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// DragEndCmd sends DragEndMsg after d unless a newer version supersedes it.
func DragEndCmd(version int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return DragEndMsg{Version: version}
	})
}

// HapticCmd plays the feedback of a transition off the update loop.
func HapticCmd(p haptics.Pulser, h motion.Haptic) tea.Cmd {
	if h == motion.HapticNone {
		return nil
	}
	return func() tea.Msg {
		p.Pulse(h)
		return nil
	}
}

// waitForStderr returns the next captured stderr line. It returns nil once
// the channel is closed.
func waitForStderr(ch <-chan string) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		line, ok := <-ch
		if !ok {
			return nil
		}
		return StderrMsg(line)
	}
}
