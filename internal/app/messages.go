// internal/app/messages.go
package app

import "time"

// FrameMsg advances every running animation by one frame.
type FrameMsg time.Time

// DragEndMsg ends a wheel or key drag once input has been idle. Stale
// versions are ignored.
type DragEndMsg struct {
	Version int
}

// StderrMsg carries one captured stderr line.
type StderrMsg string
