// Package errmsg formats errors shown in the status line.
package errmsg

import "fmt"

// Op names an operation that can fail.
type Op string

const (
	// Startup
	OpConfigLoad Op = "load configuration"
	OpPresetLoad Op = "load screen variant"
	OpLogOpen    Op = "open log file"
	OpInitialize Op = "initialize application"

	// Rendering
	OpAvatarLoad Op = "load avatar image"

	// Feedback
	OpAudioInit Op = "initialize audio output"
	OpHaptic    Op = "play haptic feedback"
)

// Format creates a user-facing message. A nil error yields "".
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith adds the subject of the operation, e.g. a file path.
func FormatWith(op Op, subject string, err error) string {
	if err == nil {
		return ""
	}
	if subject == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, subject, err)
}
