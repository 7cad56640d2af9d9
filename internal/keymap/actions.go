// Package keymap defines key bindings and action dispatch for the profile
// screen.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit  Action = "quit"
	ActionHelp  Action = "help"
	ActionDebug Action = "debug"

	// Scrolling; each press moves the content inside a short virtual drag
	ActionScrollUp   Action = "scroll_up"
	ActionScrollDown Action = "scroll_down"
	ActionPageUp     Action = "page_up"
	ActionPageDown   Action = "page_down"
	ActionTop        Action = "top"
	ActionPull       Action = "pull" // drag past the top to expand

	// Header
	ActionTapAvatar Action = "tap_avatar"

	// Settings toggles
	ActionToggleZoom       Action = "toggle_zoom"
	ActionTogglePaging     Action = "toggle_paging"
	ActionTogglePinning    Action = "toggle_pinning"
	ActionToggleIndicators Action = "toggle_indicators"
)
