// Package handler provides a result type and chain function for action
// handlers.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/islandprofile/internal/keymap"
)

// Result represents the outcome of a handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler ignores the action.
var NotHandled = Result{}

// HandledNoCmd is a convenience for handlers that produce no command.
var HandledNoCmd = Result{Handled: true}

// Handled creates a Result for an action that was handled with a command.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to handle one action.
type Handler func(a keymap.Action) Result

// Chain offers a to each handler in order until one handles it.
func Chain(a keymap.Action, handlers ...Handler) Result {
	if a == "" {
		return NotHandled
	}
	for _, h := range handlers {
		if r := h(a); r.Handled {
			return r
		}
	}
	return NotHandled
}
