//go:build !windows

// Package stderr redirects file descriptor 2 into a channel while the TUI owns
// the terminal. The audio backend behind haptic feedback (ALSA through oto)
// writes diagnostics straight to fd 2, which would otherwise tear the
// alternate screen.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"
)

// Lines receives captured stderr lines. Each Start makes a new channel; it
// is closed once Stop has been called and every buffered line is delivered.
var Lines = make(chan string, 64)

var (
	savedFD int
	writer  *os.File
	active  bool
)

// Start redirects fd 2 into Lines. It must run before the audio output is
// opened. On error stderr is left untouched and the program may continue.
func Start() error {
	if active {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	fd := int(os.Stderr.Fd())
	saved, err := syscall.Dup(fd)
	if err != nil {
		r.Close()
		w.Close()
		return err
	}
	if err := syscall.Dup2(int(w.Fd()), fd); err != nil {
		syscall.Close(saved)
		r.Close()
		w.Close()
		return err
	}

	savedFD, writer, active = saved, w, true
	Lines = make(chan string, 64)

	go pump(r, Lines)
	return nil
}

// pump owns out: it is the only sender and closes it when the pipe reaches
// EOF.
func pump(r *os.File, out chan<- string) {
	defer close(out)
	defer r.Close()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case out <- line:
		default:
			// reader is behind; drop
		}
	}
}

// WriteOriginal writes to the terminal's stderr even while capturing.
func WriteOriginal(msg string) {
	if active {
		_, _ = syscall.Write(savedFD, []byte(msg))
		return
	}
	_, _ = os.Stderr.WriteString(msg)
}

// Stop restores fd 2 and closes the write end of the pipe. The pump drains
// what is left, then closes Lines.
func Stop() {
	if !active {
		return
	}
	_ = syscall.Dup2(savedFD, int(os.Stderr.Fd()))
	_ = syscall.Close(savedFD)
	writer.Close()
	writer, active = nil, false
}
