//go:build !windows

// Package stderr redirects file descriptor 2 into a channel.
//
// The audio backend links C libraries (ALSA on Linux) that print straight to
// fd 2. While the console owns the terminal those lines are routed to Lines
// and shown in the status area instead.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"sync"

	"golang.org/x/sys/unix"
)

// Lines receives captured, trimmed, non-empty lines.
// Lines are dropped when nobody reads fast enough.
var Lines = make(chan string, 64)

var capture struct {
	mu     sync.Mutex
	active bool
	saved  int // duplicate of the original fd 2
	r, w   *os.File
}

// Start redirects fd 2 into Lines. Call it before the sound device is opened.
// On error nothing is redirected and the program can continue.
func Start() error {
	capture.mu.Lock()
	defer capture.mu.Unlock()

	if capture.active {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	saved, err := unix.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := unix.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		unix.Close(saved)
		r.Close()
		w.Close()
		return err
	}

	capture.saved = saved
	capture.r = r
	capture.w = w
	capture.active = true

	go forward(r)
	return nil
}

func forward(r *os.File) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case Lines <- line:
		default:
		}
	}
}

// WriteOriginal writes to the terminal's stderr even while capturing.
func WriteOriginal(msg string) {
	capture.mu.Lock()
	defer capture.mu.Unlock()

	if !capture.active {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = unix.Write(capture.saved, []byte(msg))
}

// Stop restores the original fd 2.
func Stop() {
	capture.mu.Lock()
	defer capture.mu.Unlock()

	if !capture.active {
		return
	}

	_ = unix.Dup2(capture.saved, int(os.Stderr.Fd()))
	_ = unix.Close(capture.saved)
	capture.w.Close()
	capture.r.Close()
	capture.active = false
}
