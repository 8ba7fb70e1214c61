//go:build !unix

package tui

import (
	"os"

	"golang.org/x/term"
)

// No resize signal on this platform.
var (
	resizeSignal    os.Signal
	shutdownSignals = []os.Signal{os.Interrupt}
)

func windowSize(fd int) (width, height int, err error) {
	return term.GetSize(fd)
}
