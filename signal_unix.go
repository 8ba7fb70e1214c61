//go:build unix

package tui

import (
	"os"

	"golang.org/x/sys/unix"
)

var (
	resizeSignal    os.Signal = unix.SIGWINCH
	shutdownSignals           = []os.Signal{os.Interrupt, unix.SIGTERM}
)

// windowSize asks the terminal on fd for its size in cells.
func windowSize(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
