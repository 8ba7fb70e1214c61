// Command radicle-tui runs the terminal interfaces built on the radicle-tui
// framework.
//
// Usage:
//
//	radicle-tui hello                 Show a scrollable greeting
//	radicle-tui counter               Count with + and -, print the result
//	radicle-tui select [item...]      Pick one item, print the selection as JSON
//	radicle-tui version               Print version information as JSON
//
// Items for select are read from stdin, one per line, when none are given
// as arguments. The interface is then drawn on /dev/tty.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
