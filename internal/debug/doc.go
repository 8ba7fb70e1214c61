// Package debug provides optional file-based debug logging.
//
// The terminal owns stdout and stderr while an application runs, so log
// output goes to the file named by RADTUI_LOG or by configuration. Without
// a file, logging is a no-op.
package debug
