package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/radicle-dev/radicle-tui/internal/config"
)

// AppOption is a functional option for configuring an App.
type AppOption func(*settings) error

type settings struct {
	term          Terminal
	reader        EventReader
	tty           *os.File
	viewport      Viewport
	frameDuration time.Duration
	refreshRate   time.Duration
	inputLatency  time.Duration
	storeTick     time.Duration
	theme         *Theme
	cursorVisible bool
	ctrlC         bool
}

func defaultSettings() settings {
	return settings{
		viewport:      Fullscreen(),
		frameDuration: time.Second / 60,
		refreshRate:   250 * time.Millisecond,
		inputLatency:  50 * time.Millisecond,
		storeTick:     DefaultStoreTick,
		ctrlC:         true,
	}
}

// WithTerminal draws on term instead of the process terminal.
func WithTerminal(term Terminal) AppOption {
	return func(s *settings) error {
		if term == nil {
			return fmt.Errorf("terminal must not be nil")
		}
		s.term = term
		return nil
	}
}

// WithEventReader reads input from r instead of stdin.
func WithEventReader(r EventReader) AppOption {
	return func(s *settings) error {
		if r == nil {
			return fmt.Errorf("event reader must not be nil")
		}
		s.reader = r
		return nil
	}
}

// WithTTY draws on and reads input from tty instead of stdout and stdin,
// e.g. /dev/tty when the standard streams are redirected. WithTerminal and
// WithEventReader take precedence.
func WithTTY(tty *os.File) AppOption {
	return func(s *settings) error {
		if tty == nil {
			return fmt.Errorf("tty must not be nil")
		}
		s.tty = tty
		return nil
	}
}

// WithViewport sets the drawing region. Default is Fullscreen().
func WithViewport(v Viewport) AppOption {
	return func(s *settings) error {
		if err := v.Validate(); err != nil {
			return err
		}
		s.viewport = v
		return nil
	}
}

// WithFrameRate sets the maximum frame rate of the render loop.
// Default is 60 fps. Valid range is 1-240 fps.
func WithFrameRate(fps int) AppOption {
	return func(s *settings) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		s.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithRefreshRate sets how often a frame is drawn without any input or
// state change. Default is 250ms.
func WithRefreshRate(d time.Duration) AppOption {
	return func(s *settings) error {
		if d <= 0 {
			return fmt.Errorf("refresh rate must be positive")
		}
		s.refreshRate = d
		return nil
	}
}

// WithInputLatency sets the polling timeout of the input task. It bounds
// how long shutdown waits for the reader. Default is 50ms.
func WithInputLatency(d time.Duration) AppOption {
	return func(s *settings) error {
		if d <= 0 {
			return fmt.Errorf("input latency must be positive")
		}
		s.inputLatency = d
		return nil
	}
}

// WithStoreTick sets the tick interval for states implementing Ticker.
// Zero disables ticking.
func WithStoreTick(d time.Duration) AppOption {
	return func(s *settings) error {
		if d < 0 {
			return fmt.Errorf("store tick must not be negative")
		}
		s.storeTick = d
		return nil
	}
}

// WithTheme sets the theme. By default the palette is resolved for the
// detected terminal background.
func WithTheme(t Theme) AppOption {
	return func(s *settings) error {
		s.theme = &t
		return nil
	}
}

// WithCursor keeps the cursor visible during app execution.
// By default, the cursor is hidden.
func WithCursor() AppOption {
	return func(s *settings) error {
		s.cursorVisible = true
		return nil
	}
}

// WithoutCtrlC delivers Ctrl+C to the view as ordinary input instead of
// ending the run.
func WithoutCtrlC() AppOption {
	return func(s *settings) error {
		s.ctrlC = false
		return nil
	}
}

// WithSettings applies loaded configuration.
func WithSettings(cfg config.Settings) AppOption {
	return func(s *settings) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		opts := []AppOption{
			WithFrameRate(cfg.FrameRate),
			WithRefreshRate(cfg.RefreshRate),
			WithStoreTick(cfg.StoreTick),
		}
		if cfg.Viewport == config.ViewportFullscreen {
			opts = append(opts, WithViewport(Fullscreen()))
		} else {
			opts = append(opts, WithViewport(Inline(cfg.InlineHeight)))
		}
		for _, opt := range opts {
			if err := opt(s); err != nil {
				return err
			}
		}
		return nil
	}
}
