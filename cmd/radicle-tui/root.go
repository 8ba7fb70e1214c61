package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	tui "github.com/radicle-dev/radicle-tui"
	"github.com/radicle-dev/radicle-tui/internal/config"
	"github.com/radicle-dev/radicle-tui/internal/debug"
)

// options holds the flags shared by every interface command.
type options struct {
	configPath string
	fullscreen bool
	height     int

	settings config.Settings
	tty      *os.File
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "radicle-tui",
		Short:         "Radicle terminal interfaces",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return opts.close()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default is radicle-tui/config.* in the user config directory)")
	flags.BoolVar(&opts.fullscreen, "fullscreen", false, "draw on the alternate screen")
	flags.IntVar(&opts.height, "height", 0, "rows of the inline viewport")

	cmd.AddCommand(
		newHelloCmd(opts),
		newCounterCmd(opts),
		newSelectCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// load reads the configuration, applies flag overrides and starts the
// debug log.
func (o *options) load(cmd *cobra.Command) error {
	settings, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("height") {
		settings.Viewport = config.ViewportInline
		settings.InlineHeight = o.height
	}
	if flags.Changed("fullscreen") && o.fullscreen {
		settings.Viewport = config.ViewportFullscreen
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	o.settings = settings

	if err := debug.Init(settings.Log.Path, settings.Log.Level); err != nil {
		return err
	}
	debug.Logger().Info("starting", "command", cmd.Name(), "viewport", settings.Viewport)
	return nil
}

// appOptions returns the App options for the loaded settings. When stdin or
// stdout is redirected the interface is drawn on the controlling terminal.
func (o *options) appOptions() ([]tui.AppOption, error) {
	opts := []tui.AppOption{tui.WithSettings(o.settings)}

	if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		return opts, nil
	}
	if o.tty == nil {
		tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
		if err != nil {
			return nil, fmt.Errorf("open controlling terminal: %w", err)
		}
		o.tty = tty
	}
	return append(opts, tui.WithTTY(o.tty)), nil
}

func (o *options) close() error {
	var err error
	if o.tty != nil {
		err = o.tty.Close()
		o.tty = nil
	}
	if cerr := debug.Close(); err == nil {
		err = cerr
	}
	return err
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
