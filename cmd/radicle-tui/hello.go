package main

import (
	"github.com/spf13/cobra"

	tui "github.com/radicle-dev/radicle-tui"
	"github.com/radicle-dev/radicle-tui/im"
)

const greeting = `Hello from radicle-tui!

This text is drawn by an immediate-mode view. The view function runs on
every frame and the widgets keep their scroll position between frames on
their own, so the application state holds nothing but the text.

Scroll with the arrow keys, j and k, or page up and down.
Scroll sideways with h and l when a line is wider than the window.

Press q or Esc to quit.`

type helloState struct {
	text string
}

type helloMsg struct{}

func newHelloCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "hello",
		Short: "Show a scrollable greeting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			appOpts, err := opts.appOptions()
			if err != nil {
				return err
			}
			_, err = tui.Run(cmd.Context(), helloState{text: greeting}, reduceHello, helloView(), appOpts...)
			return err
		},
	}
}

func reduceHello(_ *helloState, _ helloMsg) *tui.Exit[struct{}] {
	return tui.ExitNone[struct{}]()
}

func helloView() tui.View[helloState, helloMsg] {
	return im.Show(func(ui *im.Ui[helloState, helloMsg]) {
		ui.Layout(im.Vertical(tui.Fill(1), tui.Length(1)), 0, func(ui *im.Ui[helloState, helloMsg]) {
			ui.TextView(ui.State().text, im.BordersAll)
			ui.Shortcuts([]im.Shortcut{
				{Key: "↑/↓", Action: "scroll"},
				{Key: "q", Action: "quit"},
			}, '∙')
		})
		ui.OnInput(tui.Matcher(tui.RuneOf('q'), tui.KeyOf(tui.KeyEscape)), func(tui.KeyEvent) {
			ui.Send(helloMsg{})
		})
	})
}
