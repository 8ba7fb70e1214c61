package main

import (
	"fmt"

	"github.com/spf13/cobra"

	tui "github.com/radicle-dev/radicle-tui"
	"github.com/radicle-dev/radicle-tui/im"
)

type counterState struct {
	count int
}

type counterMsg int

const (
	counterInc counterMsg = iota
	counterDec
	counterQuit
)

func newCounterCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "counter",
		Short: "Count with + and -, print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			appOpts, err := opts.appOptions()
			if err != nil {
				return err
			}
			count, err := tui.Run(cmd.Context(), counterState{}, reduceCounter, counterView(), appOpts...)
			if err != nil || count == nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), *count)
			return err
		},
	}
}

func reduceCounter(s *counterState, msg counterMsg) *tui.Exit[int] {
	switch msg {
	case counterInc:
		s.count++
	case counterDec:
		s.count--
	case counterQuit:
		return tui.ExitWith(s.count)
	}
	return nil
}

func counterView() tui.View[counterState, counterMsg] {
	return im.Show(func(ui *im.Ui[counterState, counterMsg]) {
		ui.Layout(im.Vertical(tui.Fill(1), tui.Length(1)), 0, func(ui *im.Ui[counterState, counterMsg]) {
			ui.CenteredText(fmt.Sprintf("count = %d", ui.State().count), im.BordersAll)
			ui.Shortcuts([]im.Shortcut{
				{Key: "+", Action: "increment"},
				{Key: "-", Action: "decrement"},
				{Key: "q", Action: "quit"},
			}, '∙')
		})
		ui.OnKey(tui.RuneOf('+'), func(tui.KeyEvent) { ui.Send(counterInc) })
		ui.OnKey(tui.RuneOf('-'), func(tui.KeyEvent) { ui.Send(counterDec) })
		ui.OnInput(tui.Matcher(tui.RuneOf('q'), tui.KeyOf(tui.KeyEscape)), func(tui.KeyEvent) {
			ui.Send(counterQuit)
		})
	})
}
