package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	tui "github.com/radicle-dev/radicle-tui"
	"github.com/radicle-dev/radicle-tui/rm"
)

// Selection modes.
const (
	modeOperation = "operation"
	modeID        = "id"
)

type selectState struct {
	title string
	items []string
	mode  string
}

// selectMsg picks items[index] with operation op, or cancels.
type selectMsg struct {
	index  int
	op     string
	cancel bool
}

func newSelectCmd(opts *options) *cobra.Command {
	var (
		mode  string
		title string
	)

	cmd := &cobra.Command{
		Use:   "select [item...]",
		Short: "Pick one item, print the selection as JSON",
		Long: `Pick one item from a list and print the selection as a JSON object with
the fields operation, ids and args.

Items are read from stdin, one per line, when none are given as arguments.
In operation mode, Enter selects an item and o selects it for opening; in id
mode only Enter is available. Esc cancels and prints nothing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if mode != modeOperation && mode != modeID {
				return fmt.Errorf("unknown mode %q, want %q or %q", mode, modeOperation, modeID)
			}
			items := args
			if len(items) == 0 {
				var err error
				if items, err = readItems(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			if len(items) == 0 {
				return fmt.Errorf("nothing to select")
			}

			appOpts, err := opts.appOptions()
			if err != nil {
				return err
			}
			state := selectState{title: title, items: items, mode: mode}
			sel, err := tui.Run(cmd.Context(), state, reduceSelect, newSelectWindow(), appOpts...)
			if err != nil || sel == nil {
				return err
			}
			return tui.WriteSelection(cmd.OutOrStdout(), *sel)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", modeOperation, "selection mode, operation or id")
	cmd.Flags().StringVar(&title, "title", "Select", "title of the list")
	return cmd
}

// readItems returns the non-empty lines of r.
func readItems(r io.Reader) ([]string, error) {
	var items []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			items = append(items, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	return items, nil
}

func reduceSelect(s *selectState, msg selectMsg) *tui.Exit[tui.Selection] {
	switch {
	case msg.cancel:
		return tui.ExitNone[tui.Selection]()
	case msg.index < 0 || msg.index >= len(s.items):
		return nil
	case msg.op != "" && s.mode != modeOperation:
		return nil
	}
	return tui.ExitWith(tui.NewSelection(msg.op, s.items[msg.index]))
}

// newSelectWindow builds the list page: the items in a bordered list and a
// shortcut line below.
func newSelectWindow() *rm.Window[selectState, selectMsg] {
	list := rm.NewList[selectState, selectMsg]().
		OnUpdate(func(s selectState) rm.ListProps {
			rows := make([][]string, len(s.items))
			for i, item := range s.items {
				rows[i] = []string{strconv.Itoa(i + 1), item}
			}
			return rm.ListProps{
				Columns: []tui.Column{
					{Text: "#", Width: tui.Length(4), MinWidth: tui.BreakpointXSmall},
					{Text: "item", Width: tui.Fill(1)},
				},
				Rows:  rows,
				Empty: "nothing to select",
			}
		}).
		OnKey(func(ev rm.ListEvent) (selectMsg, bool) {
			switch {
			case ev.Selected < 0:
				return selectMsg{}, false
			case ev.Key.Is(tui.KeyEnter):
				return selectMsg{index: ev.Selected}, true
			case ev.Key.IsChar('o'):
				return selectMsg{index: ev.Selected, op: "open"}, true
			}
			return selectMsg{}, false
		})

	container := rm.NewContainer[selectState, selectMsg](list, rm.ContainerProps{}).
		OnUpdate(func(s selectState) rm.ContainerProps {
			return rm.ContainerProps{
				Title:  s.title,
				Footer: fmt.Sprintf("%d items", len(s.items)),
			}
		})

	keys := newWindowKeys()
	help := rm.NewLabel[selectState, selectMsg](rm.LabelProps{}).
		OnUpdate(func(s selectState) rm.LabelProps {
			return rm.LabelProps{Text: shortcutLine(s.mode, keys.km)}
		})

	page := rm.NewPanes(tui.Vertical, []tui.Constraint{tui.Fill(1), tui.Length(1)},
		rm.Widget[selectState, selectMsg](container),
		rm.Widget[selectState, selectMsg](help),
	)

	return rm.NewWindow[selectState, selectMsg](nil).
		Page("", page).
		OnKey(func(ke tui.KeyEvent, _ selectState) (selectMsg, bool) {
			return keys.dispatch(ke)
		})
}

// windowKeys are the keys handled outside the list. A dispatch reports the
// message of the binding that fired.
type windowKeys struct {
	km  tui.KeyMap
	msg selectMsg
	hit bool
}

func newWindowKeys() *windowKeys {
	k := &windowKeys{}
	cancel := func(tui.KeyEvent) { k.msg, k.hit = selectMsg{cancel: true}, true }
	k.km = tui.KeyMap{
		tui.OnKeyStop(tui.KeyEscape, cancel).WithHelp("cancel"),
		tui.OnRuneStop('q', cancel).WithHelp("quit"),
	}
	return k
}

func (k *windowKeys) dispatch(ke tui.KeyEvent) (selectMsg, bool) {
	k.msg, k.hit = selectMsg{}, false
	k.km.Dispatch(ke)
	return k.msg, k.hit
}

// shortcutLine lists the list keys followed by the window keys.
func shortcutLine(mode string, km tui.KeyMap) string {
	parts := []string{"↑/↓ move", "enter select"}
	if mode == modeOperation {
		parts = append(parts, "o open")
	}
	for _, b := range km {
		parts = append(parts, b.Pattern.String()+" "+b.Help)
	}
	return strings.Join(parts, " ∙ ")
}
