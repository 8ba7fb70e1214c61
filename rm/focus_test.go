package rm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// pane is a Focusable whose focusability tests can flip.
type pane struct {
	name    string
	enabled bool
}

func (p *pane) IsFocusable() bool { return p.enabled }

func panes(row string) []*pane {
	out := make([]*pane, len(row))
	for i, c := range row {
		out[i] = &pane{name: string(rune('a' + i)), enabled: c == '+'}
	}
	return out
}

func managerOf(items []*pane) *FocusManager {
	fm := NewFocusManager()
	for _, p := range items {
		fm.Register(p)
	}
	return fm
}

func focusedName(fm *FocusManager) string {
	if p, ok := fm.Focused().(*pane); ok {
		return p.name
	}
	return ""
}

func TestFocusManager_Steps(t *testing.T) {
	type tc struct {
		// '+' is a focusable pane, '-' one that is not.
		row   string
		steps string // 'n' for Next, 'p' for Prev
		want  string
	}

	tests := map[string]tc{
		"first focusable on register": {row: "-++", want: "b"},
		"next":                        {row: "+++", steps: "n", want: "b"},
		"next wraps":                  {row: "+++", steps: "nnn", want: "a"},
		"prev wraps":                  {row: "+++", steps: "p", want: "c"},
		"skips disabled":              {row: "+-+", steps: "n", want: "c"},
		"prev skips disabled":         {row: "+-+", steps: "pp", want: "a"},
		"single pane stays":           {row: "+", steps: "nnp", want: "a"},
		"nothing focusable":           {row: "--", steps: "n", want: ""},
		"empty":                       {steps: "np", want: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fm := managerOf(panes(tt.row))
			for _, s := range tt.steps {
				if s == 'n' {
					fm.Next()
				} else {
					fm.Prev()
				}
			}
			require.Equal(t, tt.want, focusedName(fm))
			if tt.want == "" {
				require.Equal(t, -1, fm.Current())
			}
		})
	}
}

func TestFocusManager_SetFocus(t *testing.T) {
	items := panes("++-")
	fm := managerOf(items)

	fm.SetFocus(1)
	require.Equal(t, "b", focusedName(fm))
	require.True(t, fm.IsFocused(items[1]))

	fm.SetFocus(2)
	require.Equal(t, "b", focusedName(fm), "unfocusable target ignored")
	fm.SetFocus(7)
	require.Equal(t, "b", focusedName(fm), "out of range ignored")
}

func TestFocusManager_Revalidate(t *testing.T) {
	items := panes("+++")
	fm := managerOf(items)
	fm.SetFocus(2)

	fm.Revalidate()
	require.Equal(t, "c", focusedName(fm), "still focusable, kept")

	items[2].enabled = false
	fm.Revalidate()
	require.Equal(t, "a", focusedName(fm))

	items[0].enabled, items[1].enabled = false, false
	fm.Revalidate()
	require.Equal(t, -1, fm.Current())
	require.Nil(t, fm.Focused())
}
