package rm

import (
	"strings"

	tui "github.com/radicle-dev/radicle-tui"
)

// LabelProps configure a Label.
type LabelProps struct {
	Text string
	// Style replaces the theme's text style when set.
	Style *tui.Style
}

// Label draws static text, one line per row.
type Label[S, M any] struct {
	props    LabelProps
	onUpdate func(S) LabelProps
}

// NewLabel creates a label with fixed props.
func NewLabel[S, M any](props LabelProps) *Label[S, M] {
	return &Label[S, M]{props: props}
}

// OnUpdate derives the label's props from every state snapshot.
func (l *Label[S, M]) OnUpdate(fn func(S) LabelProps) *Label[S, M] {
	l.onUpdate = fn
	return l
}

// Props returns the current props.
func (l *Label[S, M]) Props() LabelProps {
	return l.props
}

func (l *Label[S, M]) Update(state S) {
	if l.onUpdate != nil {
		l.props = l.onUpdate(state)
	}
}

func (l *Label[S, M]) HandleKey(tui.KeyEvent, func(M)) bool {
	return false
}

func (l *Label[S, M]) Render(buf *tui.Buffer, props RenderProps) {
	style := props.Theme.Text
	if l.props.Style != nil {
		style = *l.props.Style
	}
	for i, line := range strings.Split(l.props.Text, "\n") {
		row := props.Area.Row(i)
		if row.IsEmpty() {
			return
		}
		buf.SetLine(row, line, style)
	}
}
