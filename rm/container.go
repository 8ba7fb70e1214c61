package rm

import (
	tui "github.com/radicle-dev/radicle-tui"
)

// ContainerProps configure a Container.
type ContainerProps struct {
	Title  string
	Footer string
	// HideFooter drops the footer row even when Footer is set.
	HideFooter bool
}

// Container draws a box with a title and an optional footer line around
// its content widget.
type Container[S, M any] struct {
	props    ContainerProps
	content  Widget[S, M]
	onUpdate func(S) ContainerProps
}

// NewContainer wraps content.
func NewContainer[S, M any](content Widget[S, M], props ContainerProps) *Container[S, M] {
	return &Container[S, M]{props: props, content: content}
}

// OnUpdate derives the container's props from every state snapshot.
func (c *Container[S, M]) OnUpdate(fn func(S) ContainerProps) *Container[S, M] {
	c.onUpdate = fn
	return c
}

// IsFocusable delegates to the content.
func (c *Container[S, M]) IsFocusable() bool {
	f, ok := c.content.(Focusable)
	return ok && f.IsFocusable()
}

func (c *Container[S, M]) Update(state S) {
	if c.onUpdate != nil {
		c.props = c.onUpdate(state)
	}
	c.content.Update(state)
}

func (c *Container[S, M]) HandleKey(ke tui.KeyEvent, send func(M)) bool {
	return c.content.HandleKey(ke, send)
}

func (c *Container[S, M]) Render(buf *tui.Buffer, props RenderProps) {
	area := props.Area
	theme := props.Theme
	style := theme.BorderStyleFor(props.Focus)

	tui.DrawBoxWithTitle(buf, area, theme.Border, c.props.Title, style)
	inner := area.InsetUniform(1)

	if !c.props.HideFooter && c.props.Footer != "" && inner.Height >= 3 {
		footer := inner.Row(inner.Height - 1)
		tui.DrawDivider(buf, area, footer.Y-1, theme.Border, style)
		buf.SetLine(footer, c.props.Footer, theme.Dim)
		inner = inner.Inset(0, 0, 2, 0)
	}
	c.content.Render(buf, props.WithArea(inner))
}

// Panes lays out children with a fixed layout and moves focus between the
// focusable ones with Tab and Shift-Tab, wrapping at either end. Keys go to
// the focused child first.
type Panes[S, M any] struct {
	children []Widget[S, M]
	dir      tui.Direction
	sizes    []tui.Constraint
	focus    *FocusManager
	slots    []int // child index per registered focus item
}

// NewPanes creates panes laid out along dir. sizes holds one constraint per
// child; missing ones fill.
func NewPanes[S, M any](dir tui.Direction, sizes []tui.Constraint, children ...Widget[S, M]) *Panes[S, M] {
	p := &Panes[S, M]{
		children: children,
		dir:      dir,
		sizes:    sizes,
		focus:    NewFocusManager(),
	}
	for i, child := range children {
		if f, ok := child.(Focusable); ok {
			p.focus.Register(f)
			p.slots = append(p.slots, i)
		}
	}
	return p
}

// Focus returns the focus manager of the panes.
func (p *Panes[S, M]) Focus() *FocusManager {
	return p.focus
}

// FocusedChild returns the index of the child holding focus, or -1.
func (p *Panes[S, M]) FocusedChild() int {
	cur := p.focus.Current()
	if cur < 0 {
		return -1
	}
	return p.slots[cur]
}

// IsFocusable reports whether any child can take focus.
func (p *Panes[S, M]) IsFocusable() bool {
	for _, child := range p.children {
		if f, ok := child.(Focusable); ok && f.IsFocusable() {
			return true
		}
	}
	return false
}

func (p *Panes[S, M]) Update(state S) {
	for _, child := range p.children {
		child.Update(state)
	}
	p.focus.Revalidate()
}

func (p *Panes[S, M]) HandleKey(ke tui.KeyEvent, send func(M)) bool {
	// The innermost panes on the focus path move focus.
	if i := p.FocusedChild(); i >= 0 && p.children[i].HandleKey(ke, send) {
		return true
	}
	switch ke.Key {
	case tui.KeyTab:
		p.focus.Next()
		return true
	case tui.KeyBackTab:
		p.focus.Prev()
		return true
	}
	return false
}

func (p *Panes[S, M]) Render(buf *tui.Buffer, props RenderProps) {
	sizes := make([]tui.Constraint, len(p.children))
	for i := range sizes {
		sizes[i] = tui.Fill(1)
		if i < len(p.sizes) {
			sizes[i] = p.sizes[i]
		}
	}
	areas := tui.Split(props.Area, p.dir, sizes...)
	focused := p.FocusedChild()
	for i, child := range p.children {
		child.Render(buf, RenderProps{
			Area:  areas[i],
			Focus: props.Focus && i == focused,
			Theme: props.Theme,
		})
	}
}
