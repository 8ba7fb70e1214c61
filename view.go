package tui

// View draws one frame from a context. Both the immediate-mode package im
// and the retained-mode package rm produce Views, so either can drive an
// App.
type View[S, M any] interface {
	Draw(ctx *Context[S, M])
}

// ViewFunc adapts a function to the View interface.
type ViewFunc[S, M any] func(ctx *Context[S, M])

// Draw calls f(ctx).
func (f ViewFunc[S, M]) Draw(ctx *Context[S, M]) {
	f(ctx)
}
