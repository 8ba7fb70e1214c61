package tui

// Attr is a set of text attributes.
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrStrikethrough
)

// sgrAttrs maps every attribute to its SGR parameter, in output order.
var sgrAttrs = [...]struct {
	attr Attr
	code string
}{
	{AttrBold, "1"},
	{AttrDim, "2"},
	{AttrItalic, "3"},
	{AttrUnderline, "4"},
	{AttrBlink, "5"},
	{AttrReverse, "7"},
	{AttrStrikethrough, "9"},
}

// Style is the look of a cell. Widgets get their styles from the Theme,
// which derives them from lipgloss styles; the zero Style is the terminal
// default.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// NewStyle returns the default style.
func NewStyle() Style {
	return Style{}
}

// Foreground returns a copy of s with foreground c.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a copy of s with background c.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// Equal reports whether both styles draw the same.
func (s Style) Equal(other Style) bool {
	return s.Attrs == other.Attrs && s.Fg.Equal(other.Fg) && s.Bg.Equal(other.Bg)
}

// HasAttr reports whether every attribute in a is set.
func (s Style) HasAttr(a Attr) bool {
	return s.Attrs&a == a
}
