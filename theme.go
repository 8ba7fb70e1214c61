package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette colors. Each adapts to the terminal background.
var (
	ColorBorder      = lipgloss.AdaptiveColor{Light: "#aaaaaa", Dark: "236"}
	ColorFocusBorder = lipgloss.AdaptiveColor{Light: "0", Dark: "238"}
	ColorDim         = lipgloss.AdaptiveColor{Light: "245", Dark: "240"}
	ColorAccent      = lipgloss.AdaptiveColor{Light: "6", Dark: "6"}
	ColorTitle       = lipgloss.AdaptiveColor{Light: "4", Dark: "12"}
	ColorBarBg       = lipgloss.AdaptiveColor{Light: "254", Dark: "235"}
)

// Theme holds the resolved styles widgets draw with. It is passed down
// through the render context for the duration of one run.
type Theme struct {
	Dark bool

	Border        BorderStyle
	Text          Style
	Dim           Style
	Title         Style
	BorderNormal  Style
	BorderFocused Style
	// Highlight marks the selected row; HighlightFocused when its widget
	// has focus.
	Highlight        Style
	HighlightFocused Style
	Bar              Style
	BarAccent        Style
	ShortcutKey      Style
	ShortcutLabel    Style
	Cursor           Style
}

// NewTheme resolves the palette for a dark or light background.
func NewTheme(dark bool) Theme {
	text := lipgloss.NewStyle()
	accent := lipgloss.NewStyle().Foreground(ColorAccent)
	bar := lipgloss.NewStyle().Background(ColorBarBg)

	return Theme{
		Dark:             dark,
		Border:           BorderRounded,
		Text:             StyleFrom(text, dark),
		Dim:              StyleFrom(text.Foreground(ColorDim), dark),
		Title:            StyleFrom(text.Foreground(ColorTitle).Bold(true), dark),
		BorderNormal:     StyleFrom(text.Foreground(ColorBorder), dark),
		BorderFocused:    StyleFrom(text.Foreground(ColorFocusBorder), dark),
		Highlight:        StyleFrom(accent.Faint(true).Reverse(true), dark),
		HighlightFocused: StyleFrom(accent.Reverse(true), dark),
		Bar:              StyleFrom(bar, dark),
		BarAccent:        StyleFrom(bar.Foreground(ColorAccent).Bold(true), dark),
		ShortcutKey:      StyleFrom(text, dark),
		ShortcutLabel:    StyleFrom(text.Foreground(ColorDim), dark),
		Cursor:           StyleFrom(text.Reverse(true), dark),
	}
}

// DefaultTheme queries the terminal background once and resolves the
// palette for it.
func DefaultTheme() Theme {
	return NewTheme(lipgloss.HasDarkBackground())
}

// BorderStyleFor returns the border color for a focused or unfocused
// container.
func (t Theme) BorderStyleFor(focused bool) Style {
	if focused {
		return t.BorderFocused
	}
	return t.BorderNormal
}

// HighlightFor returns the selected row style for a focused or unfocused
// widget.
func (t Theme) HighlightFor(focused bool) Style {
	if focused {
		return t.HighlightFocused
	}
	return t.Highlight
}

// StyleFrom converts a lipgloss style into a cell Style. Only colors and
// text attributes carry over; padding, margins and borders do not.
func StyleFrom(ls lipgloss.Style, dark bool) Style {
	s := Style{
		Fg: ColorFrom(ls.GetForeground(), dark),
		Bg: ColorFrom(ls.GetBackground(), dark),
	}
	attrs := []struct {
		set  bool
		attr Attr
	}{
		{ls.GetBold(), AttrBold},
		{ls.GetFaint(), AttrDim},
		{ls.GetItalic(), AttrItalic},
		{ls.GetUnderline(), AttrUnderline},
		{ls.GetBlink(), AttrBlink},
		{ls.GetReverse(), AttrReverse},
		{ls.GetStrikethrough(), AttrStrikethrough},
	}
	for _, a := range attrs {
		if a.set {
			s.Attrs |= a.attr
		}
	}
	return s
}

// ColorFrom converts a lipgloss color into a cell Color.
func ColorFrom(c lipgloss.TerminalColor, dark bool) Color {
	switch v := c.(type) {
	case nil, lipgloss.NoColor:
		return DefaultColor()
	case lipgloss.Color:
		return parseColorSpec(string(v))
	case lipgloss.ANSIColor:
		return ANSIColor(uint8(v))
	case lipgloss.AdaptiveColor:
		if dark {
			return parseColorSpec(v.Dark)
		}
		return parseColorSpec(v.Light)
	default:
		r, g, b, _ := c.RGBA()
		return RGBColor(uint8(r>>8), uint8(g>>8), uint8(b>>8))
	}
}

// parseColorSpec accepts "#rrggbb" or an ANSI index.
func parseColorSpec(spec string) Color {
	if strings.HasPrefix(spec, "#") {
		if c, err := HexColor(spec); err == nil {
			return c
		}
		return DefaultColor()
	}
	n, err := strconv.ParseUint(spec, 10, 8)
	if err != nil {
		return DefaultColor()
	}
	return ANSIColor(uint8(n))
}
