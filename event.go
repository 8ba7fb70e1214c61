package tui

// Event is the base interface for all terminal events.
// Use type switch to handle specific event types.
type Event interface {
	// isEvent is a marker method to prevent external implementations.
	isEvent()
}

// KeyEvent represents a keyboard input event.
type KeyEvent struct {
	// Key is the key pressed. For printable characters, this is KeyRune.
	Key Key

	// Rune is the character for KeyRune events. Zero for special keys.
	Rune rune

	// Mod contains modifier flags (Ctrl, Alt, Shift).
	Mod Modifier
}

func (KeyEvent) isEvent() {}

// Char returns a KeyEvent for the printable rune r.
func Char(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r}
}

// Is checks if the event matches a specific key with optional modifiers.
// Example: event.Is(KeyEnter) or event.Is(KeyRune, ModCtrl)
func (e KeyEvent) Is(key Key, mods ...Modifier) bool {
	if e.Key != key {
		return false
	}
	if len(mods) == 0 {
		return true
	}
	var combined Modifier
	for _, m := range mods {
		combined |= m
	}
	return e.Mod == combined
}

// IsChar reports whether the event is the unmodified rune r.
func (e KeyEvent) IsChar(r rune) bool {
	return e.Key == KeyRune && e.Rune == r && e.Mod&(ModCtrl|ModAlt) == 0
}

// String returns the key as shown to users, e.g. "q", "Alt+x" or "Enter".
func (e KeyEvent) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
	}
	if e.Mod&(ModCtrl|ModAlt) != 0 {
		return (e.Mod &^ ModShift).String() + "+" + name
	}
	return name
}

// ResizeEvent is emitted when the terminal is resized.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) isEvent() {}

// InterruptEvent is emitted for SIGINT and SIGTERM.
type InterruptEvent struct {
	Signal string
}

func (InterruptEvent) isEvent() {}
