package tui

// KeyMap is an ordered list of key bindings.
type KeyMap []KeyBinding

// KeyBinding associates a key pattern with a handler.
type KeyBinding struct {
	Pattern KeyPattern
	Handler func(KeyEvent)
	Stop    bool   // If true, prevent later handlers from firing for this key
	Help    string // Short description shown in shortcut bars
}

// KeyPattern identifies which key events match a binding.
type KeyPattern struct {
	Key           Key      // Specific key (KeyCtrlB, KeyEscape, etc.), or 0
	Rune          rune     // Specific rune, or 0
	AnyRune       bool     // Match any printable character
	Mod           Modifier // Required modifiers (when non-zero, event must have exactly these mods)
	RequireNoMods bool     // When true, event must have no modifiers (Mod field is ignored)
}

// KeyOf returns a pattern matching key.
func KeyOf(key Key) KeyPattern {
	return KeyPattern{Key: key}
}

// RuneOf returns a pattern matching the unmodified rune r.
func RuneOf(r rune) KeyPattern {
	return KeyPattern{Rune: r, RequireNoMods: true}
}

// AnyRune returns a pattern matching every printable character.
func AnyRune() KeyPattern {
	return KeyPattern{AnyRune: true}
}

// Matches reports whether ke matches the pattern.
func (p KeyPattern) Matches(ke KeyEvent) bool {
	if p.RequireNoMods && ke.Mod&(ModCtrl|ModAlt) != 0 {
		return false
	}
	if p.Mod != 0 && ke.Mod != p.Mod {
		return false
	}

	if p.AnyRune && ke.Key == KeyRune {
		return true
	}
	if p.Rune != 0 && ke.Rune == p.Rune && ke.Key == KeyRune {
		return true
	}
	if p.Key != 0 && ke.Key == p.Key {
		return true
	}
	return false
}

// String returns the pattern as shown in shortcut bars.
func (p KeyPattern) String() string {
	switch {
	case p.AnyRune:
		return "…"
	case p.Rune != 0:
		return KeyEvent{Key: KeyRune, Rune: p.Rune, Mod: p.Mod}.String()
	default:
		return KeyEvent{Key: p.Key, Mod: p.Mod}.String()
	}
}

// Matcher returns a predicate for Context.Claim matching any of patterns.
func Matcher(patterns ...KeyPattern) func(KeyEvent) bool {
	return func(ke KeyEvent) bool {
		for _, p := range patterns {
			if p.Matches(ke) {
				return true
			}
		}
		return false
	}
}

// OnKey creates a broadcast binding for a specific key.
// Other handlers for the same key will also fire.
func OnKey(key Key, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyOf(key), Handler: handler}
}

// OnKeyStop creates a stop-propagation binding for a specific key.
func OnKeyStop(key Key, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyOf(key), Handler: handler, Stop: true}
}

// OnRune creates a broadcast binding for a specific printable character.
func OnRune(r rune, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: RuneOf(r), Handler: handler}
}

// OnRuneStop creates a stop-propagation binding for a specific printable character.
func OnRuneStop(r rune, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: RuneOf(r), Handler: handler, Stop: true}
}

// OnRunesStop creates a stop-propagation binding for all printable characters.
// Use this for text inputs that need exclusive access to character keys.
func OnRunesStop(handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: AnyRune(), Handler: handler, Stop: true}
}

// WithHelp returns a copy of b with a help text.
func (b KeyBinding) WithHelp(help string) KeyBinding {
	b.Help = help
	return b
}

// Dispatch calls every matching handler in order until one with Stop set
// has fired. It reports whether any handler matched.
func (km KeyMap) Dispatch(ke KeyEvent) bool {
	matched := false
	for _, b := range km {
		if !b.Pattern.Matches(ke) {
			continue
		}
		matched = true
		if b.Handler != nil {
			b.Handler(ke)
		}
		if b.Stop {
			break
		}
	}
	return matched
}
