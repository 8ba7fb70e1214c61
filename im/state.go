package im

// ID identifies a widget across frames. It is the path of container keys and
// call positions leading to the widget, e.g. "0/1/list".
type ID string

// Child returns the ID of a child scope.
func (id ID) Child(part string) ID {
	if id == "" {
		return ID(part)
	}
	return id + "/" + ID(part)
}

// WidgetState is the UI-local state a widget keeps between frames: scroll
// position, the size it was last drawn at, focus and cursor. Application
// data never lives here.
type WidgetState struct {
	// Offset is the first visible row.
	Offset int
	// Column is the first visible column of horizontally scrolled content.
	Column int
	// Height and Width are the visible size measured on the last frame.
	Height int
	Width  int
	// Focused reports whether the widget had focus on the last frame.
	Focused bool
	// Cursor is the rune index of a text cursor.
	Cursor int
	// Selected is the selected row of a list, or the focused child of panes.
	Selected int
	// Text is the content of an edit field.
	Text string
	// Seen is the frame the widget was last drawn on.
	Seen uint64

	kind string
}

// DefaultMaxAge is how many frames an undrawn widget's state is kept. It
// is long enough for a list hidden behind a popup to keep its selection
// and scroll position; frames are only drawn when something changed.
const DefaultMaxAge = 120

// States persists WidgetState by ID. Entries not drawn for more than
// MaxAge frames are pruned, so a widget that leaves the tree for longer
// than that starts fresh when it comes back. Use SetMaxAge to forget
// sooner or later. A States is used by one frontend loop and is not safe
// for concurrent use.
type States struct {
	entries map[ID]*WidgetState
	frame   uint64
	maxAge  uint64
}

// NewStates creates an empty table.
func NewStates() *States {
	return &States{entries: make(map[ID]*WidgetState), maxAge: DefaultMaxAge}
}

// SetMaxAge changes how many frames unseen entries survive. Zero keeps
// only the widgets drawn on the latest frame.
func (s *States) SetMaxAge(frames uint64) {
	s.maxAge = frames
}

// Get returns a copy of the state stored for id.
func (s *States) Get(id ID) (WidgetState, bool) {
	st, ok := s.entries[id]
	if !ok {
		return WidgetState{}, false
	}
	return *st, true
}

// Len returns the number of stored entries.
func (s *States) Len() int {
	return len(s.entries)
}

// Frame returns the number of frames begun.
func (s *States) Frame() uint64 {
	return s.frame
}

func (s *States) begin() {
	s.frame++
}

// use returns the entry for id, creating it if needed, and marks it seen.
// An entry left by a different kind of widget is replaced. fresh is true
// when the widget had no state from earlier frames.
func (s *States) use(id ID, kind string) (st *WidgetState, fresh bool) {
	st, ok := s.entries[id]
	if !ok || st.kind != kind {
		st = &WidgetState{kind: kind}
		s.entries[id] = st
		ok = false
	}
	st.Seen = s.frame
	return st, !ok
}

// end prunes entries that have not been seen recently and returns how many
// were removed.
func (s *States) end() int {
	pruned := 0
	for id, st := range s.entries {
		if s.frame-st.Seen > s.maxAge {
			delete(s.entries, id)
			pruned++
		}
	}
	return pruned
}
