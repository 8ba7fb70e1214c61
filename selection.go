package tui

import (
	"encoding/json"
	"fmt"
	"io"
)

// Selection is the result handed back to the calling CLI by selector
// applications. Operation is nil when no operation was chosen.
type Selection struct {
	Operation *string  `json:"operation"`
	IDs       []string `json:"ids"`
	Args      []string `json:"args"`
}

// NewSelection returns a Selection for op (empty meaning none) and ids.
func NewSelection(op string, ids ...string) Selection {
	sel := Selection{IDs: ids}
	if op != "" {
		sel.Operation = &op
	}
	return sel
}

// WithArgs returns a copy of s carrying args.
func (s Selection) WithArgs(args ...string) Selection {
	s.Args = args
	return s
}

// WriteSelection writes s as a single JSON line. Nil lists are written as
// empty arrays.
func WriteSelection(w io.Writer, s Selection) error {
	if s.IDs == nil {
		s.IDs = []string{}
	}
	if s.Args == nil {
		s.Args = []string{}
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode selection: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write selection: %w", err)
	}
	return nil
}
