// Package spec holds the event table that drives signal generation: the
// argument type vocabulary, EventSpec rows and the ordered Table.
package spec

import (
	"fmt"
	"slices"

	"github.com/gnvim/signalgen/internal/codegen/common"
	"github.com/gnvim/signalgen/internal/codegen/generr"
)

// EventSpec describes one notification: its wire name and the ordered types
// of its arguments. Args is either exactly [Void] or a non-empty list without
// Void.
type EventSpec struct {
	Name string
	Args []TypeToken
}

// Event builds an EventSpec, copying args so the row cannot be changed
// through the caller's slice.
func Event(name string, args ...TypeToken) EventSpec {
	return EventSpec{Name: name, Args: slices.Clone(args)}
}

// Params returns the declared parameter types; nil for a void event.
func (e EventSpec) Params() []TypeToken {
	if e.IsVoid() {
		return nil
	}
	return slices.Clone(e.Args)
}

// Arity is the number of positional arguments the event carries.
func (e EventSpec) Arity() int {
	if e.IsVoid() {
		return 0
	}
	return len(e.Args)
}

func (e EventSpec) IsVoid() bool {
	return len(e.Args) == 1 && e.Args[0] == Void
}

// Validate checks the row invariants.
func (e EventSpec) Validate() error {
	row := FormatEventSpec(e)
	if e.Name == "" {
		return generr.ErrMalformedSpec(row, "empty event name")
	}
	if !common.IsIdentifier(e.Name) {
		return generr.ErrMalformedSpec(row, fmt.Sprintf("event name %q is not an identifier", e.Name))
	}
	if len(e.Args) == 0 {
		return generr.ErrMalformedSpec(row, "no argument tokens, use void for zero arguments")
	}
	if e.IsVoid() {
		return nil
	}
	for i, a := range e.Args {
		switch a {
		case Integer, Text, OpaqueValue, OpaqueValueArray:
		case Void:
			return generr.ErrMalformedSpec(row, "void must be the only argument token")
		default:
			return generr.ErrMalformedSpec(row, fmt.Sprintf("argument %d has unknown type %q", i+1, a))
		}
	}
	return nil
}

// Table is an ordered list of events; output order follows table order.
type Table []EventSpec

// Validate checks every row and rejects duplicate names.
func (t Table) Validate() error {
	seen := make(map[string]int, len(t))
	for i, e := range t {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		if prev, dup := seen[e.Name]; dup {
			return fmt.Errorf("row %d: %w", i+1,
				generr.ErrMalformedSpec(FormatEventSpec(e), fmt.Sprintf("duplicate event name, first defined in row %d", prev+1)))
		}
		seen[e.Name] = i
	}
	return nil
}

// Names returns the event names in table order.
func (t Table) Names() []string {
	names := make([]string, len(t))
	for i, e := range t {
		names[i] = e.Name
	}
	return names
}
