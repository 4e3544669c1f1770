package spec

import (
	"fmt"
	"strings"

	"github.com/gnvim/signalgen/internal/codegen/generr"
)

const fieldSep = ", "

// ParseEventSpec decodes the compact row encoding "name, type1, type2" or
// "name, void". Aliased type spellings are normalised to canonical tokens.
func ParseEventSpec(row string) (EventSpec, error) {
	fields := strings.Split(row, fieldSep)
	name := fields[0]
	if len(fields) < 2 {
		return EventSpec{}, generr.ErrMalformedSpec(row, "missing argument tokens, use void for zero arguments")
	}

	args := make([]TypeToken, 0, len(fields)-1)
	for i, f := range fields[1:] {
		if f == "" {
			return EventSpec{}, generr.ErrMalformedSpec(row, fmt.Sprintf("argument %d is empty", i+1))
		}
		t, ok := ParseTypeToken(f)
		if !ok {
			return EventSpec{}, generr.ErrMalformedSpec(row, fmt.Sprintf("argument %d has unknown type %q", i+1, f))
		}
		args = append(args, t)
	}

	e := EventSpec{Name: name, Args: args}
	if err := e.Validate(); err != nil {
		return EventSpec{}, err
	}
	return e, nil
}

// FormatEventSpec is the inverse of ParseEventSpec.
func FormatEventSpec(e EventSpec) string {
	var b strings.Builder
	b.WriteString(e.Name)
	for _, a := range e.Args {
		b.WriteString(fieldSep)
		b.WriteString(string(a))
	}
	return b.String()
}

// ParseTable decodes rows in order and validates the resulting table.
func ParseTable(rows []string) (Table, error) {
	t := make(Table, 0, len(rows))
	for i, row := range rows {
		e, err := ParseEventSpec(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		t = append(t, e)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Rows encodes every event of t in order.
func (t Table) Rows() []string {
	rows := make([]string, len(t))
	for i, e := range t {
		rows[i] = FormatEventSpec(e)
	}
	return rows
}
