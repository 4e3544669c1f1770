package meta

import (
	"slices"
	"strings"
)

// Options holds the naming conventions shared between the generator
// orchestrator and the language emitters.
type Options struct {
	Prefix  string // callback identifier prefix, e.g. "nvim_"
	MapName string // adapter map receiving registrations
	Indent  string // one indentation level
}

func DefaultOptions() Options {
	return Options{
		Prefix:  "nvim_",
		MapName: "redraw_adapters_",
		Indent:  "    ",
	}
}

// Block is the generated text, one entry per event in table order. A Block
// is a value: Append returns a new Block and never touches the receiver.
type Block struct {
	entries []string
}

func NewBlock(entries ...string) Block {
	return Block{entries: slices.Clone(entries)}
}

// Append returns a Block with entry added after the existing entries.
func (b Block) Append(entry string) Block {
	return Block{entries: append(slices.Clip(b.entries), entry)}
}

// Len is the number of entries, which equals the number of events rendered.
func (b Block) Len() int { return len(b.entries) }

func (b Block) Entries() []string { return slices.Clone(b.entries) }

// String joins the entries, terminating each with a newline. An empty block
// renders as "".
func (b Block) String() string {
	var sb strings.Builder
	for _, e := range b.entries {
		sb.WriteString(e)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b Block) Bytes() []byte { return []byte(b.String()) }
