package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockAppendDoesNotMutate(t *testing.T) {
	base := NewBlock("a", "b")
	left := base.Append("c")
	right := base.Append("d")

	assert.Equal(t, []string{"a", "b"}, base.Entries())
	assert.Equal(t, []string{"a", "b", "c"}, left.Entries())
	assert.Equal(t, []string{"a", "b", "d"}, right.Entries())
}

func TestBlockString(t *testing.T) {
	var empty Block
	assert.Equal(t, "", empty.String())
	assert.Equal(t, 0, empty.Len())

	b := empty.Append("one").Append("two\nlines")
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, "one\ntwo\nlines\n", b.String())
	assert.Equal(t, []byte("one\ntwo\nlines\n"), b.Bytes())
}

func TestNewBlockCopiesEntries(t *testing.T) {
	entries := []string{"x"}
	b := NewBlock(entries...)
	entries[0] = "y"
	assert.Equal(t, []string{"x"}, b.Entries())
}
