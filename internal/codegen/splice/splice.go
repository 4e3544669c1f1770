// Package splice injects a generated block into a template at a marker line.
package splice

import (
	"bytes"
	"strings"

	"github.com/gnvim/signalgen/internal/codegen/generr"
	"github.com/gnvim/signalgen/internal/codegen/meta"
)

// DefaultMarker is the template line replaced by the generated block.
const DefaultMarker = "#define GNVIM_SIGNALS"

// Substitute replaces the single line equal to marker with block. The whole
// line goes, including its newline; every other byte of tpl is kept. The
// block takes the marker line's ending, so a CRLF template stays CRLF.
func Substitute(tpl []byte, marker string, block meta.Block) ([]byte, error) {
	start, end, err := Locate(tpl, marker)
	if err != nil {
		return nil, err
	}
	insert := block.Bytes()
	if bytes.HasSuffix(bytes.TrimSuffix(tpl[start:end], []byte("\n")), []byte("\r")) {
		insert = bytes.ReplaceAll(insert, []byte("\n"), []byte("\r\n"))
	}

	out := make([]byte, 0, len(tpl)-(end-start)+len(insert))
	out = append(out, tpl[:start]...)
	out = append(out, insert...)
	out = append(out, tpl[end:]...)
	return out, nil
}

// Locate returns the byte range [start, end) of the marker line, newline
// included. A trailing "\r" is tolerated so CRLF templates still match.
func Locate(tpl []byte, marker string) (start, end int, err error) {
	if marker == "" || strings.ContainsAny(marker, "\r\n") {
		return 0, 0, &generr.Error{Kind: generr.KindMarkerNotFound, Subject: marker, Detail: "marker must be a single non-empty line"}
	}

	want := []byte(marker)
	count := 0
	for off := 0; off < len(tpl); {
		lineEnd, next := len(tpl), len(tpl)
		if nl := bytes.IndexByte(tpl[off:], '\n'); nl >= 0 {
			lineEnd = off + nl
			next = lineEnd + 1
		}
		line := bytes.TrimSuffix(tpl[off:lineEnd], []byte("\r"))
		if bytes.Equal(line, want) {
			count++
			if count == 1 {
				start, end = off, next
			}
		}
		off = next
	}

	switch count {
	case 0:
		return 0, 0, generr.ErrMarkerNotFound(marker)
	case 1:
		return start, end, nil
	default:
		return 0, 0, generr.ErrMarkerAmbiguous(marker, count)
	}
}
