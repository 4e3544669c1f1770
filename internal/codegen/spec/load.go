package spec

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/gnvim/signalgen/internal/codegen/generr"
)

// Table file formats. FormatEncoding is one compact row per line.
const (
	FormatEncoding = "encoding"
	FormatYAML     = "yaml"
	FormatTOML     = "toml"
	FormatJSON     = "json"
)

// tableFile is the on-disk shape of an external event table:
//
//	events:
//	  - resize, integer, integer
//	  - clear, void
type tableFile struct {
	Events []string `json:"events" yaml:"events" toml:"events"`
}

// FormatFromPath picks a table format from the file extension.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatEncoding
	}
}

// LoadTable reads and validates an external event table.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, generr.ErrArtifactIO(path, err)
	}
	t, err := DecodeTable(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", path, err)
	}
	return t, nil
}

// DecodeTable parses table data in the given format.
func DecodeTable(data []byte, format string) (Table, error) {
	var f tableFile
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	case FormatTOML:
		err = toml.Unmarshal(data, &f)
	case FormatJSON:
		err = json.Unmarshal(data, &f)
	case FormatEncoding:
		f.Events = encodedRows(string(data))
	default:
		return nil, fmt.Errorf("unsupported table format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s table: %w", format, err)
	}
	return ParseTable(f.Events)
}

// MarshalTable renders t in the given format. DecodeTable reads it back.
func MarshalTable(t Table, format string) ([]byte, error) {
	f := tableFile{Events: t.Rows()}
	switch format {
	case FormatYAML:
		return yaml.Marshal(f)
	case FormatTOML:
		return toml.Marshal(f)
	case FormatJSON:
		data, err := json.MarshalIndent(f, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatEncoding:
		var b strings.Builder
		for _, row := range f.Events {
			b.WriteString(row)
			b.WriteByte('\n')
		}
		return []byte(b.String()), nil
	default:
		return nil, fmt.Errorf("unsupported table format: %s", format)
	}
}

// encodedRows splits a plain row listing, skipping blank lines and # comments.
func encodedRows(s string) []string {
	var rows []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, line)
	}
	return rows
}
