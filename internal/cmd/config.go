package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/gnvim/signalgen/internal/codegen/common"
	"github.com/gnvim/signalgen/internal/configpaths"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a configuration template"`
}

// ConfigInit writes a config file holding the defaults of one command's flags,
// laid out so the matching loader picks them up again.
type ConfigInit struct {
	Command string `arg:"" name:"command" help:"Command to generate config for" enum:"generate,table"`
	Format  string `help:"Output format" enum:"json,yaml,toml" default:"yaml"`
	Output  string `help:"Destination file path (defaults to signalgen.<format> in the current directory)"`
	Force   bool   `help:"Overwrite if the file already exists"`
}

var scaffoldCommands = map[string]reflect.Type{
	"generate": reflect.TypeFor[Generate](),
	"table":    reflect.TypeFor[Table](),
}

func (c *ConfigInit) Run() error {
	format := normalizeFormat(c.Format)
	if format == "" {
		return fmt.Errorf("unsupported format: %s", c.Format)
	}
	cmdType, ok := scaffoldCommands[c.Command]
	if !ok {
		return errors.New("unknown command; expected 'generate' or 'table'")
	}

	data, err := encodeScaffold(format, scaffoldLayout(format, c.Command, scaffoldFlags(cmdType)))
	if err != nil {
		return err
	}

	dest := c.Output
	if dest == "" {
		dest = "signalgen." + format
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

func normalizeFormat(f string) string {
	switch strings.ToLower(f) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return ""
	}
}

// scaffoldLayout places the flags where each loader resolves a subcommand
// flag. kong-yaml looks under the command's key. kong.JSON and kong-toml
// match the bare flag name, and kong-toml rejects keys that are not flags.
func scaffoldLayout(format, command string, flags map[string]any) map[string]any {
	if format == "yaml" {
		return map[string]any{command: flags}
	}
	return flags
}

func encodeScaffold(format string, doc map[string]any) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(doc, "", "  ")
		return append(data, '\n'), err
	case "yaml":
		return yaml.Marshal(doc)
	case "toml":
		return toml.Marshal(doc)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// scaffoldFlags maps the flags of a command struct to their defaults, keyed
// by kong flag name. Positional arguments are per-invocation and left out, as
// are flags without a usable default: an empty string would be applied as a
// real value, and a "path" flag would expand it to the working directory.
func scaffoldFlags(t reflect.Type) map[string]any {
	out := map[string]any{}
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if _, ok := f.Tag.Lookup("arg"); ok || f.Tag.Get("kong") == "-" {
			continue
		}
		val, ok := flagDefault(f.Type, f.Tag.Get("default"))
		if !ok {
			continue
		}
		key := f.Tag.Get("name")
		if key == "" {
			key = common.ToKebabCase(f.Name)
		}
		out[key] = val
	}
	return out
}

func flagDefault(t reflect.Type, def string) (any, bool) {
	switch t.Kind() {
	case reflect.String:
		return def, def != ""
	case reflect.Bool:
		b, err := strconv.ParseBool(def)
		return b && err == nil, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if def == "" {
			return int64(0), true
		}
		n, err := strconv.ParseInt(def, 10, 64)
		return n, err == nil
	default:
		return nil, false
	}
}
