package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnvim/signalgen/internal/cmd"
)

var loaders = map[string]kong.ConfigurationLoader{
	"json": kong.JSON,
	"yaml": kongyaml.Loader,
	"toml": kongtoml.Loader,
}

// scaffold writes a config init file for command and applies replace to it.
func scaffold(t *testing.T, command, format string, replace ...string) string {
	t.Helper()
	dest := filepath.Join(t.TempDir(), "signalgen."+format)
	require.NoError(t, (&cmd.ConfigInit{Command: command, Format: format, Output: dest}).Run())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	edited := strings.NewReplacer(replace...).Replace(string(data))
	require.NotEqual(t, string(data), edited, "edit did not match the scaffold:\n%s", data)
	require.NoError(t, os.WriteFile(dest, []byte(edited), 0o644))
	return dest
}

func parseWithConfig(t *testing.T, format, path string, args ...string) *CLI {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("signalgen"),
		kong.Vars{"version": "0.0.1-test"},
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
		kong.Configuration(loaders[format], path),
	)
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	return &cli
}

func TestGenerateScaffoldIsLoaded(t *testing.T) {
	for _, format := range []string{"json", "yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			path := scaffold(t, "generate", format, "nvim_", "ui_")
			cli := parseWithConfig(t, format, path, "generate", "def", "/src/nvim-bridge.h")

			assert.Equal(t, "ui_", cli.Generate.Prefix)
			assert.Equal(t, "#define GNVIM_SIGNALS", cli.Generate.Marker)
			assert.Equal(t, "redraw_adapters_", cli.Generate.Map)
			assert.Equal(t, 4, cli.Generate.Indent)
			assert.Equal(t, "", cli.Generate.Table, "an unset table must stay on the built-in table")
		})
	}
}

func TestTableScaffoldIsLoaded(t *testing.T) {
	for _, format := range []string{"json", "yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			path := scaffold(t, "table", format, "encoding", "toml")
			cli := parseWithConfig(t, format, path, "table")

			assert.Equal(t, "toml", cli.Table.Format)
			assert.Equal(t, "", cli.Table.File)
		})
	}
}

func TestFlagsOverrideScaffold(t *testing.T) {
	for _, format := range []string{"json", "yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			path := scaffold(t, "generate", format, "nvim_", "ui_")
			cli := parseWithConfig(t, format, path, "generate", "reg", "/src/map.cpp", "--prefix=gui_")

			assert.Equal(t, "gui_", cli.Generate.Prefix)
		})
	}
}
