package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gnvim/signalgen/internal/codegen/common"
	"github.com/gnvim/signalgen/internal/codegen/generator"
	"github.com/gnvim/signalgen/internal/codegen/meta"
	"github.com/gnvim/signalgen/internal/codegen/spec"
	"github.com/gnvim/signalgen/internal/codegen/splice"
)

type Generate struct {
	Mode     string `arg:"" help:"Mode selector: 'def...' declares the signals, 'reg...' registers their adapters"`
	Template string `arg:"" help:"Template path. Without OUTPUT, TEMPLATE.in is read and TEMPLATE is written" type:"path"`
	Output   string `arg:"" optional:"" help:"Destination path" type:"path"`

	Table  string `help:"Event table file (yaml, toml, json or one row per line); defaults to the built-in redraw table" type:"path" env:"SIGNALGEN_TABLE"`
	Marker string `help:"Template line replaced by the generated block" default:"#define GNVIM_SIGNALS" env:"SIGNALGEN_MARKER"`
	Prefix string `help:"Signal identifier prefix" default:"nvim_" env:"SIGNALGEN_PREFIX"`
	Map    string `help:"Adapter map receiving registrations" default:"redraw_adapters_" env:"SIGNALGEN_MAP"`
	Indent int    `help:"Spaces per indentation level" default:"4" env:"SIGNALGEN_INDENT"`
	Check  bool   `help:"Fail if the output is out of date instead of writing it" env:"SIGNALGEN_CHECK"`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return g.Execute(ctx, logger)
}

func (g *Generate) Execute(ctx context.Context, logger *slog.Logger) error {
	mode, err := generator.ParseMode(g.Mode)
	if err != nil {
		return err
	}
	opts, err := g.options()
	if err != nil {
		return err
	}
	table, err := loadTable(g.Table, logger)
	if err != nil {
		return err
	}

	in, out := splice.ArtifactPaths(g.Template, g.Output)
	return generator.New(opts, logger).Run(ctx, generator.Job{
		Mode:         mode,
		Table:        table,
		TemplatePath: in,
		OutputPath:   out,
		Marker:       g.Marker,
		Check:        g.Check,
	})
}

func (g *Generate) options() (meta.Options, error) {
	if g.Indent < 0 {
		return meta.Options{}, fmt.Errorf("invalid indent %d: must not be negative", g.Indent)
	}
	if g.Prefix != "" && !common.IsIdentifier(g.Prefix) {
		return meta.Options{}, fmt.Errorf("invalid prefix %q: must be an identifier", g.Prefix)
	}
	if strings.TrimSpace(g.Map) == "" {
		return meta.Options{}, fmt.Errorf("adapter map name must not be empty")
	}
	return meta.Options{
		Prefix:  g.Prefix,
		MapName: g.Map,
		Indent:  strings.Repeat(" ", g.Indent),
	}, nil
}

// loadTable returns the built-in redraw table unless path names a table file.
func loadTable(path string, logger *slog.Logger) (spec.Table, error) {
	if path == "" {
		logger.Debug("Using built-in redraw table")
		return spec.Redraw(), nil
	}
	table, err := spec.LoadTable(path)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded event table", "file", path, "events", len(table))
	return table, nil
}
