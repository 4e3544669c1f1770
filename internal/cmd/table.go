package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/gnvim/signalgen/internal/codegen/spec"
)

// Table prints the active event table, e.g. to seed a --table file.
type Table struct {
	File   string `help:"Event table file to read instead of the built-in redraw table" type:"path" env:"SIGNALGEN_TABLE"`
	Format string `help:"Output format" enum:"encoding,yaml,toml,json" default:"encoding"`
}

// Run is called by Kong when the table command is executed.
func (t *Table) Run(logger *slog.Logger) error {
	return t.Print(os.Stdout, logger)
}

func (t *Table) Print(w io.Writer, logger *slog.Logger) error {
	table, err := loadTable(t.File, logger)
	if err != nil {
		return err
	}
	data, err := spec.MarshalTable(table, t.Format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
