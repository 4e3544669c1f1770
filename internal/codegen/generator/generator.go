package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gnvim/signalgen/internal/codegen/generator/cpp"
	"github.com/gnvim/signalgen/internal/codegen/generr"
	"github.com/gnvim/signalgen/internal/codegen/meta"
	"github.com/gnvim/signalgen/internal/codegen/spec"
	"github.com/gnvim/signalgen/internal/codegen/splice"
	"github.com/gnvim/signalgen/internal/log"
)

// Emitter renders the text for a single event.
type Emitter func(opts meta.Options, e spec.EventSpec) (string, error)

var emitters = map[Mode]Emitter{
	ModeDeclaration:  cpp.Declaration,
	ModeRegistration: cpp.Registration,
}

type Generator struct {
	opts   meta.Options
	logger *slog.Logger
}

func New(opts meta.Options, logger *slog.Logger) *Generator {
	return &Generator{
		opts:   opts,
		logger: logger,
	}
}

// Generate validates table and renders one entry per event, in table order.
func (g *Generator) Generate(mode Mode, table spec.Table) (meta.Block, error) {
	emit, ok := emitters[mode]
	if !ok {
		return meta.Block{}, generr.ErrUnrecognizedMode(mode.String())
	}
	if err := table.Validate(); err != nil {
		return meta.Block{}, err
	}

	var block meta.Block
	for _, e := range table {
		entry, err := emit(g.opts, e)
		if err != nil {
			return meta.Block{}, err
		}
		g.logger.Log(context.Background(), log.LevelTrace, "Rendered event", "event", e.Name, "arity", e.Arity())
		block = block.Append(entry)
	}
	return block, nil
}

// Job is one template substitution run.
type Job struct {
	Mode         Mode
	Table        spec.Table
	TemplatePath string
	OutputPath   string
	Marker       string
	Check        bool // compare with the existing output instead of writing
}

// Run generates the block, splices it into the template and writes the
// output. Nothing is written if any step fails.
func (g *Generator) Run(ctx context.Context, job Job) error {
	g.logger.Info("Generating signals",
		"mode", job.Mode.String(),
		"events", len(job.Table),
		"template", job.TemplatePath,
		"output", job.OutputPath)

	block, err := g.Generate(job.Mode, job.Table)
	if err != nil {
		return err
	}

	tpl, err := splice.ReadArtifact(job.TemplatePath)
	if err != nil {
		return err
	}
	out, err := splice.Substitute(tpl, job.Marker, block)
	if err != nil {
		return fmt.Errorf("template %s: %w", job.TemplatePath, err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if job.Check {
		if err := splice.CheckArtifact(job.OutputPath, out); err != nil {
			return err
		}
		g.logger.Info("Output is up to date", "output", job.OutputPath, "digest", splice.Digest(out))
		return nil
	}

	if err := splice.WriteArtifact(job.OutputPath, out, splice.OutputPerm(job.OutputPath)); err != nil {
		return err
	}
	g.logger.Info("Signal generation complete",
		"mode", job.Mode.String(),
		"entries", block.Len(),
		"output", job.OutputPath,
		"digest", splice.Digest(out))
	return nil
}
