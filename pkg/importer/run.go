package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/hazyhaar/tifosi-import/pkg/catalog"
	"github.com/hazyhaar/tifosi-import/pkg/sheet"
	"github.com/hazyhaar/tifosi-import/pkg/sqlgen"
)

// DefaultDatabase is the schema the generated script targets.
const DefaultDatabase = "tifosi"

// Options configures a Generator.
type Options struct {
	// SourceDir holds the source spreadsheets.
	SourceDir string
	// Files overrides the file name of an adapter, keyed by adapter ID.
	Files map[string]string
	// Database is written in the USE statement.
	Database string
	// Sheet tunes how spreadsheets are read.
	Sheet sheet.Options
	// Parser parses recipe cells; the built-in tables when nil.
	Parser *catalog.Parser
}

// SourcePath returns the path of the file read by adapter a.
func (o Options) SourcePath(a Adapter) string {
	name := a.DefaultFile()
	if f, ok := o.Files[a.ID()]; ok && f != "" {
		name = f
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(o.SourceDir, name)
}

// Run is the state shared by adapters during one generation pass.
type Run struct {
	Logger  *slog.Logger
	Parser  *catalog.Parser
	Mapping catalog.Mapping

	sink       sqlgen.Sink
	statements int
	missing    map[string]bool
}

// Section opens a titled group of statements.
func (r *Run) Section(title string) error {
	return r.sink.Section(title)
}

// Exec forwards one statement to the sink.
func (r *Run) Exec(stmt string) error {
	r.statements++
	return r.sink.Exec(stmt)
}

// Generator reads every source in step order and emits the load script.
type Generator struct {
	opts   Options
	logger *slog.Logger
}

// NewGenerator returns a Generator. Empty options fall back to defaults.
func NewGenerator(opts Options, logger *slog.Logger) *Generator {
	if opts.Database == "" {
		opts.Database = DefaultDatabase
	}
	if opts.Parser == nil {
		opts.Parser = catalog.NewParser(nil, nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{opts: opts, logger: logger}
}

// Run emits the whole script into sink. A source that cannot be read or
// lacks a required column stops the run; statements already emitted stay
// in the sink. Unresolved recipe ingredients are not errors: they are
// listed in the report.
func (g *Generator) Run(ctx context.Context, sink sqlgen.Sink) (*Report, error) {
	run := &Run{
		Logger:  g.logger,
		Parser:  g.opts.Parser,
		Mapping: catalog.Mapping{},
		sink:    sink,
		missing: make(map[string]bool),
	}
	report := &Report{Database: g.opts.Database}

	if err := sink.Use(g.opts.Database); err != nil {
		return report, fmt.Errorf("write header: %w", err)
	}

	for _, a := range All() {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		path := g.opts.SourcePath(a)
		g.logger.Info("lecture du fichier", "source", a.ID(), "description", a.Description(), "path", path)
		t, err := sheet.Open(path, g.opts.Sheet)
		if err != nil {
			return report, fmt.Errorf("[%s] %w", a.ID(), err)
		}
		g.logger.Info("structure du fichier", "source", a.ID(), "columns", t.Columns, "rows", len(t.Rows))

		if err := t.Require(a.Columns()...); err != nil {
			var mce *sheet.MissingColumnError
			if errors.As(err, &mce) {
				g.logger.Error("colonne manquante", "source", a.ID(), "column", mce.Column, "available", mce.Available)
			}
			return report, fmt.Errorf("[%s] %w", a.ID(), err)
		}

		before := run.statements
		if err := a.Emit(run, t); err != nil {
			return report, fmt.Errorf("[%s] emit: %w", a.ID(), err)
		}
		report.Files = append(report.Files, FileReport{
			Source:     a.ID(),
			Path:       path,
			Rows:       len(t.Rows),
			Statements: run.statements - before,
		})
	}

	report.Statements = run.statements
	for name := range run.missing {
		report.Missing = append(report.Missing, name)
	}
	sort.Strings(report.Missing)
	if len(report.Missing) > 0 {
		g.logger.Warn("ingredients absents de la table ingredient", "missing", report.Missing)
	}
	return report, nil
}
