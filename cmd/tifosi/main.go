package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hazyhaar/tifosi-import/pkg/catalog"
	"github.com/hazyhaar/tifosi-import/pkg/importer"
	"github.com/hazyhaar/tifosi-import/pkg/sheet"
	"github.com/hazyhaar/tifosi-import/pkg/sqlgen"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var err error
	switch os.Args[1] {
	case "generate":
		err = cmdGenerate(ctx, os.Args[2:])
	case "check":
		err = cmdCheck(ctx, os.Args[2:])
	case "verify":
		err = cmdVerify(ctx, os.Args[2:])
	case "mapping":
		err = cmdMapping(os.Args[2:])
	case "parse":
		err = cmdParse(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Erreur: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: tifosi <command> [flags]

Commands:
  generate  Write the SQL load script from the source spreadsheets
  check     Check that every source file is present and well formed
  verify    Load the sources into a SQLite copy of the schema
  mapping   Print the ingredient name mapping
  parse     Parse a recipe cell given as argument or on stdin
`)
}

// common holds the flags shared by every command reading sources.
type common struct {
	config  *string
	source  *string
	verbose *bool
}

func commonFlags(fs *flag.FlagSet) common {
	return common{
		config:  fs.String("config", "config.yaml", "path to config file"),
		source:  fs.String("source", "", "source directory or .zip archive (overrides config)"),
		verbose: fs.Bool("v", false, "debug logging"),
	}
}

// setup loads the configuration and prepares the source directory.
func (c common) setup() (config, importer.Options, func(), error) {
	cfg, err := loadConfig(*c.config)
	if err != nil {
		return cfg, importer.Options{}, nil, fmt.Errorf("config %s: %w", *c.config, err)
	}
	src := cfg.SourceDir
	if *c.source != "" {
		src = *c.source
	}
	dir, cleanup, err := importer.PrepareSourceDir(src)
	if err != nil {
		return cfg, importer.Options{}, nil, fmt.Errorf("sources %s: %w", src, err)
	}
	return cfg, cfg.options(dir), cleanup, nil
}

func cmdGenerate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	cf := commonFlags(fs)
	output := fs.String("output", "", "SQL script path (overrides config)")
	reportPath := fs.String("report", "", "YAML report path (overrides config)")
	verify := fs.Bool("verify", false, "also execute the script against an in-memory SQLite schema")
	fs.Parse(args)

	cfg, opts, cleanup, err := cf.setup()
	if err != nil {
		return err
	}
	defer cleanup()
	logger := newLogger(cfg, *cf.verbose)

	if *output != "" {
		cfg.Output = *output
	}
	if *reportPath != "" {
		cfg.Report = *reportPath
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w := sqlgen.NewWriter(f)
	var sink sqlgen.Sink = w
	var sdb *importer.ScriptDB
	if *verify {
		sdb, err = importer.OpenScriptDB("")
		if err != nil {
			return err
		}
		defer sdb.Close()
		sink = sqlgen.Tee(w, sdb)
	}

	report, runErr := importer.NewGenerator(opts, logger).Run(ctx, sink)
	// Statements emitted before a failure are kept.
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	if runErr != nil {
		return runErr
	}

	if cfg.Report != "" {
		if err := importer.WriteReport(cfg.Report, report); err != nil {
			return err
		}
	}

	fmt.Printf("%s: %d instructions\n", cfg.Output, w.Statements())
	if sdb != nil {
		if err := printCounts(os.Stdout, sdb); err != nil {
			return err
		}
	}
	printMissing(os.Stdout, report.Missing)
	return nil
}

func cmdCheck(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	cf := commonFlags(fs)
	fs.Parse(args)

	cfg, opts, cleanup, err := cf.setup()
	if err != nil {
		return err
	}
	defer cleanup()

	statuses := importer.NewChecker(opts, newLogger(cfg, *cf.verbose)).CheckAll(ctx)

	fmt.Println("Sources :")
	fmt.Println()
	failed := 0
	for _, st := range statuses {
		status := fmt.Sprintf("OK (%d lignes)", st.Rows)
		if !st.OK() {
			failed++
			status = "ERREUR: " + st.Err.Error()
		}
		fmt.Printf("  %-12s  %-32s  %-40s  %s\n", st.Source, st.Description, st.Path, status)
	}
	if failed > 0 {
		return fmt.Errorf("%d source(s) inutilisable(s)", failed)
	}
	return nil
}

func cmdVerify(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	cf := commonFlags(fs)
	dbPath := fs.String("db", "", "SQLite file to load into (in-memory when empty)")
	fs.Parse(args)

	cfg, opts, cleanup, err := cf.setup()
	if err != nil {
		return err
	}
	defer cleanup()

	sdb, err := importer.OpenScriptDB(*dbPath)
	if err != nil {
		return err
	}
	defer sdb.Close()

	report, err := importer.NewGenerator(opts, newLogger(cfg, *cf.verbose)).Run(ctx, sdb)
	if err != nil {
		return err
	}
	if err := printCounts(os.Stdout, sdb); err != nil {
		return err
	}
	printMissing(os.Stdout, report.Missing)
	return nil
}

func cmdMapping(args []string) error {
	fs := flag.NewFlagSet("mapping", flag.ExitOnError)
	cf := commonFlags(fs)
	fs.Parse(args)

	_, opts, cleanup, err := cf.setup()
	if err != nil {
		return err
	}
	defer cleanup()

	a, err := importer.Get("ingredient")
	if err != nil {
		return err
	}
	t, err := sheet.Open(opts.SourcePath(a), opts.Sheet)
	if err != nil {
		return err
	}
	if err := t.Require(a.Columns()...); err != nil {
		return err
	}

	m := catalog.BuildMapping(importer.IngredientNames(t))
	for _, key := range m.Keys() {
		fmt.Printf("'%s' -> '%s'\n", key, m[key])
	}
	return nil
}

func cmdParse(args []string) error {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return fmt.Errorf("config %s: %w", *cfgPath, err)
	}

	text := strings.Join(fs.Args(), " ")
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}

	p := catalog.NewParser(cfg.Quantities, cfg.Corrections)
	ingredients := p.Parse(text)
	if len(ingredients) == 0 {
		return errors.New("aucun ingredient trouve")
	}
	for _, ing := range ingredients {
		fmt.Printf("- %s (%dg)\n", ing.Name, ing.Quantity)
	}
	return nil
}

func printCounts(w io.Writer, sdb *importer.ScriptDB) error {
	counts, err := sdb.Counts()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Base %s (SQLite) :\n", sdb.Database())
	for _, table := range importer.Tables {
		fmt.Fprintf(w, "  %-12s %d\n", table, counts[table])
	}
	return nil
}

func printMissing(w io.Writer, missing []string) {
	if len(missing) == 0 {
		return
	}
	fmt.Fprintln(w, "\nATTENTION: ingredients absents de la table ingredient :")
	for _, name := range missing {
		fmt.Fprintf(w, "- %s\n", name)
	}
}
