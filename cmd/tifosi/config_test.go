package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Output != "data.sql" || cfg.Database != "tifosi" {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `source_dir: sources.zip
database: tifosi_dev
log_level: debug
sheet: Feuil1
delimiter: ";"
files:
  marque: marques.csv
quantities:
  Tomate: 150
corrections:
  mozza: Mozarella
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.SourceDir != "sources.zip" || cfg.Database != "tifosi_dev" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Output != "data.sql" {
		t.Errorf("output default lost: %q", cfg.Output)
	}
	if cfg.Sheet.Sheet != "Feuil1" || cfg.Sheet.Delimiter != ";" {
		t.Errorf("sheet options = %+v", cfg.Sheet)
	}
	if cfg.level() != slog.LevelDebug {
		t.Errorf("level = %v", cfg.level())
	}

	opts := cfg.options("dir")
	if opts.Files["marque"] != "marques.csv" || opts.Database != "tifosi_dev" {
		t.Errorf("options = %+v", opts)
	}
	got := opts.Parser.Parse("tomate, mozza")
	if len(got) != 2 || got[0].Quantity != 150 || got[1].Name != "Mozarella" || got[1].Quantity != 50 {
		t.Errorf("parsed = %+v", got)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("quantities: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Error("expected parse error")
	}
}
