package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/hazyhaar/tifosi-import/pkg/catalog"
	"github.com/hazyhaar/tifosi-import/pkg/importer"
	"github.com/hazyhaar/tifosi-import/pkg/sheet"
	"gopkg.in/yaml.v3"
)

type config struct {
	SourceDir string            `yaml:"source_dir"`
	Output    string            `yaml:"output"`
	Report    string            `yaml:"report"`
	Database  string            `yaml:"database"`
	LogLevel  string            `yaml:"log_level"`
	Files     map[string]string `yaml:"files"`
	Sheet     sheet.Options     `yaml:",inline"`
	// Quantities and Corrections extend the built-in recipe tables.
	Quantities  map[string]int    `yaml:"quantities"`
	Corrections map[string]string `yaml:"corrections"`
}

func defaultConfig() config {
	return config{
		SourceDir: "fichiers-à-joindre-au-devoir",
		Output:    "data.sql",
		Database:  importer.DefaultDatabase,
		LogLevel:  "info",
	}
}

// loadConfig reads path over the defaults. A missing file is not an error.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c config) options(sourceDir string) importer.Options {
	return importer.Options{
		SourceDir: sourceDir,
		Files:     c.Files,
		Database:  c.Database,
		Sheet:     c.Sheet,
		Parser:    catalog.NewParser(c.Quantities, c.Corrections),
	}
}

func (c config) level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newLogger(cfg config, verbose bool) *slog.Logger {
	level := cfg.level()
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
