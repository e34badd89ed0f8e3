package importer

import (
	"context"
	"log/slog"

	"github.com/hazyhaar/tifosi-import/pkg/sheet"
)

// SourceStatus is the preflight result for one source.
type SourceStatus struct {
	Source      string
	Description string
	Path        string
	Rows        int
	Err         error
}

// OK reports whether the source can be imported.
func (s SourceStatus) OK() bool { return s.Err == nil }

// Checker verifies that every source file exists, loads, and carries the
// columns its adapter requires, without emitting anything.
type Checker struct {
	opts   Options
	logger *slog.Logger
}

// NewChecker creates a Checker over the sources described by opts.
func NewChecker(opts Options, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{opts: opts, logger: logger}
}

// CheckAll checks every registered source and logs the outcome.
func (c *Checker) CheckAll(ctx context.Context) []SourceStatus {
	var statuses []SourceStatus
	var ok, failed int
	for _, a := range All() {
		if ctx.Err() != nil {
			break
		}
		st := c.checkOne(a)
		statuses = append(statuses, st)
		if st.OK() {
			ok++
			continue
		}
		failed++
		c.logger.Warn("source inutilisable",
			"source", st.Source,
			"path", st.Path,
			"error", st.Err,
		)
	}

	c.logger.Info("source check complete", "total", ok+failed, "ok", ok, "failed", failed)
	return statuses
}

func (c *Checker) checkOne(a Adapter) SourceStatus {
	st := SourceStatus{Source: a.ID(), Description: a.Description(), Path: c.opts.SourcePath(a)}
	t, err := sheet.Open(st.Path, c.opts.Sheet)
	if err != nil {
		st.Err = err
		return st
	}
	st.Rows = len(t.Rows)
	st.Err = t.Require(a.Columns()...)
	return st
}
