package sqlgen

import (
	"bufio"
	"fmt"
	"io"
)

// Sink consumes a generated script.
type Sink interface {
	// Use selects the target database.
	Use(database string) error
	// Section opens a titled group of statements.
	Section(title string) error
	// Exec consumes one complete statement.
	Exec(stmt string) error
}

// Writer renders a script as text: one statement per line, sections
// introduced by a comment and separated by a blank line.
type Writer struct {
	w        *bufio.Writer
	sections int
	count    int
}

// NewWriter returns a Writer on w. Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) Use(database string) error {
	_, err := fmt.Fprintf(w.w, "%s\n\n", Use(database))
	return err
}

func (w *Writer) Section(title string) error {
	if w.sections > 0 {
		if err := w.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	w.sections++
	_, err := fmt.Fprintf(w.w, "-- %s\n", title)
	return err
}

func (w *Writer) Exec(stmt string) error {
	w.count++
	_, err := fmt.Fprintln(w.w, stmt)
	return err
}

// Statements returns the number of statements written so far.
func (w *Writer) Statements() int {
	return w.count
}

// Flush writes buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

type tee []Sink

// Tee returns a Sink that forwards every call to each sink in order,
// stopping at the first error.
func Tee(sinks ...Sink) Sink {
	return tee(sinks)
}

func (t tee) Use(database string) error {
	for _, s := range t {
		if err := s.Use(database); err != nil {
			return err
		}
	}
	return nil
}

func (t tee) Section(title string) error {
	for _, s := range t {
		if err := s.Section(title); err != nil {
			return err
		}
	}
	return nil
}

func (t tee) Exec(stmt string) error {
	for _, s := range t {
		if err := s.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
