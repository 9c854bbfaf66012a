package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// OutputMode controls how results are printed.
type OutputMode int

const (
	OutputHuman OutputMode = iota
	OutputJSON
	OutputQuiet
)

// Printer handles structured output for every command.
type Printer struct {
	Mode   OutputMode
	Writer io.Writer
	Logger zerolog.Logger
}

// NewPrinter creates a Printer writing results to out and logs to logs.
func NewPrinter(out, logs io.Writer, jsonFlag, quietFlag bool, level zerolog.Level) *Printer {
	mode := OutputHuman
	if jsonFlag {
		mode = OutputJSON
	} else if quietFlag {
		mode = OutputQuiet
	}
	return &Printer{
		Mode:   mode,
		Writer: out,
		Logger: zerolog.New(logs).With().Timestamp().Logger().Level(level),
	}
}

// JSON writes v as indented JSON to the writer.
func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Human writes a formatted human-readable line.
func (p *Printer) Human(format string, args ...any) {
	if p.Mode == OutputQuiet {
		return
	}
	fmt.Fprintf(p.Writer, format+"\n", args...)
}

// Error logs an error via zerolog.
func (p *Printer) Error(err error, msg string) {
	p.Logger.Error().Err(err).Msg(msg)
}

// reportedError marks an error that a Printer has already logged.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

// Fail logs err and returns it marked as reported, so Execute does not print
// it a second time.
func (p *Printer) Fail(err error, msg string) error {
	p.Error(err, msg)
	return reportedError{err}
}
