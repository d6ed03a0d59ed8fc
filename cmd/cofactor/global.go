// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/cofactor/matrix"
	"github.com/katalvlaran/cofactor/matrix/format"
	"github.com/lmittmann/tint"
	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
)

// Global holds the flags shared by every command and the runtime
// collaborators built from them.
type Global struct {
	Verbosity int    `help:"increase verbosity of logging" short:"v" type:"counter" default:"0"`
	LogLevel  string `help:"minimum log level" enum:"debug,info,warn,error" default:"info" env:"COFACTOR_LOG_LEVEL"`
	Width     int    `help:"column width of printed matrices, 0 fits the widest value" default:"0" env:"COFACTOR_WIDTH"`
	NoColor   bool   `help:"disable coloured output" env:"COFACTOR_NO_COLOR"`

	Out    io.Writer     `kong:"-"`
	Logger *slog.Logger  `kong:"-"`
	Au     aurora.Aurora `kong:"-"`
}

// setup wires output, logging and colours. It must run after parsing and
// before any command.
func (t *Global) setup(stdout, stderr io.Writer) error {
	level, err := parseLevel(t.LogLevel)
	if err != nil {
		return err
	}
	// every -v lowers the threshold by one slog step (info -> debug).
	level -= slog.Level(4 * t.Verbosity)

	t.Out = stdout
	t.Au = aurora.NewAurora(!t.NoColor && isTerminal(stdout))
	t.Logger = slog.New(tint.NewHandler(stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    t.NoColor || !isTerminal(stderr),
	}))

	return nil
}

// section prints a heading followed by the aligned rendering of m.
func (t *Global) section(title string, m matrix.Matrix) error {
	if _, err := fmt.Fprintln(t.Out, t.Au.Bold(t.Au.Cyan(title))); err != nil {
		return err
	}
	if err := format.Write(t.Out, m, t.Width); err != nil {
		return err
	}
	_, err := fmt.Fprintln(t.Out)

	return err
}

// value prints a single labelled scalar.
func (t *Global) value(title string, v float64) error {
	_, err := fmt.Fprintf(t.Out, "%s %g\n\n", t.Au.Bold(t.Au.Cyan(title)), v)

	return err
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}

	return level, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
