// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/euclid/vector"
)

// Output formats.
const (
	formatText = "text"
	formatYAML = "yaml"
)

var (
	errUnknownFormat = errors.New("unknown output format")
	errNullVector    = errors.New("vector is null")
)

// app carries the state shared by all subcommands for one invocation.
type app struct {
	logger *slog.Logger
	out    io.Writer
	format string
	named  map[string]*vector.Vector // vectors loaded from --file
}

// newLogger builds the CLI logger: text to w, debug level when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadFile reads a YAML mapping of name -> sequence of floats.
func (a *app) loadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read vectors file: %w", err)
	}
	named := map[string]*vector.Vector{}
	if err := yaml.Unmarshal(raw, &named); err != nil {
		return fmt.Errorf("parse vectors file %s: %w", path, err)
	}
	// "name: ~" and "name:" decode to a nil *Vector.
	for name, v := range named {
		if v == nil {
			return fmt.Errorf("parse vectors file %s: %q: %w", path, name, errNullVector)
		}
	}
	a.named = named
	a.logger.Debug("loaded vectors", "file", path, "count", len(named))
	return nil
}

// parseVector resolves an argument to a vector.
// A name from --file wins; otherwise the argument is a comma-separated list
// of floats, optionally wrapped in brackets ("3,4", "[3,4]", "" or "[]").
// The result is always a fresh vector owned by the caller.
func (a *app) parseVector(arg string) (*vector.Vector, error) {
	if v, ok := a.named[arg]; ok {
		return v.Clone(), nil
	}
	body := strings.TrimSpace(arg)
	body = strings.TrimSuffix(strings.TrimPrefix(body, "["), "]")
	if strings.TrimSpace(body) == "" {
		return vector.Of(), nil
	}
	fields := strings.Split(body, ",")
	xs := make([]float64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("vector %q element %d: %w", arg, i, err)
		}
		xs[i] = x
	}
	return vector.Of(xs...), nil
}

// parseScalar parses a float argument.
func parseScalar(arg string) (float64, error) {
	s, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil {
		return 0, fmt.Errorf("scalar %q: %w", arg, err)
	}
	return s, nil
}

// emitVector writes v in the selected format.
func (a *app) emitVector(v *vector.Vector) error {
	switch a.format {
	case formatText:
		_, err := fmt.Fprintln(a.out, v)
		return err
	case formatYAML:
		return a.emitYAML(v)
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, a.format)
	}
}

// emitScalar writes x in the selected format.
func (a *app) emitScalar(x float64) error {
	switch a.format {
	case formatText:
		_, err := fmt.Fprintln(a.out, strconv.FormatFloat(x, 'f', 6, 64))
		return err
	case formatYAML:
		return a.emitYAML(x)
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, a.format)
	}
}

func (a *app) emitYAML(x interface{}) error {
	enc := yaml.NewEncoder(a.out)
	if err := enc.Encode(x); err != nil {
		return err
	}
	return enc.Close()
}
