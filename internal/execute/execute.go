// Package execute wires decoding, evaluation and formatting into the
// qj run pipeline.
package execute

import (
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/jacoelho/qj/internal/config"
	"github.com/jacoelho/qj/internal/decode"
	"github.com/jacoelho/qj/internal/evaluator"
	"github.com/jacoelho/qj/internal/exit"
	"github.com/jacoelho/qj/internal/formatter"
	"github.com/jacoelho/qj/internal/parser"
	"github.com/jacoelho/qj/internal/value"
)

// Runner executes a parsed filter against the configured inputs.
type Runner struct {
	cfg  *config.Config
	expr parser.Expr
}

// New parses the configured filter and returns a ready Runner. A filter
// syntax error surfaces here, before any input is read.
func New(cfg *config.Config) (*Runner, *exit.Result) {
	expr, err := parser.Parse(cfg.Filter)
	if err != nil {
		return nil, exit.Errorf(exit.CodeSyntax, "Error: %v\n", err)
	}

	return &Runner{cfg: cfg, expr: expr}, nil
}

// Run processes all inputs and returns the process exit code.
func (r *Runner) Run() int {
	return r.RunWithIO(os.Stdin, os.Stdout, os.Stderr)
}

// RunWithIO runs the pipeline with explicit streams. An empty result
// sequence is a success: nothing is printed and the exit code is 0.
func (r *Runner) RunWithIO(stdin io.Reader, stdout, stderr io.Writer) int {
	out := r.formatter(stdout)

	if r.cfg.NullInput {
		return r.emit(out, stderr, value.Null{})
	}

	if len(r.cfg.InputFiles) == 0 {
		return r.process(stdin, out, stderr, "<stdin>")
	}

	for _, name := range r.cfg.InputFiles {
		f, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exit.CodeUsage
		}
		code := r.process(f, out, stderr, name)
		f.Close()
		if code != exit.CodeOK {
			return code
		}
	}

	return exit.CodeOK
}

// process evaluates the filter against every document of one input
// stream, stopping at the first decode or write failure.
func (r *Runner) process(in io.Reader, out formatter.Formatter, stderr io.Writer, name string) int {
	for doc, err := range r.documents(in) {
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", name, err)
			return exit.CodeUsage
		}
		if code := r.emit(out, stderr, doc); code != exit.CodeOK {
			return code
		}
	}
	return exit.CodeOK
}

func (r *Runner) emit(out formatter.Formatter, stderr io.Writer, doc value.Value) int {
	for result := range evaluator.Run(r.expr, doc) {
		if err := out.Write(result); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exit.CodeUsage
		}
	}
	return exit.CodeOK
}

func (r *Runner) documents(in io.Reader) iter.Seq2[value.Value, error] {
	if r.cfg.YAMLInput {
		return decode.YAMLStream(in)
	}
	return decode.JSONStream(in)
}

func (r *Runner) formatter(w io.Writer) formatter.Formatter {
	opts := formatter.Options{
		Compact:  r.cfg.Compact,
		Indent:   r.cfg.Indent,
		SortKeys: r.cfg.SortKeys,
		Raw:      r.cfg.Raw,
		Color:    r.cfg.Color,
	}

	if r.cfg.YAMLOutput {
		return formatter.NewYAML(w, opts)
	}
	return formatter.NewJSON(w, opts)
}
