// Package config parses command-line arguments for the qj tool.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/qj/internal/exit"
)

var (
	ErrNoArguments = errors.New("no arguments provided")
	ErrNoFilter    = errors.New("no filter specified")
)

// Config represents the complete configuration for the qj tool.
type Config struct {
	Filter     string
	InputFiles []string // empty means stdin

	// Output formatting
	Compact  bool
	Indent   int
	SortKeys bool
	Raw      bool
	Color    bool

	// Input/output modes
	NullInput  bool
	YAMLInput  bool
	YAMLOutput bool
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	for _, file := range c.InputFiles {
		if _, err := os.Stat(file); err != nil {
			return fmt.Errorf("input file %s not found: %w", file, err)
		}
	}
	return nil
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and an exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf(exit.CodeUsage, "Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Usage and errors are reported through exit results instead.
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	cfg := &Config{}

	fs.BoolVar(&cfg.Compact, "compact-output", false, "Compact output without whitespace")
	fs.BoolVar(&cfg.Compact, "c", false, "Compact output without whitespace (shorthand)")
	fs.BoolVar(&cfg.Color, "color-output", false, "Colorize output")
	fs.BoolVar(&cfg.Color, "C", false, "Colorize output (shorthand)")
	fs.BoolVar(&cfg.Raw, "raw-output", false, "Output raw strings, not JSON texts")
	fs.BoolVar(&cfg.Raw, "r", false, "Output raw strings, not JSON texts (shorthand)")
	fs.BoolVar(&cfg.SortKeys, "sort-keys", false, "Sort object keys in output")
	fs.BoolVar(&cfg.SortKeys, "S", false, "Sort object keys in output (shorthand)")
	fs.BoolVar(&cfg.NullInput, "null-input", false, "Run the filter with null input, reading nothing")
	fs.BoolVar(&cfg.NullInput, "n", false, "Run the filter with null input (shorthand)")
	fs.IntVar(&cfg.Indent, "indent", 2, "Indent width for pretty output")
	fs.BoolVar(&cfg.YAMLInput, "yaml-input", false, "Read input as YAML instead of JSON")
	fs.BoolVar(&cfg.YAMLOutput, "yaml-output", false, "Write output as YAML instead of JSON")

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Errorf(exit.CodeUsage, "Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	positional := fs.Args()
	if len(positional) == 0 {
		return nil, exit.Errorf(exit.CodeUsage, "Error: %v\n\n%s", ErrNoFilter, Usage())
	}

	cfg.Filter = positional[0]
	cfg.InputFiles = positional[1:]

	if err := cfg.Validate(); err != nil {
		return nil, exit.Errorf(exit.CodeUsage, "Error: %v\n\n%s", err, Usage())
	}

	return cfg, nil
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `qj - process JSON with jq-like filters

Usage: qj [options] <filter> [file ...]

Reads JSON documents from the given files, or stdin when no files are
provided, applies the filter to each document and prints every result
on its own line.

Options:
  -c, --compact-output    Compact output without whitespace
  -C, --color-output      Colorize output
  -r, --raw-output        Output raw strings, not JSON texts
  -S, --sort-keys         Sort object keys in output
  -n, --null-input        Run the filter with null input, reading nothing
  --indent N              Indent width for pretty output (default: 2)
  --yaml-input            Read input as YAML instead of JSON
  --yaml-output           Write output as YAML instead of JSON
  -h, --help              Show this help message

Filters:
  .                       Identity
  .name                   Field access
  .[2]  .[-1]             Array index (negative counts from the end)
  .[1:8:2]                Array slice (start:end:step)
  .[]                     Iterate over array elements or object values
  map(f)                  Apply f to every array element
  select(f)               Keep the input when f yields a truthy value
  f | g                   Pipe the results of f through g

Examples:
  qj .name user.json                     # Extract a field
  qj '.[] | select(.active) | .name'     # Filter and project from stdin
  qj -c 'map(.id)' items.json            # Compact output
  qj --yaml-input '.spec | .replicas' d.yml  # Query a YAML document`
}
