// Package formatter renders result values as JSON or YAML text.
package formatter

import "github.com/jacoelho/qj/internal/value"

// Formatter renders one result value per call, including the trailing
// separator (newline for JSON, document marker for YAML).
type Formatter interface {
	Write(v value.Value) error
}

// Options controls the output layout.
type Options struct {
	Compact  bool // single-line output without whitespace
	Indent   int  // indent width for pretty output, defaults to 2
	SortKeys bool // emit object keys in lexicographic order
	Raw      bool // print top-level strings without quotes
	Color    bool // ANSI-colored output
}

const defaultIndent = 2

func (o Options) indentWidth() int {
	if o.Indent <= 0 {
		return defaultIndent
	}
	return o.Indent
}
