package formatter

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jacoelho/qj/internal/value"
)

// ANSI color codes matching jq's default palette.
const (
	colorReset  = "\x1b[0m"
	colorNull   = "\x1b[1;30m"
	colorString = "\x1b[0;32m"
	colorKey    = "\x1b[34;1m"
)

// JSON renders values as JSON text, one result per line.
type JSON struct {
	w    io.Writer
	opts Options
}

// NewJSON creates a JSON formatter writing to w.
func NewJSON(w io.Writer, opts Options) *JSON {
	return &JSON{w: w, opts: opts}
}

// Write renders a single result followed by a newline. In raw mode a
// top-level string is printed without quotes or escaping.
func (f *JSON) Write(v value.Value) error {
	if f.opts.Raw {
		if s, ok := v.(value.String); ok {
			_, err := fmt.Fprintln(f.w, string(s))
			return err
		}
	}

	var b strings.Builder
	f.encode(&b, v, 0)
	b.WriteByte('\n')

	_, err := io.WriteString(f.w, b.String())
	return err
}

func (f *JSON) encode(b *strings.Builder, v value.Value, indent int) {
	switch t := v.(type) {
	case value.Object:
		f.encodeObject(b, t, indent)
	case value.Array:
		f.encodeArray(b, t, indent)
	case value.String:
		f.colored(b, colorString, quote(string(t)))
	case value.Number:
		b.WriteString(t.Literal())
	case value.Boolean:
		if t {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case value.Null:
		f.colored(b, colorNull, "null")
	}
}

func (f *JSON) encodeObject(b *strings.Builder, obj value.Object, indent int) {
	if len(obj) == 0 {
		b.WriteString("{}")
		return
	}

	members := obj
	if f.opts.SortKeys {
		members = slices.Clone(obj)
		slices.SortFunc(members, func(a, c value.Member) int {
			return strings.Compare(a.Key, c.Key)
		})
	}

	b.WriteByte('{')
	for i, m := range members {
		if i > 0 {
			b.WriteByte(',')
		}
		f.newlineIndent(b, indent+f.opts.indentWidth())
		f.colored(b, colorKey, quote(m.Key))
		b.WriteByte(':')
		if !f.opts.Compact {
			b.WriteByte(' ')
		}
		f.encode(b, m.Value, indent+f.opts.indentWidth())
	}
	f.newlineIndent(b, indent)
	b.WriteByte('}')
}

func (f *JSON) encodeArray(b *strings.Builder, arr value.Array, indent int) {
	if len(arr) == 0 {
		b.WriteString("[]")
		return
	}

	b.WriteByte('[')
	for i, elem := range arr {
		if i > 0 {
			b.WriteByte(',')
		}
		f.newlineIndent(b, indent+f.opts.indentWidth())
		f.encode(b, elem, indent+f.opts.indentWidth())
	}
	f.newlineIndent(b, indent)
	b.WriteByte(']')
}

func (f *JSON) newlineIndent(b *strings.Builder, indent int) {
	if f.opts.Compact {
		return
	}
	b.WriteByte('\n')
	for range indent {
		b.WriteByte(' ')
	}
}

func (f *JSON) colored(b *strings.Builder, code, text string) {
	if !f.opts.Color {
		b.WriteString(text)
		return
	}
	b.WriteString(code)
	b.WriteString(text)
	b.WriteString(colorReset)
}

// quote renders a JSON string literal. The common case of a string
// needing no escapes avoids the rune-by-rune path.
func quote(s string) string {
	if !needsEscaping(s) {
		return `"` + s + `"`
	}

	var b strings.Builder
	b.Grow(len(s) + 16)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

func needsEscaping(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || c == '"' || c < 0x20 {
			return true
		}
	}
	return false
}
