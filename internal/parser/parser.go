// Package parser turns filter strings into expression trees.
//
// The grammar is a small jq subset: identity, field access, array
// indexing and slicing, `.[]` iteration, `map(...)`, `select(...)` and
// `|` composition. Parsing operates directly on substrings with manual
// delimiter scanning; the operator set is small enough that no
// tokenizer is needed.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax indicates a filter expression syntax error.
var ErrSyntax = errors.New("filter: syntax error")

func syntaxError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...))
}

// Parse converts a filter string into an expression tree. It is pure
// and deterministic; the only failure mode is ErrSyntax.
//
// Known divergence from jq: a bare `.1` is field access to the key "1",
// not a numeric literal.
func Parse(input string) (Expr, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Identity{}, nil
	}

	// A `|` outside parentheses splits the expression; the leftmost one
	// wins so pipes associate to the right.
	if idx := topLevelPipe(trimmed); idx != -1 {
		left, err := Parse(trimmed[:idx])
		if err != nil {
			return nil, err
		}
		right, err := Parse(trimmed[idx+1:])
		if err != nil {
			return nil, err
		}
		return Pipe{Left: left, Right: right}, nil
	}

	if trimmed == "." {
		return Identity{}, nil
	}

	if rest, ok := strings.CutPrefix(trimmed, ".[]"); ok {
		iterate := Iterate{Inner: Identity{}}
		if rest == "" {
			return iterate, nil
		}
		if strings.HasPrefix(rest, ".") {
			chained, err := Parse(rest)
			if err != nil {
				return nil, err
			}
			return Pipe{Left: iterate, Right: chained}, nil
		}
		return nil, syntaxError("unsupported suffix after .[]: %q", rest)
	}

	if strings.HasPrefix(trimmed, ".") && !strings.HasPrefix(trimmed, ".[") {
		// Field names are taken verbatim, no quoting or escaping.
		return Field{Name: trimmed[1:]}, nil
	}

	if strings.HasPrefix(trimmed, ".[") && strings.HasSuffix(trimmed, "]") {
		return parseBracket(trimmed[2 : len(trimmed)-1])
	}

	if inner, ok := parenArgument(trimmed, "map("); ok {
		body, err := Parse(inner)
		if err != nil {
			return nil, err
		}
		return Map{Inner: body}, nil
	}

	if inner, ok := parenArgument(trimmed, "select("); ok {
		cond, err := Parse(inner)
		if err != nil {
			return nil, err
		}
		return Select{Cond: cond}, nil
	}

	return nil, syntaxError("unsupported filter: %q", input)
}

// parseBracket handles the content between `.[` and `]`: either a
// single signed index or a colon-separated slice specification.
func parseBracket(spec string) (Expr, error) {
	if strings.Contains(spec, ":") {
		return parseSlice(spec)
	}

	idx, err := strconv.Atoi(spec)
	if err != nil {
		return nil, syntaxError("invalid array index: %q", spec)
	}
	return Index{N: idx}, nil
}

// parseSlice splits a slice specification on `:` preserving empty
// segments; up to three parts map positionally to start, end and step.
// An empty part stays nil, meaning the bound was not specified.
func parseSlice(spec string) (Expr, error) {
	parts := strings.Split(spec, ":")
	if len(parts) > 3 {
		return nil, syntaxError("too many colons in slice: %q", spec)
	}

	var s Slice
	bounds := []struct {
		target **int
		name   string
	}{
		{&s.Start, "start"},
		{&s.End, "end"},
		{&s.Step, "step"},
	}

	for i, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		v, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil, syntaxError("slice %s %q in %q is not an integer", bounds[i].name, trimmed, spec)
		}
		*bounds[i].target = &v
	}

	return s, nil
}

// parenArgument returns the argument of a `name(...)` form, matching
// only when the whole input is the call.
func parenArgument(input, prefix string) (string, bool) {
	if !strings.HasPrefix(input, prefix) || !strings.HasSuffix(input, ")") {
		return "", false
	}
	return input[len(prefix) : len(input)-1], true
}

// topLevelPipe returns the index of the first `|` outside parentheses,
// or -1 when the expression has no top-level pipe.
func topLevelPipe(input string) int {
	depth := 0
	for i := 0; i < len(input); i++ {
		switch input[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '|':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
