// Package evaluator interprets filter expressions against JSON values.
//
// Evaluation is total: there is no runtime error path. Mismatched
// container kinds produce Null or an empty sequence instead of failing,
// so the parser is the only component that can reject a query.
package evaluator

import (
	"iter"

	"github.com/jacoelho/qj/internal/parser"
	"github.com/jacoelho/qj/internal/value"
)

// Run evaluates expr against in and returns a lazy, single-pass
// sequence of results. Each element is computed on demand, so a
// consumer that stops early never pays for unproduced results. The
// same expression tree can be evaluated concurrently against different
// inputs; neither expressions nor values carry per-call state.
func Run(expr parser.Expr, in value.Value) iter.Seq[value.Value] {
	return func(yield func(value.Value) bool) {
		run(expr, in, yield)
	}
}

// run pushes results into yield and reports false once the consumer
// stops accepting values.
func run(expr parser.Expr, in value.Value, yield func(value.Value) bool) bool {
	switch e := expr.(type) {
	case parser.Identity:
		return yield(in)

	case parser.Field:
		obj, ok := in.(value.Object)
		if !ok {
			return yield(value.Null{})
		}
		v, ok := obj.Get(e.Name)
		if !ok {
			return yield(value.Null{})
		}
		return yield(v)

	case parser.Index:
		arr, ok := in.(value.Array)
		if !ok {
			return yield(value.Null{})
		}
		idx := e.N
		if idx < 0 {
			idx += len(arr)
		}
		if idx < 0 || idx >= len(arr) {
			return yield(value.Null{})
		}
		return yield(arr[idx])

	case parser.Slice:
		arr, ok := in.(value.Array)
		if !ok {
			// Same policy as Index on a non-array input.
			return yield(value.Null{})
		}
		return yield(slice(arr, e))

	case parser.Pipe:
		return run(e.Left, in, func(v value.Value) bool {
			return run(e.Right, v, yield)
		})

	case parser.Iterate:
		switch c := in.(type) {
		case value.Array:
			for _, elem := range c {
				if !run(e.Inner, elem, yield) {
					return false
				}
			}
		case value.Object:
			for _, m := range c {
				if !run(e.Inner, m.Value, yield) {
					return false
				}
			}
		}
		return true

	case parser.Map:
		arr, ok := in.(value.Array)
		if !ok {
			return true
		}
		// Per-element results are flattened, not re-wrapped into an
		// array; `map` here is `.[] | f` restricted to arrays.
		for _, elem := range arr {
			if !run(e.Inner, elem, yield) {
				return false
			}
		}
		return true

	case parser.Select:
		first, found := firstResult(e.Cond, in)
		if !found || !value.Truthy(first) {
			return true
		}
		return yield(in)
	}

	return true
}

// slice builds a new array from the positions start, start+step, ... of
// arr while the position is below end. Absent bounds default to 0, the
// array length and 1; positions outside the array are skipped. A step
// below 1 produces an empty array so evaluation stays finite.
func slice(arr value.Array, e parser.Slice) value.Array {
	start, end, step := 0, len(arr), 1
	if e.Start != nil {
		start = *e.Start
	}
	if e.End != nil {
		end = *e.End
	}
	if e.Step != nil {
		step = *e.Step
	}

	out := value.Array{}
	if step < 1 {
		return out
	}
	for i := start; i < end; i += step {
		if i >= 0 && i < len(arr) {
			out = append(out, arr[i])
		}
	}
	return out
}

// firstResult forces the condition only far enough to observe its first
// result, which keeps select lazy over expensive conditions.
func firstResult(expr parser.Expr, in value.Value) (value.Value, bool) {
	var first value.Value
	found := false
	run(expr, in, func(v value.Value) bool {
		first, found = v, true
		return false
	})
	return first, found
}
