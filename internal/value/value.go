// Package value defines the JSON value model shared by the decoder,
// the evaluator and the formatters. Objects preserve insertion order.
package value

import "strconv"

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is a JSON-shaped immutable value. The variant set is closed:
// only the types in this package implement it.
type Value interface {
	Kind() Kind
}

// Null is the JSON null value.
type Null struct{}

func (Null) Kind() Kind { return KindNull }

// Boolean is a JSON true/false value.
type Boolean bool

func (Boolean) Kind() Kind { return KindBoolean }

// String is a JSON string value.
type String string

func (String) Kind() Kind { return KindString }

// Array is an ordered sequence of values.
type Array []Value

func (Array) Kind() Kind { return KindArray }

// Member is a single key/value entry of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is an insertion-ordered collection of members with unique keys.
// Iteration order is the order members were appended.
type Object []Member

func (Object) Kind() Kind { return KindObject }

// Get returns the value bound to key, or false when the key is absent.
func (o Object) Get(key string) (Value, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Number is a JSON number. It keeps the integral/fractional distinction
// of the source so formatting round-trips without precision loss.
type Number struct {
	i     int64
	f     float64
	isInt bool
}

// Int returns a Number holding an integral value.
func Int(v int64) Number {
	return Number{i: v, isInt: true}
}

// Float returns a Number holding a fractional value.
func Float(v float64) Number {
	return Number{f: v}
}

func (Number) Kind() Kind { return KindNumber }

// IsInt reports whether the number was constructed from an integer.
func (n Number) IsInt() bool { return n.isInt }

// Int64 returns the value truncated to int64.
func (n Number) Int64() int64 {
	if n.isInt {
		return n.i
	}
	return int64(n.f)
}

// Float64 returns the value widened to float64.
func (n Number) Float64() float64 {
	if n.isInt {
		return float64(n.i)
	}
	return n.f
}

// Literal renders the number as a JSON literal. Whole doubles are
// rendered without a fraction part, matching the decoder's distinction.
func (n Number) Literal() string {
	if n.isInt {
		return strconv.FormatInt(n.i, 10)
	}
	if n.f == float64(int64(n.f)) && n.f >= -1<<62 && n.f <= 1<<62 {
		return strconv.FormatInt(int64(n.f), 10)
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}

// Truthy reports whether v counts as true for select: only Null and
// Boolean(false) are falsy, everything else (including 0, "" and empty
// containers) is truthy.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case Null:
		return false
	case Boolean:
		return bool(t)
	default:
		return v != nil
	}
}
