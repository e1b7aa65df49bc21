// Package decode builds value trees from JSON and YAML input.
package decode

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/jacoelho/qj/internal/value"
)

// ErrMalformed indicates the input document is not valid JSON or YAML.
var ErrMalformed = errors.New("decode: malformed input")

// JSON decodes a single JSON document into a value tree. Object keys
// keep the order they appear in the input, and integral numbers stay
// distinct from fractional ones.
func JSON(r io.Reader) (value.Value, error) {
	dec := jsontext.NewDecoder(r)
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// JSONStream decodes a stream of concatenated JSON documents lazily,
// yielding one value tree per document. Decoding stops at the first
// error or when the consumer stops early.
func JSONStream(r io.Reader) iter.Seq2[value.Value, error] {
	return func(yield func(value.Value, error) bool) {
		dec := jsontext.NewDecoder(r)
		for {
			if dec.PeekKind() == 0 {
				// Either clean end of stream or a read error; probing a
				// token distinguishes the two.
				if _, err := dec.ReadToken(); !errors.Is(err, io.EOF) {
					yield(nil, fmt.Errorf("%w: %v", ErrMalformed, err))
				}
				return
			}
			v, err := decodeValue(dec)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

func decodeValue(dec *jsontext.Decoder) (value.Value, error) {
	switch dec.PeekKind() {
	case '{':
		return decodeObject(dec)
	case '[':
		return decodeArray(dec)
	}

	tok, err := dec.ReadToken()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	switch tok.Kind() {
	case 'n':
		return value.Null{}, nil
	case 't':
		return value.Boolean(true), nil
	case 'f':
		return value.Boolean(false), nil
	case '"':
		return value.String(tok.String()), nil
	case '0':
		return decodeNumber(tok.String())
	default:
		return nil, fmt.Errorf("%w: unexpected token %v", ErrMalformed, tok)
	}
}

func decodeObject(dec *jsontext.Decoder) (value.Value, error) {
	if _, err := dec.ReadToken(); err != nil { // '{'
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	obj := value.Object{}
	for dec.PeekKind() != '}' {
		keyTok, err := dec.ReadToken()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if keyTok.Kind() != '"' {
			return nil, fmt.Errorf("%w: object key must be a string", ErrMalformed)
		}
		// The token is voided by the next decoder call, so take the key now.
		key := keyTok.String()

		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj = append(obj, value.Member{Key: key, Value: v})
	}

	if _, err := dec.ReadToken(); err != nil { // '}'
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return obj, nil
}

func decodeArray(dec *jsontext.Decoder) (value.Value, error) {
	if _, err := dec.ReadToken(); err != nil { // '['
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	arr := value.Array{}
	for dec.PeekKind() != ']' {
		elem, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, elem)
	}

	if _, err := dec.ReadToken(); err != nil { // ']'
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return arr, nil
}

// decodeNumber keeps the source's integral/fractional distinction: a
// literal without '.', 'e' or 'E' becomes an integer unless it
// overflows int64.
func decodeNumber(literal string) (value.Value, error) {
	if !strings.ContainsAny(literal, ".eE") {
		if i, err := strconv.ParseInt(literal, 10, 64); err == nil {
			return value.Int(i), nil
		}
	}
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid number literal %q", ErrMalformed, literal)
	}
	return value.Float(f), nil
}
