package decode

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/qj/internal/value"
)

// YAMLStream decodes a YAML stream lazily, yielding one value tree per
// document. Mappings keep their key order via goccy's ordered map mode.
func YAMLStream(r io.Reader) iter.Seq2[value.Value, error] {
	return func(yield func(value.Value, error) bool) {
		dec := yaml.NewDecoder(r, yaml.UseOrderedMap())
		for {
			var doc any
			if err := dec.Decode(&doc); err != nil {
				if !errors.Is(err, io.EOF) {
					yield(nil, fmt.Errorf("%w: %v", ErrMalformed, err))
				}
				return
			}
			v, err := fromYAML(doc)
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

// fromYAML converts goccy's decoded representation into the value
// model. Mapping keys are stringified; YAML permits non-string keys but
// the JSON value model does not.
func fromYAML(doc any) (value.Value, error) {
	switch t := doc.(type) {
	case nil:
		return value.Null{}, nil
	case bool:
		return value.Boolean(t), nil
	case string:
		return value.String(t), nil
	case int:
		return value.Int(int64(t)), nil
	case int64:
		return value.Int(t), nil
	case uint64:
		return value.Int(int64(t)), nil
	case float64:
		return value.Float(t), nil
	case yaml.MapSlice:
		obj := value.Object{}
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			v, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			obj = append(obj, value.Member{Key: key, Value: v})
		}
		return obj, nil
	case []any:
		arr := value.Array{}
		for _, elem := range t {
			v, err := fromYAML(elem)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("%w: unsupported YAML value of type %T", ErrMalformed, doc)
	}
}
