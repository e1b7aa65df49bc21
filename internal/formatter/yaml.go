package formatter

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/qj/internal/value"
)

// YAML renders values as YAML documents separated by `---` markers.
type YAML struct {
	w     io.Writer
	opts  Options
	wrote bool
}

// NewYAML creates a YAML formatter writing to w.
func NewYAML(w io.Writer, opts Options) *YAML {
	return &YAML{w: w, opts: opts}
}

// Write renders a single result as a YAML document. Object key order is
// preserved through yaml.MapSlice unless key sorting is enabled.
func (f *YAML) Write(v value.Value) error {
	if f.wrote {
		if _, err := fmt.Fprintln(f.w, "---"); err != nil {
			return err
		}
	}

	payload, err := yaml.Marshal(f.toYAML(v))
	if err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}

	if _, err := f.w.Write(payload); err != nil {
		return err
	}
	f.wrote = true
	return nil
}

func (f *YAML) toYAML(v value.Value) any {
	switch t := v.(type) {
	case value.Object:
		members := t
		if f.opts.SortKeys {
			members = slices.Clone(t)
			slices.SortFunc(members, func(a, c value.Member) int {
				return strings.Compare(a.Key, c.Key)
			})
		}
		out := make(yaml.MapSlice, 0, len(members))
		for _, m := range members {
			out = append(out, yaml.MapItem{Key: m.Key, Value: f.toYAML(m.Value)})
		}
		return out
	case value.Array:
		out := make([]any, 0, len(t))
		for _, elem := range t {
			out = append(out, f.toYAML(elem))
		}
		return out
	case value.String:
		return string(t)
	case value.Number:
		if t.IsInt() {
			return t.Int64()
		}
		return t.Float64()
	case value.Boolean:
		return bool(t)
	default:
		return nil
	}
}
