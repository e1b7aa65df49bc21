package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jacoelho/qj/internal/value"
)

func TestYAMLWrite(t *testing.T) {
	t.Run("object keeps key order", func(t *testing.T) {
		var b strings.Builder
		f := NewYAML(&b, Options{})

		input := value.Object{
			{Key: "zebra", Value: value.Int(1)},
			{Key: "apple", Value: value.Int(2)},
		}
		require.NoError(t, f.Write(input))
		require.Equal(t, "zebra: 1\napple: 2\n", b.String())
	})

	t.Run("sorted keys", func(t *testing.T) {
		var b strings.Builder
		f := NewYAML(&b, Options{SortKeys: true})

		input := value.Object{
			{Key: "zebra", Value: value.Int(1)},
			{Key: "apple", Value: value.Int(2)},
		}
		require.NoError(t, f.Write(input))
		require.Equal(t, "apple: 2\nzebra: 1\n", b.String())
	})

	t.Run("multiple results become documents", func(t *testing.T) {
		var b strings.Builder
		f := NewYAML(&b, Options{})

		require.NoError(t, f.Write(value.Object{{Key: "a", Value: value.Int(1)}}))
		require.NoError(t, f.Write(value.Object{{Key: "b", Value: value.Int(2)}}))
		require.Equal(t, "a: 1\n---\nb: 2\n", b.String())
	})

	t.Run("scalars", func(t *testing.T) {
		var b strings.Builder
		f := NewYAML(&b, Options{})

		input := value.Array{
			value.String("text"),
			value.Int(3),
			value.Float(0.5),
			value.Boolean(true),
			value.Null{},
		}
		require.NoError(t, f.Write(input))
		require.Equal(t, "- text\n- 3\n- 0.5\n- true\n- null\n", b.String())
	})
}
