package parser

import (
	"errors"
	"reflect"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect Expr
	}{
		{
			name:   "identity",
			input:  ".",
			expect: Identity{},
		},
		{
			name:   "empty_input",
			input:  "",
			expect: Identity{},
		},
		{
			name:   "whitespace_input",
			input:  "   ",
			expect: Identity{},
		},
		{
			name:   "field_access",
			input:  ".name",
			expect: Field{Name: "name"},
		},
		{
			name:   "numeric_field_name",
			input:  ".1",
			expect: Field{Name: "1"},
		},
		{
			name:   "field_name_taken_verbatim",
			input:  ".foo.bar",
			expect: Field{Name: "foo.bar"},
		},
		{
			name:   "array_index",
			input:  ".[2]",
			expect: Index{N: 2},
		},
		{
			name:   "negative_array_index",
			input:  ".[-1]",
			expect: Index{N: -1},
		},
		{
			name:   "slice_full",
			input:  ".[1:8:2]",
			expect: Slice{Start: intPtr(1), End: intPtr(8), Step: intPtr(2)},
		},
		{
			name:   "slice_start_only",
			input:  ".[2:]",
			expect: Slice{Start: intPtr(2)},
		},
		{
			name:   "slice_end_only",
			input:  ".[:3]",
			expect: Slice{End: intPtr(3)},
		},
		{
			name:   "slice_empty_bounds",
			input:  ".[::2]",
			expect: Slice{Step: intPtr(2)},
		},
		{
			name:   "slice_negative_bounds",
			input:  ".[-3:-1]",
			expect: Slice{Start: intPtr(-3), End: intPtr(-1)},
		},
		{
			name:   "iterate",
			input:  ".[]",
			expect: Iterate{Inner: Identity{}},
		},
		{
			name:  "iterate_chained_field",
			input: ".[].name",
			expect: Pipe{
				Left:  Iterate{Inner: Identity{}},
				Right: Field{Name: "name"},
			},
		},
		{
			name:   "map_field",
			input:  "map(.name)",
			expect: Map{Inner: Field{Name: "name"}},
		},
		{
			name:   "select_field",
			input:  "select(.active)",
			expect: Select{Cond: Field{Name: "active"}},
		},
		{
			name:  "pipe",
			input: ".user | .name",
			expect: Pipe{
				Left:  Field{Name: "user"},
				Right: Field{Name: "name"},
			},
		},
		{
			name:  "pipe_associates_right",
			input: ".a | .b | .c",
			expect: Pipe{
				Left: Field{Name: "a"},
				Right: Pipe{
					Left:  Field{Name: "b"},
					Right: Field{Name: "c"},
				},
			},
		},
		{
			name:  "pipe_ignored_inside_parens",
			input: "select(.a | .b)",
			expect: Select{
				Cond: Pipe{
					Left:  Field{Name: "a"},
					Right: Field{Name: "b"},
				},
			},
		},
		{
			name:  "iterate_select_project",
			input: ".[] | select(.active) | .name",
			expect: Pipe{
				Left: Iterate{Inner: Identity{}},
				Right: Pipe{
					Left:  Select{Cond: Field{Name: "active"}},
					Right: Field{Name: "name"},
				},
			},
		},
		{
			name:   "pipe_with_empty_side",
			input:  ".name |",
			expect: Pipe{Left: Field{Name: "name"}, Right: Identity{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.expect) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.expect)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"unterminated_map", "map("},
		{"unterminated_select", "select(.active"},
		{"bare_word", "name"},
		{"non_integer_index", ".[abc]"},
		{"non_integer_slice_bound", ".[1:x]"},
		{"too_many_slice_parts", ".[1:2:3:4]"},
		{"iterate_with_bad_suffix", ".[]x"},
		{"iterate_with_index_suffix", ".[][0]"},
		{"unclosed_bracket", ".[2"},
		{"stray_operator", "+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) expected error, got nil", tt.input)
			}
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("Parse(%q) error = %v, want ErrSyntax", tt.input, err)
			}
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	t.Parallel()

	inputs := []string{".", ".name", ".[] | select(.active) | .name", "map(.id)", ".[1:8:2]"}
	for _, input := range inputs {
		first, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", input, err)
		}
		second, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", input, err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Parse(%q) not deterministic: %#v != %#v", input, first, second)
		}
	}
}
