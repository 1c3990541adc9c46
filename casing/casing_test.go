package casing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamelKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple snake case",
			input:    "snake_case",
			expected: "snakeCase",
		},
		{
			name:     "digit after underscore",
			input:    "snake_case_2",
			expected: "snakeCase2",
		},
		{
			name:     "double underscore keeps first",
			input:    "snake__case",
			expected: "snake_Case",
		},
		{
			name:     "trailing underscore preserved",
			input:    "snake_case_",
			expected: "snakeCase_",
		},
		{
			name:     "double trailing underscore preserved",
			input:    "snake_case__",
			expected: "snakeCase__",
		},
		{
			name:     "three segments",
			input:    "test_snake_case",
			expected: "testSnakeCase",
		},
		{
			name:     "no underscore is a no-op",
			input:    "alreadyCamel",
			expected: "alreadyCamel",
		},
		{
			name:     "empty key",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CamelKey(tt.input))
		})
	}
}

func TestToCamel(t *testing.T) {
	t.Run("converts top-level keys", func(t *testing.T) {
		got := ToCamel(map[string]any{"snake_case": "test"})
		assert.Equal(t, map[string]any{"snakeCase": "test"}, got)
	})

	t.Run("converts keys inside arrays", func(t *testing.T) {
		got := ToCamel([]any{map[string]any{"snake_case": "test"}})
		assert.Equal(t, []any{map[string]any{"snakeCase": "test"}}, got)
	})

	t.Run("converts nested objects", func(t *testing.T) {
		got := ToCamel(map[string]any{
			"snake_case": map[string]any{"snake_case": "test"},
		})
		assert.Equal(t, map[string]any{
			"snakeCase": map[string]any{"snakeCase": "test"},
		}, got)
	})

	t.Run("converts arrays nested in objects", func(t *testing.T) {
		got := ToCamel(map[string]any{
			"snake_case": []any{map[string]any{"snake_case": "x"}},
		})
		assert.Equal(t, map[string]any{
			"snakeCase": []any{map[string]any{"snakeCase": "x"}},
		}, got)
	})

	t.Run("converts many levels deep", func(t *testing.T) {
		got := ToCamel(map[string]any{
			"snake_case": map[string]any{
				"snake_case": map[string]any{
					"snake_case": []any{
						map[string]any{"snake_case": map[string]any{"snake_case": "test"}},
					},
				},
			},
		})
		assert.Equal(t, map[string]any{
			"snakeCase": map[string]any{
				"snakeCase": map[string]any{
					"snakeCase": []any{
						map[string]any{"snakeCase": map[string]any{"snakeCase": "test"}},
					},
				},
			},
		}, got)
	})

	t.Run("scalars and nil pass through", func(t *testing.T) {
		assert.Equal(t, "plain", ToCamel("plain"))
		assert.Equal(t, 42.0, ToCamel(42.0))
		assert.Equal(t, true, ToCamel(true))
		assert.Nil(t, ToCamel(nil))
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		in := map[string]any{"snake_case": []any{map[string]any{"inner_key": "v"}}}
		_ = ToCamel(in)

		assert.Contains(t, in, "snake_case")
		inner := in["snake_case"].([]any)[0].(map[string]any)
		assert.Contains(t, inner, "inner_key")
	})
}
