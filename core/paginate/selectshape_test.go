package paginate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAlias(t *testing.T) {
	assert.Equal(t, "name", DefaultAlias("name"))
	assert.Equal(t, "profile_city", DefaultAlias("profile.city"))
	assert.Equal(t, "a_b_c", DefaultAlias("a.b.c"))
}

func TestBuildSelect(t *testing.T) {
	fields := FieldMap{
		"name":         Col(`"name"`),
		"profile.city": Col(`"city"`),
		"profile_city": Col(`"legacy_city"`),
		"age":          Col(`"age"`),
	}

	tests := []struct {
		name     string
		paths    []string
		expected []SelectedField
	}{
		{
			name:     "empty paths yield an empty, non-nil projection",
			paths:    nil,
			expected: []SelectedField{},
		},
		{
			name:  "paths resolve in request order",
			paths: []string{"age", "name"},
			expected: []SelectedField{
				{Alias: "age", Column: Col(`"age"`)},
				{Alias: "name", Column: Col(`"name"`)},
			},
		},
		{
			name:  "dotted paths alias with underscores",
			paths: []string{"profile.city"},
			expected: []SelectedField{
				{Alias: "profile_city", Column: Col(`"city"`)},
			},
		},
		{
			name:  "colliding aliases get numbered suffixes",
			paths: []string{"profile.city", "profile_city"},
			expected: []SelectedField{
				{Alias: "profile_city", Column: Col(`"city"`)},
				{Alias: "profile_city_1", Column: Col(`"legacy_city"`)},
			},
		},
		{
			name:  "repeated path counts as a collision",
			paths: []string{"name", "name", "name"},
			expected: []SelectedField{
				{Alias: "name", Column: Col(`"name"`)},
				{Alias: "name_1", Column: Col(`"name"`)},
				{Alias: "name_2", Column: Col(`"name"`)},
			},
		},
		{
			name:  "unmapped paths are skipped silently",
			paths: []string{"name", "missing", "age"},
			expected: []SelectedField{
				{Alias: "name", Column: Col(`"name"`)},
				{Alias: "age", Column: Col(`"age"`)},
			},
		},
		{
			name:     "all paths unmapped yields empty projection",
			paths:    []string{"missing", "gone"},
			expected: []SelectedField{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Select resolution is always permissive, so strict mode must
			// not change the outcome.
			for _, strict := range []bool{true, false} {
				c, err := NewCompiler(Config{
					Dialect:            DialectPostgres,
					Fields:             fields,
					StrictFieldMapping: BoolPtr(strict),
				}, nil)
				require.NoError(t, err)

				got := c.buildSelect(tt.paths)
				require.NotNil(t, got)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestBuildSelect_CustomAliasFn(t *testing.T) {
	c, err := NewCompiler(Config{
		Dialect: DialectPostgres,
		Fields:  FieldMap{"profile.city": Col(`"city"`)},
		SelectAlias: func(path string) string {
			return strings.ReplaceAll(path, ".", "__")
		},
	}, nil)
	require.NoError(t, err)

	got := c.buildSelect([]string{"profile.city"})
	require.Len(t, got, 1)
	assert.Equal(t, "profile__city", got[0].Alias)
}
