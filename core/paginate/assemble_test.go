package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompiler(t *testing.T) {
	t.Run("requires a field map", func(t *testing.T) {
		_, err := NewCompiler(Config{Dialect: DialectPostgres}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "field map")
	})

	t.Run("rejects an unknown dialect", func(t *testing.T) {
		_, err := NewCompiler(Config{Dialect: "oracle", Fields: FieldMap{}}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "oracle")
	})

	t.Run("an explicit operator set skips dialect selection", func(t *testing.T) {
		ops := SQLiteOperators()
		c, err := NewCompiler(Config{Fields: FieldMap{}, Operators: &ops}, nil)
		require.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("strict field mapping defaults to true", func(t *testing.T) {
		c, err := NewCompiler(Config{
			Dialect: DialectPostgres,
			Fields:  FieldMap{"name": Col(`"name"`)},
		}, nil)
		require.NoError(t, err)

		_, err = c.Compile(&Request{
			Filters: Filter{Field: "missing", Condition: Condition{Operator: FilterOperatorEq, Value: 1}},
		})
		var mapErr *FieldMappingError
		require.ErrorAs(t, err, &mapErr)
	})
}

func TestCompile_NilRequest(t *testing.T) {
	c := testCompiler(t, true)
	_, err := c.Compile(nil)
	require.Error(t, err)
}

func TestCompile_PageAndLimitOnly(t *testing.T) {
	c := testCompiler(t, true)

	clauses, err := c.Compile(&Request{Page: IntPtr(2), Limit: IntPtr(10)})
	require.NoError(t, err)

	assert.NotNil(t, clauses.Select)
	assert.Empty(t, clauses.Select)
	assert.Nil(t, clauses.Where)
	assert.Nil(t, clauses.OrderBy)
	require.NotNil(t, clauses.Limit)
	assert.Equal(t, 10, *clauses.Limit)
	require.NotNil(t, clauses.Offset)
	assert.Equal(t, 10, *clauses.Offset)
}

func TestCompile_OffsetArithmetic(t *testing.T) {
	tests := []struct {
		name           string
		page           *int
		limit          *int
		expectedOffset *int
		expectedLimit  *int
	}{
		{name: "page 0 yields offset 0", page: IntPtr(0), limit: IntPtr(10), expectedOffset: IntPtr(0), expectedLimit: IntPtr(10)},
		{name: "page 1 yields offset 0", page: IntPtr(1), limit: IntPtr(10), expectedOffset: IntPtr(0), expectedLimit: IntPtr(10)},
		{name: "negative page normalizes to page 1", page: IntPtr(-3), limit: IntPtr(10), expectedOffset: IntPtr(0), expectedLimit: IntPtr(10)},
		{name: "page 3 with limit 25", page: IntPtr(3), limit: IntPtr(25), expectedOffset: IntPtr(50), expectedLimit: IntPtr(25)},
		{name: "absent limit suppresses offset", page: IntPtr(3), expectedLimit: nil},
		{name: "absent page suppresses offset but keeps limit", limit: IntPtr(10), expectedLimit: IntPtr(10)},
		{name: "absent page and limit yield neither", expectedLimit: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCompiler(t, true)
			clauses, err := c.Compile(&Request{Page: tt.page, Limit: tt.limit})
			require.NoError(t, err)

			assert.Equal(t, tt.expectedLimit, clauses.Limit)
			assert.Equal(t, tt.expectedOffset, clauses.Offset)
		})
	}
}

func TestCompile_OrderBy(t *testing.T) {
	tests := []struct {
		name     string
		strict   bool
		sortBy   []Sort
		expected []string
	}{
		{
			name:     "absent sortBy yields absent orderBy",
			strict:   true,
			sortBy:   nil,
			expected: nil,
		},
		{
			name:   "sort keys map in request order",
			strict: true,
			sortBy: []Sort{
				{Property: "age", Direction: SortDirectionDesc},
				{Property: "name", Direction: SortDirectionAsc},
			},
			expected: []string{`"age" DESC`, `"name" ASC`},
		},
		{
			name:     "lowercase direction is accepted",
			strict:   true,
			sortBy:   []Sort{{Property: "age", Direction: "desc"}},
			expected: []string{`"age" DESC`},
		},
		{
			name:     "unknown direction defaults to ascending",
			strict:   true,
			sortBy:   []Sort{{Property: "age", Direction: "sideways"}},
			expected: []string{`"age" ASC`},
		},
		{
			name:   "unmapped sort keys are dropped even under strict mode",
			strict: true,
			sortBy: []Sort{
				{Property: "missing", Direction: SortDirectionAsc},
				{Property: "age", Direction: SortDirectionAsc},
			},
			expected: []string{`"age" ASC`},
		},
		{
			name:     "fully pruned sortBy yields absent orderBy",
			strict:   true,
			sortBy:   []Sort{{Property: "missing", Direction: SortDirectionAsc}},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCompiler(t, tt.strict)
			clauses, err := c.Compile(&Request{SortBy: tt.sortBy})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, clauses.OrderBy)
		})
	}
}

func TestCompile_FullRequest(t *testing.T) {
	c := testCompiler(t, true)

	req := Request{
		Page:   IntPtr(2),
		Limit:  IntPtr(5),
		Select: []string{"name", "profile.city"},
		SortBy: []Sort{{Property: "age", Direction: SortDirectionDesc}},
		Filters: And{Items: []WhereNode{
			Filter{Field: "age", Condition: Condition{Operator: FilterOperatorGte, Value: 18}},
			Filter{Field: "name", Condition: Condition{Operator: FilterOperatorILike, Value: "ali"}},
		}},
	}

	clauses, err := c.Compile(&req)
	require.NoError(t, err)

	assert.Equal(t, []SelectedField{
		{Alias: "name", Column: Col(`"name"`)},
		{Alias: "profile_city", Column: Col(`"city"`)},
	}, clauses.Select)

	require.NotNil(t, clauses.Where)
	sqlText, args, err := clauses.Where.ToSql()
	require.NoError(t, err)
	assert.Equal(t, `("age" >= ? AND "name" ILIKE ?)`, sqlText)
	assert.Equal(t, []any{18, "%ali%"}, args)

	assert.Equal(t, []string{`"age" DESC`}, clauses.OrderBy)
	require.NotNil(t, clauses.Limit)
	assert.Equal(t, 5, *clauses.Limit)
	require.NotNil(t, clauses.Offset)
	assert.Equal(t, 5, *clauses.Offset)
}

func TestCompile_PermissiveFilterVanishes(t *testing.T) {
	c := testCompiler(t, false)

	clauses, err := c.Compile(&Request{
		Filters: Filter{Field: "missing", Condition: Condition{Operator: FilterOperatorEq, Value: 1}},
	})
	require.NoError(t, err)
	assert.Nil(t, clauses.Where)
}

func TestCompile_RequestIsNotMutated(t *testing.T) {
	c := testCompiler(t, false)

	req := Request{
		Page:   IntPtr(0),
		Limit:  IntPtr(10),
		Select: []string{"name", "missing"},
		SortBy: []Sort{{Property: "missing", Direction: SortDirectionAsc}},
	}
	_, err := c.Compile(&req)
	require.NoError(t, err)

	assert.Equal(t, 0, *req.Page)
	assert.Equal(t, []string{"name", "missing"}, req.Select)
	assert.Equal(t, []Sort{{Property: "missing", Direction: SortDirectionAsc}}, req.SortBy)
}
