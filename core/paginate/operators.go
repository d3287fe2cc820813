package paginate

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Dialect identifies one of the built-in operator sets.
type Dialect string

// Supported dialects.
const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// OperatorSet bundles the primitive predicate and ordering builders the
// compiler dispatches to. It is an explicit struct of function values so a
// custom dialect is a constructor argument, not a subclass. Contains is the
// only optional primitive; a nil Contains marks a dialect without
// array-containment support.
type OperatorSet struct {
	Eq       func(col Column, value any) sq.Sqlizer
	IsNull   func(col Column) sq.Sqlizer
	In       func(col Column, values []any) sq.Sqlizer
	Contains func(col Column, values []any) sq.Sqlizer
	Gt       func(col Column, value any) sq.Sqlizer
	Gte      func(col Column, value any) sq.Sqlizer
	Lt       func(col Column, value any) sq.Sqlizer
	Lte      func(col Column, value any) sq.Sqlizer
	ILike    func(col Column, pattern string) sq.Sqlizer
	Not      func(expr sq.Sqlizer) sq.Sqlizer
	And      func(exprs []sq.Sqlizer) (sq.Sqlizer, error)
	Or       func(exprs []sq.Sqlizer) (sq.Sqlizer, error)
	Asc      func(col Column) string
	Desc     func(col Column) string
}

// baseOperators returns the primitives shared by every built-in dialect.
func baseOperators() OperatorSet {
	return OperatorSet{
		Eq: func(col Column, value any) sq.Sqlizer {
			return sq.Eq{col.Expr: value}
		},
		IsNull: func(col Column) sq.Sqlizer {
			return sq.Eq{col.Expr: nil}
		},
		In: func(col Column, values []any) sq.Sqlizer {
			return sq.Eq{col.Expr: values}
		},
		Gt: func(col Column, value any) sq.Sqlizer {
			return sq.Gt{col.Expr: value}
		},
		Gte: func(col Column, value any) sq.Sqlizer {
			return sq.GtOrEq{col.Expr: value}
		},
		Lt: func(col Column, value any) sq.Sqlizer {
			return sq.Lt{col.Expr: value}
		},
		Lte: func(col Column, value any) sq.Sqlizer {
			return sq.LtOrEq{col.Expr: value}
		},
		Not: func(expr sq.Sqlizer) sq.Sqlizer {
			return sq.Expr("NOT (?)", expr)
		},
		And: func(exprs []sq.Sqlizer) (sq.Sqlizer, error) {
			if len(exprs) == 0 {
				return nil, ErrEmptyCombinator
			}
			return sq.And(exprs), nil
		},
		Or: func(exprs []sq.Sqlizer) (sq.Sqlizer, error) {
			if len(exprs) == 0 {
				return nil, ErrEmptyCombinator
			}
			return sq.Or(exprs), nil
		},
		Asc: func(col Column) string {
			return col.Expr + " ASC"
		},
		Desc: func(col Column) string {
			return col.Expr + " DESC"
		},
	}
}

// PostgresOperators returns the built-in operator set for PostgreSQL.
// Case-insensitive pattern matching uses the native ILIKE primitive and
// containment compiles to the @> array operator.
func PostgresOperators() OperatorSet {
	ops := baseOperators()
	ops.ILike = func(col Column, pattern string) sq.Sqlizer {
		return sq.ILike{col.Expr: pattern}
	}
	ops.Contains = func(col Column, values []any) sq.Sqlizer {
		return sq.Expr(col.Expr+" @> ?", values)
	}
	return ops
}

// SQLiteOperators returns the built-in operator set for SQLite. LIKE is
// case-insensitive for ASCII under SQLite's default collation, so $ilike
// falls back to plain LIKE; the ESCAPE clause keeps the compiler's
// backslash-escaped patterns meaningful. SQLite has no array columns, so
// Contains is left nil and $contains is rejected at compile time.
func SQLiteOperators() OperatorSet {
	ops := baseOperators()
	ops.ILike = func(col Column, pattern string) sq.Sqlizer {
		return sq.Expr(col.Expr+" LIKE ? ESCAPE '\\'", pattern)
	}
	return ops
}

// OperatorsForDialect returns the built-in operator set for a dialect.
func OperatorsForDialect(dialect Dialect) (OperatorSet, error) {
	switch dialect {
	case DialectPostgres:
		return PostgresOperators(), nil
	case DialectSQLite:
		return SQLiteOperators(), nil
	default:
		return OperatorSet{}, fmt.Errorf("unknown dialect %q", dialect)
	}
}
