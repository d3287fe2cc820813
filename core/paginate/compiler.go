package paginate

import (
	"fmt"
	"reflect"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

// likeEscaper backslash-escapes LIKE metacharacters in a literal value so
// user-supplied text cannot inject wildcards into a pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// compileCondition translates a single leaf condition against a resolved
// column into one predicate expression. Negation wraps the compiled
// expression as a final step rather than selecting a per-operator variant.
func compileCondition(cond Condition, col Column, ops OperatorSet) (sq.Sqlizer, error) {
	var expr sq.Sqlizer

	switch cond.Operator {
	case FilterOperatorNull:
		expr = ops.IsNull(col)
	case FilterOperatorEq:
		expr = ops.Eq(col, cond.Value)
	case FilterOperatorIn:
		expr = ops.In(col, toValueSlice(cond.Value))
	case FilterOperatorContains:
		if ops.Contains == nil {
			return nil, &UnsupportedOperatorError{Operator: cond.Operator}
		}
		expr = ops.Contains(col, toValueSlice(cond.Value))
	case FilterOperatorGt:
		expr = ops.Gt(col, cond.Value)
	case FilterOperatorGte:
		expr = ops.Gte(col, cond.Value)
	case FilterOperatorLt:
		expr = ops.Lt(col, cond.Value)
	case FilterOperatorLte:
		expr = ops.Lte(col, cond.Value)
	case FilterOperatorBtw:
		// Compiled as gte(start) AND lte(end) so dialects need not provide
		// a BETWEEN primitive. The pair's ordering is an upstream concern.
		pair := toValueSlice(cond.Value)
		var start, end any
		if len(pair) > 0 {
			start = pair[0]
		}
		if len(pair) > 1 {
			end = pair[1]
		}
		combined, err := ops.And([]sq.Sqlizer{ops.Gte(col, start), ops.Lte(col, end)})
		if err != nil {
			return nil, err
		}
		expr = combined
	case FilterOperatorILike:
		expr = ops.ILike(col, "%"+likeEscaper.Replace(stringValue(cond.Value))+"%")
	case FilterOperatorSw:
		expr = ops.ILike(col, likeEscaper.Replace(stringValue(cond.Value))+"%")
	default:
		return nil, &UnsupportedOperatorError{Operator: cond.Operator}
	}

	if cond.Not {
		expr = ops.Not(expr)
	}
	return expr, nil
}

// compileWhere recursively compiles a filter tree into a single predicate.
// A nil expression with a nil error means the branch was pruned: its field
// (or every field under it) had no mapping under permissive mode.
func (c *Compiler) compileWhere(node WhereNode) (sq.Sqlizer, error) {
	switch n := node.(type) {
	case nil:
		return nil, nil
	case Filter:
		col, ok, err := resolveField(n.Field, c.fields, c.strict)
		if err != nil {
			return nil, err
		}
		if !ok {
			c.logger.Debug("Pruned filter on unmapped field", zap.String("field", n.Field))
			return nil, nil
		}
		return compileCondition(n.Condition, col, c.operators)
	case And:
		return c.compileGroup(n.Items, c.operators.And)
	case Or:
		return c.compileGroup(n.Items, c.operators.Or)
	default:
		return nil, fmt.Errorf("unknown filter node type %T", node)
	}
}

// compileGroup compiles the children of an And/Or group and combines the
// survivors. An empty or fully-pruned group vanishes rather than becoming an
// always-true or always-false sentinel, and a singleton group flattens to its
// child's expression without redundant wrapping.
func (c *Compiler) compileGroup(items []WhereNode, combine func([]sq.Sqlizer) (sq.Sqlizer, error)) (sq.Sqlizer, error) {
	exprs := make([]sq.Sqlizer, 0, len(items))
	for _, item := range items {
		expr, err := c.compileWhere(item)
		if err != nil {
			return nil, err
		}
		if expr != nil {
			exprs = append(exprs, expr)
		}
	}

	switch len(exprs) {
	case 0:
		return nil, nil
	case 1:
		return exprs[0], nil
	default:
		return combine(exprs)
	}
}

// toValueSlice normalizes a sequence-shaped operator payload into []any.
// Upstream validation guarantees $in/$contains/$btw carry sequences, but the
// concrete slice type depends on the caller, so reflection bridges typed
// slices. A bare scalar is wrapped as a single-element sequence.
func toValueSlice(value any) []any {
	switch v := value.(type) {
	case nil:
		return nil
	case []any:
		return v
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	return []any{value}
}

// stringValue renders a scalar payload as the literal text interpolated into
// a LIKE pattern.
func stringValue(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
