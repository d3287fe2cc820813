package paginate

import (
	"errors"
	"fmt"
)

// FieldMappingError reports a field path that has no entry in the field map
// while strict field mapping is enabled. It is fatal to the compilation call
// in progress; the caller must supply a complete field map or disable strict
// mode.
type FieldMappingError struct {
	Field string
}

func (e *FieldMappingError) Error() string {
	return fmt.Sprintf("no column mapped for field %q", e.Field)
}

// UnsupportedOperatorError reports a filter operator the active operator set
// cannot compile: either the set lacks a required primitive (containment on
// dialects without it), or the operator is outside the documented set.
type UnsupportedOperatorError struct {
	Operator FilterOperator
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("unsupported filter operator %q", e.Operator)
}

// ErrEmptyCombinator is returned by an OperatorSet's And/Or combinators when
// invoked with zero expressions. The filter-tree compiler guards arity before
// delegating, so this surfaces only when an operator set is misused directly.
var ErrEmptyCombinator = errors.New("cannot combine zero expressions")
