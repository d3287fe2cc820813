// Package paginate translates validated pagination requests (page and limit,
// sort keys, a boolean filter tree, and an optional field-selection list)
// into the concrete clauses consumed by a squirrel query builder. The package
// assumes its input has already been parsed and validated upstream; it does
// not re-validate request shape.
package paginate

// FilterOperator identifies the comparison applied by a single filter
// condition. The names mirror the request DSL tokens produced by the
// upstream parser.
type FilterOperator string

// Supported filter operators.
const (
	FilterOperatorEq       FilterOperator = "$eq"
	FilterOperatorNull     FilterOperator = "$null"
	FilterOperatorIn       FilterOperator = "$in"
	FilterOperatorContains FilterOperator = "$contains"
	FilterOperatorGt       FilterOperator = "$gt"
	FilterOperatorGte      FilterOperator = "$gte"
	FilterOperatorLt       FilterOperator = "$lt"
	FilterOperatorLte      FilterOperator = "$lte"
	FilterOperatorBtw      FilterOperator = "$btw"
	FilterOperatorILike    FilterOperator = "$ilike"
	FilterOperatorSw       FilterOperator = "$sw"
)

// standardFilterOperators is the set of all built-in filter operators.
var standardFilterOperators = map[FilterOperator]struct{}{
	FilterOperatorEq:       {},
	FilterOperatorNull:     {},
	FilterOperatorIn:       {},
	FilterOperatorContains: {},
	FilterOperatorGt:       {},
	FilterOperatorGte:      {},
	FilterOperatorLt:       {},
	FilterOperatorLte:      {},
	FilterOperatorBtw:      {},
	FilterOperatorILike:    {},
	FilterOperatorSw:       {},
}

// IsStandard checks if a filter operator is one of the built-in operators.
func (op FilterOperator) IsStandard() bool {
	_, ok := standardFilterOperators[op]
	return ok
}

// Condition describes the comparison applied to a single filter-tree leaf.
type Condition struct {
	Group    string         // Diagnostic label carried through from the upstream parser.
	Operator FilterOperator // The comparison operator to apply.
	Value    any            // Operator-dependent payload; its shape is validated upstream.
	Not      bool           // Negates the compiled expression as a final wrapping step.
}

// WhereNode is a node of the boolean filter tree: either a Filter leaf or an
// And/Or group. The interface is closed so every consumer can match
// exhaustively; adding a node kind without updating the compiler is a
// compile-time error, not a silent fallthrough.
type WhereNode interface {
	isWhereNode()
}

// Filter is a leaf of the filter tree: one field path compared under one
// condition.
type Filter struct {
	Field     string
	Condition Condition
}

func (Filter) isWhereNode() {}

// And is a conjunction group. It may be empty or hold a single child.
type And struct {
	Items []WhereNode
}

func (And) isWhereNode() {}

// Or is a disjunction group. It may be empty or hold a single child.
type Or struct {
	Items []WhereNode
}

func (Or) isWhereNode() {}

// SortDirection specifies the direction for sorting.
type SortDirection string

// Supported sort directions.
const (
	SortDirectionAsc  SortDirection = "ASC"
	SortDirectionDesc SortDirection = "DESC"
)

// Sort defines the sorting order for a single field path.
type Sort struct {
	Property  string        // The field path to sort by.
	Direction SortDirection // The direction of the sort.
}

// Request is a validated pagination request. It is consumed read-only; the
// compiler never mutates it. Page and Limit are pointers because both are
// optional: an absent limit suppresses the offset computation entirely.
type Request struct {
	Page    *int      // 1-based page number; zero and negatives normalize to page 1.
	Limit   *int      // Maximum number of rows per page.
	Select  []string  // Field paths to project, in request order.
	SortBy  []Sort    // Sort keys, in request order.
	Filters WhereNode // Root of the filter tree; nil when the request has no filter.
}
