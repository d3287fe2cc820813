package paginate

// RequestBuilder provides a fluent API for constructing Request values. It
// produces the same pre-validated structures an upstream request parser
// would, which keeps hand-written requests (tests, fixtures, internal
// callers) out of the business of assembling filter-tree nodes directly.
type RequestBuilder struct {
	request Request
}

// NewRequestBuilder creates a new, empty request builder instance.
func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{}
}

// Build returns the constructed Request.
func (rb *RequestBuilder) Build() Request {
	return rb.request
}

// Clone creates a copy of the current builder, allowing new requests to be
// derived from an existing one without modifying the original.
func (rb *RequestBuilder) Clone() *RequestBuilder {
	clone := &RequestBuilder{request: rb.request}
	clone.request.Select = append([]string(nil), rb.request.Select...)
	clone.request.SortBy = append([]Sort(nil), rb.request.SortBy...)
	return clone
}

// Reset clears all configuration, returning the builder to its initial state.
func (rb *RequestBuilder) Reset() *RequestBuilder {
	rb.request = Request{}
	return rb
}

// Page sets the 1-based page number.
func (rb *RequestBuilder) Page(page int) *RequestBuilder {
	rb.request.Page = &page
	return rb
}

// Limit sets the maximum number of rows per page.
func (rb *RequestBuilder) Limit(limit int) *RequestBuilder {
	rb.request.Limit = &limit
	return rb
}

// Select appends field paths to the projection list.
func (rb *RequestBuilder) Select(paths ...string) *RequestBuilder {
	rb.request.Select = append(rb.request.Select, paths...)
	return rb
}

// SortBy appends a sort key.
func (rb *RequestBuilder) SortBy(property string, direction SortDirection) *RequestBuilder {
	rb.request.SortBy = append(rb.request.SortBy, Sort{Property: property, Direction: direction})
	return rb
}

// SortByAsc appends an ascending sort key.
func (rb *RequestBuilder) SortByAsc(property string) *RequestBuilder {
	return rb.SortBy(property, SortDirectionAsc)
}

// SortByDesc appends a descending sort key.
func (rb *RequestBuilder) SortByDesc(property string) *RequestBuilder {
	return rb.SortBy(property, SortDirectionDesc)
}

// Filter sets the root of the filter tree directly.
func (rb *RequestBuilder) Filter(node WhereNode) *RequestBuilder {
	rb.request.Filters = node
	return rb
}

// Where begins the construction of a single filter condition that becomes
// the root of the filter tree.
func (rb *RequestBuilder) Where(field string) *ConditionBuilder {
	return &ConditionBuilder{parent: rb, field: field}
}

// WhereAnd begins the construction of a conjunction group that becomes the
// root of the filter tree once End is called.
func (rb *RequestBuilder) WhereAnd() *GroupBuilder {
	return &GroupBuilder{parent: rb}
}

// WhereOr begins the construction of a disjunction group that becomes the
// root of the filter tree once End is called.
func (rb *RequestBuilder) WhereOr() *GroupBuilder {
	return &GroupBuilder{parent: rb, or: true}
}

// ConditionBuilder is used to build a single root filter condition. It is
// not intended to be used directly but is part of the fluent API.
type ConditionBuilder struct {
	parent *RequestBuilder
	field  string
	not    bool
}

// Not negates the condition built by the following operator call.
func (cb *ConditionBuilder) Not() *ConditionBuilder {
	cb.not = true
	return cb
}

// Eq adds an equality condition.
func (cb *ConditionBuilder) Eq(value any) *RequestBuilder {
	return cb.add(FilterOperatorEq, value)
}

// Null adds an is-null condition.
func (cb *ConditionBuilder) Null() *RequestBuilder {
	return cb.add(FilterOperatorNull, nil)
}

// In adds a membership condition against a sequence of scalars.
func (cb *ConditionBuilder) In(values ...any) *RequestBuilder {
	return cb.add(FilterOperatorIn, values)
}

// Contains adds an array-containment condition.
func (cb *ConditionBuilder) Contains(values ...any) *RequestBuilder {
	return cb.add(FilterOperatorContains, values)
}

// Gt adds a greater-than condition.
func (cb *ConditionBuilder) Gt(value any) *RequestBuilder {
	return cb.add(FilterOperatorGt, value)
}

// Gte adds a greater-than-or-equal condition.
func (cb *ConditionBuilder) Gte(value any) *RequestBuilder {
	return cb.add(FilterOperatorGte, value)
}

// Lt adds a less-than condition.
func (cb *ConditionBuilder) Lt(value any) *RequestBuilder {
	return cb.add(FilterOperatorLt, value)
}

// Lte adds a less-than-or-equal condition.
func (cb *ConditionBuilder) Lte(value any) *RequestBuilder {
	return cb.add(FilterOperatorLte, value)
}

// Between adds a range condition over an inclusive [start, end] pair.
func (cb *ConditionBuilder) Between(start, end any) *RequestBuilder {
	return cb.add(FilterOperatorBtw, []any{start, end})
}

// ILike adds a case-insensitive substring-match condition.
func (cb *ConditionBuilder) ILike(value string) *RequestBuilder {
	return cb.add(FilterOperatorILike, value)
}

// StartsWith adds a prefix-match condition.
func (cb *ConditionBuilder) StartsWith(value string) *RequestBuilder {
	return cb.add(FilterOperatorSw, value)
}

// add is an internal helper that installs the leaf as the filter-tree root.
func (cb *ConditionBuilder) add(operator FilterOperator, value any) *RequestBuilder {
	cb.parent.request.Filters = Filter{
		Field: cb.field,
		Condition: Condition{
			Operator: operator,
			Value:    value,
			Not:      cb.not,
		},
	}
	return cb.parent
}

// GroupBuilder is used to build a group of filter conditions combined with a
// logical connective.
type GroupBuilder struct {
	parent *RequestBuilder
	or     bool
	items  []WhereNode
}

// Where adds a new condition to the current group.
func (gb *GroupBuilder) Where(field string) *GroupConditionBuilder {
	return &GroupConditionBuilder{group: gb, field: field}
}

// Node appends a pre-built filter node, allowing nested groups.
func (gb *GroupBuilder) Node(node WhereNode) *GroupBuilder {
	gb.items = append(gb.items, node)
	return gb
}

// End finalizes the group, installs it as the filter-tree root, and returns
// to the request builder.
func (gb *GroupBuilder) End() *RequestBuilder {
	if gb.or {
		gb.parent.request.Filters = Or{Items: gb.items}
	} else {
		gb.parent.request.Filters = And{Items: gb.items}
	}
	return gb.parent
}

// GroupConditionBuilder is used to build a filter condition within a group.
type GroupConditionBuilder struct {
	group *GroupBuilder
	field string
	not   bool
}

// Not negates the condition built by the following operator call.
func (gcb *GroupConditionBuilder) Not() *GroupConditionBuilder {
	gcb.not = true
	return gcb
}

// Eq adds an equality condition to the current group.
func (gcb *GroupConditionBuilder) Eq(value any) *GroupBuilder {
	return gcb.add(FilterOperatorEq, value)
}

// Null adds an is-null condition to the current group.
func (gcb *GroupConditionBuilder) Null() *GroupBuilder {
	return gcb.add(FilterOperatorNull, nil)
}

// In adds a membership condition to the current group.
func (gcb *GroupConditionBuilder) In(values ...any) *GroupBuilder {
	return gcb.add(FilterOperatorIn, values)
}

// Contains adds an array-containment condition to the current group.
func (gcb *GroupConditionBuilder) Contains(values ...any) *GroupBuilder {
	return gcb.add(FilterOperatorContains, values)
}

// Gt adds a greater-than condition to the current group.
func (gcb *GroupConditionBuilder) Gt(value any) *GroupBuilder {
	return gcb.add(FilterOperatorGt, value)
}

// Gte adds a greater-than-or-equal condition to the current group.
func (gcb *GroupConditionBuilder) Gte(value any) *GroupBuilder {
	return gcb.add(FilterOperatorGte, value)
}

// Lt adds a less-than condition to the current group.
func (gcb *GroupConditionBuilder) Lt(value any) *GroupBuilder {
	return gcb.add(FilterOperatorLt, value)
}

// Lte adds a less-than-or-equal condition to the current group.
func (gcb *GroupConditionBuilder) Lte(value any) *GroupBuilder {
	return gcb.add(FilterOperatorLte, value)
}

// Between adds a range condition to the current group.
func (gcb *GroupConditionBuilder) Between(start, end any) *GroupBuilder {
	return gcb.add(FilterOperatorBtw, []any{start, end})
}

// ILike adds a case-insensitive substring-match condition to the current group.
func (gcb *GroupConditionBuilder) ILike(value string) *GroupBuilder {
	return gcb.add(FilterOperatorILike, value)
}

// StartsWith adds a prefix-match condition to the current group.
func (gcb *GroupConditionBuilder) StartsWith(value string) *GroupBuilder {
	return gcb.add(FilterOperatorSw, value)
}

// add is an internal helper that appends the leaf to the group.
func (gcb *GroupConditionBuilder) add(operator FilterOperator, value any) *GroupBuilder {
	gcb.group.items = append(gcb.group.items, Filter{
		Field: gcb.field,
		Condition: Condition{
			Operator: operator,
			Value:    value,
			Not:      gcb.not,
		},
	})
	return gcb.group
}
