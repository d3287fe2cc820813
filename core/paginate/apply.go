package paginate

import (
	sq "github.com/Masterminds/squirrel"
)

// ApplyTo mechanically applies the compiled clauses to a squirrel select
// builder, in a fixed order: where, then orderBy, then limit, then offset.
// Absent clauses are skipped. This is a convenience composition; callers may
// instead consume the Clauses fields directly.
func (c *Clauses) ApplyTo(qb sq.SelectBuilder) sq.SelectBuilder {
	if c.Where != nil {
		qb = qb.Where(c.Where)
	}
	if len(c.OrderBy) > 0 {
		qb = qb.OrderBy(c.OrderBy...)
	}
	if c.Limit != nil {
		qb = qb.Limit(uint64(*c.Limit))
	}
	if c.Offset != nil {
		qb = qb.Offset(uint64(*c.Offset))
	}
	return qb
}

// SelectColumns renders the projection as "expr AS alias" column strings for
// a squirrel SELECT. An empty projection selects everything.
func (c *Clauses) SelectColumns() []string {
	if len(c.Select) == 0 {
		return []string{"*"}
	}
	cols := make([]string, len(c.Select))
	for i, f := range c.Select {
		cols[i] = f.Column.Expr + " AS " + f.Alias
	}
	return cols
}
