package paginate

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

// Config carries the per-compiler options. Fields is the only required
// entry; everything else has a documented default.
type Config struct {
	// Dialect selects a built-in operator set when Operators is nil.
	Dialect Dialect
	// Fields maps logical field paths to column handles. Required.
	Fields FieldMap
	// Operators overrides the dialect's built-in operator set.
	Operators *OperatorSet
	// StrictFieldMapping makes an unmapped filter field a hard failure
	// instead of a silent prune. Defaults to true. Select and sort fields
	// stay permissive either way.
	StrictFieldMapping *bool
	// SelectAlias overrides DefaultAlias for projection aliases.
	SelectAlias AliasFunc
}

// Compiler translates Requests into Clauses under a fixed field map,
// operator set, and mapping policy. A Compiler holds no per-call state, so
// concurrent Compile calls are safe and independent.
type Compiler struct {
	fields    FieldMap
	operators OperatorSet
	strict    bool
	alias     AliasFunc
	logger    *zap.Logger
}

// NewCompiler creates a compiler from a Config. A nil logger defaults to a
// no-op logger.
func NewCompiler(cfg Config, logger *zap.Logger) (*Compiler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Fields == nil {
		return nil, fmt.Errorf("field map cannot be nil")
	}

	ops := OperatorSet{}
	if cfg.Operators != nil {
		ops = *cfg.Operators
	} else {
		var err error
		ops, err = OperatorsForDialect(cfg.Dialect)
		if err != nil {
			return nil, err
		}
	}

	strict := true
	if cfg.StrictFieldMapping != nil {
		strict = *cfg.StrictFieldMapping
	}

	alias := cfg.SelectAlias
	if alias == nil {
		alias = DefaultAlias
	}

	logger.Debug("Configured pagination compiler",
		zap.Int("fields", len(cfg.Fields)),
		zap.Bool("strict", strict))

	return &Compiler{
		fields:    cfg.Fields,
		operators: ops,
		strict:    strict,
		alias:     alias,
		logger:    logger,
	}, nil
}

// Clauses is the immutable bundle produced by one Compile call.
type Clauses struct {
	// Select is the projection in request order. Always non-nil; empty when
	// the request selected nothing.
	Select []SelectedField
	// Where is nil when the request had no filter or every branch was
	// pruned.
	Where sq.Sqlizer
	// OrderBy holds squirrel ordering expressions. Nil when no sort key
	// survived; never empty-but-present.
	OrderBy []string
	// Limit is the request's limit, passed through unchanged.
	Limit *int
	// Offset is derived from page and limit, present only when both are.
	Offset *int
}

// Compile assembles the full clause bundle for a request: projection, filter
// predicate, sort list, limit passthrough, and offset arithmetic.
func (c *Compiler) Compile(req *Request) (*Clauses, error) {
	if req == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}

	clauses := &Clauses{
		Select: c.buildSelect(req.Select),
	}

	if req.Filters != nil {
		where, err := c.compileWhere(req.Filters)
		if err != nil {
			return nil, err
		}
		clauses.Where = where
	}

	clauses.OrderBy = c.compileOrder(req.SortBy)

	if req.Limit != nil {
		limit := *req.Limit
		clauses.Limit = &limit
		if req.Page != nil {
			// Page zero and negative pages normalize to page one.
			page := *req.Page
			if page < 1 {
				page = 1
			}
			offset := (page - 1) * limit
			clauses.Offset = &offset
		}
	}

	return clauses, nil
}

// compileOrder resolves sort keys in request order. Sort fields are
// advisory: unmapped entries are dropped even under strict mode.
func (c *Compiler) compileOrder(sorts []Sort) []string {
	var out []string
	for _, s := range sorts {
		col, ok := c.fields[s.Property]
		if !ok {
			c.logger.Debug("Skipped unmapped sort field", zap.String("field", s.Property))
			continue
		}
		if strings.EqualFold(string(s.Direction), string(SortDirectionDesc)) {
			out = append(out, c.operators.Desc(col))
		} else {
			out = append(out, c.operators.Asc(col))
		}
	}
	return out
}
