package paginate

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// AliasFunc derives the projection alias for a selected field path.
type AliasFunc func(path string) string

// DefaultAlias replaces every dot in a field path with an underscore.
func DefaultAlias(path string) string {
	return strings.ReplaceAll(path, ".", "_")
}

// SelectedField is one alias-to-column entry of the select projection.
// Aliases are unique within a projection.
type SelectedField struct {
	Alias  string
	Column Column
}

// buildSelect resolves requested field paths into a projection, in request
// order. Unmapped paths are skipped regardless of strict mode: omitting a
// column is benign, unlike filtering out a row. Colliding base aliases get a
// _N suffix counting prior collisions, while the earliest occurrence keeps
// the unsuffixed alias. The result is always non-nil, empty when nothing was
// requested or everything was skipped.
func (c *Compiler) buildSelect(paths []string) []SelectedField {
	out := make([]SelectedField, 0, len(paths))
	seen := make(map[string]int, len(paths))

	for _, path := range paths {
		col, ok := c.fields[path]
		if !ok {
			c.logger.Debug("Skipped unmapped select field", zap.String("field", path))
			continue
		}
		alias := c.alias(path)
		if n, collided := seen[alias]; collided {
			seen[alias] = n + 1
			alias = fmt.Sprintf("%s_%d", alias, n)
		} else {
			seen[alias] = 1
		}
		out = append(out, SelectedField{Alias: alias, Column: col})
	}
	return out
}
