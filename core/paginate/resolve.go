package paginate

// Column is an opaque handle to a queryable column. Expr is the SQL
// reference squirrel interpolates verbatim, e.g. a quoted column name, a
// table-qualified name, or a json_extract(...) accessor.
type Column struct {
	Expr string
}

// Col wraps a SQL column reference in a Column handle.
func Col(expr string) Column {
	return Column{Expr: expr}
}

// FieldMap maps logical field paths to column handles. Dotted paths are keys
// in their own right; the map is never traversed segment by segment. The map
// is supplied by the caller and used read-only.
type FieldMap map[string]Column

// resolveField looks up a field path in the map. Under strict mode an
// unmapped path is a *FieldMappingError; under permissive mode it resolves
// to nothing and the caller drops the reference.
func resolveField(path string, fields FieldMap, strict bool) (Column, bool, error) {
	if col, ok := fields[path]; ok {
		return col, true, nil
	}
	if strict {
		return Column{}, false, &FieldMappingError{Field: path}
	}
	return Column{}, false, nil
}
