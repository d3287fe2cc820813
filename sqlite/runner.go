// Package sqlite executes paginated queries against a SQLite database. It is
// a thin harness over the core compiler: the caller owns the database handle
// and the field map, the compiler owns clause construction, and this package
// only renders, executes, and scans.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/asaidimu/go-paginate/core/paginate"
	"go.uber.org/zap"
)

// Runner executes compiled pagination requests against a caller-owned
// database handle. It does not open, close, or otherwise manage the
// connection.
type Runner struct {
	db       *sql.DB
	table    string
	compiler *paginate.Compiler
	logger   *zap.Logger
}

// NewRunner creates a runner bound to one table and one compiler.
func NewRunner(db *sql.DB, table string, compiler *paginate.Compiler, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{db: db, table: table, compiler: compiler, logger: logger}
}

// Query compiles a request, renders it through squirrel with question-mark
// placeholders, executes it, and scans the result set into generic row maps.
func (r *Runner) Query(ctx context.Context, req *paginate.Request) ([]map[string]any, error) {
	clauses, err := r.compiler.Compile(req)
	if err != nil {
		return nil, fmt.Errorf("failed to compile request: %w", err)
	}

	qb := sq.Select(clauses.SelectColumns()...).From(r.table)
	qb = clauses.ApplyTo(qb)

	sqlText, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to render query: %w", err)
	}
	r.logger.Debug("Executing paginated query",
		zap.String("sql", sqlText),
		zap.Int("args", len(args)))

	rows, err := r.db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	return readRows(rows)
}

// Count returns the number of rows matching the request's filter, ignoring
// projection, sorting, and pagination.
func (r *Runner) Count(ctx context.Context, req *paginate.Request) (int, error) {
	clauses, err := r.compiler.Compile(req)
	if err != nil {
		return 0, fmt.Errorf("failed to compile request: %w", err)
	}

	qb := sq.Select("COUNT(*)").From(r.table)
	if clauses.Where != nil {
		qb = qb.Where(clauses.Where)
	}

	sqlText, args, err := qb.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to render count query: %w", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, sqlText, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count query failed: %w", err)
	}
	return count, nil
}

// readRows reads all rows from a result set and converts them into a slice
// of generic maps. SQLite TEXT columns scan as []byte and are converted to
// strings.
func readRows(rows *sql.Rows) ([]map[string]any, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	var results []map[string]any
	for rows.Next() {
		values := make([]any, len(columns))
		scanArgs := make([]any, len(columns))
		for i := range values {
			scanArgs[i] = &values[i]
		}

		if err := rows.Scan(scanArgs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(map[string]any, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = values[i]
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}
	return results, nil
}
