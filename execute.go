package litedb

import (
	"context"
	"fmt"
)

// CreateTable builds and executes a CREATE TABLE IF NOT EXISTS statement
// from an ordered column specification, mapping each kind through the fixed
// table: text→TEXT, integer→INTEGER, real→REAL, boolean→BOOLEAN.
//
// A kind outside that set fails with ErrUnsupportedColumnType before any
// statement reaches the engine. The existence guard makes the call
// idempotent: repeating it with the same specification succeeds and leaves
// the schema unchanged.
func (db *Database) CreateTable(ctx context.Context, table string, cols []Column) error {
	query, err := buildCreateTable(table, cols)
	if err != nil {
		return err
	}
	if _, err := db.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("creating table %q: %w", table, err)
	}
	if db.log != nil {
		db.log.Debug("table ensured", "table", table, "columns", len(cols))
	}
	return nil
}

// Insert builds an INSERT statement from an ordered name→value mapping and
// executes it, returning the number of rows affected.
//
// Values are not checked against the table's declared column kinds; the
// engine enforces or coerces according to its own type-affinity rules.
func (db *Database) Insert(ctx context.Context, table string, fields []Field) (int64, error) {
	query, params, err := buildInsert(table, fields)
	if err != nil {
		return 0, err
	}
	return db.Execute(ctx, query, params...)
}

// Execute binds each parameter to its positional ? placeholder and executes
// the statement, returning the number of rows it affected.
//
// Boolean parameters are coerced to integer 0/1 before binding. A
// placeholder/parameter count mismatch, type-coercion failure, or
// constraint violation surfaces the engine's error with its message
// preserved; nothing is retried and only one statement per call is
// supported.
func (db *Database) Execute(ctx context.Context, query string, params ...Value) (int64, error) {
	args, err := bindArgs(params)
	if err != nil {
		return 0, err
	}
	res, err := db.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("executing statement: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading rows affected: %w", err)
	}
	return affected, nil
}

// ExecuteRaw executes a statement with no placeholder substitution,
// intended for statements with literal values already embedded in the
// text. The affected-row count is discarded.
func (db *Database) ExecuteRaw(ctx context.Context, query string) error {
	if _, err := db.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("executing statement: %w", err)
	}
	return nil
}

// FetchOne runs a query and returns its first row, or (nil, nil) when the
// result set is empty.
func (db *Database) FetchOne(ctx context.Context, query string, params ...Value) (Row, error) {
	rows, err := db.FetchAll(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// FetchAll runs a query and returns every row, fully materialised in
// memory as ordered sequences of cell values. There is no cursor reuse or
// streaming; callers with large result sets should page with SQL.
func (db *Database) FetchAll(ctx context.Context, query string, params ...Value) ([]Row, error) {
	args, err := bindArgs(params)
	if err != nil {
		return nil, err
	}

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading result columns: %w", err)
	}

	var out []Row
	for rows.Next() {
		cells := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		row := make(Row, len(cols))
		for i, cell := range cells {
			v, err := cellValue(cell)
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", cols[i], err)
			}
			row[i] = v
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return out, nil
}
