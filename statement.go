package litedb

import (
	"fmt"
	"strings"
)

// quoteIdent wraps an identifier in double quotes with embedded quotes
// doubled, per SQL standard quoting. This keeps arbitrary table and column
// names from breaking statement assembly; values never travel this path.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// buildCreateTable assembles a CREATE TABLE IF NOT EXISTS statement from an
// ordered column specification. Column order in the statement follows slice
// order. A kind outside the fixed mapping fails with
// ErrUnsupportedColumnType before any SQL exists.
func buildCreateTable(table string, cols []Column) (string, error) {
	if table == "" {
		return "", fmt.Errorf("table name is required")
	}
	if len(cols) == 0 {
		return "", fmt.Errorf("table %q: at least one column is required", table)
	}

	defs := make([]string, 0, len(cols))
	for _, c := range cols {
		typ, ok := columnType(c.Kind)
		if !ok {
			return "", fmt.Errorf("table %q, column %q: %w: %s (allowed: text, integer, real, boolean)",
				table, c.Name, ErrUnsupportedColumnType, c.Kind)
		}
		defs = append(defs, quoteIdent(c.Name)+" "+typ)
	}

	return "CREATE TABLE IF NOT EXISTS " + quoteIdent(table) +
		" (" + strings.Join(defs, ", ") + ")", nil
}

// buildInsert assembles an INSERT statement with positional ? placeholders
// from an ordered name→value mapping, returning the statement and the
// parameter list in matching order.
func buildInsert(table string, fields []Field) (string, []Value, error) {
	if table == "" {
		return "", nil, fmt.Errorf("table name is required")
	}
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("table %q: at least one field is required", table)
	}

	cols := make([]string, 0, len(fields))
	marks := make([]string, 0, len(fields))
	params := make([]Value, 0, len(fields))
	for _, f := range fields {
		cols = append(cols, quoteIdent(f.Name))
		marks = append(marks, "?")
		params = append(params, f.Value)
	}

	query := "INSERT INTO " + quoteIdent(table) +
		" (" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(marks, ", ") + ")"
	return query, params, nil
}
