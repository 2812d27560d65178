package litedb

import (
	"fmt"
	"time"
)

// Kind identifies the scalar category of a column declaration, a bind
// parameter, or a fetched cell.
//
// Column specifications and bind parameters accept the closed set
// {KindText, KindInteger, KindReal, KindBoolean}. KindNull appears only in
// fetched rows, for cells that hold SQL NULL.
type Kind int

const (
	// KindNull marks a NULL cell in a fetched row. It is not a valid
	// column kind or parameter kind.
	KindNull Kind = iota

	// KindText maps to a TEXT column and binds as a string.
	KindText

	// KindInteger maps to an INTEGER column and binds as an int64.
	KindInteger

	// KindReal maps to a REAL column and binds as a float64.
	KindReal

	// KindBoolean maps to a BOOLEAN column (numeric affinity in SQLite)
	// and binds as integer 0/1 — the engine has no boolean bind kind.
	KindBoolean
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindBoolean:
		return "boolean"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// columnType maps a kind to its SQL column-type token. The mapping is the
// fixed table this layer supports; anything else is rejected before a
// statement is built.
func columnType(k Kind) (string, bool) {
	switch k {
	case KindText:
		return "TEXT", true
	case KindInteger:
		return "INTEGER", true
	case KindReal:
		return "REAL", true
	case KindBoolean:
		return "BOOLEAN", true
	default:
		return "", false
	}
}

// Column is one entry in an ordered column specification. Column order in
// generated CREATE TABLE statements follows slice order.
type Column struct {
	// Name is the column name, unique within a table.
	Name string

	// Kind is the declared scalar kind, one of KindText, KindInteger,
	// KindReal, KindBoolean.
	Kind Kind
}

// Value is a tagged scalar holding one of the supported kinds. Only the
// field matching Kind is meaningful. Use the Text, Int, Real, and Bool
// constructors for parameters; fetched rows may additionally contain
// KindNull values.
type Value struct {
	Kind Kind

	S   string  // for KindText
	I64 int64   // for KindInteger
	F64 float64 // for KindReal
	B   bool    // for KindBoolean
}

// Text returns a text Value.
func Text(s string) Value { return Value{Kind: KindText, S: s} }

// Int returns an integer Value.
func Int(i int64) Value { return Value{Kind: KindInteger, I64: i} }

// Real returns a real (floating-point) Value.
func Real(f float64) Value { return Value{Kind: KindReal, F64: f} }

// Bool returns a boolean Value. It binds as integer 1 (true) or 0 (false).
func Bool(b bool) Value { return Value{Kind: KindBoolean, B: b} }

// IsNull reports whether the value holds SQL NULL.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// bindArg converts a Value into the argument passed to the driver's bind
// API. Booleans are coerced to integer 0/1 here so both drivers store the
// same representation.
func bindArg(v Value) (any, error) {
	switch v.Kind {
	case KindText:
		return v.S, nil
	case KindInteger:
		return v.I64, nil
	case KindReal:
		return v.F64, nil
	case KindBoolean:
		if v.B {
			return int64(1), nil
		}
		return int64(0), nil
	default:
		return nil, fmt.Errorf("unsupported parameter kind %s", v.Kind)
	}
}

// bindArgs converts a parameter list for ExecContext/QueryContext.
func bindArgs(params []Value) ([]any, error) {
	if len(params) == 0 {
		return nil, nil
	}
	args := make([]any, len(params))
	for i, p := range params {
		a, err := bindArg(p)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i+1, err)
		}
		args[i] = a
	}
	return args, nil
}

// cellValue converts a value scanned from the driver into a Value. The set
// of types a driver hands back is fixed by database/sql: int64, float64,
// bool, []byte, string, time.Time, or nil.
func cellValue(cell any) (Value, error) {
	switch c := cell.(type) {
	case nil:
		return Value{Kind: KindNull}, nil
	case int64:
		return Int(c), nil
	case float64:
		return Real(c), nil
	case bool:
		return Bool(c), nil
	case string:
		return Text(c), nil
	case []byte:
		return Text(string(c)), nil
	case time.Time:
		return Text(c.UTC().Format(time.RFC3339)), nil
	default:
		return Value{}, fmt.Errorf("unsupported engine value type %T", cell)
	}
}

// Field is one entry in an ordered name→value mapping used by Insert.
// Placeholder order in the generated statement follows slice order.
type Field struct {
	Name  string
	Value Value
}

// Row is one fetched row: an ordered sequence of cell values.
type Row []Value
