package litedb

import "errors"

// ErrUnsupportedColumnType is returned by CreateTable when a column
// specification contains a kind outside {text, integer, real, boolean}.
//
// This is a local validation failure: the statement is never built and the
// engine is never invoked. Check for it with errors.Is; the returned error
// wraps this sentinel with table and column context.
var ErrUnsupportedColumnType = errors.New("unsupported column type")
