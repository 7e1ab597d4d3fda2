package report

import "fmt"

// coercionCause describes the column-level reason a row failed to
// decode. It is wrapped into a CoercionError by the assembler, which
// adds the file and line context.
type coercionCause struct {
	Column string
	Index  int
	Value  string
	Reason string
}

func (c *coercionCause) Error() string {
	if c.Reason == "missing column" {
		return fmt.Sprintf("column %d (%s): missing", c.Index, c.Column)
	}
	return fmt.Sprintf("column %d (%s): %s: %q", c.Index, c.Column, c.Reason, c.Value)
}

// CoercionError reports a result row that matched the row prefix but
// could not be decoded. The scan of the file stops at this row; the
// record assembled so far is still returned by Parse.
type CoercionError struct {
	File   string
	LineNo int // 1-based
	Line   string
	Cause  *coercionCause
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("%s:%d: %s (line: %q)", e.File, e.LineNo, e.Cause.Error(), e.Line)
}

func (e *CoercionError) Unwrap() error { return e.Cause }

// Column returns the name of the column that failed to decode.
func (e *CoercionError) Column() string { return e.Cause.Column }
