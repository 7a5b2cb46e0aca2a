package rankings

import (
	"fmt"

	"wcl_rankings/share"
)

// ParseError points at the part of the payload that could not be normalized.
// Index is the position in the rankings array, or -1 outside of it.
type ParseError struct {
	Index  int
	Field  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("parse error: %s: %s", e.Field, e.Reason)
	}
	if e.Field == "" {
		return fmt.Sprintf("parse error: rankings[%d]: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("parse error: rankings[%d].%s: %s", e.Index, e.Field, e.Reason)
}

func (e *ParseError) Is(target error) bool {
	return target == share.ErrParse
}

func missing(index int, field string) error {
	return &ParseError{Index: index, Field: field, Reason: "missing"}
}

func invalid(index int, field string, format string, args ...interface{}) error {
	return &ParseError{Index: index, Field: field, Reason: fmt.Sprintf(format, args...)}
}
