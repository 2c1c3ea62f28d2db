package parser

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	// UnexpectedToken means the input at Pos matches none of the expected
	// alternatives (malformed dice specifier, unknown action keyword, ...).
	UnexpectedToken ErrorKind = iota
	// IncompleteRequest means the input ended before a mandatory element
	// (missing sides after "D", unterminated group, empty value list).
	IncompleteRequest
	// MixedValueList means a Reroll/Explode list mixes numeric values and
	// fudge symbols.
	MixedValueList
	// TrailingInput means a structurally complete request was found but
	// characters remain before the end of the input.
	TrailingInput
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case IncompleteRequest:
		return "incomplete request"
	case MixedValueList:
		return "mixed value list"
	case TrailingInput:
		return "trailing input"
	}
	return "unknown"
}

// ParseError reports the first failure of a parse call. Pos is a byte offset
// into the input; Expected lists the token kinds that would have been valid
// there, when known. No partial result ever accompanies a ParseError.
type ParseError struct {
	Kind     ErrorKind
	Pos      int
	Expected []string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case IncompleteRequest:
		if len(e.Expected) == 0 {
			return fmt.Sprintf("offset %d: input ended before the request was complete", e.Pos)
		}
		return fmt.Sprintf("offset %d: input ended, expected %s", e.Pos, strings.Join(e.Expected, " or "))
	case MixedValueList:
		return fmt.Sprintf("offset %d: value list mixes numeric and fudge values", e.Pos)
	case TrailingInput:
		return fmt.Sprintf("offset %d: unexpected input after a complete request", e.Pos)
	}
	if len(e.Expected) == 0 {
		return fmt.Sprintf("offset %d: unexpected input", e.Pos)
	}
	return fmt.Sprintf("offset %d: expected %s", e.Pos, strings.Join(e.Expected, " or "))
}
