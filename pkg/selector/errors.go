package selector

import (
	"errors"
	"fmt"
)

// ErrSelectorSyntax is the sentinel every ParseError unwraps to.
var ErrSelectorSyntax = errors.New("failed to parse value as expression")

// Span is a half-open byte-offset range [Start, End) into the original
// selector string. Start and End are always valid offsets into the input
// and Start <= End.
type Span struct {
	Start int
	End   int
}

func (s Span) String() string {
	return fmt.Sprintf("[%d, %d)", s.Start, s.End)
}

// ParseError reports a selector fragment that could not be reduced to an
// Expression. Fragment is the exact offending text as captured by the
// tokenizer and Span locates it in the original input.
type ParseError struct {
	Fragment string
	Span     Span
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: '%s' at %s", ErrSelectorSyntax, e.Fragment, e.Span)
}

func (e *ParseError) Unwrap() error {
	return ErrSelectorSyntax
}

// AsParseError reports whether err is a *ParseError, assigning it to target
// when it is.
func AsParseError(err error, target **ParseError) bool {
	return errors.As(err, target)
}
