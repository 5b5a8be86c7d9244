package selector

import (
	"regexp"
	"unicode/utf8"
)

// fragmentRules are the fragment classes of the selector grammar, in
// precedence order. Each pattern is anchored and evaluated at the cursor;
// the longest matching rule owns the fragment and rule order breaks ties,
// so "a==b" belongs to the double-equality class even though its first
// byte run also matches the bare-key class.
var fragmentRules = []struct {
	pattern *regexp.Regexp
	reduce  func(string) (Expression, bool)
}{
	{regexp.MustCompile(`^[-./\w]+\s+in\s*\([-.\w\s,]*\)`), reduceSet},
	{regexp.MustCompile(`^[-./\w]+\s+notin\s*\([-.\w\s,]*\)`), reduceSet},
	{regexp.MustCompile(`^![-./\w]+`), reduceSet},
	{regexp.MustCompile(`^[-./\w]+`), reduceSet},
	{regexp.MustCompile(`^[-./\w]+\s*=\s*[-.\w]+`), reduceEquality},
	{regexp.MustCompile(`^[-./\w]+\s*==\s*[-.\w]+`), reduceEquality},
	{regexp.MustCompile(`^[-./\w]+\s*!=\s*[-.\w]+`), reduceEquality},
}

// isSeparator reports whether b separates fragments at the top level.
func isSeparator(b byte) bool {
	switch b {
	case ',', ' ', '\t', '\n', '\f':
		return true
	}
	return false
}

// Tokenizer is a single-pass, forward-only cursor over one selector
// string. Each call to Next consumes one fragment and yields its outcome;
// the cursor cannot be rewound or cloned mid-stream. A Tokenizer is not
// safe for concurrent use, but independent Tokenizers over different
// strings share no state.
type Tokenizer struct {
	// s stores the string to be tokenized
	s string
	// pos is the position currently tokenized
	pos int
}

// NewTokenizer returns a tokenizer positioned at the start of s.
func NewTokenizer(s string) *Tokenizer {
	return &Tokenizer{s: s}
}

// Next advances past any separators and consumes the next fragment.
// It returns the fragment's expression on success, a *ParseError carrying
// the fragment text and its byte span on failure, and (nil, nil) once the
// input is exhausted. A failed fragment does not stop the tokenizer:
// the following call resumes at the next fragment boundary.
func (t *Tokenizer) Next() (*Expression, error) {
	for t.pos < len(t.s) && isSeparator(t.s[t.pos]) {
		t.pos++
	}
	if t.pos == len(t.s) {
		return nil, nil
	}

	rest := t.s[t.pos:]
	var (
		reduce  func(string) (Expression, bool)
		matched int
	)
	for _, rule := range fragmentRules {
		if loc := rule.pattern.FindStringIndex(rest); loc != nil && loc[1] > matched {
			matched = loc[1]
			reduce = rule.reduce
		}
	}

	if reduce == nil {
		// No class matches here. Consume a single rune and report it as
		// its own error fragment, e.g. a stray '(' or ')'. Scanning
		// resumes immediately after it.
		_, size := utf8.DecodeRuneInString(rest)
		span := Span{Start: t.pos, End: t.pos + size}
		t.pos = span.End
		return nil, &ParseError{Fragment: rest[:size], Span: span}
	}

	fragment := rest[:matched]
	span := Span{Start: t.pos, End: t.pos + matched}
	t.pos = span.End

	expr, ok := reduce(fragment)
	if !ok {
		// The error covers the whole fragment, not the token the
		// sub-tokenizer stopped at.
		return nil, &ParseError{Fragment: fragment, Span: span}
	}
	return &expr, nil
}

// isWhitespace reports whether b is blank inside a fragment.
func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '\f'
}

// isIdentifierChar reports whether b may appear in a key or an equality
// value.
func isIdentifierChar(b byte) bool {
	return b == '-' || b == '.' || b == '/' || b == '_' ||
		('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
