package selector

// Parse parses a selector string into its expressions, in source order.
// The first malformed fragment is terminal: Parse returns a *ParseError
// locating it and no expressions. Callers that want per-fragment outcomes
// use NewTokenizer and Next instead.
//
// An empty or separator-only selector yields an empty sequence, not an
// error.
func Parse(selector string) (Expressions, error) {
	t := NewTokenizer(selector)
	var expressions Expressions
	for {
		expr, err := t.Next()
		if err != nil {
			return nil, err
		}
		if expr == nil {
			return expressions, nil
		}
		expressions = append(expressions, *expr)
	}
}

// MustParse is like Parse but panics on error. It is intended for
// selectors known valid at compile time.
func MustParse(selector string) Expressions {
	expressions, err := Parse(selector)
	if err != nil {
		panic(err)
	}
	return expressions
}
