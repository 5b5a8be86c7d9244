package selector

// setToken is a token of the set sub-grammar.
type setToken int

const (
	setErrorToken setToken = iota
	setEndToken
	setNotToken
	setInToken
	setNotInToken
	setIdentifierToken
	setValuesListToken
)

// setLexer tokenizes a fragment already classified as a set-style
// expression: optional '!', identifier, optional in/notin keyword,
// optional parenthesized value list.
type setLexer struct {
	s   string
	pos int
}

// read returns the next byte, or 0 at the end of the fragment. The
// position always advances so that unread pairs with any read.
func (l *setLexer) read() (b byte) {
	if l.pos < len(l.s) {
		b = l.s[l.pos]
	}
	l.pos++
	return b
}

func (l *setLexer) unread() {
	l.pos--
}

func (l *setLexer) lex() (setToken, string) {
	for {
		switch ch := l.read(); {
		case ch == 0:
			return setEndToken, ""
		case isWhitespace(ch) || ch == ',':
			// skip
		case ch == '!':
			return setNotToken, "!"
		case ch == '(':
			start := l.pos - 1
			for {
				switch l.read() {
				case ')':
					return setValuesListToken, l.s[start:l.pos]
				case 0:
					return setErrorToken, l.s[start:]
				}
			}
		case isIdentifierChar(ch):
			start := l.pos - 1
			for isIdentifierChar(l.read()) {
			}
			l.unread()
			lit := l.s[start:l.pos]
			// Keywords win over identifiers, so a fragment that is just
			// "in" or "notin" fails instead of parsing as a bare key.
			switch lit {
			case "in":
				return setInToken, lit
			case "notin":
				return setNotInToken, lit
			}
			return setIdentifierToken, lit
		default:
			return setErrorToken, string(ch)
		}
	}
}

// reduceSet reduces a set-style fragment to one of Exists, DoesNotExist,
// In, or NotIn:
//
//	!key            -> DoesNotExist(key)
//	key             -> Exists(key)
//	key in (...)    -> In(key, set)
//	key notin (...) -> NotIn(key, set)
//
// Any other token sequence yields no expression. This is the single point
// where list values become a set: duplicates collapse and ordering becomes
// lexicographic.
func reduceSet(fragment string) (Expression, bool) {
	l := &setLexer{s: fragment}

	tok, lit := l.lex()
	switch tok {
	case setNotToken:
		tok, key := l.lex()
		if tok != setIdentifierToken {
			return Expression{}, false
		}
		if tok, _ = l.lex(); tok != setEndToken {
			return Expression{}, false
		}
		return NewDoesNotExist(key), true

	case setIdentifierToken:
		key := lit
		op, _ := l.lex()
		if op == setEndToken {
			return NewExists(key), true
		}
		if op != setInToken && op != setNotInToken {
			return Expression{}, false
		}
		tok, list := l.lex()
		if tok != setValuesListToken {
			return Expression{}, false
		}
		values, ok := lexValueList(list)
		if !ok {
			return Expression{}, false
		}
		if tok, _ = l.lex(); tok != setEndToken {
			return Expression{}, false
		}
		if op == setInToken {
			return NewIn(key, values...), true
		}
		return NewNotIn(key, values...), true

	default:
		return Expression{}, false
	}
}
