package selector

// equalityToken is a token of the equality sub-grammar.
type equalityToken int

const (
	eqErrorToken equalityToken = iota
	eqEndToken
	eqEqualsToken
	eqNotEqualsToken
	eqIdentifierToken
)

// equalityLexer tokenizes a fragment already classified as an equality
// expression: identifier, operator, identifier, with optional blanks.
type equalityLexer struct {
	s   string
	pos int
}

// read returns the next byte, or 0 at the end of the fragment. The
// position always advances so that unread pairs with any read.
func (l *equalityLexer) read() (b byte) {
	if l.pos < len(l.s) {
		b = l.s[l.pos]
	}
	l.pos++
	return b
}

func (l *equalityLexer) unread() {
	l.pos--
}

func (l *equalityLexer) lex() (equalityToken, string) {
	for {
		switch ch := l.read(); {
		case ch == 0:
			return eqEndToken, ""
		case isWhitespace(ch):
			// skip
		case ch == '=':
			if l.read() == '=' {
				return eqEqualsToken, "=="
			}
			l.unread()
			return eqEqualsToken, "="
		case ch == '!':
			if l.read() == '=' {
				return eqNotEqualsToken, "!="
			}
			return eqErrorToken, "!"
		case isIdentifierChar(ch):
			start := l.pos - 1
			for isIdentifierChar(l.read()) {
			}
			l.unread()
			return eqIdentifierToken, l.s[start:l.pos]
		default:
			return eqErrorToken, string(ch)
		}
	}
}

// reduceEquality reduces an equality fragment to an Equals or NotEquals
// expression. The fragment must tokenize to exactly identifier, operator,
// identifier; any other token sequence yields no expression and the
// caller reports the whole fragment as a parse error. "=" and "=="
// both reduce to Equals.
func reduceEquality(fragment string) (Expression, bool) {
	l := &equalityLexer{s: fragment}

	keyTok, key := l.lex()
	opTok, _ := l.lex()
	valueTok, value := l.lex()
	endTok, _ := l.lex()

	if keyTok != eqIdentifierToken || valueTok != eqIdentifierToken || endTok != eqEndToken {
		return Expression{}, false
	}
	switch opTok {
	case eqEqualsToken:
		return NewEqual(key, value), true
	case eqNotEqualsToken:
		return NewNotEqual(key, value), true
	default:
		return Expression{}, false
	}
}
