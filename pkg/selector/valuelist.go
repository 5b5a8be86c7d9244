package selector

// isValueListChar reports whether b may appear in a value-list member.
// The member charset is deliberately narrower than the key and value
// charsets elsewhere in the grammar: digits, dots, and slashes are legal
// in a bare key or an equality value but not inside "(...)". Downstream
// consumers rely on the stricter charset rejecting malformed lists early,
// so it is preserved rather than widened.
func isValueListChar(b byte) bool {
	return b == '-' || b == '_' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// lexValueList extracts the ordered members of a parenthesized list.
// Parentheses, commas, and blanks separate members and carry no meaning,
// so "()" and consecutive separators are valid and contribute nothing.
// A byte outside the member charset and the separator set fails the list.
func lexValueList(s string) ([]string, bool) {
	values := []string{}
	for i := 0; i < len(s); {
		b := s[i]
		switch {
		case b == '(' || b == ')' || b == ',' || isWhitespace(b):
			i++
		case isValueListChar(b):
			j := i + 1
			for j < len(s) && isValueListChar(s[j]) {
				j++
			}
			values = append(values, s[i:j])
			i = j
		default:
			return nil, false
		}
	}
	return values, true
}
