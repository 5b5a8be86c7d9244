// Package selector parses Kubernetes-style label-selector strings into
// structured expressions.
//
// The input will cause an error if it does not follow this form:
//
//	<selector>   ::= <fragment> | <fragment> <separator> <selector>
//	<separator>  ::= one or more of ',', ' ', '\t', '\n', '\f'
//	<fragment>   ::= <equality> | <set-expr>
//	<equality>   ::= KEY ["="|"=="|"!="] VALUE
//	<set-expr>   ::= "!" KEY | KEY | KEY ["in"|"notin"] "(" <value-list> ")"
//	<value-list> ::= "" | ITEM | ITEM "," <value-list>
//
// KEY is a sequence of one or more characters in [-./A-Za-z0-9_].
// VALUE is a sequence of one or more characters in [-.A-Za-z0-9_].
// ITEM is a sequence of one or more characters in [-A-Za-z_].
//
// Note:
//  1. "=" and "==" are synonyms; both produce an Equals expression.
//  2. A fragment with just a KEY denotes that the key exists with any
//     value; "!" KEY denotes that the key does not exist.
//  3. In and NotIn value sets are unique by content and iterate in
//     lexicographic order regardless of source order.
//  4. The ITEM charset inside "(...)" is narrower than KEY and VALUE:
//     digits, dots, and slashes are rejected there even though they are
//     legal elsewhere in the grammar. This asymmetry is part of the
//     grammar, not an accident.
//  5. A malformed fragment is reported with its exact text and byte span;
//     tokenization resumes at the next fragment boundary, so one bad
//     fragment does not poison the rest of the input.
//
// Parse consumes a whole selector and stops at the first malformed
// fragment; NewTokenizer/Next surface each fragment's outcome one at a
// time. Parsing never evaluates expressions against labeled objects; see
// the k8s subpackage for conversion to apimachinery requirements.
package selector
