package selector

import (
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

// Operator is the comparison an Expression applies to its key.
type Operator string

const (
	// In requires the key to exist with a value in the expression's set.
	In Operator = "in"
	// NotIn requires the key to not exist or its value to be outside the set.
	NotIn Operator = "notin"
	// Equals requires the key to exist with the expression's exact value.
	// The selector forms "=" and "==" both produce it.
	Equals Operator = "="
	// NotEquals requires the key to not exist or hold a different value.
	NotEquals Operator = "!="
	// Exists requires the key to exist with any value.
	Exists Operator = "exists"
	// DoesNotExist requires the key to not exist.
	DoesNotExist Operator = "!"
)

// Expression is a single parsed selector predicate over a key. Depending on
// the operator it carries no value (Exists, DoesNotExist), one value
// (Equals, NotEquals), or a value set (In, NotIn). The zero value is
// invalid; use the constructors. An Expression is immutable once built.
type Expression struct {
	key      string
	operator Operator
	value    string
	// values holds the member set for In and NotIn. Members are unique by
	// content and iterate in lexicographic order regardless of the order
	// they appeared in the source string.
	values sets.String
}

// NewIn returns an In expression over key. Duplicate values collapse.
func NewIn(key string, values ...string) Expression {
	return Expression{key: key, operator: In, values: sets.NewString(values...)}
}

// NewNotIn returns a NotIn expression over key. Duplicate values collapse.
func NewNotIn(key string, values ...string) Expression {
	return Expression{key: key, operator: NotIn, values: sets.NewString(values...)}
}

// NewEqual returns an Equals expression over key.
func NewEqual(key, value string) Expression {
	return Expression{key: key, operator: Equals, value: value}
}

// NewNotEqual returns a NotEquals expression over key.
func NewNotEqual(key, value string) Expression {
	return Expression{key: key, operator: NotEquals, value: value}
}

// NewExists returns an Exists expression over key.
func NewExists(key string) Expression {
	return Expression{key: key, operator: Exists}
}

// NewDoesNotExist returns a DoesNotExist expression over key.
func NewDoesNotExist(key string) Expression {
	return Expression{key: key, operator: DoesNotExist}
}

// Key returns the expression key.
func (e Expression) Key() string {
	return e.key
}

// Operator returns the expression operator.
func (e Expression) Operator() Operator {
	return e.operator
}

// Value returns the right-hand side of an Equals or NotEquals expression,
// and the empty string for every other operator.
func (e Expression) Value() string {
	return e.value
}

// Values returns the member set of an In or NotIn expression in
// lexicographic order, and nil for every other operator.
func (e Expression) Values() []string {
	if e.values == nil {
		return nil
	}
	return e.values.List()
}

// Equal reports whether two expressions have the same key, operator, and
// value or value set.
func (e Expression) Equal(x Expression) bool {
	if e.key != x.key || e.operator != x.operator || e.value != x.value {
		return false
	}
	if (e.values == nil) != (x.values == nil) {
		return false
	}
	return e.values == nil || e.values.Equal(x.values)
}

// String renders the expression in selector syntax. The rendering parses
// back to an equivalent expression; In and NotIn value sets render in
// lexicographic order.
func (e Expression) String() string {
	var sb strings.Builder
	sb.Grow(len(e.key) + len(e.operator) + 2 + len(e.value) + 5*e.values.Len())

	switch e.operator {
	case Exists:
		sb.WriteString(e.key)
	case DoesNotExist:
		sb.WriteString("!")
		sb.WriteString(e.key)
	case Equals, NotEquals:
		sb.WriteString(e.key)
		sb.WriteString(string(e.operator))
		sb.WriteString(e.value)
	case In, NotIn:
		sb.WriteString(e.key)
		sb.WriteString(" ")
		sb.WriteString(string(e.operator))
		sb.WriteString(" (")
		sb.WriteString(strings.Join(e.values.List(), ","))
		sb.WriteString(")")
	}
	return sb.String()
}

// Expressions is the ordered sequence of expressions parsed from one
// selector string, in the order their fragments appeared in the source.
type Expressions []Expression

// String renders the sequence as a selector string.
func (es Expressions) String() string {
	parts := make([]string, len(es))
	for i := range es {
		parts[i] = es[i].String()
	}
	return strings.Join(parts, ",")
}
