// Package k8s converts parsed selector expressions to their
// k8s.io/apimachinery equivalents. It is a pure boundary translation:
// the core selector package never imports it, so programs that skip the
// conversion carry no dependency on apimachinery's labels machinery.
package k8s

import (
	"fmt"

	"k8s.io/apimachinery/pkg/labels"
	k8sselection "k8s.io/apimachinery/pkg/selection"

	"github.com/parsekit/labelselector/pkg/selector"
)

var operators = map[selector.Operator]k8sselection.Operator{
	selector.In:           k8sselection.In,
	selector.NotIn:        k8sselection.NotIn,
	selector.Equals:       k8sselection.Equals,
	selector.NotEquals:    k8sselection.NotEquals,
	selector.Exists:       k8sselection.Exists,
	selector.DoesNotExist: k8sselection.DoesNotExist,
}

// Requirement maps one expression onto a labels.Requirement. The mapping
// is structural and 1:1; apimachinery applies its own validation on top
// (label charset, value length, non-empty In/NotIn sets), and those
// errors pass through wrapped.
func Requirement(e selector.Expression) (*labels.Requirement, error) {
	op, ok := operators[e.Operator()]
	if !ok {
		return nil, fmt.Errorf("unsupported operator %q", e.Operator())
	}

	var values []string
	switch e.Operator() {
	case selector.In, selector.NotIn:
		values = e.Values()
	case selector.Equals, selector.NotEquals:
		values = []string{e.Value()}
	}

	r, err := labels.NewRequirement(e.Key(), op, values)
	if err != nil {
		return nil, fmt.Errorf("converting expression '%s': %w", e, err)
	}
	return r, nil
}

// Selector maps a parsed expression sequence onto a labels.Selector that
// requires every expression to hold.
func Selector(expressions selector.Expressions) (labels.Selector, error) {
	s := labels.NewSelector()
	for _, e := range expressions {
		r, err := Requirement(e)
		if err != nil {
			return nil, err
		}
		s = s.Add(*r)
	}
	return s, nil
}
