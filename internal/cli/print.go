package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"sigs.k8s.io/yaml"

	"github.com/parsekit/labelselector/pkg/selector"
)

type printableExpression struct {
	Key      string   `json:"key"`
	Operator string   `json:"operator"`
	Values   []string `json:"values,omitempty"`
}

func printExpressions(w io.Writer, expressions selector.Expressions, output string) error {
	rows := lo.Map(expressions, func(e selector.Expression, _ int) printableExpression {
		p := printableExpression{Key: e.Key(), Operator: string(e.Operator())}
		switch e.Operator() {
		case selector.In, selector.NotIn:
			p.Values = e.Values()
		case selector.Equals, selector.NotEquals:
			p.Values = []string{e.Value()}
		}
		return p
	})

	switch output {
	case yamlFormat:
		marshalled, err := yaml.Marshal(rows)
		if err != nil {
			return fmt.Errorf("marshalling expressions: %w", err)
		}
		fmt.Fprintf(w, "%s", marshalled)
	case jsonFormat:
		marshalled, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling expressions: %w", err)
		}
		fmt.Fprintf(w, "%s\n", marshalled)
	default:
		tw := tabwriter.NewWriter(w, 0, 8, 1, '\t', 0)
		fmt.Fprintln(tw, "KEY\tOPERATOR\tVALUES")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Key, r.Operator, strings.Join(r.Values, ","))
		}
		tw.Flush()
	}
	return nil
}
