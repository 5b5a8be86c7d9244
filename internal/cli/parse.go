package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/parsekit/labelselector/pkg/log"
	"github.com/parsekit/labelselector/pkg/selector"
)

const (
	yamlFormat  = "yaml"
	jsonFormat  = "json"
	tableFormat = "table"
)

var legalOutputTypes = []string{tableFormat, yamlFormat, jsonFormat}

type ParseOptions struct {
	Output    string
	AllErrors bool
}

func NewCmdParse() *cobra.Command {
	o := &ParseOptions{Output: tableFormat}

	cmd := &cobra.Command{
		Use:   "parse SELECTOR",
		Short: "parse a label selector into its expressions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Lookup("output").Changed && !lo.Contains(legalOutputTypes, o.Output) {
				return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
			}
			return RunParse(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], o)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&o.Output, "output", "o", o.Output, "output format (table, yaml, json)")
	cmd.Flags().BoolVar(&o.AllErrors, "all-errors", o.AllErrors, "report every malformed fragment and keep parsing instead of stopping at the first error")
	return cmd
}

// RunParse parses the selector and prints its expressions to w. In the
// default mode the first malformed fragment aborts the parse; with
// AllErrors every fragment outcome is surfaced, bad fragments are logged
// and collected, and the good expressions still print.
func RunParse(w, errW io.Writer, selectorStr string, o *ParseOptions) error {
	if o.AllErrors {
		return runParseAll(w, errW, selectorStr, o)
	}

	expressions, err := selector.Parse(selectorStr)
	if err != nil {
		return err
	}
	return printExpressions(w, expressions, o.Output)
}

func runParseAll(w, errW io.Writer, selectorStr string, o *ParseOptions) error {
	logger := log.InitLogs()
	logger.SetOutput(errW)
	parseLog := log.WithComponent("parse", logger)

	tokenizer := selector.NewTokenizer(selectorStr)
	var expressions selector.Expressions
	var parseErrs []error
	for {
		expr, err := tokenizer.Next()
		if err != nil {
			var pe *selector.ParseError
			if selector.AsParseError(err, &pe) {
				parseLog.WithField("span", pe.Span.String()).Warnf("skipping malformed fragment %q", pe.Fragment)
			}
			parseErrs = append(parseErrs, err)
			continue
		}
		if expr == nil {
			break
		}
		expressions = append(expressions, *expr)
	}

	if err := printExpressions(w, expressions, o.Output); err != nil {
		return err
	}
	return errors.Join(parseErrs...)
}
