package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/labelselector/pkg/selector"
)

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := New()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestParseCommandTable(t *testing.T) {
	out, _, err := runCommand(t, "parse", "env=prod,tier in (web,db),!canary")
	require.NoError(t, err)

	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "env")
	assert.Contains(t, out, "prod")
	assert.Contains(t, out, "db,web")
	assert.Contains(t, out, "canary")
}

func TestParseCommandYAML(t *testing.T) {
	out, _, err := runCommand(t, "parse", "tier in (web,db)", "-o", "yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "key: tier")
	assert.Contains(t, out, "operator: in")
	assert.Contains(t, out, "- db")
	assert.Contains(t, out, "- web")
}

func TestParseCommandJSON(t *testing.T) {
	out, _, err := runCommand(t, "parse", "env!=prod", "-o", "json")
	require.NoError(t, err)

	assert.Contains(t, out, `"key": "env"`)
	assert.Contains(t, out, `"operator": "!="`)
	assert.Contains(t, out, `"prod"`)
}

func TestParseCommandInvalidOutput(t *testing.T) {
	_, _, err := runCommand(t, "parse", "env=prod", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output format must be one of")
}

func TestParseCommandStopsAtFirstError(t *testing.T) {
	_, _, err := runCommand(t, "parse", "a=b,c in (1),d=e")
	require.Error(t, err)

	var pe *selector.ParseError
	require.True(t, selector.AsParseError(err, &pe))
	assert.Equal(t, "c in (1)", pe.Fragment)
}

func TestParseCommandAllErrors(t *testing.T) {
	out, errOut, err := runCommand(t, "parse", "a()d", "--all-errors")
	require.Error(t, err)

	// Good fragments still print.
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "d")
	// Both stray parentheses are reported.
	assert.Contains(t, errOut, "(")
	assert.Contains(t, errOut, ")")
}

func TestParseCommandAllErrorsClean(t *testing.T) {
	out, _, err := runCommand(t, "parse", "a=b", "--all-errors")
	require.NoError(t, err)
	assert.Contains(t, out, "a")
}
