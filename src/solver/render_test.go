package solver_test

import (
	"context"
	"strings"
	"testing"

	"github.com/eriklarko/truthtable/src/config"
	"github.com/eriklarko/truthtable/src/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func solve(t *testing.T, cfg *config.Config, expression string) *solver.Report {
	t.Helper()
	report, err := solver.New(cfg, nil).Solve(context.Background(), expression)
	require.NoError(t, err)
	return report
}

func render(t *testing.T, report *solver.Report, format solver.Format, useColor bool) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, solver.Render(&sb, report, format, useColor))
	return sb.String()
}

func TestParseFormat(t *testing.T) {
	testCases := map[string]solver.Format{
		"":         solver.Markdown,
		"markdown": solver.Markdown,
		"MD":       solver.Markdown,
		"text":     solver.Text,
		" yml ":    solver.YAML,
		"yaml":     solver.YAML,
		"csv":      solver.CSV,
	}
	for name, expected := range testCases {
		t.Run(name, func(t *testing.T) {
			format, err := solver.ParseFormat(name)
			require.NoError(t, err)
			assert.Equal(t, expected, format)
		})
	}

	_, err := solver.ParseFormat("html")
	var unknown *solver.UnknownFormatError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "html", unknown.Format)
}

func TestRenderMarkdown(t *testing.T) {
	report := solve(t, config.Default(), "A OR B")

	expected := `## Expression

A OR B

## Truth table

| A | B | Result |
|---|---|---|
| 0 | 0 | 0 |
| 0 | 1 | 1 |
| 1 | 0 | 1 |
| 1 | 1 | 1 |

## Steps

1. First, compute (A OR B)

## Summary

The expression is true in 3 of 4 rows (75%).
`
	assert.Equal(t, expected, render(t, report, solver.Markdown, false))
	assert.Equal(t, expected, report.String())
}

func TestRenderMarkdownStepColumns(t *testing.T) {
	report := solve(t, config.Default(), "NOT A AND B")

	output := render(t, report, solver.Markdown, false)
	assert.Contains(t, output, "| A | B | NOT A | Result |\n")
	assert.Contains(t, output, "| 0 | 1 | 1 | 1 |\n")
	assert.Contains(t, output, "| 1 | 1 | 0 | 0 |\n")
}

func TestRenderExplanationAndNote(t *testing.T) {
	report := solve(t, config.Default(), "A AND NOT A")

	report.Note = "Could not generate explanation: timeout"
	assert.True(t, strings.HasSuffix(
		render(t, report, solver.Markdown, false),
		"## Explanation\n\nCould not generate explanation: timeout\n",
	))

	report.Explanation = "Never true."
	output := render(t, report, solver.Markdown, false)
	assert.True(t, strings.HasSuffix(output, "## Explanation\n\nNever true.\n"))
	assert.Contains(t, output, "The expression is a contradiction: it is false in every row.")
}

func TestRenderText(t *testing.T) {
	report := solve(t, config.Default(), "A IMPLIES B")

	plain := render(t, report, solver.Text, false)
	assert.Equal(t, `Expression: A IMPLIES B

A  B  Result
0  0  1
0  1  1
1  0  0
1  1  1

Steps:
  1. First, compute (A IMPLIES B)

Summary: The expression is true in 3 of 4 rows (75%).
`, plain)
	assert.NotContains(t, plain, "\x1b[")

	colored := render(t, report, solver.Text, true)
	assert.Contains(t, colored, "\x1b[")
}

func TestRenderRussian(t *testing.T) {
	cfg := config.Default()
	cfg.Locale = "ru"
	report := solve(t, cfg, "A импликация B")

	output := render(t, report, solver.Markdown, false)
	assert.Contains(t, output, "## Выражение\n\nA импликация B\n")
	assert.Contains(t, output, "## Таблица истинности\n")
	assert.Contains(t, output, "| A | B | Результат |\n")
	assert.Contains(t, output, "Выражение истинно в 3 из 4 строк (75%).")
}

func TestRenderCSV(t *testing.T) {
	report := solve(t, config.Default(), "A EQUIV (A AND B)")

	expected := "A,B,(A AND B),Result\n" +
		"0,0,0,1\n" +
		"0,1,0,1\n" +
		"1,0,0,0\n" +
		"1,1,1,1\n"
	assert.Equal(t, expected, render(t, report, solver.CSV, false))
}

func TestRenderYAML(t *testing.T) {
	report := solve(t, config.Default(), "A XOR B")

	var decoded struct {
		Expression     string   `yaml:"expression"`
		Variables      []string `yaml:"variables"`
		Steps          []string `yaml:"steps"`
		Classification string   `yaml:"classification"`
		TrueRatio      float64  `yaml:"true-ratio"`
		Rows           []struct {
			Values []bool `yaml:"values"`
			Steps  []bool `yaml:"steps"`
			Result bool   `yaml:"result"`
		} `yaml:"rows"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(render(t, report, solver.YAML, false)), &decoded))

	assert.Equal(t, "A XOR B", decoded.Expression)
	assert.Equal(t, []string{"A", "B"}, decoded.Variables)
	assert.Equal(t, []string{"(A XOR B)"}, decoded.Steps)
	assert.Equal(t, "contingent", decoded.Classification)
	assert.InDelta(t, 0.5, decoded.TrueRatio, 1e-9)
	require.Len(t, decoded.Rows, 4)
	assert.Equal(t, []bool{false, true}, decoded.Rows[1].Values)
	assert.Equal(t, []bool{true}, decoded.Rows[1].Steps)
	assert.True(t, decoded.Rows[1].Result)
	assert.False(t, decoded.Rows[3].Result)
}

func TestRenderUnknownFormat(t *testing.T) {
	report := solve(t, config.Default(), "A")

	var unknown *solver.UnknownFormatError
	assert.ErrorAs(t, solver.Render(&strings.Builder{}, report, solver.Format("html"), false), &unknown)
}
