package truthtable_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/eriklarko/truthtable/src/boolexpr"
	"github.com/eriklarko/truthtable/src/truthtable"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, expression string, opts ...truthtable.Option) *truthtable.Table {
	t.Helper()

	root, err := boolexpr.New(expression)
	require.NoError(t, err)

	table, err := truthtable.Generate(root, opts...)
	require.NoError(t, err)
	return table
}

func values(t *truthtable.Table) []bool {
	return lo.Map(t.Rows, func(r truthtable.Row, _ int) bool {
		return r.Value
	})
}

func TestGenerateRowOrder(t *testing.T) {
	table := generate(t, "(A AND B) OR C")

	assert.Equal(t, []string{"A", "B", "C"}, table.Variables)
	require.Len(t, table.Rows, 8)

	expected := [][]bool{
		{false, false, false},
		{false, false, true},
		{false, true, false},
		{false, true, true},
		{true, false, false},
		{true, false, true},
		{true, true, false},
		{true, true, true},
	}
	for i, row := range table.Rows {
		assert.Equal(t, expected[i], row.Values(table.Variables), "row %d", i)
	}

	assert.Equal(t, []bool{false, true, false, true, false, true, true, true}, values(table))
}

func TestGenerateExampleRows(t *testing.T) {
	table := generate(t, "(A AND B) OR C")

	// A=false, B=true, C=true
	assert.True(t, table.Rows[0b011].Value)
	// A=false, B=false, C=false
	assert.False(t, table.Rows[0b000].Value)
}

func TestGenerateConnectiveTables(t *testing.T) {
	// rows: A,B = FF, FT, TF, TT
	testCases := map[string][]bool{
		"A AND B":     {false, false, false, true},
		"A OR B":      {false, true, true, true},
		"A XOR B":     {false, true, true, false},
		"A IMPLIES B": {true, true, false, true},
		"A EQUIV B":   {true, false, false, true},
		"NOT A":       {true, false},
	}

	for expression, expected := range testCases {
		t.Run(expression, func(t *testing.T) {
			assert.Equal(t, expected, values(generate(t, expression)))
		})
	}
}

func TestGenerateRowCountAndUniqueness(t *testing.T) {
	for n := 1; n <= 8; n++ {
		names := make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("x%d", i)
		}
		expression := strings.Join(names, " XOR ")

		t.Run(expression, func(t *testing.T) {
			table := generate(t, expression)
			require.Len(t, table.Rows, 1<<n)

			seen := make(map[string]bool)
			for _, row := range table.Rows {
				key := fmt.Sprint(row.Values(table.Variables))
				assert.False(t, seen[key], "assignment %s seen twice", key)
				seen[key] = true
				assert.Len(t, row.Assignment, n)
			}
		})
	}
}

func TestGenerateRowsCarryTraces(t *testing.T) {
	table := generate(t, "A IMPLIES NOT B")

	assert.Equal(t, []string{"NOT B", "(A IMPLIES NOT B)"}, table.Steps())
	for _, row := range table.Rows {
		require.NotEmpty(t, row.Trace)
		last := row.Trace[len(row.Trace)-1]
		assert.Equal(t, row.Value, last.Value)
		assert.Equal(t, "(A IMPLIES NOT B)", last.Expression)
	}
}

func TestClassify(t *testing.T) {
	testCases := map[string]truthtable.Classification{
		"A IMPLIES (B IMPLIES A)":     truthtable.Tautology,
		"A OR NOT A":                  truthtable.Tautology,
		"A AND NOT A":                 truthtable.Contradiction,
		"(A XOR B) EQUIV (A EQUIV B)": truthtable.Contradiction,
		"(A AND B) OR C":              truthtable.Contingent,
	}

	for expression, expected := range testCases {
		t.Run(expression, func(t *testing.T) {
			assert.Equal(t, expected, generate(t, expression).Classify())
		})
	}
}

func TestTautologyRegression(t *testing.T) {
	table := generate(t, "A IMPLIES (B IMPLIES A)")

	require.Len(t, table.Rows, 4)
	assert.Equal(t, []bool{true, true, true, true}, values(table))
	assert.Len(t, table.Satisfying(), 4)
}

func TestGenerateVariableCap(t *testing.T) {
	root, err := boolexpr.New("A AND B AND C")
	require.NoError(t, err)

	_, err = truthtable.Generate(root, truthtable.WithMaxVariables(2))

	var degenerate *truthtable.DegenerateInputError
	require.ErrorAs(t, err, &degenerate)
	assert.Equal(t, 3, degenerate.Variables)
	assert.Equal(t, 2, degenerate.Max)
}

func TestGenerateDefaultCap(t *testing.T) {
	names := make([]string, truthtable.DefaultMaxVariables+1)
	for i := range names {
		names[i] = fmt.Sprintf("v%d", i)
	}
	root, err := boolexpr.New(strings.Join(names, " OR "))
	require.NoError(t, err)

	table, err := truthtable.Generate(root)
	assert.Nil(t, table)

	var degenerate *truthtable.DegenerateInputError
	require.ErrorAs(t, err, &degenerate)
}

func TestGenerateCapAboveCeiling(t *testing.T) {
	for _, n := range []int{truthtable.MaxVariables + 1, 63, 64} {
		names := make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("V%d", i)
		}

		t.Run(fmt.Sprint(n), func(t *testing.T) {
			root, err := boolexpr.New(strings.Join(names, " OR "))
			require.NoError(t, err)

			table, err := truthtable.Generate(root, truthtable.WithMaxVariables(100))
			assert.Nil(t, table)

			var degenerate *truthtable.DegenerateInputError
			require.ErrorAs(t, err, &degenerate)
			assert.Equal(t, n, degenerate.Variables)
			assert.Equal(t, truthtable.MaxVariables, degenerate.Max)
		})
	}
}

func TestGenerateWithoutVariables(t *testing.T) {
	_, err := truthtable.Generate(nil)

	var degenerate *truthtable.DegenerateInputError
	require.ErrorAs(t, err, &degenerate)
	assert.Equal(t, 0, degenerate.Variables)
	assert.Equal(t, "expression has no variables", err.Error())
}
