package boolexpr_test

import (
	"testing"

	"github.com/eriklarko/truthtable/src/boolexpr"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	a = boolexpr.Variable("A")
	b = boolexpr.Variable("B")
	c = boolexpr.Variable("C")
)

func TestParse(t *testing.T) {
	testCases := map[string]*boolexpr.Node{
		"A":     a,
		"(A)":   a,
		"((A))": a,
		"NOT A": boolexpr.Not(a),

		"NOT NOT A": boolexpr.Not(boolexpr.Not(a)),
		"NOT A AND B": boolexpr.Binary(boolexpr.AND,
			boolexpr.Not(a),
			b,
		),
		"NOT (A AND B)": boolexpr.Not(
			boolexpr.Binary(boolexpr.AND, a, b),
		),

		// precedence: AND > OR > XOR > IMPLIES > EQUIV
		"A OR B AND C": boolexpr.Binary(boolexpr.OR,
			a,
			boolexpr.Binary(boolexpr.AND, b, c),
		),
		"A XOR B OR C": boolexpr.Binary(boolexpr.XOR,
			a,
			boolexpr.Binary(boolexpr.OR, b, c),
		),
		"A IMPLIES B XOR C": boolexpr.Binary(boolexpr.IMPLIES,
			a,
			boolexpr.Binary(boolexpr.XOR, b, c),
		),
		"A EQUIV B IMPLIES C": boolexpr.Binary(boolexpr.EQUIV,
			a,
			boolexpr.Binary(boolexpr.IMPLIES, b, c),
		),

		// left associativity
		"A IMPLIES B IMPLIES C": boolexpr.Binary(boolexpr.IMPLIES,
			boolexpr.Binary(boolexpr.IMPLIES, a, b),
			c,
		),
		"A IMPLIES (B IMPLIES C)": boolexpr.Binary(boolexpr.IMPLIES,
			a,
			boolexpr.Binary(boolexpr.IMPLIES, b, c),
		),

		"(A AND B) OR C": boolexpr.Binary(boolexpr.OR,
			boolexpr.Binary(boolexpr.AND, a, b),
			c,
		),
		"A AND (B OR C)": boolexpr.Binary(boolexpr.AND,
			a,
			boolexpr.Binary(boolexpr.OR, b, c),
		),

		"((A конъюнкция B) дизъюнкция C) импликация B": boolexpr.Binary(boolexpr.IMPLIES,
			boolexpr.Binary(boolexpr.OR,
				boolexpr.Binary(boolexpr.AND, a, b),
				c,
			),
			b,
		),
		"!A & B | C": boolexpr.Binary(boolexpr.OR,
			boolexpr.Binary(boolexpr.AND, boolexpr.Not(a), b),
			c,
		),
	}

	for expression, expected := range testCases {
		t.Run(expression, func(t *testing.T) {
			result, err := boolexpr.New(expression)
			require.NoError(t, err)

			if diff := cmp.Diff(expected, result); diff != "" {
				t.Errorf("unexpected tree (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	testCases := []string{
		"",
		"   ",
		"(A AND)",
		"(A AND B",
		"A AND B)",
		"A B",
		"(A B)",
		"AND A",
		"A AND AND B",
		"NOT",
		"A NOT B",
		"()",
		"A OR",
	}

	for _, expression := range testCases {
		t.Run(expression, func(t *testing.T) {
			node, err := boolexpr.New(expression)
			assert.Nil(t, node)

			var syntaxErr *boolexpr.SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
		})
	}
}

func TestParseErrorMessages(t *testing.T) {
	testCases := map[string]string{
		"(A AND)":  "missing operand before ')'",
		"(A AND B": "never closed",
		"A AND B)": "unbalanced parentheses",
		"A B":      "missing operator before \"B\"",
		"A OR":     "missing operand at end of expression",
	}

	for expression, message := range testCases {
		t.Run(expression, func(t *testing.T) {
			_, err := boolexpr.New(expression)
			require.Error(t, err)
			assert.Contains(t, err.Error(), message)
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	expressions := []string{
		"A AND B OR C",
		"NOT (A XOR B) EQUIV C IMPLIES A",
		"A IMPLIES (B IMPLIES A)",
	}

	for _, expression := range expressions {
		t.Run(expression, func(t *testing.T) {
			first, err := boolexpr.New(expression)
			require.NoError(t, err)
			second, err := boolexpr.New(expression)
			require.NoError(t, err)

			assert.True(t, first.Equal(second))
			assert.NotSame(t, first, second)
		})
	}
}

func TestParseParenthesesChangeTree(t *testing.T) {
	left, err := boolexpr.New("(A IMPLIES B) IMPLIES C")
	require.NoError(t, err)
	right, err := boolexpr.New("A IMPLIES (B IMPLIES C)")
	require.NoError(t, err)

	assert.False(t, left.Equal(right))
}

func TestRenderRoundTrip(t *testing.T) {
	expressions := []string{
		"A",
		"NOT A",
		"NOT NOT (A OR B)",
		"A AND B OR C",
		"A IMPLIES B IMPLIES C",
		"A IMPLIES (B IMPLIES A)",
		"(A XOR B) EQUIV (NOT C AND A)",
		"A исключающее или B",
	}

	lexicons := []*boolexpr.Lexicon{
		boolexpr.EnglishLexicon,
		boolexpr.LexiconFor("ru"),
		boolexpr.LexiconFor("symbols"),
	}

	for _, expression := range expressions {
		for _, lex := range lexicons {
			t.Run(lex.Name+"/"+expression, func(t *testing.T) {
				tree, err := boolexpr.New(expression)
				require.NoError(t, err)

				rendered := tree.Format(lex)
				reparsed, err := boolexpr.NewWithLexicon(rendered, lex)
				require.NoError(t, err)

				assert.True(t, tree.Equal(reparsed), "%q reparsed differently", rendered)
				assert.Equal(t, rendered, reparsed.Format(lex))
			})
		}
	}
}

func TestString(t *testing.T) {
	testCases := map[string]string{
		"A":                     "A",
		"not a":                 "NOT a",
		"A and B or C":          "((A AND B) OR C)",
		"!(A -> B)":             "NOT (A IMPLIES B)",
		"A дизъюнкция NOT B":    "(A OR NOT B)",
		"A <-> B ^ C":           "(A EQUIV (B XOR C))",
		"A IMPLIES B IMPLIES C": "((A IMPLIES B) IMPLIES C)",
	}

	for expression, expected := range testCases {
		t.Run(expression, func(t *testing.T) {
			tree, err := boolexpr.New(expression)
			require.NoError(t, err)
			assert.Equal(t, expected, tree.String())
		})
	}
}

func TestText(t *testing.T) {
	tree, err := boolexpr.New("(A AND B) OR C")
	require.NoError(t, err)

	assert.Equal(t, "(A AND B) OR C", tree.Text(boolexpr.EnglishLexicon))
	assert.Equal(t, "(A конъюнкция B) дизъюнкция C", tree.Text(boolexpr.LexiconFor("ru")))
	assert.Equal(t, "(A & B) | C", tree.Text(boolexpr.LexiconFor("symbols")))
}

func TestDump(t *testing.T) {
	tree, err := boolexpr.New("NOT A OR B")
	require.NoError(t, err)

	expected := "OR\n" +
		"└── NOT\n" +
		"│   └── VAR(A)\n" +
		"└── VAR(B)"
	assert.Equal(t, expected, tree.Dump())
}

func TestVariables(t *testing.T) {
	testCases := map[string][]string{
		"A":                         {"A"},
		"B AND A":                   {"B", "A"},
		"(A AND B) OR C":            {"A", "B", "C"},
		"C OR (B AND C) OR A":       {"C", "B", "A"},
		"A IMPLIES (B IMPLIES A)":   {"A", "B"},
		"NOT zeta AND alpha1 OR _x": {"zeta", "alpha1", "_x"},
	}

	for expression, expected := range testCases {
		t.Run(expression, func(t *testing.T) {
			tree, err := boolexpr.New(expression)
			require.NoError(t, err)
			assert.Equal(t, expected, tree.Variables())
		})
	}
}
