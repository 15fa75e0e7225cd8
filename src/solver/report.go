package solver

import (
	"fmt"
	"strings"

	"github.com/eriklarko/truthtable/src/boolexpr"
	"github.com/eriklarko/truthtable/src/i18n"
	"github.com/eriklarko/truthtable/src/truthtable"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Report struct {
	Input      string
	Expression string
	Locale     language.Tag
	Table      *truthtable.Table

	// Steps holds every connective sub-expression in resolution order, the
	// last one being the whole expression.
	Steps     []string
	Narration []string

	Classification truthtable.Classification
	TrueRatio      float64

	Explanation string
	// Note is set when the explanation could not be generated.
	Note string
}

// Columns is the table header: the variables, the intermediate steps and
// the result of the whole expression.
func (r *Report) Columns(p *message.Printer) []string {
	columns := append([]string{}, r.Table.Variables...)
	columns = append(columns, r.intermediateSteps()...)
	return append(columns, p.Sprintf(i18n.ResultColumn))
}

func (r *Report) intermediateSteps() []string {
	if len(r.Steps) == 0 {
		return nil
	}
	return r.Steps[:len(r.Steps)-1]
}

// Cells returns one row of values in the order of Columns.
func (r *Report) Cells(row truthtable.Row) []bool {
	cells := row.Values(r.Table.Variables)
	operations := row.Trace.Operations()
	if len(operations) > 0 {
		for _, step := range operations[:len(operations)-1] {
			cells = append(cells, step.Value)
		}
	}
	return append(cells, row.Value)
}

// Summary is a one sentence description of when the expression holds.
func (r *Report) Summary(p *message.Printer) string {
	switch r.Classification {
	case truthtable.Tautology:
		return p.Sprintf(i18n.TautologyText)
	case truthtable.Contradiction:
		return p.Sprintf(i18n.ContradictionText)
	default:
		return p.Sprintf(i18n.ContingentText, len(r.Table.Satisfying()), len(r.Table.Rows), r.TrueRatio*100)
	}
}

// Tree draws the parsed expression.
func (r *Report) Tree() string {
	if r.Table == nil || r.Table.Expression == nil {
		return ""
	}
	return r.Table.Expression.Dump()
}

func (r *Report) String() string {
	var sb strings.Builder
	if err := Render(&sb, r, Markdown, false); err != nil {
		return fmt.Sprintf("failed to render report: %v", err)
	}
	return sb.String()
}

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// Legend lists the operators with their spellings in lex, one per line,
// the way the interactive banner shows them.
func Legend(lex *boolexpr.Lexicon) []string {
	lines := make([]string, 0, len(boolexpr.Operators))
	for _, op := range boolexpr.Operators {
		spelling := lex.Spelling(op)
		if spelling == op.String() {
			lines = append(lines, spelling)
			continue
		}
		lines = append(lines, fmt.Sprintf("%s (%s)", spelling, op))
	}
	return lines
}
