package solver

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/eriklarko/truthtable/src/boolexpr"
	"github.com/eriklarko/truthtable/src/config"
	"github.com/eriklarko/truthtable/src/crosscheck"
	"github.com/eriklarko/truthtable/src/explainer"
	"github.com/eriklarko/truthtable/src/i18n"
	"github.com/eriklarko/truthtable/src/phraser"
	"github.com/eriklarko/truthtable/src/truthtable"
	"github.com/montanaflynn/stats"
	"github.com/samber/lo"
	"golang.org/x/text/language"
)

type Solver struct {
	config    *config.Config
	explainer explainer.Explainer
	locale    language.Tag
	lexicon   *boolexpr.Lexicon
}

// New creates a Solver rendering in the locale of cfg. A nil explainer
// disables explanations regardless of cfg.Explain.
func New(cfg *config.Config, e explainer.Explainer) *Solver {
	if cfg == nil {
		cfg = config.Default()
	}
	if e == nil {
		e = explainer.Noop{}
	}
	locale := i18n.Match(cfg.Locale)
	return &Solver{
		config:    cfg,
		explainer: e,
		locale:    locale,
		lexicon:   boolexpr.LexiconFor(i18n.Lang(locale)),
	}
}

func (s *Solver) Locale() language.Tag {
	return s.locale
}

func (s *Solver) Lexicon() *boolexpr.Lexicon {
	return s.lexicon
}

// Solve parses the expression, builds its truth table and, when enabled,
// asks the explainer to describe the result. Parse and table errors are
// returned, a failing explainer only leaves a note on the report.
func (s *Solver) Solve(ctx context.Context, expression string) (*Report, error) {
	root, err := boolexpr.NewWithLexicon(expression, s.lexicon)
	if err != nil {
		return nil, err
	}

	table, err := truthtable.Generate(root, truthtable.WithMaxVariables(s.config.MaxVariables))
	if err != nil {
		return nil, fmt.Errorf("failed to generate truth table for '%s': %w", expression, err)
	}

	if s.config.Verify {
		if err := crosscheck.Verify(table); err != nil {
			return nil, fmt.Errorf("failed to verify truth table for '%s': %w", expression, err)
		}
		slog.Debug("Truth table verified", "expression", expression, "rows", len(table.Rows))
	}

	ratio, err := trueRatio(table)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Input:          expression,
		Expression:     root.Text(s.lexicon),
		Locale:         s.locale,
		Table:          table,
		Steps:          lo.Map(root.Connectives(), func(n *boolexpr.Node, _ int) string { return n.Format(s.lexicon) }),
		Classification: table.Classify(),
		TrueRatio:      ratio,
	}
	report.Narration = s.narrate(report.Steps)
	slog.Debug("Solved expression",
		"expression", report.Expression,
		"variables", len(table.Variables),
		"rows", len(table.Rows),
		"classification", report.Classification,
	)

	if s.config.Explain {
		s.explain(ctx, report)
	}

	return report, nil
}

func trueRatio(table *truthtable.Table) (float64, error) {
	values := lo.Map(table.Rows, func(row truthtable.Row, _ int) float64 {
		if row.Value {
			return 1
		}
		return 0
	})
	mean, err := stats.Mean(values)
	if err != nil {
		return 0, fmt.Errorf("failed to compute true ratio: %w", err)
	}
	return mean, nil
}

func (s *Solver) narrate(steps []string) []string {
	if len(steps) == 0 {
		return nil
	}
	p := phraser.New(i18n.StepPhrases(s.locale))
	if len(steps) == 1 {
		return p.Narrate(steps)
	}
	lines := p.Narrate(steps[:len(steps)-1])
	final := i18n.Printer(s.locale).Sprintf(i18n.FinalStep, steps[len(steps)-1])
	return append(lines, final)
}

func (s *Solver) explain(ctx context.Context, report *Report) {
	var table bytes.Buffer
	if err := writeMarkdownTable(&table, report, i18n.Printer(s.locale)); err != nil {
		slog.Warn("Failed to render table for the explainer", "error", err)
	}

	explanation, err := s.explainer.Explain(ctx, explainer.Request{
		Expression: report.Expression,
		Table:      table.String(),
		Steps:      report.Steps,
		Language:   i18n.LanguageName(s.locale),
	})
	if err != nil {
		slog.Warn("Could not generate explanation", "expression", report.Expression, "error", err)
		report.Note = i18n.Printer(s.locale).Sprintf(i18n.ExplanationFailed, err)
		return
	}
	report.Explanation = explanation
}
