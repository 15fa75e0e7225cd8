package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/eriklarko/truthtable/src/config"
	"github.com/eriklarko/truthtable/src/explainer"
	"github.com/eriklarko/truthtable/src/i18n"
	"github.com/eriklarko/truthtable/src/solver"
	"golang.org/x/text/message"
)

// app ties a solver to the output settings shared by every command.
type app struct {
	config   *config.Config
	solver   *solver.Solver
	format   solver.Format
	useColor bool
	printer  *message.Printer
}

func newApp(c *config.Config, e explainer.Explainer, useColor bool) (*app, error) {
	format, err := solver.ParseFormat(c.Format)
	if err != nil {
		return nil, err
	}
	s := solver.New(c, e)
	return &app{
		config:   c,
		solver:   s,
		format:   format,
		useColor: useColor,
		printer:  i18n.Printer(s.Locale()),
	}, nil
}

func (a *app) solve(ctx context.Context, expression string) (*solver.Report, error) {
	return a.solver.Solve(ctx, expression)
}

// render writes the report to the terminal, coloured when enabled.
func (a *app) render(w io.Writer, report *solver.Report) error {
	return solver.Render(w, report, a.format, a.useColor)
}

// plain renders the report for the output file.
func (a *app) plain(report *solver.Report) (string, error) {
	var sb strings.Builder
	if err := solver.Render(&sb, report, a.format, false); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (a *app) errorLine(err error) string {
	return a.printer.Sprintf(i18n.ErrorLine, err)
}

// save overwrites the output file. Failing to save is logged, the result
// has already been shown.
func (a *app) save(content string) {
	if err := a.config.WriteReport(content); err != nil {
		slog.Warn("Failed to save result", "error", err)
		return
	}
	if a.config.Output != "" && a.config.Output != "-" {
		slog.Debug("Saved result", "path", a.config.Output)
	}
}

// separator goes between reports written to the same stream.
func (a *app) separator() string {
	if a.format == solver.CSV {
		return "\n"
	}
	return "---\n"
}

func (a *app) banner(w io.Writer) {
	lex := a.solver.Lexicon()
	fmt.Fprintln(w, a.printer.Sprintf(i18n.Title))
	fmt.Fprintln(w)
	fmt.Fprintln(w, a.printer.Sprintf(i18n.AvailableOps))
	for _, line := range solver.Legend(lex) {
		fmt.Fprintf(w, "- %s\n", line)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, a.printer.Sprintf(i18n.ExampleLine, exampleExpression().Text(lex)))
}
