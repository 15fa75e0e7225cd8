package solver

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/eriklarko/truthtable/src/boolexpr"
	"github.com/eriklarko/truthtable/src/i18n"
	"github.com/fatih/color"
	"github.com/samber/lo"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	Markdown Format = "markdown"
	Text     Format = "text"
	YAML     Format = "yaml"
	CSV      Format = "csv"
)

var Formats = []Format{Markdown, Text, YAML, CSV}

type UnknownFormatError struct {
	Format string
}

func (e UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown format %q, expected one of %v", e.Format, Formats)
}

// ParseFormat accepts the format names case-insensitively, "md" and "yml"
// included. An empty name gives Markdown.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "markdown", "md":
		return Markdown, nil
	case "text", "txt":
		return Text, nil
	case "yaml", "yml":
		return YAML, nil
	case "csv":
		return CSV, nil
	}
	return "", &UnknownFormatError{Format: name}
}

// Render writes the report to w. useColor only affects the Text format.
func Render(w io.Writer, report *Report, format Format, useColor bool) error {
	p := i18n.Printer(report.Locale)
	switch format {
	case Markdown, "":
		return renderMarkdown(w, report, p)
	case Text:
		return renderText(w, report, p, useColor)
	case YAML:
		return renderYAML(w, report)
	case CSV:
		return renderCSV(w, report, p)
	}
	return &UnknownFormatError{Format: string(format)}
}

func renderMarkdown(w io.Writer, r *Report, p *message.Printer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n%s\n\n", p.Sprintf(i18n.ExpressionLabel), r.Expression)

	fmt.Fprintf(&sb, "## %s\n\n", p.Sprintf(i18n.TableLabel))
	if err := writeMarkdownTable(&sb, r, p); err != nil {
		return err
	}

	if len(r.Narration) > 0 {
		fmt.Fprintf(&sb, "\n## %s\n\n", p.Sprintf(i18n.StepsLabel))
		for i, line := range r.Narration {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, line)
		}
	}

	fmt.Fprintf(&sb, "\n## %s\n\n%s\n", p.Sprintf(i18n.SummaryLabel), r.Summary(p))
	writeExplanation(&sb, r, p, "\n## %s\n\n%s\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeMarkdownTable(w io.Writer, r *Report, p *message.Printer) error {
	columns := lo.Map(r.Columns(p), func(c string, _ int) string {
		// pipes inside a cell would split the column
		return strings.ReplaceAll(c, "|", `\|`)
	})

	var sb strings.Builder
	sb.WriteString("| " + strings.Join(columns, " | ") + " |\n")
	sb.WriteString("|" + strings.Repeat("---|", len(columns)) + "\n")
	for _, row := range r.Table.Rows {
		cells := lo.Map(r.Cells(row), func(v bool, _ int) string { return bit(v) })
		sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeExplanation(sb *strings.Builder, r *Report, p *message.Printer, layout string) {
	switch {
	case r.Explanation != "":
		fmt.Fprintf(sb, layout, p.Sprintf(i18n.ExplanationLabel), r.Explanation)
	case r.Note != "":
		fmt.Fprintf(sb, layout, p.Sprintf(i18n.ExplanationLabel), r.Note)
	}
}

func renderText(w io.Writer, r *Report, p *message.Printer, useColor bool) error {
	heading := color.New(color.Bold)
	yes := color.New(color.FgGreen)
	no := color.New(color.FgRed)
	for _, c := range []*color.Color{heading, yes, no} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s\n\n", heading.Sprint(p.Sprintf(i18n.ExpressionLabel)), r.Expression)

	columns := r.Columns(p)
	widths := lo.Map(columns, func(c string, _ int) int { return utf8.RuneCountInString(c) })
	headers := lo.Map(columns, func(c string, i int) string { return heading.Sprint(pad(c, widths[i])) })
	sb.WriteString(strings.TrimRight(strings.Join(headers, "  "), " ") + "\n")
	for _, row := range r.Table.Rows {
		cells := lo.Map(r.Cells(row), func(v bool, i int) string {
			c := no
			if v {
				c = yes
			}
			return c.Sprint(pad(bit(v), widths[i]))
		})
		sb.WriteString(strings.TrimRight(strings.Join(cells, "  "), " ") + "\n")
	}

	if len(r.Narration) > 0 {
		fmt.Fprintf(&sb, "\n%s:\n", heading.Sprint(p.Sprintf(i18n.StepsLabel)))
		for i, line := range r.Narration {
			fmt.Fprintf(&sb, "  %d. %s\n", i+1, line)
		}
	}

	fmt.Fprintf(&sb, "\n%s: %s\n", heading.Sprint(p.Sprintf(i18n.SummaryLabel)), r.Summary(p))
	writeExplanation(&sb, r, p, "\n%s:\n%s\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

type yamlReport struct {
	Expression     string    `yaml:"expression"`
	Variables      []string  `yaml:"variables"`
	Steps          []string  `yaml:"steps,omitempty"`
	Rows           []yamlRow `yaml:"rows"`
	Classification string    `yaml:"classification"`
	TrueRatio      float64   `yaml:"true-ratio"`
	Explanation    string    `yaml:"explanation,omitempty"`
	Note           string    `yaml:"note,omitempty"`
}

type yamlRow struct {
	// Values are the variable values in the order of Variables.
	Values []bool `yaml:"values,flow"`
	Steps  []bool `yaml:"steps,flow,omitempty"`
	Result bool   `yaml:"result"`
}

func renderYAML(w io.Writer, r *Report) error {
	out := yamlReport{
		Expression:     r.Expression,
		Variables:      r.Table.Variables,
		Steps:          r.Steps,
		Classification: r.Classification.String(),
		TrueRatio:      r.TrueRatio,
		Explanation:    r.Explanation,
		Note:           r.Note,
	}
	for _, row := range r.Table.Rows {
		out.Rows = append(out.Rows, yamlRow{
			Values: row.Values(r.Table.Variables),
			Steps: lo.Map(row.Trace.Operations(), func(step boolexpr.Step, _ int) bool {
				return step.Value
			}),
			Result: row.Value,
		})
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("failed to encode report as yaml: %w", err)
	}
	return encoder.Close()
}

func renderCSV(w io.Writer, r *Report, p *message.Printer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(r.Columns(p)); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range r.Table.Rows {
		cells := lo.Map(r.Cells(row), func(v bool, _ int) string { return bit(v) })
		if err := writer.Write(cells); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
