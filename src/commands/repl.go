package commands

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"github.com/eriklarko/truthtable/src/boolexpr"
	"github.com/eriklarko/truthtable/src/i18n"
	"github.com/eriklarko/truthtable/src/tui"
	"github.com/scott-cotton/cli"
)

type ReplConfig struct {
	*MainConfig

	Repl *cli.Command
}

// ReplCommand returns the interactive subcommand.
func ReplCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReplConfig{MainConfig: mainCfg}

	return cli.NewCommandAt(&cfg.Repl, "repl").
		WithAliases("r", "i").
		WithSynopsis("repl - Solve expressions interactively, 'q' quits").
		WithRun(cfg.run)
}

func (cfg *ReplConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Repl.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return cli.ErrUsage
	}

	a, err := cfg.newApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ui := tui.New()
	ui.SetInput(cc.In)
	ui.SetOutput(cc.Out)
	return runRepl(ctx, a, ui)
}

// exampleExpression is ((A AND B) OR C) IMPLIES B.
func exampleExpression() *boolexpr.Node {
	a, b, c := boolexpr.Variable("A"), boolexpr.Variable("B"), boolexpr.Variable("C")
	return boolexpr.Binary(boolexpr.IMPLIES,
		boolexpr.Binary(boolexpr.OR, boolexpr.Binary(boolexpr.AND, a, b), c),
		b,
	)
}

func runRepl(ctx context.Context, a *app, ui *tui.TUI) error {
	a.banner(ui.Output())

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		expression, err := ui.AskExpression(ctx, "\n"+a.printer.Sprintf(i18n.Prompt))
		if errors.Is(err, tui.ErrQuit) || ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return err
		}

		report, err := a.solve(ctx, expression)
		if err != nil {
			slog.Debug("Failed to solve expression", "expression", expression, "error", err)
			line := a.errorLine(err)
			ui.Println(line)
			a.save(line + "\n")
			continue
		}

		ui.Println("\n" + a.printer.Sprintf(i18n.ResultHeading))
		if err := a.render(ui.Output(), report); err != nil {
			return err
		}
		content, err := a.plain(report)
		if err != nil {
			return err
		}
		a.save(content)
	}
}
