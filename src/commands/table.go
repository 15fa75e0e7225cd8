package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
)

type TableConfig struct {
	*MainConfig
	Tree bool `cli:"name=tree desc='print the parsed expression tree'"`

	Table *cli.Command
}

// TableCommand returns the table subcommand.
func TableCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TableConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Table, "table").
		WithAliases("t").
		WithSynopsis("table [-tree] <expression...> - Solve one expression").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *TableConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Table.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: usage: truthtable table <expression...>", cli.ErrUsage)
	}

	a, err := cfg.newApp()
	if err != nil {
		return err
	}
	return runTable(context.Background(), a, cc.Out, strings.Join(args, " "), cfg.Tree)
}

func runTable(ctx context.Context, a *app, w io.Writer, expression string, tree bool) error {
	report, err := a.solve(ctx, expression)
	if err != nil {
		a.save(a.errorLine(err) + "\n")
		return err
	}

	if tree {
		fmt.Fprintln(w, report.Tree())
		fmt.Fprintln(w)
	}
	if err := a.render(w, report); err != nil {
		return err
	}

	content, err := a.plain(report)
	if err != nil {
		return err
	}
	a.save(content)
	return nil
}
