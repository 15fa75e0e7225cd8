package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/scott-cotton/cli"
)

type BatchConfig struct {
	*MainConfig
	KeepGoing bool `cli:"name=k aliases=keep-going desc='continue after an expression fails'"`

	Batch *cli.Command
}

// BatchError reports how many expressions of a batch could not be solved.
type BatchError struct {
	Failed int
	Total  int
}

func (e BatchError) Error() string {
	return fmt.Sprintf("%d of %d expressions failed", e.Failed, e.Total)
}

// BatchCommand returns the batch subcommand.
func BatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Batch, "batch").
		WithAliases("b").
		WithSynopsis("batch [-k] <file|-> - Solve one expression per line, '#' starts a comment").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *BatchConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Batch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: truthtable batch <file|->", cli.ErrUsage)
	}

	var r io.Reader = cc.In
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()
		r = f
	}

	a, err := cfg.newApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return runBatch(ctx, a, r, cc.Out, cfg.KeepGoing)
}

// ReadExpressions returns the non-empty lines of r that are not comments.
func ReadExpressions(r io.Reader) ([]string, error) {
	var expressions []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		expressions = append(expressions, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expressions: %w", err)
	}
	return expressions, nil
}

func runBatch(ctx context.Context, a *app, r io.Reader, w io.Writer, keepGoing bool) error {
	expressions, err := ReadExpressions(r)
	if err != nil {
		return err
	}

	var saved strings.Builder
	failed := 0
	for i, expression := range expressions {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprint(w, a.separator())
			saved.WriteString(a.separator())
		}

		report, err := a.solve(ctx, expression)
		if err != nil {
			failed++
			line := a.errorLine(err)
			fmt.Fprintln(w, line)
			saved.WriteString(line + "\n")
			if !keepGoing {
				break
			}
			continue
		}

		if err := a.render(w, report); err != nil {
			return err
		}
		content, err := a.plain(report)
		if err != nil {
			return err
		}
		saved.WriteString(content)
	}
	a.save(saved.String())

	slog.Debug("Batch done", "expressions", len(expressions), "failed", failed)
	if failed > 0 {
		return &BatchError{Failed: failed, Total: len(expressions)}
	}
	return nil
}
