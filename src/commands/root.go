package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/eriklarko/truthtable/src/config"
	"github.com/eriklarko/truthtable/src/environment"
	"github.com/eriklarko/truthtable/src/explainer"
	"github.com/samber/lo"
	"github.com/scott-cotton/cli"
)

const usageText = `truthtable builds truth tables for propositional logic expressions.

Expressions use variables (A, b1, _x), parentheses and the operators
NOT, AND, OR, XOR, IMPLIES and EQUIV. The Russian keywords (отрицание,
конъюнкция, дизъюнкция, исключающее или, импликация, эквивалентность) and
the symbols ! & | ^ -> <-> are accepted too.

Usage:
  truthtable [opts]                          Interactive session (default)
  truthtable [opts] repl                     Interactive session
  truthtable [opts] table <expression...>    Solve one expression
  truthtable [opts] batch <file|->           Solve one expression per line

Examples:
  truthtable table "(A AND B) OR C"
  truthtable -locale ru -format text table "A импликация B"
  truthtable -format csv -o - batch expressions.txt`

type MainConfig struct {
	ConfigPath string `cli:"name=config desc='configuration file (yaml), default .truthtable.yaml'"`
	Locale     string `cli:"name=locale aliases=l desc='report language: en, ru'"`
	Format     string `cli:"name=format aliases=f desc='report format: markdown, text, yaml, csv'"`
	Output     string `cli:"name=o desc='file the reports are written to, - for none'"`
	Max        int    `cli:"name=max desc='maximum number of variables'"`
	Explain    bool   `cli:"name=explain desc='ask the explainer to describe every result'"`
	Color      string `cli:"name=color desc='colour terminal output: auto, always, never'"`
	Verify     bool   `cli:"name=verify desc='re-evaluate every table with the expr engine'"`
	Verbose    bool   `cli:"name=v aliases=verbose desc='debug logging'"`

	Main *cli.Command
}

// Root returns the truthtable command with its subcommands.
func Root() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Main, "truthtable").
		WithSynopsis("truthtable [opts] [repl | table | batch] [args]").
		WithDescription(usageText).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return truthtableMain(cfg, cc, args)
		}).
		WithSubs(
			ReplCommand(cfg),
			TableCommand(cfg),
			BatchCommand(cfg),
		)
}

func truthtableMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	setupLogging(cfg.Verbose)

	if len(args) == 0 {
		// no command starts an interactive session, piped input is solved
		// as a batch
		args = []string{"repl"}
		if !environment.IsInteractive() {
			args = []string{"batch", "-"}
		}
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadConfig reads the config file, then the environment, then applies the
// flags. A missing default config file is not an error.
func (cfg *MainConfig) loadConfig() (*config.Config, error) {
	path := cfg.ConfigPath
	explicit := path != ""
	if !explicit {
		path = config.DefaultPath
	}

	c, err := config.LoadConfig(path)
	if os.IsNotExist(err) && !explicit {
		slog.Debug("No config file found, using defaults", "path", path)
		c = config.Default()
	} else if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.ParseEnv(c); err != nil {
		return nil, err
	}
	if err := cfg.apply(c); err != nil {
		return nil, err
	}
	return c, nil
}

// apply copies the flags that were given onto c.
func (cfg *MainConfig) apply(c *config.Config) error {
	if cfg.Locale != "" {
		c.Locale = cfg.Locale
	}
	if cfg.Format != "" {
		c.Format = cfg.Format
	}
	if cfg.Output != "" {
		c.Output = cfg.Output
	}
	if cfg.Max != 0 {
		c.MaxVariables = cfg.Max
	}
	if cfg.Explain {
		c.Explain = true
	}
	if cfg.Verify {
		c.Verify = true
	}

	switch strings.ToLower(cfg.Color) {
	case "", "auto":
	case "always", "true", "yes":
		c.Color = lo.ToPtr(true)
	case "never", "false", "no":
		c.Color = lo.ToPtr(false)
	default:
		return fmt.Errorf("%w: -color must be auto, always or never, got %q", cli.ErrUsage, cfg.Color)
	}
	return nil
}

func (cfg *MainConfig) newApp() (*app, error) {
	c, err := cfg.loadConfig()
	if err != nil {
		return nil, err
	}

	var e explainer.Explainer = explainer.Noop{}
	if c.Explain {
		ec, err := explainer.LoadConfig()
		if err != nil {
			return nil, err
		}
		if ec.APIKey == "" {
			slog.Warn("GOOGLE_API_KEY is not set, explanations are disabled")
		}
		e = explainer.New(ec)
	}

	return newApp(c, e, environment.UseColor(c.Color))
}
