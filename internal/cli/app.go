// Package cli implements the essentials command line tool.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/essentials/pkg/logger"
)

// Config is read from the environment by config.Load.
type Config struct {
	Env     string       `env:"APP_ENV" envDefault:"development"`
	Level   string       `env:"LOG_LEVEL" envDefault:"info"`
	Locale  language.Tag `env:"ESSENTIALS_LOCALE" envDefault:"en"`
	Service string       `env:"ESSENTIALS_SERVICE" envDefault:"essentials"`
	NoColor bool         `env:"NO_COLOR" envDefault:"false"`
}

// GlobalFlags are accepted before the command name.
type GlobalFlags struct {
	JSON    bool
	NoColor bool
	Quiet   bool
}

type commandKey struct{}

// CommandFromContext is a logger.ContextExtractor that tags records with the
// name of the running command.
func CommandFromContext(ctx context.Context) (slog.Attr, bool) {
	name, ok := ctx.Value(commandKey{}).(string)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.Command(name), true
}

// App dispatches arguments to commands and writes their results.
type App struct {
	cfg      Config
	log      *slog.Logger
	out      io.Writer
	errOut   io.Writer
	stdin    io.Reader
	flags    GlobalFlags
	commands []*Command
}

// New creates an App writing results to out and usage text to errOut.
// A nil log discards log output and a nil stdin reads as empty.
func New(cfg Config, log *slog.Logger, out, errOut io.Writer, stdin io.Reader) *App {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	a := &App{
		cfg:    cfg,
		log:    log,
		out:    out,
		errOut: errOut,
		stdin:  stdin,
	}
	a.commands = []*Command{
		a.dateCommand(),
		a.caseCommand(),
		a.unixCommand(),
		a.attrCommand(),
		a.stripCommand(),
	}
	return a
}

// Run parses global flags from args and executes the named command.
func (a *App) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("essentials", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&a.flags.JSON, "json", false, "print results as JSON")
	fs.BoolVar(&a.flags.NoColor, "no-color", a.cfg.NoColor, "disable colored output")
	fs.BoolVar(&a.flags.Quiet, "quiet", false, "print bare values only")
	if err := fs.Parse(args); err != nil {
		a.usage()
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	rest := fs.Args()
	if len(rest) == 0 || rest[0] == "help" {
		a.usage()
		if len(rest) == 0 {
			return fmt.Errorf("%w: command required", ErrUsage)
		}
		return nil
	}

	cmd := a.lookup(rest[0])
	if cmd == nil {
		a.usage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, rest[0])
	}

	ctx = context.WithValue(ctx, commandKey{}, cmd.Name)
	start := time.Now()
	err := cmd.Execute(ctx, rest[1:])
	a.log.DebugContext(ctx, "command finished",
		logger.Duration(time.Since(start)),
		logger.Group("flags",
			slog.Bool("json", a.flags.JSON),
			slog.Bool("quiet", a.flags.Quiet),
		),
		logger.Error(err),
	)
	return err
}

func (a *App) lookup(name string) *Command {
	for _, c := range a.commands {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (a *App) usage() {
	if a.flags.Quiet {
		return
	}
	fmt.Fprintln(a.errOut, "usage: essentials [-json] [-no-color] [-quiet] <command> [args]")
	fmt.Fprintln(a.errOut)
	fmt.Fprintln(a.errOut, "commands:")
	for _, c := range a.commands {
		fmt.Fprintf(a.errOut, "  %-40s %s\n", c.Usage, c.Description)
	}
}

func (a *App) color(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if a.flags.NoColor {
		c.DisableColor()
	}
	return c
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// field prints a "label: value" line, or just the value in quiet mode.
func (a *App) field(label, value string) {
	if a.flags.Quiet {
		fmt.Fprintln(a.out, value)
		return
	}
	fmt.Fprintf(a.out, "%s %s\n", a.color(color.Faint).Sprintf("%-8s", label+":"), value)
}

func joinArgs(cmd *Command, args []string) (string, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return "", fmt.Errorf("%w: %s", ErrUsage, cmd.Usage)
	}
	return text, nil
}

// IsUsage reports whether err was caused by invalid arguments.
func IsUsage(err error) bool {
	return errors.Is(err, ErrUsage) || errors.Is(err, ErrUnknownCommand)
}
