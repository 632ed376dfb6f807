package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
)

// Command is a single CLI subcommand.
type Command struct {
	Name        string
	Usage       string
	Description string
	Flags       *flag.FlagSet
	Run         func(ctx context.Context, cmd *Command, args []string) error
}

// Execute parses the command flags and runs it with the remaining arguments.
func (c *Command) Execute(ctx context.Context, args []string) error {
	if c.Flags == nil {
		c.Flags = flag.NewFlagSet(c.Name, flag.ContinueOnError)
	}
	c.Flags.SetOutput(io.Discard)
	if err := c.Flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUsage, c.Usage, err)
	}
	return c.Run(ctx, c, c.Flags.Args())
}
