package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrymomot/essentials/pkg/enum"
)

func (a *App) caseCommand() *Command {
	names := make([]string, 0, len(enum.Cases()))
	for _, c := range enum.Cases() {
		names = append(names, c.String())
	}

	return &Command{
		Name:        "case",
		Usage:       "case <" + strings.Join(names, "|") + "> <text>",
		Description: "Convert text to a naming convention",
		Run: func(ctx context.Context, cmd *Command, args []string) error {
			if len(args) < 2 {
				return fmt.Errorf("%w: %s", ErrUsage, cmd.Usage)
			}
			c, err := enum.ParseCase(args[0])
			if err != nil {
				return fmt.Errorf("%w: %v", ErrUsage, err)
			}
			text, err := joinArgs(cmd, args[1:])
			if err != nil {
				return err
			}

			result := c.Format(text)
			if a.flags.JSON {
				return a.printJSON(map[string]string{
					"input":  text,
					"case":   c.String(),
					"result": result,
				})
			}
			fmt.Fprintln(a.out, result)
			return nil
		},
	}
}
