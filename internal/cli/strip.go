package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrymomot/essentials/pkg/strutil"
)

func (a *App) stripCommand() *Command {
	fs := flag.NewFlagSet("strip", flag.ContinueOnError)
	keep := fs.String("keep", "", "comma separated tags to keep")

	return &Command{
		Name:        "strip",
		Usage:       "strip [-keep b,i] [html]",
		Description: "Remove HTML tags (reads stdin when no argument)",
		Flags:       fs,
		Run: func(ctx context.Context, cmd *Command, args []string) error {
			input := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(a.stdin)
				if err != nil {
					return err
				}
				input = string(data)
			}

			var tags []string
			if *keep != "" {
				tags = strings.Split(*keep, ",")
			}

			result := strutil.StripHTML(input, tags...)
			if a.flags.JSON {
				return a.printJSON(map[string]any{
					"text":  result,
					"words": strutil.WordCount(result),
				})
			}
			fmt.Fprintln(a.out, strings.TrimRight(result, "\n"))
			return nil
		},
	}
}
