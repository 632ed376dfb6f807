package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrymomot/essentials/pkg/unixtime"
)

type unixResult struct {
	Seconds int64   `json:"seconds"`
	Float   float64 `json:"float,omitempty"`
	Time    string  `json:"time"`
}

func (a *App) unixCommand() *Command {
	fs := flag.NewFlagSet("unix", flag.ContinueOnError)
	fractional := fs.Bool("float", false, "print the current time with sub-second precision")

	return &Command{
		Name:        "unix",
		Usage:       "unix [-float] [seconds]",
		Description: "Convert a Unix timestamp to RFC 3339 or print the current one",
		Flags:       fs,
		Run: func(ctx context.Context, cmd *Command, args []string) error {
			var res unixResult
			switch len(args) {
			case 0:
				now := time.Now()
				res.Seconds = unixtime.Seconds(now)
				if *fractional {
					res.Float = unixtime.FloatSeconds(now)
				}
				res.Time = now.UTC().Format(time.RFC3339Nano)
			case 1:
				t, err := unixtime.Parse(args[0])
				if err != nil {
					return err
				}
				res.Seconds = unixtime.Seconds(t)
				res.Time = t.Format(time.RFC3339)
			default:
				return fmt.Errorf("%w: %s", ErrUsage, cmd.Usage)
			}

			if a.flags.JSON {
				return a.printJSON(res)
			}

			if len(args) == 1 {
				fmt.Fprintln(a.out, res.Time)
				return nil
			}
			if *fractional {
				fmt.Fprintln(a.out, strconv.FormatFloat(res.Float, 'f', 6, 64))
				return nil
			}
			fmt.Fprintln(a.out, res.Seconds)
			return nil
		},
	}
}
