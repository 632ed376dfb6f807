package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/essentials/pkg/logger"
	"github.com/dmitrymomot/essentials/pkg/partialdate"
)

type dateResult struct {
	Input   string `json:"input"`
	Date    string `json:"date"`
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Day     int    `json:"day"`
	Partial bool   `json:"partial"`
	Locale  string `json:"locale"`
}

func (a *App) dateCommand() *Command {
	fs := flag.NewFlagSet("date", flag.ContinueOnError)
	locale := fs.String("locale", "", "language tag used for month names (defaults to ESSENTIALS_LOCALE)")

	return &Command{
		Name:        "date",
		Usage:       "date [-locale tag] <text>",
		Description: "Parse a full or partial date",
		Flags:       fs,
		Run: func(ctx context.Context, cmd *Command, args []string) error {
			text, err := joinArgs(cmd, args)
			if err != nil {
				return err
			}

			tag := a.cfg.Locale
			if *locale != "" {
				if tag, err = language.Parse(*locale); err != nil {
					return fmt.Errorf("%w: invalid locale %q: %v", ErrUsage, *locale, err)
				}
			}

			a.log.DebugContext(ctx, "parsing date", logger.Input(text), logger.Locale(tag.String()))

			d, err := partialdate.Parse(text, partialdate.WithLocale(tag))
			if err != nil {
				return err
			}

			res := dateResult{
				Input:   text,
				Date:    d.String(),
				Year:    d.Year(),
				Month:   int(d.Month()),
				Day:     d.Day(),
				Partial: d.IsPartial(),
				Locale:  tag.String(),
			}
			if a.flags.JSON {
				return a.printJSON(res)
			}
			if a.flags.Quiet {
				fmt.Fprintln(a.out, res.Date)
				return nil
			}

			dateColor := a.color(color.FgGreen, color.Bold)
			if res.Partial {
				dateColor = a.color(color.FgYellow, color.Bold)
			}
			a.field("date", dateColor.Sprint(res.Date))
			a.field("year", component(res.Year, d.HasYear()))
			a.field("month", component(res.Month, d.HasMonth()))
			a.field("day", component(res.Day, d.HasDay()))
			a.field("partial", strconv.FormatBool(res.Partial))
			return nil
		},
	}
}

func component(v int, known bool) string {
	if !known {
		return "unknown"
	}
	return strconv.Itoa(v)
}
