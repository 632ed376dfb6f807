package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrymomot/essentials/pkg/logger"
	"github.com/dmitrymomot/essentials/pkg/xmlattr"
)

// namespaceFlag collects repeated -ns prefix=uri values.
type namespaceFlag xmlattr.Namespaces

func (n namespaceFlag) String() string {
	pairs := make([]string, 0, len(n))
	for k, v := range n {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}

func (n namespaceFlag) Set(s string) error {
	prefix, uri, ok := strings.Cut(s, "=")
	if !ok || prefix == "" || uri == "" {
		return fmt.Errorf("expected prefix=uri, got %q", s)
	}
	n[prefix] = uri
	return nil
}

func (a *App) attrCommand() *Command {
	fs := flag.NewFlagSet("attr", flag.ContinueOnError)
	ns := namespaceFlag{}
	fs.Var(ns, "ns", "namespace binding prefix=uri, repeatable")

	return &Command{
		Name:        "attr",
		Usage:       "attr [-ns prefix=uri] <expr> [file]",
		Description: "Print an attribute from an XML document (stdin when no file)",
		Flags:       fs,
		Run: func(ctx context.Context, cmd *Command, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				return fmt.Errorf("%w: %s", ErrUsage, cmd.Usage)
			}

			var bindings xmlattr.Namespaces
			if len(ns) > 0 {
				bindings = xmlattr.Namespaces(ns)
			}
			sel, err := xmlattr.Compile(args[0], bindings)
			if err != nil {
				return err
			}

			var r io.Reader = a.stdin
			if len(args) == 2 {
				f, err := os.Open(args[1])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			root, err := xmlattr.ReadRoot(r)
			if err != nil {
				return err
			}

			value, found := sel.Lookup(root)
			a.log.DebugContext(ctx, "attribute lookup", logger.Input(sel.String()), "found", found)

			if a.flags.JSON {
				res := map[string]any{"expr": sel.String(), "found": found}
				if found {
					res["value"] = value
				}
				return a.printJSON(res)
			}
			if !found {
				return fmt.Errorf("attribute %q not found", sel.String())
			}
			fmt.Fprintln(a.out, value)
			return nil
		},
	}
}
