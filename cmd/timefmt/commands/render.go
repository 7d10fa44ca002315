package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	timefmt "github.com/goliatone/go-timefmt"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		at       string
		strftime bool
	)

	cmd := &cobra.Command{
		Use:   "render PATTERN",
		Short: "Render a token pattern or formatter name",
		Example: `  timefmt render ISODate
  timefmt render "DDD, d MMMM YYYY" --at 1995-09-05T03:05:03
  timefmt render "%A %d %B" --strftime --lang uk --packs ./packs`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.engine.Time(parseAt(at))
			if err != nil {
				return err
			}

			var out string
			if strftime {
				fn, err := timefmt.Strftime(args[0])
				if err != nil {
					return err
				}
				out, err = fn(a.engine, t)
				if err != nil {
					return err
				}
			} else {
				out, err = a.engine.Format(args[0], t)
				if err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "time to render: a date string or Unix milliseconds (default: now)")
	cmd.Flags().BoolVar(&strftime, "strftime", false, "treat PATTERN as a strftime layout")

	return cmd
}

// parseAt maps the --at flag to a value Engine.Time understands.
func parseAt(at string) any {
	at = strings.TrimSpace(at)
	if at == "" {
		return nil
	}
	if ms, err := strconv.ParseInt(at, 10, 64); err == nil {
		return ms
	}
	return at
}
