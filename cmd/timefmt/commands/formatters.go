package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newFormattersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "formatters",
		Short: "List formatter names in registration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range a.engine.Formatters() {
				pattern, ok := a.engine.Expand(name)
				if !ok {
					pattern = "(func)"
				}
				fmt.Fprintf(w, "%s\t%s\n", name, pattern)
			}
			return w.Flush()
		},
	}
}
