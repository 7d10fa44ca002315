package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	timefmt "github.com/goliatone/go-timefmt"
)

func newLangCmd(a *app) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "lang [CODE]",
		Short: "Show the active language, switch to CODE, or list available packs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if list {
				codes := []string{timefmt.DefaultLanguage}
				if a.settings.Packs != "" {
					found, err := timefmt.NewDirSource(a.settings.Packs).Codes()
					if err != nil {
						return err
					}
					for _, code := range found {
						if code != timefmt.DefaultLanguage {
							codes = append(codes, code)
						}
					}
				}
				for _, code := range codes {
					fmt.Fprintln(out, code)
				}
				return nil
			}

			if len(args) == 1 {
				requested := timefmt.NormalizeLanguage(args[0])
				if got := a.engine.SetLanguage(requested); got != requested {
					a.logger.WithField("requested", requested).Warn("language pack not available")
				}
			}

			pack := a.engine.Pack()
			fmt.Fprintf(out, "%s\t%s\n", pack.Code, pack.DisplayName())
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "list available language codes")
	return cmd
}
