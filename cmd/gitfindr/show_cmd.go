package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wtarte/gitfindr/internal/log"
	"github.com/wtarte/gitfindr/internal/output"
	"github.com/wtarte/gitfindr/internal/registry"
)

func newShowCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a tracked repository",
		Args:  cobra.NoArgs,
		Long: `Show the registry entry for one alias.

With --verbose, also reports whether the recorded path still exists.`,
		Example: `  gitfindr show -n my-project
  gitfindr show -n my-project -v`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			reg, err := registry.Load()
			if err != nil {
				return fmt.Errorf("load registry: %w", err)
			}

			repo, ok := reg.Get(name)
			if !ok {
				l.Printf("no repo tracked under %q\n", name)
				suggestAliases(l, reg, name)
				return nil
			}

			out.Println(repo.String())
			if verbose {
				out.Printf("on disk: %s\n", pathStatus(repo.Path))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Alias of the repository to show")
	cmd.MarkFlagRequired("name")
	cmd.RegisterFlagCompletionFunc("name", completeAliases)

	return cmd
}
