package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wtarte/gitfindr/internal/log"
	"github.com/wtarte/gitfindr/internal/output"
	"github.com/wtarte/gitfindr/internal/registry"
)

func newRemoveCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:     "remove",
		Short:   "Stop tracking a repository",
		Aliases: []string{"rm"},
		Args:    cobra.NoArgs,
		Long: `Stop tracking a repository.

The entry is removed from the registry; nothing on disk is touched.`,
		Example: `  gitfindr remove -n my-project`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			reg, err := registry.Load()
			if err != nil {
				return fmt.Errorf("load registry: %w", err)
			}

			if err := reg.Remove(name); err != nil {
				if errors.Is(err, registry.ErrDoesNotExist) {
					l.Printf("cannot remove: %v\n", err)
					suggestAliases(l, reg, name)
				} else {
					l.Printf("cannot remove %s: %v\n", name, err)
				}
			} else {
				out.Printf("No longer tracking %s\n", name)
			}

			if err := reg.Save(); err != nil {
				return fmt.Errorf("save registry: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Alias of the repository to remove")
	cmd.MarkFlagRequired("name")
	cmd.RegisterFlagCompletionFunc("name", completeAliases)

	return cmd
}
