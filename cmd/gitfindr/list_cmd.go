package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wtarte/gitfindr/internal/output"
	"github.com/wtarte/gitfindr/internal/registry"
	"github.com/wtarte/gitfindr/internal/ui/static"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List tracked repositories",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		Long: `List every tracked repository with its alias and path.

With --verbose, a STATUS column shows whether the recorded path still
exists on disk. The registry itself is never updated by listing.`,
		Example: `  gitfindr list
  gitfindr list -v`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			reg, err := registry.Load()
			if err != nil {
				return fmt.Errorf("load registry: %w", err)
			}

			if reg.IsEmpty() {
				out.Println("No repos to show!")
				return nil
			}

			headers := []string{"ALIAS", "PATH"}
			if verbose {
				headers = append(headers, "STATUS")
			}

			var rows [][]string
			for _, repo := range reg.All() {
				row := []string{repo.Name, repo.Path}
				if verbose {
					row = append(row, pathStatus(repo.Path))
				}
				rows = append(rows, row)
			}

			out.Print(static.RenderTable(out.Writer(), headers, rows))
			return nil
		},
	}

	return cmd
}

// pathStatus reports whether a recorded path still exists on disk.
// A plain stat, no git introspection; records are not re-validated.
func pathStatus(path string) string {
	if _, err := os.Stat(path); err != nil {
		return "missing"
	}
	return "ok"
}
