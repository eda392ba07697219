package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wtarte/gitfindr/internal/git"
	"github.com/wtarte/gitfindr/internal/log"
	"github.com/wtarte/gitfindr/internal/output"
	"github.com/wtarte/gitfindr/internal/registry"
)

func newAddCmd() *cobra.Command {
	var (
		path  string
		alias string
		dir   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Track a local git repo",
		Long: `Track a local git repository under an alias.

With --path, the single repository at the given path is registered; the
alias defaults to the directory's own name. With --dir, the directory is
scanned recursively and every repository found is registered under its
directory name. Non-repos and alias collisions are reported and skipped;
the scan keeps going.`,
		Example: `  gitfindr add -p ~/work/my-project             # Track one repo
  gitfindr add -p ~/work/my-project -a myproj   # Custom alias
  gitfindr add -d ~/work                        # Track every repo under ~/work`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			pathSet := cmd.Flags().Changed("path")
			dirSet := cmd.Flags().Changed("dir")
			if !pathSet && !dirSet {
				return fmt.Errorf("either --path or --dir is required")
			}

			reg, err := registry.Load()
			if err != nil {
				return fmt.Errorf("load registry: %w", err)
			}

			if pathSet {
				addSingle(ctx, reg, path, alias)
			} else {
				scanDir := dir
				if scanDir == "" {
					scanDir = configScanDir()
				}
				if scanDir == "" {
					return fmt.Errorf("no directory given and scan_dir is not configured")
				}
				addScan(ctx, reg, scanDir)
			}

			// The registry is persisted even when nothing was added:
			// per-item failures are not fatal to the run.
			if err := reg.Save(); err != nil {
				return fmt.Errorf("save registry: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "Path to a single git repository")
	cmd.Flags().StringVarP(&alias, "alias", "a", "", "Alias for the repository (default: directory name)")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory to scan recursively for repositories")
	cmd.MarkFlagsMutuallyExclusive("path", "dir")
	cmd.MarkFlagsMutuallyExclusive("alias", "dir")

	return cmd
}

// addSingle validates and registers one repository. Failures are reported
// and leave the registry unchanged.
func addSingle(ctx context.Context, reg *registry.Registry, path, alias string) {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	absPath, err := filepath.Abs(path)
	if err != nil {
		l.Printf("cannot track %s: %v\n", path, err)
		return
	}

	if err := git.Validate(absPath); err != nil {
		l.Printf("cannot track %s: %v\n", absPath, err)
		return
	}

	if alias == "" {
		alias = filepath.Base(absPath)
	}

	l.Debug("tracking repo %s as %q", absPath, alias)

	if err := reg.Add(registry.Repo{Name: alias, Path: absPath}); err != nil {
		l.Printf("cannot track %s: %v\n", absPath, err)
		return
	}

	out.Printf("Tracking %s (%s)\n", alias, absPath)
}

// addScan scans dir recursively and registers every discovered repository.
// Alias collisions are skipped and reported; the batch is not atomic.
func addScan(ctx context.Context, reg *registry.Registry, dir string) {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	absDir, err := filepath.Abs(dir)
	if err != nil {
		l.Printf("cannot scan %s: %v\n", dir, err)
		return
	}

	opts := git.ScanOptions{}
	if cfg != nil {
		opts.StopAtRepo = cfg.Scan.StopAtRepo
	}

	var added int
	for _, found := range git.Scan(ctx, absDir, opts) {
		if err := reg.Add(registry.Repo{Name: found.Name, Path: found.Path}); err != nil {
			l.Printf("skipping %s: %v\n", found.Path, err)
			continue
		}
		l.Debug("tracking repo %s as %q", found.Path, found.Name)
		added++
	}

	out.Printf("Tracking %d repositories found under %s\n", added, absDir)
}

// configScanDir returns the configured default scan directory, if any.
func configScanDir() string {
	if cfg == nil {
		return ""
	}
	return cfg.ScanDir
}
