package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/wtarte/gitfindr/internal/log"
)

// Discovered is a repository found by Scan: its derived default name
// (the directory's own name) and its path.
type Discovered struct {
	Name string
	Path string
}

// ScanOptions controls Scan behavior.
type ScanOptions struct {
	// StopAtRepo stops descending into a directory's children once the
	// directory itself is a repository. Off by default: nested repos
	// (submodules, vendored checkouts) are discovered too.
	StopAtRepo bool
}

// Scan walks the directory tree rooted at root and returns every git
// repository found, the root itself included. The walk is iterative
// (slice as stack), so arbitrarily deep trees don't hit recursion limits.
// Sibling visitation order is unspecified.
//
// Scan never fails as a whole. Directories that cannot be listed and
// repositories whose name cannot be derived are reported on the context
// logger and skipped. Duplicate names across discoveries are possible;
// deduplication is the registry's concern at add time.
func Scan(ctx context.Context, root string, opts ScanOptions) []Discovered {
	l := log.FromContext(ctx)

	var found []Discovered

	pending := []string{root}
	for len(pending) > 0 {
		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		isRepo := false
		switch err := Validate(dir); {
		case err == nil:
			isRepo = true
			name := filepath.Base(dir)
			if !usableName(name) {
				l.Printf("skipping %s: cannot derive a name from path\n", dir)
				break
			}
			found = append(found, Discovered{Name: name, Path: dir})
		case errors.Is(err, ErrNotARepository):
			// Not a repo, keep descending.
		default:
			l.Printf("skipping %s: %v\n", dir, err)
			continue
		}

		if isRepo && opts.StopAtRepo {
			continue
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			// Validate already reported unreadable directories.
			continue
		}
		for _, entry := range entries {
			// .git itself never contains repository roots; don't walk it.
			if entry.IsDir() && entry.Name() != GitDirName {
				pending = append(pending, filepath.Join(dir, entry.Name()))
			}
		}
	}

	return found
}

// usableName reports whether base is a real path component.
// filepath.Base returns "/" for the root directory and "." for empty paths.
func usableName(base string) bool {
	return base != "" && base != "." && base != string(filepath.Separator)
}
