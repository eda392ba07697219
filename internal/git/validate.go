package git

import (
	"fmt"
	"os"
)

// GitDirName is the entry that marks a directory as a repository root.
const GitDirName = ".git"

// ErrNotARepository indicates a readable directory with no .git entry.
var ErrNotARepository = fmt.Errorf("not a git repository")

// Validate checks that path is a git repository: a directory whose direct
// children include an entry named ".git" (directory or file).
//
// A readable directory without a .git entry fails with ErrNotARepository.
// A directory that cannot be listed fails with the underlying I/O error,
// which is distinguishable from ErrNotARepository via errors.Is.
func Validate(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("read directory %s: %w", path, err)
	}

	for _, entry := range entries {
		if entry.Name() == GitDirName {
			return nil
		}
	}

	return fmt.Errorf("%s: %w", path, ErrNotARepository)
}
