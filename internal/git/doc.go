// Package git classifies directories as git repositories and discovers
// repositories in a directory tree.
//
// Classification is name-only: a directory is a repository when it has a
// direct child entry named ".git". The entry may be a directory (regular
// repo) or a file (worktree link). No git commands are executed and no
// repository internals are inspected.
package git
