// Package registry manages the tracked-repo registry at ~/.gitfindr/repos.toml
package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/wtarte/gitfindr/internal/storage"
)

// Registry operation errors.
var (
	ErrAlreadyExists = errors.New("repository already exists")
	ErrDoesNotExist  = errors.New("repository does not exist")
)

// Repo represents a tracked git repository.
// Records are immutable once added; the path is not re-validated on access.
type Repo struct {
	Name string `toml:"name"` // Alias; unique key within a registry
	Path string `toml:"path"` // Location of the repository root
}

// Registry holds all tracked repos keyed by alias.
// Invariant: a key always maps to a record whose Name equals that key.
type Registry struct {
	Repos map[string]Repo `toml:"repos"`
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{Repos: map[string]Repo{}}
}

// DefaultPath returns the path to ~/.gitfindr/repos.toml
func DefaultPath() (string, error) {
	dir, err := storage.AppDir()
	if err != nil {
		return "", fmt.Errorf("resolve registry directory: %w", err)
	}
	return filepath.Join(dir, "repos.toml"), nil
}

// Load reads the registry from its default path.
func Load() (*Registry, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the registry from path.
// Returns an empty registry if the file doesn't exist.
func LoadFrom(path string) (*Registry, error) {
	reg := New()
	if err := storage.LoadTOML(path, reg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("read registry: %w", err)
	}
	if reg.Repos == nil {
		reg.Repos = map[string]Repo{}
	}
	// Hand-edited files may disagree with the invariant that a key maps
	// to a record of the same name. The alias key is authoritative.
	for name, repo := range reg.Repos {
		if repo.Name != name {
			repo.Name = name
			reg.Repos[name] = repo
		}
	}
	return reg, nil
}

// Save writes the registry to its default path.
func (r *Registry) Save() error {
	path, err := DefaultPath()
	if err != nil {
		return err
	}
	return r.SaveTo(path)
}

// SaveTo writes the whole registry to path atomically.
func (r *Registry) SaveTo(path string) error {
	if err := storage.SaveTOML(path, r); err != nil {
		return fmt.Errorf("save registry: %w", err)
	}
	return nil
}

// Add inserts a record under its name.
// Fails with ErrAlreadyExists if the name is taken; no partial mutation.
func (r *Registry) Add(repo Repo) error {
	if _, taken := r.Repos[repo.Name]; taken {
		return fmt.Errorf("%s: %w", repo.Name, ErrAlreadyExists)
	}
	r.Repos[repo.Name] = repo
	return nil
}

// Remove deletes the record for name.
// Fails with ErrDoesNotExist if the name is absent; the registry is unchanged.
func (r *Registry) Remove(name string) error {
	if _, ok := r.Repos[name]; !ok {
		return fmt.Errorf("%s: %w", name, ErrDoesNotExist)
	}
	delete(r.Repos, name)
	return nil
}

// Get looks up a record by name. Absence is not an error.
func (r *Registry) Get(name string) (Repo, bool) {
	repo, ok := r.Repos[name]
	return repo, ok
}

// IsEmpty reports whether no repos are tracked.
func (r *Registry) IsEmpty() bool {
	return len(r.Repos) == 0
}

// Len returns the number of tracked repos.
func (r *Registry) Len() int {
	return len(r.Repos)
}

// Names returns all aliases, sorted for stable listings and completion.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.Repos))
	for name := range r.Repos {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns all records ordered by alias.
func (r *Registry) All() []Repo {
	repos := make([]Repo, 0, len(r.Repos))
	for _, name := range r.Names() {
		repos = append(repos, r.Repos[name])
	}
	return repos
}

// String returns a display string for the repo.
func (repo Repo) String() string {
	return fmt.Sprintf("%s : %s", repo.Name, repo.Path)
}
