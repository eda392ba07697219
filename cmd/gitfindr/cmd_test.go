package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wtarte/gitfindr/internal/config"
	"github.com/wtarte/gitfindr/internal/git"
	"github.com/wtarte/gitfindr/internal/log"
	"github.com/wtarte/gitfindr/internal/output"
	"github.com/wtarte/gitfindr/internal/registry"
)

// buffers collects a command's stdout and stderr streams.
type buffers struct {
	out bytes.Buffer
	log bytes.Buffer
}

// run executes a command with a test context, a temp HOME for the
// registry, and captured output streams.
func run(t *testing.T, cmd *cobra.Command, args ...string) *buffers {
	t.Helper()

	var b buffers
	ctx := log.WithLogger(context.Background(), log.New(&b.log, verbose, quiet))
	ctx = output.WithPrinter(ctx, &b.out)

	cmd.SetContext(ctx)
	cmd.SetArgs(args)
	cmd.SetOut(&b.out)
	cmd.SetErr(&b.log)
	require.NoError(t, cmd.Execute())

	return &b
}

// runRoot executes the full command tree so persistent flags are parsed
// by cobra, then restores global flag state for later tests.
func runRoot(t *testing.T, args ...string) *buffers {
	t.Helper()

	var b buffers
	rootCmd.SetContext(context.Background())
	rootCmd.SetOut(&b.out)
	rootCmd.SetErr(&b.log)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		verbose = false
		quiet = false
		for _, name := range []string{"verbose", "quiet"} {
			f := rootCmd.PersistentFlags().Lookup(name)
			f.Value.Set("false")
			f.Changed = false
		}
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())

	return &b
}

// setupHome points HOME at a fresh temp dir so registry and config reads
// go nowhere near the real user files. Not parallel-safe.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Cleanup(func() { cfg = nil })
	cfg = &config.Config{}
	return home
}

// makeRepo creates a fake repository (a directory with a .git child).
func makeRepo(t *testing.T, parent string, elems ...string) string {
	t.Helper()
	path := filepath.Join(append([]string{parent}, elems...)...)
	require.NoError(t, os.MkdirAll(filepath.Join(path, git.GitDirName), 0o755))
	return path
}

func loadRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.Load()
	require.NoError(t, err)
	return reg
}

func TestAddSingleRepo(t *testing.T) {
	setupHome(t)
	repo := makeRepo(t, t.TempDir(), "proj")

	b := run(t, newAddCmd(), "-p", repo)

	assert.Contains(t, b.out.String(), "Tracking proj")

	reg := loadRegistry(t)
	got, ok := reg.Get("proj")
	require.True(t, ok)
	assert.Equal(t, repo, got.Path)
}

func TestAddCustomAlias(t *testing.T) {
	setupHome(t)
	repo := makeRepo(t, t.TempDir(), "proj")

	run(t, newAddCmd(), "-p", repo, "-a", "work")

	reg := loadRegistry(t)
	_, ok := reg.Get("work")
	assert.True(t, ok)
	_, ok = reg.Get("proj")
	assert.False(t, ok)
}

// A non-repo path fails visibly but not fatally: the command exits
// cleanly and the (unchanged) registry is still persisted.
func TestAddNonRepoStillPersists(t *testing.T) {
	setupHome(t)
	notARepo := t.TempDir()

	b := run(t, newAddCmd(), "-p", notARepo)

	assert.Contains(t, b.log.String(), "not a git repository")

	regPath, err := registry.DefaultPath()
	require.NoError(t, err)
	_, err = os.Stat(regPath)
	assert.NoError(t, err, "registry file should be written even when nothing was added")
	assert.True(t, loadRegistry(t).IsEmpty())
}

func TestAddDuplicateAliasKeepsFirst(t *testing.T) {
	setupHome(t)
	work := t.TempDir()
	first := makeRepo(t, work, "x", "app")
	second := makeRepo(t, work, "y", "app")

	run(t, newAddCmd(), "-p", first)
	b := run(t, newAddCmd(), "-p", second)

	assert.Contains(t, b.log.String(), "already exists")

	got, ok := loadRegistry(t).Get("app")
	require.True(t, ok)
	assert.Equal(t, first, got.Path)
}

func TestAddScanDirectory(t *testing.T) {
	setupHome(t)
	work := t.TempDir()
	makeRepo(t, work, "a")
	makeRepo(t, work, "b", "c")

	b := run(t, newAddCmd(), "-d", work)

	assert.Contains(t, b.out.String(), "Tracking 2 repositories")
	assert.Equal(t, []string{"a", "c"}, loadRegistry(t).Names())
}

func TestAddScanUsesConfiguredDir(t *testing.T) {
	setupHome(t)
	work := t.TempDir()
	makeRepo(t, work, "a")
	cfg.ScanDir = work

	run(t, newAddCmd(), "-d", "")

	assert.Equal(t, []string{"a"}, loadRegistry(t).Names())
}

func TestAddRequiresPathOrDir(t *testing.T) {
	setupHome(t)

	cmd := newAddCmd()
	cmd.SetContext(context.Background())
	cmd.SetArgs(nil)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
}

func TestRemove(t *testing.T) {
	setupHome(t)
	repo := makeRepo(t, t.TempDir(), "proj")
	run(t, newAddCmd(), "-p", repo)

	b := run(t, newRemoveCmd(), "-n", "proj")

	assert.Contains(t, b.out.String(), "No longer tracking proj")
	assert.True(t, loadRegistry(t).IsEmpty())
}

func TestRemoveAbsentSuggests(t *testing.T) {
	setupHome(t)
	repo := makeRepo(t, t.TempDir(), "project")
	run(t, newAddCmd(), "-p", repo)

	b := run(t, newRemoveCmd(), "-n", "projct")

	assert.Contains(t, b.log.String(), "does not exist")
	assert.Contains(t, b.log.String(), "did you mean: project?")
	assert.Equal(t, 1, loadRegistry(t).Len())
}

func TestListEmpty(t *testing.T) {
	setupHome(t)

	b := run(t, newListCmd())

	assert.Contains(t, b.out.String(), "No repos to show!")
}

func TestList(t *testing.T) {
	setupHome(t)
	work := t.TempDir()
	alpha := makeRepo(t, work, "alpha")
	beta := makeRepo(t, work, "beta")
	run(t, newAddCmd(), "-p", alpha)
	run(t, newAddCmd(), "-p", beta)

	b := run(t, newListCmd())

	out := b.out.String()
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, alpha)
	assert.Contains(t, out, "beta")
	assert.Contains(t, out, beta)
}

func TestListVerboseStatus(t *testing.T) {
	setupHome(t)
	repo := makeRepo(t, t.TempDir(), "proj")
	run(t, newAddCmd(), "-p", repo)

	verbose = true
	t.Cleanup(func() { verbose = false })

	require.NoError(t, os.RemoveAll(repo))
	b := run(t, newListCmd())

	assert.Contains(t, b.out.String(), "STATUS")
	assert.Contains(t, b.out.String(), "missing")
}

func TestShow(t *testing.T) {
	setupHome(t)
	repo := makeRepo(t, t.TempDir(), "proj")
	run(t, newAddCmd(), "-p", repo)

	b := run(t, newShowCmd(), "-n", "proj")

	assert.Contains(t, b.out.String(), "proj : "+repo)
}

// The logger must be built after cobra parses persistent flags, or
// --quiet and --verbose have no effect on diagnostics.
func TestQuietSuppressesDiagnostics(t *testing.T) {
	setupHome(t)
	notARepo := t.TempDir()

	b := runRoot(t, "add", "--quiet", "-p", notARepo)

	assert.Empty(t, b.log.String())
	assert.True(t, loadRegistry(t).IsEmpty())
}

func TestVerboseEnablesDebugOutput(t *testing.T) {
	setupHome(t)
	repo := makeRepo(t, t.TempDir(), "proj")

	b := runRoot(t, "add", "--verbose", "-p", repo)

	assert.Contains(t, b.log.String(), "tracking repo")
	assert.Equal(t, []string{"proj"}, loadRegistry(t).Names())
}

func TestShowAbsent(t *testing.T) {
	setupHome(t)

	b := run(t, newShowCmd(), "-n", "ghost")

	assert.Contains(t, b.log.String(), `no repo tracked under "ghost"`)
	assert.Empty(t, b.out.String())
}
