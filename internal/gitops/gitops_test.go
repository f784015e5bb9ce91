package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func TestInit(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	_, err := os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git directory should exist")
}

func TestIsRepo(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	assert.False(t, IsRepo(dir), "empty dir should not be a repo")

	require.NoError(t, Init(dir))
	assert.True(t, IsRepo(dir), "initialized dir should be a repo")
}

// setIdentity gives the repo a committer identity; commits need one
// regardless of --author.
func setIdentity(t *testing.T, dir string) {
	t.Helper()
	for _, args := range [][]string{
		{"config", "user.name", "Test"},
		{"config", "user.email", "test@example.com"},
	} {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		require.NoError(t, cmd.Run())
	}
}

func TestSnapshot(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	require.NoError(t, Init(dir))
	setIdentity(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "banks.csv"), []byte("id,name\n"), 0o644))

	hash, err := Snapshot(dir, "books: add banks table", "Pennybook", "books@pennybook.dev")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	log := exec.Command("git", "log", "--format=%s (%an)", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "books: add banks table")
	assert.Contains(t, string(out), "Pennybook")
}

func TestSnapshotCleanTree(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	require.NoError(t, Init(dir))
	setIdentity(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "banks.csv"), []byte("id,name\n"), 0o644))
	hash, err := Snapshot(dir, "books: add banks table", "Pennybook", "books@pennybook.dev")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// Nothing changed since the last snapshot: no new commit.
	again, err := Snapshot(dir, "books: nothing changed", "Pennybook", "books@pennybook.dev")
	require.NoError(t, err)
	assert.Empty(t, again)

	count := exec.Command("git", "rev-list", "--count", "HEAD")
	count.Dir = dir
	out, err := count.Output()
	require.NoError(t, err)
	assert.Equal(t, "1", strings.TrimSpace(string(out)))
}
