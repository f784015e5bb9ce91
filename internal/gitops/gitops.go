// Package gitops keeps the books directory under git so every state of the
// CSV tables can be recovered.
package gitops

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// run executes one git subcommand in dir and returns its trimmed output.
func run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %s: %w", args[0], strings.TrimSpace(string(out)), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Init initializes a new git repository at dir.
func Init(dir string) error {
	_, err := run(dir, "init", "--quiet")
	return err
}

// Snapshot stages the books and commits them with the given message and
// author, returning the short commit hash. A clean tree commits nothing
// and returns an empty hash.
func Snapshot(dir, message, authorName, authorEmail string) (string, error) {
	if _, err := run(dir, "add", "-A"); err != nil {
		return "", err
	}

	status, err := run(dir, "status", "--porcelain")
	if err != nil {
		return "", err
	}
	if status == "" {
		return "", nil
	}

	author := fmt.Sprintf("%s <%s>", authorName, authorEmail)
	if _, err := run(dir, "commit", "-m", message, "--author", author); err != nil {
		return "", err
	}
	return run(dir, "rev-parse", "--short", "HEAD")
}

// IsRepo reports whether dir carries its own git repository. A .git file
// (linked worktree) counts the same as a .git directory.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}
