package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pennybook-dev/pennybook/internal/config"
	"github.com/pennybook-dev/pennybook/internal/gitops"
)

func newInitCommand() *cobra.Command {
	var currency string
	var noGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new Pennybook project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, currency, noGit)
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "USD", "ISO currency code for display")
	cmd.Flags().BoolVar(&noGit, "no-git", false, "skip git repository setup")

	return cmd
}

func runInit(dir, currency string, noGit bool) error {
	cfg := config.Default()
	cfg.Currency = currency

	if err := os.MkdirAll(filepath.Join(dir, cfg.DataDir), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	gitignore := ".env\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if noGit {
		fmt.Printf("Initialized Pennybook project at %s\n", dir)
		return nil
	}

	if err := gitops.Init(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	hash, err := gitops.Snapshot(dir, "init: new books", cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}
	if hash == "" {
		fmt.Printf("Initialized Pennybook project at %s\n", dir)
		return nil
	}

	fmt.Printf("Initialized Pennybook project at %s (%s)\n", dir, hash)
	return nil
}
