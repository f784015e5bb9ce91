package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pennybook-dev/pennybook/internal/accounts"
	"github.com/pennybook-dev/pennybook/internal/banks"
	"github.com/pennybook-dev/pennybook/internal/categories"
	"github.com/pennybook-dev/pennybook/internal/config"
	"github.com/pennybook-dev/pennybook/internal/importer"
	"github.com/pennybook-dev/pennybook/internal/transactions"
)

func newImportCommand() *cobra.Command {
	var configPath string
	var format string
	var account string
	var category string

	cmd := &cobra.Command{
		Use:   "import <statement.csv>",
		Short: "Import a bank statement CSV as transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runImport(configPath, format, account, category, args[0])
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.FileName, "path to pennybook.yaml")
	cmd.Flags().StringVar(&format, "format", "chase", "statement format")
	cmd.Flags().StringVar(&account, "account", "", "account name for imported transactions (required)")
	cmd.Flags().StringVar(&category, "category", "", "category name for imported transactions (required)")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func runImport(configPath, format, account, category, file string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	dataDir := cfg.DataDir
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(filepath.Dir(configPath), dataDir)
	}

	parser := importer.DefaultRegistry().Get(format)
	if parser == nil {
		return fmt.Errorf("unknown statement format %q", format)
	}

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	rows, err := parser.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing statement: %w", err)
	}

	bankSvc := banks.NewService(dataDir)
	catSvc := categories.NewService(dataDir)
	acctSvc := accounts.NewService(dataDir, bankSvc)
	txSvc := transactions.NewService(dataDir, acctSvc, catSvc)

	res, err := importer.Import(rows, txSvc, account, category)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d transactions (%d skipped)\n", res.Imported, res.Skipped)
	return nil
}
