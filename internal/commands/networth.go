package commands

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pennybook-dev/pennybook/internal/accounts"
	"github.com/pennybook-dev/pennybook/internal/banks"
	"github.com/pennybook-dev/pennybook/internal/config"
	"github.com/pennybook-dev/pennybook/internal/model"
	"github.com/pennybook-dev/pennybook/internal/networth"
)

func newNetWorthCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "networth",
		Short: "Print total net worth with a per-account-type breakdown",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runNetWorth(configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.FileName, "path to pennybook.yaml")

	return cmd
}

func runNetWorth(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	dataDir := cfg.DataDir
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(filepath.Dir(configPath), dataDir)
	}

	acctSvc := accounts.NewService(dataDir, banks.NewService(dataDir))
	summary, err := networth.Compute(acctSvc)
	if err != nil {
		return err
	}

	fmt.Printf("Net worth: %s\n", display(summary.Total, cfg.Currency))

	types := make([]model.AccountType, 0, len(summary.ByType))
	for t := range summary.ByType {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	for _, t := range types {
		fmt.Printf("  %-12s %s\n", t, display(summary.ByType[t], cfg.Currency))
	}
	return nil
}

// display renders a decimal amount in the configured currency, shifting by
// the currency's minor-unit fraction (2 for USD, 0 for JPY, 3 for BHD).
func display(d decimal.Decimal, currency string) string {
	fraction := 2
	if c := money.GetCurrency(currency); c != nil {
		fraction = c.Fraction
	}
	minor := d.Shift(int32(fraction)).Round(0).IntPart()
	return money.New(minor, currency).Display()
}
