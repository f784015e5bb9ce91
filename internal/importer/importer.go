// Package importer turns bank-statement CSV exports into transaction add
// requests. Each parsed row becomes one add through the normal transaction
// path: statement amounts carry their bank sign, so a negative amount
// becomes an Expense and a positive one an Income.
package importer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennybook-dev/pennybook/internal/model"
	"github.com/pennybook-dev/pennybook/internal/transactions"
)

// StatementRow is a parsed bank-statement line. Amount keeps the bank's
// sign: negative for money out.
type StatementRow struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

// Parser converts a statement CSV file into StatementRows.
type Parser interface {
	Parse(r io.Reader) ([]StatementRow, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&ChaseParser{})
	return r
}

// Adder is the transaction add path. Implemented by transactions.Service.
type Adder interface {
	Add(params transactions.AddParams) (model.Transaction, decimal.Decimal, error)
}

// Result summarizes one import run.
type Result struct {
	Imported int
	Skipped  int // zero-amount rows
}

// Import adds every statement row as a transaction on the given account and
// category. Zero-amount rows are skipped. The run stops at the first failed
// add; rows already added stay added.
func Import(rows []StatementRow, txs Adder, account, category string) (Result, error) {
	var res Result
	for _, row := range rows {
		if row.Amount.IsZero() {
			res.Skipped++
			continue
		}

		txType := model.TransactionTypeIncome
		if row.Amount.IsNegative() {
			txType = model.TransactionTypeExpense
		}

		_, _, err := txs.Add(transactions.AddParams{
			Name:     row.Description,
			Type:     txType,
			Amount:   row.Amount.Abs(),
			Date:     row.Date.Format("2006-01-02"),
			Category: category,
			Account:  account,
		})
		if err != nil {
			return res, fmt.Errorf("importing %q: %w", row.Description, err)
		}
		res.Imported++
	}
	return res, nil
}
