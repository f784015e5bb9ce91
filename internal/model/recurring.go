package model

import (
	"github.com/shopspring/decimal"

	"github.com/pennybook-dev/pennybook/internal/apperr"
)

// Frequency is how often a recurring transaction is expected to occur.
// It is descriptive: materialization is always triggered by an explicit
// request, never by a clock.
type Frequency string

const (
	FrequencyDaily   Frequency = "Daily"
	FrequencyWeekly  Frequency = "Weekly"
	FrequencyMonthly Frequency = "Monthly"
	FrequencyYearly  Frequency = "Yearly"
)

// ParseFrequency validates a raw frequency value.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return Frequency(s), nil
	}
	return "", apperr.Validationf("invalid frequency %q", s)
}

// RecurringTransaction is a template in recurring_transactions.csv from
// which concrete transactions are materialized on demand. Amount is stored
// signed like Transaction.Amount. Account may be empty, in which case each
// materialization must supply one. StartDate and EndDate are stored bounds
// that materialization does not enforce.
type RecurringTransaction struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`     // unique within templates
	Type      TransactionType `json:"transaction_type"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"` // references Category.Name
	Account   string          `json:"account"`  // optional; references Account.Name when set
	Frequency Frequency       `json:"frequency"`
	StartDate string          `json:"start_date,omitempty"`
	EndDate   string          `json:"end_date,omitempty"`
}
