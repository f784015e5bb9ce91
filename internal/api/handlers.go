package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/pennybook-dev/pennybook/internal/model"
	"github.com/pennybook-dev/pennybook/internal/networth"
	"github.com/pennybook-dev/pennybook/internal/recurring"
	"github.com/pennybook-dev/pennybook/internal/transactions"
)

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// --- banks ---

// BankAddRequest is the body for POST /banks/add.
type BankAddRequest struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

func (s *Server) addBank(w http.ResponseWriter, r *http.Request) {
	var req BankAddRequest
	if !decodeBody(w, r, &req) {
		return
	}

	bank, err := s.banks.Add(req.Name, req.Country)
	if err != nil {
		writeAppError(w, err)
		return
	}
	s.audit("banks", "add", bank.ID, bank.Name)
	writeJSON(w, http.StatusCreated, bank)
}

func (s *Server) deleteBank(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	bank, err := s.banks.Delete(id)
	if err != nil {
		writeAppError(w, err)
		return
	}
	s.audit("banks", "delete", bank.ID, bank.Name)
	writeJSON(w, http.StatusOK, bank)
}

func (s *Server) listBanks(w http.ResponseWriter, _ *http.Request) {
	all, err := s.banks.All()
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"banks": all})
}

// --- accounts ---

// AccountAddRequest is the body for POST /accounts/add.
type AccountAddRequest struct {
	Name           string  `json:"name"`
	Bank           string  `json:"bank"`
	AccountType    string  `json:"account_type"`
	InitialBalance float64 `json:"initial_balance"`
}

func (s *Server) addAccount(w http.ResponseWriter, r *http.Request) {
	var req AccountAddRequest
	if !decodeBody(w, r, &req) {
		return
	}

	accountType, err := model.ParseAccountType(req.AccountType)
	if err != nil {
		writeAppError(w, err)
		return
	}

	acct, err := s.accounts.Add(req.Name, req.Bank, accountType, decimal.NewFromFloat(req.InitialBalance))
	if err != nil {
		writeAppError(w, err)
		return
	}
	s.audit("accounts", "add", acct.ID, acct.Name)
	writeJSON(w, http.StatusCreated, acct)
}

func (s *Server) deleteAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	acct, err := s.accounts.Delete(id)
	if err != nil {
		writeAppError(w, err)
		return
	}
	s.audit("accounts", "delete", acct.ID, acct.Name)
	writeJSON(w, http.StatusOK, acct)
}

func (s *Server) listAccounts(w http.ResponseWriter, _ *http.Request) {
	all, err := s.accounts.All()
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"accounts": all})
}

// --- categories ---

// CategoryAddRequest is the body for POST /categories/add.
type CategoryAddRequest struct {
	Name   string  `json:"name"`
	Budget float64 `json:"budget"`
}

func (s *Server) addCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryAddRequest
	if !decodeBody(w, r, &req) {
		return
	}

	cat, err := s.categories.Add(req.Name, decimal.NewFromFloat(req.Budget))
	if err != nil {
		writeAppError(w, err)
		return
	}
	s.audit("categories", "add", cat.ID, cat.Name)
	writeJSON(w, http.StatusCreated, cat)
}

func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	cat, err := s.categories.Delete(id)
	if err != nil {
		writeAppError(w, err)
		return
	}
	s.audit("categories", "delete", cat.ID, cat.Name)
	writeJSON(w, http.StatusOK, cat)
}

func (s *Server) listCategories(w http.ResponseWriter, _ *http.Request) {
	all, err := s.categories.All()
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": all})
}

// --- transactions ---

// TransactionAddRequest is the body for POST /transactions/add. Amount is
// the positive magnitude; the sign is derived from transaction_type.
type TransactionAddRequest struct {
	Name            string  `json:"name"`
	TransactionType string  `json:"transaction_type"`
	Amount          float64 `json:"amount"`
	Date            string  `json:"date"`
	Category        string  `json:"category"`
	Account         string  `json:"account"`
}

// TransactionResponse pairs a transaction with the affected account's new
// balance.
type TransactionResponse struct {
	Transaction model.Transaction `json:"transaction"`
	NewBalance  decimal.Decimal   `json:"new_balance"`
}

func (s *Server) addTransaction(w http.ResponseWriter, r *http.Request) {
	var req TransactionAddRequest
	if !decodeBody(w, r, &req) {
		return
	}

	txType, err := model.ParseTransactionType(req.TransactionType)
	if err != nil {
		writeAppError(w, err)
		return
	}

	tx, balance, err := s.txs.Add(transactions.AddParams{
		Name:     req.Name,
		Type:     txType,
		Amount:   decimal.NewFromFloat(req.Amount),
		Date:     req.Date,
		Category: req.Category,
		Account:  req.Account,
	})
	if err != nil {
		writeAppError(w, err)
		return
	}
	s.audit("transactions", "add", tx.ID, tx.Name)
	writeJSON(w, http.StatusCreated, TransactionResponse{Transaction: tx, NewBalance: balance})
}

func (s *Server) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	tx, balance, err := s.txs.Delete(id)
	if err != nil {
		writeAppError(w, err)
		return
	}
	s.audit("transactions", "delete", tx.ID, tx.Name)
	writeJSON(w, http.StatusOK, TransactionResponse{Transaction: tx, NewBalance: balance})
}

func (s *Server) listTransactions(w http.ResponseWriter, _ *http.Request) {
	all, err := s.txs.All()
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"transactions": all})
}

// --- recurring ---

// RecurringAddRequest is the body for POST /recurring/add.
type RecurringAddRequest struct {
	Name            string  `json:"name"`
	TransactionType string  `json:"transaction_type"`
	Amount          float64 `json:"amount"`
	Category        string  `json:"category"`
	Account         string  `json:"account,omitempty"`
	Frequency       string  `json:"frequency"`
	StartDate       string  `json:"start_date,omitempty"`
	EndDate         string  `json:"end_date,omitempty"`
}

// MaterializeRequest is the body for POST /recurring/{id}/materialize.
type MaterializeRequest struct {
	Date    string   `json:"date"`
	Amount  *float64 `json:"amount,omitempty"`
	Account string   `json:"account,omitempty"`
}

func (s *Server) addRecurring(w http.ResponseWriter, r *http.Request) {
	var req RecurringAddRequest
	if !decodeBody(w, r, &req) {
		return
	}

	txType, err := model.ParseTransactionType(req.TransactionType)
	if err != nil {
		writeAppError(w, err)
		return
	}
	freq, err := model.ParseFrequency(req.Frequency)
	if err != nil {
		writeAppError(w, err)
		return
	}

	tmpl, err := s.recurring.Create(recurring.CreateParams{
		Name:      req.Name,
		Type:      txType,
		Amount:    decimal.NewFromFloat(req.Amount),
		Category:  req.Category,
		Account:   req.Account,
		Frequency: freq,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		writeAppError(w, err)
		return
	}
	s.audit("recurring_transactions", "add", tmpl.ID, tmpl.Name)
	writeJSON(w, http.StatusCreated, tmpl)
}

func (s *Server) deleteRecurring(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	tmpl, err := s.recurring.Delete(id)
	if err != nil {
		writeAppError(w, err)
		return
	}
	s.audit("recurring_transactions", "delete", tmpl.ID, tmpl.Name)
	writeJSON(w, http.StatusOK, tmpl)
}

func (s *Server) materializeRecurring(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req MaterializeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var overrides recurring.Overrides
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		overrides.Amount = &amount
	}
	overrides.Account = req.Account

	tx, balance, err := s.recurring.Materialize(id, req.Date, overrides)
	if err != nil {
		writeAppError(w, err)
		return
	}
	s.audit("recurring_transactions", "materialize", id, tx.Name)
	writeJSON(w, http.StatusCreated, TransactionResponse{Transaction: tx, NewBalance: balance})
}

func (s *Server) listRecurring(w http.ResponseWriter, _ *http.Request) {
	all, err := s.recurring.All()
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"recurring_transactions": all})
}

// --- views ---

// NetWorthResponse is the body for GET /networth.
type NetWorthResponse struct {
	Total  decimal.Decimal                       `json:"total"`
	ByType map[model.AccountType]decimal.Decimal `json:"by_account_type"`
}

func (s *Server) netWorth(w http.ResponseWriter, _ *http.Request) {
	summary, err := networth.Compute(s.accounts)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NetWorthResponse{Total: summary.Total, ByType: summary.ByType})
}

func (s *Server) auditTrail(w http.ResponseWriter, _ *http.Request) {
	entries, err := s.auditEntries()
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}
