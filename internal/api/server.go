// Package api exposes the bookkeeping operations as a JSON HTTP API. The
// route surface mirrors the client contract: POST <entity>/add,
// POST <entity>/{id}/delete, recurring materialization, and the net-worth
// view. Each request is handled statelessly against the CSV tables.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/pennybook-dev/pennybook/internal/accounts"
	"github.com/pennybook-dev/pennybook/internal/auditlog"
	"github.com/pennybook-dev/pennybook/internal/banks"
	"github.com/pennybook-dev/pennybook/internal/categories"
	"github.com/pennybook-dev/pennybook/internal/recurring"
	"github.com/pennybook-dev/pennybook/internal/transactions"
)

// Server bundles the entity services behind HTTP handlers.
type Server struct {
	dataDir    string
	log        zerolog.Logger
	banks      *banks.Service
	accounts   *accounts.Service
	categories *categories.Service
	txs        *transactions.Service
	recurring  *recurring.Service
}

// NewServer wires the services over a data directory.
func NewServer(dataDir string, log zerolog.Logger) *Server {
	bankSvc := banks.NewService(dataDir)
	catSvc := categories.NewService(dataDir)
	acctSvc := accounts.NewService(dataDir, bankSvc)
	txSvc := transactions.NewService(dataDir, acctSvc, catSvc)
	recSvc := recurring.NewService(dataDir, txSvc, acctSvc, catSvc)

	return &Server{
		dataDir:    dataDir,
		log:        log,
		banks:      bankSvc,
		accounts:   acctSvc,
		categories: catSvc,
		txs:        txSvc,
		recurring:  recSvc,
	}
}

// Router builds the chi route tree with the middleware chain.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.log))
	r.Use(recovery(s.log))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/banks", func(r chi.Router) {
		r.Get("/", s.listBanks)
		r.Post("/add", s.addBank)
		r.Post("/{id}/delete", s.deleteBank)
	})
	r.Route("/accounts", func(r chi.Router) {
		r.Get("/", s.listAccounts)
		r.Post("/add", s.addAccount)
		r.Post("/{id}/delete", s.deleteAccount)
	})
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", s.listCategories)
		r.Post("/add", s.addCategory)
		r.Post("/{id}/delete", s.deleteCategory)
	})
	r.Route("/transactions", func(r chi.Router) {
		r.Get("/", s.listTransactions)
		r.Post("/add", s.addTransaction)
		r.Post("/{id}/delete", s.deleteTransaction)
	})
	r.Route("/recurring", func(r chi.Router) {
		r.Get("/", s.listRecurring)
		r.Post("/add", s.addRecurring)
		r.Post("/{id}/delete", s.deleteRecurring)
		r.Post("/{id}/materialize", s.materializeRecurring)
	})
	r.Get("/networth", s.netWorth)
	r.Get("/audit", s.auditTrail)

	return r
}

func (s *Server) auditEntries() ([]auditlog.Entry, error) {
	return auditlog.Read(s.dataDir)
}

// audit records a successful mutation. Failures only log: the mutation
// itself already happened and must not be reported as failed.
func (s *Server) audit(entity, action string, rowID int, detail string) {
	err := auditlog.Append(s.dataDir, []auditlog.Entry{{
		Timestamp: time.Now().UTC(),
		Entity:    entity,
		Action:    action,
		RowID:     rowID,
		Detail:    detail,
	}})
	if err != nil {
		s.log.Error().Err(err).Str("entity", entity).Str("action", action).Msg("audit append failed")
	}
}
