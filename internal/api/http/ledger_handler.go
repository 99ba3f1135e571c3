package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"debitit-backend/internal/domain"
	"debitit-backend/internal/service"
)

type LedgerHandler struct {
	ledgerSvc service.LedgerService
}

func NewLedgerHandler(ledgerSvc service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

func pathAccount(r *http.Request) (domain.Account, error) {
	account := domain.Account(mux.Vars(r)["account"])
	if account != domain.AccountCash && account != domain.AccountBank {
		return "", domain.ErrValidation
	}
	return account, nil
}

type ledgerEntryRequest struct {
	Source    string           `json:"source"`
	Direction domain.Direction `json:"type"`
	Amount    decimal.Decimal  `json:"amount"`
}

func (h *LedgerHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	account, err := pathAccount(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req ledgerEntryRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		writeError(w, domain.ErrValidation)
		return
	}
	entry, err := h.ledgerSvc.CreateEntry(r.Context(), userID, account, req.Source, req.Direction, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// ListEntries serves the account statement, optionally bounded by from/to
// query parameters in YYYY-MM-DD form.
func (h *LedgerHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	account, err := pathAccount(r)
	if err != nil {
		writeError(w, err)
		return
	}

	fromRaw := r.URL.Query().Get("from")
	toRaw := r.URL.Query().Get("to")
	var entries []domain.LedgerEntry
	if fromRaw != "" || toRaw != "" {
		from, err := time.Parse("2006-01-02", fromRaw)
		if err != nil {
			writeError(w, domain.ErrValidation)
			return
		}
		to, err := time.Parse("2006-01-02", toRaw)
		if err != nil {
			writeError(w, domain.ErrValidation)
			return
		}
		entries, err = h.ledgerSvc.ListEntriesByDateRange(r.Context(), userID, account, from, to.AddDate(0, 0, 1))
		if err != nil {
			writeError(w, err)
			return
		}
	} else {
		entries, err = h.ledgerSvc.ListEntries(r.Context(), userID, account)
		if err != nil {
			writeError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, entries)
}

type balanceResponse struct {
	Account domain.Account  `json:"account"`
	Net     decimal.Decimal `json:"net"`
}

func (h *LedgerHandler) GetNetBalance(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	account, err := pathAccount(r)
	if err != nil {
		writeError(w, err)
		return
	}
	net, err := h.ledgerSvc.GetNetBalance(r.Context(), userID, account)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse{Account: account, Net: net})
}
