package http

import (
	"net/http"

	"debitit-backend/internal/service"
)

// StatementHandler serves the read-only document listings behind the books
// screens: purchases, sales, returns, assets, liabilities, expenses and
// drawings.
type StatementHandler struct {
	statementSvc service.StatementService
}

func NewStatementHandler(statementSvc service.StatementService) *StatementHandler {
	return &StatementHandler{statementSvc: statementSvc}
}

func (h *StatementHandler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if productName := r.URL.Query().Get("product"); productName != "" {
		purchases, err := h.statementSvc.ListCreditPurchasesByProduct(r.Context(), userID, productName)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, purchases)
		return
	}
	purchases, err := h.statementSvc.ListPurchases(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, purchases)
}

func (h *StatementHandler) ListPurchaseReturns(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	returns, err := h.statementSvc.ListPurchaseReturns(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, returns)
}

func (h *StatementHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if productName := r.URL.Query().Get("product"); productName != "" {
		sales, err := h.statementSvc.ListCreditSalesByProduct(r.Context(), userID, productName)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sales)
		return
	}
	sales, err := h.statementSvc.ListSales(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sales)
}

func (h *StatementHandler) ListSalesReturns(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	returns, err := h.statementSvc.ListSalesReturns(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, returns)
}

func (h *StatementHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	assets, err := h.statementSvc.ListAssets(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assets)
}

func (h *StatementHandler) ListLiabilities(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	liabilities, err := h.statementSvc.ListLiabilities(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, liabilities)
}

func (h *StatementHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	expenses, err := h.statementSvc.ListExpenses(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}

func (h *StatementHandler) ListDrawings(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	drawings, err := h.statementSvc.ListDrawings(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, drawings)
}
