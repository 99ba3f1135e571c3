package http

import (
	"net/http"

	"debitit-backend/internal/domain"
	"debitit-backend/internal/service"
)

type CreditorHandler struct {
	creditorSvc service.CreditorService
}

func NewCreditorHandler(creditorSvc service.CreditorService) *CreditorHandler {
	return &CreditorHandler{creditorSvc: creditorSvc}
}

type creditorRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

func (h *CreditorHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	var req creditorRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	creditor := &domain.Creditor{UserID: userID, Name: req.Name, Contact: req.Contact}
	if err := h.creditorSvc.CreateCreditor(r.Context(), creditor); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, creditor)
}

func (h *CreditorHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	creditor, err := h.creditorSvc.GetCreditor(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, creditor)
}

func (h *CreditorHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	creditors, err := h.creditorSvc.ListCreditors(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, creditors)
}

func (h *CreditorHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req creditorRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	creditor, err := h.creditorSvc.UpdateCreditor(r.Context(), userID, id, req.Name, req.Contact)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, creditor)
}

func (h *CreditorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.creditorSvc.DeleteCreditor(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
