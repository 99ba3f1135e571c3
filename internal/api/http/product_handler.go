package http

import (
	"net/http"

	"github.com/shopspring/decimal"

	"debitit-backend/internal/domain"
	"debitit-backend/internal/service"
)

type ProductHandler struct {
	productSvc service.ProductService
}

func NewProductHandler(productSvc service.ProductService) *ProductHandler {
	return &ProductHandler{productSvc: productSvc}
}

type productRequest struct {
	ProductName          string          `json:"productName"`
	NumberInStock        int32           `json:"numberInStock"`
	PerPieceCost         decimal.Decimal `json:"perPieceCost"`
	PerPieceSellingPrice decimal.Decimal `json:"perPieceSellingPrice"`
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	var req productRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.ProductName == "" || req.NumberInStock < 0 {
		writeError(w, domain.ErrValidation)
		return
	}
	product := &domain.Product{
		UserID:               userID,
		ProductName:          req.ProductName,
		NumberInStock:        req.NumberInStock,
		PerPieceCost:         req.PerPieceCost,
		PerPieceSellingPrice: req.PerPieceSellingPrice,
	}
	if err := h.productSvc.CreateProduct(r.Context(), product); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
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
	product, err := h.productSvc.GetProduct(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	products, err := h.productSvc.ListProducts(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// Update edits price and name fields. Stock is deliberately not editable
// here; it moves through purchases, sales, returns and drawings.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	var req productRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	product, err := h.productSvc.UpdateProduct(r.Context(), userID, &domain.Product{
		ID:                   id,
		ProductName:          req.ProductName,
		PerPieceCost:         req.PerPieceCost,
		PerPieceSellingPrice: req.PerPieceSellingPrice,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
	if err := h.productSvc.DeleteProduct(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
