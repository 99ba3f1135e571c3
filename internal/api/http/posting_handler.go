package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"debitit-backend/internal/domain"
	"debitit-backend/internal/service"
)

// PostingHandler exposes the ledger-posting engine over HTTP. Each endpoint
// decodes the body, runs required-field checks, and hands over to the
// service; all money movement happens there.
type PostingHandler struct {
	postingSvc service.PostingService
}

func NewPostingHandler(postingSvc service.PostingService) *PostingHandler {
	return &PostingHandler{postingSvc: postingSvc}
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.ErrValidation
	}
	return int32(id), nil
}

type acquireAssetRequest struct {
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	OtherExpenses decimal.Decimal `json:"otherExpenses"`
	CreditorID    int32           `json:"creditorId"`
}

func (h *PostingHandler) AcquireAsset(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	var req acquireAssetRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Name == "" || req.Amount.LessThanOrEqual(decimal.Zero) {
		writeError(w, domain.ErrValidation)
		return
	}
	asset, err := h.postingSvc.AcquireAsset(r.Context(), userID, service.AcquireAssetInput{
		Name:          req.Name,
		Amount:        req.Amount,
		OtherExpenses: req.OtherExpenses,
		CreditorID:    req.CreditorID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, asset)
}

type growAssetRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	OtherExpenses decimal.Decimal `json:"otherExpenses"`
	CreditorID    int32           `json:"creditorId"`
}

func (h *PostingHandler) GrowAsset(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	assetID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req growAssetRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		writeError(w, domain.ErrValidation)
		return
	}
	asset, err := h.postingSvc.GrowAsset(r.Context(), userID, assetID, service.GrowAssetInput{
		Amount:        req.Amount,
		OtherExpenses: req.OtherExpenses,
		CreditorID:    req.CreditorID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

type liabilityRequest struct {
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	InterestRate  decimal.Decimal `json:"interestRate"`
	TimeMonths    int32           `json:"timeMonths"`
	Source        domain.Payment  `json:"source"`
	OtherExpenses decimal.Decimal `json:"otherExpenses"`
}

func (h *PostingHandler) RecordLiability(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	var req liabilityRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Name == "" || req.Amount.LessThanOrEqual(decimal.Zero) || req.TimeMonths <= 0 {
		writeError(w, domain.ErrValidation)
		return
	}
	liability, err := h.postingSvc.RecordLiability(r.Context(), userID, service.LiabilityInput{
		Name:          req.Name,
		Amount:        req.Amount,
		InterestRate:  req.InterestRate,
		TimeMonths:    req.TimeMonths,
		Source:        req.Source,
		OtherExpenses: req.OtherExpenses,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, liability)
}

type settlementRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	Payment domain.Payment  `json:"payment"`
}

func (h *PostingHandler) SettleLiability(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	liabilityID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req settlementRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		writeError(w, domain.ErrValidation)
		return
	}
	liability, err := h.postingSvc.SettleLiability(r.Context(), userID, liabilityID, service.SettlementInput{
		Amount:  req.Amount,
		Payment: req.Payment,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, liability)
}

type purchaseRequest struct {
	ProductName          string          `json:"productName"`
	Payment              domain.Payment  `json:"payment"`
	CreditorID           int32           `json:"creditorId"`
	ProductID            int32           `json:"productId"`
	NewProduct           bool            `json:"newProduct"`
	Quantity             int32           `json:"quantity"`
	PerPieceCost         decimal.Decimal `json:"perPieceCost"`
	PerPieceSellingPrice decimal.Decimal `json:"perPieceSellingPrice"`
	OtherExpenses        decimal.Decimal `json:"otherExpenses"`
}

type purchaseResponse struct {
	Purchase *domain.Purchase `json:"purchase"`
	Product  *domain.Product  `json:"product"`
}

func (h *PostingHandler) RecordPurchase(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	var req purchaseRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.ProductName == "" || req.Quantity <= 0 || req.PerPieceCost.LessThanOrEqual(decimal.Zero) {
		writeError(w, domain.ErrValidation)
		return
	}
	purchase, product, err := h.postingSvc.RecordPurchase(r.Context(), userID, service.PurchaseInput{
		ProductName:          req.ProductName,
		Payment:              req.Payment,
		CreditorID:           req.CreditorID,
		ProductID:            req.ProductID,
		NewProduct:           req.NewProduct,
		Quantity:             req.Quantity,
		PerPieceCost:         req.PerPieceCost,
		PerPieceSellingPrice: req.PerPieceSellingPrice,
		OtherExpenses:        req.OtherExpenses,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, purchaseResponse{Purchase: purchase, Product: product})
}

type saleLineRequest struct {
	ProductID int32           `json:"productId"`
	Quantity  int32           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type saleRequest struct {
	Items         []saleLineRequest `json:"soldProducts"`
	Payment       domain.Payment    `json:"payment"`
	CustomerID    int32             `json:"customerId"`
	OtherExpenses decimal.Decimal   `json:"otherExpenses"`
}

func (h *PostingHandler) RecordSale(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	var req saleRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if len(req.Items) == 0 {
		writeError(w, domain.ErrValidation)
		return
	}
	in := service.SaleInput{
		Payment:       req.Payment,
		CustomerID:    req.CustomerID,
		OtherExpenses: req.OtherExpenses,
	}
	for _, line := range req.Items {
		if line.ProductID == 0 || line.Quantity <= 0 || line.Price.LessThanOrEqual(decimal.Zero) {
			writeError(w, domain.ErrValidation)
			return
		}
		in.Items = append(in.Items, service.SaleLineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}
	sale, err := h.postingSvc.RecordSale(r.Context(), userID, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sale)
}

type purchaseReturnRequest struct {
	PurchaseID   int32           `json:"purchaseId"`
	ProductID    int32           `json:"productId"`
	Quantity     int32           `json:"quantity"`
	PerPieceCost decimal.Decimal `json:"perPieceCost"`
}

func (h *PostingHandler) ReturnPurchase(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	var req purchaseReturnRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.PurchaseID == 0 || req.ProductID == 0 || req.Quantity <= 0 {
		writeError(w, domain.ErrValidation)
		return
	}
	purchaseReturn, err := h.postingSvc.ReturnPurchase(r.Context(), userID, service.PurchaseReturnInput{
		PurchaseID:   req.PurchaseID,
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		PerPieceCost: req.PerPieceCost,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, purchaseReturn)
}

type salesReturnRequest struct {
	SaleID    int32           `json:"saleId"`
	ProductID int32           `json:"productId"`
	Quantity  int32           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

func (h *PostingHandler) ReturnSale(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	var req salesReturnRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.SaleID == 0 || req.ProductID == 0 || req.Quantity <= 0 {
		writeError(w, domain.ErrValidation)
		return
	}
	salesReturn, err := h.postingSvc.ReturnSale(r.Context(), userID, service.SalesReturnInput{
		SaleID:    req.SaleID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Price:     req.Price,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, salesReturn)
}

type paymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *PostingHandler) GivePayment(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	creditorID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req paymentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		writeError(w, domain.ErrValidation)
		return
	}
	creditor, err := h.postingSvc.GivePayment(r.Context(), userID, creditorID, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, creditor)
}

func (h *PostingHandler) ReceivePayment(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	customerID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req paymentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		writeError(w, domain.ErrValidation)
		return
	}
	customer, err := h.postingSvc.ReceivePayment(r.Context(), userID, customerID, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

type expenseRequest struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

func (h *PostingHandler) RecordExpense(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	var req expenseRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Name == "" || req.Amount.LessThanOrEqual(decimal.Zero) {
		writeError(w, domain.ErrValidation)
		return
	}
	expense, err := h.postingSvc.RecordExpense(r.Context(), userID, service.ExpenseInput{
		Name:   req.Name,
		Amount: req.Amount,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

type drawingLineRequest struct {
	ProductID int32           `json:"productId"`
	Quantity  int32           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type drawingRequest struct {
	Kind   domain.DrawingKind   `json:"name"`
	Amount decimal.Decimal      `json:"amount"`
	Items  []drawingLineRequest `json:"products"`
}

func (h *PostingHandler) RecordDrawing(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	var req drawingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	in := service.DrawingInput{Kind: req.Kind, Amount: req.Amount}
	switch req.Kind {
	case domain.DrawingCash:
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			writeError(w, domain.ErrValidation)
			return
		}
	case domain.DrawingStock:
		if len(req.Items) == 0 {
			writeError(w, domain.ErrValidation)
			return
		}
		for _, line := range req.Items {
			if line.ProductID == 0 || line.Quantity <= 0 {
				writeError(w, domain.ErrValidation)
				return
			}
			in.Items = append(in.Items, service.DrawingLineInput{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     line.Price,
			})
		}
	default:
		writeError(w, domain.ErrValidation)
		return
	}
	drawing, err := h.postingSvc.RecordDrawing(r.Context(), userID, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, drawing)
}
