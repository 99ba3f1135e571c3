package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"debitit-backend/internal/security"
	"debitit-backend/internal/service"
)

// RouterDeps collects everything the HTTP surface needs.
type RouterDeps struct {
	TokenManager security.TokenManager
	PostingSvc   service.PostingService
	LedgerSvc    service.LedgerService
	CreditorSvc  service.CreditorService
	CustomerSvc  service.CustomerService
	ProductSvc   service.ProductService
	CategorySvc  service.ExpenseCategoryService
	StatementSvc service.StatementService
}

// NewRouter wires all handlers under /api behind the auth middleware.
func NewRouter(deps RouterDeps) *mux.Router {
	posting := NewPostingHandler(deps.PostingSvc)
	ledger := NewLedgerHandler(deps.LedgerSvc)
	creditor := NewCreditorHandler(deps.CreditorSvc)
	customer := NewCustomerHandler(deps.CustomerSvc)
	product := NewProductHandler(deps.ProductSvc)
	category := NewCategoryHandler(deps.CategorySvc)
	statement := NewStatementHandler(deps.StatementSvc)
	auth := NewAuthMiddleware(deps.TokenManager)

	router := mux.NewRouter()
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.Use(auth.Handler)

	api.HandleFunc("/ledger/{account}", ledger.CreateEntry).Methods("POST")
	api.HandleFunc("/ledger/{account}", ledger.ListEntries).Methods("GET")
	api.HandleFunc("/ledger/{account}/balance", ledger.GetNetBalance).Methods("GET")

	api.HandleFunc("/creditors", creditor.Create).Methods("POST")
	api.HandleFunc("/creditors", creditor.List).Methods("GET")
	api.HandleFunc("/creditors/{id}", creditor.Get).Methods("GET")
	api.HandleFunc("/creditors/{id}", creditor.Update).Methods("PUT")
	api.HandleFunc("/creditors/{id}", creditor.Delete).Methods("DELETE")
	api.HandleFunc("/creditors/{id}/payments", posting.GivePayment).Methods("POST")

	api.HandleFunc("/customers", customer.Create).Methods("POST")
	api.HandleFunc("/customers", customer.List).Methods("GET")
	api.HandleFunc("/customers/{id}", customer.Get).Methods("GET")
	api.HandleFunc("/customers/{id}", customer.Update).Methods("PUT")
	api.HandleFunc("/customers/{id}", customer.Delete).Methods("DELETE")
	api.HandleFunc("/customers/{id}/payments", posting.ReceivePayment).Methods("POST")

	api.HandleFunc("/products", product.Create).Methods("POST")
	api.HandleFunc("/products", product.List).Methods("GET")
	api.HandleFunc("/products/{id}", product.Get).Methods("GET")
	api.HandleFunc("/products/{id}", product.Update).Methods("PUT")
	api.HandleFunc("/products/{id}", product.Delete).Methods("DELETE")

	api.HandleFunc("/categories", category.Create).Methods("POST")
	api.HandleFunc("/categories", category.List).Methods("GET")
	api.HandleFunc("/categories/{id}", category.Get).Methods("GET")
	api.HandleFunc("/categories/{id}", category.Update).Methods("PUT")
	api.HandleFunc("/categories/{id}", category.Delete).Methods("DELETE")

	api.HandleFunc("/assets", posting.AcquireAsset).Methods("POST")
	api.HandleFunc("/assets", statement.ListAssets).Methods("GET")
	api.HandleFunc("/assets/{id}", posting.GrowAsset).Methods("PATCH")

	api.HandleFunc("/liabilities", posting.RecordLiability).Methods("POST")
	api.HandleFunc("/liabilities", statement.ListLiabilities).Methods("GET")
	api.HandleFunc("/liabilities/{id}/settle", posting.SettleLiability).Methods("POST")

	api.HandleFunc("/purchases", posting.RecordPurchase).Methods("POST")
	api.HandleFunc("/purchases", statement.ListPurchases).Methods("GET")
	api.HandleFunc("/purchase-returns", posting.ReturnPurchase).Methods("POST")
	api.HandleFunc("/purchase-returns", statement.ListPurchaseReturns).Methods("GET")

	api.HandleFunc("/sales", posting.RecordSale).Methods("POST")
	api.HandleFunc("/sales", statement.ListSales).Methods("GET")
	api.HandleFunc("/sales-returns", posting.ReturnSale).Methods("POST")
	api.HandleFunc("/sales-returns", statement.ListSalesReturns).Methods("GET")

	api.HandleFunc("/expenses", posting.RecordExpense).Methods("POST")
	api.HandleFunc("/expenses", statement.ListExpenses).Methods("GET")

	api.HandleFunc("/drawings", posting.RecordDrawing).Methods("POST")
	api.HandleFunc("/drawings", statement.ListDrawings).Methods("GET")

	return router
}
