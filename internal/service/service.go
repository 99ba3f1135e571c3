package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"debitit-backend/internal/domain"
)

// PostingService is the ledger-posting engine. Each call is a single-shot
// saga: validate, compute derived amounts, build the write plan, commit it
// atomically. Validation failures return before any write is attempted.
type PostingService interface {
	AcquireAsset(ctx context.Context, userID int32, in AcquireAssetInput) (*domain.Asset, error)
	GrowAsset(ctx context.Context, userID, assetID int32, in GrowAssetInput) (*domain.Asset, error)
	RecordLiability(ctx context.Context, userID int32, in LiabilityInput) (*domain.Liability, error)
	SettleLiability(ctx context.Context, userID, liabilityID int32, in SettlementInput) (*domain.Liability, error)
	RecordPurchase(ctx context.Context, userID int32, in PurchaseInput) (*domain.Purchase, *domain.Product, error)
	RecordSale(ctx context.Context, userID int32, in SaleInput) (*domain.Sale, error)
	ReturnPurchase(ctx context.Context, userID int32, in PurchaseReturnInput) (*domain.PurchaseReturn, error)
	ReturnSale(ctx context.Context, userID int32, in SalesReturnInput) (*domain.SalesReturn, error)
	GivePayment(ctx context.Context, userID, creditorID int32, amount decimal.Decimal) (*domain.Creditor, error)
	ReceivePayment(ctx context.Context, userID, customerID int32, amount decimal.Decimal) (*domain.Customer, error)
	RecordExpense(ctx context.Context, userID int32, in ExpenseInput) (*domain.Expense, error)
	RecordDrawing(ctx context.Context, userID int32, in DrawingInput) (*domain.Drawing, error)
}

type LedgerService interface {
	CreateEntry(ctx context.Context, userID int32, account domain.Account, source string, direction domain.Direction, amount decimal.Decimal) (*domain.LedgerEntry, error)
	ListEntries(ctx context.Context, userID int32, account domain.Account) ([]domain.LedgerEntry, error)
	ListEntriesByDateRange(ctx context.Context, userID int32, account domain.Account, from, to time.Time) ([]domain.LedgerEntry, error)
	GetNetBalance(ctx context.Context, userID int32, account domain.Account) (decimal.Decimal, error)
}

type CreditorService interface {
	CreateCreditor(ctx context.Context, creditor *domain.Creditor) error
	GetCreditor(ctx context.Context, userID, id int32) (*domain.Creditor, error)
	ListCreditors(ctx context.Context, userID int32) ([]domain.Creditor, error)
	UpdateCreditor(ctx context.Context, userID, id int32, name, contact string) (*domain.Creditor, error)
	DeleteCreditor(ctx context.Context, userID, id int32) error
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	GetCustomer(ctx context.Context, userID, id int32) (*domain.Customer, error)
	ListCustomers(ctx context.Context, userID int32) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, userID, id int32, name, mobile string) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, userID, id int32) error
}

type ProductService interface {
	CreateProduct(ctx context.Context, product *domain.Product) error
	GetProduct(ctx context.Context, userID, id int32) (*domain.Product, error)
	ListProducts(ctx context.Context, userID int32) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, userID int32, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, userID, id int32) error
}

type ExpenseCategoryService interface {
	CreateCategory(ctx context.Context, category *domain.ExpenseCategory) error
	GetCategory(ctx context.Context, userID, id int32) (*domain.ExpenseCategory, error)
	ListCategories(ctx context.Context, userID int32) ([]domain.ExpenseCategory, error)
	UpdateCategory(ctx context.Context, userID, id int32, name string) (*domain.ExpenseCategory, error)
	DeleteCategory(ctx context.Context, userID, id int32) error
}

// StatementService serves the read-only document listings.
type StatementService interface {
	ListPurchases(ctx context.Context, userID int32) ([]domain.Purchase, error)
	ListCreditPurchasesByProduct(ctx context.Context, userID int32, productName string) ([]domain.Purchase, error)
	ListPurchaseReturns(ctx context.Context, userID int32) ([]domain.PurchaseReturn, error)
	ListSales(ctx context.Context, userID int32) ([]domain.Sale, error)
	ListCreditSalesByProduct(ctx context.Context, userID int32, productName string) ([]domain.Sale, error)
	ListSalesReturns(ctx context.Context, userID int32) ([]domain.SalesReturn, error)
	ListAssets(ctx context.Context, userID int32) ([]domain.Asset, error)
	ListLiabilities(ctx context.Context, userID int32) ([]domain.Liability, error)
	ListExpenses(ctx context.Context, userID int32) ([]domain.Expense, error)
	ListDrawings(ctx context.Context, userID int32) ([]domain.Drawing, error)
}

type EmailService interface {
	SendDailySummary(ctx context.Context, email string, date time.Time, netCash, netBank decimal.Decimal) error
	SendLowStockAlert(ctx context.Context, email string, products []domain.Product) error
}
