package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"debitit-backend/internal/domain"
)

// AtomicWriter commits the ordered write set of one business event as a
// single all-or-nothing unit. Inserted documents must be passed as pointers;
// their IDs are populated on success. ownerID scopes the guard ops.
type AtomicWriter interface {
	Commit(ctx context.Context, ownerID int32, plan domain.WritePlan) error
}

type LedgerRepository interface {
	CreateEntry(ctx context.Context, entry *domain.LedgerEntry) error
	ListByAccount(ctx context.Context, userID int32, account domain.Account) ([]domain.LedgerEntry, error)
	ListByDateRange(ctx context.Context, userID int32, account domain.Account, from, to time.Time) ([]domain.LedgerEntry, error)
	SumByDirection(ctx context.Context, userID int32, account domain.Account, direction domain.Direction) (decimal.Decimal, error)
}

type CreditorRepository interface {
	Create(ctx context.Context, creditor *domain.Creditor) error
	GetByID(ctx context.Context, id int32) (*domain.Creditor, error)
	List(ctx context.Context, userID int32) ([]domain.Creditor, error)
	Update(ctx context.Context, creditor *domain.Creditor) error
	Delete(ctx context.Context, id int32) error
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	List(ctx context.Context, userID int32) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int32) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id int32) (*domain.Product, error)
	GetByName(ctx context.Context, userID int32, name string) (*domain.Product, error)
	List(ctx context.Context, userID int32) ([]domain.Product, error)
	ListLowStock(ctx context.Context, userID int32, threshold int32) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int32) error
}

type PurchaseRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Purchase, error)
	List(ctx context.Context, userID int32) ([]domain.Purchase, error)
	ListCreditByProduct(ctx context.Context, userID int32, productName string) ([]domain.Purchase, error)
}

type PurchaseReturnRepository interface {
	List(ctx context.Context, userID int32) ([]domain.PurchaseReturn, error)
	SumReturnedQuantity(ctx context.Context, purchaseID int32) (int32, error)
}

type SaleRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Sale, error)
	List(ctx context.Context, userID int32) ([]domain.Sale, error)
	ListCreditByProduct(ctx context.Context, userID int32, productName string) ([]domain.Sale, error)
}

type SalesReturnRepository interface {
	List(ctx context.Context, userID int32) ([]domain.SalesReturn, error)
	SumReturnedQuantity(ctx context.Context, saleID, productID int32) (int32, error)
}

type AssetRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Asset, error)
	GetByName(ctx context.Context, userID int32, name string) (*domain.Asset, error)
	List(ctx context.Context, userID int32) ([]domain.Asset, error)
}

type LiabilityRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Liability, error)
	List(ctx context.Context, userID int32) ([]domain.Liability, error)
}

type ExpenseRepository interface {
	List(ctx context.Context, userID int32) ([]domain.Expense, error)
}

type ExpenseCategoryRepository interface {
	Create(ctx context.Context, category *domain.ExpenseCategory) error
	GetByID(ctx context.Context, id int32) (*domain.ExpenseCategory, error)
	GetByName(ctx context.Context, userID int32, name string) (*domain.ExpenseCategory, error)
	List(ctx context.Context, userID int32) ([]domain.ExpenseCategory, error)
	Update(ctx context.Context, category *domain.ExpenseCategory) error
	Delete(ctx context.Context, id int32) error
}

type DrawingRepository interface {
	List(ctx context.Context, userID int32) ([]domain.Drawing, error)
}
