package postgres

import (
	"context"
	"database/sql"

	"debitit-backend/internal/repository"

	_ "github.com/lib/pq"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx so the insert helpers can be
// shared between the plain repositories and the atomic plan executor.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
	repository.AtomicWriter
	repository.LedgerRepository
	repository.CreditorRepository
	repository.CustomerRepository
	repository.ProductRepository
	repository.PurchaseRepository
	repository.PurchaseReturnRepository
	repository.SaleRepository
	repository.SalesReturnRepository
	repository.AssetRepository
	repository.LiabilityRepository
	repository.ExpenseRepository
	repository.ExpenseCategoryRepository
	repository.DrawingRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                        db,
		AtomicWriter:              NewAtomicWriter(db),
		LedgerRepository:          NewLedgerRepository(db),
		CreditorRepository:        NewCreditorRepository(db),
		CustomerRepository:        NewCustomerRepository(db),
		ProductRepository:         NewProductRepository(db),
		PurchaseRepository:        NewPurchaseRepository(db),
		PurchaseReturnRepository:  NewPurchaseReturnRepository(db),
		SaleRepository:            NewSaleRepository(db),
		SalesReturnRepository:     NewSalesReturnRepository(db),
		AssetRepository:           NewAssetRepository(db),
		LiabilityRepository:       NewLiabilityRepository(db),
		ExpenseRepository:         NewExpenseRepository(db),
		ExpenseCategoryRepository: NewExpenseCategoryRepository(db),
		DrawingRepository:         NewDrawingRepository(db),
	}
}
