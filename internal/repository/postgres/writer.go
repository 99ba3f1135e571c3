package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"debitit-backend/internal/domain"
	"debitit-backend/internal/logger"
	"debitit-backend/internal/repository"
)

// incrementColumns whitelists the columns a plan may adjust, per collection.
var incrementColumns = map[domain.Collection]map[string]string{
	domain.CollectionCreditors:   {"due": "due"},
	domain.CollectionCustomers:   {"due": "due"},
	domain.CollectionProducts:    {"numberInStock": "number_in_stock"},
	domain.CollectionAssets:      {"amount": "amount"},
	domain.CollectionLiabilities: {"amount": "amount"},
}

type atomicWriter struct {
	db *sql.DB
}

func NewAtomicWriter(db *sql.DB) repository.AtomicWriter {
	return &atomicWriter{db: db}
}

// Commit applies a write plan inside one transaction. A per-owner advisory
// lock serializes concurrent postings for the same tenant, and guard ops
// re-check funding/stock sufficiency after the lock is held, so two postings
// racing past the engine's pre-check cannot both commit an overspend.
func (w *atomicWriter) Commit(ctx context.Context, ownerID int32, plan domain.WritePlan) error {
	logger.EnterMethod("atomicWriter.Commit", "ownerID", ownerID, "ops", len(plan))

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin posting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(ownerID)); err != nil {
		return fmt.Errorf("acquire posting lock: %w", err)
	}

	for i, op := range plan {
		if err := w.apply(ctx, tx, ownerID, op); err != nil {
			logger.ExitMethodWithError("atomicWriter.Commit", err, "ownerID", ownerID, "op_index", i)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit posting transaction: %w", err)
	}
	logger.ExitMethod("atomicWriter.Commit", "ownerID", ownerID, "ops", len(plan))
	return nil
}

func (w *atomicWriter) apply(ctx context.Context, tx *sql.Tx, ownerID int32, op domain.WriteOp) error {
	switch op.Op {
	case domain.OpInsert:
		return w.insert(ctx, tx, op)
	case domain.OpIncrement:
		return w.increment(ctx, tx, ownerID, op)
	case domain.OpGuardBalance:
		return w.guardBalance(ctx, tx, ownerID, op)
	case domain.OpGuardStock:
		return w.guardStock(ctx, tx, ownerID, op)
	}
	return fmt.Errorf("unknown write op kind %q", op.Op)
}

func (w *atomicWriter) insert(ctx context.Context, tx *sql.Tx, op domain.WriteOp) error {
	switch doc := op.Document.(type) {
	case *domain.LedgerEntry:
		return insertLedgerEntry(ctx, tx, doc)
	case *domain.Product:
		return insertProduct(ctx, tx, doc)
	case *domain.Purchase:
		return insertPurchase(ctx, tx, doc)
	case *domain.PurchaseReturn:
		return insertPurchaseReturn(ctx, tx, doc)
	case *domain.Sale:
		return insertSale(ctx, tx, doc)
	case *domain.SalesReturn:
		return insertSalesReturn(ctx, tx, doc)
	case *domain.Asset:
		return insertAsset(ctx, tx, doc)
	case *domain.Liability:
		return insertLiability(ctx, tx, doc)
	case *domain.Expense:
		return insertExpense(ctx, tx, doc)
	case *domain.ExpenseCategory:
		return insertExpenseCategory(ctx, tx, doc)
	case *domain.Drawing:
		return insertDrawing(ctx, tx, doc)
	}
	return fmt.Errorf("no insert mapping for collection %q", op.Collection)
}

func (w *atomicWriter) increment(ctx context.Context, tx *sql.Tx, ownerID int32, op domain.WriteOp) error {
	columns, ok := incrementColumns[op.Collection]
	if !ok {
		return fmt.Errorf("collection %q does not allow increments", op.Collection)
	}
	column, ok := columns[op.Field]
	if !ok {
		return fmt.Errorf("field %q of %q is not incrementable", op.Field, op.Collection)
	}

	query := fmt.Sprintf(`UPDATE %s SET %s = %s + $1 WHERE id = $2 AND user_id = $3`, op.Collection, column, column)
	result, err := tx.ExecContext(ctx, query, op.Delta, op.ID, ownerID)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func (w *atomicWriter) guardBalance(ctx context.Context, tx *sql.Tx, ownerID int32, op domain.WriteOp) error {
	var net decimal.Decimal
	query := `SELECT COALESCE(SUM(CASE WHEN direction = 'dr' THEN amount ELSE -amount END), 0)
	          FROM ledger_entries WHERE user_id = $1 AND account = $2`
	if err := tx.QueryRowContext(ctx, query, ownerID, op.Account).Scan(&net); err != nil {
		return err
	}
	if net.LessThan(op.Amount) {
		return domain.ErrInsufficientFunds
	}
	return nil
}

func (w *atomicWriter) guardStock(ctx context.Context, tx *sql.Tx, ownerID int32, op domain.WriteOp) error {
	var inStock int32
	query := `SELECT number_in_stock FROM products WHERE id = $1 AND user_id = $2`
	err := tx.QueryRowContext(ctx, query, op.ID, ownerID).Scan(&inStock)
	if err == sql.ErrNoRows {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	if inStock < op.Quantity {
		return domain.ErrInsufficientStock
	}
	return nil
}
