package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debitit-backend/internal/domain"
)

func TestAtomicWriter_Commit(t *testing.T) {
	ctx := context.Background()

	t.Run("applies plan inside one transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		writer := NewAtomicWriter(db)

		mock.ExpectBegin()
		mock.ExpectExec("SELECT pg_advisory_xact_lock").
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT COALESCE\\(SUM\\(CASE WHEN direction = 'dr' THEN amount ELSE -amount END\\), 0\\)").
			WithArgs(int32(1), domain.AccountCash).
			WillReturnRows(sqlmock.NewRows([]string{"net"}).AddRow("200"))
		mock.ExpectQuery("INSERT INTO ledger_entries").
			WithArgs(int32(1), domain.AccountCash, "soap", domain.DirectionCredit, decimal.NewFromInt(120), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
		mock.ExpectExec("UPDATE creditors SET due = due \\+ \\$1").
			WithArgs(decimal.NewFromInt(-120), int32(7), int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		entry := &domain.LedgerEntry{
			UserID:    1,
			Account:   domain.AccountCash,
			Source:    "soap",
			Direction: domain.DirectionCredit,
			Amount:    decimal.NewFromInt(120),
		}
		plan := domain.WritePlan{
			domain.GuardBalance(domain.AccountCash, decimal.NewFromInt(120)),
			domain.Insert(domain.CollectionLedgerEntries, entry),
			domain.Increment(domain.CollectionCreditors, 7, "due", decimal.NewFromInt(-120)),
		}

		err = writer.Commit(ctx, 1, plan)
		assert.NoError(t, err)
		assert.Equal(t, int32(9), entry.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("guard failure rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		writer := NewAtomicWriter(db)

		mock.ExpectBegin()
		mock.ExpectExec("SELECT pg_advisory_xact_lock").
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT COALESCE\\(SUM\\(CASE WHEN direction = 'dr' THEN amount ELSE -amount END\\), 0\\)").
			WithArgs(int32(1), domain.AccountCash).
			WillReturnRows(sqlmock.NewRows([]string{"net"}).AddRow("30"))
		mock.ExpectRollback()

		plan := domain.WritePlan{
			domain.GuardBalance(domain.AccountCash, decimal.NewFromInt(120)),
			domain.Insert(domain.CollectionLedgerEntries, &domain.LedgerEntry{UserID: 1}),
		}

		err = writer.Commit(ctx, 1, plan)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stock guard rejects oversell", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		writer := NewAtomicWriter(db)

		mock.ExpectBegin()
		mock.ExpectExec("SELECT pg_advisory_xact_lock").
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT number_in_stock FROM products").
			WithArgs(int32(3), int32(1)).
			WillReturnRows(sqlmock.NewRows([]string{"number_in_stock"}).AddRow(2))
		mock.ExpectRollback()

		plan := domain.WritePlan{domain.GuardStock(3, 5)}

		err = writer.Commit(ctx, 1, plan)
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects increments outside the whitelist", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		writer := NewAtomicWriter(db)

		mock.ExpectBegin()
		mock.ExpectExec("SELECT pg_advisory_xact_lock").
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		plan := domain.WritePlan{
			domain.Increment(domain.CollectionLedgerEntries, 9, "amount", decimal.NewFromInt(10)),
		}

		err = writer.Commit(ctx, 1, plan)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("increment of missing row fails the plan", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		writer := NewAtomicWriter(db)

		mock.ExpectBegin()
		mock.ExpectExec("SELECT pg_advisory_xact_lock").
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("UPDATE products SET number_in_stock = number_in_stock \\+ \\$1").
			WithArgs(decimal.NewFromInt(-2), int32(3), int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		plan := domain.WritePlan{
			domain.Increment(domain.CollectionProducts, 3, "numberInStock", decimal.NewFromInt(-2)),
		}

		err = writer.Commit(ctx, 1, plan)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
