package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debitit-backend/internal/domain"
)

func TestLedgerRepository_CreateEntry(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLedgerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		entry := &domain.LedgerEntry{
			UserID:    1,
			Account:   domain.AccountCash,
			Source:    "capital",
			Direction: domain.DirectionDebit,
			Amount:    decimal.NewFromInt(1000),
		}

		mock.ExpectQuery("INSERT INTO ledger_entries").
			WithArgs(entry.UserID, entry.Account, entry.Source, entry.Direction, entry.Amount, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		err := repo.CreateEntry(ctx, entry)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), entry.ID)
		assert.False(t, entry.Date.IsZero())
	})
}

func TestLedgerRepository_SumByDirection(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLedgerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM ledger_entries").
			WithArgs(int32(1), domain.AccountCash, domain.DirectionDebit).
			WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow("350.50"))

		total, err := repo.SumByDirection(ctx, 1, domain.AccountCash, domain.DirectionDebit)
		assert.NoError(t, err)
		assert.True(t, total.Equal(decimal.RequireFromString("350.50")))
	})

	t.Run("EmptyLedgerNetsZero", func(t *testing.T) {
		mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM ledger_entries").
			WithArgs(int32(1), domain.AccountBank, domain.DirectionCredit).
			WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow("0"))

		total, err := repo.SumByDirection(ctx, 1, domain.AccountBank, domain.DirectionCredit)
		assert.NoError(t, err)
		assert.True(t, total.IsZero())
	})
}

func TestLedgerRepository_ListByDateRange(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLedgerRepository(db)
	ctx := context.Background()

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "user_id", "account", "source", "direction", "amount", "date"}).
		AddRow(1, 1, "cash", "soap", "cr", "120", from.Add(24*time.Hour)).
		AddRow(2, 1, "cash", "capital", "dr", "1000", from.Add(48*time.Hour))

	mock.ExpectQuery("SELECT id, user_id, account, source, direction, amount, date FROM ledger_entries").
		WithArgs(int32(1), domain.AccountCash, from, to).
		WillReturnRows(rows)

	entries, err := repo.ListByDateRange(ctx, 1, domain.AccountCash, from, to)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.DirectionCredit, entries[0].Direction)
	assert.True(t, entries[1].Amount.Equal(decimal.NewFromInt(1000)))
}
