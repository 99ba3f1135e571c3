package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"debitit-backend/internal/domain"
	"debitit-backend/internal/repository"
)

type ledgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

func insertLedgerEntry(ctx context.Context, q dbtx, e *domain.LedgerEntry) error {
	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	query := `INSERT INTO ledger_entries (user_id, account, source, direction, amount, date)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return q.QueryRowContext(ctx, query, e.UserID, e.Account, e.Source, e.Direction, e.Amount, e.Date).Scan(&e.ID)
}

func (r *ledgerRepository) CreateEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	return insertLedgerEntry(ctx, r.db, entry)
}

func (r *ledgerRepository) ListByAccount(ctx context.Context, userID int32, account domain.Account) ([]domain.LedgerEntry, error) {
	query := `SELECT id, user_id, account, source, direction, amount, date
	          FROM ledger_entries WHERE user_id = $1 AND account = $2 ORDER BY date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID, account)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLedgerEntries(rows)
}

func (r *ledgerRepository) ListByDateRange(ctx context.Context, userID int32, account domain.Account, from, to time.Time) ([]domain.LedgerEntry, error) {
	query := `SELECT id, user_id, account, source, direction, amount, date
	          FROM ledger_entries WHERE user_id = $1 AND account = $2 AND date >= $3 AND date < $4
	          ORDER BY date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID, account, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLedgerEntries(rows)
}

func (r *ledgerRepository) SumByDirection(ctx context.Context, userID int32, account domain.Account, direction domain.Direction) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM ledger_entries
	          WHERE user_id = $1 AND account = $2 AND direction = $3`
	err := r.db.QueryRowContext(ctx, query, userID, account, direction).Scan(&total)
	return total, err
}

func scanLedgerEntries(rows *sql.Rows) ([]domain.LedgerEntry, error) {
	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Account, &e.Source, &e.Direction, &e.Amount, &e.Date); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
