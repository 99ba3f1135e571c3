package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"debitit-backend/internal/domain"
	"debitit-backend/internal/repository"
)

type liabilityRepository struct {
	db *sql.DB
}

func NewLiabilityRepository(db *sql.DB) repository.LiabilityRepository {
	return &liabilityRepository{db: db}
}

func insertLiability(ctx context.Context, q dbtx, l *domain.Liability) error {
	if l.Date.IsZero() {
		l.Date = time.Now()
	}
	query := `INSERT INTO liabilities (user_id, name, amount, interest_rate, time_months, other_expenses, date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return q.QueryRowContext(ctx, query, l.UserID, l.Name, l.Amount, l.InterestRate, l.TimeMonths, l.OtherExpenses, l.Date).Scan(&l.ID)
}

func (r *liabilityRepository) GetByID(ctx context.Context, id int32) (*domain.Liability, error) {
	var l domain.Liability
	query := `SELECT id, user_id, name, amount, interest_rate, time_months, other_expenses, date
	          FROM liabilities WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.UserID, &l.Name, &l.Amount, &l.InterestRate, &l.TimeMonths, &l.OtherExpenses, &l.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *liabilityRepository) List(ctx context.Context, userID int32) ([]domain.Liability, error) {
	query := `SELECT id, user_id, name, amount, interest_rate, time_months, other_expenses, date
	          FROM liabilities WHERE user_id = $1 ORDER BY date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var liabilities []domain.Liability
	for rows.Next() {
		var l domain.Liability
		if err := rows.Scan(&l.ID, &l.UserID, &l.Name, &l.Amount, &l.InterestRate, &l.TimeMonths, &l.OtherExpenses, &l.Date); err != nil {
			return nil, err
		}
		liabilities = append(liabilities, l)
	}
	return liabilities, rows.Err()
}
