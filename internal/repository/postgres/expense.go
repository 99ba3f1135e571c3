package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"debitit-backend/internal/domain"
	"debitit-backend/internal/repository"
)

type expenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) repository.ExpenseRepository {
	return &expenseRepository{db: db}
}

func insertExpense(ctx context.Context, q dbtx, e *domain.Expense) error {
	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	query := `INSERT INTO expenses (user_id, name, amount, date) VALUES ($1, $2, $3, $4) RETURNING id`
	return q.QueryRowContext(ctx, query, e.UserID, e.Name, e.Amount, e.Date).Scan(&e.ID)
}

func (r *expenseRepository) List(ctx context.Context, userID int32) ([]domain.Expense, error) {
	query := `SELECT id, user_id, name, amount, date FROM expenses WHERE user_id = $1 ORDER BY date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.Name, &e.Amount, &e.Date); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

type expenseCategoryRepository struct {
	db *sql.DB
}

func NewExpenseCategoryRepository(db *sql.DB) repository.ExpenseCategoryRepository {
	return &expenseCategoryRepository{db: db}
}

func insertExpenseCategory(ctx context.Context, q dbtx, c *domain.ExpenseCategory) error {
	query := `INSERT INTO expense_categories (user_id, name) VALUES ($1, $2) RETURNING id`
	return q.QueryRowContext(ctx, query, c.UserID, c.Name).Scan(&c.ID)
}

func (r *expenseCategoryRepository) Create(ctx context.Context, c *domain.ExpenseCategory) error {
	return insertExpenseCategory(ctx, r.db, c)
}

func (r *expenseCategoryRepository) GetByID(ctx context.Context, id int32) (*domain.ExpenseCategory, error) {
	var c domain.ExpenseCategory
	query := `SELECT id, user_id, name FROM expense_categories WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.UserID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *expenseCategoryRepository) GetByName(ctx context.Context, userID int32, name string) (*domain.ExpenseCategory, error) {
	var c domain.ExpenseCategory
	query := `SELECT id, user_id, name FROM expense_categories WHERE user_id = $1 AND lower(name) = lower($2)`
	err := r.db.QueryRowContext(ctx, query, userID, name).Scan(&c.ID, &c.UserID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *expenseCategoryRepository) List(ctx context.Context, userID int32) ([]domain.ExpenseCategory, error) {
	query := `SELECT id, user_id, name FROM expense_categories WHERE user_id = $1 ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.ExpenseCategory
	for rows.Next() {
		var c domain.ExpenseCategory
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *expenseCategoryRepository) Update(ctx context.Context, c *domain.ExpenseCategory) error {
	query := `UPDATE expense_categories SET name = $1 WHERE id = $2 AND user_id = $3`
	result, err := r.db.ExecContext(ctx, query, c.Name, c.ID, c.UserID)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func (r *expenseCategoryRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expense_categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}
