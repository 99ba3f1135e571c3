package postgres

import (
	"context"
	"database/sql"
	"errors"

	"debitit-backend/internal/domain"
	"debitit-backend/internal/repository"
)

type creditorRepository struct {
	db *sql.DB
}

func NewCreditorRepository(db *sql.DB) repository.CreditorRepository {
	return &creditorRepository{db: db}
}

func (r *creditorRepository) Create(ctx context.Context, c *domain.Creditor) error {
	query := `INSERT INTO creditors (user_id, name, contact, due) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.UserID, c.Name, c.Contact, c.Due).Scan(&c.ID)
}

func (r *creditorRepository) GetByID(ctx context.Context, id int32) (*domain.Creditor, error) {
	var c domain.Creditor
	query := `SELECT id, user_id, name, contact, due FROM creditors WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.UserID, &c.Name, &c.Contact, &c.Due)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *creditorRepository) List(ctx context.Context, userID int32) ([]domain.Creditor, error) {
	query := `SELECT id, user_id, name, contact, due FROM creditors WHERE user_id = $1 ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var creditors []domain.Creditor
	for rows.Next() {
		var c domain.Creditor
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Contact, &c.Due); err != nil {
			return nil, err
		}
		creditors = append(creditors, c)
	}
	return creditors, rows.Err()
}

func (r *creditorRepository) Update(ctx context.Context, c *domain.Creditor) error {
	query := `UPDATE creditors SET name = $1, contact = $2 WHERE id = $3 AND user_id = $4`
	result, err := r.db.ExecContext(ctx, query, c.Name, c.Contact, c.ID, c.UserID)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func (r *creditorRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM creditors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

// requireRowAffected turns a zero-row update/delete into ErrNotFound.
func requireRowAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
