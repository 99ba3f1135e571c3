package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"debitit-backend/internal/domain"
	"debitit-backend/internal/repository"
)

type assetRepository struct {
	db *sql.DB
}

func NewAssetRepository(db *sql.DB) repository.AssetRepository {
	return &assetRepository{db: db}
}

func insertAsset(ctx context.Context, q dbtx, a *domain.Asset) error {
	if a.Date.IsZero() {
		a.Date = time.Now()
	}
	query := `INSERT INTO assets (user_id, name, amount, other_expenses, date)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return q.QueryRowContext(ctx, query, a.UserID, a.Name, a.Amount, a.OtherExpenses, a.Date).Scan(&a.ID)
}

func (r *assetRepository) GetByID(ctx context.Context, id int32) (*domain.Asset, error) {
	var a domain.Asset
	query := `SELECT id, user_id, name, amount, other_expenses, date FROM assets WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.UserID, &a.Name, &a.Amount, &a.OtherExpenses, &a.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assetRepository) GetByName(ctx context.Context, userID int32, name string) (*domain.Asset, error) {
	var a domain.Asset
	query := `SELECT id, user_id, name, amount, other_expenses, date
	          FROM assets WHERE user_id = $1 AND lower(name) = lower($2)`
	err := r.db.QueryRowContext(ctx, query, userID, name).Scan(&a.ID, &a.UserID, &a.Name, &a.Amount, &a.OtherExpenses, &a.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assetRepository) List(ctx context.Context, userID int32) ([]domain.Asset, error) {
	query := `SELECT id, user_id, name, amount, other_expenses, date
	          FROM assets WHERE user_id = $1 ORDER BY date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []domain.Asset
	for rows.Next() {
		var a domain.Asset
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Amount, &a.OtherExpenses, &a.Date); err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}
