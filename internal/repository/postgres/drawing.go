package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"debitit-backend/internal/domain"
	"debitit-backend/internal/repository"
)

type drawingRepository struct {
	db *sql.DB
}

func NewDrawingRepository(db *sql.DB) repository.DrawingRepository {
	return &drawingRepository{db: db}
}

func insertDrawing(ctx context.Context, q dbtx, d *domain.Drawing) error {
	if d.Date.IsZero() {
		d.Date = time.Now()
	}
	var items []byte
	if len(d.Items) > 0 {
		var err error
		items, err = json.Marshal(d.Items)
		if err != nil {
			return err
		}
	}
	query := `INSERT INTO drawings (user_id, name, amount, items, date) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return q.QueryRowContext(ctx, query, d.UserID, d.Name, d.Amount, items, d.Date).Scan(&d.ID)
}

func (r *drawingRepository) List(ctx context.Context, userID int32) ([]domain.Drawing, error) {
	query := `SELECT id, user_id, name, amount, items, date FROM drawings WHERE user_id = $1 ORDER BY date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drawings []domain.Drawing
	for rows.Next() {
		var d domain.Drawing
		var items []byte
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.Amount, &items, &d.Date); err != nil {
			return nil, err
		}
		if len(items) > 0 {
			if err := json.Unmarshal(items, &d.Items); err != nil {
				return nil, err
			}
		}
		drawings = append(drawings, d)
	}
	return drawings, rows.Err()
}
