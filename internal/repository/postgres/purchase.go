package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"debitit-backend/internal/domain"
	"debitit-backend/internal/repository"
)

type purchaseRepository struct {
	db *sql.DB
}

func NewPurchaseRepository(db *sql.DB) repository.PurchaseRepository {
	return &purchaseRepository{db: db}
}

func insertPurchase(ctx context.Context, q dbtx, p *domain.Purchase) error {
	if p.Date.IsZero() {
		p.Date = time.Now()
	}
	var creditor []byte
	if p.Creditor != nil {
		var err error
		creditor, err = json.Marshal(p.Creditor)
		if err != nil {
			return err
		}
	}
	query := `INSERT INTO purchases (user_id, reference, product_name, product_id, payment, creditor, quantity,
	                                 per_piece_cost, per_piece_selling_price, other_expenses, total_cost, date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	return q.QueryRowContext(ctx, query, p.UserID, p.Reference, p.ProductName, p.ProductID, p.Payment, creditor,
		p.Quantity, p.PerPieceCost, p.PerPieceSellingPrice, p.OtherExpenses, p.TotalCost, p.Date).Scan(&p.ID)
}

func (r *purchaseRepository) GetByID(ctx context.Context, id int32) (*domain.Purchase, error) {
	query := selectPurchase + ` WHERE id = $1`
	p, err := scanPurchase(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return p, err
}

func (r *purchaseRepository) List(ctx context.Context, userID int32) ([]domain.Purchase, error) {
	query := selectPurchase + ` WHERE user_id = $1 ORDER BY date DESC, id DESC`
	return r.queryPurchases(ctx, query, userID)
}

func (r *purchaseRepository) ListCreditByProduct(ctx context.Context, userID int32, productName string) ([]domain.Purchase, error) {
	query := selectPurchase + ` WHERE user_id = $1 AND product_name = $2 AND payment = 'credit' ORDER BY date DESC, id DESC`
	return r.queryPurchases(ctx, query, userID, productName)
}

const selectPurchase = `SELECT id, user_id, reference, product_name, product_id, payment, creditor, quantity,
	per_piece_cost, per_piece_selling_price, other_expenses, total_cost, date FROM purchases`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPurchase(row rowScanner) (*domain.Purchase, error) {
	var p domain.Purchase
	var creditor []byte
	err := row.Scan(&p.ID, &p.UserID, &p.Reference, &p.ProductName, &p.ProductID, &p.Payment, &creditor,
		&p.Quantity, &p.PerPieceCost, &p.PerPieceSellingPrice, &p.OtherExpenses, &p.TotalCost, &p.Date)
	if err != nil {
		return nil, err
	}
	if len(creditor) > 0 {
		p.Creditor = &domain.CreditorRef{}
		if err := json.Unmarshal(creditor, p.Creditor); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func (r *purchaseRepository) queryPurchases(ctx context.Context, query string, args ...any) ([]domain.Purchase, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, *p)
	}
	return purchases, rows.Err()
}

type purchaseReturnRepository struct {
	db *sql.DB
}

func NewPurchaseReturnRepository(db *sql.DB) repository.PurchaseReturnRepository {
	return &purchaseReturnRepository{db: db}
}

func insertPurchaseReturn(ctx context.Context, q dbtx, pr *domain.PurchaseReturn) error {
	if pr.Date.IsZero() {
		pr.Date = time.Now()
	}
	snapshot, err := json.Marshal(pr.Purchase)
	if err != nil {
		return err
	}
	query := `INSERT INTO purchase_returns (user_id, purchase, purchase_id, quantity, per_piece_cost, total_amount, date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return q.QueryRowContext(ctx, query, pr.UserID, snapshot, pr.Purchase.ID, pr.Quantity, pr.PerPieceCost, pr.TotalAmount, pr.Date).Scan(&pr.ID)
}

func (r *purchaseReturnRepository) List(ctx context.Context, userID int32) ([]domain.PurchaseReturn, error) {
	query := `SELECT id, user_id, purchase, quantity, per_piece_cost, total_amount, date
	          FROM purchase_returns WHERE user_id = $1 ORDER BY date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var returns []domain.PurchaseReturn
	for rows.Next() {
		var pr domain.PurchaseReturn
		var snapshot []byte
		if err := rows.Scan(&pr.ID, &pr.UserID, &snapshot, &pr.Quantity, &pr.PerPieceCost, &pr.TotalAmount, &pr.Date); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(snapshot, &pr.Purchase); err != nil {
			return nil, err
		}
		returns = append(returns, pr)
	}
	return returns, rows.Err()
}

func (r *purchaseReturnRepository) SumReturnedQuantity(ctx context.Context, purchaseID int32) (int32, error) {
	var total int32
	query := `SELECT COALESCE(SUM(quantity), 0) FROM purchase_returns WHERE purchase_id = $1`
	err := r.db.QueryRowContext(ctx, query, purchaseID).Scan(&total)
	return total, err
}
