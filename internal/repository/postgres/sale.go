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

type saleRepository struct {
	db *sql.DB
}

func NewSaleRepository(db *sql.DB) repository.SaleRepository {
	return &saleRepository{db: db}
}

func insertSale(ctx context.Context, q dbtx, s *domain.Sale) error {
	if s.Date.IsZero() {
		s.Date = time.Now()
	}
	items, err := json.Marshal(s.Items)
	if err != nil {
		return err
	}
	var customer []byte
	if s.Customer != nil {
		customer, err = json.Marshal(s.Customer)
		if err != nil {
			return err
		}
	}
	query := `INSERT INTO sales (user_id, reference, items, payment, customer, other_expenses, total_amount, date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return q.QueryRowContext(ctx, query, s.UserID, s.Reference, items, s.Payment, customer, s.OtherExpenses, s.TotalAmount, s.Date).Scan(&s.ID)
}

func (r *saleRepository) GetByID(ctx context.Context, id int32) (*domain.Sale, error) {
	query := selectSale + ` WHERE id = $1`
	s, err := scanSale(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return s, err
}

func (r *saleRepository) List(ctx context.Context, userID int32) ([]domain.Sale, error) {
	query := selectSale + ` WHERE user_id = $1 ORDER BY date DESC, id DESC`
	return r.querySales(ctx, query, userID)
}

func (r *saleRepository) ListCreditByProduct(ctx context.Context, userID int32, productName string) ([]domain.Sale, error) {
	query := selectSale + ` WHERE user_id = $1 AND payment = 'credit'
	          AND items @> $2::jsonb ORDER BY date DESC, id DESC`
	filter, err := json.Marshal([]map[string]string{{"productName": productName}})
	if err != nil {
		return nil, err
	}
	return r.querySales(ctx, query, userID, filter)
}

const selectSale = `SELECT id, user_id, reference, items, payment, customer, other_expenses, total_amount, date FROM sales`

func scanSale(row rowScanner) (*domain.Sale, error) {
	var s domain.Sale
	var items, customer []byte
	err := row.Scan(&s.ID, &s.UserID, &s.Reference, &items, &s.Payment, &customer, &s.OtherExpenses, &s.TotalAmount, &s.Date)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &s.Items); err != nil {
		return nil, err
	}
	if len(customer) > 0 {
		s.Customer = &domain.CustomerRef{}
		if err := json.Unmarshal(customer, s.Customer); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func (r *saleRepository) querySales(ctx context.Context, query string, args ...any) ([]domain.Sale, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, *s)
	}
	return sales, rows.Err()
}

type salesReturnRepository struct {
	db *sql.DB
}

func NewSalesReturnRepository(db *sql.DB) repository.SalesReturnRepository {
	return &salesReturnRepository{db: db}
}

func insertSalesReturn(ctx context.Context, q dbtx, sr *domain.SalesReturn) error {
	if sr.Date.IsZero() {
		sr.Date = time.Now()
	}
	snapshot, err := json.Marshal(sr.Sale)
	if err != nil {
		return err
	}
	query := `INSERT INTO sales_returns (user_id, sales, sale_id, product_id, quantity, price, total_amount, date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return q.QueryRowContext(ctx, query, sr.UserID, snapshot, sr.Sale.ID, sr.ProductID, sr.Quantity, sr.Price, sr.TotalAmount, sr.Date).Scan(&sr.ID)
}

func (r *salesReturnRepository) List(ctx context.Context, userID int32) ([]domain.SalesReturn, error) {
	query := `SELECT id, user_id, sales, product_id, quantity, price, total_amount, date
	          FROM sales_returns WHERE user_id = $1 ORDER BY date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var returns []domain.SalesReturn
	for rows.Next() {
		var sr domain.SalesReturn
		var snapshot []byte
		if err := rows.Scan(&sr.ID, &sr.UserID, &snapshot, &sr.ProductID, &sr.Quantity, &sr.Price, &sr.TotalAmount, &sr.Date); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(snapshot, &sr.Sale); err != nil {
			return nil, err
		}
		returns = append(returns, sr)
	}
	return returns, rows.Err()
}

func (r *salesReturnRepository) SumReturnedQuantity(ctx context.Context, saleID, productID int32) (int32, error) {
	var total int32
	query := `SELECT COALESCE(SUM(quantity), 0) FROM sales_returns WHERE sale_id = $1 AND product_id = $2`
	err := r.db.QueryRowContext(ctx, query, saleID, productID).Scan(&total)
	return total, err
}
