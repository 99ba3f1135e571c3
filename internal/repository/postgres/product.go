package postgres

import (
	"context"
	"database/sql"
	"errors"

	"debitit-backend/internal/domain"
	"debitit-backend/internal/repository"
)

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func insertProduct(ctx context.Context, q dbtx, p *domain.Product) error {
	query := `INSERT INTO products (user_id, product_name, number_in_stock, per_piece_cost, per_piece_selling_price)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return q.QueryRowContext(ctx, query, p.UserID, p.ProductName, p.NumberInStock, p.PerPieceCost, p.PerPieceSellingPrice).Scan(&p.ID)
}

func (r *productRepository) Create(ctx context.Context, p *domain.Product) error {
	return insertProduct(ctx, r.db, p)
}

func (r *productRepository) GetByID(ctx context.Context, id int32) (*domain.Product, error) {
	var p domain.Product
	query := `SELECT id, user_id, product_name, number_in_stock, per_piece_cost, per_piece_selling_price
	          FROM products WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.UserID, &p.ProductName, &p.NumberInStock, &p.PerPieceCost, &p.PerPieceSellingPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) GetByName(ctx context.Context, userID int32, name string) (*domain.Product, error) {
	var p domain.Product
	query := `SELECT id, user_id, product_name, number_in_stock, per_piece_cost, per_piece_selling_price
	          FROM products WHERE user_id = $1 AND lower(product_name) = lower($2)`
	err := r.db.QueryRowContext(ctx, query, userID, name).Scan(&p.ID, &p.UserID, &p.ProductName, &p.NumberInStock, &p.PerPieceCost, &p.PerPieceSellingPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context, userID int32) ([]domain.Product, error) {
	query := `SELECT id, user_id, product_name, number_in_stock, per_piece_cost, per_piece_selling_price
	          FROM products WHERE user_id = $1 ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *productRepository) ListLowStock(ctx context.Context, userID int32, threshold int32) ([]domain.Product, error) {
	query := `SELECT id, user_id, product_name, number_in_stock, per_piece_cost, per_piece_selling_price
	          FROM products WHERE user_id = $1 AND number_in_stock <= $2 ORDER BY number_in_stock ASC`
	rows, err := r.db.QueryContext(ctx, query, userID, threshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *productRepository) Update(ctx context.Context, p *domain.Product) error {
	query := `UPDATE products SET product_name = $1, number_in_stock = $2, per_piece_cost = $3, per_piece_selling_price = $4
	          WHERE id = $5 AND user_id = $6`
	result, err := r.db.ExecContext(ctx, query, p.ProductName, p.NumberInStock, p.PerPieceCost, p.PerPieceSellingPrice, p.ID, p.UserID)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func (r *productRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func scanProducts(rows *sql.Rows) ([]domain.Product, error) {
	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.UserID, &p.ProductName, &p.NumberInStock, &p.PerPieceCost, &p.PerPieceSellingPrice); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
