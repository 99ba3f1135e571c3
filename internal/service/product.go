package service

import (
	"context"

	"debitit-backend/internal/domain"
	"debitit-backend/internal/repository"
)

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

// CreateProduct registers a product directly, outside a purchase posting.
// Stock added this way carries no ledger effect.
func (s *productService) CreateProduct(ctx context.Context, product *domain.Product) error {
	if product.ProductName == "" {
		return domain.ErrValidation
	}
	if _, err := s.productRepo.GetByName(ctx, product.UserID, product.ProductName); err == nil {
		return domain.ErrDuplicateProduct
	} else if err != domain.ErrNotFound {
		return err
	}
	return s.productRepo.Create(ctx, product)
}

func (s *productService) GetProduct(ctx context.Context, userID, id int32) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, userID int32) ([]domain.Product, error) {
	return s.productRepo.List(ctx, userID)
}

func (s *productService) UpdateProduct(ctx context.Context, userID int32, product *domain.Product) (*domain.Product, error) {
	existing, err := s.GetProduct(ctx, userID, product.ID)
	if err != nil {
		return nil, err
	}
	if product.ProductName != "" {
		existing.ProductName = product.ProductName
	}
	if !product.PerPieceCost.IsZero() {
		existing.PerPieceCost = product.PerPieceCost
	}
	if !product.PerPieceSellingPrice.IsZero() {
		existing.PerPieceSellingPrice = product.PerPieceSellingPrice
	}
	if err := s.productRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *productService) DeleteProduct(ctx context.Context, userID, id int32) error {
	if _, err := s.GetProduct(ctx, userID, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}
