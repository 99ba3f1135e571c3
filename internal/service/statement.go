package service

import (
	"context"

	"debitit-backend/internal/domain"
	"debitit-backend/internal/repository"
)

type statementService struct {
	purchaseRepo       repository.PurchaseRepository
	purchaseReturnRepo repository.PurchaseReturnRepository
	saleRepo           repository.SaleRepository
	salesReturnRepo    repository.SalesReturnRepository
	assetRepo          repository.AssetRepository
	liabilityRepo      repository.LiabilityRepository
	expenseRepo        repository.ExpenseRepository
	drawingRepo        repository.DrawingRepository
}

func NewStatementService(
	purchaseRepo repository.PurchaseRepository,
	purchaseReturnRepo repository.PurchaseReturnRepository,
	saleRepo repository.SaleRepository,
	salesReturnRepo repository.SalesReturnRepository,
	assetRepo repository.AssetRepository,
	liabilityRepo repository.LiabilityRepository,
	expenseRepo repository.ExpenseRepository,
	drawingRepo repository.DrawingRepository,
) StatementService {
	return &statementService{
		purchaseRepo:       purchaseRepo,
		purchaseReturnRepo: purchaseReturnRepo,
		saleRepo:           saleRepo,
		salesReturnRepo:    salesReturnRepo,
		assetRepo:          assetRepo,
		liabilityRepo:      liabilityRepo,
		expenseRepo:        expenseRepo,
		drawingRepo:        drawingRepo,
	}
}

func (s *statementService) ListPurchases(ctx context.Context, userID int32) ([]domain.Purchase, error) {
	return s.purchaseRepo.List(ctx, userID)
}

// ListCreditPurchasesByProduct lists open credit purchases of one product,
// the working set for deciding purchase returns against a creditor.
func (s *statementService) ListCreditPurchasesByProduct(ctx context.Context, userID int32, productName string) ([]domain.Purchase, error) {
	if productName == "" {
		return nil, domain.ErrValidation
	}
	return s.purchaseRepo.ListCreditByProduct(ctx, userID, productName)
}

func (s *statementService) ListPurchaseReturns(ctx context.Context, userID int32) ([]domain.PurchaseReturn, error) {
	return s.purchaseReturnRepo.List(ctx, userID)
}

func (s *statementService) ListSales(ctx context.Context, userID int32) ([]domain.Sale, error) {
	return s.saleRepo.List(ctx, userID)
}

func (s *statementService) ListCreditSalesByProduct(ctx context.Context, userID int32, productName string) ([]domain.Sale, error) {
	if productName == "" {
		return nil, domain.ErrValidation
	}
	return s.saleRepo.ListCreditByProduct(ctx, userID, productName)
}

func (s *statementService) ListSalesReturns(ctx context.Context, userID int32) ([]domain.SalesReturn, error) {
	return s.salesReturnRepo.List(ctx, userID)
}

func (s *statementService) ListAssets(ctx context.Context, userID int32) ([]domain.Asset, error) {
	return s.assetRepo.List(ctx, userID)
}

func (s *statementService) ListLiabilities(ctx context.Context, userID int32) ([]domain.Liability, error) {
	return s.liabilityRepo.List(ctx, userID)
}

func (s *statementService) ListExpenses(ctx context.Context, userID int32) ([]domain.Expense, error) {
	return s.expenseRepo.List(ctx, userID)
}

func (s *statementService) ListDrawings(ctx context.Context, userID int32) ([]domain.Drawing, error) {
	return s.drawingRepo.List(ctx, userID)
}
