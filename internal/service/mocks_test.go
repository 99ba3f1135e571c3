package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"debitit-backend/internal/domain"
)

// MockWriter
type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) Commit(ctx context.Context, ownerID int32, plan domain.WritePlan) error {
	args := m.Called(ctx, ownerID, plan)
	return args.Error(0)
}

// MockLedgerRepo
type MockLedgerRepo struct {
	mock.Mock
}

func (m *MockLedgerRepo) CreateEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockLedgerRepo) ListByAccount(ctx context.Context, userID int32, account domain.Account) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, userID, account)
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}
func (m *MockLedgerRepo) ListByDateRange(ctx context.Context, userID int32, account domain.Account, from, to time.Time) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, userID, account, from, to)
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}
func (m *MockLedgerRepo) SumByDirection(ctx context.Context, userID int32, account domain.Account, direction domain.Direction) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, account, direction)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockCreditorRepo
type MockCreditorRepo struct {
	mock.Mock
}

func (m *MockCreditorRepo) Create(ctx context.Context, creditor *domain.Creditor) error {
	args := m.Called(ctx, creditor)
	return args.Error(0)
}
func (m *MockCreditorRepo) GetByID(ctx context.Context, id int32) (*domain.Creditor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Creditor), args.Error(1)
}
func (m *MockCreditorRepo) List(ctx context.Context, userID int32) ([]domain.Creditor, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Creditor), args.Error(1)
}
func (m *MockCreditorRepo) Update(ctx context.Context, creditor *domain.Creditor) error {
	args := m.Called(ctx, creditor)
	return args.Error(0)
}
func (m *MockCreditorRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) List(ctx context.Context, userID int32) ([]domain.Customer, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductRepo
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}
func (m *MockProductRepo) GetByID(ctx context.Context, id int32) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductRepo) GetByName(ctx context.Context, userID int32, name string) (*domain.Product, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductRepo) List(ctx context.Context, userID int32) ([]domain.Product, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Product), args.Error(1)
}
func (m *MockProductRepo) ListLowStock(ctx context.Context, userID int32, threshold int32) ([]domain.Product, error) {
	args := m.Called(ctx, userID, threshold)
	return args.Get(0).([]domain.Product), args.Error(1)
}
func (m *MockProductRepo) Update(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}
func (m *MockProductRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPurchaseRepo
type MockPurchaseRepo struct {
	mock.Mock
}

func (m *MockPurchaseRepo) GetByID(ctx context.Context, id int32) (*domain.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}
func (m *MockPurchaseRepo) List(ctx context.Context, userID int32) ([]domain.Purchase, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Purchase), args.Error(1)
}
func (m *MockPurchaseRepo) ListCreditByProduct(ctx context.Context, userID int32, productName string) ([]domain.Purchase, error) {
	args := m.Called(ctx, userID, productName)
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

// MockPurchaseReturnRepo
type MockPurchaseReturnRepo struct {
	mock.Mock
}

func (m *MockPurchaseReturnRepo) List(ctx context.Context, userID int32) ([]domain.PurchaseReturn, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.PurchaseReturn), args.Error(1)
}
func (m *MockPurchaseReturnRepo) SumReturnedQuantity(ctx context.Context, purchaseID int32) (int32, error) {
	args := m.Called(ctx, purchaseID)
	return args.Get(0).(int32), args.Error(1)
}

// MockSaleRepo
type MockSaleRepo struct {
	mock.Mock
}

func (m *MockSaleRepo) GetByID(ctx context.Context, id int32) (*domain.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleRepo) List(ctx context.Context, userID int32) ([]domain.Sale, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Sale), args.Error(1)
}
func (m *MockSaleRepo) ListCreditByProduct(ctx context.Context, userID int32, productName string) ([]domain.Sale, error) {
	args := m.Called(ctx, userID, productName)
	return args.Get(0).([]domain.Sale), args.Error(1)
}

// MockSalesReturnRepo
type MockSalesReturnRepo struct {
	mock.Mock
}

func (m *MockSalesReturnRepo) List(ctx context.Context, userID int32) ([]domain.SalesReturn, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.SalesReturn), args.Error(1)
}
func (m *MockSalesReturnRepo) SumReturnedQuantity(ctx context.Context, saleID, productID int32) (int32, error) {
	args := m.Called(ctx, saleID, productID)
	return args.Get(0).(int32), args.Error(1)
}

// MockAssetRepo
type MockAssetRepo struct {
	mock.Mock
}

func (m *MockAssetRepo) GetByID(ctx context.Context, id int32) (*domain.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}
func (m *MockAssetRepo) GetByName(ctx context.Context, userID int32, name string) (*domain.Asset, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}
func (m *MockAssetRepo) List(ctx context.Context, userID int32) ([]domain.Asset, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Asset), args.Error(1)
}

// MockLiabilityRepo
type MockLiabilityRepo struct {
	mock.Mock
}

func (m *MockLiabilityRepo) GetByID(ctx context.Context, id int32) (*domain.Liability, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Liability), args.Error(1)
}
func (m *MockLiabilityRepo) List(ctx context.Context, userID int32) ([]domain.Liability, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Liability), args.Error(1)
}

// MockCategoryRepo
type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) Create(ctx context.Context, category *domain.ExpenseCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}
func (m *MockCategoryRepo) GetByID(ctx context.Context, id int32) (*domain.ExpenseCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseCategory), args.Error(1)
}
func (m *MockCategoryRepo) GetByName(ctx context.Context, userID int32, name string) (*domain.ExpenseCategory, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseCategory), args.Error(1)
}
func (m *MockCategoryRepo) List(ctx context.Context, userID int32) ([]domain.ExpenseCategory, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.ExpenseCategory), args.Error(1)
}
func (m *MockCategoryRepo) Update(ctx context.Context, category *domain.ExpenseCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}
func (m *MockCategoryRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
