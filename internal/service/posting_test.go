package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"debitit-backend/internal/domain"
)

type postingFixture struct {
	writer         *MockWriter
	ledger         *MockLedgerRepo
	creditors      *MockCreditorRepo
	customers      *MockCustomerRepo
	products       *MockProductRepo
	purchases      *MockPurchaseRepo
	purchaseRets   *MockPurchaseReturnRepo
	sales          *MockSaleRepo
	salesRets      *MockSalesReturnRepo
	assets         *MockAssetRepo
	liabilities    *MockLiabilityRepo
	categories     *MockCategoryRepo
	svc            PostingService
	committedPlans []domain.WritePlan
}

func newPostingFixture() *postingFixture {
	f := &postingFixture{
		writer:       new(MockWriter),
		ledger:       new(MockLedgerRepo),
		creditors:    new(MockCreditorRepo),
		customers:    new(MockCustomerRepo),
		products:     new(MockProductRepo),
		purchases:    new(MockPurchaseRepo),
		purchaseRets: new(MockPurchaseReturnRepo),
		sales:        new(MockSaleRepo),
		salesRets:    new(MockSalesReturnRepo),
		assets:       new(MockAssetRepo),
		liabilities:  new(MockLiabilityRepo),
		categories:   new(MockCategoryRepo),
	}
	f.svc = NewPostingService(
		f.writer, f.ledger, f.creditors, f.customers, f.products,
		f.purchases, f.purchaseRets, f.sales, f.salesRets,
		f.assets, f.liabilities, f.categories,
	)
	return f
}

func (f *postingFixture) expectBalance(ctx context.Context, userID int32, account domain.Account, debit, credit int64) {
	f.ledger.On("SumByDirection", ctx, userID, account, domain.DirectionDebit).Return(decimal.NewFromInt(debit), nil)
	f.ledger.On("SumByDirection", ctx, userID, account, domain.DirectionCredit).Return(decimal.NewFromInt(credit), nil)
}

func (f *postingFixture) expectCommit(ctx context.Context, userID int32) {
	f.writer.On("Commit", ctx, userID, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		f.committedPlans = append(f.committedPlans, args.Get(2).(domain.WritePlan))
	})
}

func planOps(plan domain.WritePlan, kind domain.OpKind) []domain.WriteOp {
	var ops []domain.WriteOp
	for _, op := range plan {
		if op.Op == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

func TestRecordPurchase_CashInsufficientFunds(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	// Net cash is 80 - 50 = 30, the purchase needs 100.
	f.expectBalance(ctx, 1, domain.AccountCash, 80, 50)
	f.products.On("GetByName", ctx, int32(1), "soap").Return(nil, domain.ErrNotFound)

	_, _, err := f.svc.RecordPurchase(ctx, 1, PurchaseInput{
		ProductName:  "soap",
		Payment:      domain.PaymentCash,
		NewProduct:   true,
		Quantity:     10,
		PerPieceCost: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	f.writer.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordPurchase_CashSuccess(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	f.expectBalance(ctx, 1, domain.AccountCash, 500, 100)
	f.products.On("GetByName", ctx, int32(1), "soap").Return(nil, domain.ErrNotFound)
	f.expectCommit(ctx, 1)

	purchase, product, err := f.svc.RecordPurchase(ctx, 1, PurchaseInput{
		ProductName:          "soap",
		Payment:              domain.PaymentCash,
		NewProduct:           true,
		Quantity:             10,
		PerPieceCost:         decimal.NewFromInt(10),
		PerPieceSellingPrice: decimal.NewFromInt(15),
		OtherExpenses:        decimal.NewFromInt(20),
	})
	require.NoError(t, err)
	assert.True(t, purchase.TotalCost.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, int32(10), product.NumberInStock)
	assert.NotEmpty(t, purchase.Reference)

	require.Len(t, f.committedPlans, 1)
	plan := f.committedPlans[0]
	guards := planOps(plan, domain.OpGuardBalance)
	require.Len(t, guards, 1)
	assert.Equal(t, domain.AccountCash, guards[0].Account)
	assert.True(t, guards[0].Amount.Equal(decimal.NewFromInt(120)))

	inserts := planOps(plan, domain.OpInsert)
	require.Len(t, inserts, 3) // purchase, product, ledger entry
	var entry *domain.LedgerEntry
	for _, op := range inserts {
		if e, ok := op.Document.(*domain.LedgerEntry); ok {
			entry = e
		}
	}
	require.NotNil(t, entry)
	assert.Equal(t, domain.DirectionCredit, entry.Direction)
	assert.True(t, entry.Amount.Equal(decimal.NewFromInt(120)))
}

func TestRecordPurchase_CreditIncrementsCreditorDue(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	f.products.On("GetByName", ctx, int32(1), "soap").Return(nil, domain.ErrNotFound)
	f.creditors.On("GetByID", ctx, int32(7)).Return(&domain.Creditor{ID: 7, UserID: 1, Name: "Acme"}, nil)
	f.expectCommit(ctx, 1)

	purchase, _, err := f.svc.RecordPurchase(ctx, 1, PurchaseInput{
		ProductName:  "soap",
		Payment:      domain.PaymentCredit,
		CreditorID:   7,
		NewProduct:   true,
		Quantity:     5,
		PerPieceCost: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	require.NotNil(t, purchase.Creditor)
	assert.Equal(t, "Acme", purchase.Creditor.Name)

	require.Len(t, f.committedPlans, 1)
	plan := f.committedPlans[0]

	// No money moves on a credit purchase.
	for _, op := range planOps(plan, domain.OpInsert) {
		_, isEntry := op.Document.(*domain.LedgerEntry)
		assert.False(t, isEntry, "credit purchase must not write a ledger entry")
	}

	increments := planOps(plan, domain.OpIncrement)
	require.Len(t, increments, 1)
	assert.Equal(t, domain.CollectionCreditors, increments[0].Collection)
	assert.Equal(t, int32(7), increments[0].ID)
	assert.True(t, increments[0].Delta.Equal(decimal.NewFromInt(50)))
}

func TestRecordPurchase_ForeignCreditorForbidden(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	f.products.On("GetByName", ctx, int32(1), "soap").Return(nil, domain.ErrNotFound)
	f.creditors.On("GetByID", ctx, int32(7)).Return(&domain.Creditor{ID: 7, UserID: 2, Name: "Acme"}, nil)

	_, _, err := f.svc.RecordPurchase(ctx, 1, PurchaseInput{
		ProductName:  "soap",
		Payment:      domain.PaymentCredit,
		CreditorID:   7,
		NewProduct:   true,
		Quantity:     5,
		PerPieceCost: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	f.writer.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordPurchase_DuplicateNewProduct(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	f.products.On("GetByName", ctx, int32(1), "soap").Return(&domain.Product{ID: 2, UserID: 1, ProductName: "soap"}, nil)

	_, _, err := f.svc.RecordPurchase(ctx, 1, PurchaseInput{
		ProductName:  "soap",
		Payment:      domain.PaymentCash,
		NewProduct:   true,
		Quantity:     5,
		PerPieceCost: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateProduct)
}

func TestRecordSale_InsufficientStock(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	f.products.On("GetByID", ctx, int32(3)).Return(&domain.Product{ID: 3, UserID: 1, ProductName: "soap", NumberInStock: 2}, nil)

	_, err := f.svc.RecordSale(ctx, 1, SaleInput{
		Payment: domain.PaymentCash,
		Items:   []SaleLineInput{{ProductID: 3, Quantity: 5, Price: decimal.NewFromInt(15)}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	f.writer.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordSale_MultiLine(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	f.products.On("GetByID", ctx, int32(3)).Return(&domain.Product{ID: 3, UserID: 1, ProductName: "soap", NumberInStock: 10}, nil)
	f.products.On("GetByID", ctx, int32(4)).Return(&domain.Product{ID: 4, UserID: 1, ProductName: "brush", NumberInStock: 4}, nil)
	f.expectCommit(ctx, 1)

	sale, err := f.svc.RecordSale(ctx, 1, SaleInput{
		Payment: domain.PaymentCash,
		Items: []SaleLineInput{
			{ProductID: 3, Quantity: 2, Price: decimal.NewFromInt(15)},
			{ProductID: 4, Quantity: 1, Price: decimal.NewFromInt(40)},
		},
		OtherExpenses: decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	assert.True(t, sale.TotalAmount.Equal(decimal.NewFromInt(75)))
	require.Len(t, sale.Items, 2)
	assert.Equal(t, "soap", sale.Items[0].ProductName)

	require.Len(t, f.committedPlans, 1)
	plan := f.committedPlans[0]
	assert.Len(t, planOps(plan, domain.OpGuardStock), 2)

	decrements := planOps(plan, domain.OpIncrement)
	require.Len(t, decrements, 2)
	assert.True(t, decrements[0].Delta.Equal(decimal.NewFromInt(-2)))
	assert.True(t, decrements[1].Delta.Equal(decimal.NewFromInt(-1)))
}

func TestRecordSale_CreditWithoutCustomer(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	f.products.On("GetByID", ctx, int32(3)).Return(&domain.Product{ID: 3, UserID: 1, ProductName: "soap", NumberInStock: 10}, nil)

	_, err := f.svc.RecordSale(ctx, 1, SaleInput{
		Payment: domain.PaymentCredit,
		Items:   []SaleLineInput{{ProductID: 3, Quantity: 1, Price: decimal.NewFromInt(15)}},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRecordSale_WriterFailurePropagates(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	f.products.On("GetByID", ctx, int32(3)).Return(&domain.Product{ID: 3, UserID: 1, ProductName: "soap", NumberInStock: 10}, nil)
	f.writer.On("Commit", ctx, int32(1), mock.Anything).Return(errors.New("tx aborted"))

	_, err := f.svc.RecordSale(ctx, 1, SaleInput{
		Payment: domain.PaymentCash,
		Items:   []SaleLineInput{{ProductID: 3, Quantity: 1, Price: decimal.NewFromInt(15)}},
	})
	assert.EqualError(t, err, "tx aborted")
}

func TestReturnPurchase_BoundedByRemainingQuantity(t *testing.T) {
	ctx := context.Background()
	creditorRef := domain.CreditorRef{ID: 7, Name: "Acme"}
	purchase := &domain.Purchase{
		ID: 11, UserID: 1, ProductName: "soap", ProductID: 3,
		Payment: domain.PaymentCredit, Creditor: &creditorRef,
		Quantity: 10, PerPieceCost: decimal.NewFromInt(10),
	}

	t.Run("exceeds remaining", func(t *testing.T) {
		f := newPostingFixture()
		f.purchases.On("GetByID", ctx, int32(11)).Return(purchase, nil)
		f.products.On("GetByID", ctx, int32(3)).Return(&domain.Product{ID: 3, UserID: 1, ProductName: "soap", NumberInStock: 20}, nil)
		f.purchaseRets.On("SumReturnedQuantity", ctx, int32(11)).Return(int32(4), nil)

		_, err := f.svc.ReturnPurchase(ctx, 1, PurchaseReturnInput{
			PurchaseID: 11, ProductID: 3, Quantity: 7, PerPieceCost: decimal.NewFromInt(10),
		})
		assert.ErrorIs(t, err, domain.ErrExceedsOriginal)
	})

	t.Run("within remaining", func(t *testing.T) {
		f := newPostingFixture()
		f.purchases.On("GetByID", ctx, int32(11)).Return(purchase, nil)
		f.products.On("GetByID", ctx, int32(3)).Return(&domain.Product{ID: 3, UserID: 1, ProductName: "soap", NumberInStock: 20}, nil)
		f.purchaseRets.On("SumReturnedQuantity", ctx, int32(11)).Return(int32(4), nil)
		f.expectCommit(ctx, 1)

		ret, err := f.svc.ReturnPurchase(ctx, 1, PurchaseReturnInput{
			PurchaseID: 11, ProductID: 3, Quantity: 6, PerPieceCost: decimal.NewFromInt(10),
		})
		require.NoError(t, err)
		assert.True(t, ret.TotalAmount.Equal(decimal.NewFromInt(60)))

		// Credit purchase return rolls the creditor's due back.
		plan := f.committedPlans[0]
		increments := planOps(plan, domain.OpIncrement)
		var creditorDelta decimal.Decimal
		for _, op := range increments {
			if op.Collection == domain.CollectionCreditors {
				creditorDelta = op.Delta
			}
		}
		assert.True(t, creditorDelta.Equal(decimal.NewFromInt(-60)))
	})
}

func TestReturnSale_BoundedBySoldQuantity(t *testing.T) {
	ctx := context.Background()
	sale := &domain.Sale{
		ID: 21, UserID: 1, Payment: domain.PaymentCash,
		Items: []domain.SaleItem{{ProductID: 3, ProductName: "soap", Quantity: 4, Price: decimal.NewFromInt(15)}},
	}

	t.Run("product not in sale", func(t *testing.T) {
		f := newPostingFixture()
		f.sales.On("GetByID", ctx, int32(21)).Return(sale, nil)
		f.products.On("GetByID", ctx, int32(9)).Return(&domain.Product{ID: 9, UserID: 1, ProductName: "brush"}, nil)

		_, err := f.svc.ReturnSale(ctx, 1, SalesReturnInput{
			SaleID: 21, ProductID: 9, Quantity: 1, Price: decimal.NewFromInt(40),
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("exceeds sold", func(t *testing.T) {
		f := newPostingFixture()
		f.sales.On("GetByID", ctx, int32(21)).Return(sale, nil)
		f.products.On("GetByID", ctx, int32(3)).Return(&domain.Product{ID: 3, UserID: 1, ProductName: "soap", NumberInStock: 2}, nil)
		f.salesRets.On("SumReturnedQuantity", ctx, int32(21), int32(3)).Return(int32(2), nil)

		_, err := f.svc.ReturnSale(ctx, 1, SalesReturnInput{
			SaleID: 21, ProductID: 3, Quantity: 3, Price: decimal.NewFromInt(15),
		})
		assert.ErrorIs(t, err, domain.ErrExceedsOriginal)
	})

	t.Run("restocks product", func(t *testing.T) {
		f := newPostingFixture()
		f.sales.On("GetByID", ctx, int32(21)).Return(sale, nil)
		f.products.On("GetByID", ctx, int32(3)).Return(&domain.Product{ID: 3, UserID: 1, ProductName: "soap", NumberInStock: 2}, nil)
		f.salesRets.On("SumReturnedQuantity", ctx, int32(21), int32(3)).Return(int32(0), nil)
		f.expectCommit(ctx, 1)

		ret, err := f.svc.ReturnSale(ctx, 1, SalesReturnInput{
			SaleID: 21, ProductID: 3, Quantity: 2, Price: decimal.NewFromInt(15),
		})
		require.NoError(t, err)
		assert.True(t, ret.TotalAmount.Equal(decimal.NewFromInt(30)))

		increments := planOps(f.committedPlans[0], domain.OpIncrement)
		require.Len(t, increments, 1)
		assert.Equal(t, domain.CollectionProducts, increments[0].Collection)
		assert.True(t, increments[0].Delta.Equal(decimal.NewFromInt(2)))
	})
}

func TestRecordLiability_AddsSimpleInterest(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()
	f.expectCommit(ctx, 1)

	liability, err := f.svc.RecordLiability(ctx, 1, LiabilityInput{
		Name:         "bank loan",
		Amount:       decimal.NewFromInt(1200),
		InterestRate: decimal.NewFromInt(10),
		TimeMonths:   12,
		Source:       domain.PaymentBank,
	})
	require.NoError(t, err)
	// 1200 + 1200*10%*1yr = 1320
	assert.True(t, liability.Amount.Equal(decimal.NewFromInt(1320)))

	inserts := planOps(f.committedPlans[0], domain.OpInsert)
	var entry *domain.LedgerEntry
	for _, op := range inserts {
		if e, ok := op.Document.(*domain.LedgerEntry); ok {
			entry = e
		}
	}
	require.NotNil(t, entry)
	assert.Equal(t, domain.AccountBank, entry.Account)
	assert.Equal(t, domain.DirectionDebit, entry.Direction)
	// Only the principal arrives; interest is owed, not received.
	assert.True(t, entry.Amount.Equal(decimal.NewFromInt(1200)))
}

func TestSettleLiability(t *testing.T) {
	ctx := context.Background()

	t.Run("amount exceeds balance", func(t *testing.T) {
		f := newPostingFixture()
		f.liabilities.On("GetByID", ctx, int32(5)).Return(&domain.Liability{ID: 5, UserID: 1, Name: "loan", Amount: decimal.NewFromInt(100)}, nil)

		_, err := f.svc.SettleLiability(ctx, 1, 5, SettlementInput{
			Amount: decimal.NewFromInt(150), Payment: domain.PaymentCash,
		})
		assert.ErrorIs(t, err, domain.ErrAmountExceedsBalance)
	})

	t.Run("success decrements balance", func(t *testing.T) {
		f := newPostingFixture()
		f.liabilities.On("GetByID", ctx, int32(5)).Return(&domain.Liability{ID: 5, UserID: 1, Name: "loan", Amount: decimal.NewFromInt(100)}, nil)
		f.expectBalance(ctx, 1, domain.AccountCash, 200, 0)
		f.expectCommit(ctx, 1)

		liability, err := f.svc.SettleLiability(ctx, 1, 5, SettlementInput{
			Amount: decimal.NewFromInt(60), Payment: domain.PaymentCash,
		})
		require.NoError(t, err)
		assert.True(t, liability.Amount.Equal(decimal.NewFromInt(40)))
	})
}

func TestAcquireAsset(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate name", func(t *testing.T) {
		f := newPostingFixture()
		f.assets.On("GetByName", ctx, int32(1), "truck").Return(&domain.Asset{ID: 2, UserID: 1, Name: "truck"}, nil)

		_, err := f.svc.AcquireAsset(ctx, 1, AcquireAssetInput{
			Name: "truck", Amount: decimal.NewFromInt(5000),
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateAsset)
	})

	t.Run("cash funded requires amount plus expenses", func(t *testing.T) {
		f := newPostingFixture()
		f.assets.On("GetByName", ctx, int32(1), "truck").Return(nil, domain.ErrNotFound)
		f.expectBalance(ctx, 1, domain.AccountCash, 5100, 0)

		_, err := f.svc.AcquireAsset(ctx, 1, AcquireAssetInput{
			Name: "truck", Amount: decimal.NewFromInt(5000), OtherExpenses: decimal.NewFromInt(200),
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})

	t.Run("creditor funded increments due", func(t *testing.T) {
		f := newPostingFixture()
		f.assets.On("GetByName", ctx, int32(1), "truck").Return(nil, domain.ErrNotFound)
		f.creditors.On("GetByID", ctx, int32(7)).Return(&domain.Creditor{ID: 7, UserID: 1, Name: "Acme"}, nil)
		f.expectCommit(ctx, 1)

		_, err := f.svc.AcquireAsset(ctx, 1, AcquireAssetInput{
			Name: "truck", Amount: decimal.NewFromInt(5000), CreditorID: 7,
		})
		require.NoError(t, err)

		increments := planOps(f.committedPlans[0], domain.OpIncrement)
		require.Len(t, increments, 1)
		assert.True(t, increments[0].Delta.Equal(decimal.NewFromInt(5000)))
	})
}

func TestGivePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("insufficient cash", func(t *testing.T) {
		f := newPostingFixture()
		f.creditors.On("GetByID", ctx, int32(7)).Return(&domain.Creditor{ID: 7, UserID: 1, Name: "Acme", Due: decimal.NewFromInt(100)}, nil)
		f.expectBalance(ctx, 1, domain.AccountCash, 30, 0)

		_, err := f.svc.GivePayment(ctx, 1, 7, decimal.NewFromInt(50))
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})

	t.Run("success", func(t *testing.T) {
		f := newPostingFixture()
		f.creditors.On("GetByID", ctx, int32(7)).Return(&domain.Creditor{ID: 7, UserID: 1, Name: "Acme", Due: decimal.NewFromInt(100)}, nil)
		f.expectBalance(ctx, 1, domain.AccountCash, 200, 0)
		f.expectCommit(ctx, 1)

		creditor, err := f.svc.GivePayment(ctx, 1, 7, decimal.NewFromInt(50))
		require.NoError(t, err)
		assert.True(t, creditor.Due.Equal(decimal.NewFromInt(50)))

		plan := f.committedPlans[0]
		require.Len(t, planOps(plan, domain.OpGuardBalance), 1)
		increments := planOps(plan, domain.OpIncrement)
		require.Len(t, increments, 1)
		assert.True(t, increments[0].Delta.Equal(decimal.NewFromInt(-50)))
	})
}

func TestReceivePayment(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	f.customers.On("GetByID", ctx, int32(4)).Return(&domain.Customer{ID: 4, UserID: 1, Name: "Bala", Due: decimal.NewFromInt(80)}, nil)
	f.expectCommit(ctx, 1)

	customer, err := f.svc.ReceivePayment(ctx, 1, 4, decimal.NewFromInt(30))
	require.NoError(t, err)
	assert.True(t, customer.Due.Equal(decimal.NewFromInt(50)))

	inserts := planOps(f.committedPlans[0], domain.OpInsert)
	require.Len(t, inserts, 1)
	entry := inserts[0].Document.(*domain.LedgerEntry)
	assert.Equal(t, domain.DirectionDebit, entry.Direction)
	assert.Equal(t, "Bala", entry.Source)
}

func TestRecordExpense_CreatesCategoryWhenMissing(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	f.expectBalance(ctx, 1, domain.AccountCash, 100, 0)
	f.categories.On("GetByName", ctx, int32(1), "rent").Return(nil, domain.ErrNotFound)
	f.expectCommit(ctx, 1)

	_, err := f.svc.RecordExpense(ctx, 1, ExpenseInput{Name: "rent", Amount: decimal.NewFromInt(40)})
	require.NoError(t, err)

	inserts := planOps(f.committedPlans[0], domain.OpInsert)
	var sawCategory bool
	for _, op := range inserts {
		if op.Collection == domain.CollectionExpenseCategories {
			sawCategory = true
		}
	}
	assert.True(t, sawCategory)
}

func TestRecordDrawing(t *testing.T) {
	ctx := context.Background()

	t.Run("cash insufficient", func(t *testing.T) {
		f := newPostingFixture()
		f.expectBalance(ctx, 1, domain.AccountCash, 10, 0)

		_, err := f.svc.RecordDrawing(ctx, 1, DrawingInput{
			Kind: domain.DrawingCash, Amount: decimal.NewFromInt(50),
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})

	t.Run("stock lines total and decrement", func(t *testing.T) {
		f := newPostingFixture()
		f.products.On("GetByID", ctx, int32(3)).Return(&domain.Product{ID: 3, UserID: 1, ProductName: "soap", NumberInStock: 10}, nil)
		f.expectCommit(ctx, 1)

		drawing, err := f.svc.RecordDrawing(ctx, 1, DrawingInput{
			Kind:  domain.DrawingStock,
			Items: []DrawingLineInput{{ProductID: 3, Quantity: 2, Price: decimal.NewFromInt(15)}},
		})
		require.NoError(t, err)
		assert.True(t, drawing.Amount.Equal(decimal.NewFromInt(30)))

		plan := f.committedPlans[0]
		require.Len(t, planOps(plan, domain.OpGuardStock), 1)
		increments := planOps(plan, domain.OpIncrement)
		require.Len(t, increments, 1)
		assert.True(t, increments[0].Delta.Equal(decimal.NewFromInt(-2)))
	})

	t.Run("unknown kind", func(t *testing.T) {
		f := newPostingFixture()
		_, err := f.svc.RecordDrawing(ctx, 1, DrawingInput{Kind: "gold"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
