package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"debitit-backend/internal/domain"
	"debitit-backend/internal/logger"
	"debitit-backend/internal/repository"
	"debitit-backend/internal/utils"
)

// AcquireAssetInput buys a new asset, funded by cash or through a creditor.
type AcquireAssetInput struct {
	Name          string
	Amount        decimal.Decimal
	OtherExpenses decimal.Decimal
	CreditorID    int32
}

// GrowAssetInput invests more into an existing asset.
type GrowAssetInput struct {
	Amount        decimal.Decimal
	OtherExpenses decimal.Decimal
	CreditorID    int32
}

// LiabilityInput draws a loan down into cash or bank.
type LiabilityInput struct {
	Name          string
	Amount        decimal.Decimal
	InterestRate  decimal.Decimal
	TimeMonths    int32
	Source        domain.Payment
	OtherExpenses decimal.Decimal
}

// SettlementInput pays part of a liability off.
type SettlementInput struct {
	Amount  decimal.Decimal
	Payment domain.Payment
}

// PurchaseInput records buying stock. Either NewProduct is set (first
// purchase creates the product) or ProductID names an existing one.
type PurchaseInput struct {
	ProductName          string
	Payment              domain.Payment
	CreditorID           int32
	ProductID            int32
	NewProduct           bool
	Quantity             int32
	PerPieceCost         decimal.Decimal
	PerPieceSellingPrice decimal.Decimal
	OtherExpenses        decimal.Decimal
}

// SaleLineInput is one product line of a sale.
type SaleLineInput struct {
	ProductID int32
	Quantity  int32
	Price     decimal.Decimal
}

// SaleInput records selling stock, one or more lines.
type SaleInput struct {
	Items         []SaleLineInput
	Payment       domain.Payment
	CustomerID    int32
	OtherExpenses decimal.Decimal
}

// PurchaseReturnInput sends purchased stock back.
type PurchaseReturnInput struct {
	PurchaseID   int32
	ProductID    int32
	Quantity     int32
	PerPieceCost decimal.Decimal
}

// SalesReturnInput takes sold stock back.
type SalesReturnInput struct {
	SaleID    int32
	ProductID int32
	Quantity  int32
	Price     decimal.Decimal
}

// ExpenseInput records a cash expense under a category, creating the
// category when it does not exist yet.
type ExpenseInput struct {
	Name   string
	Amount decimal.Decimal
}

// DrawingLineInput is one product line of a stock drawing.
type DrawingLineInput struct {
	ProductID int32
	Quantity  int32
	Price     decimal.Decimal
}

// DrawingInput withdraws cash or stock for the owner's personal use.
type DrawingInput struct {
	Kind   domain.DrawingKind
	Amount decimal.Decimal
	Items  []DrawingLineInput
}

type postingService struct {
	writer             repository.AtomicWriter
	ledgerRepo         repository.LedgerRepository
	creditorRepo       repository.CreditorRepository
	customerRepo       repository.CustomerRepository
	productRepo        repository.ProductRepository
	purchaseRepo       repository.PurchaseRepository
	purchaseReturnRepo repository.PurchaseReturnRepository
	saleRepo           repository.SaleRepository
	salesReturnRepo    repository.SalesReturnRepository
	assetRepo          repository.AssetRepository
	liabilityRepo      repository.LiabilityRepository
	categoryRepo       repository.ExpenseCategoryRepository
}

func NewPostingService(
	writer repository.AtomicWriter,
	ledgerRepo repository.LedgerRepository,
	creditorRepo repository.CreditorRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
	purchaseReturnRepo repository.PurchaseReturnRepository,
	saleRepo repository.SaleRepository,
	salesReturnRepo repository.SalesReturnRepository,
	assetRepo repository.AssetRepository,
	liabilityRepo repository.LiabilityRepository,
	categoryRepo repository.ExpenseCategoryRepository,
) PostingService {
	return &postingService{
		writer:             writer,
		ledgerRepo:         ledgerRepo,
		creditorRepo:       creditorRepo,
		customerRepo:       customerRepo,
		productRepo:        productRepo,
		purchaseRepo:       purchaseRepo,
		purchaseReturnRepo: purchaseReturnRepo,
		saleRepo:           saleRepo,
		salesReturnRepo:    salesReturnRepo,
		assetRepo:          assetRepo,
		liabilityRepo:      liabilityRepo,
		categoryRepo:       categoryRepo,
	}
}

// netAvailable computes the owner's current net balance for an account from
// the scoped per-direction aggregates.
func (s *postingService) netAvailable(ctx context.Context, userID int32, account domain.Account) (decimal.Decimal, error) {
	debit, err := s.ledgerRepo.SumByDirection(ctx, userID, account, domain.DirectionDebit)
	if err != nil {
		return decimal.Zero, err
	}
	credit, err := s.ledgerRepo.SumByDirection(ctx, userID, account, domain.DirectionCredit)
	if err != nil {
		return decimal.Zero, err
	}
	return debit.Sub(credit), nil
}

// requireFunds fast-fails a posting whose funding source cannot cover the
// amount. The plan's guard op re-checks inside the commit transaction.
func (s *postingService) requireFunds(ctx context.Context, userID int32, account domain.Account, amount decimal.Decimal) error {
	net, err := s.netAvailable(ctx, userID, account)
	if err != nil {
		return err
	}
	if net.LessThan(amount) {
		return domain.ErrInsufficientFunds
	}
	return nil
}

func (s *postingService) resolveCreditor(ctx context.Context, userID, creditorID int32) (*domain.Creditor, error) {
	creditor, err := s.creditorRepo.GetByID(ctx, creditorID)
	if err != nil {
		return nil, err
	}
	if creditor.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return creditor, nil
}

func (s *postingService) resolveCustomer(ctx context.Context, userID, customerID int32) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return customer, nil
}

func (s *postingService) resolveProduct(ctx context.Context, userID, productID int32) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return product, nil
}

func (s *postingService) AcquireAsset(ctx context.Context, userID int32, in AcquireAssetInput) (*domain.Asset, error) {
	logger.EnterMethod("postingService.AcquireAsset", "userID", userID, "name", in.Name)

	if in.Name == "" {
		return nil, domain.ErrValidation
	}
	if _, err := s.assetRepo.GetByName(ctx, userID, in.Name); err == nil {
		return nil, domain.ErrDuplicateAsset
	} else if err != domain.ErrNotFound {
		return nil, err
	}

	asset := &domain.Asset{
		UserID:        userID,
		Name:          in.Name,
		Amount:        in.Amount,
		OtherExpenses: in.OtherExpenses,
	}

	var plan domain.WritePlan
	if in.CreditorID != 0 {
		if _, err := s.resolveCreditor(ctx, userID, in.CreditorID); err != nil {
			return nil, err
		}
		plan = domain.WritePlan{
			domain.Insert(domain.CollectionAssets, asset),
			domain.Increment(domain.CollectionCreditors, in.CreditorID, "due", in.Amount),
		}
	} else {
		total := in.Amount.Add(in.OtherExpenses)
		if err := s.requireFunds(ctx, userID, domain.AccountCash, total); err != nil {
			return nil, err
		}
		plan = domain.WritePlan{
			domain.GuardBalance(domain.AccountCash, total),
			domain.Insert(domain.CollectionAssets, asset),
			domain.Insert(domain.CollectionLedgerEntries, &domain.LedgerEntry{
				UserID:    userID,
				Account:   domain.AccountCash,
				Source:    in.Name,
				Direction: domain.DirectionCredit,
				Amount:    total,
			}),
		}
	}

	if err := s.writer.Commit(ctx, userID, plan); err != nil {
		logger.ExitMethodWithError("postingService.AcquireAsset", err, "userID", userID)
		return nil, err
	}
	return asset, nil
}

func (s *postingService) GrowAsset(ctx context.Context, userID, assetID int32, in GrowAssetInput) (*domain.Asset, error) {
	asset, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset.UserID != userID {
		return nil, domain.ErrForbidden
	}

	var plan domain.WritePlan
	if in.CreditorID != 0 {
		if _, err := s.resolveCreditor(ctx, userID, in.CreditorID); err != nil {
			return nil, err
		}
		plan = domain.WritePlan{
			domain.Increment(domain.CollectionAssets, assetID, "amount", in.Amount),
			domain.Increment(domain.CollectionCreditors, in.CreditorID, "due", in.Amount),
		}
	} else {
		total := in.Amount.Add(in.OtherExpenses)
		if err := s.requireFunds(ctx, userID, domain.AccountCash, total); err != nil {
			return nil, err
		}
		plan = domain.WritePlan{
			domain.GuardBalance(domain.AccountCash, total),
			domain.Increment(domain.CollectionAssets, assetID, "amount", in.Amount),
			domain.Insert(domain.CollectionLedgerEntries, &domain.LedgerEntry{
				UserID:    userID,
				Account:   domain.AccountCash,
				Source:    asset.Name,
				Direction: domain.DirectionCredit,
				Amount:    total,
			}),
		}
	}

	if err := s.writer.Commit(ctx, userID, plan); err != nil {
		return nil, err
	}
	asset.Amount = asset.Amount.Add(in.Amount)
	return asset, nil
}

func (s *postingService) RecordLiability(ctx context.Context, userID int32, in LiabilityInput) (*domain.Liability, error) {
	account, ok := in.Source.LedgerAccount()
	if !ok {
		return nil, domain.ErrValidation
	}

	interest := utils.InterestAmount(in.Amount, in.InterestRate, in.TimeMonths)
	liability := &domain.Liability{
		UserID:        userID,
		Name:          in.Name,
		Amount:        in.Amount.Add(interest),
		InterestRate:  in.InterestRate,
		TimeMonths:    in.TimeMonths,
		OtherExpenses: in.OtherExpenses,
	}

	plan := domain.WritePlan{
		domain.Insert(domain.CollectionLiabilities, liability),
		domain.Insert(domain.CollectionLedgerEntries, &domain.LedgerEntry{
			UserID:    userID,
			Account:   account,
			Source:    in.Name,
			Direction: domain.DirectionDebit,
			Amount:    in.Amount.Add(in.OtherExpenses),
		}),
	}

	if err := s.writer.Commit(ctx, userID, plan); err != nil {
		return nil, err
	}
	return liability, nil
}

func (s *postingService) SettleLiability(ctx context.Context, userID, liabilityID int32, in SettlementInput) (*domain.Liability, error) {
	liability, err := s.liabilityRepo.GetByID(ctx, liabilityID)
	if err != nil {
		return nil, err
	}
	if liability.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if in.Amount.GreaterThan(liability.Amount) {
		return nil, domain.ErrAmountExceedsBalance
	}

	account, ok := in.Payment.LedgerAccount()
	if !ok {
		return nil, domain.ErrValidation
	}
	if err := s.requireFunds(ctx, userID, account, in.Amount); err != nil {
		return nil, err
	}

	plan := domain.WritePlan{
		domain.GuardBalance(account, in.Amount),
		domain.Increment(domain.CollectionLiabilities, liabilityID, "amount", in.Amount.Neg()),
		domain.Insert(domain.CollectionLedgerEntries, &domain.LedgerEntry{
			UserID:    userID,
			Account:   account,
			Source:    liability.Name,
			Direction: domain.DirectionCredit,
			Amount:    in.Amount,
		}),
	}

	if err := s.writer.Commit(ctx, userID, plan); err != nil {
		return nil, err
	}
	liability.Amount = liability.Amount.Sub(in.Amount)
	return liability, nil
}

func (s *postingService) RecordPurchase(ctx context.Context, userID int32, in PurchaseInput) (*domain.Purchase, *domain.Product, error) {
	logger.EnterMethod("postingService.RecordPurchase", "userID", userID, "product", in.ProductName, "payment", in.Payment)

	if !in.NewProduct && in.ProductID == 0 {
		return nil, nil, domain.ErrValidation
	}

	total := utils.PurchaseTotal(in.Quantity, in.PerPieceCost, in.OtherExpenses)
	purchase := &domain.Purchase{
		UserID:               userID,
		Reference:            uuid.NewString(),
		ProductName:          in.ProductName,
		Payment:              in.Payment,
		Quantity:             in.Quantity,
		PerPieceCost:         in.PerPieceCost,
		PerPieceSellingPrice: in.PerPieceSellingPrice,
		OtherExpenses:        in.OtherExpenses,
		TotalCost:            total,
	}

	var product *domain.Product
	var productOp domain.WriteOp
	if in.NewProduct {
		if _, err := s.productRepo.GetByName(ctx, userID, in.ProductName); err == nil {
			return nil, nil, domain.ErrDuplicateProduct
		} else if err != domain.ErrNotFound {
			return nil, nil, err
		}
		product = &domain.Product{
			UserID:               userID,
			ProductName:          in.ProductName,
			NumberInStock:        in.Quantity,
			PerPieceCost:         in.PerPieceCost,
			PerPieceSellingPrice: in.PerPieceSellingPrice,
		}
		productOp = domain.Insert(domain.CollectionProducts, product)
	} else {
		var err error
		product, err = s.resolveProduct(ctx, userID, in.ProductID)
		if err != nil {
			return nil, nil, err
		}
		purchase.ProductID = product.ID
		productOp = domain.Increment(domain.CollectionProducts, product.ID, "numberInStock", decimal.NewFromInt32(in.Quantity))
	}

	var plan domain.WritePlan
	if in.Payment == domain.PaymentCredit {
		if in.CreditorID == 0 {
			return nil, nil, domain.ErrValidation
		}
		creditor, err := s.resolveCreditor(ctx, userID, in.CreditorID)
		if err != nil {
			return nil, nil, err
		}
		ref := creditor.Ref()
		purchase.Creditor = &ref
		plan = domain.WritePlan{
			domain.Insert(domain.CollectionPurchases, purchase),
			productOp,
			domain.Increment(domain.CollectionCreditors, creditor.ID, "due", total),
		}
	} else {
		account, ok := in.Payment.LedgerAccount()
		if !ok {
			return nil, nil, domain.ErrValidation
		}
		if err := s.requireFunds(ctx, userID, account, total); err != nil {
			return nil, nil, err
		}
		plan = domain.WritePlan{
			domain.GuardBalance(account, total),
			domain.Insert(domain.CollectionPurchases, purchase),
			productOp,
			domain.Insert(domain.CollectionLedgerEntries, &domain.LedgerEntry{
				UserID:    userID,
				Account:   account,
				Source:    in.ProductName,
				Direction: domain.DirectionCredit,
				Amount:    total,
			}),
		}
	}

	if err := s.writer.Commit(ctx, userID, plan); err != nil {
		logger.ExitMethodWithError("postingService.RecordPurchase", err, "userID", userID)
		return nil, nil, err
	}
	if !in.NewProduct {
		product.NumberInStock += in.Quantity
	}
	if purchase.ProductID == 0 {
		purchase.ProductID = product.ID
	}
	return purchase, product, nil
}

func (s *postingService) RecordSale(ctx context.Context, userID int32, in SaleInput) (*domain.Sale, error) {
	logger.EnterMethod("postingService.RecordSale", "userID", userID, "lines", len(in.Items), "payment", in.Payment)

	if len(in.Items) == 0 {
		return nil, domain.ErrValidation
	}

	sale := &domain.Sale{
		UserID:        userID,
		Reference:     uuid.NewString(),
		Payment:       in.Payment,
		OtherExpenses: in.OtherExpenses,
	}

	plan := domain.WritePlan{domain.Insert(domain.CollectionSales, sale)}
	for _, line := range in.Items {
		product, err := s.resolveProduct(ctx, userID, line.ProductID)
		if err != nil {
			return nil, err
		}
		if line.Quantity > product.NumberInStock {
			return nil, domain.ErrInsufficientStock
		}
		sale.Items = append(sale.Items, domain.SaleItem{
			ProductID:   product.ID,
			ProductName: product.ProductName,
			Quantity:    line.Quantity,
			Price:       line.Price,
		})
		plan = append(plan,
			domain.GuardStock(product.ID, line.Quantity),
			domain.Increment(domain.CollectionProducts, product.ID, "numberInStock", decimal.NewFromInt32(line.Quantity).Neg()),
		)
	}
	sale.TotalAmount = utils.SaleTotal(sale.Items, in.OtherExpenses)

	if in.CustomerID != 0 {
		customer, err := s.resolveCustomer(ctx, userID, in.CustomerID)
		if err != nil {
			return nil, err
		}
		ref := customer.Ref()
		sale.Customer = &ref
	} else if in.Payment == domain.PaymentCredit {
		return nil, domain.ErrValidation
	}

	if err := s.writer.Commit(ctx, userID, plan); err != nil {
		logger.ExitMethodWithError("postingService.RecordSale", err, "userID", userID)
		return nil, err
	}
	return sale, nil
}

func (s *postingService) ReturnPurchase(ctx context.Context, userID int32, in PurchaseReturnInput) (*domain.PurchaseReturn, error) {
	purchase, err := s.purchaseRepo.GetByID(ctx, in.PurchaseID)
	if err != nil {
		return nil, err
	}
	if purchase.UserID != userID {
		return nil, domain.ErrForbidden
	}
	product, err := s.resolveProduct(ctx, userID, in.ProductID)
	if err != nil {
		return nil, err
	}

	returned, err := s.purchaseReturnRepo.SumReturnedQuantity(ctx, purchase.ID)
	if err != nil {
		return nil, err
	}
	if in.Quantity > purchase.Quantity-returned {
		return nil, domain.ErrExceedsOriginal
	}
	if in.Quantity > product.NumberInStock {
		return nil, domain.ErrInsufficientStock
	}

	totalAmount := utils.LineTotal(in.Quantity, in.PerPieceCost)
	purchaseReturn := &domain.PurchaseReturn{
		UserID:       userID,
		Purchase:     *purchase,
		Quantity:     in.Quantity,
		PerPieceCost: in.PerPieceCost,
		TotalAmount:  totalAmount,
	}

	plan := domain.WritePlan{
		domain.GuardStock(product.ID, in.Quantity),
		domain.Insert(domain.CollectionPurchaseReturns, purchaseReturn),
		domain.Increment(domain.CollectionProducts, product.ID, "numberInStock", decimal.NewFromInt32(in.Quantity).Neg()),
	}
	if purchase.Payment == domain.PaymentCredit && purchase.Creditor != nil {
		plan = append(plan, domain.Increment(domain.CollectionCreditors, purchase.Creditor.ID, "due", totalAmount.Neg()))
	}

	if err := s.writer.Commit(ctx, userID, plan); err != nil {
		return nil, err
	}
	return purchaseReturn, nil
}

func (s *postingService) ReturnSale(ctx context.Context, userID int32, in SalesReturnInput) (*domain.SalesReturn, error) {
	sale, err := s.saleRepo.GetByID(ctx, in.SaleID)
	if err != nil {
		return nil, err
	}
	if sale.UserID != userID {
		return nil, domain.ErrForbidden
	}
	product, err := s.resolveProduct(ctx, userID, in.ProductID)
	if err != nil {
		return nil, err
	}

	soldQuantity := sale.QuantityOf(product.ID)
	if soldQuantity == 0 {
		return nil, domain.ErrValidation
	}
	returned, err := s.salesReturnRepo.SumReturnedQuantity(ctx, sale.ID, product.ID)
	if err != nil {
		return nil, err
	}
	if in.Quantity > soldQuantity-returned {
		return nil, domain.ErrExceedsOriginal
	}

	salesReturn := &domain.SalesReturn{
		UserID:      userID,
		Sale:        *sale,
		ProductID:   product.ID,
		Quantity:    in.Quantity,
		Price:       in.Price,
		TotalAmount: utils.LineTotal(in.Quantity, in.Price),
	}

	plan := domain.WritePlan{
		domain.Insert(domain.CollectionSalesReturns, salesReturn),
		domain.Increment(domain.CollectionProducts, product.ID, "numberInStock", decimal.NewFromInt32(in.Quantity)),
	}

	if err := s.writer.Commit(ctx, userID, plan); err != nil {
		return nil, err
	}
	return salesReturn, nil
}

func (s *postingService) GivePayment(ctx context.Context, userID, creditorID int32, amount decimal.Decimal) (*domain.Creditor, error) {
	creditor, err := s.resolveCreditor(ctx, userID, creditorID)
	if err != nil {
		return nil, err
	}
	if err := s.requireFunds(ctx, userID, domain.AccountCash, amount); err != nil {
		return nil, err
	}

	plan := domain.WritePlan{
		domain.GuardBalance(domain.AccountCash, amount),
		domain.Insert(domain.CollectionLedgerEntries, &domain.LedgerEntry{
			UserID:    userID,
			Account:   domain.AccountCash,
			Source:    creditor.Name,
			Direction: domain.DirectionCredit,
			Amount:    amount,
		}),
		domain.Increment(domain.CollectionCreditors, creditor.ID, "due", amount.Neg()),
	}

	if err := s.writer.Commit(ctx, userID, plan); err != nil {
		return nil, err
	}
	creditor.Due = creditor.Due.Sub(amount)
	return creditor, nil
}

func (s *postingService) ReceivePayment(ctx context.Context, userID, customerID int32, amount decimal.Decimal) (*domain.Customer, error) {
	customer, err := s.resolveCustomer(ctx, userID, customerID)
	if err != nil {
		return nil, err
	}

	plan := domain.WritePlan{
		domain.Insert(domain.CollectionLedgerEntries, &domain.LedgerEntry{
			UserID:    userID,
			Account:   domain.AccountCash,
			Source:    customer.Name,
			Direction: domain.DirectionDebit,
			Amount:    amount,
		}),
		domain.Increment(domain.CollectionCustomers, customer.ID, "due", amount.Neg()),
	}

	if err := s.writer.Commit(ctx, userID, plan); err != nil {
		return nil, err
	}
	customer.Due = customer.Due.Sub(amount)
	return customer, nil
}

func (s *postingService) RecordExpense(ctx context.Context, userID int32, in ExpenseInput) (*domain.Expense, error) {
	if in.Name == "" {
		return nil, domain.ErrValidation
	}
	if err := s.requireFunds(ctx, userID, domain.AccountCash, in.Amount); err != nil {
		return nil, err
	}

	expense := &domain.Expense{
		UserID: userID,
		Name:   in.Name,
		Amount: in.Amount,
	}

	plan := domain.WritePlan{
		domain.GuardBalance(domain.AccountCash, in.Amount),
		domain.Insert(domain.CollectionExpenses, expense),
	}
	if _, err := s.categoryRepo.GetByName(ctx, userID, in.Name); err == domain.ErrNotFound {
		plan = append(plan, domain.Insert(domain.CollectionExpenseCategories, &domain.ExpenseCategory{
			UserID: userID,
			Name:   in.Name,
		}))
	} else if err != nil {
		return nil, err
	}
	plan = append(plan, domain.Insert(domain.CollectionLedgerEntries, &domain.LedgerEntry{
		UserID:    userID,
		Account:   domain.AccountCash,
		Source:    in.Name,
		Direction: domain.DirectionCredit,
		Amount:    in.Amount,
	}))

	if err := s.writer.Commit(ctx, userID, plan); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *postingService) RecordDrawing(ctx context.Context, userID int32, in DrawingInput) (*domain.Drawing, error) {
	switch in.Kind {
	case domain.DrawingCash:
		if err := s.requireFunds(ctx, userID, domain.AccountCash, in.Amount); err != nil {
			return nil, err
		}
		drawing := &domain.Drawing{
			UserID: userID,
			Name:   domain.DrawingCash,
			Amount: in.Amount,
		}
		plan := domain.WritePlan{
			domain.GuardBalance(domain.AccountCash, in.Amount),
			domain.Insert(domain.CollectionDrawings, drawing),
			domain.Insert(domain.CollectionLedgerEntries, &domain.LedgerEntry{
				UserID:    userID,
				Account:   domain.AccountCash,
				Source:    "drawings",
				Direction: domain.DirectionCredit,
				Amount:    in.Amount,
			}),
		}
		if err := s.writer.Commit(ctx, userID, plan); err != nil {
			return nil, err
		}
		return drawing, nil

	case domain.DrawingStock:
		if len(in.Items) == 0 {
			return nil, domain.ErrValidation
		}
		drawing := &domain.Drawing{
			UserID: userID,
			Name:   domain.DrawingStock,
		}
		plan := domain.WritePlan{domain.Insert(domain.CollectionDrawings, drawing)}
		total := decimal.Zero
		for _, line := range in.Items {
			product, err := s.resolveProduct(ctx, userID, line.ProductID)
			if err != nil {
				return nil, err
			}
			if line.Quantity > product.NumberInStock {
				return nil, domain.ErrInsufficientStock
			}
			total = total.Add(utils.LineTotal(line.Quantity, line.Price))
			drawing.Items = append(drawing.Items, domain.DrawingItem{
				ProductID: product.ID,
				Quantity:  line.Quantity,
				Price:     line.Price,
			})
			plan = append(plan,
				domain.GuardStock(product.ID, line.Quantity),
				domain.Increment(domain.CollectionProducts, product.ID, "numberInStock", decimal.NewFromInt32(line.Quantity).Neg()),
			)
		}
		drawing.Amount = total
		if err := s.writer.Commit(ctx, userID, plan); err != nil {
			return nil, err
		}
		return drawing, nil
	}

	return nil, domain.ErrValidation
}
