package domain

import "github.com/shopspring/decimal"

// Collection names a persisted document set a write op targets.
type Collection string

const (
	CollectionLedgerEntries     Collection = "ledger_entries"
	CollectionCreditors         Collection = "creditors"
	CollectionCustomers         Collection = "customers"
	CollectionProducts          Collection = "products"
	CollectionPurchases         Collection = "purchases"
	CollectionPurchaseReturns   Collection = "purchase_returns"
	CollectionSales             Collection = "sales"
	CollectionSalesReturns      Collection = "sales_returns"
	CollectionAssets            Collection = "assets"
	CollectionLiabilities       Collection = "liabilities"
	CollectionExpenses          Collection = "expenses"
	CollectionExpenseCategories Collection = "expense_categories"
	CollectionDrawings          Collection = "drawings"
)

// OpKind discriminates write ops within a plan.
type OpKind string

const (
	OpInsert       OpKind = "insert"
	OpIncrement    OpKind = "increment"
	OpGuardBalance OpKind = "guard-balance"
	OpGuardStock   OpKind = "guard-stock"
)

// WriteOp is one step of an atomic posting. Insert carries the document to
// create; Increment adjusts a single numeric column by Delta (negative to
// decrement); the guard kinds re-check funding or stock sufficiency inside
// the commit transaction so two concurrent postings cannot both pass a
// pre-commit check and overspend.
type WriteOp struct {
	Op         OpKind          `json:"op"`
	Collection Collection      `json:"collection"`
	Document   any             `json:"document,omitempty"`
	ID         int32           `json:"id,omitempty"`
	Field      string          `json:"field,omitempty"`
	Delta      decimal.Decimal `json:"delta,omitempty"`
	Account    Account         `json:"account,omitempty"`
	Amount     decimal.Decimal `json:"amount,omitempty"`
	Quantity   int32           `json:"quantity,omitempty"`
}

// WritePlan is the ordered write set of one business event. Order is not
// semantically significant but is preserved for debuggability.
type WritePlan []WriteOp

func Insert(collection Collection, doc any) WriteOp {
	return WriteOp{Op: OpInsert, Collection: collection, Document: doc}
}

func Increment(collection Collection, id int32, field string, delta decimal.Decimal) WriteOp {
	return WriteOp{Op: OpIncrement, Collection: collection, ID: id, Field: field, Delta: delta}
}

// GuardBalance asserts, inside the commit transaction, that the owner's net
// balance on the account covers amount.
func GuardBalance(account Account, amount decimal.Decimal) WriteOp {
	return WriteOp{Op: OpGuardBalance, Collection: CollectionLedgerEntries, Account: account, Amount: amount}
}

// GuardStock asserts, inside the commit transaction, that the product still
// has at least quantity in stock.
func GuardStock(productID int32, quantity int32) WriteOp {
	return WriteOp{Op: OpGuardStock, Collection: CollectionProducts, ID: productID, Quantity: quantity}
}
