package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase records buying stock, paid by cash, bank or on credit. The
// creditor snapshot is frozen at posting time for audit purposes. Purchases
// are immutable once posted; corrections go through purchase returns.
type Purchase struct {
	ID                   int32           `json:"id"`
	UserID               int32           `json:"user_id"`
	Reference            string          `json:"reference"`
	ProductName          string          `json:"productName"`
	ProductID            int32           `json:"product_id"`
	Payment              Payment         `json:"payment"`
	Creditor             *CreditorRef    `json:"creditor,omitempty"`
	Quantity             int32           `json:"quantity"`
	PerPieceCost         decimal.Decimal `json:"perPieceCost"`
	PerPieceSellingPrice decimal.Decimal `json:"perPieceSellingPrice"`
	OtherExpenses        decimal.Decimal `json:"otherExpenses"`
	TotalCost            decimal.Decimal `json:"totalCost"`
	Date                 time.Time       `json:"date"`
}

// PurchaseReturn sends previously purchased stock back. It embeds the full
// originating purchase as posted, so later edits to live collections cannot
// change what this return was measured against.
type PurchaseReturn struct {
	ID           int32           `json:"id"`
	UserID       int32           `json:"user_id"`
	Purchase     Purchase        `json:"purchase"`
	Quantity     int32           `json:"quantity"`
	PerPieceCost decimal.Decimal `json:"perPieceCost"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Date         time.Time       `json:"date"`
}
