package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem is one line of a sale.
type SaleItem struct {
	ProductID   int32           `json:"product_id"`
	ProductName string          `json:"productName"`
	Quantity    int32           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// Sale records selling stock. A single-product sale is a one-item slice; the
// customer snapshot is frozen at posting time. Sales are immutable once
// posted; corrections go through sales returns.
type Sale struct {
	ID            int32           `json:"id"`
	UserID        int32           `json:"user_id"`
	Reference     string          `json:"reference"`
	Items         []SaleItem      `json:"items"`
	Payment       Payment         `json:"payment"`
	Customer      *CustomerRef    `json:"customer,omitempty"`
	OtherExpenses decimal.Decimal `json:"otherExpenses"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Date          time.Time       `json:"date"`
}

// SalesReturn takes sold stock back, embedding the originating sale as
// posted.
type SalesReturn struct {
	ID          int32           `json:"id"`
	UserID      int32           `json:"user_id"`
	Sale        Sale            `json:"sales"`
	ProductID   int32           `json:"product_id"`
	Quantity    int32           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Date        time.Time       `json:"date"`
}

// QuantityOf returns the quantity of the given product across the sale's
// items.
func (s *Sale) QuantityOf(productID int32) int32 {
	var total int32
	for _, item := range s.Items {
		if item.ProductID == productID {
			total += item.Quantity
		}
	}
	return total
}
