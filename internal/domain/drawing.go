package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DrawingKind says what the owner withdrew from the business.
type DrawingKind string

const (
	DrawingCash  DrawingKind = "cash"
	DrawingStock DrawingKind = "stock"
)

// DrawingItem is one product line of a stock drawing.
type DrawingItem struct {
	ProductID int32           `json:"product_id"`
	Quantity  int32           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Drawing is an owner withdrawal of cash or stock for personal use.
type Drawing struct {
	ID     int32           `json:"id"`
	UserID int32           `json:"user_id"`
	Name   DrawingKind     `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Items  []DrawingItem   `json:"items,omitempty"`
	Date   time.Time       `json:"date"`
}
