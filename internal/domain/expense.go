package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a cash outflow recorded under a named category.
type Expense struct {
	ID     int32           `json:"id"`
	UserID int32           `json:"user_id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// ExpenseCategory names a bucket expenses can be recorded under.
type ExpenseCategory struct {
	ID     int32  `json:"id"`
	UserID int32  `json:"user_id"`
	Name   string `json:"name"`
}
