package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset is something the business owns outright. Amount grows when more is
// invested into the same asset.
type Asset struct {
	ID            int32           `json:"id"`
	UserID        int32           `json:"user_id"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	OtherExpenses decimal.Decimal `json:"otherExpenses"`
	Date          time.Time       `json:"date"`
}
