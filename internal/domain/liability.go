package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Liability is a loan drawn down into cash or bank. Amount holds
// principal plus the up-front simple interest for the full term, and shrinks
// as settlements are posted against it.
type Liability struct {
	ID            int32           `json:"id"`
	UserID        int32           `json:"user_id"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	InterestRate  decimal.Decimal `json:"interestRate"`
	TimeMonths    int32           `json:"time"`
	OtherExpenses decimal.Decimal `json:"otherExpenses"`
	Date          time.Time       `json:"date"`
}
