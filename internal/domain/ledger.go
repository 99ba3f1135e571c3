package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account identifies which money pool a ledger entry belongs to.
type Account string

const (
	AccountCash Account = "cash"
	AccountBank Account = "bank"
)

// Direction of a ledger entry. Amounts are always positive; the sign of the
// effect is carried here ("dr" = money in, "cr" = money out).
type Direction string

const (
	DirectionDebit  Direction = "dr"
	DirectionCredit Direction = "cr"
)

// LedgerEntry is a single cash or bank movement. Entries are insert-only and
// never mutated after posting.
type LedgerEntry struct {
	ID        int32           `json:"id"`
	UserID    int32           `json:"user_id"`
	Account   Account         `json:"account"`
	Source    string          `json:"source"`
	Direction Direction       `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
}

// Payment selects how a purchase, sale or settlement is funded.
type Payment string

const (
	PaymentCash   Payment = "cash"
	PaymentBank   Payment = "bank"
	PaymentCredit Payment = "credit"
)

// LedgerAccount maps a cash/bank payment method to its account. Returns false
// for credit, which moves no money at posting time.
func (p Payment) LedgerAccount() (Account, bool) {
	switch p {
	case PaymentCash:
		return AccountCash, true
	case PaymentBank:
		return AccountBank, true
	}
	return "", false
}
