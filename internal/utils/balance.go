package utils

import (
	"github.com/shopspring/decimal"

	"debitit-backend/internal/domain"
)

// BalanceBreakdown provides both totals alongside the net figure.
type BalanceBreakdown struct {
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal
	Net         decimal.Decimal
}

// NetBalance sums signed ledger entries: debit total minus credit total.
// An empty slice nets to zero on both sides.
func NetBalance(entries []domain.LedgerEntry) decimal.Decimal {
	return Breakdown(entries).Net
}

// Breakdown partitions entries by direction and totals each side.
func Breakdown(entries []domain.LedgerEntry) BalanceBreakdown {
	debit := decimal.Zero
	credit := decimal.Zero
	for _, e := range entries {
		switch e.Direction {
		case domain.DirectionDebit:
			debit = debit.Add(e.Amount)
		case domain.DirectionCredit:
			credit = credit.Add(e.Amount)
		}
	}
	return BalanceBreakdown{
		DebitTotal:  debit,
		CreditTotal: credit,
		Net:         debit.Sub(credit),
	}
}

// InterestAmount computes simple interest for a loan:
// principal × rate × (months/12) / 100.
func InterestAmount(principal, rate decimal.Decimal, months int32) decimal.Decimal {
	years := decimal.NewFromInt32(months).Div(decimal.NewFromInt(12))
	return principal.Mul(rate).Mul(years).Div(decimal.NewFromInt(100))
}

// PurchaseTotal computes quantity × perPieceCost + otherExpenses. Totals are
// always derived server-side from the raw inputs.
func PurchaseTotal(quantity int32, perPieceCost, otherExpenses decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt32(quantity).Mul(perPieceCost).Add(otherExpenses)
}

// SaleTotal computes Σ(quantity × price) over the items + otherExpenses.
func SaleTotal(items []domain.SaleItem, otherExpenses decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(decimal.NewFromInt32(item.Quantity).Mul(item.Price))
	}
	return total.Add(otherExpenses)
}

// LineTotal computes quantity × unit price for a single return or drawing
// line.
func LineTotal(quantity int32, price decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt32(quantity).Mul(price)
}
