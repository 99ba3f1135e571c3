package domain

import "github.com/shopspring/decimal"

// Product tracks inventory for one item. Stock moves only through postings:
// purchases and sales returns add, sales, drawings and purchase returns
// remove.
type Product struct {
	ID                   int32           `json:"id"`
	UserID               int32           `json:"user_id"`
	ProductName          string          `json:"productName"`
	NumberInStock        int32           `json:"numberInStock"`
	PerPieceCost         decimal.Decimal `json:"perPieceCost"`
	PerPieceSellingPrice decimal.Decimal `json:"perPieceSellingPrice"`
}
