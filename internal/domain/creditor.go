package domain

import "github.com/shopspring/decimal"

// Creditor is a supplier the business can buy from on credit. Due is the
// running balance owed to them.
type Creditor struct {
	ID      int32           `json:"id"`
	UserID  int32           `json:"user_id"`
	Name    string          `json:"name"`
	Contact string          `json:"contact"`
	Due     decimal.Decimal `json:"due"`
}

// CreditorRef is the frozen snapshot embedded in a credit purchase at posting
// time. It is never re-derived from the live creditor afterwards.
type CreditorRef struct {
	ID      int32  `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

func (c *Creditor) Ref() CreditorRef {
	return CreditorRef{ID: c.ID, Name: c.Name, Contact: c.Contact}
}
