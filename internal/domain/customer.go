package domain

import "github.com/shopspring/decimal"

// Customer is a buyer. Due is the running balance they owe the business; it
// is reduced when a payment is received.
type Customer struct {
	ID     int32           `json:"id"`
	UserID int32           `json:"user_id"`
	Name   string          `json:"name"`
	Mobile string          `json:"mobile"`
	Due    decimal.Decimal `json:"due"`
}

// CustomerRef is the frozen snapshot embedded in a sale at posting time.
type CustomerRef struct {
	ID     int32  `json:"id"`
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

func (c *Customer) Ref() CustomerRef {
	return CustomerRef{ID: c.ID, Name: c.Name, Mobile: c.Mobile}
}
