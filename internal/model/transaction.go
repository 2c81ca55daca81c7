package model

import "github.com/shopspring/decimal"

// Transaction is a posted card or account transaction shown on the dashboard.
type Transaction struct {
	ID        string          `json:"id"`
	Merchant  string          `json:"merchant"`
	Category  string          `json:"category"`
	DateLabel string          `json:"dateLabel"`
	Amount    decimal.Decimal `json:"amount"` // negative = debit, positive = credit
}

// IsDebit reports whether money left the account.
func (t Transaction) IsDebit() bool {
	return t.Amount.IsNegative()
}
