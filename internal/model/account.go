package model

import "github.com/shopspring/decimal"

// AccountType classifies accounts shown to the customer.
type AccountType string

const (
	AccountTypeChecking  AccountType = "Checking"
	AccountTypeSavings   AccountType = "Savings"
	AccountTypeBrokerage AccountType = "Brokerage"
	AccountTypeCredit    AccountType = "Credit"
)

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeBrokerage, AccountTypeCredit:
		return true
	}
	return false
}

// Account is a customer account. Credit balances are negative when money is owed.
type Account struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     AccountType     `json:"type"`
	Balance  decimal.Decimal `json:"balance"`
	Subtitle string          `json:"subtitle"`
}

// IsCredit reports whether the account is a credit line. Credit accounts
// never count toward liquid balance and cannot fund a transfer.
func (a Account) IsCredit() bool {
	return a.Type == AccountTypeCredit
}
