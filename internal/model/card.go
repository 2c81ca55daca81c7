package model

import "github.com/shopspring/decimal"

// CardDetails describes the debit card shown on the card tab.
type CardDetails struct {
	Name    string `json:"name"`
	Holder  string `json:"holder"`
	Last4   string `json:"last4"`
	Expiry  string `json:"expiry"`
	Network string `json:"network"`
}

// Insights holds the monthly budgeting figures shown on the dashboard.
type Insights struct {
	MonthlySpend  decimal.Decimal `json:"monthlySpend"`
	MonthlyBudget decimal.Decimal `json:"monthlyBudget"`
	SavingsGoal   int             `json:"savingsGoal"` // percent
}
