package derived

import (
	"github.com/shopspring/decimal"

	"github.com/pocketbank-dev/pocketbank/internal/model"
)

// Rejection names why a transfer cannot be submitted.
type Rejection string

const (
	RejectNone              Rejection = ""
	RejectInvalidAmount     Rejection = "invalid_amount"
	RejectInsufficientFunds Rejection = "insufficient_funds"
	RejectIneligibleSource  Rejection = "ineligible_source"
	RejectUnknownPayee      Rejection = "unknown_payee"
)

// TransferCheck is the validity view of a pending transfer.
type TransferCheck struct {
	Amount         decimal.Decimal
	Valid          bool // parsed and strictly positive
	ExceedsBalance bool // valid and above max(0, source balance)
	Eligible       bool // source exists and is not credit
}

// OK reports whether the transfer may be submitted.
func (c TransferCheck) OK() bool {
	return c.Valid && c.Eligible && !c.ExceedsBalance
}

// Rejection returns the first reason the transfer is refused, or
// RejectNone. Source eligibility is reported before the amount.
func (c TransferCheck) Rejection() Rejection {
	switch {
	case !c.Eligible:
		return RejectIneligibleSource
	case !c.Valid:
		return RejectInvalidAmount
	case c.ExceedsBalance:
		return RejectInsufficientFunds
	}
	return RejectNone
}

// CheckTransfer validates amountText against source. found is false when
// the source account does not exist.
func CheckTransfer(amountText string, source model.Account, found bool) TransferCheck {
	var c TransferCheck
	c.Eligible = found && !source.IsCredit()

	amt, ok := ParseAmount(amountText)
	if !ok || !amt.IsPositive() {
		return c
	}
	c.Amount = amt
	c.Valid = true

	available := decimal.Max(decimal.Zero, source.Balance)
	c.ExceedsBalance = amt.GreaterThan(available)
	return c
}
