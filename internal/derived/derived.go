// Package derived computes read-only views over account state. Every
// function is pure; callers recompute after each mutation.
package derived

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pocketbank-dev/pocketbank/internal/model"
)

var one = decimal.NewFromInt(1)

// LiquidBalance sums the balances of every non-credit account.
func LiquidBalance(accounts []model.Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		if a.IsCredit() {
			continue
		}
		total = total.Add(a.Balance)
	}
	return total
}

// SpendProgress returns spend/budget clamped to [0,1]. A non-positive
// budget counts as fully spent once anything has been spent.
func SpendProgress(spend, budget decimal.Decimal) decimal.Decimal {
	if !budget.IsPositive() {
		if spend.IsPositive() {
			return one
		}
		return decimal.Zero
	}
	ratio := spend.Div(budget)
	if ratio.GreaterThan(one) {
		return one
	}
	if ratio.IsNegative() {
		return decimal.Zero
	}
	return ratio
}

// PrimaryChecking returns the first checking account, falling back to the
// first account. ok is false only when accounts is empty.
func PrimaryChecking(accounts []model.Account) (model.Account, bool) {
	for _, a := range accounts {
		if a.Type == model.AccountTypeChecking {
			return a, true
		}
	}
	if len(accounts) == 0 {
		return model.Account{}, false
	}
	return accounts[0], true
}

// TransferSources returns the accounts that may fund a transfer, in order.
func TransferSources(accounts []model.Account) []model.Account {
	var out []model.Account
	for _, a := range accounts {
		if !a.IsCredit() {
			out = append(out, a)
		}
	}
	return out
}

// SpendingBars returns each day's spend as a fraction of the largest day.
// All bars are zero when nothing was spent.
func SpendingBars(days []int) []float64 {
	maxSpend := 0
	for _, d := range days {
		maxSpend = max(maxSpend, d)
	}
	out := make([]float64, len(days))
	if maxSpend <= 0 {
		return out
	}
	for i, d := range days {
		if d > 0 {
			out[i] = float64(d) / float64(maxSpend)
		}
	}
	return out
}

// plainAmount is a signed decimal with optional thousands commas in groups
// of three. Exponents are not accepted.
var plainAmount = regexp.MustCompile(`^[+-]?(?:(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d+)?|\.\d+)$`)

// ParseAmount parses free-text amount input. It accepts surrounding
// whitespace, a leading "$" and thousands commas.
func ParseAmount(text string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "$")
	if !plainAmount.MatchString(s) {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
