package fixtures

import (
	"github.com/shopspring/decimal"

	"github.com/pocketbank-dev/pocketbank/internal/model"
)

// Default returns the built-in demo data set.
func Default() *Store {
	return &Store{
		customer:      "Customer",
		accounts:      defaultAccounts(),
		transactions:  defaultTransactions(),
		payees:        defaultPayees(),
		card:          defaultCard(),
		spendingByDay: []int{72, 48, 121, 66, 154, 89, 63},
		insights: model.Insights{
			MonthlySpend:  dec("2489.20"),
			MonthlyBudget: dec("3000"),
			SavingsGoal:   78,
		},
		quickAmounts: []decimal.Decimal{dec("25"), dec("50"), dec("100"), dec("250")},
		activity:     defaultActivity(),
	}
}

func defaultAccounts() []model.Account {
	return []model.Account{
		{ID: "acct-checking", Name: "Everyday Checking", Type: model.AccountTypeChecking, Balance: dec("8452.18"), Subtitle: "Available $8,291.04"},
		{ID: "acct-savings", Name: "High-Yield Savings", Type: model.AccountTypeSavings, Balance: dec("21400.55"), Subtitle: "APY 4.35%"},
		{ID: "acct-brokerage", Name: "Investing Brokerage", Type: model.AccountTypeBrokerage, Balance: dec("12580.40"), Subtitle: "Available to transfer $12,580.40"},
		{ID: "acct-credit", Name: "Rewards Card", Type: model.AccountTypeCredit, Balance: dec("-1294.33"), Subtitle: "Payment due Feb 20"},
	}
}

func defaultTransactions() []model.Transaction {
	return []model.Transaction{
		{ID: "txn-1", Merchant: "Whole Harvest Market", Category: "Groceries", DateLabel: "Today", Amount: dec("-62.39")},
		{ID: "txn-2", Merchant: "Northline Payroll", Category: "Income", DateLabel: "Today", Amount: dec("3240.00")},
		{ID: "txn-3", Merchant: "CityRide", Category: "Transport", DateLabel: "Yesterday", Amount: dec("-18.75")},
		{ID: "txn-4", Merchant: "Lumen Fitness", Category: "Health", DateLabel: "Yesterday", Amount: dec("-72.00")},
		{ID: "txn-5", Merchant: "Aster Coffee", Category: "Dining", DateLabel: "Feb 5", Amount: dec("-9.20")},
		{ID: "txn-6", Merchant: "Apple", Category: "Digital", DateLabel: "Feb 5", Amount: dec("-12.99")},
		{ID: "txn-7", Merchant: "Rent Transfer", Category: "Housing", DateLabel: "Feb 3", Amount: dec("-1850.00")},
	}
}

func defaultPayees() []model.Payee {
	return []model.Payee{
		{ID: "payee-1", Name: "Jordan Lee", Mask: "Checking ••2198"},
		{ID: "payee-2", Name: "Taylor Brooks", Mask: "Savings ••0032"},
		{ID: "payee-3", Name: "Avery Carter", Mask: "Business ••8820"},
	}
}

func defaultCard() model.CardDetails {
	return model.CardDetails{
		Name:    "Everyday Debit",
		Holder:  "Alex Morgan",
		Last4:   "4829",
		Expiry:  "09/29",
		Network: "VISA",
	}
}

func defaultActivity() []model.ActivityEvent {
	return []model.ActivityEvent{
		{ID: "evt-1", Title: "Payroll deposited", Detail: "Northline Payroll • +$3,240.00", TimeLabel: "Today • 8:15 AM", Tone: model.TonePositive},
		{ID: "evt-2", Title: "Card used in person", Detail: "Whole Harvest Market • -$62.39", TimeLabel: "Today • 11:42 AM", Tone: model.ToneNeutral},
		{ID: "evt-3", Title: "Large purchase alert acknowledged", Detail: "Rent Transfer • -$1,850.00", TimeLabel: "Feb 3 • 9:05 AM", Tone: model.ToneWarning},
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
