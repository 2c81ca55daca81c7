package fixtures

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/pocketbank-dev/pocketbank/internal/model"
)

// file is the on-disk YAML shape. Money is kept as strings so no value
// passes through a float.
type file struct {
	Customer      string        `yaml:"customer"`
	Accounts      []accountRow  `yaml:"accounts"`
	Transactions  []txnRow      `yaml:"transactions,omitempty"`
	Payees        []model.Payee `yaml:"payees"`
	Card          cardRow       `yaml:"card"`
	SpendingByDay []int         `yaml:"spending_by_day,omitempty"`
	Insights      insightsRow   `yaml:"insights"`
	QuickAmounts  []string      `yaml:"quick_amounts,omitempty"`
	Activity      []eventRow    `yaml:"activity,omitempty"`
}

type accountRow struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Balance  string `yaml:"balance"`
	Subtitle string `yaml:"subtitle,omitempty"`
}

type txnRow struct {
	ID        string `yaml:"id"`
	Merchant  string `yaml:"merchant"`
	Category  string `yaml:"category"`
	DateLabel string `yaml:"date_label"`
	Amount    string `yaml:"amount"`
}

type cardRow struct {
	Name    string `yaml:"name"`
	Holder  string `yaml:"holder"`
	Last4   string `yaml:"last4"`
	Expiry  string `yaml:"expiry"`
	Network string `yaml:"network"`
}

type insightsRow struct {
	MonthlySpend  string `yaml:"monthly_spend"`
	MonthlyBudget string `yaml:"monthly_budget"`
	SavingsGoal   int    `yaml:"savings_goal"`
}

type eventRow struct {
	ID        string `yaml:"id"`
	Title     string `yaml:"title"`
	Detail    string `yaml:"detail"`
	TimeLabel string `yaml:"time_label"`
	Tone      string `yaml:"tone"`
}

// Load reads a fixture YAML file and validates it.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixtures: %w", err)
	}
	return Parse(data)
}

// Parse decodes fixture YAML and validates it.
func Parse(data []byte) (*Store, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixtures: %w", err)
	}
	s, err := f.store()
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes s as fixture YAML.
func Save(path string, s *Store) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing fixtures: %w", err)
	}
	return nil
}

// Marshal encodes s as fixture YAML.
func Marshal(s *Store) ([]byte, error) {
	f := file{
		Customer:      s.customer,
		Payees:        s.Payees(),
		Card:          cardRow(s.card),
		SpendingByDay: s.SpendingByDay(),
		Insights: insightsRow{
			MonthlySpend:  s.insights.MonthlySpend.StringFixed(2),
			MonthlyBudget: s.insights.MonthlyBudget.StringFixed(2),
			SavingsGoal:   s.insights.SavingsGoal,
		},
	}
	for _, a := range s.accounts {
		f.Accounts = append(f.Accounts, accountRow{
			ID:       a.ID,
			Name:     a.Name,
			Type:     string(a.Type),
			Balance:  a.Balance.StringFixed(2),
			Subtitle: a.Subtitle,
		})
	}
	for _, t := range s.transactions {
		f.Transactions = append(f.Transactions, txnRow{
			ID:        t.ID,
			Merchant:  t.Merchant,
			Category:  t.Category,
			DateLabel: t.DateLabel,
			Amount:    t.Amount.StringFixed(2),
		})
	}
	for _, q := range s.quickAmounts {
		f.QuickAmounts = append(f.QuickAmounts, q.StringFixed(2))
	}
	for _, e := range s.activity {
		f.Activity = append(f.Activity, eventRow{
			ID:        e.ID,
			Title:     e.Title,
			Detail:    e.Detail,
			TimeLabel: e.TimeLabel,
			Tone:      string(e.Tone),
		})
	}

	data, err := yaml.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("marshaling fixtures: %w", err)
	}
	return data, nil
}

func (f file) store() (*Store, error) {
	s := &Store{
		customer:      f.Customer,
		payees:        f.Payees,
		card:          model.CardDetails(f.Card),
		spendingByDay: f.SpendingByDay,
	}
	if s.customer == "" {
		s.customer = "Customer"
	}

	for i, row := range f.Accounts {
		bal, err := parseAmount(row.Balance)
		if err != nil {
			return nil, fmt.Errorf("%w: account %d (%s) balance: %v", ErrInvalidFixtures, i+1, row.ID, err)
		}
		s.accounts = append(s.accounts, model.Account{
			ID:       row.ID,
			Name:     row.Name,
			Type:     model.AccountType(row.Type),
			Balance:  bal,
			Subtitle: row.Subtitle,
		})
	}

	for i, row := range f.Transactions {
		amt, err := parseAmount(row.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: transaction %d (%s) amount: %v", ErrInvalidFixtures, i+1, row.ID, err)
		}
		s.transactions = append(s.transactions, model.Transaction{
			ID:        row.ID,
			Merchant:  row.Merchant,
			Category:  row.Category,
			DateLabel: row.DateLabel,
			Amount:    amt,
		})
	}

	for i, q := range f.QuickAmounts {
		amt, err := parseAmount(q)
		if err != nil {
			return nil, fmt.Errorf("%w: quick amount %d: %v", ErrInvalidFixtures, i+1, err)
		}
		s.quickAmounts = append(s.quickAmounts, amt)
	}

	spend, err := optionalAmount(f.Insights.MonthlySpend)
	if err != nil {
		return nil, fmt.Errorf("%w: monthly spend: %v", ErrInvalidFixtures, err)
	}
	budget, err := optionalAmount(f.Insights.MonthlyBudget)
	if err != nil {
		return nil, fmt.Errorf("%w: monthly budget: %v", ErrInvalidFixtures, err)
	}
	s.insights = model.Insights{MonthlySpend: spend, MonthlyBudget: budget, SavingsGoal: f.Insights.SavingsGoal}

	for _, row := range f.Activity {
		tone := model.Tone(row.Tone)
		switch tone {
		case model.ToneNeutral, model.TonePositive, model.ToneWarning:
		case "":
			tone = model.ToneNeutral
		default:
			return nil, fmt.Errorf("%w: event %s has unknown tone %q", ErrInvalidFixtures, row.ID, row.Tone)
		}
		s.activity = append(s.activity, model.ActivityEvent{
			ID:        row.ID,
			Title:     row.Title,
			Detail:    row.Detail,
			TimeLabel: row.TimeLabel,
			Tone:      tone,
		})
	}
	return s, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return d, nil
}

func optionalAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return parseAmount(s)
}
