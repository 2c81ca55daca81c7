// Package fixtures holds the read-only seed data the demo starts from.
package fixtures

import (
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/pocketbank-dev/pocketbank/internal/model"
)

// ErrInvalidFixtures is wrapped by every validation failure.
var ErrInvalidFixtures = errors.New("invalid fixtures")

// Store provides read-only lookup over seed data. Every accessor returns a
// copy so callers cannot change what later readers see.
type Store struct {
	customer      string
	accounts      []model.Account
	transactions  []model.Transaction
	payees        []model.Payee
	card          model.CardDetails
	spendingByDay []int
	insights      model.Insights
	quickAmounts  []decimal.Decimal
	activity      []model.ActivityEvent
}

// Customer returns the display name used in the greeting.
func (s *Store) Customer() string {
	return s.customer
}

// Accounts returns the seed accounts in display order.
func (s *Store) Accounts() []model.Account {
	return slices.Clone(s.accounts)
}

// Transactions returns recent transactions, newest first.
func (s *Store) Transactions() []model.Transaction {
	return slices.Clone(s.transactions)
}

// Payees returns saved transfer recipients.
func (s *Store) Payees() []model.Payee {
	return slices.Clone(s.payees)
}

// Payee returns a payee by ID.
func (s *Store) Payee(id string) (model.Payee, bool) {
	for _, p := range s.payees {
		if p.ID == id {
			return p, true
		}
	}
	return model.Payee{}, false
}

// Card returns the debit card details.
func (s *Store) Card() model.CardDetails {
	return s.card
}

// SpendingByDay returns the last seven days of spend, oldest first.
func (s *Store) SpendingByDay() []int {
	return slices.Clone(s.spendingByDay)
}

// Insights returns the monthly budgeting figures.
func (s *Store) Insights() model.Insights {
	return s.insights
}

// QuickAmounts returns the preset transfer amounts.
func (s *Store) QuickAmounts() []decimal.Decimal {
	return slices.Clone(s.quickAmounts)
}

// Activity returns the seed activity timeline, newest first.
func (s *Store) Activity() []model.ActivityEvent {
	return slices.Clone(s.activity)
}

// WithInsights returns a copy of s with the monthly figures replaced.
func (s *Store) WithInsights(in model.Insights) *Store {
	cp := *s
	cp.insights = in
	return &cp
}

// WithCustomer returns a copy of s greeting name instead.
func (s *Store) WithCustomer(name string) *Store {
	cp := *s
	cp.customer = name
	return &cp
}

// Validate checks the invariants the rest of the system relies on.
func (s *Store) Validate() error {
	if len(s.accounts) == 0 {
		return fmt.Errorf("%w: no accounts", ErrInvalidFixtures)
	}
	seen := make(map[string]bool, len(s.accounts))
	for _, a := range s.accounts {
		if a.ID == "" {
			return fmt.Errorf("%w: account %q has no id", ErrInvalidFixtures, a.Name)
		}
		if seen[a.ID] {
			return fmt.Errorf("%w: duplicate account id %q", ErrInvalidFixtures, a.ID)
		}
		seen[a.ID] = true
		if !a.Type.Valid() {
			return fmt.Errorf("%w: account %q has unknown type %q", ErrInvalidFixtures, a.ID, a.Type)
		}
	}

	payees := make(map[string]bool, len(s.payees))
	for _, p := range s.payees {
		if payees[p.ID] {
			return fmt.Errorf("%w: duplicate payee id %q", ErrInvalidFixtures, p.ID)
		}
		payees[p.ID] = true
	}

	events := make(map[string]bool, len(s.activity))
	for _, e := range s.activity {
		if events[e.ID] {
			return fmt.Errorf("%w: duplicate event id %q", ErrInvalidFixtures, e.ID)
		}
		events[e.ID] = true
	}
	return nil
}
