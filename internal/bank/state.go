// Package bank owns the in-memory account and activity state. Reads return
// snapshots; the only writes are the action handlers in this package.
package bank

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketbank-dev/pocketbank/internal/fixtures"
	"github.com/pocketbank-dev/pocketbank/internal/format"
	"github.com/pocketbank-dev/pocketbank/internal/id"
	"github.com/pocketbank-dev/pocketbank/internal/model"
)

// DefaultPendingHold is subtracted from the checking balance to show the
// "Available" figure in its subtitle.
var DefaultPendingHold = decimal.RequireFromString("161.14")

// Options configures a State. The zero value is usable.
type Options struct {
	// PendingHold is the amount held back from the checking subtitle.
	// Nil means DefaultPendingHold; zero disables the hold.
	PendingHold *decimal.Decimal
	// Now returns the current time for event labels. Nil means time.Now.
	Now func() time.Time
	// Logger receives one record per committed action. Nil discards.
	Logger *slog.Logger
}

// State is the canonical snapshot of accounts, activity and card status.
// All methods are safe for concurrent use; each handler commits under a
// single lock so readers never see a partial update.
type State struct {
	mu       sync.RWMutex
	fixtures *fixtures.Store
	accounts []model.Account
	byID     map[string]int
	activity []model.ActivityEvent // newest first
	nextSeq  int
	frozen   bool

	hold   decimal.Decimal
	now    func() time.Time
	logger *slog.Logger
}

// New seeds a State from fixture data.
func New(store *fixtures.Store, opts Options) *State {
	accounts := store.Accounts()
	byID := make(map[string]int, len(accounts))
	for i, a := range accounts {
		byID[a.ID] = i
	}

	activity := store.Activity()
	ids := make([]string, len(activity))
	for i, e := range activity {
		ids[i] = e.ID
	}

	s := &State{
		fixtures: store,
		accounts: accounts,
		byID:     byID,
		activity: activity,
		nextSeq:  id.NextEventSeq(ids),
		hold:     DefaultPendingHold,
		now:      opts.Now,
		logger:   opts.Logger,
	}
	if opts.PendingHold != nil {
		s.hold = *opts.PendingHold
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s
}

// Fixtures returns the read-only seed data the state was built from.
func (s *State) Fixtures() *fixtures.Store {
	return s.fixtures
}

// Accounts returns every account in display order.
func (s *State) Accounts() []model.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.accounts)
}

// Account returns an account by ID.
func (s *State) Account(accountID string) (model.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[accountID]
	if !ok {
		return model.Account{}, false
	}
	return s.accounts[i], true
}

// Activity returns the activity timeline, newest first.
func (s *State) Activity() []model.ActivityEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.activity)
}

// CardFrozen reports whether the debit card is frozen.
func (s *State) CardFrozen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frozen
}

// recordLocked prepends an event and assigns it the next ID.
// Callers must hold s.mu for writing.
func (s *State) recordLocked(title, detail string, tone model.Tone) model.ActivityEvent {
	e := model.ActivityEvent{
		ID:        id.FormatEventID(s.nextSeq),
		Title:     title,
		Detail:    detail,
		TimeLabel: format.TimeLabel(s.now()),
		Tone:      tone,
	}
	s.nextSeq++
	s.activity = slices.Insert(s.activity, 0, e)
	return e
}
