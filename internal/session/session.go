// Package session holds the per-screen state of one customer session:
// which tab is showing, the transfer form, the confirmation notice and the
// card freeze confirmation. It is the only place the terminal UI writes
// through to the bank state.
package session

import (
	"github.com/shopspring/decimal"

	"github.com/pocketbank-dev/pocketbank/internal/bank"
	"github.com/pocketbank-dev/pocketbank/internal/derived"
	"github.com/pocketbank-dev/pocketbank/internal/format"
	"github.com/pocketbank-dev/pocketbank/internal/model"
)

// Tab identifies a top-level screen.
type Tab string

const (
	TabDashboard Tab = "dashboard"
	TabAccounts  Tab = "accounts"
	TabCard      Tab = "card"
	TabActivity  Tab = "activity"
	TabTransfer  Tab = "transfer"
)

// TabItem is an entry in the tab bar.
type TabItem struct {
	Tab   Tab
	Label string
}

// Tabs lists the tab bar in display order.
var Tabs = []TabItem{
	{TabDashboard, "Home"},
	{TabAccounts, "Accounts"},
	{TabCard, "Card"},
	{TabActivity, "Activity"},
	{TabTransfer, "Transfer"},
}

// ScanToPayNotice is shown when the unavailable scan action is chosen.
const ScanToPayNotice = "Scan to Pay is available in the next demo iteration."

// Session is one customer's view onto a bank.State.
type Session struct {
	state  *bank.State
	freeze *bank.FreezeFlow

	tab      Tab
	sourceID string
	payeeID  string
	amount   string
	notice   string
}

// New starts a session on the dashboard with the first eligible source,
// the first payee and defaultAmount pre-filled.
func New(state *bank.State, defaultAmount string) *Session {
	s := &Session{
		state:  state,
		freeze: bank.NewFreezeFlow(state),
		tab:    TabDashboard,
		amount: defaultAmount,
	}
	if srcs := derived.TransferSources(state.Accounts()); len(srcs) > 0 {
		s.sourceID = srcs[0].ID
	}
	if payees := state.Fixtures().Payees(); len(payees) > 0 {
		s.payeeID = payees[0].ID
	}
	return s
}

// State returns the bank state the session reads from.
func (s *Session) State() *bank.State {
	return s.state
}

// Tab returns the active tab.
func (s *Session) Tab() Tab {
	return s.tab
}

// SetTab switches the active tab.
func (s *Session) SetTab(tab Tab) {
	s.tab = tab
}

// Notice returns the confirmation notice, if any.
func (s *Session) Notice() string {
	return s.notice
}

// OpenTransfer clears any notice and shows the transfer form.
func (s *Session) OpenTransfer() {
	s.notice = ""
	s.tab = TabTransfer
}

// OpenCard clears any notice and shows the card tab.
func (s *Session) OpenCard() {
	s.notice = ""
	s.tab = TabCard
}

// ScanToPay posts the "not yet available" notice.
func (s *Session) ScanToPay() {
	s.notice = ScanToPayNotice
}

// LiquidBalance is the total of every non-credit account.
func (s *Session) LiquidBalance() decimal.Decimal {
	return derived.LiquidBalance(s.state.Accounts())
}

// SpendProgress is the share of the monthly budget already spent.
func (s *Session) SpendProgress() decimal.Decimal {
	in := s.state.Fixtures().Insights()
	return derived.SpendProgress(in.MonthlySpend, in.MonthlyBudget)
}

// SpendCaption reads like "83% of monthly budget".
func (s *Session) SpendCaption() string {
	return format.Percent(s.SpendProgress().Mul(decimal.NewFromInt(100))) + " of monthly budget"
}

// PrimaryChecking returns the account featured on the dashboard.
func (s *Session) PrimaryChecking() (model.Account, bool) {
	return derived.PrimaryChecking(s.state.Accounts())
}
