package session

import (
	"github.com/pocketbank-dev/pocketbank/internal/bank"
	"github.com/pocketbank-dev/pocketbank/internal/derived"
	"github.com/pocketbank-dev/pocketbank/internal/format"
	"github.com/pocketbank-dev/pocketbank/internal/model"
)

// Sources returns the accounts the transfer form offers.
func (s *Session) Sources() []model.Account {
	return derived.TransferSources(s.state.Accounts())
}

// SourceID returns the selected source account.
func (s *Session) SourceID() string {
	return s.sourceID
}

// PayeeID returns the selected payee.
func (s *Session) PayeeID() string {
	return s.payeeID
}

// Amount returns the amount input as typed.
func (s *Session) Amount() string {
	return s.amount
}

// SetAmount replaces the amount input.
func (s *Session) SetAmount(text string) {
	s.amount = text
}

// QuickAmount fills the amount input with the i-th preset amount.
func (s *Session) QuickAmount(i int) bool {
	quick := s.state.Fixtures().QuickAmounts()
	if i < 0 || i >= len(quick) {
		return false
	}
	s.amount = quick[i].StringFixed(2)
	return true
}

// SelectSource selects a funding account. Only eligible sources are accepted.
func (s *Session) SelectSource(accountID string) bool {
	for _, a := range s.Sources() {
		if a.ID == accountID {
			s.sourceID = accountID
			return true
		}
	}
	return false
}

// SelectPayee selects a payee by ID.
func (s *Session) SelectPayee(payeeID string) bool {
	if _, ok := s.state.Fixtures().Payee(payeeID); !ok {
		return false
	}
	s.payeeID = payeeID
	return true
}

// CycleSource moves the source selection by delta, wrapping around.
func (s *Session) CycleSource(delta int) {
	srcs := s.Sources()
	ids := make([]string, len(srcs))
	for i, a := range srcs {
		ids[i] = a.ID
	}
	s.sourceID = cycle(ids, s.sourceID, delta)
}

// CyclePayee moves the payee selection by delta, wrapping around.
func (s *Session) CyclePayee(delta int) {
	payees := s.state.Fixtures().Payees()
	ids := make([]string, len(payees))
	for i, p := range payees {
		ids[i] = p.ID
	}
	s.payeeID = cycle(ids, s.payeeID, delta)
}

// Intent returns the transfer as currently entered.
func (s *Session) Intent() bank.TransferIntent {
	return bank.TransferIntent{SourceID: s.sourceID, PayeeID: s.payeeID, Amount: s.amount}
}

// Check returns the validity of the entered transfer against current balances.
func (s *Session) Check() derived.TransferCheck {
	return s.state.CheckTransfer(s.Intent())
}

// SubmitTransfer schedules the entered transfer. On success it posts the
// confirmation notice, clears the amount and shows the activity tab. A
// rejected transfer changes nothing; the form keeps showing Check's warning.
func (s *Session) SubmitTransfer() (bank.TransferReceipt, bool) {
	r, ok := s.state.Transfer(s.Intent())
	if !ok {
		return bank.TransferReceipt{}, false
	}
	s.notice = "Transfer scheduled: " + format.Currency(r.Amount) + " to " + r.Payee.Name + "."
	s.amount = ""
	s.tab = TabActivity
	return r, true
}

func cycle(ids []string, current string, delta int) string {
	if len(ids) == 0 {
		return current
	}
	i := 0
	for j, v := range ids {
		if v == current {
			i = j
			break
		}
	}
	n := len(ids)
	return ids[((i+delta)%n+n)%n]
}
