package bank

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketbank-dev/pocketbank/internal/derived"
	"github.com/pocketbank-dev/pocketbank/internal/format"
	"github.com/pocketbank-dev/pocketbank/internal/model"
)

// TransferIntent is a transfer as entered by the customer.
type TransferIntent struct {
	SourceID string
	PayeeID  string
	Amount   string // free text, parsed as a decimal
}

// TransferReceipt describes a committed transfer.
type TransferReceipt struct {
	Reference uuid.UUID
	Amount    decimal.Decimal
	Source    model.Account // after the debit
	Payee     model.Payee
	Event     model.ActivityEvent
}

// CheckTransfer returns the validity view of intent against the current
// source balance. It never mutates state.
func (s *State) CheckTransfer(intent TransferIntent) derived.TransferCheck {
	src, found := s.Account(intent.SourceID)
	return derived.CheckTransfer(intent.Amount, src, found)
}

// Transfer debits the source account and records the transfer. Rejected
// intents (bad amount, insufficient funds, ineligible source, unknown
// payee) leave every account and the activity list untouched and return
// ok=false.
func (s *State) Transfer(intent TransferIntent) (TransferReceipt, bool) {
	payee, ok := s.fixtures.Payee(intent.PayeeID)
	if !ok {
		return TransferReceipt{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, found := s.byID[intent.SourceID]
	var src model.Account
	if found {
		src = s.accounts[i]
	}
	check := derived.CheckTransfer(intent.Amount, src, found)
	if !check.OK() {
		return TransferReceipt{}, false
	}

	ref, err := uuid.NewV7()
	if err != nil {
		ref = uuid.New()
	}

	src.Balance = src.Balance.Sub(check.Amount)
	if src.Type == model.AccountTypeChecking {
		avail := decimal.Max(decimal.Zero, src.Balance.Sub(s.hold))
		src.Subtitle = "Available " + format.Currency(avail)
	}
	s.accounts[i] = src

	detail := format.Currency(check.Amount) + " to " + payee.Name + " • " + payee.Mask
	e := s.recordLocked("Transfer scheduled", detail, model.TonePositive)

	s.logger.Info("transfer scheduled",
		"reference", ref.String(),
		"source", src.ID,
		"payee", payee.ID,
		"amount", check.Amount.StringFixed(2),
		"balance", src.Balance.StringFixed(2),
		"event_id", e.ID,
	)

	return TransferReceipt{
		Reference: ref,
		Amount:    check.Amount,
		Source:    src,
		Payee:     payee,
		Event:     e,
	}, true
}
