package session

import (
	"github.com/pocketbank-dev/pocketbank/internal/bank"
	"github.com/pocketbank-dev/pocketbank/internal/model"
)

// CardFrozen reports whether the debit card is frozen.
func (s *Session) CardFrozen() bool {
	return s.state.CardFrozen()
}

// FreezeStep returns where the freeze confirmation stands.
func (s *Session) FreezeStep() bank.FreezeStep {
	return s.freeze.Step()
}

// FreezePending reports whether the freeze confirmation is open.
func (s *Session) FreezePending() bool {
	return s.freeze.Pending()
}

// RequestFreezeToggle opens the freeze confirmation.
func (s *Session) RequestFreezeToggle() {
	s.freeze.Request()
}

// CancelFreezeToggle closes the confirmation without changing the card.
func (s *Session) CancelFreezeToggle() {
	s.freeze.Cancel()
}

// ConfirmFreezeToggle flips the card and records the change.
func (s *Session) ConfirmFreezeToggle() (model.ActivityEvent, bool) {
	_, e, ok := s.freeze.Confirm()
	return e, ok
}

// FreezePrompt returns the confirmation title and body for the current card state.
func (s *Session) FreezePrompt() (title, body, action string) {
	if s.CardFrozen() {
		return "Unfreeze debit card?", "Your card can be used immediately after unfreezing.", "Unfreeze"
	}
	return "Freeze debit card?", "This pauses new purchases, online checkout, and tap-to-pay until you unfreeze.", "Freeze"
}
