package bank

import (
	"fmt"

	"github.com/pocketbank-dev/pocketbank/internal/model"
)

// FreezeStep is the position of a freeze toggle in its confirm gate.
type FreezeStep int

const (
	FreezeIdle FreezeStep = iota
	FreezePending
	FreezeCommitted
	FreezeCancelled
)

func (s FreezeStep) String() string {
	switch s {
	case FreezeIdle:
		return "idle"
	case FreezePending:
		return "pending-confirmation"
	case FreezeCommitted:
		return "committed"
	case FreezeCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("FreezeStep(%d)", int(s))
	}
}

// FreezeFlow gates the card freeze toggle behind an explicit confirmation.
// The card only changes state on Confirm after Request.
type FreezeFlow struct {
	state *State
	step  FreezeStep
}

// NewFreezeFlow returns an idle flow bound to state.
func NewFreezeFlow(state *State) *FreezeFlow {
	return &FreezeFlow{state: state}
}

// Step returns the current position in the flow.
func (f *FreezeFlow) Step() FreezeStep {
	return f.step
}

// Pending reports whether a confirmation is being shown.
func (f *FreezeFlow) Pending() bool {
	return f.step == FreezePending
}

// Request opens the confirmation.
func (f *FreezeFlow) Request() {
	f.step = FreezePending
}

// Cancel dismisses a pending confirmation without touching the card.
func (f *FreezeFlow) Cancel() {
	if f.step != FreezePending {
		return
	}
	f.step = FreezeCancelled
}

// Confirm flips the card state and records the change. It returns the new
// frozen state and the recorded event; ok is false when no confirmation
// was pending.
func (f *FreezeFlow) Confirm() (frozen bool, event model.ActivityEvent, ok bool) {
	if f.step != FreezePending {
		return f.state.CardFrozen(), model.ActivityEvent{}, false
	}
	f.step = FreezeCommitted
	frozen, event = f.state.toggleFreeze()
	return frozen, event, true
}

// ConfirmFrom is Confirm for callers that decided on the toggle while the
// card was in state from. If another toggle landed in between, the flow is
// cancelled and ok is false.
func (f *FreezeFlow) ConfirmFrom(from bool) (frozen bool, event model.ActivityEvent, ok bool) {
	if f.step != FreezePending {
		return f.state.CardFrozen(), model.ActivityEvent{}, false
	}
	f.state.mu.Lock()
	defer f.state.mu.Unlock()
	if f.state.frozen != from {
		f.step = FreezeCancelled
		return f.state.frozen, model.ActivityEvent{}, false
	}
	f.step = FreezeCommitted
	frozen, event = f.state.toggleFreezeLocked()
	return frozen, event, true
}

// toggleFreeze flips the card state and appends the matching event.
func (s *State) toggleFreeze() (bool, model.ActivityEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.toggleFreezeLocked()
}

func (s *State) toggleFreezeLocked() (bool, model.ActivityEvent) {
	s.frozen = !s.frozen
	var e model.ActivityEvent
	if s.frozen {
		e = s.recordLocked("Card frozen", "All debit card purchases and tap-to-pay are now paused.", model.ToneWarning)
	} else {
		e = s.recordLocked("Card unfrozen", "Debit card purchases and tap-to-pay are now active.", model.TonePositive)
	}
	s.logger.Info("card freeze toggled", "frozen", s.frozen, "event_id", e.ID)
	return s.frozen, e
}
