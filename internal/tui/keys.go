package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the banking TUI.
type KeyMap struct {
	// Tab bar.
	NextTab key.Binding
	PrevTab key.Binding
	// Direct tab selection; disabled while the amount input has focus.
	GotoTab [5]key.Binding

	// Dashboard quick actions.
	ScanToPay    key.Binding
	OpenTransfer key.Binding
	OpenCard     key.Binding

	// Card tab and freeze confirmation.
	ToggleFreeze key.Binding
	Confirm      key.Binding
	Cancel       key.Binding

	// Transfer form.
	PrevSource  key.Binding
	NextSource  key.Binding
	PrevPayee   key.Binding
	NextPayee   key.Binding
	QuickAmount [4]key.Binding
	Submit      key.Binding

	Quit      key.Binding // Ignored while typing an amount.
	ForceQuit key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-tab", "previous tab"),
	),
	GotoTab: [5]key.Binding{
		key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
		key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "accounts")),
		key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "card")),
		key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "activity")),
		key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "transfer")),
	},
	ScanToPay: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "scan to pay"),
	),
	OpenTransfer: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "transfer"),
	),
	OpenCard: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "card"),
	),
	ToggleFreeze: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "freeze/unfreeze"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y", "enter"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
	PrevSource: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous source"),
	),
	NextSource: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next source"),
	),
	PrevPayee: key.NewBinding(
		key.WithKeys("ctrl+left"),
		key.WithHelp("C-←", "previous payee"),
	),
	NextPayee: key.NewBinding(
		key.WithKeys("ctrl+right"),
		key.WithHelp("C-→", "next payee"),
	),
	QuickAmount: [4]key.Binding{
		key.NewBinding(key.WithKeys("alt+1"), key.WithHelp("M-1", "quick amount 1")),
		key.NewBinding(key.WithKeys("alt+2"), key.WithHelp("M-2", "quick amount 2")),
		key.NewBinding(key.WithKeys("alt+3"), key.WithHelp("M-3", "quick amount 3")),
		key.NewBinding(key.WithKeys("alt+4"), key.WithHelp("M-4", "quick amount 4")),
	},
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "schedule transfer"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
}
