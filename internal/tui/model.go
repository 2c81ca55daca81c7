// Package tui is the terminal front end of a banking session: a tab bar
// over the dashboard, accounts, card, activity and transfer screens, with
// a confirmation modal for freezing the debit card.
package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pocketbank-dev/pocketbank/internal/session"
)

// Options configures a Model. Zero values select the defaults.
type Options struct {
	// Customer is the name in the header greeting. Empty uses the
	// fixture customer.
	Customer string
	Keys     *KeyMap
	Theme    *Theme
	Now      func() time.Time
	Logger   *slog.Logger
}

// Model is the bubbletea model for one session.
type Model struct {
	session  *session.Session
	keys     KeyMap
	theme    Theme
	styles   styles
	amount   textinput.Model
	customer string
	now      func() time.Time
	logger   *slog.Logger

	width  int
	height int
}

// New creates a Model over sess.
func New(sess *session.Session, opts Options) Model {
	keys := DefaultKeyMap
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	theme := DefaultTheme
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	customer := opts.Customer
	if customer == "" {
		customer = sess.State().Fixtures().Customer()
	}

	input := textinput.New()
	input.Placeholder = "0.00"
	input.Prompt = "$ "
	input.CharLimit = 16
	input.SetValue(sess.Amount())
	input.Focus()

	return Model{
		session:  sess,
		keys:     keys,
		theme:    theme,
		styles:   newStyles(theme),
		amount:   input,
		customer: customer,
		now:      now,
		logger:   logger,
		width:    80,
		height:   24,
	}
}

// Session returns the session the model drives.
func (m Model) Session() *session.Session {
	return m.session
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if m.session.Tab() == session.TabTransfer {
		var cmd tea.Cmd
		m.amount, cmd = m.amount.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// The freeze confirmation is modal: nothing else reacts while it is open.
	if m.session.FreezePending() {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			if e, ok := m.session.ConfirmFreezeToggle(); ok {
				m.logger.Debug("card freeze confirmed", "event", e.ID, "frozen", m.session.CardFrozen())
			}
		case key.Matches(msg, m.keys.Cancel):
			m.session.CancelFreezeToggle()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.cycleTab(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.cycleTab(-1)
		return m, nil
	}

	if m.session.Tab() == session.TabTransfer {
		return m.handleTransferKey(msg)
	}

	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	for i, binding := range m.keys.GotoTab {
		if key.Matches(msg, binding) && i < len(session.Tabs) {
			m.session.SetTab(session.Tabs[i].Tab)
			m.syncAmount()
			return m, nil
		}
	}

	switch m.session.Tab() {
	case session.TabDashboard:
		switch {
		case key.Matches(msg, m.keys.ScanToPay):
			m.session.ScanToPay()
		case key.Matches(msg, m.keys.OpenTransfer):
			m.session.OpenTransfer()
			m.syncAmount()
		case key.Matches(msg, m.keys.OpenCard):
			m.session.OpenCard()
		}
	case session.TabCard:
		if key.Matches(msg, m.keys.ToggleFreeze) {
			m.session.RequestFreezeToggle()
		}
	}
	return m, nil
}

func (m Model) handleTransferKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		r, ok := m.session.SubmitTransfer()
		if ok {
			m.logger.Info("transfer scheduled",
				"reference", r.Reference.String(),
				"amount", r.Amount.StringFixed(2),
				"payee", r.Payee.ID)
		} else {
			m.logger.Debug("transfer rejected", "reason", string(m.session.Check().Rejection()))
		}
		m.syncAmount()
		return m, nil
	case key.Matches(msg, m.keys.PrevSource):
		m.session.CycleSource(-1)
		return m, nil
	case key.Matches(msg, m.keys.NextSource):
		m.session.CycleSource(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevPayee):
		m.session.CyclePayee(-1)
		return m, nil
	case key.Matches(msg, m.keys.NextPayee):
		m.session.CyclePayee(1)
		return m, nil
	}
	for i, binding := range m.keys.QuickAmount {
		if key.Matches(msg, binding) {
			if m.session.QuickAmount(i) {
				m.syncAmount()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.amount, cmd = m.amount.Update(msg)
	m.session.SetAmount(m.amount.Value())
	return m, cmd
}

func (m *Model) cycleTab(delta int) {
	n := len(session.Tabs)
	i := 0
	for j, item := range session.Tabs {
		if item.Tab == m.session.Tab() {
			i = j
			break
		}
	}
	m.session.SetTab(session.Tabs[((i+delta)%n+n)%n].Tab)
	m.syncAmount()
}

// syncAmount copies the session's amount into the input after the session
// changed it.
func (m *Model) syncAmount() {
	if m.amount.Value() == m.session.Amount() {
		return
	}
	m.amount.SetValue(m.session.Amount())
	m.amount.CursorEnd()
}
