package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/pocketbank-dev/pocketbank/internal/derived"
	"github.com/pocketbank-dev/pocketbank/internal/format"
	"github.com/pocketbank-dev/pocketbank/internal/model"
	"github.com/pocketbank-dev/pocketbank/internal/session"
)

const appLabel = "Summit Bank"

const barHeight = 6

func (m Model) View() string {
	if m.session.FreezePending() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.viewFreezeModal())
	}

	var body string
	switch m.session.Tab() {
	case session.TabAccounts:
		body = m.viewAccounts()
	case session.TabCard:
		body = m.viewCard()
	case session.TabActivity:
		body = m.viewActivity()
	case session.TabTransfer:
		body = m.viewTransfer()
	default:
		body = m.viewDashboard()
	}

	sections := []string{m.viewHeader()}
	if notice := m.session.Notice(); notice != "" && m.session.Tab() != session.TabTransfer {
		sections = append(sections, m.styles.positive.Render("✓ "+notice))
	}
	sections = append(sections, body, m.viewTabBar(), m.viewHelp())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewHeader() string {
	now := m.now()
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.appLabel.Render(appLabel),
		m.styles.title.Render(fmt.Sprintf("%s, %s", format.Greeting(now), m.customer)),
		m.styles.caption.Render(format.DateLabel(now)),
		"",
	)
}

func (m Model) viewTabBar() string {
	items := make([]string, 0, len(session.Tabs))
	for i, item := range session.Tabs {
		label := fmt.Sprintf("%d %s", i+1, item.Label)
		if item.Tab == m.session.Tab() {
			items = append(items, m.styles.activeTab.Render(label))
		} else {
			items = append(items, m.styles.tab.Render(label))
		}
	}
	return "\n" + lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func (m Model) viewHelp() string {
	var hints []string
	switch m.session.Tab() {
	case session.TabDashboard:
		hints = []string{"s scan to pay", "t transfer", "c card"}
	case session.TabCard:
		if m.session.CardFrozen() {
			hints = []string{"f unfreeze card"}
		} else {
			hints = []string{"f freeze card"}
		}
	case session.TabTransfer:
		return m.styles.help.Render("↑/↓ from • C-←/→ to • M-1..4 quick amount • enter schedule • tab next • C-c quit")
	}
	hints = append(hints, "tab next", "q quit")
	return m.styles.help.Render(strings.Join(hints, " • "))
}

func (m Model) viewDashboard() string {
	accounts := m.session.State().Accounts()
	store := m.session.State().Fixtures()

	chips := make([]string, 0, len(accounts))
	for _, a := range accounts {
		chips = append(chips, fmt.Sprintf("%s %s", a.Type, format.Currency(a.Balance)))
	}
	hero := m.styles.hero.Render(lipgloss.JoinVertical(lipgloss.Left,
		"Total available",
		lipgloss.NewStyle().Bold(true).Render(format.Compact(m.session.LiquidBalance())),
		fmt.Sprintf("%d linked accounts", len(accounts)),
		strings.Join(chips, "  "),
	))

	actions := strings.Join([]string{"[s] Scan to Pay", "[t] Transfer", "[c] Card"}, "   ")

	in := store.Insights()
	spend := lipgloss.JoinVertical(lipgloss.Left,
		m.sectionHead("Weekly Spend", m.session.SpendCaption()),
		m.viewBars(store.SpendingByDay()),
		m.viewProgress(m.session.SpendProgress().InexactFloat64(), 30),
		m.styles.caption.Render(format.Currency(in.MonthlySpend)+" of "+format.Currency(in.MonthlyBudget)),
	)

	recent := []string{m.sectionHead("Recent activity", "See all")}
	txns := store.Transactions()
	if len(txns) > 4 {
		txns = txns[:4]
	}
	for _, t := range txns {
		recent = append(recent, m.viewTransaction(t))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		hero,
		"",
		actions,
		"",
		m.styles.card.Render(spend),
		m.styles.card.Render(lipgloss.JoinVertical(lipgloss.Left, recent...)),
	)
}

func (m Model) viewTransaction(t model.Transaction) string {
	amount := m.styles.positive
	if t.IsDebit() {
		amount = m.styles.negative
	}
	left := lipgloss.JoinVertical(lipgloss.Left,
		t.Merchant,
		m.styles.caption.Render(t.Category+" • "+t.DateLabel),
	)
	return m.row(left, amount.Render(format.Signed(t.Amount)))
}

func (m Model) viewBars(days []int) string {
	heights := derived.SpendingBars(days)
	labels := []string{"M", "T", "W", "T", "F", "S", "S"}
	rows := make([]string, 0, barHeight+1)
	for level := barHeight; level >= 1; level-- {
		var b strings.Builder
		for _, h := range heights {
			if h*barHeight >= float64(level)-0.5 {
				b.WriteString(m.styles.bar.Render(" █ "))
			} else {
				b.WriteString("   ")
			}
		}
		rows = append(rows, b.String())
	}
	var axis strings.Builder
	for i := range heights {
		label := " "
		if i < len(labels) {
			label = labels[i]
		}
		axis.WriteString(" " + label + " ")
	}
	rows = append(rows, m.styles.caption.Render(axis.String()))
	return strings.Join(rows, "\n")
}

func (m Model) viewProgress(fraction float64, width int) string {
	filled := int(fraction*float64(width) + 0.5)
	filled = max(0, min(width, filled))
	return m.styles.bar.Render(strings.Repeat("━", filled)) +
		m.styles.caption.Render(strings.Repeat("─", width-filled))
}

func (m Model) viewAccounts() string {
	var cards []string
	for _, a := range m.session.State().Accounts() {
		balance := m.styles.title
		footer := "FDIC insured"
		if a.IsCredit() {
			balance = m.styles.negative
			footer = "Statement in 13 days"
		}
		head := m.row(
			lipgloss.JoinVertical(lipgloss.Left, a.Name, m.styles.caption.Render(a.Subtitle)),
			balance.Render(format.Currency(a.Balance)),
		)
		cards = append(cards, m.styles.card.Render(lipgloss.JoinVertical(lipgloss.Left,
			head,
			m.styles.caption.Render("["+string(a.Type)+"]  "+footer),
		)))
	}

	goal := m.session.State().Fixtures().Insights().SavingsGoal
	cards = append(cards, m.styles.card.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.sectionHead("Savings goal", "Emergency fund progress"),
		m.viewProgress(float64(goal)/100, 30),
		m.styles.caption.Render(fmt.Sprintf("%d%% funded", goal)),
	)))
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m Model) viewCard() string {
	card := m.session.State().Fixtures().Card()
	frozen := m.session.CardFrozen()

	face := m.styles.hero.Render(lipgloss.JoinVertical(lipgloss.Left,
		card.Network,
		card.Name,
		"•••• •••• •••• "+card.Last4,
		"",
		fmt.Sprintf("Cardholder %s    Expiry %s", card.Holder, card.Expiry),
	))

	status, chip := "Active", m.styles.positive
	toggle, tapToPay := "Freeze card", "On"
	if frozen {
		status, chip = "Frozen", m.styles.warning
		toggle, tapToPay = "Unfreeze card", "Off"
	}
	lines := []string{m.row(m.styles.title.Render("Card status"), chip.Render(status))}
	if frozen {
		lines = append(lines, m.styles.warning.Render("❄ Card purchases and tap-to-pay are paused."))
	}
	lines = append(lines,
		"[f] "+toggle,
		m.row("Tap to Pay", m.styles.caption.Render(tapToPay)),
		"Travel notice",
	)
	return lipgloss.JoinVertical(lipgloss.Left, face, "", m.styles.card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
}

func (m Model) viewActivity() string {
	events := m.session.State().Activity()
	rows := make([]string, 0, len(events))
	for _, e := range events {
		marker := m.styles.caption
		switch e.Tone {
		case model.TonePositive:
			marker = m.styles.positive
		case model.ToneWarning:
			marker = m.styles.warning
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			marker.Render("● "),
			m.styles.card.Render(lipgloss.JoinVertical(lipgloss.Left,
				m.styles.title.Render(e.Title),
				m.fit(e.Detail, 8),
				m.styles.caption.Render(e.TimeLabel),
			)),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewTransfer() string {
	var from []string
	for _, a := range m.session.Sources() {
		from = append(from, m.chip(a.Name+" "+format.Currency(a.Balance), a.ID == m.session.SourceID()))
	}
	var to []string
	for _, p := range m.session.State().Fixtures().Payees() {
		to = append(to, m.chip(p.Name+" "+p.Mask, p.ID == m.session.PayeeID()))
	}
	var quick []string
	for i, q := range m.session.State().Fixtures().QuickAmounts() {
		quick = append(quick, m.styles.caption.Render(fmt.Sprintf("M-%d %s", i+1, format.Currency(q))))
	}

	amount := []string{m.styles.title.Render("Amount"), m.amount.View(), strings.Join(quick, "  ")}
	check := m.session.Check()
	if check.ExceedsBalance {
		amount = append(amount, m.styles.negative.Render("Amount exceeds available balance."))
	}

	sections := []string{
		m.styles.card.Render(lipgloss.JoinVertical(lipgloss.Left, m.styles.title.Render("From"), strings.Join(from, " "))),
		m.styles.card.Render(lipgloss.JoinVertical(lipgloss.Left, m.styles.title.Render("To"), strings.Join(to, " "))),
		m.styles.card.Render(lipgloss.JoinVertical(lipgloss.Left, amount...)),
	}
	if notice := m.session.Notice(); notice != "" {
		sections = append(sections, m.styles.positive.Render("✓ "+notice))
	}
	button := m.styles.button
	if !check.OK() {
		button = button.Background(m.theme.BorderColor).Foreground(m.theme.FaintText)
	}
	sections = append(sections, button.Render("Schedule transfer"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewFreezeModal() string {
	title, body, action := m.session.FreezePrompt()
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.caption.Render("[n] Cancel"),
		"   ",
		m.styles.button.Render("[y] "+action),
	)
	return m.styles.modal.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.title.Render(title),
		"",
		body,
		"",
		buttons,
	))
}

func (m Model) sectionHead(title, caption string) string {
	return m.row(m.styles.title.Render(title), m.styles.caption.Render(caption))
}

func (m Model) chip(label string, selected bool) string {
	if selected {
		return m.styles.selected.Render(label)
	}
	return m.styles.tab.Render(label)
}

// fit truncates a single line to the content width less margin.
func (m Model) fit(line string, margin int) string {
	return ansi.Truncate(line, max(m.width-margin, 10), "…")
}

// row places right flush against the content width, after left.
func (m Model) row(left, right string) string {
	width := max(m.width-4, lipgloss.Width(left)+lipgloss.Width(right)+2)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)
}
