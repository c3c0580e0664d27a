package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"centavo/internal/transaction"
)

const (
	recentCount = 5
	barWidth    = 20
)

// DashboardModel shows the balance summary, the expense breakdown per
// category and the most recent transactions. It subscribes to the
// service so the numbers refresh whenever another screen mutates the
// ledger.
type DashboardModel struct {
	CommonModel

	svc    *transaction.Service
	styles Styles

	changes <-chan struct{}
	cancel  func()

	summary   transaction.Summary
	breakdown []transaction.CategoryShare
	recent    []transaction.Transaction
}

func NewDashboardModel(svc *transaction.Service, styles Styles) *DashboardModel {
	changes, cancel := svc.Subscribe()

	m := &DashboardModel{
		svc:     svc,
		styles:  styles,
		changes: changes,
		cancel:  cancel,
	}
	m.refresh()

	return m
}

func (m *DashboardModel) Title() string { return "Dashboard" }

func (m *DashboardModel) ShortHelp() string { return "esc back" }

func (m *DashboardModel) Init() tea.Cmd {
	return WaitForChange(m.changes)
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	case ChangeMsg:
		m.refresh()

		return m, WaitForChange(m.changes)
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			m.cancel()

			return m, Back
		}
	}

	return m, nil
}

func (m *DashboardModel) refresh() {
	m.summary = m.svc.Summary()
	m.breakdown = m.svc.Breakdown()
	m.recent = m.svc.List(transaction.Filter{})
	if len(m.recent) > recentCount {
		m.recent = m.recent[:recentCount]
	}
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Dashboard") + "\n\n")
	b.WriteString(m.summaryCard() + "\n\n")
	b.WriteString(m.breakdownSection() + "\n")
	b.WriteString(m.recentSection() + "\n")
	b.WriteString(m.styles.Status.Render(m.ShortHelp()))

	return m.styles.Screen.Render(b.String())
}

func (m *DashboardModel) summaryCard() string {
	balance := FormatAmount(m.summary.TotalBalance)
	if m.summary.TotalBalance < 0 {
		balance = m.styles.Negative.Render(balance)
	} else {
		balance = m.styles.Positive.Render(balance)
	}

	lines := []string{
		fmt.Sprintf("Balance   %s", balance),
		fmt.Sprintf("Income    %s", m.styles.Positive.Render(FormatAmount(m.summary.TotalIncome))),
		fmt.Sprintf("Expenses  %s", m.styles.Negative.Render(FormatAmount(m.summary.TotalExpenses))),
	}

	return m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *DashboardModel) breakdownSection() string {
	var b strings.Builder

	b.WriteString(m.styles.Accent.Render("Spending by category") + "\n")

	if len(m.breakdown) == 0 {
		b.WriteString(m.styles.Faint.Render("No expenses yet.") + "\n")

		return b.String()
	}

	for _, entry := range m.breakdown {
		filled := int(entry.Share * barWidth)
		if filled > barWidth {
			filled = barWidth
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

		b.WriteString(fmt.Sprintf(
			"%-14s %s %s (%.0f%%)\n",
			entry.Category,
			m.styles.Accent.Render(bar),
			FormatAmount(entry.Amount),
			entry.Share*100,
		))
	}

	return b.String()
}

func (m *DashboardModel) recentSection() string {
	var b strings.Builder

	b.WriteString(m.styles.Accent.Render("Recent transactions") + "\n")

	if len(m.recent) == 0 {
		b.WriteString(m.styles.Faint.Render("Nothing recorded yet.") + "\n")

		return b.String()
	}

	for _, tx := range m.recent {
		desc := tx.Description
		if desc == "" {
			desc = string(tx.Category)
		}

		b.WriteString(fmt.Sprintf(
			"%s  %-24s %s\n",
			m.styles.Faint.Render(FormatDate(tx.Date)),
			desc,
			FormatSigned(m.styles, tx),
		))
	}

	return b.String()
}
