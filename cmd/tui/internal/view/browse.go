package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"centavo/internal/money"
	"centavo/internal/transaction"
)

type browseState int

const (
	browseStateList browseState = iota
	browseStateAmountForm
)

type deleteDoneMsg struct {
	err error
}

// BrowseModel lists transactions in a table with stackable filters on
// type, category, date range and amount range.
type BrowseModel struct {
	CommonModel

	svc    *transaction.Service
	styles Styles

	state browseState
	table table.Model

	typeFilter     *transaction.Type
	categoryFilter *transaction.Category
	timeframe      Timeframe
	minAmount      string
	maxAmount      string

	amountForm *huh.Form

	rows   []transaction.Transaction
	status string
}

func NewBrowseModel(svc *transaction.Service, styles Styles) *BrowseModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 8},
		{Title: "Category", Width: 14},
		{Title: "Amount", Width: 12},
		{Title: "Description", Width: 28},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	m := &BrowseModel{
		svc:    svc,
		styles: styles,
		table:  t,
	}
	m.reload()

	return m
}

func (m *BrowseModel) Title() string { return "Transactions" }

func (m *BrowseModel) ShortHelp() string {
	return "t type • c category • d date • a amount • x delete • esc back"
}

func (m *BrowseModel) Init() tea.Cmd {
	return nil
}

func (m *BrowseModel) filter() transaction.Filter {
	f := transaction.Filter{
		Type:     m.typeFilter,
		Category: m.categoryFilter,
	}

	if from, to, ok := m.timeframe.Range(); ok {
		f.DateFrom = &from
		f.DateTo = &to
	}

	if cents, err := money.ParseAmount(m.minAmount); err == nil {
		f.MinAmount = &cents
	}
	if cents, err := money.ParseAmount(m.maxAmount); err == nil {
		f.MaxAmount = &cents
	}

	return f
}

func (m *BrowseModel) reload() {
	m.rows = m.svc.List(m.filter())

	rows := make([]table.Row, 0, len(m.rows))
	for _, tx := range m.rows {
		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			string(tx.Type),
			string(tx.Category),
			FormatAmount(tx.Amount),
			tx.Description,
		})
	}

	m.table.SetRows(rows)
	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m *BrowseModel) cycleType() {
	switch {
	case m.typeFilter == nil:
		income := transaction.TypeIncome
		m.typeFilter = &income
	case *m.typeFilter == transaction.TypeIncome:
		expense := transaction.TypeExpense
		m.typeFilter = &expense
	default:
		m.typeFilter = nil
	}
}

func (m *BrowseModel) cycleCategory() {
	categories := transaction.Categories()

	if m.categoryFilter == nil {
		first := categories[0]
		m.categoryFilter = &first

		return
	}

	for i, c := range categories {
		if c != *m.categoryFilter {
			continue
		}

		if i == len(categories)-1 {
			m.categoryFilter = nil
		} else {
			next := categories[i+1]
			m.categoryFilter = &next
		}

		return
	}

	m.categoryFilter = nil
}

func (m *BrowseModel) newAmountForm() *huh.Form {
	validate := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		_, err := money.ParseAmount(s)

		return err
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Minimum amount").
				Placeholder("leave empty for none").
				Value(&m.minAmount).
				Validate(validate),
			huh.NewInput().
				Title("Maximum amount").
				Placeholder("leave empty for none").
				Value(&m.maxAmount).
				Validate(validate),
		),
	)
}

func (m *BrowseModel) deleteSelected() tea.Cmd {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.rows) {
		return nil
	}

	id := m.rows[cursor].ID

	return func() tea.Msg {
		return deleteDoneMsg{err: m.svc.Delete(id)}
	}
}

func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		return m, nil
	case deleteDoneMsg:
		if msg.err != nil {
			m.status = m.styles.Error.Render(fmt.Sprintf("Delete failed: %v", msg.err))
		} else {
			m.status = "Transaction deleted."
		}
		m.reload()

		return m, nil
	}

	if m.state == browseStateAmountForm {
		return m.updateAmountForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q":
			return m, Back
		case "t":
			m.cycleType()
			m.reload()

			return m, nil
		case "c":
			m.cycleCategory()
			m.reload()

			return m, nil
		case "d":
			m.timeframe = m.timeframe.Next()
			m.reload()

			return m, nil
		case "a":
			m.state = browseStateAmountForm
			m.amountForm = m.newAmountForm()

			return m, m.amountForm.Init()
		case "x":
			return m, m.deleteSelected()
		case "r":
			m.status = ""
			m.reload()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *BrowseModel) updateAmountForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.state = browseStateList

		return m, nil
	}

	form, cmd := m.amountForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.amountForm = f
	}

	if m.amountForm.State == huh.StateCompleted {
		m.state = browseStateList
		m.reload()

		return m, nil
	}

	return m, cmd
}

func (m *BrowseModel) filterSummary() string {
	parts := []string{}

	if m.typeFilter != nil {
		parts = append(parts, "type="+string(*m.typeFilter))
	}
	if m.categoryFilter != nil {
		parts = append(parts, "category="+string(*m.categoryFilter))
	}
	if m.timeframe != TimeframeAll {
		parts = append(parts, "date="+m.timeframe.String())
	}
	if strings.TrimSpace(m.minAmount) != "" {
		parts = append(parts, "min="+m.minAmount)
	}
	if strings.TrimSpace(m.maxAmount) != "" {
		parts = append(parts, "max="+m.maxAmount)
	}

	if len(parts) == 0 {
		return m.styles.Faint.Render("No filters.")
	}

	return m.styles.Accent.Render("Filters: " + strings.Join(parts, "  "))
}

func (m *BrowseModel) View() string {
	if m.state == browseStateAmountForm {
		return m.styles.Screen.Render(
			m.styles.Title.Render("Amount Range") + "\n\n" + m.amountForm.View(),
		)
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Transactions") + "\n")
	b.WriteString(m.filterSummary() + "\n\n")
	b.WriteString(m.table.View() + "\n\n")

	if m.status != "" {
		b.WriteString(m.status + "\n")
	}

	b.WriteString(m.styles.Status.Render(m.ShortHelp()))

	return m.styles.Screen.Render(b.String())
}
