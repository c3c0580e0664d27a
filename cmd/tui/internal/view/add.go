package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"centavo/internal/money"
	"centavo/internal/transaction"
)

type addState int

const (
	addStateForm addState = iota
	addStateSubmitting
	addStateDone
)

type addDoneMsg struct {
	tx  transaction.Transaction
	err error
}

// AddModel is the new-transaction form.
type AddModel struct {
	CommonModel

	svc    *transaction.Service
	styles Styles

	state addState
	form  *huh.Form

	amount      string
	txType      transaction.Type
	category    transaction.Category
	description string

	added transaction.Transaction
	err   error
}

func NewAddModel(svc *transaction.Service, styles Styles) *AddModel {
	m := &AddModel{
		svc:      svc,
		styles:   styles,
		txType:   transaction.TypeExpense,
		category: transaction.CategoryOther,
	}
	m.form = m.newForm()

	return m
}

func (m *AddModel) newForm() *huh.Form {
	categoryOptions := make([]huh.Option[transaction.Category], 0, len(transaction.Categories()))
	for _, c := range transaction.Categories() {
		categoryOptions = append(categoryOptions, huh.NewOption(string(c), c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Placeholder("12.50").
				Value(&m.amount).
				Validate(func(s string) error {
					_, err := money.ParseAmount(s)

					return err
				}),
			huh.NewSelect[transaction.Type]().
				Title("Type").
				Options(
					huh.NewOption("Expense", transaction.TypeExpense),
					huh.NewOption("Income", transaction.TypeIncome),
				).
				Value(&m.txType),
			huh.NewSelect[transaction.Category]().
				Title("Category").
				Options(categoryOptions...).
				Value(&m.category),
			huh.NewInput().
				Title("Description").
				Placeholder("optional").
				Value(&m.description),
		),
	)
}

func (m *AddModel) Title() string { return "Add Transaction" }

func (m *AddModel) ShortHelp() string { return "enter confirm • esc back" }

func (m *AddModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	case addDoneMsg:
		m.state = addStateDone
		m.added = msg.tx
		m.err = msg.err

		return m, nil
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return m, Back
		}

		if m.state == addStateDone {
			switch msg.String() {
			case "a":
				return m.reset()
			case "enter", "q":
				return m, Back
			}

			return m, nil
		}
	}

	if m.state != addStateForm {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.state = addStateSubmitting

		return m, m.submit()
	}

	return m, cmd
}

func (m *AddModel) reset() (tea.Model, tea.Cmd) {
	m.state = addStateForm
	m.amount = ""
	m.txType = transaction.TypeExpense
	m.category = transaction.CategoryOther
	m.description = ""
	m.err = nil
	m.form = m.newForm()

	return m, m.form.Init()
}

func (m *AddModel) submit() tea.Cmd {
	amount, err := money.ParseAmount(m.amount)
	if err != nil {
		return func() tea.Msg { return addDoneMsg{err: err} }
	}

	params := transaction.CreateParams{
		Amount:      amount,
		Category:    m.category,
		Type:        m.txType,
		Description: m.description,
	}

	return func() tea.Msg {
		tx, err := m.svc.Add(params)

		return addDoneMsg{tx: tx, err: err}
	}
}

func (m *AddModel) View() string {
	header := m.styles.Title.Render("Add Transaction") + "\n\n"

	if m.state == addStateSubmitting {
		return m.styles.Screen.Render(header + "Saving…")
	}

	if m.state == addStateDone {
		var body string
		if m.err != nil {
			body = m.styles.Error.Render(fmt.Sprintf("Could not add transaction: %v", m.err))
		} else {
			body = fmt.Sprintf(
				"Added %s %s (%s).",
				m.added.Type,
				FormatAmount(m.added.Amount),
				m.added.Category,
			)
		}

		return m.styles.Screen.Render(
			header + body + "\n\n" + m.styles.Status.Render("a add another • esc back"),
		)
	}

	return m.styles.Screen.Render(header + m.form.View())
}
