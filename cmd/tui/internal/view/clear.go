package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"centavo/internal/transaction"
)

type clearState int

const (
	clearStateConfirm clearState = iota
	clearStateRunning
	clearStateDone
)

type clearDoneMsg struct {
	err error
}

// ClearModel asks for confirmation before wiping every transaction.
type ClearModel struct {
	CommonModel

	svc    *transaction.Service
	styles Styles

	state   clearState
	form    *huh.Form
	confirm bool
	err     error
}

func NewClearModel(svc *transaction.Service, styles Styles) *ClearModel {
	m := &ClearModel{
		svc:    svc,
		styles: styles,
	}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete all transactions?").
				Description("This removes every recorded transaction. It cannot be undone.").
				Affirmative("Delete everything").
				Negative("Cancel").
				Value(&m.confirm),
		),
	)

	return m
}

func (m *ClearModel) Title() string { return "Clear All" }

func (m *ClearModel) ShortHelp() string { return "enter confirm • esc back" }

func (m *ClearModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *ClearModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	case clearDoneMsg:
		m.state = clearStateDone
		m.err = msg.err

		return m, nil
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return m, Back
		}
		if m.state == clearStateDone && (msg.String() == "enter" || msg.String() == "q") {
			return m, Back
		}
	}

	if m.state != clearStateConfirm {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		if !m.confirm {
			return m, Back
		}

		m.state = clearStateRunning

		return m, func() tea.Msg {
			return clearDoneMsg{err: m.svc.ClearAll()}
		}
	}

	return m, cmd
}

func (m *ClearModel) View() string {
	header := m.styles.Title.Render("Clear All") + "\n\n"

	if m.state == clearStateRunning {
		return m.styles.Screen.Render(header + "Clearing…")
	}

	if m.state == clearStateDone {
		var body string
		if m.err != nil {
			body = m.styles.Error.Render(fmt.Sprintf("Clear failed: %v", m.err))
		} else {
			body = "All transactions removed."
		}

		return m.styles.Screen.Render(
			header + body + "\n\n" + m.styles.Status.Render("enter back"),
		)
	}

	return m.styles.Screen.Render(header + m.form.View())
}
