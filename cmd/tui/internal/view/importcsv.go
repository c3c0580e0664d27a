package view

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"centavo/internal/importer"
	"centavo/internal/transaction"
)

type importState int

const (
	importStatePick importState = iota
	importStateRunning
	importStateDone
)

type importDoneMsg struct {
	imported int
	err      error
}

// ImportModel drives the pick-a-CSV-then-import flow.
type ImportModel struct {
	CommonModel

	svc    *transaction.Service
	styles Styles

	state  importState
	picker filepicker.Model
	path   string
	result importDoneMsg
}

func NewImportModel(svc *transaction.Service, styles Styles) *ImportModel {
	picker := filepicker.New()
	picker.AllowedTypes = []string{".csv"}
	picker.ShowHidden = false
	if home, err := os.UserHomeDir(); err == nil {
		picker.CurrentDirectory = home
	}

	return &ImportModel{
		svc:    svc,
		styles: styles,
		picker: picker,
	}
}

func (m *ImportModel) Title() string { return "Import CSV" }

func (m *ImportModel) ShortHelp() string { return "enter select • esc back" }

func (m *ImportModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m *ImportModel) runImport(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importDoneMsg{err: fmt.Errorf("open %s: %w", path, err)}
		}
		defer f.Close()

		parser := importer.NewParser()
		params, err := parser.Parse(f)
		if err != nil {
			return importDoneMsg{err: err}
		}

		imported, err := m.svc.AddBatch(params)
		if err != nil {
			return importDoneMsg{err: err}
		}

		return importDoneMsg{imported: len(imported)}
	}
}

func (m *ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.picker.Height = msg.Height - 6
	case importDoneMsg:
		m.state = importStateDone
		m.result = msg

		return m, nil
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return m, Back
		}
		if m.state == importStateDone && (msg.String() == "enter" || msg.String() == "q") {
			return m, Back
		}
	}

	if m.state != importStatePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		m.state = importStateRunning
		m.path = path

		return m, m.runImport(path)
	}

	return m, cmd
}

func (m *ImportModel) View() string {
	header := m.styles.Title.Render("Import CSV") + "\n\n"

	switch m.state {
	case importStateRunning:
		return m.styles.Screen.Render(header + "Importing " + m.path + "…")
	case importStateDone:
		var body string
		if m.result.err != nil {
			body = m.styles.Error.Render(fmt.Sprintf("Import failed: %v", m.result.err))
		} else {
			body = fmt.Sprintf("Imported %d transactions from %s.", m.result.imported, m.path)
		}

		return m.styles.Screen.Render(
			header + body + "\n\n" + m.styles.Status.Render("enter back"),
		)
	}

	return m.styles.Screen.Render(
		header + "Pick a CSV file to import:\n\n" + m.picker.View() + "\n" +
			m.styles.Status.Render(m.ShortHelp()),
	)
}
