package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"centavo/cmd/tui/internal/view"
	"centavo/internal/config"
	"centavo/internal/kvstore"
	"centavo/internal/kvstore/file"
	"centavo/internal/kvstore/sqlite"
	"centavo/internal/theme"
	"centavo/internal/transaction"
	txStore "centavo/internal/transaction/store"
)

type View int

const (
	ViewMenu      View = 0
	ViewDashboard View = 1
	ViewAdd       View = 2
	ViewBrowse    View = 3
	ViewImport    View = 4
	ViewClear     View = 5
)

type readyMsg struct {
	err error
}

type model struct {
	appName string

	txService    *transaction.Service
	themeManager *theme.Manager
	styles       view.Styles

	ready   bool
	loadErr error

	currentView View

	dashboardView *view.DashboardModel
	addView       *view.AddModel
	browseView    *view.BrowseModel
	importView    *view.ImportModel
	clearView     *view.ClearModel
}

func newKVStore(cfg *config.Config) (kvstore.Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		path, err := cfg.SQLitePath()
		if err != nil {
			return nil, err
		}

		return sqlite.New(path)
	default:
		dir, err := cfg.DataDir()
		if err != nil {
			return nil, err
		}

		return file.New(dir)
	}
}

func initialModel() (model, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return model{}, fmt.Errorf("loading config: %w", err)
	}

	kv, err := newKVStore(cfg)
	if err != nil {
		return model{}, fmt.Errorf("opening storage: %w", err)
	}

	txSvc := transaction.NewService(txStore.New(kv))
	themeMgr := theme.NewManager(kv)

	return model{
		appName:      cfg.App.Name,
		txService:    txSvc,
		themeManager: themeMgr,
		styles:       view.StylesFor(false),
		currentView:  ViewMenu,
	}, nil
}

// Init hydrates both persisted states before any screen is reachable.
func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := view.StoreCtx()
		defer cancel()

		m.themeManager.Load(ctx)

		return readyMsg{err: m.txService.Load(ctx)}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case readyMsg:
		m.ready = true
		m.loadErr = msg.err
		m.styles = view.StylesFor(m.themeManager.IsDark())

		return m, nil
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "t":
				if !m.ready {
					return m, nil
				}

				ctx, cancel := view.StoreCtx()
				m.themeManager.Toggle(ctx)
				cancel()
				m.styles = view.StylesFor(m.themeManager.IsDark())

				return m, nil
			case "1":
				if !m.ready {
					return m, nil
				}
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.txService, m.styles)

				return m, m.dashboardView.Init()
			case "2":
				if !m.ready {
					return m, nil
				}
				m.currentView = ViewAdd
				m.addView = view.NewAddModel(m.txService, m.styles)

				return m, m.addView.Init()
			case "3":
				if !m.ready {
					return m, nil
				}
				m.currentView = ViewBrowse
				m.browseView = view.NewBrowseModel(m.txService, m.styles)

				return m, m.browseView.Init()
			case "4":
				if !m.ready {
					return m, nil
				}
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.txService, m.styles)

				return m, m.importView.Init()
			case "5":
				if !m.ready {
					return m, nil
				}
				m.currentView = ViewClear
				m.clearView = view.NewClearModel(m.txService, m.styles)

				return m, m.clearView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu

		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(*view.DashboardModel)
	case ViewAdd:
		var newModel tea.Model
		newModel, cmd = m.addView.Update(msg)
		m.addView = newModel.(*view.AddModel)
	case ViewBrowse:
		var newModel tea.Model
		newModel, cmd = m.browseView.Update(msg)
		m.browseView = newModel.(*view.BrowseModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(*view.ImportModel)
	case ViewClear:
		var newModel tea.Model
		newModel, cmd = m.clearView.Update(msg)
		m.clearView = newModel.(*view.ClearModel)
	}

	return m, cmd
}

func (m model) menuView() string {
	if !m.ready {
		return m.styles.Screen.Render("Loading your transactions…")
	}

	themeName := "light"
	if m.themeManager.IsDark() {
		themeName = "dark"
	}

	body := m.styles.Title.Render(m.appName) + "\n\n" +
		"1. Dashboard\n" +
		"2. Add Transaction\n" +
		"3. Browse Transactions\n" +
		"4. Import CSV\n" +
		"5. Clear All\n\n" +
		m.styles.Status.Render("t theme ("+themeName+") • q quit")

	if m.loadErr != nil {
		body += "\n\n" + m.styles.Error.Render(
			fmt.Sprintf("Could not load saved transactions: %v", m.loadErr),
		)
	}

	return m.styles.Screen.Render(body)
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return m.menuView()
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewAdd:
		return m.addView.View()
	case ViewBrowse:
		return m.browseView.View()
	case ViewImport:
		return m.importView.View()
	case ViewClear:
		return m.clearView.View()
	}

	return "Unknown View"
}

func main() {
	m, err := initialModel()
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer m.txService.Close()

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
