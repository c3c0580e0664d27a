// Package view contains the bubbletea models for each screen of the
// tracker. Screens read and mutate state exclusively through the
// transaction service and theme manager passed to their constructors;
// none of them touch storage directly.
package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Screen is the interface every TUI screen implements.
type Screen interface {
	tea.Model
	Title() string
	ShortHelp() string
}
