package view

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const storeTimeout = 5 * time.Second

type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// StoreCtx returns a context with a standard timeout for storage operations.
func StoreCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), storeTimeout)
}

// ChangeMsg signals that the transaction list changed behind the screen.
type ChangeMsg struct{}

// WaitForChange blocks on a subscription channel and resolves to a
// ChangeMsg. Re-issue it after handling each message to keep listening.
func WaitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}

		return ChangeMsg{}
	}
}
