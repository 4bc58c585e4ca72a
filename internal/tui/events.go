package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/stylecfg/internal/reload"
	"github.com/opencode-ai/stylecfg/internal/theme"
)

// ThemeChangedMsg carries the result of a reload. Theme is the active theme,
// which is the previous one when Err is set.
type ThemeChangedMsg struct {
	Theme *theme.Theme
	Err   error
	At    time.Time
	// Watched is set when a file change triggered the reload.
	Watched bool
}

// SubscriptionClosedMsg indicates the reload subscription ended.
type SubscriptionClosedMsg struct{}

// waitForChange blocks on the subscription, reloads once a change arrives
// and reports the outcome. The model re-issues it after every message.
func waitForChange(ctx context.Context, rt *reload.Theme, sub *reload.Subscription) tea.Cmd {
	return func() tea.Msg {
		if _, err := sub.Wait(ctx); err != nil {
			if errors.Is(err, reload.ErrClosed) || errors.Is(err, context.Canceled) {
				return SubscriptionClosedMsg{}
			}
			return ThemeChangedMsg{Theme: rt.Current(), Err: err, At: time.Now(), Watched: true}
		}
		msg := reloadNow(rt)().(ThemeChangedMsg)
		msg.Watched = true
		return msg
	}
}

// reloadNow reloads the theme and reports the outcome.
func reloadNow(rt *reload.Theme) tea.Cmd {
	return func() tea.Msg {
		err := rt.Reload()
		return ThemeChangedMsg{Theme: rt.Current(), Err: err, At: time.Now()}
	}
}
