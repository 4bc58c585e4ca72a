package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/stylecfg/internal/reload"
	"github.com/opencode-ai/stylecfg/internal/theme"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	dark, err := theme.Builtin("dark")
	require.NoError(t, err)
	rt := reload.Static(dark, reload.WithLogger(zerolog.Nop()))
	t.Cleanup(func() { _ = rt.Close() })
	return initialModel(context.Background(), Config{Theme: rt, Name: "dark"})
}

func TestModelNavigation(t *testing.T) {
	m := newTestModel(t)
	require.Nil(t, m.Init())
	require.Equal(t, theme.WidgetButton, m.widgetKind())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(model)
	require.Equal(t, "destructive", m.variants()[m.variant])

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(model)
	require.Equal(t, theme.WidgetTextInput, m.widgetKind())
	require.Equal(t, 0, m.variant)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(model)
	require.Equal(t, theme.WidgetButton, m.widgetKind())
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(model)

	view := m.View()
	require.Contains(t, view, "Theme preview: dark")
	require.Contains(t, view, "style.active.text_color")
	require.Contains(t, view, "static")

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	m = updated.(model)
	require.True(t, strings.Contains(m.View(), "Terminal too small"))
}

func TestModelKeepsThemeOnReloadError(t *testing.T) {
	m := newTestModel(t)
	before := m.current

	updated, _ := m.Update(ThemeChangedMsg{Theme: theme.Default(), Err: errors.New("bad document"), At: time.Now()})
	m = updated.(model)
	require.Same(t, before, m.current)
	require.Contains(t, m.statusLine(), "bad document")

	fresh := theme.Default()
	updated, _ = m.Update(ThemeChangedMsg{Theme: fresh, At: time.Now()})
	m = updated.(model)
	require.Same(t, fresh, m.current)
	require.NoError(t, m.lastErr)
}
