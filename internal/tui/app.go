// Package tui implements the live theme preview.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/stylecfg/internal/reload"
	"github.com/opencode-ai/stylecfg/internal/style"
	"github.com/opencode-ai/stylecfg/internal/theme"
	"github.com/opencode-ai/stylecfg/internal/tui/styles"
)

// Config configures the preview.
type Config struct {
	Theme *reload.Theme
	// Name labels the theme in the header, e.g. a file path or builtin name.
	Name string
}

// Run launches the preview program and blocks until it exits.
func Run(ctx context.Context, cfg Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(initialModel(ctx, cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type model struct {
	ctx  context.Context
	rt   *reload.Theme
	sub  *reload.Subscription
	name string

	current *theme.Theme
	styles  styles.Styles
	widget  int
	variant int

	width       int
	height      int
	lastUpdated time.Time
	lastErr     error
	watching    bool
}

const (
	minWidth  = 60
	minHeight = 15
)

func initialModel(ctx context.Context, cfg Config) model {
	m := model{
		ctx:         ctx,
		rt:          cfg.Theme,
		name:        cfg.Name,
		lastUpdated: time.Now(),
	}
	m.setTheme(cfg.Theme.Current())
	if _, ok := cfg.Theme.Path(); ok {
		m.sub = cfg.Theme.Subscribe()
		m.watching = true
	}
	return m
}

func (m *model) setTheme(t *theme.Theme) {
	m.current = t
	m.styles = styles.BuildStyles(styles.FromTheme(m.name, t))
	if names := m.variants(); m.variant >= len(names) {
		m.variant = 0
	}
}

func (m model) Init() tea.Cmd {
	if m.sub == nil {
		return nil
	}
	return waitForChange(m.ctx, m.rt, m.sub)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kinds := theme.WidgetKinds()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "right", "l", "tab":
			m.widget = (m.widget + 1) % len(kinds)
			m.variant = 0
		case "left", "h", "shift+tab":
			m.widget = (m.widget + len(kinds) - 1) % len(kinds)
			m.variant = 0
		case "down", "j":
			if n := len(m.variants()); n > 0 {
				m.variant = (m.variant + 1) % n
			}
		case "up", "k":
			if n := len(m.variants()); n > 0 {
				m.variant = (m.variant + n - 1) % n
			}
		case "r":
			return m, reloadNow(m.rt)
		case "q", "esc", "ctrl+c":
			if m.sub != nil {
				m.sub.Close()
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case ThemeChangedMsg:
		m.lastErr = msg.Err
		if msg.Err == nil {
			m.setTheme(msg.Theme)
			m.lastUpdated = msg.At
		}
		if msg.Watched && m.sub != nil {
			return m, waitForChange(m.ctx, m.rt, m.sub)
		}
	case SubscriptionClosedMsg:
		m.watching = false
	}
	return m, nil
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", strings.Join(m.smallViewLines(), "\n"))
		}
	}

	lines := []string{
		m.styles.Title.Render(fmt.Sprintf("Theme preview: %s", m.name)),
		"",
		m.widgetTabs(),
		m.variantTabs(),
		"",
	}
	lines = append(lines, m.sheetLines()...)
	lines = append(lines, "", m.statusLine())
	lines = append(lines, "", m.styles.Muted.Render("Shortcuts: q quit | ←/→ widget | ↑/↓ variant | r reload"))

	return fmt.Sprintf("%s\n", strings.Join(lines, "\n"))
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}

func (m model) widgetKind() string {
	return theme.WidgetKinds()[m.widget]
}

func (m model) variants() []string {
	names, err := m.current.Variants(m.widgetKind())
	if err != nil {
		return nil
	}
	return names
}

func (m model) widgetTabs() string {
	kinds := theme.WidgetKinds()
	parts := make([]string, 0, len(kinds))
	for i, kind := range kinds {
		if i == m.widget {
			parts = append(parts, m.styles.Selected.Render(" "+kind+" "))
		} else {
			parts = append(parts, m.styles.Muted.Render(kind))
		}
	}
	return strings.Join(parts, " ")
}

func (m model) variantTabs() string {
	names := m.variants()
	parts := make([]string, 0, len(names))
	for i, name := range names {
		if i == m.variant {
			parts = append(parts, m.styles.Focus.Render("["+name+"]"))
		} else {
			parts = append(parts, m.styles.Text.Render(name))
		}
	}
	return m.styles.Muted.Render("variants: ") + strings.Join(parts, " ")
}

func (m model) sheetLines() []string {
	names := m.variants()
	if len(names) == 0 {
		return []string{m.styles.Muted.Render("No variants.")}
	}
	sheet, err := m.current.Lookup(m.widgetKind(), names[m.variant])
	if err != nil {
		return []string{m.styles.Error.Render(err.Error())}
	}

	fields := style.Describe(sheet)
	width := 0
	for _, f := range fields {
		width = max(width, len(f.Path))
	}

	rows := make([]string, 0, len(fields))
	for _, f := range fields {
		label := m.styles.Muted.Render(fmt.Sprintf("%-*s", width, f.Path))
		value := m.styles.Text.Render(f.Value)
		if f.Color != nil {
			value = styles.Swatch(*f.Color) + " " + m.styles.Text.Render(f.Color.Hex()) + " " + m.styles.Muted.Render(f.Value)
		}
		rows = append(rows, label+"  "+value)
	}
	return []string{m.styles.Panel.Render(strings.Join(rows, "\n"))}
}

func (m model) statusLine() string {
	label := "static"
	if m.watching {
		path, _ := m.rt.Path()
		label = "watching " + path
	}
	status := m.styles.Muted.Render(fmt.Sprintf("%s | last updated %s", label, m.lastUpdated.Format("15:04:05")))
	if m.lastErr != nil {
		status += "\n" + m.styles.Error.Render("reload failed, showing previous theme: "+m.lastErr.Error())
	}
	return status
}
