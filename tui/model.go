// Package tui is the terminal rendition of the spell dashboard.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wizard-spelldash/dashboard"
	"wizard-spelldash/models"
	"wizard-spelldash/service"
)

// loadedMsg delivers the result of the single load cycle
type loadedMsg struct {
	result models.LoadResult
}

var columnWidths = []int{3, 22, 5, 13, 16, 12, 20, 13, 6, 11, 10}

// Model is the bubbletea model of the terminal dashboard
type Model struct {
	ctx         context.Context
	loader      service.SpellLoaderInterface
	targetClass string

	state   dashboard.State
	search  textinput.Model
	table   table.Model
	spinner spinner.Model
	focused bool

	width  int
	height int
	styles Styles
}

// NewModel creates the terminal dashboard in the loading state
func NewModel(ctx context.Context, loader service.SpellLoaderInterface, targetClass string) Model {
	columns := make([]table.Column, len(dashboard.Columns))
	for i, title := range dashboard.Columns {
		columns[i] = table.Column{Title: title, Width: columnWidths[i]}
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	ti := textinput.New()
	ti.Placeholder = "Search spells..."
	ti.CharLimit = 64
	ti.Width = 30

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:         ctx,
		loader:      loader,
		targetClass: targetClass,
		state:       dashboard.NewState(),
		search:      ti,
		table:       t,
		spinner:     sp,
		styles:      DefaultStyles(),
	}
}

// Init starts the spinner and the load cycle
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load)
}

func (m Model) load() tea.Msg {
	return loadedMsg{result: m.loader.Load(m.ctx)}
}

// State returns the current dashboard state
func (m Model) State() dashboard.State {
	return m.state
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case loadedMsg:
		m.state = m.state.WithLoadResult(msg.result)
		m.refreshRows()
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if h := msg.Height - 14; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.focused {
			switch msg.String() {
			case "enter", "esc":
				m.focused = false
				m.search.Blur()
				m.table.Focus()
				return m, nil
			}
			m.search, cmd = m.search.Update(msg)
			m.state = m.state.WithSearch(m.search.Value())
			m.refreshRows()
			return m, cmd
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "/":
			m.focused = true
			m.table.Blur()
			cmd = m.search.Focus()
			return m, cmd
		case "tab":
			m.state = m.state.WithBand(m.state.Band().Next())
			m.refreshRows()
			return m, nil
		case "shift+tab":
			m.state = m.state.WithBand(m.state.Band().Prev())
			m.refreshRows()
			return m, nil
		}
	}

	if !m.focused {
		m.table, cmd = m.table.Update(msg)
	}
	return m, cmd
}

// refreshRows re-renders the table from the filtered view
func (m *Model) refreshRows() {
	rows := m.state.Rows()
	tableRows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, table.Row{
			strconv.Itoa(r.Index),
			r.Icon + " " + r.Name,
			strconv.Itoa(r.Level),
			r.School,
			r.CastingTime,
			r.Range,
			r.Duration,
			r.Concentration,
			r.Ritual,
			r.AttackType,
			r.Components,
		})
	}
	m.table.SetRows(tableRows)
	m.table.SetCursor(0)
}

// View renders the dashboard
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("🔮 " + dashboard.DefaultTitle))
	sb.WriteString("  ")
	sb.WriteString(m.styles.Nav.Render("Dashboard · Search · About"))
	sb.WriteString("\n\n")

	if m.state.Loading() {
		sb.WriteString(m.spinner.View())
		sb.WriteString(fmt.Sprintf(" Loading %s spells...\n", strings.ToLower(m.targetClass)))
		return sb.String()
	}

	stats := m.state.Stats()
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.card("Total Spells", strconv.Itoa(stats.Total)),
		m.card("Visible", strconv.Itoa(stats.Visible)),
		m.card("Average Level", stats.AverageLabel),
	))
	sb.WriteString("\n")

	searchStyle := m.styles.Search
	if m.focused {
		searchStyle = m.styles.Focused
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		searchStyle.Render(m.search.View()),
		"  ",
		m.renderBands(),
	))
	sb.WriteString("\n")

	sb.WriteString(m.styles.Title.Render(m.targetClass + " Spell Details"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Table.Render(m.table.View()))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("[/] Search  [Enter/Esc] Done  [Tab] Level  [↑/↓] Move  [q] Quit"))

	return sb.String()
}

func (m Model) card(label, value string) string {
	return m.styles.Card.Render(
		m.styles.CardLabel.Render(label) + "\n" + m.styles.CardValue.Render(value),
	)
}

func (m Model) renderBands() string {
	parts := make([]string, 0, len(dashboard.Bands))
	for _, b := range dashboard.Bands {
		style := m.styles.Band
		if b == m.state.Band() {
			style = m.styles.BandOn
		}
		parts = append(parts, style.Render(b.Label()))
	}
	return strings.Join(parts, "  ")
}

// Run starts the terminal dashboard and blocks until the user quits
func Run(ctx context.Context, loader service.SpellLoaderInterface, targetClass string) error {
	p := tea.NewProgram(NewModel(ctx, loader, targetClass), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal dashboard: %w", err)
	}
	return nil
}
