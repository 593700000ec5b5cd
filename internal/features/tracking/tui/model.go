package tui

import (
	"context"
	"strings"
	"time"

	"tracking-viewer/internal/features/tracking/domain"
	"tracking-viewer/internal/features/tracking/ports"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// fetchedMsg carries the outcome of the single mount-time fetch.
type fetchedMsg struct {
	result *domain.SearchResult
	err    error
}

// Styles groups the lipgloss styles used by the view.
type Styles struct {
	Title  lipgloss.Style
	Error  lipgloss.Style
	Count  lipgloss.Style
	Filter lipgloss.Style
	Help   lipgloss.Style
}

// DefaultStyles returns the standard palette.
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1E88E5")).MarginBottom(1),
		Error:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C62828")),
		Count:  lipgloss.NewStyle().Faint(true),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("#43A047")),
		Help:   lipgloss.NewStyle().Faint(true).MarginTop(1),
	}
}

var columns = []table.Column{
	{Title: "Tracking Number", Width: 26},
	{Title: "Order Number", Width: 14},
	{Title: "Status", Width: 20},
	{Title: "Created At", Width: 24},
	{Title: "Updated At", Width: 24},
}

// chromeHeight is the number of lines drawn around the table.
const chromeHeight = 7

// Model is the bubbletea program state for the terminal viewer.
type Model struct {
	ctx      context.Context
	provider ports.SearchProvider
	loc      *time.Location
	styles   Styles

	state   domain.ViewState
	spinner spinner.Model
	table   table.Model
}

// New creates a terminal viewer that will fetch from provider once, on Init.
func New(ctx context.Context, provider ports.SearchProvider, loc *time.Location) Model {
	if loc == nil {
		loc = time.Local
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	t.SetStyles(ts)

	return Model{
		ctx:      ctx,
		provider: provider,
		loc:      loc,
		styles:   DefaultStyles(),
		state:    domain.NewViewState(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		table:    t,
	}
}

// Init starts the spinner and issues the view's only fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

func (m Model) fetch() tea.Cmd {
	ctx, provider := m.ctx, m.provider
	return func() tea.Msg {
		res, err := provider.Search(ctx)
		return fetchedMsg{result: res, err: err}
	}
}

// State returns a copy of the view model.
func (m Model) State() domain.ViewState {
	return m.state.Clone()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchedMsg:
		m.state.Settle(msg.result, msg.err)
		m.refreshRows()
		return m, nil

	case tea.WindowSizeMsg:
		if h := msg.Height - chromeHeight; h > 3 {
			m.table.SetHeight(h)
		}
		m.table.SetWidth(msg.Width)
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ", "h":
			if m.state.Mode() == domain.ModeTable {
				m.state.HideDelivered = !m.state.HideDelivered
				m.refreshRows()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) refreshRows() {
	rows := m.state.Rows(m.loc)
	tableRows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, table.Row{r.TrackingNumber, r.OrderNumber, r.Status, r.CreatedAt, r.UpdatedAt})
	}
	m.table.SetRows(tableRows)
	if m.table.Cursor() >= len(tableRows) {
		m.table.SetCursor(0)
	}
}

// View renders exactly one of the loading, error or table screens.
func (m Model) View() string {
	switch m.state.Mode() {
	case domain.ModeLoading:
		return m.spinner.View() + " Loading tracking data...\n"
	case domain.ModeError:
		return m.styles.Error.Render("Error: "+m.state.Err) + "\n\n" + m.styles.Help.Render("q quit") + "\n"
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("USPS Tracking Status"))
	sb.WriteString("\n")

	box := "[ ]"
	if m.state.HideDelivered {
		box = "[x]"
	}
	sb.WriteString(m.styles.Filter.Render(box + " Hide Delivered Packages"))
	sb.WriteString("   ")
	sb.WriteString(m.styles.Count.Render(m.state.CountLine()))
	sb.WriteString("\n\n")

	sb.WriteString(m.table.View())
	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("space/h toggle delivered • ↑/↓ scroll • q quit"))
	sb.WriteString("\n")

	return sb.String()
}
