package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/bsblan/internal/bsblan"
)

// stateMsg carries the result of a state poll
type stateMsg struct {
	state *bsblan.State
	err   error
}

// pollTickMsg fires when the next scheduled poll is due
type pollTickMsg time.Time

// monitorKeyMap defines key bindings for the monitor screen
type monitorKeyMap struct {
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k monitorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k monitorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Refresh, k.Help, k.Quit},
	}
}

func defaultMonitorKeys() monitorKeyMap {
	return monitorKeyMap{
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh now"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MonitorModel is the bubbletea model for the heating monitor.
type MonitorModel struct {
	client   *bsblan.Client
	interval time.Duration

	spinner spinner.Model
	keys    monitorKeyMap
	help    help.Model

	state    *bsblan.State
	err      error
	fetching bool
	lastPoll time.Time
	width    int
}

// NewMonitorModel creates a monitor polling the given client on the
// given interval.
func NewMonitorModel(client *bsblan.Client, interval time.Duration) MonitorModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(PrimaryColor)

	return MonitorModel{
		client:   client,
		interval: interval,
		spinner:  s,
		keys:     defaultMonitorKeys(),
		help:     help.New(),
		fetching: true,
		width:    TerminalWidth(),
	}
}

// Init starts the spinner and the first poll
func (m MonitorModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchState())
}

// fetchState polls the device state off the update loop
func (m MonitorModel) fetchState() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		state, err := client.State()
		return stateMsg{state: state, err: err}
	}
}

// Update handles messages
func (m MonitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			if !m.fetching {
				m.fetching = true
				return m, m.fetchState()
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case stateMsg:
		m.fetching = false
		m.lastPoll = time.Now()
		m.err = msg.err
		if msg.err == nil {
			m.state = msg.state
		}
		// Schedule the next poll regardless of the outcome
		return m, tea.Tick(m.interval, func(t time.Time) tea.Msg {
			return pollTickMsg(t)
		})

	case pollTickMsg:
		if !m.fetching {
			m.fetching = true
			return m, m.fetchState()
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the monitor screen
func (m MonitorModel) View() string {
	var sections []string

	title := TitleStyle.Render("BSB-LAN Heating Monitor")
	host := HostStyle.Render(fmt.Sprintf("%s:%d", m.client.Host, m.client.Port))
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Center, title, host), "")

	switch {
	case m.state == nil && m.err == nil:
		sections = append(sections, FooterStyle.Render(m.spinner.View()+" Connecting to device..."))

	case m.err != nil:
		sections = append(sections, ErrorStyle.Render("✗ "+bsblan.GetShortErrorMessage(m.err)))
		if m.state != nil {
			sections = append(sections, StaleStyle.Render("  showing last known readings"), "")
			sections = append(sections, m.renderReadings())
		}

	default:
		sections = append(sections, m.renderReadings())
	}

	sections = append(sections, "", m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m MonitorModel) renderReadings() string {
	state := m.state

	rows := []string{
		LabelStyle.Render("Target temperature") +
			ValueStyle.Render(readingValue(state.TargetTemperature)),
		LabelStyle.Render("Room temperature") +
			ValueStyle.Render(readingValue(state.CurrentTemperature)),
		LabelStyle.Render("HVAC mode") +
			ModeStyle.Render(state.HVACModeName()),
	}

	return PanelStyle.Width(m.width - 4).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m MonitorModel) renderFooter() string {
	var status string
	if m.fetching {
		status = m.spinner.View() + " polling..."
	} else if !m.lastPoll.IsZero() {
		status = fmt.Sprintf("updated %s (every %s)",
			m.lastPoll.Format("15:04:05"), m.interval)
	}

	return FooterStyle.Render(status) + "\n" + m.help.View(m.keys)
}

func readingValue(r bsblan.ParameterReading) string {
	if r.Value == "" {
		return "(not available)"
	}
	return r.Value + r.Unit
}

// RunMonitor starts the monitor program and blocks until it exits.
func RunMonitor(client *bsblan.Client, interval time.Duration) error {
	p := tea.NewProgram(NewMonitorModel(client, interval))
	_, err := p.Run()
	return err
}
