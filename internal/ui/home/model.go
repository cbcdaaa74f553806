package home

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"scaffolding/internal/domain"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7"))
	recordStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC"))
	loadingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#20B9B4")).PaddingLeft(2)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	snackbarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#B00020")).Padding(0, 1)
)

// StateMsg carries a new snapshot into the program.
type StateMsg struct{ State domain.HomeState }

// NoticeMsg carries a notification raised for an Error axis.
type NoticeMsg struct{ Message string }

// Model is the bubbletea model for the home screen.
type Model struct {
	state   domain.HomeState
	events  <-chan tea.Msg
	spinner spinner.Model
	notice  string
	quit    bool
}

// NewModel returns a model that draws vm. Call the returned func when the program exits.
func NewModel(vm domain.HomeViewModel) (Model, func()) {
	events := make(chan tea.Msg, 16)
	send := func(m tea.Msg) {
		select {
		case events <- m:
		default:
		}
	}
	unsubState := vm.Subscribe(func(s domain.HomeState) { send(StateMsg{State: s}) })
	unsubErr := WatchErrors(vm, func(msg string) { send(NoticeMsg{Message: msg}) })

	m := Model{
		state:   vm.State(),
		events:  events,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	return m, func() {
		unsubState()
		unsubErr()
	}
}

// State returns the snapshot the model last drew.
func (m Model) State() domain.HomeState { return m.state }

// Notice returns the last notification shown.
func (m Model) Notice() string { return m.notice }

func (m Model) wait() tea.Cmd {
	return func() tea.Msg { return <-m.events }
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.wait())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quit = true
			return m, tea.Quit
		}
		return m, nil

	case StateMsg:
		m.state = msg.State
		return m, m.wait()

	case NoticeMsg:
		m.notice = msg.Message
		return m, m.wait()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quit {
		return ""
	}
	body := RenderStyled(m.state, Styler{
		Loading: loadingStyle.Render,
		Record:  recordStyle.Render,
		Title:   titleStyle.Render,
	}, m.spinner.View())

	out := body
	if m.notice != "" {
		out += "\n" + snackbarStyle.Render(m.notice) + "\n"
	}
	return out + "\n" + helpStyle.Render("q: quit") + "\n"
}
