package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anumohan208/Confidence/internal/app"
	"github.com/anumohan208/Confidence/internal/forms"
)

type screen int

const (
	screenHome screen = iota
	screenEvents
	screenMessages
	screenSubmit
)

type rootModel struct {
	app *app.App

	width  int
	height int

	active screen

	homeList list.Model
	err      error

	events   *eventsModel
	messages *messagesModel
	submit   *forms.SubmitModel
}

type menuItem struct {
	title string
	desc  string
	to    screen
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// NewRootModel builds the admin dashboard home screen.
func NewRootModel(a *app.App) tea.Model {
	items := []list.Item{
		menuItem{title: "Events", desc: "Filter, sort, edit and delete events", to: screenEvents},
		menuItem{title: "Messages", desc: "Read contact messages and send email", to: screenMessages},
		menuItem{title: "Create Event", desc: "Submit a new event with an image", to: screenSubmit},
		menuItem{title: "Quit", desc: "Exit", to: -1},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "EventFinder Admin"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(true)

	return &rootModel{
		app:      a,
		active:   screenHome,
		homeList: l,
	}
}

func (m *rootModel) Init() tea.Cmd {
	return nil
}

func (m *rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.homeList.SetSize(msg.Width, msg.Height-2)
		if m.events != nil {
			m.events.SetSize(msg.Width, msg.Height)
		}
		if m.messages != nil {
			m.messages.SetSize(msg.Width, msg.Height)
		}
		if m.submit != nil {
			m.submit.SetSize(msg.Width, msg.Height)
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}

	switch m.active {
	case screenHome:
		return m.updateHome(msg)
	case screenEvents:
		cmd := m.events.Update(msg)
		if m.events.Done {
			m.active = screenHome
			m.events = nil
		}
		return m, cmd
	case screenMessages:
		cmd := m.messages.Update(msg)
		if m.messages.Done {
			m.active = screenHome
			m.messages = nil
		}
		return m, cmd
	case screenSubmit:
		cmd := m.submit.Update(msg)
		if m.submit.Done {
			m.active = screenHome
			m.submit = nil
		}
		return m, cmd
	default:
		return m, nil
	}
}

func (m *rootModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.homeList, cmd = m.homeList.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if it, ok := m.homeList.SelectedItem().(menuItem); ok {
				if it.to == -1 {
					return m, tea.Quit
				}
				return m, m.activate(it.to)
			}
		}
	}

	return m, cmd
}

// activate switches screens and kicks off the new screen's initial
// fetch.
func (m *rootModel) activate(s screen) tea.Cmd {
	m.active = s

	switch s {
	case screenEvents:
		m.events = newEventsModel(m.app)
		m.events.SetSize(m.width, m.height)
		return m.events.Init()
	case screenMessages:
		m.messages = newMessagesModel(m.app)
		m.messages.SetSize(m.width, m.height)
		return m.messages.Init()
	case screenSubmit:
		m.submit = forms.NewSubmitModel(m.app)
		m.submit.SetSize(m.width, m.height)
		return m.submit.Init()
	}
	return nil
}

func (m *rootModel) View() string {
	if m.err != nil {
		return errStyle.Render("Error: ") + m.err.Error()
	}

	switch m.active {
	case screenHome:
		return m.homeList.View()
	case screenEvents:
		if m.events == nil {
			return "Loading events..."
		}
		return m.events.View()
	case screenMessages:
		if m.messages == nil {
			return "Loading messages..."
		}
		return m.messages.View()
	case screenSubmit:
		if m.submit == nil {
			return "Loading form..."
		}
		return m.submit.View()
	default:
		return titleStyle.Render("Unknown screen") + "\n" + fmt.Sprint(m.active)
	}
}

func nonEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}
