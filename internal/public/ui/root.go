package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anumohan208/Confidence/internal/app"
	"github.com/anumohan208/Confidence/internal/forms"
)

type screen int

const (
	screenHome screen = iota
	screenBrowse
	screenSubmissions
	screenSubmit
)

type rootModel struct {
	app *app.App

	width  int
	height int

	active screen

	homeList list.Model
	err      error

	browse      *browseModel
	submissions *submissionsModel
	submit      *forms.SubmitModel
}

type menuItem struct {
	title string
	desc  string
	to    screen
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

// NewRootModel builds the user dashboard home screen.
func NewRootModel(a *app.App) tea.Model {
	items := []list.Item{
		menuItem{title: "Browse Events", desc: "Search and filter the event listing", to: screenBrowse},
		menuItem{title: "Your Submissions", desc: "Events you have submitted", to: screenSubmissions},
		menuItem{title: "Submit Event", desc: "Submit a new event with an image", to: screenSubmit},
		menuItem{title: "Quit", desc: "Exit", to: -1},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "EventFinder"
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
		if m.browse != nil {
			m.browse.SetSize(msg.Width, msg.Height)
		}
		if m.submissions != nil {
			m.submissions.SetSize(msg.Width, msg.Height)
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
	case screenBrowse:
		cmd := m.browse.Update(msg)
		if m.browse.Done {
			m.active = screenHome
			m.browse = nil
		}
		return m, cmd
	case screenSubmissions:
		cmd := m.submissions.Update(msg)
		if m.submissions.Done {
			m.active = screenHome
			m.submissions = nil
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

func (m *rootModel) activate(s screen) tea.Cmd {
	m.active = s

	switch s {
	case screenBrowse:
		m.browse = newBrowseModel(m.app)
		m.browse.SetSize(m.width, m.height)
		return m.browse.Init()
	case screenSubmissions:
		m.submissions = newSubmissionsModel(m.app)
		m.submissions.SetSize(m.width, m.height)
		return m.submissions.Init()
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
	case screenBrowse:
		if m.browse == nil {
			return "Loading events..."
		}
		return m.browse.View()
	case screenSubmissions:
		if m.submissions == nil {
			return "Loading submissions..."
		}
		return m.submissions.View()
	case screenSubmit:
		if m.submit == nil {
			return "Loading form..."
		}
		return m.submit.View()
	default:
		return fmt.Sprintf("Unknown screen %d", m.active)
	}
}
