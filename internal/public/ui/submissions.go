package ui

import (
	"context"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/anumohan208/Confidence/internal/app"
	"github.com/anumohan208/Confidence/internal/event"
)

type submissionsModel struct {
	app *app.App

	width  int
	height int

	Done bool

	state submissionsState
	list  list.Model
	err   error

	submissions []event.Event
	search      string
	loading     bool

	form       *huh.Form
	searchText string
}

type submissionsState int

const (
	submissionsStateList submissionsState = iota
	submissionsStateSearch
)

type submissionsLoadedMsg struct {
	events []event.Event
	err    error
}

func newSubmissionsModel(a *app.App) *submissionsModel {
	m := &submissionsModel{app: a, state: submissionsStateList, loading: true}
	m.rebuildList()
	return m
}

func (m *submissionsModel) Init() tea.Cmd {
	return m.fetchSubmissions()
}

func (m *submissionsModel) fetchSubmissions() tea.Cmd {
	client := m.app.Client
	userID := m.app.User.ID
	return func() tea.Msg {
		events, err := client.ListSubmissions(context.Background(), userID)
		return submissionsLoadedMsg{events: events, err: err}
	}
}

func (m *submissionsModel) SetSize(w, h int) {
	m.width, m.height = w, h
	m.list.SetSize(w, h-2)
}

func (m *submissionsModel) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(submissionsLoadedMsg); ok {
		m.loading = false
		if msg.err != nil {
			log.Printf("fetch submissions: %v", msg.err)
			m.err = msg.err
			return nil
		}
		m.err = nil
		m.submissions = msg.events
		m.rebuildList()
		return nil
	}

	if m.err != nil {
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "esc", "q":
				m.Done = true
			case "enter", "r":
				m.err = nil
				m.loading = true
				return m.fetchSubmissions()
			}
		}
		return nil
	}

	if m.state == submissionsStateSearch {
		return m.updateSearch(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc":
			m.Done = true
			return nil
		case "r":
			m.loading = true
			return m.fetchSubmissions()
		case "/":
			m.startSearch()
			return nil
		case "c":
			m.search = ""
			m.rebuildList()
			return nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return cmd
}

func (m *submissionsModel) updateSearch(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.form = nil
		m.state = submissionsStateList
		return nil
	}

	if m.form == nil {
		m.err = fmt.Errorf("internal error: form not initialized")
		return nil
	}
	var cmd tea.Cmd
	updated, cmd := m.form.Update(msg)
	f, ok := updated.(*huh.Form)
	if !ok {
		m.err = fmt.Errorf("internal error: unexpected form model type")
		return nil
	}
	m.form = f
	if m.form.State == huh.StateCompleted {
		m.search = m.searchText
		m.form = nil
		m.state = submissionsStateList
		m.rebuildList()
		return nil
	}
	return cmd
}

func (m *submissionsModel) startSearch() {
	m.state = submissionsStateSearch
	m.searchText = m.search
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Search submissions (name or category)").Value(&m.searchText),
		),
	)
}

func (m *submissionsModel) rebuildList() {
	view := event.SearchSubmissions(m.submissions, m.search)

	items := make([]list.Item, 0, len(view))
	for _, ev := range view {
		desc := fmt.Sprintf("%s • %s • %s", ev.Category, ev.Date.Format("Jan 2, 2006"), ev.ApprovalStatus)
		items = append(items, browseItem{id: ev.ID, title: ev.Name, desc: desc})
	}

	m.list = list.New(items, list.NewDefaultDelegate(), m.width, m.height-2)
	m.list.SetShowStatusBar(false)
	m.list.SetFilteringEnabled(false)
	m.list.SetShowHelp(true)
	m.list.Title = "Your Event Submissions"
}

func (m *submissionsModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Submissions error: %v\n\nPress Enter/r to retry, Esc to go back.", m.err)
	}

	if m.state == submissionsStateSearch {
		return m.form.View() + "\n\n(enter to apply, esc to cancel)"
	}

	suffix := "\n(/ search, c clear, r refresh, q back)"
	if m.loading {
		suffix = "\n(loading...)" + suffix
	}
	if len(m.list.Items()) == 0 && !m.loading {
		return m.list.View() + "\nNo matching submissions found." + suffix
	}
	return m.list.View() + suffix
}
