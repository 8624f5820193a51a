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

type browseModel struct {
	app *app.App

	width  int
	height int

	Done bool

	state browseState
	list  list.Model
	err   error

	events  []event.Event
	filters event.FilterQuery
	search  string
	view    []event.Event

	loading bool
	notice  string

	selected *event.Event

	form       *huh.Form
	searchText string
}

type browseState int

const (
	browseStateList browseState = iota
	browseStateDetail
	browseStateFilters
	browseStateSearch
)

type publicEventsLoadedMsg struct {
	events []event.Event
	err    error
}

type approvedMsg struct {
	id  int
	err error
}

type browseItem struct {
	id    int
	title string
	desc  string
}

func (i browseItem) Title() string       { return i.title }
func (i browseItem) Description() string { return i.desc }
func (i browseItem) FilterValue() string { return i.title }

func newBrowseModel(a *app.App) *browseModel {
	m := &browseModel{app: a, state: browseStateList, loading: true}
	m.rebuildList()
	return m
}

func (m *browseModel) Init() tea.Cmd {
	return m.fetchEvents()
}

func (m *browseModel) fetchEvents() tea.Cmd {
	client := m.app.Client
	return func() tea.Msg {
		events, err := client.ListPublicEvents(context.Background())
		return publicEventsLoadedMsg{events: events, err: err}
	}
}

func (m *browseModel) SetSize(w, h int) {
	m.width, m.height = w, h
	m.list.SetSize(w, h-2)
}

func (m *browseModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case publicEventsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			log.Printf("fetch public events: %v", msg.err)
			m.err = msg.err
			return nil
		}
		m.err = nil
		m.events = msg.events
		m.rebuildList()
		return nil

	case approvedMsg:
		if msg.err != nil {
			log.Printf("approve event %d: %v", msg.id, msg.err)
			m.notice = fmt.Sprintf("Error approving event %d.", msg.id)
			return nil
		}
		m.notice = fmt.Sprintf("Event %d approved.", msg.id)
		m.loading = true
		m.selected = nil
		m.state = browseStateList
		return m.fetchEvents()
	}

	if m.err != nil {
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "esc", "q":
				m.Done = true
			case "enter", "r":
				m.err = nil
				m.loading = true
				return m.fetchEvents()
			}
		}
		return nil
	}

	switch m.state {
	case browseStateList:
		return m.updateList(msg)
	case browseStateDetail:
		return m.updateDetail(msg)
	case browseStateFilters, browseStateSearch:
		return m.updateForm(msg)
	default:
		return nil
	}
}

func (m *browseModel) updateList(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		m.notice = ""
		switch key.String() {
		case "q", "esc":
			m.Done = true
			return nil
		case "r":
			m.loading = true
			return m.fetchEvents()
		case "f":
			m.startFilters()
			return nil
		case "/":
			m.startSearch()
			return nil
		case "c":
			m.filters = event.FilterQuery{}
			m.search = ""
			m.rebuildList()
			return nil
		case "enter":
			it, ok := m.list.SelectedItem().(browseItem)
			if !ok {
				return nil
			}
			for i := range m.events {
				if m.events[i].ID == it.id {
					m.selected = &m.events[i]
					m.state = browseStateDetail
					break
				}
			}
			return nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return cmd
}

func (m *browseModel) updateDetail(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q":
			m.selected = nil
			m.state = browseStateList
			return nil
		case "a":
			if m.selected == nil {
				return nil
			}
			id := m.selected.ID
			client := m.app.Client
			return func() tea.Msg {
				return approvedMsg{id: id, err: client.ApproveEvent(context.Background(), id)}
			}
		}
	}
	return nil
}

func (m *browseModel) updateForm(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.form = nil
		m.state = browseStateList
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
	if m.form.State != huh.StateCompleted {
		return cmd
	}

	if m.state == browseStateSearch {
		m.search = m.searchText
	}
	m.form = nil
	m.state = browseStateList
	m.rebuildList()
	return nil
}

func (m *browseModel) startFilters() {
	m.state = browseStateFilters
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Category").Value(&m.filters.Category),
			huh.NewInput().Title("Start Date (YYYY-MM-DD)").Value(&m.filters.StartDate),
			huh.NewInput().Title("End Date (YYYY-MM-DD)").Value(&m.filters.EndDate),
			huh.NewInput().Title("Location").Value(&m.filters.Venue),
			huh.NewInput().Title("Min Price").Value(&m.filters.MinPrice),
			huh.NewInput().Title("Max Price").Value(&m.filters.MaxPrice),
		),
	)
}

func (m *browseModel) startSearch() {
	m.state = browseStateSearch
	m.searchText = m.search
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Search events (name, location or category)").Value(&m.searchText),
		),
	)
}

func (m *browseModel) rebuildList() {
	m.view = event.ApplyPublic(m.events, m.filters, m.search)

	items := make([]list.Item, 0, len(m.view))
	for _, ev := range m.view {
		desc := fmt.Sprintf("%s • %s • $%s • %s",
			ev.Date.Format("Jan 2, 2006"), ev.Venue, ev.Price.StringFixed(2), ev.ApprovalStatus)
		items = append(items, browseItem{id: ev.ID, title: ev.Name, desc: desc})
	}

	m.list = list.New(items, list.NewDefaultDelegate(), m.width, m.height-2)
	m.list.SetShowStatusBar(false)
	m.list.SetFilteringEnabled(false)
	m.list.SetShowHelp(true)
	m.list.Title = "Event Finder"
}

func (m *browseModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Events error: %v\n\nPress Enter/r to retry, Esc to go back.", m.err)
	}

	switch m.state {
	case browseStateList:
		suffix := "\n(enter details, f filters, / search, c clear, r refresh, q back)"
		if m.loading {
			suffix = "\n(loading...)" + suffix
		}
		if m.notice != "" {
			suffix += "\n" + m.notice
		}
		return m.list.View() + suffix
	case browseStateDetail:
		if m.selected == nil {
			return "No event selected\n\n(esc to go back)"
		}
		ev := m.selected
		out := fmt.Sprintf("%s\n\nDate: %s\nTime: %s\nLocation: %s\nDescription: %s\nCategory: %s\nPrice: $%s\nApproval Status: %s",
			ev.Name, ev.Date.Format("Jan 2, 2006"), ev.Time, ev.Venue, ev.Description,
			ev.Category, ev.Price.StringFixed(2), ev.ApprovalStatus,
		)
		out += "\n\n(a approve, esc back)"
		if m.notice != "" {
			out += "\n" + m.notice
		}
		return out
	case browseStateFilters:
		return m.form.View() + "\n\n(enter to apply, esc to cancel)"
	case browseStateSearch:
		return m.form.View() + "\n\n(enter to apply, esc to cancel)"
	default:
		return "Events"
	}
}
