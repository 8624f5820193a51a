package ui

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/anumohan208/Confidence/internal/app"
	"github.com/anumohan208/Confidence/internal/event"
)

type eventsModel struct {
	app *app.App

	width  int
	height int

	Done bool

	state eventsState

	events []event.Event
	counts event.Counts
	query  event.Query
	view   []event.Event

	table   table.Model
	loading bool
	notice  string
	err     error

	draft     event.Draft
	fieldErrs event.FieldErrors
	imageNote string
	form      *huh.Form
	save      bool

	deleteID      int
	deleteName    string
	confirmDelete bool

	searchText string
}

type eventsState int

const (
	eventsStateTable eventsState = iota
	eventsStateSearch
	eventsStateEdit
	eventsStateConfirmDelete
)

type eventsLoadedMsg struct {
	events []event.Event
	err    error
}

type eventMutatedMsg struct {
	action string
	err    error
}

type imageFetchedMsg struct {
	id   int
	size int
	err  error
}

// Column order matches the dashboard table; keys 1-9 sort by position.
var sortColumns = []event.Column{
	event.ColumnID, event.ColumnName, event.ColumnCategory, event.ColumnDate,
	event.ColumnTime, event.ColumnVenue, event.ColumnZip, event.ColumnPrice,
	event.ColumnStatus,
}

func newEventsModel(a *app.App) *eventsModel {
	m := &eventsModel{app: a, state: eventsStateTable, loading: true}
	m.rebuildTable()
	return m
}

func (m *eventsModel) Init() tea.Cmd {
	return m.fetchEvents()
}

func (m *eventsModel) fetchEvents() tea.Cmd {
	client := m.app.Client
	return func() tea.Msg {
		events, err := client.ListAdminEvents(context.Background())
		return eventsLoadedMsg{events: events, err: err}
	}
}

func (m *eventsModel) SetSize(w, h int) {
	m.width, m.height = w, h
	m.table.SetHeight(maxInt(h-8, 3))
}

func (m *eventsModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case eventsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			log.Printf("fetch events: %v", msg.err)
			m.err = msg.err
			return nil
		}
		m.err = nil
		m.events = msg.events
		m.counts = event.CountByStatus(m.events)
		m.rebuildTable()
		return nil

	case eventMutatedMsg:
		m.loading = false
		if msg.err != nil {
			log.Printf("%s event: %v", msg.action, msg.err)
			m.notice = fmt.Sprintf("Error: %s failed: %v", msg.action, msg.err)
			return nil
		}
		m.notice = fmt.Sprintf("Event %s.", msg.action)
		m.loading = true
		return m.fetchEvents()

	case imageFetchedMsg:
		if msg.err != nil {
			log.Printf("fetch image %d: %v", msg.id, msg.err)
			m.imageNote = "No image"
			return nil
		}
		m.imageNote = fmt.Sprintf("Image: %d bytes", msg.size)
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
				return m.fetchEvents()
			}
		}
		return nil
	}

	switch m.state {
	case eventsStateTable:
		return m.updateTable(msg)
	case eventsStateSearch, eventsStateEdit, eventsStateConfirmDelete:
		return m.updateForm(msg)
	default:
		return nil
	}
}

func (m *eventsModel) updateTable(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		m.notice = ""
		switch s := key.String(); s {
		case "q", "esc":
			m.Done = true
			return nil
		case "r":
			m.loading = true
			return m.fetchEvents()
		case "f":
			m.query.PastOnly = false
			m.query.Status = nextStatusFilter(m.query.Status)
			m.rebuildTable()
			return nil
		case "t":
			m.query.PastOnly = !m.query.PastOnly
			m.rebuildTable()
			return nil
		case "/":
			m.startSearch()
			return nil
		case "c":
			m.query.Search = ""
			m.rebuildTable()
			return nil
		case "d":
			m.startDelete()
			return nil
		case "enter":
			return m.startEdit()
		default:
			if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(sortColumns) {
				m.query = m.query.Toggle(sortColumns[n-1])
				m.rebuildTable()
				return nil
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return cmd
}

func (m *eventsModel) updateForm(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		// Cancel discards the draft and clears all errors.
		m.form = nil
		m.draft = event.Draft{}
		m.fieldErrs = nil
		m.state = eventsStateTable
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

	switch m.state {
	case eventsStateSearch:
		m.query.Search = m.searchText
		m.form = nil
		m.state = eventsStateTable
		m.rebuildTable()
		return nil

	case eventsStateEdit:
		if !m.save {
			m.draft = event.Draft{}
			m.fieldErrs = nil
			m.form = nil
			m.state = eventsStateTable
			return nil
		}
		// Whole-form validation on every save attempt. While any field
		// error exists the save is a no-op and the errors are re-shown.
		m.fieldErrs = event.ValidateDraft(m.draft)
		if len(m.fieldErrs) > 0 {
			m.form = m.buildEditForm()
			return nil
		}
		ev, err := m.draft.ToEvent()
		if err != nil {
			m.err = err
			return nil
		}
		m.form = nil
		m.draft = event.Draft{}
		m.state = eventsStateTable
		m.loading = true
		client := m.app.Client
		return func() tea.Msg {
			return eventMutatedMsg{action: "updated", err: client.UpdateEvent(context.Background(), ev)}
		}

	case eventsStateConfirmDelete:
		id := m.deleteID
		m.form = nil
		m.state = eventsStateTable
		if !m.confirmDelete {
			return nil
		}
		m.loading = true
		client := m.app.Client
		return func() tea.Msg {
			return eventMutatedMsg{action: "deleted", err: client.DeleteEvent(context.Background(), id)}
		}
	}

	return cmd
}

func (m *eventsModel) startSearch() {
	m.state = eventsStateSearch
	m.searchText = m.query.Search
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Search events (name or description)").Value(&m.searchText),
		),
	)
}

func (m *eventsModel) startEdit() tea.Cmd {
	ev, ok := m.selectedEvent()
	if !ok {
		return nil
	}
	m.state = eventsStateEdit
	m.draft = event.NewDraft(ev)
	m.fieldErrs = nil
	m.save = true
	m.imageNote = "Loading image..."
	m.form = m.buildEditForm()

	client := m.app.Client
	id := ev.ID
	return func() tea.Msg {
		img, err := client.FetchImage(context.Background(), id)
		return imageFetchedMsg{id: id, size: len(img), err: err}
	}
}

func (m *eventsModel) buildEditForm() *huh.Form {
	statusOptions := []huh.Option[string]{
		huh.NewOption(event.StatusApproved, event.StatusApproved),
		huh.NewOption(event.StatusPending, event.StatusPending),
		huh.NewOption(event.StatusRejected, event.StatusRejected),
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Event Name").Value(&m.draft.Name),
			huh.NewText().Title("Description").Value(&m.draft.Description),
			huh.NewInput().Title("Event Category").Value(&m.draft.Category),
			huh.NewInput().Title("Event Date (YYYY-MM-DD)").Value(&m.draft.Date),
			huh.NewInput().Title("Event Time (HH:MM)").Value(&m.draft.Time),
			huh.NewInput().Title("Event Venue").Value(&m.draft.Venue),
			huh.NewInput().Title("Event Zip Code").Value(&m.draft.CityZip),
			huh.NewInput().Title("Event Price").Value(&m.draft.Price),
			huh.NewSelect[string]().Title("Approval Status").Options(statusOptions...).Value(&m.draft.ApprovalStatus),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Save changes?").Value(&m.save),
		),
	)
}

func (m *eventsModel) startDelete() {
	ev, ok := m.selectedEvent()
	if !ok {
		return
	}
	m.state = eventsStateConfirmDelete
	m.deleteID = ev.ID
	m.deleteName = ev.Name
	m.confirmDelete = false
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q (id %d)?", ev.Name, ev.ID)).
				Value(&m.confirmDelete),
		),
	)
}

func (m *eventsModel) selectedEvent() (event.Event, bool) {
	row := m.table.SelectedRow()
	if row == nil {
		return event.Event{}, false
	}
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return event.Event{}, false
	}
	for _, ev := range m.events {
		if ev.ID == id {
			return ev, true
		}
	}
	return event.Event{}, false
}

func (m *eventsModel) rebuildTable() {
	m.view = event.Apply(m.events, m.query, time.Now())

	cursor := m.table.Cursor()

	columns := []table.Column{
		{Title: m.header("ID", event.ColumnID), Width: 5},
		{Title: m.header("Name", event.ColumnName), Width: 24},
		{Title: m.header("Category", event.ColumnCategory), Width: 12},
		{Title: m.header("Date", event.ColumnDate), Width: 10},
		{Title: m.header("Time", event.ColumnTime), Width: 8},
		{Title: m.header("Venue", event.ColumnVenue), Width: 18},
		{Title: m.header("Zip", event.ColumnZip), Width: 6},
		{Title: m.header("Price", event.ColumnPrice), Width: 8},
		{Title: m.header("Status", event.ColumnStatus), Width: 9},
	}

	rows := make([]table.Row, 0, len(m.view))
	for _, ev := range m.view {
		rows = append(rows, table.Row{
			strconv.Itoa(ev.ID),
			ev.Name,
			ev.Category,
			ev.Date.Format("2006-01-02"),
			ev.Time.String(),
			ev.Venue,
			ev.CityZip,
			"$" + ev.Price.StringFixed(2),
			ev.ApprovalStatus,
		})
	}

	m.table = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(maxInt(m.height-8, 3)),
	)
	if cursor >= 0 && cursor < len(rows) {
		m.table.SetCursor(cursor)
	}
}

func (m *eventsModel) header(title string, col event.Column) string {
	if m.query.SortColumn != col {
		return title
	}
	if m.query.SortDir == event.Descending {
		return title + " v"
	}
	return title + " ^"
}

func (m *eventsModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Events error: %v\n\nPress Enter/r to retry, Esc to go back.", m.err)
	}

	switch m.state {
	case eventsStateTable:
		return m.viewTable()
	case eventsStateEdit:
		return m.viewEdit()
	case eventsStateSearch:
		return m.form.View() + "\n\n(enter to apply, esc to cancel)"
	case eventsStateConfirmDelete:
		return m.form.View() + "\n\n(esc to cancel)"
	default:
		return "Events"
	}
}

func (m *eventsModel) viewTable() string {
	tiles := fmt.Sprintf("All %d  |  Approved %d  |  Pending %d  |  Rejected %d",
		m.counts.All, m.counts.Approved, m.counts.Pending, m.counts.Rejected)

	mode := "Filter: " + activeFilterLabel(m.query)
	if m.query.Search != "" {
		mode += fmt.Sprintf("  Search: %q", m.query.Search)
	}
	if m.loading {
		mode += "  (refreshing...)"
	}

	out := titleStyle.Render("Admin Dashboard") + "\n" + tiles + "\n" + mode + "\n\n" + m.table.View() +
		"\n\n(1-9 sort, f filter, t past events, / search, c clear search, enter edit, d delete, r refresh, q back)"
	if m.notice != "" {
		out += "\n" + m.notice
	}
	return out
}

func (m *eventsModel) viewEdit() string {
	head := titleStyle.Render(fmt.Sprintf("Edit Event %d", m.draft.ID)) + "\n" + m.imageNote + "\n"
	if len(m.fieldErrs) > 0 {
		head += errStyle.Render("Fix the following before saving:") + "\n"
		for _, field := range []string{
			event.FieldName, event.FieldDescription, event.FieldCategory,
			event.FieldDate, event.FieldTime, event.FieldVenue,
			event.FieldCityZip, event.FieldPrice, event.FieldStatus,
		} {
			if msg, ok := m.fieldErrs[field]; ok {
				head += "  - " + msg + "\n"
			}
		}
	}
	return head + "\n" + m.form.View() + "\n\n(esc to cancel)"
}

func nextStatusFilter(current string) string {
	switch current {
	case "", event.StatusAll:
		return event.StatusApproved
	case event.StatusApproved:
		return event.StatusPending
	case event.StatusPending:
		return event.StatusRejected
	default:
		return event.StatusAll
	}
}

func activeFilterLabel(q event.Query) string {
	if q.PastOnly {
		return "Past Events"
	}
	if q.Status == "" {
		return event.StatusAll
	}
	return q.Status
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
