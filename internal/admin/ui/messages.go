package ui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/anumohan208/Confidence/internal/app"
	"github.com/anumohan208/Confidence/internal/message"
)

type messagesModel struct {
	app *app.App

	width  int
	height int

	Done bool

	state messagesState
	list  list.Model
	err   error

	messages []message.Message
	loading  bool
	notice   string

	selected *message.Message

	form        *huh.Form
	composeTo   string
	composeSubj string
	composeBody string
	composeSend bool
}

type messagesState int

const (
	messagesStateList messagesState = iota
	messagesStateDetail
	messagesStateCompose
)

type messagesLoadedMsg struct {
	messages []message.Message
	err      error
}

type emailSentMsg struct {
	to  string
	err error
}

type msgItem struct {
	id    int
	title string
	desc  string
}

func (i msgItem) Title() string       { return i.title }
func (i msgItem) Description() string { return i.desc }
func (i msgItem) FilterValue() string { return i.title }

func newMessagesModel(a *app.App) *messagesModel {
	m := &messagesModel{app: a, state: messagesStateList, loading: true}
	m.rebuildList()
	return m
}

func (m *messagesModel) Init() tea.Cmd {
	return m.fetchMessages()
}

func (m *messagesModel) fetchMessages() tea.Cmd {
	client := m.app.Client
	return func() tea.Msg {
		msgs, err := client.ListMessages(context.Background())
		return messagesLoadedMsg{messages: msgs, err: err}
	}
}

func (m *messagesModel) SetSize(w, h int) {
	m.width, m.height = w, h
	m.list.SetSize(w, h-2)
}

func (m *messagesModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case messagesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			log.Printf("fetch messages: %v", msg.err)
			m.err = msg.err
			return nil
		}
		m.err = nil
		m.messages = msg.messages
		m.rebuildList()
		return nil

	case emailSentMsg:
		// Fire and forget: one acknowledgement, no retry.
		if msg.err != nil {
			log.Printf("send email to %s: %v", msg.to, msg.err)
			m.notice = "Failed to send email."
		} else {
			m.notice = "Email sent successfully!"
		}
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
				return m.fetchMessages()
			}
		}
		return nil
	}

	switch m.state {
	case messagesStateList:
		return m.updateList(msg)
	case messagesStateDetail:
		return m.updateDetail(msg)
	case messagesStateCompose:
		return m.updateCompose(msg)
	default:
		return nil
	}
}

func (m *messagesModel) updateList(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc":
			m.Done = true
			return nil
		case "r":
			m.loading = true
			m.notice = ""
			return m.fetchMessages()
		case "enter":
			it, ok := m.list.SelectedItem().(msgItem)
			if !ok {
				return nil
			}
			for i := range m.messages {
				if m.messages[i].ID == it.id {
					m.selected = &m.messages[i]
					m.state = messagesStateDetail
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

func (m *messagesModel) updateDetail(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q":
			m.selected = nil
			m.state = messagesStateList
			return nil
		case "r":
			m.startCompose()
			return nil
		}
	}
	return nil
}

func (m *messagesModel) updateCompose(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.form = nil
		m.state = messagesStateDetail
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

	m.form = nil
	m.state = messagesStateDetail
	if !m.composeSend {
		return nil
	}

	to, subj, body := m.composeTo, m.composeSubj, m.composeBody
	client := m.app.Client
	return func() tea.Msg {
		return emailSentMsg{to: to, err: client.SendEmail(context.Background(), to, subj, body)}
	}
}

// startCompose seeds the reply form from the selected message: the
// recipient, the subject and a quoted body all come from the source.
func (m *messagesModel) startCompose() {
	if m.selected == nil {
		return
	}
	m.state = messagesStateCompose
	m.composeTo = m.selected.Email
	m.composeSubj = "Re: " + m.selected.Subject
	m.composeBody = quote(m.selected.Body)
	m.composeSend = true
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("To").Value(&m.composeTo).Validate(nonEmpty("recipient")),
			huh.NewInput().Title("Subject").Value(&m.composeSubj).Validate(nonEmpty("subject")),
			huh.NewText().Title("Message").Value(&m.composeBody).Validate(nonEmpty("message")),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Send email?").Value(&m.composeSend),
		),
	)
}

func quote(body string) string {
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	return strings.Join(lines, "\n") + "\n\n"
}

func (m *messagesModel) rebuildList() {
	items := make([]list.Item, 0, len(m.messages))
	for _, msg := range m.messages {
		desc := fmt.Sprintf("from %s <%s>", msg.Name, msg.Email)
		items = append(items, msgItem{id: msg.ID, title: msg.Subject, desc: desc})
	}

	m.list = list.New(items, list.NewDefaultDelegate(), m.width, m.height-2)
	m.list.SetShowStatusBar(false)
	m.list.SetFilteringEnabled(true)
	m.list.SetShowHelp(true)
	m.list.Title = "Messages from Users"
}

func (m *messagesModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Messages error: %v\n\nPress Enter/r to retry, Esc to go back.", m.err)
	}

	switch m.state {
	case messagesStateList:
		suffix := "\n(enter to read, r refresh, q back)"
		if m.loading {
			suffix = "\n(loading...)" + suffix
		}
		if m.notice != "" {
			suffix += "\n" + m.notice
		}
		return m.list.View() + suffix
	case messagesStateDetail:
		if m.selected == nil {
			return "No message selected\n\n(esc to go back)"
		}
		head := fmt.Sprintf("From: %s <%s>\nSubject: %s", m.selected.Name, m.selected.Email, m.selected.Subject)
		out := head + "\n\n" + m.selected.Body + "\n\n(r to reply, esc back)"
		if m.notice != "" {
			out += "\n" + m.notice
		}
		return out
	case messagesStateCompose:
		return titleStyle.Render("Send Email") + "\n" + m.form.View() + "\n\n(esc to cancel)"
	default:
		return "Messages"
	}
}
