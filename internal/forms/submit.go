// Package forms holds form models shared by the admin and user
// dashboards.
package forms

import (
	"context"
	"errors"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/anumohan208/Confidence/internal/api"
	"github.com/anumohan208/Confidence/internal/app"
	"github.com/anumohan208/Confidence/internal/event"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// SubmitModel drives the new-event submission form: collect fields plus
// an image file, validate, then create the event and link it to the
// submitting user.
type SubmitModel struct {
	app *app.App

	width  int
	height int

	Done bool

	state submitState

	form      *huh.Form
	sub       event.Submission
	fieldErrs event.FieldErrors
	send      bool

	result string
	err    error
}

type submitState int

const (
	submitStateForm submitState = iota
	submitStateSubmitting
	submitStateDone
)

type submitResultMsg struct {
	id  int
	err error
}

// NewSubmitModel builds the form with empty fields.
func NewSubmitModel(a *app.App) *SubmitModel {
	m := &SubmitModel{app: a, state: submitStateForm, send: true}
	m.form = m.buildForm()
	return m
}

func (m *SubmitModel) Init() tea.Cmd {
	return nil
}

func (m *SubmitModel) SetSize(w, h int) {
	m.width, m.height = w, h
}

func (m *SubmitModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Event Name").Value(&m.sub.Name),
			huh.NewInput().Title("Description").Value(&m.sub.Description),
			huh.NewInput().Title("Event Category").Value(&m.sub.Category),
			huh.NewInput().Title("Event Date (YYYY-MM-DD)").Value(&m.sub.Date),
			huh.NewInput().Title("Event Time (HH:MM)").Value(&m.sub.Time),
			huh.NewInput().Title("Event Venue").Value(&m.sub.Venue),
			huh.NewInput().Title("Event Zip Code").Value(&m.sub.CityZip),
			huh.NewInput().Title("Event Price").Value(&m.sub.Price),
			huh.NewInput().Title("Event Image (file path)").Value(&m.sub.ImagePath),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Submit event?").Value(&m.send),
		),
	)
}

func (m *SubmitModel) Update(msg tea.Msg) tea.Cmd {
	if result, ok := msg.(submitResultMsg); ok {
		m.state = submitStateDone
		switch {
		case result.err == nil:
			m.result = fmt.Sprintf("Event %d submitted for approval.", result.id)
		case errors.Is(result.err, api.ErrSubmissionLink):
			// The event exists server-side; only the link failed. There
			// is no rollback, so say exactly that.
			log.Printf("submit event: %v", result.err)
			m.result = fmt.Sprintf("Event %d was created, but linking it to your submissions failed.", result.id)
		default:
			log.Printf("submit event: %v", result.err)
			m.result = fmt.Sprintf("Error creating event: %v", result.err)
		}
		return nil
	}

	switch m.state {
	case submitStateForm:
		return m.updateForm(msg)
	case submitStateDone:
		if _, ok := msg.(tea.KeyMsg); ok {
			m.Done = true
		}
		return nil
	default:
		return nil
	}
}

func (m *SubmitModel) updateForm(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.Done = true
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

	if !m.send {
		m.Done = true
		return nil
	}

	// Whole-form validation on each submit attempt; nothing reaches the
	// network while a field error remains.
	m.fieldErrs = event.ValidateSubmission(m.sub)
	if len(m.fieldErrs) > 0 {
		m.form = m.buildForm()
		return nil
	}

	m.state = submitStateSubmitting
	sub := m.sub
	client := m.app.Client
	userID := m.app.User.ID
	return func() tea.Msg {
		id, err := client.CreateEvent(context.Background(), sub)
		if err != nil {
			return submitResultMsg{err: err}
		}
		// Second leg of the accepted two-step write.
		if err := client.AddSubmission(context.Background(), userID, id); err != nil {
			return submitResultMsg{id: id, err: err}
		}
		return submitResultMsg{id: id}
	}
}

func (m *SubmitModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Submit error: %v\n\nPress Esc to go back.", m.err)
	}

	switch m.state {
	case submitStateSubmitting:
		return "Submitting event..."
	case submitStateDone:
		return m.result + "\n\n(press any key to continue)"
	default:
		head := titleStyle.Render("Submit New Event") + "\nApproval Status: Pending\n"
		if len(m.fieldErrs) > 0 {
			head += errStyle.Render("Fix the following before submitting:") + "\n"
			for _, field := range []string{
				event.FieldName, event.FieldDescription, event.FieldCategory,
				event.FieldDate, event.FieldTime, event.FieldVenue,
				event.FieldCityZip, event.FieldPrice, event.FieldImage,
			} {
				if msg, ok := m.fieldErrs[field]; ok {
					head += "  - " + msg + "\n"
				}
			}
		}
		return head + "\n" + m.form.View() + "\n\n(esc to cancel)"
	}
}
