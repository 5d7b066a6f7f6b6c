package tui

import (
	"fmt"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/figaro/internal/api"
	"github.com/javiermolinar/figaro/internal/tui/commands"
)

const statusDuration = 4 * time.Second

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.BarbersLoadedMsg:
		m.barbers = msg.Barbers
		if m.barberIdx >= len(m.barbers) {
			m.barberIdx = 0
		}
		m.clampCursor(ViewBarbers, len(m.barbers))
		return m, nil

	case commands.CustomersLoadedMsg:
		m.customers = msg.Customers
		m.clampCursor(ViewCustomers, len(m.customers))
		return m, nil

	case commands.ServicesLoadedMsg:
		m.services = msg.Services
		m.clampCursor(ViewServices, len(m.visibleServices()))
		return m, nil

	case commands.AppointmentsLoadedMsg:
		m.appointments = msg.Appointments
		sortAppointments(m.appointments)
		m.clampCursor(ViewAppointments, len(m.appointments))
		return m, nil

	case commands.DayAgendaMsg:
		// A result for a superseded window; the user has navigated on.
		if msg.Epoch != m.epoch {
			return m, nil
		}
		m.pendingDays--
		if m.pendingDays <= 0 {
			m.loading = false
		}
		if msg.Err != nil {
			return m.setStatus(fmt.Sprintf("Error loading %s: %s", msg.Date, userMessage(msg.Err)))
		}
		m.dayAgenda[msg.Date] = msg.Appointments
		return m, nil

	case commands.AppointmentCreatedMsg:
		m.draft = nil
		m.conflictMsg = ""
		m.mode = ModeNormal
		m.view = ViewAppointments
		model, cmd := m.setStatus("Appointment booked")
		reload := model.loadAgendaCmd()
		return model, tea.Batch(cmd, commands.LoadAppointments(model.client), reload)

	case commands.AppointmentConflictMsg:
		// Keep the draft alive so the user can pick another slot or retry.
		m.conflictMsg = msg.Message
		return m, nil

	case commands.AppointmentDeletedMsg:
		model, cmd := m.setStatus("Appointment cancelled")
		reload := model.loadAgendaCmd()
		return model, tea.Batch(cmd, commands.LoadAppointments(model.client), reload)

	case commands.PaymentToggledMsg:
		for i, a := range m.appointments {
			if a.ID == msg.Appointment.ID {
				m.appointments[i].Paid = msg.Appointment.Paid
			}
		}
		if msg.Appointment.Paid {
			return m.setStatus("Marked as paid")
		}
		return m.setStatus("Marked as unpaid")

	case commands.EntitySavedMsg:
		m.mode = ModeNormal
		m.form = entityForm{}
		model, cmd := m.setStatus(fmt.Sprintf("Saved %s", msg.Name))
		return model, tea.Batch(cmd, commands.LoadAll(m.client))

	case commands.EntityDeletedMsg:
		model, cmd := m.setStatus(fmt.Sprintf("Deleted %s", msg.Name))
		return model, tea.Batch(cmd, commands.LoadAll(m.client))

	case commands.ErrMsg:
		m.loading = false
		if m.mode == ModeConfirm {
			m.mode = ModeNormal
		}
		return m.setStatus("Error: " + userMessage(msg.Err))

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Forward everything else to the focused text input.
	if m.mode == ModeSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.serviceFilter = m.search.Value()
		return m, cmd
	}
	if m.mode == ModeForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	return m, nil
}

// setStatus shows a temporary status line message.
func (m Model) setStatus(text string) (Model, tea.Cmd) {
	m.statusMsg = text
	m.statusTime = time.Now().Add(statusDuration)
	return m, commands.ClearStatusAfter(statusDuration)
}

// loadAgendaCmd reloads the agenda window when a barber is selected. Used
// after mutations that may have changed the visible week.
func (m *Model) loadAgendaCmd() tea.Cmd {
	if _, ok := m.selectedBarber(); !ok {
		return nil
	}
	return m.loadAgenda()
}

// sortAppointments orders the list newest first. The backend does not
// guarantee an order, so the view imposes one.
func sortAppointments(appts []api.Appointment) {
	sort.SliceStable(appts, func(i, j int) bool {
		return appts[i].Start.After(appts[j].Start.Time)
	})
}

// clampCursor keeps a list cursor inside the list after a reload.
func (m *Model) clampCursor(v View, length int) {
	if m.listCursor[v] >= length {
		if length == 0 {
			m.listCursor[v] = 0
		} else {
			m.listCursor[v] = length - 1
		}
	}
}
