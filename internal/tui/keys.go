package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/figaro/internal/api"
	"github.com/javiermolinar/figaro/internal/schedule"
	"github.com/javiermolinar/figaro/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeDraft:
		return m.handleDraftKeys(msg)
	case ModeConfirm:
		return m.handleConfirmKeys(msg)
	case ModeForm:
		return m.handleFormKeys(msg)
	case ModeSearch:
		return m.handleSearchKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// View switching
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "1":
		return m.switchView(ViewDashboard)
	case "2":
		return m.switchView(ViewAgenda)
	case "3":
		return m.switchView(ViewAppointments)
	case "4":
		return m.switchView(ViewBarbers)
	case "5":
		return m.switchView(ViewCustomers)
	case "6":
		return m.switchView(ViewServices)
	case "r":
		model, cmd := m.setStatus("Refreshing...")
		reload := model.loadAgendaCmd()
		return model, tea.Batch(cmd, commands.LoadAll(model.client), reload)
	}

	switch m.view {
	case ViewAgenda:
		return m.handleAgendaKeys(msg)
	case ViewAppointments:
		return m.handleAppointmentKeys(msg)
	case ViewBarbers:
		return m.handleBarberKeys(msg)
	case ViewCustomers:
		return m.handleCustomerKeys(msg)
	case ViewServices:
		return m.handleServiceKeys(msg)
	}
	return m, nil
}

// switchView changes the active screen, starting an agenda load when the
// agenda becomes visible.
func (m Model) switchView(v View) (tea.Model, tea.Cmd) {
	prev := m.view
	m.view = v
	LogViewChange(prev, v)
	if v == ViewAgenda {
		if _, ok := m.selectedBarber(); !ok {
			return m.setStatus("Register a barber first")
		}
		cmd := m.loadAgenda()
		return m, cmd
	}
	return m, nil
}

// handleAgendaKeys handles the weekly agenda grid.
func (m Model) handleAgendaKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		if m.cursor.Day > 0 {
			m.cursor.Day--
		}
	case "l", "right":
		if m.cursor.Day < schedule.DaysPerWeek-1 {
			m.cursor.Day++
		}
	case "j", "down":
		if m.cursor.Slot < len(m.slots)-1 {
			m.cursor.Slot++
		}
	case "k", "up":
		if m.cursor.Slot > 0 {
			m.cursor.Slot--
		}

	// Week paging
	case "H", "shift+left":
		m.week = m.week.Prev()
		cmd := m.loadAgenda()
		return m, cmd
	case "L", "shift+right":
		m.week = m.week.Next()
		cmd := m.loadAgenda()
		return m, cmd
	case "t":
		m.week = schedule.NewWeek(m.nowFunc())
		cmd := m.loadAgenda()
		return m, cmd

	// Barber cycling
	case "[":
		if len(m.barbers) > 0 {
			m.barberIdx = (m.barberIdx + len(m.barbers) - 1) % len(m.barbers)
			cmd := m.loadAgenda()
			return m, cmd
		}
	case "]":
		if len(m.barbers) > 0 {
			m.barberIdx = (m.barberIdx + 1) % len(m.barbers)
			cmd := m.loadAgenda()
			return m, cmd
		}

	case "y":
		if err := clipboard.WriteAll(m.agendaExportText()); err != nil {
			return m.setStatus("Copy failed: " + err.Error())
		}
		return m.setStatus("Week agenda copied to clipboard")

	case "enter":
		return m.handleSlotClick()
	}
	return m, nil
}

// handleSlotClick captures a free slot under the cursor as a pending
// appointment.
func (m Model) handleSlotClick() (tea.Model, tea.Cmd) {
	if m.loading {
		return m.setStatus("Still loading the week")
	}
	if m.cursor.Slot >= len(m.slots) {
		return m, nil
	}
	days := m.week.Days()
	day := days[m.cursor.Day]
	slot := m.slots[m.cursor.Slot]

	if schedule.Occupied(slot, m.dayIntervals(schedule.ISODate(day))) {
		return m.setStatus("Slot already booked")
	}

	draft := schedule.NewDraft(day, slot)
	m.draft = &draft
	m.draftCustomer = 0
	m.draftService = 0
	m.draftFocus = 0
	m.conflictMsg = ""
	m.mode = ModeDraft
	return m, nil
}

// handleDraftKeys drives the pending appointment modal.
func (m Model) handleDraftKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Discarding a draft has no side effects.
		m.draft = nil
		m.conflictMsg = ""
		m.mode = ModeNormal
		return m, nil

	case "tab", "shift+tab":
		m.draftFocus = 1 - m.draftFocus
		return m, nil

	case "j", "down":
		if m.draftFocus == 0 {
			if m.draftCustomer < len(m.customers)-1 {
				m.draftCustomer++
			}
		} else if m.draftService < len(m.activeServices())-1 {
			m.draftService++
		}
		return m, nil

	case "k", "up":
		if m.draftFocus == 0 {
			if m.draftCustomer > 0 {
				m.draftCustomer--
			}
		} else if m.draftService > 0 {
			m.draftService--
		}
		return m, nil

	case "enter":
		return m.confirmDraft()
	}
	return m, nil
}

// confirmDraft books the pending appointment.
func (m Model) confirmDraft() (tea.Model, tea.Cmd) {
	if m.draft == nil {
		m.mode = ModeNormal
		return m, nil
	}
	if len(m.customers) == 0 {
		return m.setStatus(schedule.ErrDraftNoCustomer.Error())
	}
	active := m.activeServices()
	if len(active) == 0 {
		return m.setStatus(schedule.ErrDraftNoService.Error())
	}
	barber, ok := m.selectedBarber()
	if !ok {
		return m.setStatus("No barber selected")
	}

	customer := m.customers[m.draftCustomer]
	service := active[m.draftService]

	start, end := m.draft.Interval()
	// Appointments are at least an hour long, so a shorter slot grid still
	// books a full hour from the clicked start.
	if end.Sub(start) < schedule.MinAppointmentDuration {
		end = start.Add(schedule.MinAppointmentDuration)
	}

	m.conflictMsg = ""
	return m, commands.CreateAppointment(m.client, api.CreateAppointmentRequest{
		CustomerID: customer.ID,
		BarberID:   barber.ID,
		ServiceID:  service.ID,
		Start:      api.NewLocalTime(start),
		End:        api.NewLocalTime(end),
	})
}

// handleAppointmentKeys handles the appointment list.
func (m Model) handleAppointmentKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.moveCursor(ViewAppointments, 1, len(m.appointments))
	case "k", "up":
		m.moveCursor(ViewAppointments, -1, len(m.appointments))

	case "d":
		appt, ok := m.selectedAppointment()
		if !ok {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirm = confirmState{
			message: fmt.Sprintf("Cancel appointment #%d (%s)?", appt.ID, appt.Start.Format("Mon 02 Jan 15:04")),
			action:  commands.DeleteAppointment(m.client, appt.ID),
		}

	case "p":
		appt, ok := m.selectedAppointment()
		if !ok {
			return m, nil
		}
		if !appt.Paid && !appt.Finished(m.nowFunc()) {
			return m.setStatus("Cannot mark as paid before the appointment ends")
		}
		verb := "Mark"
		if appt.Paid {
			verb = "Unmark"
		}
		m.mode = ModeConfirm
		m.confirm = confirmState{
			message: fmt.Sprintf("%s appointment #%d as paid?", verb, appt.ID),
			action:  commands.SetPaid(m.client, appt.ID, !appt.Paid),
		}
	}
	return m, nil
}

// handleBarberKeys handles the barber list.
func (m Model) handleBarberKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.moveCursor(ViewBarbers, 1, len(m.barbers))
	case "k", "up":
		m.moveCursor(ViewBarbers, -1, len(m.barbers))

	case "a":
		m.form = newBarberForm(m.styles)
		m.mode = ModeForm
		return m, m.form.Focus()

	case "d":
		if m.listCursor[ViewBarbers] >= len(m.barbers) {
			return m, nil
		}
		barber := m.barbers[m.listCursor[ViewBarbers]]
		m.mode = ModeConfirm
		m.confirm = confirmState{
			message: fmt.Sprintf("Delete barber %s?", barber.Name),
			action:  commands.DeleteBarber(m.client, barber),
		}

	case "enter":
		// Jump to this barber's agenda.
		if m.listCursor[ViewBarbers] < len(m.barbers) {
			m.barberIdx = m.listCursor[ViewBarbers]
			return m.switchView(ViewAgenda)
		}
	}
	return m, nil
}

// handleCustomerKeys handles the customer list.
func (m Model) handleCustomerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.moveCursor(ViewCustomers, 1, len(m.customers))
	case "k", "up":
		m.moveCursor(ViewCustomers, -1, len(m.customers))

	case "a":
		m.form = newCustomerForm(m.styles)
		m.mode = ModeForm
		return m, m.form.Focus()

	case "d":
		if m.listCursor[ViewCustomers] >= len(m.customers) {
			return m, nil
		}
		customer := m.customers[m.listCursor[ViewCustomers]]
		m.mode = ModeConfirm
		m.confirm = confirmState{
			message: fmt.Sprintf("Delete customer %s?", customer.Name),
			action:  commands.DeleteCustomer(m.client, customer),
		}
	}
	return m, nil
}

// handleServiceKeys handles the service list.
func (m Model) handleServiceKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleServices()

	switch msg.String() {
	case "j", "down":
		m.moveCursor(ViewServices, 1, len(visible))
	case "k", "up":
		m.moveCursor(ViewServices, -1, len(visible))

	case "a":
		m.form = newServiceForm(m.styles)
		m.mode = ModeForm
		return m, m.form.Focus()

	case "e":
		if m.listCursor[ViewServices] >= len(visible) {
			return m, nil
		}
		m.form = newServiceEditForm(m.styles, visible[m.listCursor[ViewServices]])
		m.mode = ModeForm
		return m, m.form.Focus()

	case "x":
		if m.listCursor[ViewServices] >= len(visible) {
			return m, nil
		}
		service := visible[m.listCursor[ViewServices]]
		verb := "Deactivate"
		if !service.Active {
			verb = "Reactivate"
		}
		m.mode = ModeConfirm
		m.confirm = confirmState{
			message: fmt.Sprintf("%s service %s?", verb, service.Name),
			action:  commands.SetServiceActive(m.client, service, !service.Active),
		}

	case "i":
		m.showInactive = !m.showInactive
		m.clampCursor(ViewServices, len(m.visibleServices()))

	case "/":
		m.mode = ModeSearch
		m.search.SetValue(m.serviceFilter)
		m.search.Focus()
		return m, nil
	}
	return m, nil
}

// handleSearchKeys handles the service filter input.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.serviceFilter = ""
		m.search.SetValue("")
		m.search.Blur()
		m.mode = ModeNormal
		return m, nil
	case "enter":
		m.search.Blur()
		m.mode = ModeNormal
		m.clampCursor(ViewServices, len(m.visibleServices()))
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.serviceFilter = m.search.Value()
	m.clampCursor(ViewServices, len(m.visibleServices()))
	return m, cmd
}

// handleConfirmKeys handles yes/no confirmations.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		action := m.confirm.action
		m.mode = ModeNormal
		m.confirm = confirmState{}
		return m, action
	case "n", "N", "esc":
		m.mode = ModeNormal
		m.confirm = confirmState{}
		return m, nil
	}
	return m, nil
}

// handleFormKeys drives entity creation/edit forms.
func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = entityForm{}
		m.mode = ModeNormal
		return m, nil

	case "tab", "down":
		m.form.NextField()
		return m, nil
	case "shift+tab", "up":
		m.form.PrevField()
		return m, nil

	case "enter":
		cmd, err := m.form.Submit(m.client)
		if err != nil {
			return m.setStatus(err.Error())
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// selectedAppointment returns the appointment under the list cursor.
func (m Model) selectedAppointment() (api.Appointment, bool) {
	idx := m.listCursor[ViewAppointments]
	if idx >= len(m.appointments) {
		return api.Appointment{}, false
	}
	return m.appointments[idx], true
}

// moveCursor moves a list cursor by delta, clamped to the list.
func (m *Model) moveCursor(v View, delta, length int) {
	next := m.listCursor[v] + delta
	if next < 0 {
		next = 0
	}
	if next >= length {
		next = length - 1
	}
	if next < 0 {
		next = 0
	}
	m.listCursor[v] = next
}
