// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/figaro/internal/api"
	"github.com/javiermolinar/figaro/internal/schedule"
)

// BarbersLoadedMsg is sent when the barber list is loaded.
type BarbersLoadedMsg struct {
	Barbers []api.Barber
}

// CustomersLoadedMsg is sent when the customer list is loaded.
type CustomersLoadedMsg struct {
	Customers []api.Customer
}

// ServicesLoadedMsg is sent when the service list is loaded.
type ServicesLoadedMsg struct {
	Services []api.Service
}

// AppointmentsLoadedMsg is sent when the appointment list is loaded.
type AppointmentsLoadedMsg struct {
	Appointments []api.Appointment
}

// DayAgendaMsg carries one day of a barber's agenda. Epoch identifies the
// agenda request generation the fetch belongs to; results from a superseded
// generation are dropped by the update loop.
type DayAgendaMsg struct {
	Epoch        int
	Date         string // YYYY-MM-DD
	Appointments []api.Appointment
	Err          error
}

// AppointmentCreatedMsg is sent when an appointment is booked.
type AppointmentCreatedMsg struct {
	Appointment api.Appointment
}

// AppointmentConflictMsg is sent when a booking collided with an existing
// appointment. The pending details are kept so the user can adjust and retry.
type AppointmentConflictMsg struct {
	Message string
}

// AppointmentDeletedMsg is sent when an appointment is cancelled.
type AppointmentDeletedMsg struct {
	ID int64
}

// PaymentToggledMsg is sent when an appointment's paid flag changed.
type PaymentToggledMsg struct {
	Appointment api.Appointment
}

// EntitySavedMsg is sent when a barber, customer, or service was created or
// updated. Name is used for the status line.
type EntitySavedMsg struct {
	Name string
}

// EntityDeletedMsg is sent when a barber, customer, or service was removed.
type EntityDeletedMsg struct {
	Name string
}

// ErrMsg is sent when an operation fails.
type ErrMsg struct {
	Err error
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// ClearStatusAfter schedules a status line reset.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// LoadBarbers fetches the barber list.
func LoadBarbers(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		barbers, err := client.ListBarbers(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return BarbersLoadedMsg{Barbers: barbers}
	}
}

// LoadCustomers fetches the customer list.
func LoadCustomers(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		customers, err := client.ListCustomers(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return CustomersLoadedMsg{Customers: customers}
	}
}

// LoadServices fetches the service list.
func LoadServices(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		services, err := client.ListServices(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return ServicesLoadedMsg{Services: services}
	}
}

// LoadAppointments fetches the appointment list.
func LoadAppointments(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		appts, err := client.ListAppointments(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return AppointmentsLoadedMsg{Appointments: appts}
	}
}

// LoadAll refreshes every entity list in one batch.
func LoadAll(client *api.Client) tea.Cmd {
	return tea.Batch(
		LoadBarbers(client),
		LoadCustomers(client),
		LoadServices(client),
		LoadAppointments(client),
	)
}

// LoadAgendaWeek fetches one barber's agenda for all 7 days of a week. Each
// per-day result carries the epoch captured here, so a navigation that has
// since moved on can discard the whole batch.
func LoadAgendaWeek(client *api.Client, barberID int64, week schedule.Week, epoch int) tea.Cmd {
	days := week.Days()
	cmds := make([]tea.Cmd, 0, len(days))
	for _, day := range days {
		date := schedule.ISODate(day)
		cmds = append(cmds, func() tea.Msg {
			appts, err := client.DayAgenda(context.Background(), barberID, date)
			return DayAgendaMsg{Epoch: epoch, Date: date, Appointments: appts, Err: err}
		})
	}
	return tea.Batch(cmds...)
}

// CreateAppointment books an appointment. A 409 maps to
// AppointmentConflictMsg so the update loop can keep the pending details.
func CreateAppointment(client *api.Client, req api.CreateAppointmentRequest) tea.Cmd {
	return func() tea.Msg {
		appt, err := client.CreateAppointment(context.Background(), req)
		if err != nil {
			if api.IsConflict(err) {
				return AppointmentConflictMsg{Message: api.UserMessage(err)}
			}
			return ErrMsg{Err: err}
		}
		return AppointmentCreatedMsg{Appointment: appt}
	}
}

// DeleteAppointment cancels an appointment.
func DeleteAppointment(client *api.Client, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := client.DeleteAppointment(context.Background(), id); err != nil {
			return ErrMsg{Err: err}
		}
		return AppointmentDeletedMsg{ID: id}
	}
}

// SetPaid marks an appointment as paid or unpaid.
func SetPaid(client *api.Client, id int64, paid bool) tea.Cmd {
	return func() tea.Msg {
		appt, err := client.SetPaid(context.Background(), id, paid)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return PaymentToggledMsg{Appointment: appt}
	}
}

// CreateBarber registers a barber.
func CreateBarber(client *api.Client, req api.CreateBarberRequest) tea.Cmd {
	return func() tea.Msg {
		barber, err := client.CreateBarber(context.Background(), req)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return EntitySavedMsg{Name: barber.Name}
	}
}

// DeleteBarber removes a barber.
func DeleteBarber(client *api.Client, barber api.Barber) tea.Cmd {
	return func() tea.Msg {
		if err := client.DeleteBarber(context.Background(), barber.ID); err != nil {
			return ErrMsg{Err: err}
		}
		return EntityDeletedMsg{Name: barber.Name}
	}
}

// CreateCustomer registers a customer.
func CreateCustomer(client *api.Client, req api.CreateCustomerRequest) tea.Cmd {
	return func() tea.Msg {
		customer, err := client.CreateCustomer(context.Background(), req)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return EntitySavedMsg{Name: customer.Name}
	}
}

// DeleteCustomer removes a customer.
func DeleteCustomer(client *api.Client, customer api.Customer) tea.Cmd {
	return func() tea.Msg {
		if err := client.DeleteCustomer(context.Background(), customer.ID); err != nil {
			return ErrMsg{Err: err}
		}
		return EntityDeletedMsg{Name: customer.Name}
	}
}

// CreateService registers a service.
func CreateService(client *api.Client, req api.CreateServiceRequest) tea.Cmd {
	return func() tea.Msg {
		service, err := client.CreateService(context.Background(), req)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return EntitySavedMsg{Name: service.Name}
	}
}

// UpdateService applies a partial update to a service.
func UpdateService(client *api.Client, req api.UpdateServiceRequest) tea.Cmd {
	return func() tea.Msg {
		service, err := client.UpdateService(context.Background(), req)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return EntitySavedMsg{Name: service.Name}
	}
}

// SetServiceActive deactivates or reactivates a service.
func SetServiceActive(client *api.Client, service api.Service, active bool) tea.Cmd {
	return func() tea.Msg {
		var err error
		if active {
			err = client.ReactivateService(context.Background(), service.ID)
		} else {
			err = client.DeactivateService(context.Background(), service.ID)
		}
		if err != nil {
			return ErrMsg{Err: err}
		}
		return EntitySavedMsg{Name: service.Name}
	}
}
