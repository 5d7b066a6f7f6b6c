package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/figaro/internal/api"
	"github.com/javiermolinar/figaro/internal/schedule"
)

// dashboardView renders the summary counts screen.
func (m Model) dashboardView() string {
	activeBarbers := 0
	for _, b := range m.barbers {
		if b.Active {
			activeBarbers++
		}
	}

	today := schedule.TruncateToDay(m.nowFunc())
	apptsToday := 0
	for _, a := range m.appointments {
		if schedule.TruncateToDay(a.Start.Time).Equal(today) {
			apptsToday++
		}
	}

	var b strings.Builder
	b.WriteString(m.styles.TitleStyle.Render("Figaro"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  Active barbers      %d\n", activeBarbers)
	fmt.Fprintf(&b, "  Customers           %d\n", len(m.customers))
	fmt.Fprintf(&b, "  Appointments today  %d\n", apptsToday)
	fmt.Fprintf(&b, "  Total appointments  %d\n", len(m.appointments))
	b.WriteString("\n")
	b.WriteString(m.styles.HelpStyle.Render("  2: agenda  ·  3: appointments  ·  4: barbers  ·  5: customers  ·  6: services"))
	return b.String()
}

// barbersView renders the barber list.
func (m Model) barbersView() string {
	var b strings.Builder
	b.WriteString(m.styles.TitleStyle.Render("Barbers"))
	b.WriteString("\n\n")

	if len(m.barbers) == 0 {
		b.WriteString(m.styles.HelpStyle.Render("No barbers yet. Press a to add one."))
		return b.String()
	}

	for i, barber := range m.barbers {
		status := "active"
		if !barber.Active {
			status = "inactive"
		}
		line := fmt.Sprintf(" %-24s %-20s %-14s %s", barber.Name, barber.Specialty, barber.Phone, status)
		b.WriteString(m.listRowStyle(ViewBarbers, i, barber.Active).Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.HelpStyle.Render("a: add  ·  d: delete  ·  enter: open agenda"))
	return b.String()
}

// customersView renders the customer list.
func (m Model) customersView() string {
	var b strings.Builder
	b.WriteString(m.styles.TitleStyle.Render("Customers"))
	b.WriteString("\n\n")

	if len(m.customers) == 0 {
		b.WriteString(m.styles.HelpStyle.Render("No customers yet. Press a to add one."))
		return b.String()
	}

	for i, c := range m.customers {
		line := fmt.Sprintf(" %-24s %-16s %s", c.Name, c.Document, c.Phone)
		b.WriteString(m.listRowStyle(ViewCustomers, i, true).Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.HelpStyle.Render("a: add  ·  d: delete"))
	return b.String()
}

// servicesView renders the service list with the inactive toggle and filter.
func (m Model) servicesView() string {
	var b strings.Builder
	title := "Services"
	if m.showInactive {
		title += " (including inactive)"
	}
	b.WriteString(m.styles.TitleStyle.Render(title))
	if m.serviceFilter != "" {
		b.WriteString(m.styles.HelpStyle.Render("  filter: " + m.serviceFilter))
	}
	b.WriteString("\n\n")

	if m.mode == ModeSearch {
		b.WriteString(" " + m.search.View() + "\n\n")
	}

	visible := m.visibleServices()
	if len(visible) == 0 {
		b.WriteString(m.styles.HelpStyle.Render("No matching services."))
		return b.String()
	}

	for i, s := range visible {
		status := "active"
		if !s.Active {
			status = "inactive"
		}
		line := fmt.Sprintf(" %-28s %10.2f   %s", s.Name, s.Price, status)
		b.WriteString(m.listRowStyle(ViewServices, i, s.Active).Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.HelpStyle.Render("a: add  ·  e: edit  ·  x: toggle active  ·  i: show inactive  ·  /: filter"))
	return b.String()
}

// appointmentsView renders the appointment list with payment chips.
func (m Model) appointmentsView() string {
	var b strings.Builder
	b.WriteString(m.styles.TitleStyle.Render("Appointments"))
	b.WriteString("\n\n")

	if len(m.appointments) == 0 {
		b.WriteString(m.styles.HelpStyle.Render("No appointments. Book one from the agenda (2)."))
		return b.String()
	}

	for i, a := range m.appointments {
		customer, service, barber := "-", "-", "-"
		if a.Customer != nil {
			customer = a.Customer.Name
		}
		if a.Service != nil {
			service = a.Service.Name
		}
		if a.Barber != nil {
			barber = a.Barber.Name
		}
		line := fmt.Sprintf(" %s %s-%s  %-20s %-16s %-16s",
			a.Start.Format("Mon 02 Jan"),
			a.Start.Format("15:04"),
			a.End.Format("15:04"),
			customer, service, barber,
		)
		b.WriteString(m.listRowStyle(ViewAppointments, i, true).Render(line))
		b.WriteString(" " + m.paymentChip(a))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.HelpStyle.Render("p: toggle paid  ·  d: cancel  ·  r: refresh"))
	return b.String()
}

// paymentChip renders the payment state of an appointment: paid, due once
// it has ended, upcoming otherwise.
func (m Model) paymentChip(a api.Appointment) string {
	switch {
	case a.Paid:
		return m.styles.ChipPaidStyle.Render("[paid]")
	case a.Finished(m.nowFunc()):
		return m.styles.ChipDueStyle.Render("[due]")
	default:
		return m.styles.ChipUpcomingStyle.Render("[upcoming]")
	}
}

func (m Model) listRowStyle(v View, idx int, active bool) lipgloss.Style {
	style := m.styles.RowStyle
	if !active {
		style = m.styles.RowMutedStyle
	}
	if m.listCursor[v] == idx {
		style = m.styles.RowSelectedStyle
	}
	return style
}
