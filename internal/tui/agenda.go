package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/figaro/internal/schedule"
)

const agendaColWidth = 10

// agendaView renders the weekly slot grid for the selected barber.
func (m Model) agendaView() string {
	barber, ok := m.selectedBarber()
	if !ok {
		return m.styles.HelpStyle.Render("No barbers registered yet. Press 4 to add one.")
	}

	var b strings.Builder
	days := m.week.Days()
	today := schedule.TruncateToDay(m.nowFunc())

	title := fmt.Sprintf("%s  ·  week of %s", barber.Name, schedule.ISODate(m.week.Start))
	b.WriteString(m.styles.TitleStyle.Render(title))
	if m.loading {
		b.WriteString(m.styles.HelpStyle.Render("  loading..."))
	}
	b.WriteString("\n\n")

	// Day header row
	b.WriteString(strings.Repeat(" ", 6))
	for i, day := range days {
		label := fmt.Sprintf("%s %02d", schedule.WeekdayShortName(i), day.Day())
		style := m.styles.DayHeaderStyle
		if day.Equal(today) {
			style = m.styles.DayHeaderTodayStyle
		}
		b.WriteString(style.Width(agendaColWidth).Render(label))
	}
	b.WriteString("\n")

	// Slot rows
	for row, slot := range m.slots {
		b.WriteString(m.styles.TimeColumnStyle.Render(fmt.Sprintf("%5s ", slot.Label)))
		for col, day := range days {
			occupied := schedule.Occupied(slot, m.dayIntervals(schedule.ISODate(day)))
			b.WriteString(m.renderSlotCell(row, col, occupied))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.HelpStyle.Render("enter: book slot  ·  [/]: barber  ·  H/L: week  ·  t: today  ·  y: copy week"))
	return b.String()
}

func (m Model) renderSlotCell(row, col int, occupied bool) string {
	label := "free"
	style := m.styles.SlotFreeStyle
	if occupied {
		label = "booked"
		style = m.styles.SlotOccupiedStyle
	}
	if m.cursor.Day == col && m.cursor.Slot == row {
		style = m.styles.SlotCursorStyle
	}
	return style.Width(agendaColWidth).Align(lipgloss.Center).Render(label)
}

// agendaExportText builds the plain text week agenda for the clipboard.
func (m Model) agendaExportText() string {
	barber, ok := m.selectedBarber()
	if !ok {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Agenda for %s, week of %s\n", barber.Name, schedule.ISODate(m.week.Start))

	for i, day := range m.week.Days() {
		fmt.Fprintf(&b, "\n%s %s\n", schedule.WeekdayName(i), schedule.ISODate(day))
		appts := m.dayAgenda[schedule.ISODate(day)]
		if len(appts) == 0 {
			b.WriteString("  no appointments\n")
			continue
		}
		for _, a := range appts {
			line := fmt.Sprintf("  %s-%s", a.Start.Format("15:04"), a.End.Format("15:04"))
			if a.Customer != nil {
				line += "  " + a.Customer.Name
			}
			if a.Service != nil {
				line += "  (" + a.Service.Name + ")"
			}
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}
