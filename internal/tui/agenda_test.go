package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/figaro/internal/api"
	"github.com/javiermolinar/figaro/internal/schedule"
	"github.com/javiermolinar/figaro/internal/tui/commands"
)

func TestAgendaExportText(t *testing.T) {
	m := newTestModel(t)
	m = applyMsg(t, m, commands.BarbersLoadedMsg{Barbers: testBarbers()})

	monday := schedule.ISODate(m.week.Days()[0])
	m.dayAgenda[monday] = []api.Appointment{
		{
			ID:       1,
			Start:    localTime(t, monday+"T10:00:00"),
			End:      localTime(t, monday+"T11:00:00"),
			Customer: &api.Customer{Name: "Ana Ruiz"},
			Service:  &api.Service{Name: "Haircut"},
		},
	}

	text := m.agendaExportText()

	if !strings.Contains(text, "Agenda for Luis") {
		t.Errorf("missing barber header:\n%s", text)
	}
	if !strings.Contains(text, "Monday "+monday) {
		t.Errorf("missing day header:\n%s", text)
	}
	if !strings.Contains(text, "10:00-11:00  Ana Ruiz  (Haircut)") {
		t.Errorf("missing appointment line:\n%s", text)
	}
	if !strings.Contains(text, "no appointments") {
		t.Errorf("empty days should be marked:\n%s", text)
	}
	if strings.Contains(text, "\x1b[") {
		t.Error("export text contains ANSI sequences")
	}
}

func TestAgendaView_MarksOccupiedSlots(t *testing.T) {
	m := newTestModel(t)
	m = applyMsg(t, m, commands.BarbersLoadedMsg{Barbers: testBarbers()})
	m.loading = false

	monday := schedule.ISODate(m.week.Days()[0])
	m.dayAgenda[monday] = []api.Appointment{
		{ID: 1, Start: localTime(t, monday+"T10:00:00"), End: localTime(t, monday+"T11:30:00")},
	}

	plain := ansi.Strip(m.agendaView())
	lines := strings.Split(plain, "\n")

	var tenRow string
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "10:00") {
			tenRow = line
			break
		}
	}
	if tenRow == "" {
		t.Fatalf("no 10:00 row in:\n%s", plain)
	}
	if !strings.Contains(tenRow, "booked") {
		t.Errorf("10:00 row does not show the booking: %q", tenRow)
	}
	if !strings.Contains(tenRow, "free") {
		t.Errorf("other days at 10:00 should be free: %q", tenRow)
	}
}

func TestAgendaView_NoBarbers(t *testing.T) {
	m := newTestModel(t)
	out := ansi.Strip(m.agendaView())
	if !strings.Contains(out, "No barbers") {
		t.Errorf("expected empty-state hint, got %q", out)
	}
}
