// Package tui provides the terminal user interface for figaro.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/figaro/internal/api"
	"github.com/javiermolinar/figaro/internal/config"
	"github.com/javiermolinar/figaro/internal/schedule"
	"github.com/javiermolinar/figaro/internal/tui/commands"
	"github.com/javiermolinar/figaro/internal/tui/theme"
)

// View identifies the active screen.
type View int

const (
	ViewDashboard View = iota
	ViewAgenda
	ViewAppointments
	ViewBarbers
	ViewCustomers
	ViewServices
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal  Mode = iota
	ModeForm         // Entity creation/edit form
	ModeDraft        // Pending appointment captured from a free slot
	ModeConfirm      // Destructive or payment action confirmation
	ModeSearch       // Service list filter input
)

// Position is a cursor position in the agenda grid.
type Position struct {
	Day  int // 0=Monday, 6=Sunday
	Slot int // Row index into the slot list
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	client *api.Client
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Screen state
	view View
	mode Mode

	// Entity lists
	barbers      []api.Barber
	customers    []api.Customer
	services     []api.Service
	appointments []api.Appointment

	// Per-view list cursor
	listCursor map[View]int

	// Services view extras
	showInactive  bool
	serviceFilter string
	search        textinput.Model

	// Agenda state. epoch identifies the latest agenda request; day results
	// tagged with an older epoch are dropped.
	week        schedule.Week
	barberIdx   int
	epoch       int
	dayAgenda   map[string][]api.Appointment
	pendingDays int
	slots       []schedule.Slot
	cursor      Position

	// Draft state
	draft         *schedule.Draft
	draftCustomer int
	draftService  int
	draftFocus    int // 0=customer list, 1=service list
	conflictMsg   string

	// Form and confirmation state
	form    entityForm
	confirm confirmState

	// Messages
	statusMsg  string
	statusTime time.Time

	loading bool
	width   int
	height  int

	nowFunc func() time.Time
}

// confirmState holds a pending yes/no question and the command to run on yes.
type confirmState struct {
	message string
	action  tea.Cmd
}

// New creates a new TUI model.
func New(client *api.Client, cfg *config.Config) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	search := textinput.New()
	search.Placeholder = "filter services"
	search.CharLimit = 64
	search.Width = 30

	now := time.Now()
	return &Model{
		client:     client,
		config:     cfg,
		theme:      t,
		styles:     styles,
		view:       ViewDashboard,
		mode:       ModeNormal,
		listCursor: make(map[View]int),
		search:     search,
		week:       schedule.NewWeek(now),
		dayAgenda:  make(map[string][]api.Appointment),
		slots:      schedule.BuildSlots(cfg.Schedule.DayStart, cfg.Schedule.DayEnd, cfg.Schedule.SlotMinutes),
		nowFunc:    time.Now,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.LoadAll(m.client)
}

// selectedBarber returns the barber the agenda is showing, or false when
// there are none.
func (m Model) selectedBarber() (api.Barber, bool) {
	if len(m.barbers) == 0 {
		return api.Barber{}, false
	}
	if m.barberIdx >= len(m.barbers) {
		return m.barbers[0], true
	}
	return m.barbers[m.barberIdx], true
}

// loadAgenda starts a fresh agenda window fetch for the selected barber.
// Bumping the epoch first means any in-flight day results from a previous
// window resolve against a stale epoch and get dropped.
func (m *Model) loadAgenda() tea.Cmd {
	barber, ok := m.selectedBarber()
	if !ok {
		return nil
	}
	m.epoch++
	m.dayAgenda = make(map[string][]api.Appointment)
	m.pendingDays = schedule.DaysPerWeek
	m.loading = true
	LogAgendaReload(m.epoch, barber.ID, schedule.ISODate(m.week.Start))
	return commands.LoadAgendaWeek(m.client, barber.ID, m.week, m.epoch)
}

// dayIntervals projects one day's appointments onto schedule intervals.
func (m Model) dayIntervals(date string) []schedule.Interval {
	appts := m.dayAgenda[date]
	intervals := make([]schedule.Interval, 0, len(appts))
	for _, a := range appts {
		intervals = append(intervals, schedule.Interval{Start: a.Start.Time, End: a.End.Time})
	}
	return intervals
}

// activeServices returns the services a draft may book.
func (m Model) activeServices() []api.Service {
	active := make([]api.Service, 0, len(m.services))
	for _, s := range m.services {
		if s.Active {
			active = append(active, s)
		}
	}
	return active
}

// visibleServices applies the inactive toggle and search filter to the
// service list.
func (m Model) visibleServices() []api.Service {
	visible := make([]api.Service, 0, len(m.services))
	for _, s := range m.services {
		if !m.showInactive && !s.Active {
			continue
		}
		if m.serviceFilter != "" && !containsFold(s.Name, m.serviceFilter) {
			continue
		}
		visible = append(visible, s)
	}
	return visible
}

// Run starts the TUI.
func Run(client *api.Client, cfg *config.Config) error {
	return RunWithDebug(client, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(client *api.Client, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(client, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
